// Package lexicon curates the word list of a language from the raw files
// under <baseDir>/words/<code>/: lexicon.txt, insertions.txt and
// deletions.txt.
package lexicon

import (
	"bufio"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/wordd/data"
)

const (
	wordsDir       = "words"
	lexiconFile    = "lexicon.txt"
	insertionsFile = "insertions.txt"
	deletionsFile  = "deletions.txt"

	// a letter carried by fewer than 1% of the base words is noise
	noiseRatio = 0.01
	// deletions ignore the length cap
	deletionSlack = 100
)

type Curator struct {
	logger *zap.Logger
}

func NewCurator(logger *zap.Logger) *Curator {
	return &Curator{logger: logger}
}

// LoadWords reads one entry per line, skipping blanks and # comments.
// Entries are normalized for language and kept when at most maxLen
// characters long.
func LoadWords(path string, language data.Language, maxLen int) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := language.Normalize(line)
		if utf8.RuneCountInString(word) > maxLen {
			continue
		}
		words[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// FilterNoise drops every word containing a character whose distinct-word
// support is below ceil(len(words) * 1%). It returns the surviving words
// and the noise characters in ascending order.
func FilterNoise(words map[string]struct{}) (map[string]struct{}, []rune) {
	support := make(map[rune]int)
	for word := range words {
		seen := make(map[rune]bool, len(word))
		for _, r := range word {
			if !seen[r] {
				seen[r] = true
				support[r]++
			}
		}
	}

	threshold := int(math.Ceil(float64(len(words)) * noiseRatio))
	noise := make(map[rune]bool)
	for r, n := range support {
		if n < threshold {
			noise[r] = true
		}
	}
	if len(noise) == 0 {
		return words, nil
	}

	kept := make(map[string]struct{}, len(words))
	for word := range words {
		if !strings.ContainsFunc(word, func(r rune) bool { return noise[r] }) {
			kept[word] = struct{}{}
		}
	}

	noisy := make([]rune, 0, len(noise))
	for r := range noise {
		noisy = append(noisy, r)
	}
	sort.Slice(noisy, func(i, j int) bool { return noisy[i] < noisy[j] })
	return kept, noisy
}

// Curate runs load, noise filter, insertions and deletions in that order
// and returns the lexicon sorted by text. A missing base lexicon yields an
// empty lexicon.
func (c *Curator) Curate(baseDir string, language data.Language, maxLen int) []data.Word {
	dir := filepath.Join(baseDir, wordsDir, language.Code())
	logger := c.logger.With(zap.Stringer("lang", language), zap.Int("max_len", maxLen))

	words, err := LoadWords(filepath.Join(dir, lexiconFile), language, maxLen)
	if err != nil {
		logger.Warn("failed to load main lexicon", zap.String("dir", dir), zap.Error(err))
		words = make(map[string]struct{})
	}

	base := len(words)
	words, noise := FilterNoise(words)
	if len(noise) > 0 {
		logger.Info("filtered noise letters",
			zap.String("letters", string(noise)),
			zap.Int("removed", base-len(words)),
		)
	}

	if insertions, err := c.loadOptional(logger, filepath.Join(dir, insertionsFile), language, maxLen); err == nil {
		for word := range insertions {
			words[word] = struct{}{}
		}
		logger.Info("inserted words into lexicon", zap.Int("count", len(insertions)))
	}

	if deletions, err := c.loadOptional(logger, filepath.Join(dir, deletionsFile), language, maxLen+deletionSlack); err == nil {
		for word := range deletions {
			delete(words, word)
		}
		logger.Info("deleted words from lexicon", zap.Int("count", len(deletions)))
	}

	lexicon := make([]data.Word, 0, len(words))
	for word := range words {
		lexicon = append(lexicon, data.NewWord(word))
	}
	sort.Slice(lexicon, func(i, j int) bool { return lexicon[i].Text < lexicon[j].Text })

	logger.Info("curated lexicon", zap.Int("words", len(lexicon)))
	return lexicon
}

func (c *Curator) loadOptional(logger *zap.Logger, path string, language data.Language, maxLen int) (map[string]struct{}, error) {
	words, err := LoadWords(path, language, maxLen)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("optional word file not found", zap.String("path", path))
	} else if err != nil {
		logger.Warn("failed to load optional word file", zap.String("path", path), zap.Error(err))
	}
	return words, err
}
