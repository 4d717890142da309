// Package distribution derives the tile bag and letter classes of a
// language from its curated lexicon.
package distribution

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"unicode"

	"go.uber.org/zap"

	"github.com/satriahrh/wordd/data"
)

var ErrorTileBagUnbalanced = errors.New("tile bag does not add up to the target")

const (
	blanks = 2
	// overshoot fixup runs at most fixupFactor * len(letters) iterations
	fixupFactor = 4
	rareLetters = 2
)

// Frequency counts alphabetic characters, folded to upper case.
func Frequency(lexicon []data.Word) map[rune]int {
	freq := make(map[rune]int)
	for _, word := range lexicon {
		for _, r := range word.Text {
			if unicode.IsLetter(r) {
				freq[unicode.ToUpper(r)]++
			}
		}
	}
	return freq
}

func byFrequency(freq map[rune]int, descending bool) []rune {
	letters := make([]rune, 0, len(freq))
	for letter := range freq {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool {
		fi, fj := freq[letters[i]], freq[letters[j]]
		if fi != fj {
			if descending {
				return fi > fj
			}
			return fi < fj
		}
		return letters[i] < letters[j]
	})
	return letters
}

// ComputeTileBag allocates totalTiles tiles: two blanks, then a share of
// the rest proportional to each letter's frequency, never below one.
// Rounding leftovers go to the most frequent letters; overshoot is taken
// back from the rarest letters still above one tile. When the overshoot
// cannot be resolved the bag is returned along with ErrorTileBagUnbalanced.
// An empty table yields an empty bag.
func ComputeTileBag(freq map[rune]int, totalTiles int) (data.TileBag, error) {
	total := 0
	for _, n := range freq {
		total += n
	}
	if total == 0 {
		return data.TileBag{}, nil
	}

	bag := data.TileBag{data.Blank: blanks}
	pool := totalTiles - blanks
	allocated := 0
	for letter, n := range freq {
		share := int(math.Round(float64(n) / float64(total) * float64(pool)))
		if share < 1 {
			share = 1
		}
		bag[letter] = share
		allocated += share
	}

	remainder := pool - allocated
	if remainder > 0 {
		common := byFrequency(freq, true)
		for i := 0; i < remainder; i++ {
			bag[common[i%len(common)]]++
		}
	} else if remainder < 0 {
		rare := byFrequency(freq, false)
		deficit := -remainder
		maxIterations := fixupFactor * len(rare)
		next := 0
		for iteration := 0; deficit > 0 && iteration < maxIterations; iteration++ {
			letter, ok := nextReducible(rare, bag, &next)
			if !ok {
				break
			}
			bag[letter]--
			deficit--
		}
		if deficit > 0 {
			return bag, fmt.Errorf("%w: %d tiles over %d", ErrorTileBagUnbalanced, deficit, totalTiles)
		}
	}

	return bag, nil
}

// nextReducible walks letters round-robin from *next and returns the first
// one holding more than one tile.
func nextReducible(letters []rune, bag data.TileBag, next *int) (rune, bool) {
	for step := 0; step < len(letters); step++ {
		letter := letters[*next%len(letters)]
		*next = (*next + 1) % len(letters)
		if bag[letter] > 1 {
			return letter, true
		}
	}
	return 0, false
}

// Classify splits the observed letters into the language's vowels and the
// remaining consonants, and picks the two rarest letters, ties broken
// alphabetically.
func Classify(freq map[rune]int, language data.Language) data.Classes {
	vowels := language.Vowels()
	vowelSet := language.VowelSet()

	consonants := make([]rune, 0, len(freq))
	for letter := range freq {
		if !vowelSet[letter] {
			consonants = append(consonants, letter)
		}
	}
	sort.Slice(consonants, func(i, j int) bool { return consonants[i] < consonants[j] })

	rare := byFrequency(freq, false)
	if len(rare) > rareLetters {
		rare = rare[:rareLetters]
	}

	return data.Classes{
		Vowels:      vowels,
		Consonants:  consonants,
		RareLetters: rare,
	}
}

// BuildProfile derives the tile bag and classes from lexicon and bundles
// them into the language's profile. An unbalanced bag is logged and kept.
func BuildProfile(lexicon []data.Word, language data.Language, totalTiles int, logger *zap.Logger) *data.Profile {
	logger = logger.With(zap.Stringer("lang", language))

	freq := Frequency(lexicon)
	logger.Info("calculated letter distribution",
		zap.Int("letters", len(freq)),
		zap.Int("words", len(lexicon)),
	)

	bag, err := ComputeTileBag(freq, totalTiles)
	if err != nil {
		logger.Warn("tile bag is off target", zap.Int("tiles", bag.Total()), zap.Error(err))
	} else {
		logger.Info("computed tile bag", zap.Int("tiles", bag.Total()))
	}

	classes := Classify(freq, language)
	logger.Info("classified letters",
		zap.Int("vowels", len(classes.Vowels)),
		zap.Int("consonants", len(classes.Consonants)),
		zap.String("unicorns", string(classes.RareLetters)),
	)

	return data.NewProfile(language, lexicon, bag, classes)
}
