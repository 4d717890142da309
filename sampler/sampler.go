// Package sampler answers randomized draws against a language profile.
//
// Constrained word sampling is exhaustive: every word of the lexicon is
// checked against the constraints, and the draw is made from the full
// candidate list. A draw never comes back short while at least one word
// matches.
//
// All functions are safe for concurrent use as long as each goroutine
// brings its own *rand.Rand.
package sampler

import (
	"math/rand/v2"
	"unicode"

	"github.com/satriahrh/wordd/data"
)

// Rack is an available-letter multiset plus wildcard tiles.
type Rack struct {
	counts    map[rune]int
	wildcards int
	size      int
	signature data.Signature
}

// NewRack expects normalized letters. data.Blank counts as a wildcard and
// any other non-letter is ignored.
func NewRack(letters string) Rack {
	rack := Rack{counts: make(map[rune]int)}
	for _, r := range letters {
		switch {
		case r == data.Blank:
			rack.wildcards++
		case unicode.IsLetter(r):
			rack.counts[r]++
		default:
			continue
		}
		rack.size++
	}
	for letter := range rack.counts {
		rack.signature |= data.SignatureOf(string(letter))
	}
	return rack
}

func (r Rack) Size() int { return r.size }

func (r Rack) Wildcards() int { return r.wildcards }

func (r Rack) Signature() data.Signature { return r.signature }

// Matches reports whether word can be laid from rack. The length and
// signature checks reject early; the multiset check decides.
func Matches(word data.Word, rack Rack) bool {
	if word.Length > rack.size {
		return false
	}
	if rack.wildcards == 0 && !rack.signature.Covers(word.Signature) {
		return false
	}
	return formable(word.Text, rack)
}

// formable covers each letter's shortfall with wildcards. Wildcards are
// interchangeable, so one greedy pass is enough.
func formable(text string, rack Rack) bool {
	needed := make(map[rune]int, len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			needed[r]++
		}
	}
	wildcards := rack.wildcards
	for letter, n := range needed {
		if deficit := n - rack.counts[letter]; deficit > 0 {
			if deficit > wildcards {
				return false
			}
			wildcards -= deficit
		}
	}
	return true
}

// CountVowelsConsonants counts the letters of text; every letter not in
// vowels is a consonant.
func CountVowelsConsonants(text string, vowels map[rune]bool) (int, int) {
	var vowelCount, consonantCount int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if vowels[r] {
			vowelCount++
		} else {
			consonantCount++
		}
	}
	return vowelCount, consonantCount
}

// Constraints narrows word sampling. A nil Letters means any letters; a
// zero minimum means no minimum.
type Constraints struct {
	Letters       *Rack
	MinVowels     int
	MinConsonants int
	Vowels        map[rune]bool
}

func (c Constraints) IsZero() bool {
	return c.Letters == nil && c.MinVowels <= 0 && c.MinConsonants <= 0
}

func (c Constraints) hasMinima() bool {
	return c.MinVowels > 0 || c.MinConsonants > 0
}

func (c Constraints) Allows(word data.Word) bool {
	if c.Letters != nil && !Matches(word, *c.Letters) {
		return false
	}
	if c.hasMinima() {
		vowels, consonants := CountVowelsConsonants(word.Text, c.Vowels)
		if vowels < c.MinVowels || consonants < c.MinConsonants {
			return false
		}
	}
	return true
}

// FindMatchingWords scans the whole lexicon and keeps the words allowed by
// c, in lexicon order.
func FindMatchingWords(lexicon []data.Word, c Constraints) []string {
	candidates := make([]string, 0)
	for _, word := range lexicon {
		if c.Allows(word) {
			candidates = append(candidates, word.Text)
		}
	}
	return candidates
}

// SampleWords draws count words with replacement. Without constraints it
// draws straight from the lexicon; otherwise from the matching words. The
// result is empty when nothing matches.
func SampleWords(rng *rand.Rand, lexicon []data.Word, count int, c Constraints) []string {
	if c.IsZero() {
		selected := Draw(rng, lexicon, count)
		out := make([]string, len(selected))
		for i, word := range selected {
			out[i] = word.Text
		}
		return out
	}
	return Draw(rng, FindMatchingWords(lexicon, c), count)
}

// Draw picks count items uniformly with replacement. An empty set or a
// non-positive count gives an empty result.
func Draw[T any](rng *rand.Rand, items []T, count int) []T {
	if len(items) == 0 || count <= 0 {
		return []T{}
	}
	selected := make([]T, count)
	for i := range selected {
		selected[i] = items[rng.IntN(len(items))]
	}
	return selected
}

// DealRack shuffles every tile of bag, blanks included, and deals n of
// them without replacement. n is capped at the bag size.
func DealRack(rng *rand.Rand, bag data.TileBag, n int) []rune {
	letterBank := data.NewLetterBank(bag, true)
	if n > len(letterBank) {
		n = len(letterBank)
	}
	letterBank.Shuffle(rng)
	rack, err := letterBank.Pop(n)
	if err != nil {
		return []rune{}
	}
	return rack
}
