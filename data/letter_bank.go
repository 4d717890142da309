package data

import (
	"errors"
	"math/rand/v2"
	"sort"
)

// TileBag maps a letter to its tile count. Blank holds the wildcard tiles.
type TileBag map[rune]int

func (b TileBag) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// Letters returns the non-blank letters in ascending order.
func (b TileBag) Letters() []rune {
	letters := make([]rune, 0, len(b))
	for letter := range b {
		if letter != Blank {
			letters = append(letters, letter)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// LetterBank is a tile bag laid out one rune per physical tile.
type LetterBank []rune

var LetterBankOutOfRange = errors.New("out of range")

// NewLetterBank lays out the bag in ascending letter order. Blanks are
// kept only when withBlanks is set.
func NewLetterBank(bag TileBag, withBlanks bool) LetterBank {
	letterBank := make([]rune, 0, bag.Total())
	if withBlanks {
		for i := 0; i < bag[Blank]; i++ {
			letterBank = append(letterBank, Blank)
		}
	}
	for _, letter := range bag.Letters() {
		for i := 0; i < bag[letter]; i++ {
			letterBank = append(letterBank, letter)
		}
	}
	return LetterBank(letterBank)
}

func (letterBank *LetterBank) Pop(n int) ([]rune, error) {
	if n < 0 || len(*letterBank) < n {
		return []rune{}, LetterBankOutOfRange
	}
	popOut := (*letterBank)[:n]
	*letterBank = (*letterBank)[n:]
	return popOut, nil
}

func (letterBank *LetterBank) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(*letterBank), func(i, j int) {
		(*letterBank)[i], (*letterBank)[j] = (*letterBank)[j], (*letterBank)[i]
	})
}
