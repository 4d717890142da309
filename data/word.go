package data

import (
	"math/bits"
	"unicode/utf8"
)

// Signature is a letter-presence bitmask. A-Z occupy bits 0-25, Ñ bit 26,
// and accented letters fold onto the bit of their base letter.
type Signature uint32

const extraLetterBit = 26

var foldedLetters = map[rune]rune{
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ä': 'A', 'Æ': 'A',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Ö': 'O', 'Œ': 'O',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
	'Ÿ': 'Y',
	'Ç': 'C',
	'ß': 'S',
}

func signatureBit(r rune) (uint, bool) {
	if base, ok := foldedLetters[r]; ok {
		r = base
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return uint(r - 'A'), true
	case r == 'Ñ':
		return extraLetterBit, true
	}
	return 0, false
}

// SignatureOf expects uppercase text. Characters without a bit are
// ignored; the exact multiset check still sees them.
func SignatureOf(text string) Signature {
	var signature Signature
	for _, r := range text {
		if bit, ok := signatureBit(r); ok {
			signature |= 1 << bit
		}
	}
	return signature
}

// Covers reports whether every bit of other is also set in s.
func (s Signature) Covers(other Signature) bool {
	return other&^s == 0
}

func (s Signature) Len() int {
	return bits.OnesCount32(uint32(s))
}

type Word struct {
	Text      string
	Length    int
	Signature Signature
}

func NewWord(text string) Word {
	return Word{
		Text:      text,
		Length:    utf8.RuneCountInString(text),
		Signature: SignatureOf(text),
	}
}
