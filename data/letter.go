package data

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var ErrorNoLanguageFound = errors.New("no language found")

// Language is the closed set of languages a lexicon can be built for.
type Language uint8

const (
	English Language = iota + 1
	Spanish
	French
	German
	Indonesian
)

// Blank is the wildcard tile.
const Blank = '_'

type alphabet struct {
	code   string
	name   string
	tag    language.Tag
	vowels []rune
}

var baseVowels = []rune{'A', 'E', 'I', 'O', 'U'}

var defaultAlphabet = alphabet{vowels: baseVowels}

var alphabets = map[Language]alphabet{
	English:    {"en", "English", language.English, baseVowels},
	Spanish:    {"es", "Español", language.Spanish, withVowels('Á', 'É', 'Í', 'Ó', 'Ú', 'Ü')},
	French:     {"fr", "Français", language.French, withVowels('À', 'Â', 'Æ', 'É', 'È', 'Ê', 'Ë', 'Î', 'Ï', 'Ô', 'Œ', 'Ù', 'Û', 'Ü', 'Ÿ')},
	German:     {"de", "Deutsch", language.German, withVowels('Ä', 'Ö', 'Ü')},
	Indonesian: {"id", "Bahasa Indonesia", language.Indonesian, baseVowels},
}

func withVowels(accented ...rune) []rune {
	vowels := make([]rune, 0, len(baseVowels)+len(accented))
	vowels = append(vowels, baseVowels...)
	return append(vowels, accented...)
}

func ParseLanguage(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for lang, a := range alphabets {
		if a.code == code {
			return lang, nil
		}
	}
	return 0, ErrorNoLanguageFound
}

func (l Language) alphabet() alphabet {
	if a, ok := alphabets[l]; ok {
		return a
	}
	return defaultAlphabet
}

func (l Language) Code() string { return l.alphabet().code }

func (l Language) Name() string { return l.alphabet().name }

func (l Language) String() string { return l.Code() }

func (l Language) Tag() language.Tag { return l.alphabet().tag }

// Vowels returns a copy of the language's vowel table. Unknown languages
// fall back to the five base vowels.
func (l Language) Vowels() []rune {
	v := l.alphabet().vowels
	out := make([]rune, len(v))
	copy(out, v)
	return out
}

// VowelSet is Vowels as a lookup set.
func (l Language) VowelSet() map[rune]bool {
	set := make(map[rune]bool, len(l.alphabet().vowels))
	for _, v := range l.alphabet().vowels {
		set[v] = true
	}
	return set
}

// Normalize composes text to NFC and uppercases it with the language's
// casing rules. A cases.Caser is stateful, so one is built per call.
func (l Language) Normalize(text string) string {
	return cases.Upper(l.Tag()).String(norm.NFC.String(text))
}
