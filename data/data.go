package data

import (
	"sort"
)

// Profile is the per-language snapshot built once at startup. Nothing
// mutates it afterwards, so it is safe to share between goroutines.
// Slices handed out by its accessors must be treated as read-only.
type Profile struct {
	language    Language
	lexicon     []Word
	vowels      []rune
	consonants  []rune
	rareLetters []rune
	tileBag     TileBag
	bank        LetterBank
}

// Classes groups the letter classification of a profile.
type Classes struct {
	Vowels      []rune
	Consonants  []rune
	RareLetters []rune
}

// NewProfile expects lexicon sorted by Text without duplicates.
func NewProfile(language Language, lexicon []Word, bag TileBag, classes Classes) *Profile {
	return &Profile{
		language:    language,
		lexicon:     lexicon,
		vowels:      classes.Vowels,
		consonants:  classes.Consonants,
		rareLetters: classes.RareLetters,
		tileBag:     bag,
		bank:        NewLetterBank(bag, false),
	}
}

func (p *Profile) Language() Language { return p.language }

func (p *Profile) Lexicon() []Word { return p.lexicon }

func (p *Profile) Vowels() []rune { return p.vowels }

func (p *Profile) Consonants() []rune { return p.consonants }

func (p *Profile) RareLetters() []rune { return p.rareLetters }

// LetterBank is the tile-weighted letter layout without blanks.
func (p *Profile) LetterBank() LetterBank { return p.bank }

// TileBag returns a copy of the bag.
func (p *Profile) TileBag() TileBag {
	bag := make(TileBag, len(p.tileBag))
	for letter, n := range p.tileBag {
		bag[letter] = n
	}
	return bag
}

// Contains looks up an already normalized word.
func (p *Profile) Contains(text string) bool {
	i := sort.Search(len(p.lexicon), func(i int) bool {
		return p.lexicon[i].Text >= text
	})
	return i < len(p.lexicon) && p.lexicon[i].Text == text
}

const unicornValue = 10

type Summary struct {
	Tiles      map[string]int `json:"tiles" yaml:"tiles"`
	Unicorns   map[string]int `json:"unicorns" yaml:"unicorns"`
	Vowels     []string       `json:"vowels" yaml:"vowels"`
	Consonants []string       `json:"consonants" yaml:"consonants"`
	Bag        map[string]int `json:"bag" yaml:"bag"`
	Words      int            `json:"words" yaml:"words"`
}

func (p *Profile) Summary() Summary {
	bag := make(map[string]int, len(p.tileBag))
	tiles := make(map[string]int, len(p.tileBag))
	for letter, n := range p.tileBag {
		bag[string(letter)] = n
		tiles[string(letter)] = n
	}
	unicorns := make(map[string]int, len(p.rareLetters))
	for _, letter := range p.rareLetters {
		unicorns[string(letter)] = unicornValue
	}
	return Summary{
		Tiles:      tiles,
		Unicorns:   unicorns,
		Vowels:     runesToStrings(p.vowels),
		Consonants: runesToStrings(p.consonants),
		Bag:        bag,
		Words:      len(p.lexicon),
	}
}

func runesToStrings(runes []rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
