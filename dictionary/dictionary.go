package dictionary

import (
	"github.com/satriahrh/wordd/data"
)

// Dictionary interface of dictionary
type Dictionary interface {
	LemmaIsValid(string) (bool, error)
}

// Lexicon answers validity from a curated profile.
type Lexicon struct {
	profile *data.Profile
}

func NewLexicon(profile *data.Profile) *Lexicon {
	return &Lexicon{profile: profile}
}

// LemmaIsValid normalizes lemma the way the lexicon was normalized before
// looking it up.
func (d *Lexicon) LemmaIsValid(lemma string) (bool, error) {
	return d.profile.Contains(d.profile.Language().Normalize(lemma)), nil
}
