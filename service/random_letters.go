package service

import (
	"context"
	"math/rand/v2"

	"github.com/satriahrh/wordd/data"
	"github.com/satriahrh/wordd/sampler"
)

// RandomLetters draws from the tile bag, weighted by tile count. Blanks
// are never drawn.
func (a *application) RandomLetters(ctx context.Context, lang string, count int) ([]string, error) {
	return a.randomFrom(lang, count, func(profile *data.Profile) []rune {
		return profile.LetterBank()
	})
}

func (a *application) RandomVowels(ctx context.Context, lang string, count int) ([]string, error) {
	return a.randomFrom(lang, count, (*data.Profile).Vowels)
}

func (a *application) RandomConsonants(ctx context.Context, lang string, count int) ([]string, error) {
	return a.randomFrom(lang, count, (*data.Profile).Consonants)
}

func (a *application) RandomUnicorns(ctx context.Context, lang string, count int) ([]string, error) {
	return a.randomFrom(lang, count, (*data.Profile).RareLetters)
}

func (a *application) randomFrom(lang string, count int, set func(*data.Profile) []rune) (letters []string, err error) {
	profile, err := a.profile(lang)
	if err != nil {
		return
	}

	a.withRand(func(rng *rand.Rand) {
		letters = runesToStrings(sampler.Draw(rng, set(profile), a.capCount(count)))
	})
	return
}
