package service

import (
	"context"
	"math/rand/v2"
	"sort"

	"go.uber.org/zap"

	"github.com/satriahrh/wordd/data"
	"github.com/satriahrh/wordd/sampler"
)

// RandomWords draws count words with replacement. With constraints the
// draw is made from every matching word; no match gives an empty result.
func (a *application) RandomWords(ctx context.Context, lang string, count int, query WordQuery) (words []string, err error) {
	profile, err := a.profile(lang)
	if err != nil {
		return
	}
	count = a.capCount(count)

	constraints := sampler.Constraints{
		MinVowels:     query.MinVowels,
		MinConsonants: query.MinConsonants,
		Vowels:        profile.Language().VowelSet(),
	}
	key := candidateKey{
		language:      profile.Language(),
		minVowels:     query.MinVowels,
		minConsonants: query.MinConsonants,
	}
	if query.Letters != nil {
		letters := profile.Language().Normalize(*query.Letters)
		rack := sampler.NewRack(letters)
		constraints.Letters = &rack
		key.hasLetters = true
		key.letters = sortLetters(letters)
	}

	if constraints.IsZero() {
		a.withRand(func(rng *rand.Rand) {
			words = sampler.SampleWords(rng, profile.Lexicon(), count, constraints)
		})
		return
	}

	if err = ctx.Err(); err != nil {
		return
	}
	candidates := a.findCandidates(profile, key, constraints)
	if len(candidates) == 0 {
		a.logger.Debug("no words found matching constraints", zap.Stringer("lang", profile.Language()))
		return []string{}, nil
	}

	a.withRand(func(rng *rand.Rand) {
		words = sampler.Draw(rng, candidates, count)
	})
	return
}

func (a *application) findCandidates(profile *data.Profile, key candidateKey, constraints sampler.Constraints) []string {
	if a.candidates != nil {
		if candidates, ok := a.candidates.Get(key); ok {
			return candidates
		}
	}
	candidates := sampler.FindMatchingWords(profile.Lexicon(), constraints)
	if a.candidates != nil {
		a.candidates.Add(key, candidates)
	}
	return candidates
}

func sortLetters(letters string) string {
	runes := []rune(letters)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}
