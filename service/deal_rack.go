package service

import (
	"context"
	"math/rand/v2"

	"github.com/satriahrh/wordd/sampler"
)

// DealRack deals count tiles from a freshly shuffled full bag, blanks
// included, without replacement.
func (a *application) DealRack(ctx context.Context, lang string, count int) (rack []string, err error) {
	profile, err := a.profile(lang)
	if err != nil {
		return
	}

	a.withRand(func(rng *rand.Rand) {
		rack = runesToStrings(sampler.DealRack(rng, profile.TileBag(), a.capCount(count)))
	})
	return
}
