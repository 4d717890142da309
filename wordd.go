// Package wordd holds the per-language profiles the service answers from.
package wordd

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/satriahrh/wordd/config"
	"github.com/satriahrh/wordd/data"
	"github.com/satriahrh/wordd/data/lexicon"
	"github.com/satriahrh/wordd/distribution"
)

// Registry is the immutable set of profiles, one per configured language.
type Registry struct {
	languages []data.Language
	profiles  map[data.Language]*data.Profile
}

// NewRegistry keeps the given order; a later profile for the same language
// replaces an earlier one.
func NewRegistry(profiles ...*data.Profile) *Registry {
	registry := &Registry{
		languages: make([]data.Language, 0, len(profiles)),
		profiles:  make(map[data.Language]*data.Profile, len(profiles)),
	}
	for _, profile := range profiles {
		if _, ok := registry.profiles[profile.Language()]; !ok {
			registry.languages = append(registry.languages, profile.Language())
		}
		registry.profiles[profile.Language()] = profile
	}
	return registry
}

// Load curates and profiles every configured language. Languages are
// built in parallel and Load returns only once all of them are ready.
func Load(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Registry, error) {
	languages, err := cfg.ParseLanguages()
	if err != nil {
		return nil, err
	}

	curator := lexicon.NewCurator(logger)
	profiles := make([]*data.Profile, len(languages))
	g, ctx := errgroup.WithContext(ctx)
	for i, language := range languages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Info("loading word list", zap.Stringer("lang", language), zap.Int("max_len", cfg.RackSize))
			words := curator.Curate(cfg.ShareDir, language, cfg.RackSize)
			profiles[i] = distribution.BuildProfile(words, language, cfg.TotalTiles, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewRegistry(profiles...), nil
}

// Languages returns the supported languages in configuration order.
func (r *Registry) Languages() []data.Language {
	languages := make([]data.Language, len(r.languages))
	copy(languages, r.languages)
	return languages
}

// Lookup resolves a language code to its profile. Codes outside the
// registry, known or not, report false.
func (r *Registry) Lookup(code string) (*data.Profile, bool) {
	language, err := data.ParseLanguage(code)
	if err != nil {
		return nil, false
	}
	profile, ok := r.profiles[language]
	return profile, ok
}
