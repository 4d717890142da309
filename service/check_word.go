package service

import (
	"context"

	"go.uber.org/zap"
)

// CheckWord returns word as the lexicon spells it along with its validity.
func (a *application) CheckWord(ctx context.Context, lang, word string) (normalized string, valid bool, err error) {
	profile, err := a.profile(lang)
	if err != nil {
		return
	}

	normalized = profile.Language().Normalize(word)
	valid, err = a.dictionaries[profile.Language()].LemmaIsValid(word)
	if err != nil {
		return
	}

	if valid {
		a.logger.Info("valid word queried", zap.Stringer("lang", profile.Language()), zap.String("word", normalized))
	} else {
		a.logger.Info("invalid word queried", zap.Stringer("lang", profile.Language()), zap.String("word", normalized))
	}
	return
}
