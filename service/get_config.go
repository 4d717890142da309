package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/wordd/data"
)

func (a *application) GetConfig(ctx context.Context, lang string) (summary data.Summary, err error) {
	profile, err := a.profile(lang)
	if err != nil {
		return
	}

	summary = profile.Summary()
	a.logger.Debug("generated config",
		zap.Stringer("lang", profile.Language()),
		zap.Int("tiles", profile.TileBag().Total()),
		zap.Int("unicorns", len(summary.Unicorns)),
		zap.Int("vowels", len(summary.Vowels)),
	)
	return
}
