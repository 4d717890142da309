package service

import (
	"context"
)

func (a *application) GetLanguages(ctx context.Context) []LanguageInfo {
	languages := a.registry.Languages()
	infos := make([]LanguageInfo, len(languages))
	for i, language := range languages {
		infos[i] = LanguageInfo{Name: language.Name(), Code: language.Code()}
	}
	return infos
}
