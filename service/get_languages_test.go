package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satriahrh/wordd/service"
)

func TestApplication_GetLanguages(t *testing.T) {
	svc := newService(0)
	assert.Equal(t, []service.LanguageInfo{
		{Name: "English", Code: "en"},
		{Name: "Español", Code: "es"},
	}, svc.GetLanguages(ctx))
}
