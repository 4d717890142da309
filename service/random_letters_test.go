package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satriahrh/wordd/service"
)

func TestApplication_RandomLetters(t *testing.T) {
	svc := newService(0)
	summary, err := svc.GetConfig(ctx, "en")
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	for _, testCase := range []struct {
		Name    string
		Draw    func(context.Context, string, int) ([]string, error)
		Allowed []string
	}{
		{"Letters", svc.RandomLetters, keysWithoutBlank(summary.Bag)},
		{"Vowels", svc.RandomVowels, summary.Vowels},
		{"Consonants", svc.RandomConsonants, summary.Consonants},
		{"Unicorns", svc.RandomUnicorns, keysWithoutBlank(summary.Unicorns)},
	} {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Run("ErrorLanguageNotSupported", func(t *testing.T) {
				_, err := testCase.Draw(ctx, "fr", 3)
				assert.ErrorIs(t, err, service.ErrorLanguageNotSupported)
			})
			t.Run("Success", func(t *testing.T) {
				got, err := testCase.Draw(ctx, "en", 40)
				if assert.NoError(t, err) {
					assert.Len(t, got, 40)
					assert.Subset(t, testCase.Allowed, got)
				}
			})
			t.Run("ZeroCount", func(t *testing.T) {
				got, err := testCase.Draw(ctx, "en", 0)
				if assert.NoError(t, err) {
					assert.Empty(t, got)
				}
			})
		})
	}
}

func keysWithoutBlank(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		if key != "_" {
			keys = append(keys, key)
		}
	}
	return keys
}
