package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriahrh/wordd/config"
	"github.com/satriahrh/wordd/data"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.Load("", missingEnvFile(t))
		if assert.NoError(t, err) {
			assert.Equal(t, config.Default(), cfg)
		}
	})
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wordd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("share_dir: /srv/share\nlanguages: [de, id]\ntotal_tiles: 104\n"), 0o644))

		cfg, err := config.Load(path, missingEnvFile(t))
		if assert.NoError(t, err) {
			assert.Equal(t, "/srv/share", cfg.ShareDir)
			assert.Equal(t, []string{"de", "id"}, cfg.Languages)
			assert.Equal(t, 104, cfg.TotalTiles)
			assert.Equal(t, 7, cfg.RackSize, "default kept")
		}
	})
	t.Run("ErrorMalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wordd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("languages: {"), 0o644))

		_, err := config.Load(path, missingEnvFile(t))
		assert.ErrorIs(t, err, config.ErrorInvalidConfig)
	})
	t.Run("ErrorMissingFile", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), missingEnvFile(t))
		assert.Error(t, err)
	})
	t.Run("Environment", func(t *testing.T) {
		t.Setenv("WORDD_LANGS", "fr, de,")
		t.Setenv("DEFAULT_RANDOM_WORD_LETTER_COUNT", "9")
		t.Setenv("WORDD_SHARE_DIR", "/tmp/share")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg, err := config.Load("", missingEnvFile(t))
		if assert.NoError(t, err) {
			assert.Equal(t, []string{"fr", "de"}, cfg.Languages)
			assert.Equal(t, 9, cfg.RackSize)
			assert.Equal(t, "/tmp/share", cfg.ShareDir)
			assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
		}
	})
	t.Run("DotEnv", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("WORDD_MAX_COUNT=25\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("WORDD_MAX_COUNT") })

		cfg, err := config.Load("", envFile)
		if assert.NoError(t, err) {
			assert.Equal(t, 25, cfg.MaxCount)
		}
	})
	t.Run("ErrorInvalidNumber", func(t *testing.T) {
		t.Setenv("WORDD_TOTAL_TILES", "many")
		_, err := config.Load("", missingEnvFile(t))
		assert.ErrorIs(t, err, config.ErrorInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	for _, testCase := range []struct {
		Name   string
		Mutate func(*config.Config)
	}{
		{"UnknownLanguage", func(cfg *config.Config) { cfg.Languages = []string{"en", "xx"} }},
		{"NoLanguage", func(cfg *config.Config) { cfg.Languages = nil }},
		{"RackSize", func(cfg *config.Config) { cfg.RackSize = 0 }},
		{"TotalTiles", func(cfg *config.Config) { cfg.TotalTiles = 1 }},
		{"CacheSize", func(cfg *config.Config) { cfg.CandidateCacheSize = -1 }},
		{"MaxCount", func(cfg *config.Config) { cfg.MaxCount = 0 }},
	} {
		t.Run(testCase.Name, func(t *testing.T) {
			cfg := config.Default()
			testCase.Mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrorInvalidConfig)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestConfig_ParseLanguages(t *testing.T) {
	cfg := config.Default()
	cfg.Languages = []string{"es", "EN", "es", "id"}
	languages, err := cfg.ParseLanguages()
	if assert.NoError(t, err) {
		assert.Equal(t, []data.Language{data.Spanish, data.English, data.Indonesian}, languages)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, config.SplitList(" a,,b , "))
	assert.Empty(t, config.SplitList(""))
}
