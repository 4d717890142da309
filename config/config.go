// Package config resolves the service configuration from defaults, an
// optional YAML file, .env files and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/satriahrh/wordd/data"
)

var ErrorInvalidConfig = errors.New("invalid config")

const (
	envShareDir   = "WORDD_SHARE_DIR"
	envLanguages  = "WORDD_LANGS"
	envRackSize   = "DEFAULT_RANDOM_WORD_LETTER_COUNT"
	envTotalTiles = "WORDD_TOTAL_TILES"
	envListen     = "WORDD_LISTEN"
	envLogFile    = "WORDD_LOG_FILE"
	envCache      = "WORDD_CANDIDATE_CACHE_SIZE"
	envMaxCount   = "WORDD_MAX_COUNT"
	envCORS       = "CORS_ALLOWED_ORIGINS"
)

type Config struct {
	ShareDir           string   `yaml:"share_dir"`
	Languages          []string `yaml:"languages"`
	RackSize           int      `yaml:"rack_size"`
	TotalTiles         int      `yaml:"total_tiles"`
	ListenAddr         string   `yaml:"listen"`
	LogFile            string   `yaml:"log_file"`
	Verbose            bool     `yaml:"verbose"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	CandidateCacheSize int      `yaml:"candidate_cache_size"`
	MaxCount           int      `yaml:"max_count"`
}

func Default() Config {
	return Config{
		ShareDir:           "./share",
		Languages:          []string{"en", "es", "fr"},
		RackSize:           7,
		TotalTiles:         100,
		ListenAddr:         "0.0.0.0:2345",
		CORSAllowedOrigins: []string{"*"},
		CandidateCacheSize: 1024,
		MaxCount:           1000,
	}
}

// Load starts from Default, overlays file when given, then the variables
// from envFiles (".env" when none) and the process environment. Missing
// env files are skipped.
func Load(file string, envFiles ...string) (Config, error) {
	cfg := Default()

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrorInvalidConfig, file, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envShareDir); ok {
		cfg.ShareDir = v
	}
	if v, ok := os.LookupEnv(envLanguages); ok {
		cfg.Languages = SplitList(v)
	}
	if v, ok := os.LookupEnv(envListen); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(envCORS); ok {
		cfg.CORSAllowedOrigins = SplitList(v)
	}
	for name, target := range map[string]*int{
		envRackSize:   &cfg.RackSize,
		envTotalTiles: &cfg.TotalTiles,
		envCache:      &cfg.CandidateCacheSize,
		envMaxCount:   &cfg.MaxCount,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrorInvalidConfig, name, v)
		}
		*target = n
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(v string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (cfg Config) Validate() error {
	if _, err := cfg.ParseLanguages(); err != nil {
		return err
	}
	switch {
	case cfg.RackSize < 1:
		return fmt.Errorf("%w: rack size must be at least 1, got %d", ErrorInvalidConfig, cfg.RackSize)
	case cfg.TotalTiles < 2:
		return fmt.Errorf("%w: total tiles must be at least 2, got %d", ErrorInvalidConfig, cfg.TotalTiles)
	case cfg.CandidateCacheSize < 0:
		return fmt.Errorf("%w: candidate cache size must not be negative", ErrorInvalidConfig)
	case cfg.MaxCount < 1:
		return fmt.Errorf("%w: max count must be at least 1, got %d", ErrorInvalidConfig, cfg.MaxCount)
	}
	return nil
}

// ParseLanguages maps the configured codes onto the supported languages,
// keeping order and dropping duplicates.
func (cfg Config) ParseLanguages() ([]data.Language, error) {
	if len(cfg.Languages) == 0 {
		return nil, fmt.Errorf("%w: no languages configured", ErrorInvalidConfig)
	}
	languages := make([]data.Language, 0, len(cfg.Languages))
	seen := make(map[data.Language]bool)
	for _, code := range cfg.Languages {
		language, err := data.ParseLanguage(code)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrorInvalidConfig, code, err)
		}
		if !seen[language] {
			seen[language] = true
			languages = append(languages, language)
		}
	}
	return languages, nil
}
