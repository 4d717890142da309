package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/satriahrh/wordd"
	"github.com/satriahrh/wordd/data"
	"github.com/satriahrh/wordd/dictionary"
)

var (
	ErrorLanguageNotSupported = errors.New("language not supported")
)

type LanguageInfo struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// WordQuery constrains RandomWords. A nil Letters puts no limit on the
// letters; zero minimums are no minimum.
type WordQuery struct {
	Letters       *string
	MinVowels     int
	MinConsonants int
}

// Service answers per-language queries. Every count is capped at
// Options.MaxCount when one is set.
type Service interface {
	GetLanguages(ctx context.Context) []LanguageInfo
	GetConfig(ctx context.Context, lang string) (data.Summary, error)
	CheckWord(ctx context.Context, lang, word string) (normalized string, valid bool, err error)
	RandomLetters(ctx context.Context, lang string, count int) ([]string, error)
	RandomVowels(ctx context.Context, lang string, count int) ([]string, error)
	RandomConsonants(ctx context.Context, lang string, count int) ([]string, error)
	RandomUnicorns(ctx context.Context, lang string, count int) ([]string, error)
	RandomWords(ctx context.Context, lang string, count int, query WordQuery) ([]string, error)
	DealRack(ctx context.Context, lang string, count int) ([]string, error)
}

type candidateKey struct {
	language      data.Language
	letters       string
	hasLetters    bool
	minVowels     int
	minConsonants int
}

type application struct {
	registry     *wordd.Registry
	dictionaries map[data.Language]dictionary.Dictionary
	candidates   *lru.Cache[candidateKey, []string]
	maxCount     int
	rngs         sync.Pool
	logger       *zap.Logger
}

// Options tunes NewService. CacheSize bounds the number of memoized
// candidate lists and MaxCount the size of any draw; zero disables either.
// Dictionaries replace the lexicon-backed dictionary of their language.
type Options struct {
	CacheSize    int
	MaxCount     int
	Dictionaries map[data.Language]dictionary.Dictionary
}

func NewService(registry *wordd.Registry, options Options, logger *zap.Logger) Service {
	a := &application{
		registry:     registry,
		dictionaries: make(map[data.Language]dictionary.Dictionary),
		maxCount:     options.MaxCount,
		logger:       logger,
		rngs: sync.Pool{
			New: func() any {
				return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			},
		},
	}
	for _, language := range registry.Languages() {
		if dict, ok := options.Dictionaries[language]; ok {
			a.dictionaries[language] = dict
			continue
		}
		profile, _ := registry.Lookup(language.Code())
		a.dictionaries[language] = dictionary.NewLexicon(profile)
	}
	if options.CacheSize > 0 {
		a.candidates, _ = lru.New[candidateKey, []string](options.CacheSize)
	}
	return a
}

func (a *application) profile(lang string) (*data.Profile, error) {
	profile, ok := a.registry.Lookup(lang)
	if !ok {
		return nil, ErrorLanguageNotSupported
	}
	return profile, nil
}

func (a *application) capCount(count int) int {
	if a.maxCount > 0 && count > a.maxCount {
		return a.maxCount
	}
	return count
}

func (a *application) withRand(f func(rng *rand.Rand)) {
	rng := a.rngs.Get().(*rand.Rand)
	defer a.rngs.Put(rng)
	f(rng)
}

func runesToStrings(runes []rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
