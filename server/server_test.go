package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/satriahrh/wordd"
	"github.com/satriahrh/wordd/data"
	"github.com/satriahrh/wordd/distribution"
	"github.com/satriahrh/wordd/server"
	"github.com/satriahrh/wordd/service"
)

const allowedOrigin = "http://board.example"

func lexiconOf(texts ...string) []data.Word {
	out := make([]data.Word, len(texts))
	for i, text := range texts {
		out[i] = data.NewWord(text)
	}
	return out
}

func newRouter() http.Handler {
	registry := wordd.NewRegistry(
		distribution.BuildProfile(lexiconOf("ACT", "CAT", "DOG", "HELLO", "TOGA"), data.English, 100, zap.NewNop()),
		distribution.BuildProfile(lexiconOf("NIÑO", "OSO"), data.Spanish, 100, zap.NewNop()),
	)
	svc := service.NewService(registry, service.Options{CacheSize: 16, MaxCount: 10}, zap.NewNop())
	return server.NewRouter(svc, server.Options{
		CORSAllowedOrigins: []string{allowedOrigin},
	}, zap.NewNop())
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func lines(body string) []string {
	if body == "" {
		return []string{}
	}
	return strings.Split(body, "\n")
}

func TestLanguages(t *testing.T) {
	recorder := get(t, newRouter(), "/langs")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var languages []service.LanguageInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &languages))
	assert.Equal(t, []service.LanguageInfo{
		{Name: "English", Code: "en"},
		{Name: "Español", Code: "es"},
	}, languages)
}

func TestConfig(t *testing.T) {
	router := newRouter()

	t.Run("Supported", func(t *testing.T) {
		recorder := get(t, router, "/config/es")
		require.Equal(t, http.StatusOK, recorder.Code)

		var summary data.Summary
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
		assert.Equal(t, 2, summary.Words)
		assert.Contains(t, summary.Tiles, "Ñ")
		assert.Equal(t, 2, summary.Tiles["_"])
	})
	t.Run("NotSupported", func(t *testing.T) {
		recorder := get(t, router, "/config/xx")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Language 'xx' not supported", recorder.Body.String())
	})
}

func TestWord(t *testing.T) {
	router := newRouter()

	t.Run("Valid", func(t *testing.T) {
		recorder := get(t, router, "/word/en/hello")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Valid word: HELLO", recorder.Body.String())
	})
	t.Run("DefaultsToEnglish", func(t *testing.T) {
		recorder := get(t, router, "/word/toga")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Valid word: TOGA", recorder.Body.String())
	})
	t.Run("Invalid", func(t *testing.T) {
		recorder := get(t, router, "/word/en/zzz")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
	t.Run("NotSupported", func(t *testing.T) {
		recorder := get(t, router, "/word/de/hallo")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Language 'de' not supported", recorder.Body.String())
	})
}

func TestValidate(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"Valid", "/validate/es/oso", http.StatusOK},
		{"DefaultsToEnglish", "/validate/cat", http.StatusOK},
		{"Invalid", "/validate/es/gato", http.StatusNotFound},
		{"NotSupported", "/validate/xx/cat", http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			recorder := get(t, router, test.target)
			assert.Equal(t, test.code, recorder.Code)
			assert.Empty(t, recorder.Body.String())
		})
	}
}

func TestRandomLetters(t *testing.T) {
	router := newRouter()

	t.Run("DefaultCount", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/letter")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, lines(recorder.Body.String()), 1)
	})
	t.Run("Count", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/vowel?count=4")
		require.Equal(t, http.StatusOK, recorder.Code)
		got := lines(recorder.Body.String())
		assert.Len(t, got, 4)
		for _, letter := range got {
			assert.Contains(t, []string{"A", "E", "I", "O", "U"}, letter)
		}
	})
	t.Run("CountIsCapped", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/es/consonant?count=5000")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, lines(recorder.Body.String()), 10)
	})
	t.Run("ZeroCount", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/unicorn?count=0")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
	t.Run("BadCount", func(t *testing.T) {
		for _, count := range []string{"abc", "-1"} {
			recorder := get(t, router, "/rand/langs/en/letter?count="+count)
			assert.Equal(t, http.StatusBadRequest, recorder.Code, count)
		}
	})
	t.Run("Rack", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/rack?count=7")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, lines(recorder.Body.String()), 7)
	})
	t.Run("NotSupported", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/xx/letter")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Language 'xx' not supported", recorder.Body.String())
	})
}

func TestRandomWords(t *testing.T) {
	router := newRouter()

	t.Run("Unconstrained", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/word?count=3")
		require.Equal(t, http.StatusOK, recorder.Code)
		got := lines(recorder.Body.String())
		assert.Len(t, got, 3)
		assert.Subset(t, []string{"ACT", "CAT", "DOG", "HELLO", "TOGA"}, got)
	})
	t.Run("Letters", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/word?count=5&letters=tac")
		require.Equal(t, http.StatusOK, recorder.Code)
		got := lines(recorder.Body.String())
		assert.Len(t, got, 5)
		assert.Subset(t, []string{"ACT", "CAT"}, got)
	})
	t.Run("Minima", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/word?count=4&min_vowels=2&min_consonants=3")
		require.Equal(t, http.StatusOK, recorder.Code)
		for _, word := range lines(recorder.Body.String()) {
			assert.Equal(t, "HELLO", word)
		}
	})
	t.Run("NoMatch", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/word?letters=zz")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
	t.Run("BadMinimum", func(t *testing.T) {
		recorder := get(t, router, "/rand/langs/en/word?min_vowels=x")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCORS(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/langs", nil)
	request.Header.Set("Origin", allowedOrigin)
	newRouter().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, allowedOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
}
