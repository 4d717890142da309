package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/satriahrh/wordd/service"
)

var ErrorInvalidQuery = errors.New("invalid query")

func (h *handler) getLanguages(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.svc.GetLanguages(r.Context()))
}

func (h *handler) getConfig(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetConfig(r.Context(), lang(r))
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, summary)
}

func (h *handler) checkWord(w http.ResponseWriter, r *http.Request) {
	word, valid, err := h.svc.CheckWord(r.Context(), lang(r), chi.URLParam(r, "word"))
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	if !valid {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	textResponse(w, http.StatusOK, "Valid word: "+word)
}

func (h *handler) validateWord(w http.ResponseWriter, r *http.Request) {
	_, valid, err := h.svc.CheckWord(r.Context(), lang(r), chi.URLParam(r, "word"))
	switch {
	case errors.Is(err, service.ErrorLanguageNotSupported):
		w.WriteHeader(http.StatusBadRequest)
	case err != nil:
		h.errorResponse(w, r, err)
	case valid:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type letterDraw func(ctx context.Context, lang string, count int) ([]string, error)

func (h *handler) randomLetters(draw letterDraw) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.count(r)
		if err != nil {
			h.errorResponse(w, r, err)
			return
		}
		letters, err := draw(r.Context(), lang(r), count)
		if err != nil {
			h.errorResponse(w, r, err)
			return
		}
		textResponse(w, http.StatusOK, strings.Join(letters, "\n"))
	}
}

func (h *handler) randomWords(w http.ResponseWriter, r *http.Request) {
	count, err := h.count(r)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	query := service.WordQuery{}
	values := r.URL.Query()
	if _, ok := values["letters"]; ok {
		letters := values.Get("letters")
		query.Letters = &letters
	}
	if query.MinVowels, err = nonNegative(values.Get("min_vowels"), 0); err != nil {
		h.errorResponse(w, r, err)
		return
	}
	if query.MinConsonants, err = nonNegative(values.Get("min_consonants"), 0); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	words, err := h.svc.RandomWords(r.Context(), lang(r), count, query)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	textResponse(w, http.StatusOK, strings.Join(words, "\n"))
}

// count reads ?count=, one by default. The service caps it.
func (h *handler) count(r *http.Request) (int, error) {
	return nonNegative(r.URL.Query().Get("count"), 1)
}

func nonNegative(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrorInvalidQuery, raw)
	}
	return n, nil
}

func (h *handler) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrorLanguageNotSupported):
		textResponse(w, http.StatusBadRequest, fmt.Sprintf("Language '%s' not supported", lang(r)))
	case errors.Is(err, ErrorInvalidQuery):
		textResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
