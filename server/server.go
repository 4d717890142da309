// Package server maps the HTTP routes of the word service onto
// service.Service.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/satriahrh/wordd/service"
)

const defaultLanguage = "en"

type Options struct {
	CORSAllowedOrigins []string
}

type handler struct {
	svc    service.Service
	logger *zap.Logger
}

func NewRouter(svc service.Service, options Options, logger *zap.Logger) http.Handler {
	h := &handler{svc: svc, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: options.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/langs", h.getLanguages)
	router.Get("/config/{lang}", h.getConfig)
	router.Get("/word/{word}", h.checkWord)
	router.Get("/word/{lang}/{word}", h.checkWord)
	router.Get("/validate/{word}", h.validateWord)
	router.Get("/validate/{lang}/{word}", h.validateWord)
	router.Route("/rand/langs/{lang}", func(r chi.Router) {
		r.Get("/letter", h.randomLetters(svc.RandomLetters))
		r.Get("/vowel", h.randomLetters(svc.RandomVowels))
		r.Get("/consonant", h.randomLetters(svc.RandomConsonants))
		r.Get("/unicorn", h.randomLetters(svc.RandomUnicorns))
		r.Get("/rack", h.randomLetters(svc.DealRack))
		r.Get("/word", h.randomWords)
	})
	return router
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// lang falls back to English on the legacy routes without a language.
func lang(r *http.Request) string {
	if lang := chi.URLParam(r, "lang"); lang != "" {
		return lang
	}
	return defaultLanguage
}
