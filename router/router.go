// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/danielhkuo/quiz-responses/cliparse"
	"github.com/danielhkuo/quiz-responses/handlers"
	"github.com/danielhkuo/quiz-responses/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(db)
	responseHandler := handlers.NewResponseHandler(db)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Quiz content
	r.Get("/quizzes", middleware.WithLogging(quizHandler.ListQuizzes))
	r.Get("/quizzes/{quizID:[0-9]+}/questions", middleware.WithLogging(quizHandler.ListQuestions))

	// Answer submission
	r.Post("/responses", middleware.WithLogging(responseHandler.Submit))

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quiz-responses API v1"))
	})

	return r
}
