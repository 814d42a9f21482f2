// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/handlers"
	"github.com/danielhkuo/trivia-api/middleware"
)

func NewRouter(store *db.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(store)
	questionHandler := handlers.NewQuestionHandler(store)
	quizHandler := handlers.NewQuizHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Categories
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoryHandler.ListCategories))
	mux.HandleFunc("GET /categories/{id}/questions", middleware.WithLogging(categoryHandler.ListCategoryQuestions))

	// Questions
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.PostQuestions))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))

	// Quiz play
	mux.HandleFunc("POST /quizzes", middleware.WithLogging(quizHandler.NextQuestion))

	// Method-less patterns match whatever the routes above do not,
	// so the JSON body replaces the mux's plain-text 405
	for _, pattern := range []string{
		"/health",
		"/categories",
		"/categories/{id}/questions",
		"/questions",
		"/questions/{id}",
		"/quizzes",
	} {
		mux.HandleFunc(pattern, middleware.WithLogging(methodNotAllowed))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("trivia API v1"))
	})

	// Anything else
	mux.HandleFunc("/", middleware.WithLogging(notFound))

	return mux
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound)
}
