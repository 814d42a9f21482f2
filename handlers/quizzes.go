// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type QuizHandler struct {
	store *db.Store
}

func NewQuizHandler(store *db.Store) *QuizHandler {
	return &QuizHandler{store: store}
}

// NextQuestion handles POST /quizzes
// The client sends its full history every time; nothing is kept here.
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest)
		return
	}

	categoryID, previous, ok := req.Validate()
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest)
		return
	}

	questions, err := h.store.Questions(r.Context())
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	question, ok := PickUnseen(CandidatePool(questions, categoryID), previous)
	if !ok {
		slog.Info("quiz finished", "category_id", categoryID, "played", len(previous))
		middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{Success: true})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuizResponse{
		Success:  true,
		Question: &question,
	})
}
