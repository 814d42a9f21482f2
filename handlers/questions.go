// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/middleware"
	"github.com/danielhkuo/trivia-api/models"
)

type QuestionHandler struct {
	store *db.Store
}

func NewQuestionHandler(store *db.Store) *QuestionHandler {
	return &QuestionHandler{store: store}
}

// ListQuestions handles GET /questions?page=N
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.store.Questions(r.Context())
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	categories, err := h.store.Categories(r.Context())
	if err != nil {
		slog.Error("failed to query categories", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	current := Paginate(questions, PageFromRequest(r))
	if len(current) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Success:        true,
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     models.CategoryMap(categories),
	})
}

// PostQuestions handles POST /questions.
// A body with a non-empty searchTerm is a search, anything else a create.
func (h *QuestionHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.QuestionsPostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest)
		return
	}

	if req.IsSearch() {
		h.searchQuestions(w, r, *req.SearchTerm)
		return
	}
	h.createQuestion(w, r, req)
}

func (h *QuestionHandler) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := h.store.SearchQuestions(r.Context(), term)
	if err != nil {
		slog.Error("failed to search questions", "term", term, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	// No matches is reported as not found, not as an empty page
	if len(matches) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	total, err := h.store.CountQuestions(r.Context())
	if err != nil {
		slog.Error("failed to count questions", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{
		Success:        true,
		Questions:      Paginate(matches, PageFromRequest(r)),
		TotalQuestions: total,
	})
}

func (h *QuestionHandler) createQuestion(w http.ResponseWriter, r *http.Request, req models.QuestionsPostRequest) {
	newQuestion, ok := req.NewQuestion()
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	created, err := h.store.InsertQuestion(r.Context(), newQuestion)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	slog.Info("question created", "question_id", created.ID, "category", created.Category)

	questions, err := h.store.Questions(r.Context())
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CreateQuestionResponse{
		Success:          true,
		QuestionID:       created.ID,
		QuestionCreated:  created.Question,
		QuestionCategory: created.Category,
		Questions:        Paginate(questions, PageFromRequest(r)),
		TotalQuestions:   len(questions),
	})
}

// DeleteQuestion handles DELETE /questions/{id}
// A missing question is unprocessable rather than not found.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	err = h.store.DeleteQuestion(r.Context(), questionID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		slog.Error("failed to delete question", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	slog.Info("question deleted", "question_id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}
