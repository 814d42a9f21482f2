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

type CategoryHandler struct {
	store *db.Store
}

func NewCategoryHandler(store *db.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.Categories(r.Context())
	if err != nil {
		slog.Error("failed to query categories", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	if len(categories) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoriesResponse{
		Success:    true,
		Categories: models.CategoryMap(categories),
	})
}

// ListCategoryQuestions handles GET /categories/{id}/questions
// An unknown category is a bad request; an empty page is not found.
func (h *CategoryHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	category, err := h.store.Category(r.Context(), categoryID)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("failed to query category", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.store.QuestionsByCategory(r.Context(), categoryID)
	if err != nil {
		slog.Error("failed to query category questions", "category_id", categoryID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity)
		return
	}

	current := Paginate(questions, PageFromRequest(r))
	if len(current) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CategoryQuestionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
