// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/trivia-api/models"
	"github.com/danielhkuo/trivia-api/testutil"
)

func playQuiz(t *testing.T, handler *QuizHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/quizzes", body, nil)
	w := httptest.NewRecorder()
	handler.NextQuestion(w, req)
	return w
}

func TestNextQuestion(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewQuizHandler(store)

	previous := []int{9, 11}
	w := playQuiz(t, handler, map[string]interface{}{
		"previous_questions": previous,
		"quiz_category":      map[string]string{"id": "3", "type": "Geography"},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuizResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if resp.Question == nil {
		t.Fatal("Expected a question")
	}
	// Geography holds 9, 10, 11
	if resp.Question.ID != 10 {
		t.Errorf("Expected question 10, got %d", resp.Question.ID)
	}
}

func TestNextQuestion_AllCategories(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewQuizHandler(store)

	w := playQuiz(t, handler, map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 0, "type": "click"},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuizResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Question == nil {
		t.Fatal("Expected a question from the full set")
	}
}

func TestNextQuestion_PlaysThroughCategory(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewQuizHandler(store)

	played := []int64{}
	for {
		w := playQuiz(t, handler, map[string]interface{}{
			"previous_questions": played,
			"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
		})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.QuizResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Success {
			t.Fatal("Expected success=true")
		}
		if resp.Question == nil {
			break
		}
		for _, id := range played {
			if id == resp.Question.ID {
				t.Fatalf("Question %d served twice", id)
			}
		}
		if resp.Question.Category != 1 {
			t.Fatalf("Question %d is from category %d", resp.Question.ID, resp.Question.Category)
		}
		played = append(played, resp.Question.ID)
		if len(played) > 3 {
			t.Fatal("Served more questions than the category holds")
		}
	}

	if len(played) != 3 {
		t.Errorf("Expected to play 3 science questions, played %d", len(played))
	}
}

func TestNextQuestion_UnknownCategoryFinishes(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewQuizHandler(store)

	w := playQuiz(t, handler, map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": 20000, "type": "Nothing"},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var raw map[string]any
	testutil.AssertJSON(t, w, &raw)
	if raw["success"] != true {
		t.Error("Expected success=true")
	}
	if _, ok := raw["question"]; ok {
		t.Error("Expected no question field")
	}
}

func TestNextQuestion_BadRequests(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewQuizHandler(store)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty object", map[string]interface{}{}},
		{"no body", ""},
		{"invalid JSON", "{nope"},
		{"history without category", map[string]interface{}{"previous_questions": []int{1}}},
		{"category without id", map[string]interface{}{"quiz_category": map[string]string{"type": "Science"}}},
		{"non-numeric category id", map[string]interface{}{"quiz_category": map[string]string{"id": "science"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := playQuiz(t, handler, tt.body)
			testutil.AssertError(t, w, http.StatusBadRequest, "bad request")
		})
	}
}
