// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math/rand/v2"

	"github.com/danielhkuo/trivia-api/models"
)

// CandidatePool returns the questions a quiz may draw from.
// models.AllCategories keeps every question.
func CandidatePool(questions []models.Question, categoryID int64) []models.Question {
	if categoryID == models.AllCategories {
		return questions
	}

	pool := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if q.Category == categoryID {
			pool = append(pool, q)
		}
	}
	return pool
}

// PickUnseen picks a random question from pool whose id is not in
// previousIDs. It returns false when every candidate has been played.
func PickUnseen(pool []models.Question, previousIDs []int64) (models.Question, bool) {
	seen := make(map[int64]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	remaining := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return models.Question{}, false
	}
	return remaining[rand.IntN(len(remaining))], true
}
