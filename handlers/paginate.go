// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
)

// QuestionsPerPage is the fixed page size for every listing
const QuestionsPerPage = 10

// PageFromRequest reads ?page=. Missing, malformed, or non-positive
// values mean page 1.
func PageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns records [(page-1)*10, page*10) clipped to the input.
// A page past the end is empty, never nil.
func Paginate[T any](records []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(records) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(records))
	return records[start:end]
}
