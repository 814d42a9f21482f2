// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the trivia API.

# Handler Types

Each handler is a struct holding the store:

  - CategoryHandler: Category map and per-category question listing
  - QuestionHandler: Listing, search, creation, deletion
  - QuizHandler: Next unseen quiz question

	questionHandler := handlers.NewQuestionHandler(store)

# Pagination

Listings are cut into pages of QuestionsPerPage (10):

	current := Paginate(questions, PageFromRequest(r))

A page past the end is empty, and handlers answer it with 404.

# Quiz Selection

	pool := CandidatePool(questions, categoryID)
	question, ok := PickUnseen(pool, previousIDs)

Category 0 means every category. When nothing unseen remains, ok is false
and the response carries no question, which ends the quiz.

# Status Codes

The mapping is deliberately not uniform:

  - Empty listing or search: 404
  - Unknown category: 400
  - Unknown question on delete: 422
  - Missing create fields or any store failure: 422
  - Missing quiz_category: 400
*/
package handlers
