// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the trivia API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store)

# Endpoints

Health:

	GET /health

Categories:

	GET /categories                 - id → label map
	GET /categories/{id}/questions  - Questions of one category, paginated

Questions:

	GET    /questions?page=N  - All questions, paginated, plus categories
	POST   /questions         - Create, or search when searchTerm is set
	DELETE /questions/{id}    - Delete one question

Quiz:

	POST /quizzes - Next unseen question for a category

# Fallbacks

Known paths hit with the wrong method answer 405 and unknown paths answer
404, both with the JSON error body from middleware.ErrorResponse.

# Handler Initialization

The router creates handler instances with dependency injection:

	categoryHandler := handlers.NewCategoryHandler(store)
	questionHandler := handlers.NewQuestionHandler(store)
	quizHandler := handlers.NewQuizHandler(store)
*/
package router
