// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Question: id, question, answer, category, difficulty
  - Category: id, type (display label)

CategoryMap turns a category list into the id → label object that
listing responses embed.

# Request Types

Request bodies use pointer fields so that "absent" and "zero" differ:

  - QuestionsPostRequest: searchTerm, or question/answer/category/difficulty
  - QuizRequest: previous_questions, quiz_category{id, type}

Numeric ids and difficulty accept either JSON numbers or numeric strings
through FlexInt.

Validation happens once, up front:

	var req models.QuizRequest
	categoryID, previous, ok := req.Validate()

# Response Types

Every success body carries "success": true. Errors use ErrorResponse:

	{"success": false, "error": 404, "message": "resource not found"}
*/
package models
