package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AllCategories is the quiz_category id that selects every category
const AllCategories int64 = 0

// Domain types

type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int64  `json:"difficulty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap formats categories as id -> label
func CategoryMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// FlexInt accepts a JSON number or a string holding an integer.
// The game frontend sends category ids as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", data)
	}
	*f = FlexInt(n)
	return nil
}

// Request types

// QuestionsPostRequest covers both bodies accepted by POST /questions.
// A non-empty SearchTerm selects search; anything else is a create.
// Create fields stay raw so a wrongly typed value fails the create, not the decode.
type QuestionsPostRequest struct {
	SearchTerm *string          `json:"searchTerm"`
	Question   *json.RawMessage `json:"question"`
	Answer     *json.RawMessage `json:"answer"`
	Category   *json.RawMessage `json:"category"`
	Difficulty *json.RawMessage `json:"difficulty"`
}

func (r QuestionsPostRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

// NewQuestion returns the question to insert, or false if a field is
// missing, null, or of the wrong type
func (r QuestionsPostRequest) NewQuestion() (Question, bool) {
	if r.Question == nil || r.Answer == nil || r.Category == nil || r.Difficulty == nil {
		return Question{}, false
	}

	var q Question
	var category, difficulty FlexInt
	if json.Unmarshal(*r.Question, &q.Question) != nil ||
		json.Unmarshal(*r.Answer, &q.Answer) != nil ||
		json.Unmarshal(*r.Category, &category) != nil ||
		json.Unmarshal(*r.Difficulty, &difficulty) != nil {
		return Question{}, false
	}
	q.Category = int64(category)
	q.Difficulty = int64(difficulty)
	return q, true
}

type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Validate returns the category filter and the ids already played.
// A missing quiz_category is invalid; missing previous_questions is not.
func (r QuizRequest) Validate() (categoryID int64, previous []int64, ok bool) {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil {
		return 0, nil, false
	}
	previous = make([]int64, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		previous = append(previous, int64(id))
	}
	return int64(*r.QuizCategory.ID), previous, true
}

// Response types

type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

type QuestionsResponse struct {
	Success        bool             `json:"success"`
	Questions      []Question       `json:"questions"`
	TotalQuestions int              `json:"total_questions"`
	Categories     map[int64]string `json:"categories"`
}

type CreateQuestionResponse struct {
	Success          bool       `json:"success"`
	QuestionID       int64      `json:"question_id"`
	QuestionCreated  string     `json:"question_created"`
	QuestionCategory int64      `json:"question_category"`
	Questions        []Question `json:"questions"`
	TotalQuestions   int        `json:"total_questions"`
}

type SearchResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"totalQuestions"`
}

type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// The odd key casing is what the game frontend reads
type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_Questions"`
	CurrentCategory string     `json:"current_category"`
}

// Question is omitted once every candidate has been played
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question,omitempty"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
