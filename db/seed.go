// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"
)

// DemoCategories are inserted in this order, so a fresh database numbers them 1-6.
var DemoCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

type demoQuestion struct {
	question   string
	answer     string
	category   string
	difficulty int64
}

var demoQuestions = []demoQuestion{
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", "History", 2},
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", "History", 1},
	{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", "Entertainment", 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", "Entertainment", 4},
	{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", "Edward Scissorhands", "Entertainment", 3},
	{"Which is the only team to play in every soccer World Cup tournament?", "Brazil", "Sports", 3},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", "Sports", 4},
	{"Who invented Peanut Butter?", "George Washington Carver", "History", 2},
	{"What is the largest lake in Africa?", "Lake Victoria", "Geography", 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", "Geography", 3},
	{"The Taj Mahal is located in which Indian city?", "Agra", "Geography", 2},
	{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", "Art", 1},
	{"La Giaconda is better known as what?", "Mona Lisa", "Art", 3},
	{"How many paintings did Van Gogh sell in his lifetime?", "One", "Art", 4},
	{"Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", "Jackson Pollock", "Art", 2},
	{"What is the heaviest organ in the human body?", "The Liver", "Science", 4},
	{"Who discovered penicillin?", "Alexander Fleming", "Science", 3},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", "Science", 4},
	{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", "History", 4},
}

// DemoQuestionCount is the number of questions SeedDemoData inserts.
var DemoQuestionCount = len(demoQuestions)

// SeedDemoData loads the demo categories and questions when the store has
// no categories yet. It reports whether anything was inserted.
func SeedDemoData(ctx context.Context, s *Store) (bool, error) {
	existing, err := s.Categories(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	ids := make(map[string]int64, len(DemoCategories))
	for _, label := range DemoCategories {
		var id int64
		err := tx.QueryRowContext(ctx, s.rebind(`INSERT INTO categories (type) VALUES (?) RETURNING id`), label).Scan(&id)
		if err != nil {
			return false, fmt.Errorf("seed category %q: %w", label, err)
		}
		ids[label] = id
	}

	for _, q := range demoQuestions {
		_, err := tx.ExecContext(ctx, s.rebind(`
			INSERT INTO questions (question, answer, category, difficulty)
			VALUES (?, ?, ?, ?)
		`), q.question, q.answer, ids[q.category], q.difficulty)
		if err != nil {
			return false, fmt.Errorf("seed question %q: %w", q.question, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	slog.Info("demo data seeded", "categories", len(DemoCategories), "questions", len(demoQuestions))
	return true, nil
}
