// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores questions and categories.

# Opening a Store

Open connects with the driver named by cfg.DatabaseType ("sqlite" or
"postgres"), pings, and creates the schema:

	store, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

The caller registers the driver with a blank import (modernc.org/sqlite
or github.com/lib/pq).

# Tables

  - categories: id, type
  - questions: id, question, answer, category, difficulty

questions.category is not a foreign key. The value is stored as given.

# Operations

	Categories, Category
	Questions, QuestionsByCategory, SearchQuestions, Question, CountQuestions
	InsertQuestion, DeleteQuestion

Lookups of a single record and DeleteQuestion return ErrNotFound when the
row does not exist. Other failures are wrapped with context.

# Demo Data

SeedDemoData fills an empty database with six categories and nineteen
questions. It is a no-op once any category exists.
*/
package db
