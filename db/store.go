// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/models"
)

// ErrNotFound is returned when a looked-up record does not exist
var ErrNotFound = errors.New("record not found")

// Store reads and writes questions and categories.
// Queries are written with ? placeholders and rebound for postgres.
type Store struct {
	db     *sql.DB
	dbType string
}

// Open connects to the configured database and creates the schema.
// The driver must already be registered by the caller.
func Open(cfg cliparse.Config) (*Store, error) {
	conn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", cfg.DatabaseType, err)
	}

	// SQLite allows a single writer, and ":memory:" databases live per connection
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s db: %w", cfg.DatabaseType, err)
	}

	if err := CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn, dbType: cfg.DatabaseType}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) rebind(query string) string {
	if s.dbType != cliparse.DatabasePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Categories returns every category ordered by id.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Category returns one category, or ErrNotFound.
func (s *Store) Category(ctx context.Context, id int64) (models.Category, error) {
	var c models.Category
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT id, type FROM categories WHERE id = ?`), id).
		Scan(&c.ID, &c.Type)
	if err == sql.ErrNoRows {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("query category %d: %w", id, err)
	}
	return c, nil
}

// Questions returns every question ordered by id.
func (s *Store) Questions(ctx context.Context) ([]models.Question, error) {
	return s.queryQuestions(ctx, `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id`)
}

// QuestionsByCategory returns the questions of one category ordered by id.
func (s *Store) QuestionsByCategory(ctx context.Context, categoryID int64) ([]models.Question, error) {
	return s.queryQuestions(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = ?
		ORDER BY id
	`, categoryID)
}

// SearchQuestions returns questions whose text contains term, ignoring case.
// SQLite's LOWER and LIKE only fold ASCII, so on SQLite the match runs here.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	if s.dbType == cliparse.DatabasePostgres {
		return s.queryQuestions(ctx, `
			SELECT id, question, answer, category, difficulty
			FROM questions
			WHERE question ILIKE ? ESCAPE '\'
			ORDER BY id
		`, "%"+escapeLike(term)+"%")
	}

	questions, err := s.Questions(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matches := []models.Question{}
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

// Question returns one question, or ErrNotFound.
func (s *Store) Question(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = ?
	`), id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err == sql.ErrNoRows {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("query question %d: %w", id, err)
	}
	return q, nil
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// InsertQuestion stores q and returns it with its assigned id.
func (s *Store) InsertQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	err := s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), q.Question, q.Answer, q.Category, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// DeleteQuestion removes a question, or returns ErrNotFound.
func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM questions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) queryQuestions(ctx context.Context, query string, args ...any) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
