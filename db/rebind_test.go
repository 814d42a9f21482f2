package db

import (
	"testing"

	"github.com/danielhkuo/trivia-api/cliparse"
)

func TestRebind(t *testing.T) {
	query := `INSERT INTO questions (question, answer) VALUES (?, ?)`

	sqlite := &Store{dbType: cliparse.DatabaseSQLite}
	if got := sqlite.rebind(query); got != query {
		t.Errorf("sqlite query should be unchanged, got %q", got)
	}

	postgres := &Store{dbType: cliparse.DatabasePostgres}
	want := `INSERT INTO questions (question, answer) VALUES ($1, $2)`
	if got := postgres.rebind(query); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"heaviest": "heaviest",
		"100%":     `100\%`,
		"a_b":      `a\_b`,
		`c:\dir`:   `c:\\dir`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
