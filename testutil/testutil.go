// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/trivia-api/cliparse"
	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/models"
	_ "modernc.org/sqlite"
)

// TestDBURL opens a private in-memory SQLite database
const TestDBURL = ":memory:"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// SetupEmptyTestDB creates a fresh database with the schema and no rows
func SetupEmptyTestDB(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// SetupTestDB creates a fresh database loaded with the demo questions
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	store := SetupEmptyTestDB(t)
	if _, err := db.SeedDemoData(context.Background(), store); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return store
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the uniform error body
func AssertError(t *testing.T, w *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	AssertStatus(t, w, code)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Success {
		t.Error("Expected success=false")
	}
	if resp.Error != code {
		t.Errorf("Expected error %d, got %d", code, resp.Error)
	}
	if resp.Message != message {
		t.Errorf("Expected message %q, got %q", message, resp.Message)
	}
}
