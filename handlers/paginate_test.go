// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
)

func makeRange(n int) []int {
	records := make([]int, n)
	for i := range records {
		records[i] = i
	}
	return records
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		page      int
		wantStart int
		wantLen   int
	}{
		{"empty input", 0, 1, 0, 0},
		{"first full page", 25, 1, 0, 10},
		{"second full page", 25, 2, 10, 10},
		{"partial last page", 25, 3, 20, 5},
		{"past the end", 25, 4, 0, 0},
		{"exactly one page", 10, 1, 0, 10},
		{"exact boundary past end", 10, 2, 0, 0},
		{"non-positive page treated as first", 25, 0, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(makeRange(tt.n), tt.page)
			if got == nil {
				t.Fatal("Expected non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("Expected %d records, got %d", tt.wantLen, len(got))
			}
			for i, v := range got {
				if v != tt.wantStart+i {
					t.Errorf("Expected record %d at position %d, got %d", tt.wantStart+i, i, v)
				}
			}
		})
	}
}

func TestPaginate_Property(t *testing.T) {
	for n := 0; n <= 35; n++ {
		records := makeRange(n)
		for page := 1; page <= 5; page++ {
			got := Paginate(records, page)
			start := min(10*(page-1), n)
			end := min(10*page, n)
			if len(got) != end-start {
				t.Fatalf("n=%d page=%d: expected %d records, got %d", n, page, end-start, len(got))
			}
			for i, v := range got {
				if v != start+i {
					t.Fatalf("n=%d page=%d: expected %d at %d, got %d", n, page, start+i, i, v)
				}
			}
		}
	}
}

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?page=1", 1},
		{"?page=3", 3},
		{"?page=0", 1},
		{"?page=-2", 1},
		{"?page=abc", 1},
		{"?page=1.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions"+tt.query, nil)
			if got := PageFromRequest(req); got != tt.want {
				t.Errorf("Expected page %d, got %d", tt.want, got)
			}
		})
	}
}
