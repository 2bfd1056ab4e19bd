package content

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMissingColumnFromColumnField(t *testing.T) {
	err := &pq.Error{Code: "42703", Column: "updated_at"}
	col, ok := MissingColumn(err)
	if !ok || col != "updated_at" {
		t.Fatalf("got (%q, %v), want (updated_at, true)", col, ok)
	}
}

func TestMissingColumnFromMessage(t *testing.T) {
	// Older servers leave Column empty and only name the column in the
	// message text.
	err := &pq.Error{
		Code:    "42703",
		Message: `column "updated_at" of relation "downloads_sp" does not exist`,
	}
	col, ok := MissingColumn(err)
	if !ok || col != "updated_at" {
		t.Fatalf("got (%q, %v), want (updated_at, true)", col, ok)
	}
}

func TestMissingColumnWrapped(t *testing.T) {
	inner := &pq.Error{Code: "42703", Column: "updated_at"}
	wrapped := fmt.Errorf("insert: %w", inner)
	if !DriftOnUpdatedAt(wrapped) {
		t.Fatal("wrapped undefined_column should still be detected")
	}
}

func TestMissingColumnRejectsOtherErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"plain", errors.New("connection refused")},
		{"other pg code", &pq.Error{Code: "23505", Column: "title"}},
		{"no column info", &pq.Error{Code: "42703", Message: "no quotes here"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := MissingColumn(tc.err); ok {
				t.Fatalf("%v should not report a missing column", tc.err)
			}
		})
	}
}

func TestDriftOnUpdatedAtOnlyMatchesThatColumn(t *testing.T) {
	other := &pq.Error{Code: "42703", Column: "lastUpdated"}
	if DriftOnUpdatedAt(other) {
		t.Fatal("a different missing column must not trigger the retry")
	}
}
