// internal/content/form/record.go
//
// forms_sp models: the store row and the UI-facing item.
//
// Context
// -------
// The forms table is the only one that follows snake_case column naming
// (form_url, is_required) while the UI speaks camelCase (formUrl,
// isRequired).  This package is the sole owner of the translation; no
// other code ever sees the snake_case names.  The two mapping functions
// live in mapping.go so they can be tested without a database.
//
// Schema reference (2025-06-11)
//
//	CREATE TABLE forms_sp (
//	    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    title       TEXT NOT NULL,
//	    description TEXT NOT NULL DEFAULT '',
//	    category    TEXT NOT NULL,
//	    form_url    TEXT NOT NULL,
//	    deadline    TEXT NOT NULL DEFAULT '',
//	    is_required BOOLEAN NOT NULL DEFAULT TRUE,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
package form

import (
	"strconv"
	"time"
)

// Row mirrors one row in forms_sp, store naming.
type Row struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	FormURL     string    `db:"form_url"`
	Deadline    string    `db:"deadline"`
	IsRequired  bool      `db:"is_required"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Item is the UI-facing record, camelCase naming.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"    validate:"required"`
	FormURL     string    `json:"formUrl"     validate:"required"`
	Deadline    string    `json:"deadline"`
	IsRequired  bool      `json:"isRequired"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordID implements content.Record.
func (it Item) RecordID() string { return it.ID }

// Columns implements content.Record.
func (it Item) Columns() []string {
	return []string{
		"id", "title", "description", "category",
		"formUrl", "deadline", "isRequired", "created_at",
	}
}

// Values implements content.Record.
func (it Item) Values() []string {
	return []string{
		it.ID, it.Title, it.Description, it.Category,
		it.FormURL, it.Deadline, strconv.FormatBool(it.IsRequired),
		it.CreatedAt.Format(time.RFC3339),
	}
}
