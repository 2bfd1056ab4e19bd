// internal/content/form/repository.go
//
// forms_sp repository.
//
// Same operation shape as the downloads repository, plus the
// snake_case ↔ camelCase translation at the boundary: every read passes
// through toItem, every write through toRow.  The updated_at drift retry
// is applied here too even though forms_sp currently carries the column;
// the failure mode is table-independent and cheap to handle uniformly.
package form

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/content"
	"github.com/primenumber-jp/datasummit-site/internal/metrics"
)

// Repository wraps CRUD access to forms_sp.
type Repository struct {
	db    *sqlx.DB
	clock *content.Clock
}

// NewRepository returns a Repository bound to db.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db, clock: &content.Clock{}}
}

// List returns every form, newest first.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	const q = `SELECT * FROM forms_sp ORDER BY created_at DESC`
	rows := []Row{}
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, content.Unavailable("forms.list", err)
	}
	return toItems(rows), nil
}

// ByCategory returns one category's forms, newest first.
func (r *Repository) ByCategory(ctx context.Context, category string) ([]Item, error) {
	const q = `SELECT * FROM forms_sp WHERE category = $1 ORDER BY created_at DESC`
	rows := []Row{}
	if err := r.db.SelectContext(ctx, &rows, q, category); err != nil {
		return nil, content.Unavailable("forms.byCategory", err)
	}
	return toItems(rows), nil
}

// ByID fetches a single form.
func (r *Repository) ByID(ctx context.Context, id string) (*Item, error) {
	const q = `SELECT * FROM forms_sp WHERE id = $1 LIMIT 1`
	var row Row
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, content.Unavailable("forms.byID", err)
	}
	it := toItem(row)
	return &it, nil
}

// Create inserts a new form; the store generates the id.
func (r *Repository) Create(ctx context.Context, it Item) (*Item, error) {
	it.ID = ""
	row := toRow(it)
	now := r.clock.Stamp()

	const insertFull = `
        INSERT INTO forms_sp
               (title, description, category, form_url, deadline, is_required, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING *`
	const insertNarrow = `
        INSERT INTO forms_sp
               (title, description, category, form_url, deadline, is_required, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING *`

	args := []any{row.Title, row.Description, row.Category, row.FormURL, row.Deadline, row.IsRequired, now}

	var created Row
	err := r.db.GetContext(ctx, &created, insertFull, args...)
	if content.DriftOnUpdatedAt(err) {
		metrics.DriftRetriesTotal.Inc()
		zap.S().Warnw("forms: live table has no updated_at column, retrying insert without it",
			"title", row.Title)
		err = r.db.GetContext(ctx, &created, insertNarrow, args...)
	}
	switch {
	case err == nil:
		out := toItem(created)
		return &out, nil
	case errors.Is(err, sql.ErrNoRows):
		return r.recoverCreated(ctx, row.Title, now)
	default:
		return nil, content.Unavailable("forms.create", err)
	}
}

// recoverCreated re-queries by title + created_at after an insert the
// store did not echo; zero rows is ErrCreateNotEchoed.
func (r *Repository) recoverCreated(ctx context.Context, title string, createdAt any) (*Item, error) {
	const q = `SELECT * FROM forms_sp WHERE title = $1 AND created_at = $2 LIMIT 1`
	var row Row
	err := r.db.GetContext(ctx, &row, q, title, createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		zap.S().Errorw("forms: created row not found on read-back", "title", title)
		return nil, content.ErrCreateNotEchoed
	}
	if err != nil {
		return nil, content.Unavailable("forms.create", err)
	}
	it := toItem(row)
	return &it, nil
}

// Update replaces the editable fields of one form; id and created_at are
// never written.
func (r *Repository) Update(ctx context.Context, id string, it Item) (*Item, error) {
	if _, err := r.ByID(ctx, id); err != nil {
		return nil, err
	}
	row := toRow(it)
	now := r.clock.Stamp()

	const updateFull = `
        UPDATE forms_sp
           SET title = $2, description = $3, category = $4, form_url = $5,
               deadline = $6, is_required = $7, updated_at = $8
         WHERE id = $1
        RETURNING *`
	const updateNarrow = `
        UPDATE forms_sp
           SET title = $2, description = $3, category = $4, form_url = $5,
               deadline = $6, is_required = $7
         WHERE id = $1
        RETURNING *`

	var updated Row
	err := r.db.GetContext(ctx, &updated, updateFull,
		id, row.Title, row.Description, row.Category, row.FormURL, row.Deadline, row.IsRequired, now)
	if content.DriftOnUpdatedAt(err) {
		metrics.DriftRetriesTotal.Inc()
		zap.S().Warnw("forms: live table has no updated_at column, retrying update without it",
			"id", id)
		err = r.db.GetContext(ctx, &updated, updateNarrow,
			id, row.Title, row.Description, row.Category, row.FormURL, row.Deadline, row.IsRequired)
	}
	switch {
	case err == nil:
		out := toItem(updated)
		return &out, nil
	case errors.Is(err, sql.ErrNoRows):
		ref, refErr := r.ByID(ctx, id)
		if refErr != nil {
			return nil, refErr
		}
		if ref.Title != it.Title || ref.FormURL != it.FormURL {
			zap.S().Warnw("forms: update not yet visible on read-back, returning stale row", "id", id)
		}
		return ref, nil
	default:
		return nil, content.Unavailable("forms.update", err)
	}
}

// Delete removes one form.  Deleting an absent id is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM forms_sp WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return content.Unavailable("forms.delete", err)
	}
	return nil
}
