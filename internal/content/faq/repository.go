// internal/content/faq/repository.go
//
// faqs_sp repository.
//
// Simpler than the downloads repository: the table has no timestamp
// columns, so there is no drift retry and no natural key to recover an
// unechoed insert with.  If the store ever fails to echo a created row
// the create is reported as failed outright.
package faq

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

// Repository wraps CRUD access to faqs_sp.
type Repository struct {
	db *sqlx.DB
}

// NewRepository returns a Repository bound to db.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns every FAQ ordered by priority, highest (1) first.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	const q = `SELECT * FROM faqs_sp ORDER BY priority ASC`
	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, content.Unavailable("faqs.list", err)
	}
	return items, nil
}

// ByCategory returns one category's FAQs ordered by priority.
func (r *Repository) ByCategory(ctx context.Context, category string) ([]Item, error) {
	const q = `SELECT * FROM faqs_sp WHERE category = $1 ORDER BY priority ASC`
	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, q, category); err != nil {
		return nil, content.Unavailable("faqs.byCategory", err)
	}
	return items, nil
}

// Search matches keyword against question or answer, case-insensitively.
func (r *Repository) Search(ctx context.Context, keyword string) ([]Item, error) {
	const q = `
        SELECT * FROM faqs_sp
        WHERE question ILIKE '%' || $1 || '%' OR answer ILIKE '%' || $1 || '%'
        ORDER BY priority ASC`
	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, q, keyword); err != nil {
		return nil, content.Unavailable("faqs.search", err)
	}
	return items, nil
}

// ByID fetches a single FAQ.
func (r *Repository) ByID(ctx context.Context, id string) (*Item, error) {
	const q = `SELECT * FROM faqs_sp WHERE id = $1 LIMIT 1`
	var it Item
	if err := r.db.GetContext(ctx, &it, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, content.Unavailable("faqs.byID", err)
	}
	return &it, nil
}

// Create inserts a new FAQ; the store generates the id.
func (r *Repository) Create(ctx context.Context, it Item) (*Item, error) {
	it.ID = ""
	applyDefaults(&it)

	const q = `
        INSERT INTO faqs_sp (category, question, answer, priority)
        VALUES ($1, $2, $3, $4)
        RETURNING *`
	var created Item
	err := r.db.GetContext(ctx, &created, q, it.Category, it.Question, it.Answer, it.Priority)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, content.ErrCreateNotEchoed
	}
	if err != nil {
		return nil, content.Unavailable("faqs.create", err)
	}
	return &created, nil
}

// Update replaces the editable fields of one FAQ.
func (r *Repository) Update(ctx context.Context, id string, it Item) (*Item, error) {
	if _, err := r.ByID(ctx, id); err != nil {
		return nil, err
	}
	applyDefaults(&it)

	const q = `
        UPDATE faqs_sp
           SET category = $2, question = $3, answer = $4, priority = $5
         WHERE id = $1
        RETURNING *`
	var updated Item
	err := r.db.GetContext(ctx, &updated, q, id, it.Category, it.Question, it.Answer, it.Priority)
	if errors.Is(err, sql.ErrNoRows) {
		return r.ByID(ctx, id)
	}
	if err != nil {
		return nil, content.Unavailable("faqs.update", err)
	}
	return &updated, nil
}

// Delete removes one FAQ.  Deleting an absent id is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM faqs_sp WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return content.Unavailable("faqs.delete", err)
	}
	return nil
}
