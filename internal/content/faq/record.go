// internal/content/faq/record.go
//
// faqs_sp row model.
//
// The FAQ table predates the timestamp convention: it has no created_at
// or updated_at columns at all, so the repository never stamps either.
// Priority 1 sorts first; 5 is the default and sorts last.
//
// Schema reference (2025-06-11)
//
//	CREATE TABLE faqs_sp (
//	    id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    category TEXT NOT NULL,
//	    question TEXT NOT NULL,
//	    answer   TEXT NOT NULL,
//	    priority INT  NOT NULL DEFAULT 5
//	);
package faq

import "strconv"

// Fixed category ids for FAQ grouping.
const (
	CategoryGeneral      = "general"
	CategoryVenue        = "venue"
	CategoryRegistration = "registration"
	CategorySponsor      = "sponsor"
	CategorySpeaker      = "speaker"
)

// DefaultPriority is assigned to new entries; lower sorts first.
const DefaultPriority = 5

// Item mirrors one row in faqs_sp.
type Item struct {
	ID       string `db:"id"       json:"id"`
	Category string `db:"category" json:"category" validate:"required"`
	Question string `db:"question" json:"question" validate:"required"`
	Answer   string `db:"answer"   json:"answer"   validate:"required"`
	Priority int    `db:"priority" json:"priority"`
}

// RecordID implements content.Record.
func (it Item) RecordID() string { return it.ID }

// Columns implements content.Record.
func (it Item) Columns() []string {
	return []string{"id", "category", "question", "answer", "priority"}
}

// Values implements content.Record.
func (it Item) Values() []string {
	return []string{it.ID, it.Category, it.Question, it.Answer, strconv.Itoa(it.Priority)}
}

func applyDefaults(it *Item) {
	if it.Priority == 0 {
		it.Priority = DefaultPriority
	}
}
