// internal/content/download/record.go
//
// downloads_sp row model.
//
// Context
// -------
// The downloads table was created from the original admin tool's UI
// objects, so most columns carry quoted camelCase names ("downloadUrl",
// "fileType", "fileSize", "lastUpdated").  Only id and created_at follow
// SQL convention, and updated_at is known to be missing from the
// production table entirely (see content/drift.go).
//
// Schema reference (2025-06-11)
//
//	CREATE TABLE downloads_sp (
//	    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    category      TEXT NOT NULL,
//	    title         TEXT NOT NULL,
//	    description   TEXT NOT NULL DEFAULT '',
//	    "downloadUrl" TEXT NOT NULL,
//	    "fileType"    TEXT NOT NULL DEFAULT 'PDF',
//	    "fileSize"    TEXT NOT NULL DEFAULT '',
//	    "lastUpdated" TEXT NOT NULL DEFAULT '',
//	    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	    -- updated_at exists in code, not in the live table.
//	);
package download

import (
	"time"
)

// Fixed category ids.  Unrecognized values still render; SectionText falls
// back to the raw string.
const (
	CategorySponsor  = "sponsor"
	CategorySpeaker  = "speaker"
	CategoryBranding = "branding"
	CategoryPress    = "press"
	CategoryGeneral  = "general"
)

// Item mirrors one row in downloads_sp.
type Item struct {
	ID          string     `db:"id"          json:"id"`
	Category    string     `db:"category"    json:"category"    validate:"required"`
	Title       string     `db:"title"       json:"title"       validate:"required"`
	Description string     `db:"description" json:"description"`
	DownloadURL string     `db:"downloadUrl" json:"downloadUrl" validate:"required"`
	FileType    string     `db:"fileType"    json:"fileType"`
	FileSize    string     `db:"fileSize"    json:"fileSize"`
	LastUpdated string     `db:"lastUpdated" json:"lastUpdated"`
	CreatedAt   time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"  json:"updated_at,omitempty"`
}

// RecordID implements content.Record.
func (it Item) RecordID() string { return it.ID }

// Columns implements content.Record; export order is the UI field order.
func (it Item) Columns() []string {
	return []string{
		"id", "category", "title", "description",
		"downloadUrl", "fileType", "fileSize", "lastUpdated", "created_at",
	}
}

// Values implements content.Record.
func (it Item) Values() []string {
	return []string{
		it.ID, it.Category, it.Title, it.Description,
		it.DownloadURL, it.FileType, it.FileSize, it.LastUpdated,
		it.CreatedAt.Format(time.RFC3339),
	}
}

// applyDefaults fills the entity defaults the edit modal pre-populates:
// fileType PDF, lastUpdated today.
func applyDefaults(it *Item) {
	if it.FileType == "" {
		it.FileType = "PDF"
	}
	if it.LastUpdated == "" {
		it.LastUpdated = time.Now().Format("2006-01-02")
	}
}

var categoryNames = map[string]string{
	CategorySponsor:  "スポンサー向け資料",
	CategorySpeaker:  "登壇者向け資料",
	CategoryBranding: "ブランド素材",
	CategoryPress:    "プレス向け資料",
	CategoryGeneral:  "一般資料",
}

var categoryDescriptions = map[string]string{
	CategorySponsor:  "スポンサー企業様向けの各種ガイドラインやマニュアルです。",
	CategorySpeaker:  "セッション発表者向けのテンプレートやガイドラインです。",
	CategoryBranding: "ロゴや広報資料など、プロモーションにご利用いただける素材です。",
	CategoryPress:    "メディア関係者向けの資料パッケージです。",
	CategoryGeneral:  "会場案内や各種一般情報です。",
}

// SectionText returns the display name and description for a category.
// Unknown categories render as themselves with an empty description
// rather than erroring.
func SectionText(category string) (name, description string) {
	name, ok := categoryNames[category]
	if !ok {
		return category, ""
	}
	return name, categoryDescriptions[category]
}
