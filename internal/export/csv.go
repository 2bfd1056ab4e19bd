// internal/export/csv.go
//
// Collection → delimited text.
//
// Context
// -------
// The admin dashboard exports whatever collection is currently loaded in
// memory, never a fresh fetch.  CSV is a pure function of the records:
// one header row taken from the first record's column order, then one row
// per record.  Fields containing the delimiter, a quote, or a newline are
// wrapped in quotes with embedded quotes doubled, so any standard CSV
// reader reproduces the original values exactly.  An empty collection
// produces empty output.
package export

import (
	"strings"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

// CSV serializes records to UTF-8 delimited text.  Rows are joined with
// "\n"; the output carries no trailing newline, matching the original
// exporter.
func CSV(records []content.Record) []byte {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder

	headers := records[0].Columns()
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(h))
	}

	for _, rec := range records {
		b.WriteByte('\n')
		for i, v := range rec.Values() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(v))
		}
	}
	return []byte(b.String())
}

// escape quotes a field when it contains a comma, quote, or newline,
// doubling embedded quotes.
func escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
