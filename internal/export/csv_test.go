package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

// fakeRecord is the minimal Record for exporter tests.
type fakeRecord struct {
	cols []string
	vals []string
}

func (f fakeRecord) RecordID() string  { return f.vals[0] }
func (f fakeRecord) Columns() []string { return f.cols }
func (f fakeRecord) Values() []string  { return f.vals }

func TestCSVEmptyCollection(t *testing.T) {
	if out := CSV(nil); out != nil {
		t.Fatalf("empty collection should produce nil, got %q", out)
	}
	if out := CSV([]content.Record{}); out != nil {
		t.Fatalf("empty collection should produce nil, got %q", out)
	}
}

func TestCSVHeaderFromFirstRecord(t *testing.T) {
	recs := []content.Record{
		fakeRecord{cols: []string{"id", "title"}, vals: []string{"1", "Guide"}},
		fakeRecord{cols: []string{"id", "title"}, vals: []string{"2", "Map"}},
	}
	out := string(CSV(recs))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "id,title" {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatal("output must not carry a trailing newline")
	}
}

func TestCSVEscaping(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"comma", "a,b", `"a,b"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "line1\nline2", "\"line1\nline2\""},
		{"plain", "nothing special", "nothing special"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := escape(tc.value); got != tc.want {
				t.Fatalf("escape(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestCSVRoundTripsThroughStandardReader(t *testing.T) {
	recs := []content.Record{
		fakeRecord{
			cols: []string{"id", "title", "description"},
			vals: []string{"1", "会場マップ, 4階", "「注意」\n搬入は前日から"},
		},
	}
	out := CSV(recs)

	r := csv.NewReader(bytes.NewReader(out))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("standard reader rejected output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want header + 1 row, got %d", len(rows))
	}
	for i, want := range recs[0].Values() {
		if rows[1][i] != want {
			t.Fatalf("column %d: got %q, want %q", i, rows[1][i], want)
		}
	}
}

func TestXLSXContainsRows(t *testing.T) {
	recs := []content.Record{
		fakeRecord{cols: []string{"id", "title"}, vals: []string{"1", "Guide"}},
	}
	out, err := XLSX("downloads", recs)
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	// XLSX files are zip archives; checking the magic bytes avoids
	// depending on excelize internals for reading back.
	if len(out) < 4 || out[0] != 'P' || out[1] != 'K' {
		t.Fatalf("output is not a zip archive: % x", out[:4])
	}
}
