package form

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleRow() Row {
	return Row{
		ID:          "f-1",
		Title:       "スポンサー申込フォーム",
		Description: "お申し込みはこちらから。",
		Category:    "sponsor",
		FormURL:     "https://forms.gle/abc",
		Deadline:    "2025-06-20",
		IsRequired:  true,
		CreatedAt:   time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestMappingRoundTrip(t *testing.T) {
	in := sampleRow()
	out := toRow(toItem(in))
	if out != in {
		t.Fatalf("round trip lost data:\n in: %+v\nout: %+v", in, out)
	}
}

func TestMappingIsExhaustive(t *testing.T) {
	// A field added to Row without a matching mapping line shows up here
	// as a zero value after the round trip.
	in := sampleRow()
	it := toItem(in)

	if it.FormURL != in.FormURL {
		t.Errorf("form_url → formUrl lost: %q", it.FormURL)
	}
	if it.IsRequired != in.IsRequired {
		t.Errorf("is_required → isRequired lost")
	}
	if it.Deadline != in.Deadline {
		t.Errorf("deadline lost: %q", it.Deadline)
	}
}

func TestItemJSONUsesCamelCase(t *testing.T) {
	body, err := json.Marshal(toItem(sampleRow()))
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)
	for _, want := range []string{`"formUrl"`, `"isRequired"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s: %s", want, s)
		}
	}
	for _, banned := range []string{`"form_url"`, `"is_required"`} {
		if strings.Contains(s, banned) {
			t.Errorf("store naming leaked into JSON: %s in %s", banned, s)
		}
	}
}
