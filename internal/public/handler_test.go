package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
)

func newTestHandler(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	db := sqlx.NewDb(mockDB, "postgres")

	h := NewHandler(
		download.NewRepository(db),
		faq.NewRepository(db),
		form.NewRepository(db),
		zap.NewNop().Sugar(),
	)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, mock
}

func downloadColumns() []string {
	return []string{
		"id", "category", "title", "description",
		"downloadUrl", "fileType", "fileSize", "lastUpdated", "created_at",
	}
}

func TestDownloadSectionsGroupsByCategory(t *testing.T) {
	srv, mock := newTestHandler(t)

	rows := sqlmock.NewRows(downloadColumns()).
		AddRow("1", "sponsor", "Guide", "", "u", "PDF", "1MB", "2025-05-01", time.Now()).
		AddRow("2", "mystery", "Odd", "", "u", "PDF", "1MB", "2025-04-01", time.Now()).
		AddRow("3", "sponsor", "Manual", "", "u", "PDF", "1MB", "2025-03-01", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM downloads_sp ORDER BY "lastUpdated" DESC`)).
		WillReturnRows(rows)

	resp, err := http.Get(srv.URL + "/downloads/sections")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Data []struct {
			Category string          `json:"category"`
			Name     string          `json:"name"`
			Items    []download.Item `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("sections = %+v", body.Data)
	}
	if body.Data[0].Category != "sponsor" || len(body.Data[0].Items) != 2 {
		t.Fatalf("sponsor section = %+v", body.Data[0])
	}
	// Unknown category renders as itself instead of erroring.
	if body.Data[1].Category != "mystery" || body.Data[1].Name != "mystery" {
		t.Fatalf("fallback section = %+v", body.Data[1])
	}
}

func TestFaqSearchParamWins(t *testing.T) {
	srv, mock := newTestHandler(t)

	const q = `SELECT * FROM faqs_sp WHERE question ILIKE '%' || $1 || '%' OR answer ILIKE '%' || $1 || '%' ORDER BY priority ASC`
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WithArgs("wifi").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "question", "answer", "priority"}).
			AddRow("1", "general", "Wi-Fiは?", "あります。", 2))

	resp, err := http.Get(srv.URL + "/faqs?q=wifi&category=venue")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestStoreFailureIs502WithFriendlyMessage(t *testing.T) {
	srv, mock := newTestHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM forms_sp ORDER BY created_at DESC`)).
		WillReturnError(http.ErrHandlerTimeout)

	resp, err := http.Get(srv.URL + "/forms")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] == "" {
		t.Fatal("error message missing")
	}
}
