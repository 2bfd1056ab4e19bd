package faq

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/primenumber-jp/datasummit-site/internal/content"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return NewRepository(sqlx.NewDb(mockDB, "postgres")), mock
}

func faqColumns() []string {
	return []string{"id", "category", "question", "answer", "priority"}
}

func TestListOrdersByPriority(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows(faqColumns()).
		AddRow("a", "venue", "アクセス方法は?", "徒歩3分です。", 1).
		AddRow("b", "general", "飲食はできますか?", "休憩エリアで可能です。", 5)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM faqs_sp ORDER BY priority ASC`)).
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].Priority != 1 || items[1].Priority != 5 {
		t.Fatalf("priority order broken: %+v", items)
	}
}

func TestSearchMatchesQuestionOrAnswer(t *testing.T) {
	repo, mock := newMock(t)

	const q = `SELECT * FROM faqs_sp WHERE question ILIKE '%' || $1 || '%' OR answer ILIKE '%' || $1 || '%' ORDER BY priority ASC`
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WithArgs("ブース").
		WillReturnRows(sqlmock.NewRows(faqColumns()).
			AddRow("c", "sponsor", "ブースの搬入は?", "前日14時からです。", 3))

	items, err := repo.Search(context.Background(), "ブース")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c" {
		t.Fatalf("items = %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateAppliesDefaultPriority(t *testing.T) {
	repo, mock := newMock(t)

	const q = `INSERT INTO faqs_sp (category, question, answer, priority) VALUES ($1, $2, $3, $4) RETURNING *`
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WithArgs("general", "Q", "A", DefaultPriority).
		WillReturnRows(sqlmock.NewRows(faqColumns()).
			AddRow("gen-1", "general", "Q", "A", DefaultPriority))

	created, err := repo.Create(context.Background(), Item{
		ID:       "client-id",
		Category: "general",
		Question: "Q",
		Answer:   "A",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "gen-1" || created.Priority != DefaultPriority {
		t.Fatalf("created = %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateWithoutEchoFailsOutright(t *testing.T) {
	repo, mock := newMock(t)

	// No timestamps means no natural key, so there is no recovery path
	// for an insert the store did not echo back.
	const q = `INSERT INTO faqs_sp (category, question, answer, priority) VALUES ($1, $2, $3, $4) RETURNING *`
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WillReturnRows(sqlmock.NewRows(faqColumns()))

	_, err := repo.Create(context.Background(), Item{
		Category: "general", Question: "Q", Answer: "A",
	})
	if !errors.Is(err, content.ErrCreateNotEchoed) {
		t.Fatalf("want ErrCreateNotEchoed, got %v", err)
	}
}
