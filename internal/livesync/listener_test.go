package livesync

import (
	"context"
	"io"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/admin"
	"github.com/primenumber-jp/datasummit-site/internal/content"
)

//
// test doubles
//

type syncRecord struct {
	ID    string
	Title string
}

func (r syncRecord) RecordID() string  { return r.ID }
func (r syncRecord) Columns() []string { return []string{"id", "title"} }
func (r syncRecord) Values() []string  { return []string{r.ID, r.Title} }

// storeResource simulates the store side of a notification: Get serves
// whatever rows the test has planted.
type storeResource struct {
	tab  admin.Tab
	rows map[string]syncRecord
}

func (s *storeResource) Tab() admin.Tab { return s.tab }

func (s *storeResource) List(context.Context) ([]content.Record, error) {
	out := make([]content.Record, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

func (s *storeResource) Get(_ context.Context, id string) (content.Record, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return r, nil
}

func (s *storeResource) NewDraft() content.Record                  { return syncRecord{} }
func (s *storeResource) Decode(io.Reader) (content.Record, error)  { return syncRecord{}, nil }
func (s *storeResource) Validate(content.Record) error             { return nil }
func (s *storeResource) Delete(context.Context, string) error      { return nil }
func (s *storeResource) Create(_ context.Context, rec content.Record) (content.Record, error) {
	return rec, nil
}
func (s *storeResource) Update(_ context.Context, _ string, rec content.Record) (content.Record, error) {
	return rec, nil
}

func newTestListener(t *testing.T, res *storeResource) (*Listener, *admin.Dashboard, *Hub, context.CancelFunc) {
	t.Helper()
	dash := admin.New(zap.NewNop().Sugar(), res)
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	l := &Listener{
		dash:         dash,
		hub:          hub,
		log:          zap.NewNop().Sugar(),
		fetchTimeout: time.Second,
	}
	t.Cleanup(cancel)
	return l, dash, hub, cancel
}

func recvEvent(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case evt, ok := <-sub.Events():
		if !ok {
			t.Fatal("subscription closed early")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

//
// handle
//

func TestHandleInsertFetchesAndApplies(t *testing.T) {
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{
		"1": {ID: "1", Title: "Guide"},
	}}
	l, dash, hub, _ := newTestListener(t, res)

	sub := hub.Subscribe("downloads_sp")
	defer hub.Unsubscribe(sub)

	l.handle(context.Background(), `{"table":"downloads_sp","op":"insert","id":"1"}`)

	got := dash.Snapshot(admin.TabDownloads)
	if len(got) != 1 || got[0].RecordID() != "1" {
		t.Fatalf("snapshot = %+v", got)
	}
	evt := recvEvent(t, sub)
	if evt.Op != OpInsert || evt.ID != "1" {
		t.Fatalf("event = %+v", evt)
	}
}

func TestHandleInsertReplayCollapsesToOneRow(t *testing.T) {
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{
		"1": {ID: "1", Title: "Guide"},
	}}
	l, dash, _, _ := newTestListener(t, res)

	payload := `{"table":"downloads_sp","op":"insert","id":"1"}`
	l.handle(context.Background(), payload)
	l.handle(context.Background(), payload)

	if got := dash.Snapshot(admin.TabDownloads); len(got) != 1 {
		t.Fatalf("replayed insert produced %d rows", len(got))
	}
}

func TestHandleInsertForAlreadyDeletedRowIsSkipped(t *testing.T) {
	// The row was deleted between the notification and the re-fetch; the
	// fetch fails with NotFound and nothing is applied.
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{}}
	l, dash, _, _ := newTestListener(t, res)

	l.handle(context.Background(), `{"table":"downloads_sp","op":"insert","id":"gone"}`)

	if got := dash.Snapshot(admin.TabDownloads); len(got) != 0 {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestHandleUpdateReplacesRow(t *testing.T) {
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{
		"1": {ID: "1", Title: "v2"},
	}}
	l, dash, _, _ := newTestListener(t, res)
	dash.ApplyInsert(admin.TabDownloads, syncRecord{ID: "1", Title: "v1"})

	l.handle(context.Background(), `{"table":"downloads_sp","op":"update","id":"1"}`)

	got := dash.Snapshot(admin.TabDownloads)
	if len(got) != 1 || got[0].(syncRecord).Title != "v2" {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestHandleDeleteForAbsentRowIsNoOp(t *testing.T) {
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{}}
	l, dash, hub, _ := newTestListener(t, res)

	sub := hub.Subscribe("downloads_sp")
	defer hub.Unsubscribe(sub)

	l.handle(context.Background(), `{"table":"downloads_sp","op":"delete","id":"ghost"}`)

	if got := dash.Snapshot(admin.TabDownloads); len(got) != 0 {
		t.Fatalf("snapshot = %+v", got)
	}
	// The event still fans out; SSE clients decide relevance themselves.
	evt := recvEvent(t, sub)
	if evt.Op != OpDelete {
		t.Fatalf("event = %+v", evt)
	}
}

func TestHandleIgnoresGarbageAndUnwatchedTables(t *testing.T) {
	res := &storeResource{tab: admin.TabDownloads, rows: map[string]syncRecord{
		"1": {ID: "1"},
	}}
	l, dash, _, _ := newTestListener(t, res)

	l.handle(context.Background(), `not json at all`)
	l.handle(context.Background(), `{"table":"users","op":"insert","id":"1"}`)
	l.handle(context.Background(), `{"table":"downloads_sp","op":"truncate","id":"1"}`)

	if got := dash.Snapshot(admin.TabDownloads); len(got) != 0 {
		t.Fatalf("snapshot = %+v", got)
	}
}
