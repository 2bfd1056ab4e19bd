// internal/admin/dashboard.go
//
// Admin dashboard state machine.
//
// Context
// -------
// One Dashboard instance owns the in-memory collection for each tab.
// Exactly two paths may mutate a collection: the user actions below, and
// the live-sync Apply* entry points.  Both follow the same rule: take
// the latest snapshot under the mutex, compute the next slice, and
// replace it whole.  Nothing mutates a slice in place, so a reader never
// observes a torn collection.  Last write wins; there is no locking or
// versioning across clients.
//
// Store calls happen outside the mutex: a slow store must not block
// live-sync patches or other tabs.  A response that arrives after state
// has moved on is applied against the then-current snapshot, which is the
// accepted conflict policy.
//
// State machine
// -------------
// {activeTab} × {idle, loading, editing, error}.  Tab switch loads that
// tab's collection and leaves every other tab untouched on failure.
// Validation failures and store errors keep the edit draft intact so no
// user input is lost.
package admin

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/content"
	"github.com/primenumber-jp/datasummit-site/internal/export"
	"github.com/primenumber-jp/datasummit-site/internal/metrics"
)

// State is the dashboard's UI phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateEditing
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateEditing:
		return "editing"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Dashboard coordinates the admin tabs over their resources.
type Dashboard struct {
	mu        sync.Mutex
	resources map[Tab]Resource
	lists     map[Tab][]content.Record

	active  Tab
	state   State
	lastErr string

	draft    content.Record // open modal draft; nil when no modal
	draftID  string         // "" while creating
	draftTab Tab

	log *zap.SugaredLogger
}

// New builds a Dashboard over the given resources.  The first resource's
// tab starts active.
func New(log *zap.SugaredLogger, resources ...Resource) *Dashboard {
	d := &Dashboard{
		resources: make(map[Tab]Resource, len(resources)),
		lists:     make(map[Tab][]content.Record, len(resources)),
		state:     StateIdle,
		log:       log,
	}
	for i, res := range resources {
		d.resources[res.Tab()] = res
		if i == 0 {
			d.active = res.Tab()
		}
	}
	return d
}

// Resource returns the adapter for tab, or nil.
func (d *Dashboard) Resource(tab Tab) Resource { return d.resources[tab] }

// Status reports the current tab, phase, and last error message.
func (d *Dashboard) Status() (Tab, State, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active, d.state, d.lastErr
}

// Snapshot returns a copy of tab's in-memory collection.
func (d *Dashboard) Snapshot(tab Tab) []content.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return copyList(d.lists[tab])
}

// SwitchTab makes tab active and reloads its collection from the store.
// On failure the tab's previous collection, and every other tab's, stay
// untouched.
func (d *Dashboard) SwitchTab(ctx context.Context, tab Tab) ([]content.Record, error) {
	res, ok := d.resources[tab]
	if !ok {
		return nil, fmt.Errorf("admin: unknown tab %q", tab)
	}

	d.mu.Lock()
	d.active = tab
	d.state = StateLoading
	d.mu.Unlock()

	list, err := res.List(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = StateError
		d.lastErr = err.Error()
		metrics.AdminActionsTotal.WithLabelValues("load", "error").Inc()
		return nil, err
	}
	d.lists[tab] = list
	d.state = StateIdle
	d.lastErr = ""
	metrics.AdminActionsTotal.WithLabelValues("load", "ok").Inc()
	return copyList(list), nil
}

// BeginAdd opens the edit modal with a blank draft carrying the entity's
// default field values.
func (d *Dashboard) BeginAdd(tab Tab) (content.Record, error) {
	res, ok := d.resources[tab]
	if !ok {
		return nil, fmt.Errorf("admin: unknown tab %q", tab)
	}
	draft := res.NewDraft()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateEditing
	d.draft = draft
	d.draftID = ""
	d.draftTab = tab
	return draft, nil
}

// BeginEdit opens the edit modal pre-populated from the row's current
// in-memory values.  It is not a fresh fetch.
func (d *Dashboard) BeginEdit(tab Tab, id string) (content.Record, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, rec := range d.lists[tab] {
		if rec.RecordID() == id {
			d.state = StateEditing
			d.draft = rec
			d.draftID = id
			d.draftTab = tab
			return rec, nil
		}
	}
	return nil, content.ErrNotFound
}

// SubmitCreate validates and creates rec.  A validation failure blocks
// the store call entirely; any failure keeps the modal open with the
// draft intact.
func (d *Dashboard) SubmitCreate(ctx context.Context, tab Tab, rec content.Record) (content.Record, error) {
	res, ok := d.resources[tab]
	if !ok {
		return nil, fmt.Errorf("admin: unknown tab %q", tab)
	}

	if err := res.Validate(rec); err != nil {
		d.keepDraft(tab, rec, "", err)
		metrics.AdminActionsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, err
	}

	created, err := res.Create(ctx, rec)
	if err != nil {
		d.keepDraft(tab, rec, "", err)
		metrics.AdminActionsTotal.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	next := append(copyList(d.lists[tab]), created)
	d.lists[tab] = next
	d.closeModalLocked()
	metrics.AdminActionsTotal.WithLabelValues("create", "ok").Inc()
	return created, nil
}

// SubmitUpdate validates and updates the row, then replaces it in the
// in-memory collection by id.
func (d *Dashboard) SubmitUpdate(ctx context.Context, tab Tab, id string, rec content.Record) (content.Record, error) {
	res, ok := d.resources[tab]
	if !ok {
		return nil, fmt.Errorf("admin: unknown tab %q", tab)
	}

	if err := res.Validate(rec); err != nil {
		d.keepDraft(tab, rec, id, err)
		metrics.AdminActionsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, err
	}

	updated, err := res.Update(ctx, id, rec)
	if err != nil {
		d.keepDraft(tab, rec, id, err)
		metrics.AdminActionsTotal.WithLabelValues("update", "error").Inc()
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	next := copyList(d.lists[tab])
	found := false
	for i, r := range next {
		if r.RecordID() == id {
			next[i] = updated
			found = true
			break
		}
	}
	if !found {
		// Row vanished from the snapshot (e.g. a concurrent delete was
		// synced in); re-adding the fresh copy matches last-write-wins.
		next = append(next, updated)
	}
	d.lists[tab] = next
	d.closeModalLocked()
	metrics.AdminActionsTotal.WithLabelValues("update", "ok").Inc()
	return updated, nil
}

// Delete removes one row.  The confirmation gate fires before anything
// else: an unconfirmed delete never reaches the repository.  The row must
// also still exist in the in-memory collection.
func (d *Dashboard) Delete(ctx context.Context, tab Tab, id string, confirmed bool) error {
	res, ok := d.resources[tab]
	if !ok {
		return fmt.Errorf("admin: unknown tab %q", tab)
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	d.mu.Lock()
	present := false
	for _, r := range d.lists[tab] {
		if r.RecordID() == id {
			present = true
			break
		}
	}
	d.mu.Unlock()
	if !present {
		return content.ErrNotFound
	}

	if err := res.Delete(ctx, id); err != nil {
		// Collection unchanged; caller shows the error banner.
		d.mu.Lock()
		d.lastErr = err.Error()
		d.mu.Unlock()
		metrics.AdminActionsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[tab] = removeByID(d.lists[tab], id)
	d.lastErr = ""
	metrics.AdminActionsTotal.WithLabelValues("delete", "ok").Inc()
	return nil
}

// Export serializes tab's currently loaded in-memory collection.  It
// never fetches from the store.  format is "csv" or "xlsx".
func (d *Dashboard) Export(tab Tab, format string) (filename string, data []byte, err error) {
	if _, ok := d.resources[tab]; !ok {
		return "", nil, fmt.Errorf("admin: unknown tab %q", tab)
	}
	recs := d.Snapshot(tab)

	switch format {
	case "", "csv":
		return string(tab) + ".csv", export.CSV(recs), nil
	case "xlsx":
		data, err = export.XLSX(string(tab), recs)
		return string(tab) + ".xlsx", data, err
	default:
		return "", nil, fmt.Errorf("admin: unknown export format %q", format)
	}
}

//
// live-sync entry points
//
// These are the second allowed writer.  All three are idempotent and
// assume nothing about notification ordering: id presence alone decides
// between append and replace.
//

// ApplyInsert appends rec, or replaces an existing row with the same id
// (duplicate or out-of-order notifications collapse to one row).
func (d *Dashboard) ApplyInsert(tab Tab, rec content.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.lists[tab]
	next := make([]content.Record, 0, len(list)+1)
	replaced := false
	for _, r := range list {
		if r.RecordID() == rec.RecordID() {
			next = append(next, rec)
			replaced = true
			continue
		}
		next = append(next, r)
	}
	if !replaced {
		next = append(next, rec)
	}
	d.lists[tab] = next
}

// ApplyUpdate replaces the matching row; an unknown id is a no-op (the
// row may belong to a view this dashboard never loaded).
func (d *Dashboard) ApplyUpdate(tab Tab, rec content.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.lists[tab]
	for i, r := range list {
		if r.RecordID() == rec.RecordID() {
			next := copyList(list)
			next[i] = rec
			d.lists[tab] = next
			return
		}
	}
}

// ApplyDelete removes the matching row; an unknown id is a no-op.
func (d *Dashboard) ApplyDelete(tab Tab, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[tab] = removeByID(d.lists[tab], id)
}

//
// helpers
//

// keepDraft records a failed submission: modal stays open, user input is
// preserved, the error is shown inline.
func (d *Dashboard) keepDraft(tab Tab, rec content.Record, id string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateEditing
	d.draft = rec
	d.draftID = id
	d.draftTab = tab
	d.lastErr = err.Error()
	if d.log != nil {
		d.log.Warnw("dashboard submission failed", "tab", tab, "id", id, "err", err)
	}
}

func (d *Dashboard) closeModalLocked() {
	d.state = StateIdle
	d.draft = nil
	d.draftID = ""
	d.lastErr = ""
}

func copyList(list []content.Record) []content.Record {
	out := make([]content.Record, len(list))
	copy(out, list)
	return out
}

func removeByID(list []content.Record, id string) []content.Record {
	next := make([]content.Record, 0, len(list))
	for _, r := range list {
		if r.RecordID() == id {
			continue
		}
		next = append(next, r)
	}
	return next
}
