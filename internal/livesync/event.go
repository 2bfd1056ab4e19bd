// internal/livesync/event.go
//
// Row-change notification payload.
//
// The schema installs one trigger per content table that emits
//
//	pg_notify('summit_changes',
//	          json_build_object('table', …, 'op', …, 'id', …))
//
// The payload intentionally carries only the row key: NOTIFY payloads are
// capped at 8000 bytes and a full row of free text does not reliably fit,
// so consumers re-fetch the row by id (and must tolerate the row being
// gone by then).
package livesync

// Channel is the NOTIFY channel every content table reports on.
const Channel = "summit_changes"

// Operations carried in Event.Op.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Event is one decoded notification.
type Event struct {
	Table string `json:"table"`
	Op    string `json:"op"`
	ID    string `json:"id"`
}
