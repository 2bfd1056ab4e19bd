// internal/content/errors.go
//
// Error taxonomy shared by the three content repositories.
//
// Context
// -------
// Repository callers only ever see three failure classes:
//
//   - ErrNotFound        – zero rows where exactly one was expected.
//   - *StoreError        – the store rejected or never received the call;
//     the store's own message is preserved for the dashboard banner.
//   - ErrCreateNotEchoed – a create succeeded at the store but the row
//     could not be read back.  This is the documented inconsistency
//     window: the row may exist remotely even though the caller is told
//     the create failed.  Callers must surface it, not mask it.
//
// Schema-drift failures (a write naming a column the live table lacks) are
// retried once inside the repositories and never escape; if the retry also
// fails they degrade to *StoreError.  See drift.go.
package content

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a single-row lookup that matched nothing.
var ErrNotFound = errors.New("content: record not found")

// ErrCreateNotEchoed reports a create whose confirmatory read-back returned
// zero rows.  The insert itself did not fail, so the row may well exist.
var ErrCreateNotEchoed = errors.New("content: create succeeded but the created row could not be read back")

// StoreError wraps any failure coming back from the data store so the
// dashboard can show the store's message verbatim.
type StoreError struct {
	Op  string // "downloads.list", "forms.update", ...
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("content: %s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Unavailable wraps err as a *StoreError unless it already is one, or is
// one of the package sentinels that must pass through untouched.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrCreateNotEchoed) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
