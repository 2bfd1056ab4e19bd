// internal/admin/errors.go
//
// Dashboard-level failures.  ValidationError never reaches the store; it
// is produced before any repository call and rendered as a single
// combined field message.  ErrConfirmationRequired guards the delete
// path: no delete reaches a repository until the caller has answered the
// confirmation prompt.
package admin

import (
	"errors"
	"strings"
)

// ErrConfirmationRequired is returned by Delete when the caller has not
// confirmed the action.
var ErrConfirmationRequired = errors.New("admin: delete requires explicit confirmation")

// ValidationError reports the required fields missing from a submission,
// combined into one message.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}
