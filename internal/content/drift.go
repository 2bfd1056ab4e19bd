// internal/content/drift.go
//
// Schema-drift detection.
//
// Context
// -------
// The production tables were created by hand and have drifted from the
// code's expectations; the known case is downloads_sp missing its
// updated_at column.  Writes still attempt the full column list, and when
// Postgres answers with undefined_column naming updated_at the repository
// retries once with that column omitted.  The match is deliberately
// narrow: only error code 42703, and only for the one column we know can
// be absent.  Anything else propagates to the caller.
package content

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// pgUndefinedColumn is the Postgres error code for a statement that
// references a column the table does not have.
const pgUndefinedColumn = "42703"

// MissingColumn returns the column named by an undefined_column error.
// ok is false for every other kind of error.
func MissingColumn(err error) (column string, ok bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUndefinedColumn {
		return "", false
	}
	if pqErr.Column != "" {
		return pqErr.Column, true
	}
	// Older servers leave the Column field empty; the message reads
	//   column "updated_at" of relation "downloads_sp" does not exist
	// so fall back to the first quoted token.
	msg := pqErr.Message
	if i := strings.IndexByte(msg, '"'); i >= 0 {
		if j := strings.IndexByte(msg[i+1:], '"'); j >= 0 {
			return msg[i+1 : i+1+j], true
		}
	}
	return "", false
}

// DriftOnUpdatedAt reports whether err is the one drift case the
// repositories retry: the live table lacking updated_at.
func DriftOnUpdatedAt(err error) bool {
	col, ok := MissingColumn(err)
	return ok && col == "updated_at"
}
