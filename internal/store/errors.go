package store

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors returned by store operations, wrapped with context.
// Check with errors.Is.
var (
	// ErrNotFound means an operation targeted an id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraint means an integrity rule was violated: a duplicate
	// room/category name, an invalid status, a non-positive quantity, or
	// a dangling reference.
	ErrConstraint = errors.New("constraint violation")
)

// isConstraint reports whether err is a SQLite constraint failure
// (unique, check or foreign key). The low byte of the result code is the
// primary code; extended codes share it.
func isConstraint(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
