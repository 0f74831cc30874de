package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup that matched no document.
var ErrNotFound = errors.New("not found")

// PersistenceError wraps a failed store operation with the operation
// name and the collection it targeted. Callers translate it to a
// user-facing response; the store itself never retries.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// wrap converts a backend error into a *PersistenceError, mapping
// sql.ErrNoRows onto ErrNotFound. A nil error passes through.
func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}
