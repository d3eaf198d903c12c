package model

import (
	"errors"
	"fmt"
)

// Store operation errors. The store raises exactly one of these per failed
// operation so callers can render a precise message and retry.
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
	ErrForeignKey   = errors.New("foreign key violation")
)

// ValidationError reports the first field rule violated during entity
// construction. Validation failures never reach the store.
type ValidationError struct {
	Field  string // field name as declared (e.g. "name", "student_id")
	Reason string // human-readable rule description
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the underlying storage medium (disk full,
// permissions, corruption). It is fatal to the current operation and is not
// retried automatically.
type StorageError struct {
	Op  string // store operation that failed (e.g. "add student")
	Err error  // underlying driver or I/O error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.Err
}
