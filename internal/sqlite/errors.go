// Shared error mapping for the SQLite store. Constraint violations from the
// driver surface as the package's typed sentinels; anything else is wrapped
// as a StorageError so callers can tell recoverable input problems from
// medium failures.
package sqlite

import (
	"strings"

	"github.com/dukaforge/registrar/pkg/model"
)

// mapStoreError inspects a low-level driver error and maps common constraint
// violations to the model sentinels. This is a conservative, string-based
// mapping to avoid depending on driver-specific error types.
func mapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	switch {
	case strings.Contains(le, "unique") || strings.Contains(le, "duplicate"):
		return model.ErrDuplicateKey
	case strings.Contains(le, "foreign key"):
		return model.ErrForeignKey
	default:
		return &model.StorageError{Op: op, Err: err}
	}
}
