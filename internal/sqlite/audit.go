// Audit log for store mutations. Every successful mutation appends one
// entry inside the same transaction, so the log and the data it describes
// commit or roll back together.
package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/registrar/pkg/model"
)

// AuditEntry is one recorded store mutation.
type AuditEntry struct {
	EntryID   string    // UUID v7, generated at write time
	Action    string    // e.g. "ADD_STUDENT", "ENROLL_STUDENT"
	Details   string    // free-form description of the affected rows
	CreatedAt time.Time // UTC timestamp of the mutation
}

// logAction appends an audit entry within the caller's transaction.
func logAction(tx *sql.Tx, action, details string) error {
	id, err := uuid.NewV7()
	if err != nil {
		// UUID v4 keeps the log append-able if v7 generation fails.
		id = uuid.New()
	}
	_, err = tx.Exec(
		"INSERT INTO audit_log (entry_id, action, details, created_at) VALUES (?, ?, ?, ?)",
		id.String(), action, details, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// AuditLog returns all recorded mutations, oldest first.
func (s *Store) AuditLog() ([]AuditEntry, error) {
	rows, err := s.db.Query(
		"SELECT entry_id, action, details, created_at FROM audit_log ORDER BY rowid",
	)
	if err != nil {
		return nil, &model.StorageError{Op: "list audit log", Err: err}
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var createdAt string
		if err := rows.Scan(&e.EntryID, &e.Action, &e.Details, &createdAt); err != nil {
			return nil, &model.StorageError{Op: "list audit log", Err: err}
		}
		if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "list audit log", Err: err}
	}
	return entries, nil
}
