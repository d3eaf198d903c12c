// Package sqlite implements the registrar storage layer on SQLite. The Store
// owns the four-table schema and is the sole authority on referential
// integrity: uniqueness, nullable foreign keys, cascades on student/course
// deletion, and instructor detachment. Every mutation runs inside a single
// transaction, so an operation either fully applies or fully fails.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/dukaforge/registrar/internal/logging"
	"github.com/dukaforge/registrar/pkg/model"
	"github.com/dukaforge/registrar/pkg/query"
)

// DBFileName is the store file created inside the data directory.
const DBFileName = "registrar.db"

// Compile-time check: the store is the read surface the query facade expects.
var _ query.Directory = (*Store)(nil)

// Store is the SQLite-backed registrar store. One mutex serializes mutations
// and backup; the model is a single active caller, so reads take no lock.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens (or creates) the store file at path. The schema is not touched;
// call Init before the first operation of a fresh store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &model.StorageError{Op: "open store", Err: err}
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, &model.StorageError{Op: "open store", Err: err}
	}
	logging.Debugf("opened store at %s", path)
	return &Store{db: db, path: path}, nil
}

// Init creates the schema if it does not exist. Safe to call on every
// startup; existing data is never dropped.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "init schema", Err: err}
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return &model.StorageError{Op: "init schema", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "init schema", Err: err}
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return &model.StorageError{Op: "close store", Err: err}
	}
	return nil
}

// Backup writes a byte-identical, self-contained replica of the store to
// targetPath using VACUUM INTO, the engine's point-in-time safe copy. The
// store mutex excludes mutation for the duration, so the replica never
// observes a half-applied operation.
func (s *Store) Backup(targetPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("VACUUM INTO ?", targetPath); err != nil {
		return &model.StorageError{Op: fmt.Sprintf("backup to %s", targetPath), Err: err}
	}
	logging.Infof("backed up store to %s", targetPath)
	return nil
}

// exists reports whether a row with the given primary key is present.
// Runs inside the caller's transaction so integrity checks and the
// mutation they guard see the same snapshot.
func exists(tx *sql.Tx, query, id string) (bool, error) {
	var one int
	err := tx.QueryRow(query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const (
	studentExistsQuery    = "SELECT 1 FROM students WHERE student_id = ?"
	instructorExistsQuery = "SELECT 1 FROM instructors WHERE instructor_id = ?"
	courseExistsQuery     = "SELECT 1 FROM courses WHERE course_id = ?"
)
