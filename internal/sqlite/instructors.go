// Instructor table operations. Deleting an instructor detaches their
// courses (instructor_id set to NULL) rather than deleting them; a course
// may exist unassigned.
package sqlite

import (
	"fmt"

	"github.com/dukaforge/registrar/pkg/model"
)

// ListInstructors returns all instructors ordered by instructor_id ascending.
func (s *Store) ListInstructors() ([]model.Instructor, error) {
	rows, err := s.db.Query(
		"SELECT instructor_id, name, age, email FROM instructors ORDER BY instructor_id",
	)
	if err != nil {
		return nil, &model.StorageError{Op: "list instructors", Err: err}
	}
	defer rows.Close()

	var instructors []model.Instructor
	for rows.Next() {
		var ins model.Instructor
		if err := rows.Scan(&ins.InstructorID, &ins.Name, &ins.Age, &ins.Email); err != nil {
			return nil, &model.StorageError{Op: "list instructors", Err: err}
		}
		instructors = append(instructors, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "list instructors", Err: err}
	}
	return instructors, nil
}

// AddInstructor inserts an instructor row. Returns ErrDuplicateKey if the
// instructor_id already exists.
func (s *Store) AddInstructor(ins model.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "add instructor", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO instructors (instructor_id, name, age, email) VALUES (?, ?, ?, ?)",
		ins.InstructorID, ins.Name, ins.Age, ins.Email,
	); err != nil {
		return mapStoreError("add instructor", err)
	}
	if err := logAction(tx, "ADD_INSTRUCTOR", "instructor: "+ins.InstructorID); err != nil {
		return &model.StorageError{Op: "add instructor", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "add instructor", Err: err}
	}
	return nil
}

// UpdateInstructor replaces the non-key fields of the row keyed by
// ins.InstructorID. Returns ErrNotFound if the instructor does not exist.
func (s *Store) UpdateInstructor(ins model.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "update instructor", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, instructorExistsQuery, ins.InstructorID)
	if err != nil {
		return &model.StorageError{Op: "update instructor", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	if _, err := tx.Exec(
		"UPDATE instructors SET name = ?, age = ?, email = ? WHERE instructor_id = ?",
		ins.Name, ins.Age, ins.Email, ins.InstructorID,
	); err != nil {
		return mapStoreError("update instructor", err)
	}
	if err := logAction(tx, "UPDATE_INSTRUCTOR", "instructor: "+ins.InstructorID); err != nil {
		return &model.StorageError{Op: "update instructor", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "update instructor", Err: err}
	}
	return nil
}

// DeleteInstructor sets instructor_id to NULL on every course referencing
// the instructor, then deletes the instructor row. Returns ErrNotFound if
// the instructor does not exist.
func (s *Store) DeleteInstructor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "delete instructor", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, instructorExistsQuery, id)
	if err != nil {
		return &model.StorageError{Op: "delete instructor", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	// Detachment: courses survive their instructor, unassigned.
	if _, err := tx.Exec("UPDATE courses SET instructor_id = NULL WHERE instructor_id = ?", id); err != nil {
		return mapStoreError("delete instructor", err)
	}
	if _, err := tx.Exec("DELETE FROM instructors WHERE instructor_id = ?", id); err != nil {
		return mapStoreError("delete instructor", err)
	}
	if err := logAction(tx, "DELETE_INSTRUCTOR", fmt.Sprintf("instructor: %s", id)); err != nil {
		return &model.StorageError{Op: "delete instructor", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "delete instructor", Err: err}
	}
	return nil
}
