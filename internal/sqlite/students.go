// Student table operations: list, add, update, delete with registration
// cascade, and the enrolled-courses relation lookup.
package sqlite

import (
	"fmt"

	"github.com/dukaforge/registrar/pkg/model"
)

// ListStudents returns all students ordered by student_id ascending.
func (s *Store) ListStudents() ([]model.Student, error) {
	rows, err := s.db.Query(
		"SELECT student_id, name, age, email FROM students ORDER BY student_id",
	)
	if err != nil {
		return nil, &model.StorageError{Op: "list students", Err: err}
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var st model.Student
		if err := rows.Scan(&st.StudentID, &st.Name, &st.Age, &st.Email); err != nil {
			return nil, &model.StorageError{Op: "list students", Err: err}
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "list students", Err: err}
	}
	return students, nil
}

// AddStudent inserts a student row. Returns ErrDuplicateKey if the
// student_id already exists; the existing row is left unmodified.
func (s *Store) AddStudent(st model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "add student", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO students (student_id, name, age, email) VALUES (?, ?, ?, ?)",
		st.StudentID, st.Name, st.Age, st.Email,
	); err != nil {
		return mapStoreError("add student", err)
	}
	if err := logAction(tx, "ADD_STUDENT", "student: "+st.StudentID); err != nil {
		return &model.StorageError{Op: "add student", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "add student", Err: err}
	}
	return nil
}

// UpdateStudent replaces the non-key fields of the row keyed by
// st.StudentID. Returns ErrNotFound if the student does not exist.
func (s *Store) UpdateStudent(st model.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "update student", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, studentExistsQuery, st.StudentID)
	if err != nil {
		return &model.StorageError{Op: "update student", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	if _, err := tx.Exec(
		"UPDATE students SET name = ?, age = ?, email = ? WHERE student_id = ?",
		st.Name, st.Age, st.Email, st.StudentID,
	); err != nil {
		return mapStoreError("update student", err)
	}
	if err := logAction(tx, "UPDATE_STUDENT", "student: "+st.StudentID); err != nil {
		return &model.StorageError{Op: "update student", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "update student", Err: err}
	}
	return nil
}

// DeleteStudent removes every registration referencing the student, then the
// student row itself. Returns ErrNotFound if the student does not exist.
func (s *Store) DeleteStudent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "delete student", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, studentExistsQuery, id)
	if err != nil {
		return &model.StorageError{Op: "delete student", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	// Cascade: registrations first so no dangling relation row survives.
	if _, err := tx.Exec("DELETE FROM registrations WHERE student_id = ?", id); err != nil {
		return mapStoreError("delete student", err)
	}
	if _, err := tx.Exec("DELETE FROM students WHERE student_id = ?", id); err != nil {
		return mapStoreError("delete student", err)
	}
	if err := logAction(tx, "DELETE_STUDENT", fmt.Sprintf("student: %s", id)); err != nil {
		return &model.StorageError{Op: "delete student", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "delete student", Err: err}
	}
	return nil
}
