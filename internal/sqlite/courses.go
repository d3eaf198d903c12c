// Course table operations. The instructor_id column is a nullable foreign
// key: NULL in the database maps to "" on the model, and a non-empty id must
// reference an existing instructor at write time.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/dukaforge/registrar/pkg/model"
)

// nullableID converts the model's ""-means-unassigned convention to a SQL
// NULL parameter.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// ListCourses returns all courses ordered by course_id ascending. An
// unassigned course carries an empty InstructorID.
func (s *Store) ListCourses() ([]model.Course, error) {
	rows, err := s.db.Query(
		"SELECT course_id, course_name, instructor_id FROM courses ORDER BY course_id",
	)
	if err != nil {
		return nil, &model.StorageError{Op: "list courses", Err: err}
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		var instructorID sql.NullString
		if err := rows.Scan(&c.CourseID, &c.CourseName, &instructorID); err != nil {
			return nil, &model.StorageError{Op: "list courses", Err: err}
		}
		c.InstructorID = instructorID.String
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "list courses", Err: err}
	}
	return courses, nil
}

// AddCourse inserts a course row. Returns ErrDuplicateKey if the course_id
// already exists, and ErrForeignKey if a non-empty instructor id references
// no known instructor.
func (s *Store) AddCourse(c model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "add course", Err: err}
	}
	defer tx.Rollback()

	if c.InstructorID != "" {
		found, err := exists(tx, instructorExistsQuery, c.InstructorID)
		if err != nil {
			return &model.StorageError{Op: "add course", Err: err}
		}
		if !found {
			return model.ErrForeignKey
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO courses (course_id, course_name, instructor_id) VALUES (?, ?, ?)",
		c.CourseID, c.CourseName, nullableID(c.InstructorID),
	); err != nil {
		return mapStoreError("add course", err)
	}
	if err := logAction(tx, "ADD_COURSE", "course: "+c.CourseID); err != nil {
		return &model.StorageError{Op: "add course", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "add course", Err: err}
	}
	return nil
}

// UpdateCourse replaces the non-key fields of the row keyed by c.CourseID.
// Returns ErrNotFound if the course does not exist; the same foreign-key
// check as AddCourse applies to a non-empty instructor id.
func (s *Store) UpdateCourse(c model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "update course", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, courseExistsQuery, c.CourseID)
	if err != nil {
		return &model.StorageError{Op: "update course", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	if c.InstructorID != "" {
		found, err := exists(tx, instructorExistsQuery, c.InstructorID)
		if err != nil {
			return &model.StorageError{Op: "update course", Err: err}
		}
		if !found {
			return model.ErrForeignKey
		}
	}

	if _, err := tx.Exec(
		"UPDATE courses SET course_name = ?, instructor_id = ? WHERE course_id = ?",
		c.CourseName, nullableID(c.InstructorID), c.CourseID,
	); err != nil {
		return mapStoreError("update course", err)
	}
	if err := logAction(tx, "UPDATE_COURSE", "course: "+c.CourseID); err != nil {
		return &model.StorageError{Op: "update course", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "update course", Err: err}
	}
	return nil
}

// DeleteCourse removes every registration referencing the course, then the
// course row itself. Returns ErrNotFound if the course does not exist.
func (s *Store) DeleteCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "delete course", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, courseExistsQuery, id)
	if err != nil {
		return &model.StorageError{Op: "delete course", Err: err}
	}
	if !found {
		return model.ErrNotFound
	}

	if _, err := tx.Exec("DELETE FROM registrations WHERE course_id = ?", id); err != nil {
		return mapStoreError("delete course", err)
	}
	if _, err := tx.Exec("DELETE FROM courses WHERE course_id = ?", id); err != nil {
		return mapStoreError("delete course", err)
	}
	if err := logAction(tx, "DELETE_COURSE", fmt.Sprintf("course: %s", id)); err != nil {
		return &model.StorageError{Op: "delete course", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "delete course", Err: err}
	}
	return nil
}
