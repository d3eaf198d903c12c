// Registration relation: the (student_id, course_id) composite-key table,
// the idempotent enroll and assign mutations, and the three relation
// lookups used by the query facade.
package sqlite

import (
	"fmt"

	"github.com/dukaforge/registrar/pkg/model"
)

// EnrollStudent records that a student is enrolled in a course. The insert
// is idempotent: enrolling an already-enrolled pair is a no-op, not an
// error. Returns ErrForeignKey if either id does not exist.
func (s *Store) EnrollStudent(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "enroll student", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, studentExistsQuery, studentID)
	if err != nil {
		return &model.StorageError{Op: "enroll student", Err: err}
	}
	if !found {
		return model.ErrForeignKey
	}
	found, err = exists(tx, courseExistsQuery, courseID)
	if err != nil {
		return &model.StorageError{Op: "enroll student", Err: err}
	}
	if !found {
		return model.ErrForeignKey
	}

	res, err := tx.Exec(
		"INSERT OR IGNORE INTO registrations (student_id, course_id) VALUES (?, ?)",
		studentID, courseID,
	)
	if err != nil {
		return mapStoreError("enroll student", err)
	}

	// Only a real insert deserves an audit entry; the idempotent repeat
	// changed nothing.
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		if err := logAction(tx, "ENROLL_STUDENT",
			fmt.Sprintf("student: %s, course: %s", studentID, courseID)); err != nil {
			return &model.StorageError{Op: "enroll student", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "enroll student", Err: err}
	}
	return nil
}

// AssignInstructor sets the course's instructor, overwriting any prior
// assignment. Returns ErrForeignKey if either id does not exist.
func (s *Store) AssignInstructor(courseID, instructorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return &model.StorageError{Op: "assign instructor", Err: err}
	}
	defer tx.Rollback()

	found, err := exists(tx, courseExistsQuery, courseID)
	if err != nil {
		return &model.StorageError{Op: "assign instructor", Err: err}
	}
	if !found {
		return model.ErrForeignKey
	}
	found, err = exists(tx, instructorExistsQuery, instructorID)
	if err != nil {
		return &model.StorageError{Op: "assign instructor", Err: err}
	}
	if !found {
		return model.ErrForeignKey
	}

	if _, err := tx.Exec(
		"UPDATE courses SET instructor_id = ? WHERE course_id = ?",
		instructorID, courseID,
	); err != nil {
		return mapStoreError("assign instructor", err)
	}
	if err := logAction(tx, "ASSIGN_INSTRUCTOR",
		fmt.Sprintf("course: %s, instructor: %s", courseID, instructorID)); err != nil {
		return &model.StorageError{Op: "assign instructor", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &model.StorageError{Op: "assign instructor", Err: err}
	}
	return nil
}

// StudentCourses returns the course ids the student is enrolled in, in
// enrollment order. Unknown ids yield an empty list, not an error.
func (s *Store) StudentCourses(studentID string) ([]string, error) {
	return s.relatedIDs(
		"SELECT course_id FROM registrations WHERE student_id = ? ORDER BY rowid",
		studentID, "student courses",
	)
}

// InstructorCourses returns the course ids taught by the instructor, in
// assignment order.
func (s *Store) InstructorCourses(instructorID string) ([]string, error) {
	return s.relatedIDs(
		"SELECT course_id FROM courses WHERE instructor_id = ? ORDER BY rowid",
		instructorID, "instructor courses",
	)
}

// CourseStudents returns the student ids registered to the course, in
// enrollment order.
func (s *Store) CourseStudents(courseID string) ([]string, error) {
	return s.relatedIDs(
		"SELECT student_id FROM registrations WHERE course_id = ? ORDER BY rowid",
		courseID, "course students",
	)
}

// relatedIDs runs a single-column id query and collects the results. The
// returned slice is always non-nil so callers can range and join without
// nil checks.
func (s *Store) relatedIDs(query, id, op string) ([]string, error) {
	rows, err := s.db.Query(query, id)
	if err != nil {
		return nil, &model.StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var related string
		if err := rows.Scan(&related); err != nil {
			return nil, &model.StorageError{Op: op, Err: err}
		}
		ids = append(ids, related)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: op, Err: err}
	}
	return ids, nil
}
