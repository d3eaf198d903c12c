// Package export writes per-kind CSV snapshots of the registrar. Columns
// follow each entity's Record() order with the related-id list appended;
// related ids are joined with ";" — deliberately different from the ", "
// used for on-screen display — so an exported cell splits back
// unambiguously.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/dukaforge/registrar/pkg/query"
)

// FileDelimiter joins related-id lists inside a single CSV cell.
const FileDelimiter = ";"

// Students writes all students (unfiltered) as CSV.
func Students(w io.Writer, d query.Directory) error {
	rows, err := query.Students(d, "")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"student_id", "name", "age", "email", "courses"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.StudentID, r.Name, strconv.Itoa(r.Age), r.Email,
			strings.Join(r.Courses, FileDelimiter),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Instructors writes all instructors as CSV.
func Instructors(w io.Writer, d query.Directory) error {
	rows, err := query.Instructors(d, "")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"instructor_id", "name", "age", "email", "courses"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.InstructorID, r.Name, strconv.Itoa(r.Age), r.Email,
			strings.Join(r.Courses, FileDelimiter),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Courses writes all courses as CSV. An unassigned course exports an empty
// instructor_id cell.
func Courses(w io.Writer, d query.Directory) error {
	rows, err := query.Courses(d, "")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"course_id", "course_name", "instructor_id", "students"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.CourseID, r.CourseName, r.InstructorID,
			strings.Join(r.Students, FileDelimiter),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
