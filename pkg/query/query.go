// Package query implements the cross-field, case-insensitive search used by
// any listing front-end. Rows come back joined with their related ids; the
// filter is the lowercase substring match over every displayed field,
// computed per call. Result sets are small, so no index is kept.
package query

import (
	"strconv"
	"strings"

	"github.com/dukaforge/registrar/pkg/model"
)

// DisplayDelimiter joins related-id lists for on-screen display. File
// export uses a different delimiter so round-tripped exports stay
// unambiguous.
const DisplayDelimiter = ", "

// Directory is the read surface of the store the facade consumes.
// *sqlite.Store implements it.
type Directory interface {
	ListStudents() ([]model.Student, error)
	ListInstructors() ([]model.Instructor, error)
	ListCourses() ([]model.Course, error)
	StudentCourses(studentID string) ([]string, error)
	InstructorCourses(instructorID string) ([]string, error)
	CourseStudents(courseID string) ([]string, error)
}

// StudentRow is a student joined with the ids of the courses they are
// enrolled in.
type StudentRow struct {
	model.Student
	Courses []string
}

// CoursesDisplay returns the related course ids joined for display.
func (r StudentRow) CoursesDisplay() string {
	return strings.Join(r.Courses, DisplayDelimiter)
}

// InstructorRow is an instructor joined with the ids of the courses they
// teach.
type InstructorRow struct {
	model.Instructor
	Courses []string
}

// CoursesDisplay returns the related course ids joined for display.
func (r InstructorRow) CoursesDisplay() string {
	return strings.Join(r.Courses, DisplayDelimiter)
}

// CourseRow is a course joined with its student roster.
type CourseRow struct {
	model.Course
	Students []string
}

// RosterDisplay returns the enrolled student ids joined for display.
func (r CourseRow) RosterDisplay() string {
	return strings.Join(r.Students, DisplayDelimiter)
}

// matches reports whether the lowercase space-joined concatenation of the
// fields contains term. An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	hay := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(hay, term)
}

// normalize lowers and trims a search term once per call.
func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Students returns the students whose displayed fields (id, name, age,
// email, enrolled course ids) contain term, joined with those course ids.
func Students(d Directory, term string) ([]StudentRow, error) {
	students, err := d.ListStudents()
	if err != nil {
		return nil, err
	}
	term = normalize(term)

	rows := []StudentRow{}
	for _, st := range students {
		courses, err := d.StudentCourses(st.StudentID)
		if err != nil {
			return nil, err
		}
		row := StudentRow{Student: st, Courses: courses}
		if matches(term, st.StudentID, st.Name, strconv.Itoa(st.Age), st.Email, row.CoursesDisplay()) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Instructors returns the instructors whose displayed fields contain term,
// joined with the ids of the courses they teach.
func Instructors(d Directory, term string) ([]InstructorRow, error) {
	instructors, err := d.ListInstructors()
	if err != nil {
		return nil, err
	}
	term = normalize(term)

	rows := []InstructorRow{}
	for _, ins := range instructors {
		courses, err := d.InstructorCourses(ins.InstructorID)
		if err != nil {
			return nil, err
		}
		row := InstructorRow{Instructor: ins, Courses: courses}
		if matches(term, ins.InstructorID, ins.Name, strconv.Itoa(ins.Age), ins.Email, row.CoursesDisplay()) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Courses returns the courses whose displayed fields (id, name, instructor
// id, roster) contain term, joined with their student rosters.
func Courses(d Directory, term string) ([]CourseRow, error) {
	courses, err := d.ListCourses()
	if err != nil {
		return nil, err
	}
	term = normalize(term)

	rows := []CourseRow{}
	for _, c := range courses {
		roster, err := d.CourseStudents(c.CourseID)
		if err != nil {
			return nil, err
		}
		row := CourseRow{Course: c, Students: roster}
		if matches(term, c.CourseID, c.CourseName, c.InstructorID, row.RosterDisplay()) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
