package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/registrar/pkg/model"
)

// fakeDirectory serves canned rows and relations for facade tests.
type fakeDirectory struct {
	students    []model.Student
	instructors []model.Instructor
	courses     []model.Course
	enrollments map[string][]string // student_id -> course ids
	teaching    map[string][]string // instructor_id -> course ids
	rosters     map[string][]string // course_id -> student ids
}

func (f *fakeDirectory) ListStudents() ([]model.Student, error)       { return f.students, nil }
func (f *fakeDirectory) ListInstructors() ([]model.Instructor, error) { return f.instructors, nil }
func (f *fakeDirectory) ListCourses() ([]model.Course, error)         { return f.courses, nil }
func (f *fakeDirectory) StudentCourses(id string) ([]string, error) {
	return f.enrollments[id], nil
}
func (f *fakeDirectory) InstructorCourses(id string) ([]string, error) {
	return f.teaching[id], nil
}
func (f *fakeDirectory) CourseStudents(id string) ([]string, error) {
	return f.rosters[id], nil
}

func newFakeDirectory(t *testing.T) *fakeDirectory {
	t.Helper()
	maya, err := model.NewStudent("Maya", 20, "maya@uni.edu", "S1")
	require.NoError(t, err)
	karim, err := model.NewStudent("Karim", 22, "karim@uni.edu", "S2")
	require.NoError(t, err)
	drNour, err := model.NewInstructor("Dr. Nour", 45, "nour@dept.edu", "I1")
	require.NoError(t, err)
	tools, err := model.NewCourse("EECE435L", "Software Tools", "I1")
	require.NoError(t, err)
	algo, err := model.NewCourse("CMPS212", "Algorithms", "")
	require.NoError(t, err)

	return &fakeDirectory{
		students:    []model.Student{maya, karim},
		instructors: []model.Instructor{drNour},
		courses:     []model.Course{algo, tools},
		enrollments: map[string][]string{"S1": {"EECE435L"}},
		teaching:    map[string][]string{"I1": {"EECE435L"}},
		rosters:     map[string][]string{"EECE435L": {"S1"}},
	}
}

func TestStudentsSearch(t *testing.T) {
	d := newFakeDirectory(t)

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "empty term matches all", term: "", wantIDs: []string{"S1", "S2"}},
		{name: "whitespace term matches all", term: "   ", wantIDs: []string{"S1", "S2"}},
		{name: "name substring", term: "may", wantIDs: []string{"S1"}},
		{name: "case-insensitive", term: "MAYA", wantIDs: []string{"S1"}},
		{name: "matches by id", term: "s2", wantIDs: []string{"S2"}},
		{name: "matches by email", term: "karim@", wantIDs: []string{"S2"}},
		{name: "matches by age", term: "22", wantIDs: []string{"S2"}},
		{name: "matches by enrolled course id", term: "eece435l", wantIDs: []string{"S1"}},
		{name: "no match", term: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Students(d, tt.term)
			require.NoError(t, err)
			ids := []string{}
			for _, r := range rows {
				ids = append(ids, r.StudentID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStudentsRowsCarryRelatedCourses(t *testing.T) {
	d := newFakeDirectory(t)
	rows, err := Students(d, "maya")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"EECE435L"}, rows[0].Courses)
	assert.Equal(t, "EECE435L", rows[0].CoursesDisplay())
}

func TestInstructorsSearch(t *testing.T) {
	d := newFakeDirectory(t)

	rows, err := Instructors(d, "nour")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "I1", rows[0].InstructorID)
	assert.Equal(t, []string{"EECE435L"}, rows[0].Courses)

	rows, err = Instructors(d, "chemistry")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCoursesSearch(t *testing.T) {
	d := newFakeDirectory(t)

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "empty matches all ordered as listed", term: "", wantIDs: []string{"CMPS212", "EECE435L"}},
		{name: "by course name", term: "software", wantIDs: []string{"EECE435L"}},
		{name: "by instructor id", term: "i1", wantIDs: []string{"EECE435L"}},
		{name: "by roster student id", term: "s1", wantIDs: []string{"EECE435L"}},
		{name: "unassigned course by name", term: "algo", wantIDs: []string{"CMPS212"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Courses(d, tt.term)
			require.NoError(t, err)
			ids := []string{}
			for _, r := range rows {
				ids = append(ids, r.CourseID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDisplayDelimiterJoinsWithCommaSpace(t *testing.T) {
	r := StudentRow{Courses: []string{"C1", "C2"}}
	assert.Equal(t, "C1, C2", r.CoursesDisplay())
}
