package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/registrar/pkg/model"
)

func TestAddInstructorDuplicate(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddInstructor(mustInstructor(t, "I_42", "Dr. Karim")))
	err := s.AddInstructor(mustInstructor(t, "I_42", "Dr. Other"))
	assert.ErrorIs(t, err, model.ErrDuplicateKey)
}

func TestUpdateInstructor(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddInstructor(mustInstructor(t, "I_42", "Dr. Karim")))

	updated, err := model.NewInstructor("Dr. Karim Saab", 39, "ksaab@dept.edu", "I_42")
	require.NoError(t, err)
	require.NoError(t, s.UpdateInstructor(updated))

	instructors, err := s.ListInstructors()
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, "Dr. Karim Saab", instructors[0].Name)

	err = s.UpdateInstructor(mustInstructor(t, "I-ghost", "Nobody"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteInstructorDetachesCourses(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddInstructor(mustInstructor(t, "I_42", "Dr. Karim")))
	require.NoError(t, s.AddCourse(mustCourse(t, "C1", "Course One", "I_42")))
	require.NoError(t, s.AddCourse(mustCourse(t, "C2", "Course Two", "I_42")))

	require.NoError(t, s.DeleteInstructor("I_42"))

	// Both courses survive, unassigned.
	courses, err := s.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	for _, c := range courses {
		assert.Empty(t, c.InstructorID)
	}

	instructors, err := s.ListInstructors()
	require.NoError(t, err)
	assert.Empty(t, instructors)
}

func TestDeleteInstructorNotFound(t *testing.T) {
	s := setupStore(t)
	err := s.DeleteInstructor("I-ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestListInstructorsOrderedByID(t *testing.T) {
	s := setupStore(t)
	for _, id := range []string{"I_b", "I_a", "I_c"} {
		require.NoError(t, s.AddInstructor(mustInstructor(t, id, "Instructor "+id)))
	}

	instructors, err := s.ListInstructors()
	require.NoError(t, err)
	require.Len(t, instructors, 3)
	assert.Equal(t, "I_a", instructors[0].InstructorID)
	assert.Equal(t, "I_c", instructors[2].InstructorID)
}
