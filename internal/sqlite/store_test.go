package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/registrar/pkg/model"
)

// setupStore opens an initialized store in a temp directory, cleaned up with
// the test.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), DBFileName))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

// mustStudent builds a valid student or fails the test.
func mustStudent(t *testing.T, id, name string) model.Student {
	t.Helper()
	st, err := model.NewStudent(name, 20, "student@uni.edu", id)
	require.NoError(t, err)
	return st
}

func mustInstructor(t *testing.T, id, name string) model.Instructor {
	t.Helper()
	ins, err := model.NewInstructor(name, 40, "teacher@dept.edu", id)
	require.NoError(t, err)
	return ins
}

func mustCourse(t *testing.T, id, name, instructorID string) model.Course {
	t.Helper()
	c, err := model.NewCourse(id, name, instructorID)
	require.NoError(t, err)
	return c
}

func TestInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DBFileName)

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.AddStudent(mustStudent(t, "S-1001", "Maya")))
	require.NoError(t, s.Close())

	// Re-open and re-init on the same file: existing data survives.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	require.NoError(t, s2.Init())

	students, err := s2.ListStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S-1001", students[0].StudentID)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), DBFileName))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestBackupProducesUsableReplica(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddInstructor(mustInstructor(t, "I_42", "Dr. Karim")))
	require.NoError(t, s.AddCourse(mustCourse(t, "EECE435L", "Software Tools", "I_42")))
	require.NoError(t, s.AddStudent(mustStudent(t, "S-1001", "Maya")))
	require.NoError(t, s.EnrollStudent("S-1001", "EECE435L"))

	target := filepath.Join(t.TempDir(), "backup.db")
	require.NoError(t, s.Backup(target))

	// The replica is a self-contained drop-in store file.
	replica, err := Open(target)
	require.NoError(t, err)
	defer replica.Close()

	students, err := replica.ListStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)

	courses, err := replica.StudentCourses("S-1001")
	require.NoError(t, err)
	assert.Equal(t, []string{"EECE435L"}, courses)
}

func TestBackupToInvalidPathIsStorageError(t *testing.T) {
	s := setupStore(t)
	err := s.Backup(filepath.Join(t.TempDir(), "missing", "nested", "backup.db"))
	require.Error(t, err)
	var serr *model.StorageError
	assert.ErrorAs(t, err, &serr)
}

func TestAuditLogRecordsMutations(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddStudent(mustStudent(t, "S-1001", "Maya")))
	require.NoError(t, s.AddCourse(mustCourse(t, "EECE435L", "Software Tools", "")))
	require.NoError(t, s.EnrollStudent("S-1001", "EECE435L"))
	require.NoError(t, s.DeleteStudent("S-1001"))

	entries, err := s.AuditLog()
	require.NoError(t, err)
	require.Len(t, entries, 4)

	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		assert.NotEmpty(t, e.EntryID)
		assert.False(t, e.CreatedAt.IsZero())
		actions = append(actions, e.Action)
	}
	assert.Equal(t, []string{"ADD_STUDENT", "ADD_COURSE", "ENROLL_STUDENT", "DELETE_STUDENT"}, actions)
}

func TestFailedMutationLeavesNoAuditEntry(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.AddStudent(mustStudent(t, "S-1001", "Maya")))

	err := s.AddStudent(mustStudent(t, "S-1001", "Impostor"))
	require.ErrorIs(t, err, model.ErrDuplicateKey)

	entries, err := s.AuditLog()
	require.NoError(t, err)
	assert.Len(t, entries, 1, "rolled-back mutation must not be logged")
}
