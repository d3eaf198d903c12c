package sqlite

// Schema DDL. Init executes these in order on every startup; CREATE TABLE IF
// NOT EXISTS keeps initialization idempotent and never drops existing data.
const (
	createStudents = `CREATE TABLE IF NOT EXISTS students (
    student_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    email TEXT NOT NULL
);`

	createInstructors = `CREATE TABLE IF NOT EXISTS instructors (
    instructor_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    email TEXT NOT NULL
);`

	createCourses = `CREATE TABLE IF NOT EXISTS courses (
    course_id TEXT PRIMARY KEY,
    course_name TEXT NOT NULL,
    instructor_id TEXT,
    FOREIGN KEY (instructor_id) REFERENCES instructors(instructor_id)
);`

	createRegistrations = `CREATE TABLE IF NOT EXISTS registrations (
    student_id TEXT NOT NULL,
    course_id TEXT NOT NULL,
    PRIMARY KEY (student_id, course_id),
    FOREIGN KEY (student_id) REFERENCES students(student_id),
    FOREIGN KEY (course_id) REFERENCES courses(course_id)
);`

	createAuditLog = `CREATE TABLE IF NOT EXISTS audit_log (
    entry_id TEXT PRIMARY KEY,
    action TEXT NOT NULL,
    details TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// schemaStatements lists the DDL in creation order (referenced tables first).
var schemaStatements = []string{
	createStudents,
	createInstructors,
	createCourses,
	createRegistrations,
	createAuditLog,
}
