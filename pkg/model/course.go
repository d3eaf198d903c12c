package model

import "strings"

// Course is a validated course record. InstructorID is the nullable foreign
// key to the teaching instructor; the empty string means unassigned (the
// identifier charset forbids empty ids, so "" is unambiguous). The store
// persists an unassigned course with SQL NULL.
type Course struct {
	CourseID     string // primary key, 1-64 chars from [A-Za-z0-9._-]
	CourseName   string // human-readable title, non-empty after trimming
	InstructorID string // optional instructor id; "" when unassigned
}

// ValidateCourse checks the course fields in declaration order. The
// instructor id, when present, is checked for format only; whether it
// references an existing instructor is a store foreign-key concern.
func ValidateCourse(courseID, courseName, instructorID string) error {
	if err := ValidateIdentifier("course_id", courseID); err != nil {
		return err
	}
	if strings.TrimSpace(courseName) == "" {
		return &ValidationError{Field: "course_name", Reason: "must be a non-empty string"}
	}
	if instructorID != "" {
		if err := ValidateIdentifier("instructor_id", instructorID); err != nil {
			return err
		}
	}
	return nil
}

// NewCourse runs ValidateCourse and returns the entity value.
func NewCourse(courseID, courseName, instructorID string) (Course, error) {
	if err := ValidateCourse(courseID, courseName, instructorID); err != nil {
		return Course{}, err
	}
	return Course{
		CourseID:     courseID,
		CourseName:   courseName,
		InstructorID: instructorID,
	}, nil
}

// Record returns the ordered flat serialization, identifier first. An
// unassigned course serializes instructor_id as the empty string.
func (c Course) Record() []Field {
	return []Field{
		{Name: "course_id", Value: c.CourseID},
		{Name: "course_name", Value: c.CourseName},
		{Name: "instructor_id", Value: c.InstructorID},
	}
}
