package model

// Instructor is a validated instructor record. Construct through
// NewInstructor; the zero value is not a valid entity.
type Instructor struct {
	Person
	InstructorID string // primary key, 1-64 chars from [A-Za-z0-9._-]
}

// NewInstructor validates the common person fields and then the identifier,
// in that order.
func NewInstructor(name string, age int, email, instructorID string) (Instructor, error) {
	if err := ValidatePerson(name, age, email); err != nil {
		return Instructor{}, err
	}
	if err := ValidateIdentifier("instructor_id", instructorID); err != nil {
		return Instructor{}, err
	}
	return Instructor{
		Person:       Person{Name: name, Age: age, Email: email},
		InstructorID: instructorID,
	}, nil
}

// Record returns the ordered flat serialization, identifier first.
func (i Instructor) Record() []Field {
	return []Field{
		{Name: "instructor_id", Value: i.InstructorID},
		{Name: "name", Value: i.Name},
		{Name: "age", Value: i.Age},
		{Name: "email", Value: i.Email},
	}
}
