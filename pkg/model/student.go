package model

// Student is a validated student record. Construct through NewStudent;
// the zero value is not a valid entity.
type Student struct {
	Person
	StudentID string // primary key, 1-64 chars from [A-Za-z0-9._-]
}

// NewStudent validates the common person fields and then the identifier,
// in that order, and returns the entity value. On failure the returned
// error is the *ValidationError for the first violated rule.
func NewStudent(name string, age int, email, studentID string) (Student, error) {
	if err := ValidatePerson(name, age, email); err != nil {
		return Student{}, err
	}
	if err := ValidateIdentifier("student_id", studentID); err != nil {
		return Student{}, err
	}
	return Student{
		Person:    Person{Name: name, Age: age, Email: email},
		StudentID: studentID,
	}, nil
}

// Record returns the ordered flat serialization: identifier first, then the
// remaining fields in declaration order.
func (s Student) Record() []Field {
	return []Field{
		{Name: "student_id", Value: s.StudentID},
		{Name: "name", Value: s.Name},
		{Name: "age", Value: s.Age},
		{Name: "email", Value: s.Email},
	}
}
