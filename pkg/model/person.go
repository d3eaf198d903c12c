package model

import (
	"regexp"
	"strings"
)

// Field rule bounds shared by every person-like entity.
const (
	MinAge = 0
	MaxAge = 120

	// MaxIdentifierLen bounds every primary-key identifier.
	MaxIdentifierLen = 64
)

var (
	// emailRe accepts local-part@domain.tld with an ASCII local part,
	// letter/digit/dot/hyphen domain labels, and a 2-63 letter TLD.
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,63}$`)

	// identifierRe accepts 1-64 characters from [A-Za-z0-9._-].
	identifierRe = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

// Person holds the attributes common to students and instructors. It is
// never persisted on its own; Student and Instructor embed it.
type Person struct {
	Name  string // full name, non-empty after trimming
	Age   int    // age in years, 0-120 inclusive
	Email string // contact email matching the pattern above
}

// ValidatePerson checks the common person fields in declaration order
// (name, age, email) and returns a *ValidationError for the first rule
// violated. It is pure: no I/O, no side effects.
func ValidatePerson(name string, age int, email string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must be a non-empty string"}
	}
	if age < MinAge || age > MaxAge {
		return &ValidationError{Field: "age", Reason: "must be an integer in [0, 120]"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	return nil
}

// ValidateIdentifier checks that id is 1-64 characters from [A-Za-z0-9._-].
// field names the identifier in the returned *ValidationError (e.g.
// "student_id"). Existence of the referenced record is a store concern,
// not a format concern.
func ValidateIdentifier(field, id string) error {
	if !identifierRe.MatchString(id) {
		return &ValidationError{Field: field, Reason: "must be 1-64 chars from [A-Za-z0-9._-]"}
	}
	return nil
}
