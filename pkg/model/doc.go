// Package model defines the validated entity types (Student, Instructor,
// Course), the pure field validators they are built from, and the error
// taxonomy shared between entity construction and the storage layer.
//
// Entities are value types constructed only through their New* factories;
// a factory either returns a value that satisfies every field rule or a
// *ValidationError naming the first violated field. Entities carry no
// reference to storage.
package model
