package model

// Field is one entry of an entity's ordered serialization: the declared
// column name and its value. Presentation layers and the CSV exporter
// consume records in this order rather than iterating an unordered map.
type Field struct {
	Name  string
	Value any
}
