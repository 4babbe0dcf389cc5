// Package listing holds the list pipeline shared by every list view of the
// portal: criteria evaluation, free-text search, page slicing and the
// controller that ties them to an in-memory snapshot.
package listing

// Field names an equality-filterable attribute of a record.
type Field string

// DateDimension names one of the dates a record can be filtered on.
type DateDimension string

// Record is a single listable item. Implementations are read-only views over
// the backend payload; the pipeline never mutates them.
type Record interface {
	// FieldValue returns the value of an equality-filterable field. ok is
	// false when the record does not carry the field at all.
	FieldValue(field Field) (value string, ok bool)
	// DateValue returns the raw date string for a dimension.
	DateValue(dim DateDimension) (raw string, ok bool)
	// SearchText returns the values the free-text search looks at.
	SearchText() []string
}
