package project

import "errors"

var (
	// ErrUnknownReference is returned when an operation references an id missing from the namespace
	ErrUnknownReference = errors.New("unknown reference")
	// ErrInvalidBounds is returned for variability bounds with min > max or negative min
	ErrInvalidBounds = errors.New("invalid variability bounds")
	// ErrDuplicateVariant is returned when a variability lists the same variant twice
	ErrDuplicateVariant = errors.New("duplicate variant")
	// ErrNotProjectDocument is returned when the document root is not a project
	ErrNotProjectDocument = errors.New("not a project document")
	// ErrUnsupportedKind is returned for diagram kinds or element types a document cannot restore
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrUnsupportedVersion is returned for documents written by a newer format version
	ErrUnsupportedVersion = errors.New("unsupported format version")
)
