package controller

import "errors"

var (
	// ErrUnknownField is returned when an update names a field the schema
	// does not declare.
	ErrUnknownField = errors.New("controller: unknown field")
	// ErrKindMismatch is returned when an update carries a value of the wrong kind.
	ErrKindMismatch = errors.New("controller: value kind does not match field")
	// ErrForeignAction is returned when an UpdateField built by another
	// definition (or a zero UpdateField) is dispatched.
	ErrForeignAction = errors.New("controller: action was not built by this definition")
	// ErrUnknownAction is returned for action types outside the closed set.
	ErrUnknownAction = errors.New("controller: unknown action")
	// ErrSchemaMismatch is returned when an initial record belongs to another schema.
	ErrSchemaMismatch = errors.New("controller: record does not match schema")
)
