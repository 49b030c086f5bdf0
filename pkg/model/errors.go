package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedRecordShape signals the record definition is not a flat
	// structure of named fields (an enumeration, a tuple, a scalar, ...).
	ErrUnsupportedRecordShape = errors.New("unsupported record shape")
	// ErrUnsupportedFieldType signals a field whose declared type is outside
	// Text, Boolean, OptionalText and OptionalBoolean.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// CompileError describes why a record definition could not be compiled. Only
// the first offending field is reported.
type CompileError struct {
	Record string
	Field  string
	Type   string
	Reason string
	Err    error
}

func (e *CompileError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("formulay: ")
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("compile failed")
	}
	if e.Record != "" {
		fmt.Fprintf(&b, " in record %q", e.Record)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " (type %s)", e.Type)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *CompileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ShapeError builds a CompileError wrapping ErrUnsupportedRecordShape.
func ShapeError(record, reason string) *CompileError {
	return &CompileError{Record: record, Reason: reason, Err: ErrUnsupportedRecordShape}
}

// FieldTypeError builds a CompileError wrapping ErrUnsupportedFieldType.
func FieldTypeError(record, field string, expr TypeExpr) *CompileError {
	return &CompileError{Record: record, Field: field, Type: expr.String(), Err: ErrUnsupportedFieldType}
}
