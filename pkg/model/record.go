package model

import (
	"fmt"
	"strings"
)

// Record holds one value per schema field in declaration order. Records are
// values: With returns a modified copy and never mutates the receiver.
type Record struct {
	schema Schema
	values []Value
}

// ZeroRecord builds the record every field's zero value produces.
func ZeroRecord(schema Schema) Record {
	values := make([]Value, schema.Len())
	for i := range values {
		values[i] = Zero(schema.At(i).Kind)
	}
	return Record{schema: schema, values: values}
}

// NewRecord builds a complete record from named values. Every schema field
// must be supplied with a value of its kind; partial records are rejected.
func NewRecord(schema Schema, values map[string]Value) (Record, error) {
	if schema.IsZero() {
		return Record{}, fmt.Errorf("model: record requires a schema")
	}
	out := Record{schema: schema, values: make([]Value, schema.Len())}
	for name := range values {
		if _, ok := schema.Field(name); !ok {
			return Record{}, fmt.Errorf("model: record %q has no field %q", schema.Name(), name)
		}
	}
	for i, field := range schema.Fields() {
		value, ok := values[field.Name]
		if !ok {
			return Record{}, fmt.Errorf("model: record %q is missing field %q", schema.Name(), field.Name)
		}
		if value.Kind() != field.Kind {
			return Record{}, fmt.Errorf("model: field %q expects %s, got %s", field.Name, field.Kind, value.Kind())
		}
		out.values[i] = value
	}
	return out, nil
}

// MustNewRecord panics when NewRecord fails.
func MustNewRecord(schema Schema, values map[string]Value) Record {
	record, err := NewRecord(schema, values)
	if err != nil {
		panic(err)
	}
	return record
}

// Schema returns the schema the record was built for.
func (r Record) Schema() Schema { return r.schema }

// Len returns the number of values.
func (r Record) Len() int { return len(r.values) }

// At returns the value stored for the field at position i.
func (r Record) At(i int) Value { return r.values[i] }

// Get returns the value stored for the named field.
func (r Record) Get(name string) (Value, bool) {
	field, ok := r.schema.Field(name)
	if !ok || field.Index >= len(r.values) {
		return Value{}, false
	}
	return r.values[field.Index], true
}

// With returns a copy of the record with the named field replaced.
func (r Record) With(name string, value Value) (Record, error) {
	field, ok := r.schema.Field(name)
	if !ok {
		return r, fmt.Errorf("model: record %q has no field %q", r.schema.Name(), name)
	}
	if value.Kind() != field.Kind {
		return r, fmt.Errorf("model: field %q expects %s, got %s", name, field.Kind, value.Kind())
	}
	return r.WithAt(field.Index, value), nil
}

// WithAt returns a copy with the value at position i replaced. The caller is
// responsible for matching the field kind.
func (r Record) WithAt(i int, value Value) Record {
	values := append([]Value(nil), r.values...)
	values[i] = value
	return Record{schema: r.schema, values: values}
}

// Clone returns an independent copy.
func (r Record) Clone() Record {
	return Record{schema: r.schema, values: append([]Value(nil), r.values...)}
}

// Equal reports whether both records share a schema and hold equal values.
func (r Record) Equal(other Record) bool {
	if !r.schema.Same(other.schema) || len(r.values) != len(other.values) {
		return false
	}
	for i := range r.values {
		if !r.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// Map flattens the record into plain Go values keyed by field name. Absent
// optional values map to nil.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for i, value := range r.values {
		out[r.schema.At(i).Name] = value.Interface()
	}
	return out
}

func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.schema.Name())
	b.WriteString(" {")
	for i, value := range r.values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(r.schema.At(i).Name)
		b.WriteString(": ")
		b.WriteString(value.String())
	}
	b.WriteString(" }")
	return b.String()
}
