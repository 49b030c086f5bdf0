package model

import (
	"fmt"
	"strings"
)

// FieldDescriptor names one field of a record and its classified kind.
// Label overrides the derived human-readable label when set.
type FieldDescriptor struct {
	Name  string    `json:"name" yaml:"name"`
	Kind  FieldKind `json:"kind" yaml:"kind"`
	Label string    `json:"label,omitempty" yaml:"label,omitempty"`
	Index int       `json:"index" yaml:"index"`
}

// Schema is the ordered, immutable list of field descriptors extracted from a
// record definition. Copies share the same underlying data.
type Schema struct {
	data *schemaData
}

type schemaData struct {
	name   string
	fields []FieldDescriptor
	index  map[string]int
}

// NewSchema validates the descriptors and freezes them in declaration order.
// Index values are reassigned from the slice position.
func NewSchema(name string, fields []FieldDescriptor) (Schema, error) {
	data := &schemaData{
		name:   strings.TrimSpace(name),
		fields: make([]FieldDescriptor, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return Schema{}, ShapeError(data.name, fmt.Sprintf("field %d has no name", i))
		}
		if _, exists := data.index[field.Name]; exists {
			return Schema{}, ShapeError(data.name, fmt.Sprintf("duplicate field %q", field.Name))
		}
		if !field.Kind.Valid() {
			return Schema{}, &CompileError{Record: data.name, Field: field.Name, Type: field.Kind.String(), Err: ErrUnsupportedFieldType}
		}
		field.Index = i
		data.fields[i] = field
		data.index[field.Name] = i
	}
	return Schema{data: data}, nil
}

// MustNewSchema panics when NewSchema fails. Intended for tests and fixtures.
func MustNewSchema(name string, fields ...FieldDescriptor) Schema {
	schema, err := NewSchema(name, fields)
	if err != nil {
		panic(err)
	}
	return schema
}

// Name returns the record name the schema was introspected from.
func (s Schema) Name() string {
	if s.data == nil {
		return ""
	}
	return s.data.name
}

// Len returns the number of fields.
func (s Schema) Len() int {
	if s.data == nil {
		return 0
	}
	return len(s.data.fields)
}

// Fields returns a copy of the descriptors in declaration order.
func (s Schema) Fields() []FieldDescriptor {
	if s.data == nil {
		return nil
	}
	return append([]FieldDescriptor(nil), s.data.fields...)
}

// At returns the descriptor at position i.
func (s Schema) At(i int) FieldDescriptor {
	return s.data.fields[i]
}

// Field looks up a descriptor by name.
func (s Schema) Field(name string) (FieldDescriptor, bool) {
	if s.data == nil {
		return FieldDescriptor{}, false
	}
	idx, ok := s.data.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.data.fields[idx], true
}

// Same reports whether both values refer to the same introspected schema.
func (s Schema) Same(other Schema) bool {
	return s.data != nil && s.data == other.data
}

// IsZero reports whether the schema was never initialised.
func (s Schema) IsZero() bool {
	return s.data == nil
}
