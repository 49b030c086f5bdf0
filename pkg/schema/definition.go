package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formulay/pkg/model"
)

// Definition is the declarative form of a record definition:
//
//	record: Data
//	fields:
//	  - name: email
//	    type: string
//	  - name: subscribe
//	    type: Option<bool>
//	    label: Keep me posted
type Definition struct {
	Record   string            `json:"record" yaml:"record"`
	Shape    string            `json:"shape,omitempty" yaml:"shape,omitempty"`
	Fields   []FieldDefinition `json:"fields" yaml:"fields"`
	Variants []string          `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// FieldDefinition declares one named field and its type expression.
type FieldDefinition struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ShapeStruct is the only record shape the compiler accepts.
const ShapeStruct = "struct"

// ParseDefinition decodes a YAML (or JSON) definition document. Unknown keys
// are rejected.
func ParseDefinition(doc Document) (Definition, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(doc.Raw()))
	decoder.KnownFields(true)

	var def Definition
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("schema: %s is empty", doc.Location())
		}
		return Definition{}, fmt.Errorf("schema: parse %s: %w", doc.Location(), err)
	}
	return def, nil
}

// FromDefinition introspects a declarative definition. Non-struct shapes,
// enumerations (variants) and unnamed fields fail with
// model.ErrUnsupportedRecordShape; the first field whose type does not
// classify fails with model.ErrUnsupportedFieldType.
func FromDefinition(def Definition, options ...Option) (model.Schema, error) {
	cfg := newConfig(options)
	name := cfg.name(strings.TrimSpace(def.Record))
	if name == "" {
		name = "Record"
	}

	if shape := strings.ToLower(strings.TrimSpace(def.Shape)); shape != "" && shape != ShapeStruct {
		return model.Schema{}, model.ShapeError(name, fmt.Sprintf("shape %q is not a struct with named fields", def.Shape))
	}
	if len(def.Variants) > 0 {
		return model.Schema{}, model.ShapeError(name, "enumerations are not supported")
	}
	fields := make([]model.FieldDescriptor, 0, len(def.Fields))
	for i, field := range def.Fields {
		fieldName := strings.TrimSpace(field.Name)
		if fieldName == "" {
			return model.Schema{}, model.ShapeError(name, fmt.Sprintf("field %d is unnamed", i))
		}
		expr, err := model.ParseTypeExpr(field.Type)
		if err != nil {
			return model.Schema{}, &model.CompileError{
				Record: name,
				Field:  fieldName,
				Type:   field.Type,
				Reason: err.Error(),
				Err:    model.ErrUnsupportedFieldType,
			}
		}
		kind, err := model.Classify(expr)
		if err != nil {
			return model.Schema{}, model.FieldTypeError(name, fieldName, expr)
		}
		fields = append(fields, model.FieldDescriptor{Name: fieldName, Kind: kind, Label: field.Label})
	}

	schema, err := model.NewSchema(name, fields)
	if err != nil {
		return model.Schema{}, err
	}
	cfg.logger.Debug("definition introspected", zap.String("record", name), zap.Int("fields", schema.Len()))
	return schema, nil
}

// FromDocument parses and introspects a definition document.
func FromDocument(doc Document, options ...Option) (model.Schema, error) {
	def, err := ParseDefinition(doc)
	if err != nil {
		return model.Schema{}, err
	}
	return FromDefinition(def, options...)
}
