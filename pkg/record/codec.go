// Package record converts submitted records to and from JSON, and validates
// incoming documents against the JSON Schema derived from the record schema.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/goliatone/go-formulay/pkg/model"
)

// ErrInvalidDocument wraps validation failures in Decode.
var ErrInvalidDocument = errors.New("record: invalid document")

// JSONSchema describes the JSON shape of records of schema. Required kinds are
// listed under "required"; optional kinds accept null or may be omitted.
func JSONSchema(schema model.Schema) map[string]any {
	properties := make(map[string]any, schema.Len())
	required := make([]any, 0, schema.Len())
	for _, field := range schema.Fields() {
		properties[field.Name] = propertySchema(field)
		if field.Kind.Required() {
			required = append(required, field.Name)
		}
	}
	doc := map[string]any{
		"title":                schema.Name(),
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func propertySchema(field model.FieldDescriptor) map[string]any {
	prop := map[string]any{}
	switch field.Kind {
	case model.KindText:
		prop["type"] = "string"
	case model.KindBoolean:
		prop["type"] = "boolean"
	case model.KindOptionalText:
		prop["type"] = []any{"string", "null"}
	case model.KindOptionalBoolean:
		prop["type"] = []any{"boolean", "null"}
	}
	if field.Label != "" {
		prop["title"] = field.Label
	}
	return prop
}

// Codec encodes and decodes records of one schema.
type Codec struct {
	schema   model.Schema
	resolved *jsonschema.Resolved
}

// NewCodec resolves the JSON Schema for schema once.
func NewCodec(schema model.Schema) (*Codec, error) {
	if schema.IsZero() {
		return nil, fmt.Errorf("record: schema is required")
	}
	raw, err := json.Marshal(JSONSchema(schema))
	if err != nil {
		return nil, fmt.Errorf("record: marshal schema: %w", err)
	}
	var js jsonschema.Schema
	if err := json.Unmarshal(raw, &js); err != nil {
		return nil, fmt.Errorf("record: unmarshal into jsonschema.Schema: %w", err)
	}
	resolved, err := js.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return nil, fmt.Errorf("record: resolve schema: %w", err)
	}
	return &Codec{schema: schema, resolved: resolved}, nil
}

// Schema returns the record schema the codec was built for.
func (c *Codec) Schema() model.Schema { return c.schema }

// Encode writes record as a JSON object with keys in declaration order.
// Absent optionals encode as null.
func (c *Codec) Encode(record model.Record) ([]byte, error) {
	if !record.Schema().Same(c.schema) {
		return nil, fmt.Errorf("record: encode %s with codec for %s", record.Schema().Name(), c.schema.Name())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range c.schema.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(record.At(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("record: encode %s: %w", field.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode validates data and builds a record from it. Omitted optionals decode
// as absent.
func (c *Codec) Decode(data []byte) (model.Record, error) {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return model.Record{}, fmt.Errorf("record: unmarshal: %w", err)
	}
	if err := c.resolved.Validate(instance); err != nil {
		return model.Record{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	object, _ := instance.(map[string]any)

	record := model.ZeroRecord(c.schema)
	for i, field := range c.schema.Fields() {
		raw, ok := object[field.Name]
		if !ok || raw == nil {
			continue
		}
		value, err := toValue(field.Kind, raw)
		if err != nil {
			return model.Record{}, fmt.Errorf("%w: field %s: %w", ErrInvalidDocument, field.Name, err)
		}
		record = record.WithAt(i, value)
	}
	return record, nil
}

func toValue(kind model.FieldKind, raw any) (model.Value, error) {
	switch v := raw.(type) {
	case string:
		switch kind {
		case model.KindText:
			return model.Text(v), nil
		case model.KindOptionalText:
			return model.SomeText(v), nil
		}
	case bool:
		switch kind {
		case model.KindBoolean:
			return model.Bool(v), nil
		case model.KindOptionalBoolean:
			return model.SomeBool(v), nil
		}
	}
	return model.Value{}, fmt.Errorf("unexpected %T for %s", raw, kind)
}

// Encode is a convenience for one-off encoding.
func Encode(record model.Record) ([]byte, error) {
	codec, err := NewCodec(record.Schema())
	if err != nil {
		return nil, err
	}
	return codec.Encode(record)
}

// Decode is a convenience for one-off decoding.
func Decode(schema model.Schema, data []byte) (model.Record, error) {
	codec, err := NewCodec(schema)
	if err != nil {
		return model.Record{}, err
	}
	return codec.Decode(data)
}
