package schema

import (
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/model"
)

// StructSchema is a Schema introspected from a Go struct type together with
// the struct field each descriptor binds to.
type StructSchema struct {
	schema model.Schema
	typ    reflect.Type
	index  []int
}

// Schema returns the introspected schema.
func (s *StructSchema) Schema() model.Schema { return s.schema }

// Type returns the struct type the schema was built from.
func (s *StructSchema) Type() reflect.Type { return s.typ }

// FromType introspects a struct type. A pointer to a struct is dereferenced
// once; any other kind fails with model.ErrUnsupportedRecordShape.
func FromType(t reflect.Type, options ...Option) (model.Schema, error) {
	reflected, err := Reflect(t, options...)
	if err != nil {
		return model.Schema{}, err
	}
	return reflected.schema, nil
}

// FromValue introspects the dynamic type of value.
func FromValue(value any, options ...Option) (model.Schema, error) {
	return FromType(reflect.TypeOf(value), options...)
}

// For introspects T.
func For[T any](options ...Option) (model.Schema, error) {
	return FromType(reflect.TypeOf((*T)(nil)).Elem(), options...)
}

// Reflect introspects a struct type and keeps the field bindings needed to
// move values between records and struct instances.
//
// Field names come from the configured tag (form:"name,label=Text"), then the
// json tag, then the Go field name. Unexported fields and fields tagged "-"
// are skipped. Embedded fields are rejected: only flat records are supported.
func Reflect(t reflect.Type, options ...Option) (*StructSchema, error) {
	cfg := newConfig(options)
	if t == nil {
		return nil, model.ShapeError(cfg.recordName, "record type is nil")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := cfg.name(t.Name())
	if name == "" {
		name = "Record"
	}
	if t.Kind() != reflect.Struct {
		return nil, model.ShapeError(name, fmt.Sprintf("%s is a %s, not a struct with named fields", t, t.Kind()))
	}

	var (
		fields []model.FieldDescriptor
		index  []int
	)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			return nil, model.ShapeError(name, fmt.Sprintf("embedded field %s is not supported", sf.Name))
		}
		if !sf.IsExported() {
			continue
		}
		fieldName, label, skip := parseFieldTag(sf, cfg.tagName)
		if skip {
			continue
		}

		expr := model.TypeExprOf(sf.Type)
		kind, err := model.Classify(expr)
		if err != nil {
			return nil, model.FieldTypeError(name, fieldName, expr)
		}
		fields = append(fields, model.FieldDescriptor{Name: fieldName, Kind: kind, Label: label})
		index = append(index, i)
	}

	schema, err := model.NewSchema(name, fields)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("schema introspected",
		zap.String("record", name),
		zap.String("type", t.String()),
		zap.Int("fields", schema.Len()),
	)
	return &StructSchema{schema: schema, typ: t, index: index}, nil
}

func parseFieldTag(sf reflect.StructField, tagName string) (name, label string, skip bool) {
	name = sf.Name
	if tag, ok := sf.Tag.Lookup(tagName); ok {
		if tag == "-" {
			return "", "", true
		}
		parts := strings.Split(tag, ",")
		if head := strings.TrimSpace(parts[0]); head != "" {
			name = head
		}
		for _, opt := range parts[1:] {
			key, value, found := strings.Cut(strings.TrimSpace(opt), "=")
			if found && key == "label" {
				label = value
			}
		}
		return name, label, false
	}
	if tag, ok := sf.Tag.Lookup("json"); ok {
		if tag == "-" {
			return "", "", true
		}
		if head, _, _ := strings.Cut(tag, ","); head != "" {
			name = head
		}
	}
	return name, "", false
}

// Record copies a struct value (or pointer to one) into a record.
func (s *StructSchema) Record(value any) (model.Record, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return model.Record{}, fmt.Errorf("schema: nil %s", s.typ)
		}
		rv = rv.Elem()
	}
	if rv.Type() != s.typ {
		return model.Record{}, fmt.Errorf("schema: expected %s, got %s", s.typ, rv.Type())
	}

	record := model.ZeroRecord(s.schema)
	for i, field := range s.schema.Fields() {
		record = record.WithAt(i, readValue(field.Kind, rv.Field(s.index[i])))
	}
	return record, nil
}

// Decode writes record into target, which must be a non-nil pointer to the
// bound struct type.
func (s *StructSchema) Decode(record model.Record, target any) error {
	if !record.Schema().Same(s.schema) {
		return fmt.Errorf("schema: record %q was not built for %s", record.Schema().Name(), s.typ)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Type() != s.typ {
		return fmt.Errorf("schema: decode target must be a non-nil *%s", s.typ)
	}
	elem := rv.Elem()
	for i := range s.index {
		writeValue(elem.Field(s.index[i]), record.At(i))
	}
	return nil
}

func readValue(kind model.FieldKind, fv reflect.Value) model.Value {
	switch kind {
	case model.KindText:
		return model.Text(fv.String())
	case model.KindBoolean:
		return model.Bool(fv.Bool())
	case model.KindOptionalText:
		if fv.IsNil() {
			return model.None(kind)
		}
		return model.SomeText(fv.Elem().String())
	case model.KindOptionalBoolean:
		if fv.IsNil() {
			return model.None(kind)
		}
		return model.SomeBool(fv.Elem().Bool())
	default:
		return model.Value{}
	}
}

func writeValue(fv reflect.Value, value model.Value) {
	switch value.Kind() {
	case model.KindText:
		fv.SetString(value.Text())
	case model.KindBoolean:
		fv.SetBool(value.Bool())
	case model.KindOptionalText, model.KindOptionalBoolean:
		if !value.Present() {
			fv.Set(reflect.Zero(fv.Type()))
			return
		}
		ptr := reflect.New(fv.Type().Elem())
		if value.Kind() == model.KindOptionalText {
			ptr.Elem().SetString(value.Text())
		} else {
			ptr.Elem().SetBool(value.Bool())
		}
		fv.Set(ptr)
	}
}
