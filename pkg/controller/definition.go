package controller

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/naming"
)

// Definition is the compiled form of a schema: initializer, update action
// table and validation predicate. It is read-only after Compile.
type Definition struct {
	schema   model.Schema
	actions  []string
	required []int
}

// Compile derives the controller definition for schema.
func Compile(schema model.Schema) (*Definition, error) {
	if schema.IsZero() {
		return nil, fmt.Errorf("controller: schema is required")
	}
	def := &Definition{
		schema:  schema,
		actions: make([]string, schema.Len()),
	}
	actionOwner := make(map[string]string, schema.Len())
	kebabOwner := make(map[string]string, schema.Len())
	for i, field := range schema.Fields() {
		action, kebab := naming.ActionName(field.Name), naming.Kebab(field.Name)
		// Action names, class tokens and element ids must stay one per field.
		if other, taken := actionOwner[action]; taken {
			return nil, model.ShapeError(schema.Name(), fmt.Sprintf("fields %q and %q derive the same identifier %s", other, field.Name, action))
		}
		if other, taken := kebabOwner[kebab]; taken {
			return nil, model.ShapeError(schema.Name(), fmt.Sprintf("fields %q and %q derive the same identifier %s", other, field.Name, kebab))
		}
		actionOwner[action], kebabOwner[kebab] = field.Name, field.Name
		def.actions[i] = action
		switch field.Kind {
		case model.KindText, model.KindBoolean:
			def.required = append(def.required, i)
		case model.KindOptionalText, model.KindOptionalBoolean:
		}
	}
	return def, nil
}

// MustCompile panics when Compile fails.
func MustCompile(schema model.Schema) *Definition {
	def, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return def
}

// Schema returns the compiled schema.
func (d *Definition) Schema() model.Schema { return d.schema }

// Zero returns the record built from every field's zero value.
func (d *Definition) Zero() model.Record {
	return model.ZeroRecord(d.schema)
}

// ActionNames lists the update actions in declaration order followed by
// Submit and ShowRequiredWarnings.
func (d *Definition) ActionNames() []string {
	names := append([]string(nil), d.actions...)
	return append(names, ActionSubmit, ActionShowRequiredWarnings)
}

// Update builds the UpdateField action for the named field.
func (d *Definition) Update(field string, value model.Value) (UpdateField, error) {
	descriptor, ok := d.schema.Field(field)
	if !ok {
		return UpdateField{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return d.UpdateAt(descriptor.Index, value)
}

// UpdateAt builds the UpdateField action for the field at position index.
func (d *Definition) UpdateAt(index int, value model.Value) (UpdateField, error) {
	if index < 0 || index >= d.schema.Len() {
		return UpdateField{}, fmt.Errorf("%w: index %d", ErrUnknownField, index)
	}
	field := d.schema.At(index)
	if value.Kind() != field.Kind {
		return UpdateField{}, fmt.Errorf("%w: %s expects %s, got %s", ErrKindMismatch, field.Name, field.Kind, value.Kind())
	}
	return UpdateField{def: d, index: index, value: value}, nil
}

// MustUpdate panics when Update fails.
func (d *Definition) MustUpdate(field string, value model.Value) UpdateField {
	action, err := d.Update(field, value)
	if err != nil {
		panic(err)
	}
	return action
}

// RequiredSatisfied is the conjunction of every required field's rule: Text
// fields must be non-empty and Boolean fields true. Optional fields never
// affect the result.
func (d *Definition) RequiredSatisfied(record model.Record) bool {
	ok := true
	for _, i := range d.required {
		ok = record.At(i).Satisfied() && ok
	}
	return ok
}

// Missing lists the required fields failing validation, in declaration order.
func (d *Definition) Missing(record model.Record) []string {
	var missing []string
	for _, i := range d.required {
		if !record.At(i).Satisfied() {
			missing = append(missing, d.schema.At(i).Name)
		}
	}
	return missing
}

// New instantiates a controller for one form session.
func (d *Definition) New(options ...Option) (*Controller, error) {
	cfg := newConfig(options)

	initial := d.Zero()
	if cfg.initial != nil {
		if !cfg.initial.Schema().Same(d.schema) || cfg.initial.Len() != d.schema.Len() {
			return nil, fmt.Errorf("%w: initial record %q", ErrSchemaMismatch, cfg.initial.Schema().Name())
		}
		initial = cfg.initial.Clone()
	}
	if cfg.sessionID == "" {
		cfg.sessionID = uuid.NewString()
	}

	ctrl := &Controller{
		def:     d,
		cfg:     cfg,
		initial: initial,
		values:  initial.Clone(),
		logger:  cfg.logger.Named("controller").With(sessionFields(cfg.sessionID, d.schema.Name())...),
	}
	ctrl.logger.Debug("controller created", enforceField(cfg.enforceRequired()))
	return ctrl, nil
}
