package render

import (
	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/naming"
)

// InputKind selects the input element a runtime draws for a field.
type InputKind string

const (
	// InputText is a single-line text input.
	InputText InputKind = "text"
	// InputCheckbox is a checkbox.
	InputCheckbox InputKind = "checkbox"
)

// RawInput is what an input element reports on change: its text value for
// text inputs, its checked flag for checkboxes.
type RawInput struct {
	Value   string
	Checked bool
}

// Descriptor describes how to draw one field for the current state.
type Descriptor struct {
	Field      model.FieldDescriptor `json:"field"`
	Action     string                `json:"action"`
	LabelText  string                `json:"label"`
	LabelClass string                `json:"labelClass"`
	InputClass string                `json:"inputClass"`
	InputKind  InputKind             `json:"inputKind"`
	Display    string                `json:"value"`
	Checked    bool                  `json:"checked"`
	Required   bool                  `json:"required"`
	Value      model.Value           `json:"-"`

	def     *controller.Definition
	convert func(RawInput) model.Value
}

// OnChange maps a raw input event to the field's update action. Text fields
// keep the raw string (empty included); optional text maps "" to absent;
// checkboxes carry the toggled flag, and optional booleans always become
// present once toggled.
//
// Only descriptors built by Describe carry a definition. A zero Descriptor
// returns a zero UpdateField, which Dispatch rejects with ErrForeignAction.
func (d Descriptor) OnChange(raw RawInput) controller.UpdateField {
	if d.def == nil || d.convert == nil {
		return controller.UpdateField{}
	}
	// The converter always yields the field's own kind, so UpdateAt cannot fail.
	action, _ := d.def.UpdateAt(d.Field.Index, d.convert(raw))
	return action
}

// Form is the described form: its class hook, one descriptor per field in
// declaration order, and the submit button label.
type Form struct {
	Record      string       `json:"record"`
	Class       string       `json:"class"`
	ItemClass   string       `json:"itemClass"`
	SubmitLabel string       `json:"submitLabel"`
	Submitted   bool         `json:"submitted"`
	Warnings    bool         `json:"displayRequiredWarnings"`
	Fields      []Descriptor `json:"fields"`
}

// Field returns the descriptor for the named field.
func (f Form) Field(name string) (Descriptor, bool) {
	for _, field := range f.Fields {
		if field.Field.Name == name {
			return field, true
		}
	}
	return Descriptor{}, false
}

// Describe builds the render descriptors for state.
func Describe(def *controller.Definition, state controller.State, options ...Option) Form {
	cfg := newConfig(options)
	schema := def.Schema()
	if !state.Values.Schema().Same(schema) {
		// States from another definition (or the zero State) draw the zero record.
		state.Values = def.Zero()
	}

	form := Form{
		Record:      schema.Name(),
		Class:       naming.FormClass(schema.Name()),
		ItemClass:   naming.ItemClass,
		SubmitLabel: cfg.submitLabel,
		Submitted:   state.Submitted,
		Warnings:    state.DisplayRequiredWarnings,
		Fields:      make([]Descriptor, 0, schema.Len()),
	}
	for i, field := range schema.Fields() {
		form.Fields = append(form.Fields, describeField(def, field, state.Values.At(i), state.DisplayRequiredWarnings, cfg))
	}
	return form
}

// DescribeController builds the descriptors for the controller's current state.
func DescribeController(ctrl *controller.Controller, options ...Option) Form {
	return Describe(ctrl.Definition(), ctrl.State(), options...)
}

func describeField(def *controller.Definition, field model.FieldDescriptor, value model.Value, warnings bool, cfg config) Descriptor {
	desc := Descriptor{
		Field:     field,
		Action:    naming.ActionName(field.Name),
		LabelText: field.Label,
		Value:     value,
		def:       def,
	}
	if desc.LabelText == "" {
		desc.LabelText = cfg.labeler(field.Name)
	}

	switch field.Kind {
	case model.KindText:
		desc.InputKind = InputText
		desc.Display = value.Text()
		desc.Required = warnings && !value.Satisfied()
		desc.convert = func(raw RawInput) model.Value {
			return model.Text(raw.Value)
		}
	case model.KindBoolean:
		desc.InputKind = InputCheckbox
		desc.Checked = value.Bool()
		desc.Required = warnings && !value.Satisfied()
		desc.convert = func(raw RawInput) model.Value {
			return model.Bool(raw.Checked)
		}
	case model.KindOptionalText:
		desc.InputKind = InputText
		desc.Display = value.Text()
		desc.convert = func(raw RawInput) model.Value {
			if raw.Value == "" {
				return model.None(model.KindOptionalText)
			}
			return model.SomeText(raw.Value)
		}
	case model.KindOptionalBoolean:
		// Once toggled an optional boolean cannot return to absent.
		desc.InputKind = InputCheckbox
		desc.Checked = value.Bool()
		desc.convert = func(raw RawInput) model.Value {
			return model.SomeBool(raw.Checked)
		}
	}

	family := field.Kind.Family()
	desc.LabelClass = naming.LabelClass(field.Name, family, desc.Required)
	desc.InputClass = naming.InputClass(field.Name, family, desc.Required)
	return desc
}
