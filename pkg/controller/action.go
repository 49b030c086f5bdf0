package controller

import "github.com/goliatone/go-formulay/pkg/model"

// Names of the two control actions.
const (
	ActionSubmit               = "Submit"
	ActionShowRequiredWarnings = "ShowRequiredWarnings"
)

// Action is the closed set of messages a controller accepts: UpdateField,
// Submit and ShowRequiredWarnings.
type Action interface {
	Name() string
	isAction()
}

// UpdateField replaces one field's value. Instances are only built by a
// Definition, which guarantees the field exists and the value kind matches.
type UpdateField struct {
	def   *Definition
	index int
	value model.Value
}

// Name returns the derived action name, e.g. UpdateAgreeToTerms.
func (u UpdateField) Name() string {
	if u.def == nil {
		return ""
	}
	return u.def.actions[u.index]
}

// Field returns the declared name of the updated field.
func (u UpdateField) Field() string {
	if u.def == nil {
		return ""
	}
	return u.def.schema.At(u.index).Name
}

// Index returns the declaration position of the updated field.
func (u UpdateField) Index() int { return u.index }

// Value returns the new value.
func (u UpdateField) Value() model.Value { return u.value }

func (UpdateField) isAction() {}

// Submit attempts to finalize the record.
type Submit struct{}

// Name returns "Submit".
func (Submit) Name() string { return ActionSubmit }
func (Submit) isAction()    {}

// ShowRequiredWarnings turns on required-field decoration.
type ShowRequiredWarnings struct{}

// Name returns "ShowRequiredWarnings".
func (ShowRequiredWarnings) Name() string { return ActionShowRequiredWarnings }
func (ShowRequiredWarnings) isAction()    {}
