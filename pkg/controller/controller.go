package controller

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/model"
)

// Phase is the controller's position in the Editing/Submitted machine.
// Required-warning display is an orthogonal overlay tracked in State.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "Editing"
	case PhaseSubmitted:
		return "Submitted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of one controller instance.
type State struct {
	Values                  model.Record
	Submitted               bool
	DisplayRequiredWarnings bool
}

// Phase derives the machine state from the submitted flag.
func (s State) Phase() Phase {
	if s.Submitted {
		return PhaseSubmitted
	}
	return PhaseEditing
}

// Controller tracks one form session.
type Controller struct {
	def       *Definition
	cfg       config
	logger    *zap.Logger
	initial   model.Record
	values    model.Record
	submitted bool
	warnings  bool
}

// Definition returns the compiled definition the controller runs.
func (c *Controller) Definition() *Definition { return c.def }

// SessionID returns the identifier attached to log entries.
func (c *Controller) SessionID() string { return c.cfg.sessionID }

// EnforceRequiredFields reports whether submit validates required fields.
func (c *Controller) EnforceRequiredFields() bool { return c.cfg.enforceRequired() }

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return State{
		Values:                  c.values.Clone(),
		Submitted:               c.submitted,
		DisplayRequiredWarnings: c.warnings,
	}
}

// Dispatch applies one action. The boolean reports whether the state changed
// and render descriptors should be re-evaluated. The only error a legal
// action can produce is one returned by the submit consumer.
func (c *Controller) Dispatch(ctx context.Context, action Action) (bool, error) {
	switch a := action.(type) {
	case UpdateField:
		if a.def != c.def {
			return false, ErrForeignAction
		}
		return c.update(a), nil
	case Submit:
		return c.submit(ctx)
	case ShowRequiredWarnings:
		return c.showRequiredWarnings(), nil
	default:
		return false, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

// Reset re-initializes the controller with its initial record, clearing the
// submitted flag and the warnings overlay.
func (c *Controller) Reset() {
	c.values = c.initial.Clone()
	c.submitted = false
	c.warnings = false
	c.logger.Debug("controller reset")
	c.notify()
}

func (c *Controller) update(a UpdateField) bool {
	if c.values.At(a.index).Equal(a.value) {
		return false
	}
	c.values = c.values.WithAt(a.index, a.value)
	c.logger.Debug("field updated",
		zap.String("action", a.Name()),
		zap.String("field", a.Field()),
	)
	c.notify()
	return true
}

func (c *Controller) submit(ctx context.Context) (bool, error) {
	enforce := c.cfg.enforceRequired()
	if !enforce || c.def.RequiredSatisfied(c.values) {
		if c.cfg.submit != nil {
			if err := c.cfg.submit(ctx, c.values.Clone()); err != nil {
				c.logger.Warn("submit consumer failed", zap.Error(err))
				return false, fmt.Errorf("controller: submit consumer: %w", err)
			}
		}
		c.submitted = true
		c.warnings = false
		c.logger.Info("record submitted", enforceField(enforce))
		c.notify()
		return true, nil
	}

	c.logger.Debug("required fields missing", zap.Strings("missing", c.def.Missing(c.values)))
	return c.Dispatch(ctx, ShowRequiredWarnings{})
}

func (c *Controller) showRequiredWarnings() bool {
	c.warnings = true
	c.logger.Debug("showing required warnings")
	c.notify()
	return true
}

func (c *Controller) notify() {
	if c.cfg.onChange != nil {
		c.cfg.onChange(c.State())
	}
}
