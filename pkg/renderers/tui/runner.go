// Package tui drives a form controller from the terminal. Each field is
// prompted through a PromptDriver (survey by default); prompt answers become
// update actions, and the runner submits once every field was visited. When
// the controller refuses the submission it reports the missing required
// fields and prompts only those again.
package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/record"
	"github.com/goliatone/go-formulay/pkg/render"
)

// Name is the runner identifier used by the CLI.
const Name = "tui"

var optionalBoolChoices = []string{"(leave unset)", "Yes", "No"}

// Runner prompts for a controller's fields until it accepts a submission.
type Runner struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	describe     []render.Option
	theme        Theme
	logger       *zap.Logger
}

// New constructs a runner with defaults (survey driver, JSON output).
func New(options ...Option) *Runner {
	r := &Runner{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.logger = r.logger.Named("tui")
	return r
}

// Name reports the runner identifier.
func (r *Runner) Name() string {
	return Name
}

// ContentType reports the serialization format used by Format.
func (r *Runner) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run prompts every field, submits, and re-prompts missing required fields
// until the controller reaches the submitted phase. It returns the finalized
// record.
func (r *Runner) Run(ctx context.Context, ctrl *controller.Controller) (model.Record, error) {
	if ctx == nil {
		return model.Record{}, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return model.Record{}, errors.New("tui: controller is required")
	}

	for attempt := 1; ; attempt++ {
		form := render.DescribeController(ctrl, r.describe...)
		for _, field := range form.Fields {
			// Later rounds only revisit fields that block submission.
			if attempt > 1 && !field.Required {
				continue
			}
			if err := r.promptField(ctx, ctrl, field); err != nil {
				return model.Record{}, err
			}
		}

		if _, err := ctrl.Dispatch(ctx, controller.Submit{}); err != nil {
			return model.Record{}, err
		}
		state := ctrl.State()
		if state.Submitted {
			r.logger.Debug("session submitted", zap.Int("attempts", attempt))
			return state.Values, nil
		}

		missing := missingLabels(render.DescribeController(ctrl, r.describe...))
		r.logger.Debug("submission refused", zap.Int("attempt", attempt), zap.Strings("missing", missing))
		if attempt >= r.maxAttempts {
			return model.Record{}, fmt.Errorf("%w after %d attempts: %s", ErrAttemptsExhausted, attempt, strings.Join(missing, ", "))
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+"Please fill in: "+strings.Join(missing, ", ")); err != nil {
			return model.Record{}, err
		}
	}
}

func (r *Runner) promptField(ctx context.Context, ctrl *controller.Controller, field render.Descriptor) error {
	message := r.theme.PromptPrefix + field.LabelText
	help := ""
	if field.Field.Kind.Required() {
		help = "required"
	}

	var raw render.RawInput
	switch field.Field.Kind {
	case model.KindText, model.KindOptionalText:
		value, err := r.driver.Input(ctx, InputConfig{Message: message, Default: field.Display, Help: help})
		if err != nil {
			return err
		}
		raw.Value = value
	case model.KindBoolean:
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: field.Checked, Help: help})
		if err != nil {
			return err
		}
		raw.Checked = checked
	case model.KindOptionalBoolean:
		if field.Value.Present() {
			checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: field.Checked})
			if err != nil {
				return err
			}
			raw.Checked = checked
			break
		}
		idx, err := r.driver.Select(ctx, SelectConfig{Message: message, Options: optionalBoolChoices})
		if err != nil {
			return err
		}
		if idx <= 0 {
			return nil
		}
		raw.Checked = idx == 1
	default:
		return fmt.Errorf("tui: field %s has unsupported kind %s", field.Field.Name, field.Field.Kind)
	}

	_, err := ctrl.Dispatch(ctx, field.OnChange(raw))
	return err
}

func missingLabels(form render.Form) []string {
	var labels []string
	for _, field := range form.Fields {
		if field.Required {
			labels = append(labels, field.LabelText)
		}
	}
	return labels
}

// Format serializes a finalized record in the configured output format.
func (r *Runner) Format(rec model.Record) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for i, field := range rec.Schema().Fields() {
			if v := rec.At(i); v.Present() {
				values.Set(field.Name, fmt.Sprint(v.Interface()))
			}
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for i, field := range rec.Schema().Fields() {
			fmt.Fprintf(&b, "%s=%s\n", field.Name, rec.At(i))
		}
		return []byte(b.String()), nil
	default:
		return record.Encode(rec)
	}
}
