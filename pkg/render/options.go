package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formulay/pkg/naming"
)

// DefaultSubmitLabel is the text of the submit button.
const DefaultSubmitLabel = "Submit"

// Option customises descriptor generation.
type Option func(*config)

type config struct {
	labeler     naming.Labeler
	submitLabel string
}

func newConfig(options []Option) config {
	cfg := config{
		labeler:     naming.Label,
		submitLabel: DefaultSubmitLabel,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLabeler overrides the default label generation function. Labels set on
// a field descriptor still take precedence.
func WithLabeler(labeler naming.Labeler) Option {
	return func(cfg *config) {
		if labeler != nil {
			cfg.labeler = labeler
		}
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if label != "" {
			cfg.submitLabel = label
		}
	}
}

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the described form.
type RenderOptions struct {
	// Action is the URL a rendered HTML form posts to. Empty keeps the form
	// client-side only.
	Action string
	// Method is the HTTP method for Action; defaults to POST.
	Method string
	// Hidden adds hidden inputs (CSRF tokens and the like) keyed by name.
	Hidden map[string]string
	// Theme carries resolved theme tokens for renderers that expose them.
	Theme *theme.RendererConfig
}
