package schema

import "go.uber.org/zap"

// DefaultTagName is the struct tag consulted for field names and labels.
const DefaultTagName = "form"

// Option configures introspection.
type Option func(*config)

type config struct {
	tagName    string
	recordName string
	logger     *zap.Logger
}

func newConfig(options []Option) config {
	cfg := config{
		tagName: DefaultTagName,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTagName overrides the struct tag used for field names ("form" by default).
func WithTagName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.tagName = name
		}
	}
}

// WithRecordName overrides the record name (anonymous structs and OpenAPI
// components otherwise use their own name).
func WithRecordName(name string) Option {
	return func(cfg *config) {
		cfg.recordName = name
	}
}

// WithLogger attaches a logger used for introspection diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func (cfg config) name(fallback string) string {
	if cfg.recordName != "" {
		return cfg.recordName
	}
	return fallback
}
