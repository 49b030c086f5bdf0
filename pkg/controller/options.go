package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/model"
)

// SubmitFunc receives the finalized record on a successful submit. Errors are
// not retried; Dispatch returns them to the host.
type SubmitFunc func(ctx context.Context, record model.Record) error

// ChangeFunc observes the controller state after every transition that
// changed it.
type ChangeFunc func(State)

// Option configures a controller instance.
type Option func(*config)

type config struct {
	initial   *model.Record
	enforce   *bool
	submit    SubmitFunc
	onChange  ChangeFunc
	logger    *zap.Logger
	sessionID string
}

func newConfig(options []Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg config) enforceRequired() bool {
	if cfg.enforce == nil {
		return true
	}
	return *cfg.enforce
}

// WithInitialRecord adopts record verbatim as the initial values. There is
// no merging with zero values: the record must be complete and built for the
// compiled schema.
func WithInitialRecord(record model.Record) Option {
	return func(cfg *config) {
		clone := record.Clone()
		cfg.initial = &clone
	}
}

// WithEnforceRequiredFields toggles required-field validation on submit.
// Enforcement is on unless this option sets it to false.
func WithEnforceRequiredFields(enforce bool) Option {
	return func(cfg *config) {
		cfg.enforce = &enforce
	}
}

// WithSubmitConsumer registers the callback receiving finalized records.
func WithSubmitConsumer(fn SubmitFunc) Option {
	return func(cfg *config) {
		cfg.submit = fn
	}
}

// WithChangeListener registers a callback invoked with the new state after
// every state change, so hosts can re-evaluate render descriptors.
func WithChangeListener(fn ChangeFunc) Option {
	return func(cfg *config) {
		cfg.onChange = fn
	}
}

// WithLogger attaches a logger; transitions are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSessionID overrides the generated session identifier used in logs.
func WithSessionID(id string) Option {
	return func(cfg *config) {
		cfg.sessionID = id
	}
}

func sessionFields(session, record string) []zap.Field {
	return []zap.Field{zap.String("session", session), zap.String("record", record)}
}

func enforceField(enforce bool) zap.Field {
	return zap.Bool("enforce_required_fields", enforce)
}
