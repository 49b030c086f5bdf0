// Package formulay derives form controllers from record types. A struct with
// string, bool, *string and *bool fields compiles into a controller that
// tracks the values being edited, gates submission on the required fields and
// hands the finished value to a consumer:
//
//	type Signup struct {
//		Name  *string `form:"name"`
//		Email string  `form:"email"`
//		Agree bool    `form:"agree_to_terms,label=I agree"`
//	}
//
//	form := formulay.MustCompile[Signup]()
//	ctrl, _ := form.New(formulay.WithSubmit(func(ctx context.Context, s Signup) error {
//		return store.Save(ctx, s)
//	}))
//
// The untyped building blocks live under pkg/: model, schema, controller,
// render and the reference runtimes under pkg/renderers.
package formulay

import (
	"context"
	"fmt"
	"reflect"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/schema"
)

// Form is the compiled controller definition for the struct type T.
type Form[T any] struct {
	binding *schema.StructSchema
	def     *controller.Definition
}

// Compile introspects T and compiles its controller definition.
func Compile[T any](options ...schema.Option) (*Form[T], error) {
	binding, err := schema.Reflect(reflect.TypeFor[T](), options...)
	if err != nil {
		return nil, err
	}
	def, err := controller.Compile(binding.Schema())
	if err != nil {
		return nil, err
	}
	return &Form[T]{binding: binding, def: def}, nil
}

// MustCompile panics when Compile fails. Intended for package-level vars.
func MustCompile[T any](options ...schema.Option) *Form[T] {
	form, err := Compile[T](options...)
	if err != nil {
		panic(err)
	}
	return form
}

// Definition returns the untyped controller definition.
func (f *Form[T]) Definition() *controller.Definition { return f.def }

// Schema returns the introspected schema.
func (f *Form[T]) Schema() model.Schema { return f.def.Schema() }

// Zero returns the zero value record for T.
func (f *Form[T]) Zero() model.Record { return f.def.Zero() }

// Record converts value into a record.
func (f *Form[T]) Record(value T) (model.Record, error) {
	return f.binding.Record(value)
}

// Value converts a record built for this form back into T.
func (f *Form[T]) Value(record model.Record) (T, error) {
	var out T
	if err := f.binding.Decode(record, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Option configures a typed controller.
type Option[T any] func(*config[T])

type config[T any] struct {
	initial    *T
	submit     func(context.Context, T) error
	controller []controller.Option
}

// WithInitial starts the controller from value instead of the zero record.
func WithInitial[T any](value T) Option[T] {
	return func(cfg *config[T]) {
		cfg.initial = &value
	}
}

// WithSubmit registers the consumer that receives the finalized value.
func WithSubmit[T any](fn func(context.Context, T) error) Option[T] {
	return func(cfg *config[T]) {
		cfg.submit = fn
	}
}

// WithControllerOptions forwards untyped controller options (enforcement,
// logger, change listener, session id).
func WithControllerOptions[T any](options ...controller.Option) Option[T] {
	return func(cfg *config[T]) {
		cfg.controller = append(cfg.controller, options...)
	}
}

// New builds a controller session for T.
func (f *Form[T]) New(options ...Option[T]) (*controller.Controller, error) {
	var cfg config[T]
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	ctrlOptions := append([]controller.Option(nil), cfg.controller...)
	if cfg.initial != nil {
		initial, err := f.Record(*cfg.initial)
		if err != nil {
			return nil, fmt.Errorf("formulay: initial value: %w", err)
		}
		ctrlOptions = append(ctrlOptions, controller.WithInitialRecord(initial))
	}
	if cfg.submit != nil {
		submit := cfg.submit
		ctrlOptions = append(ctrlOptions, controller.WithSubmitConsumer(func(ctx context.Context, record model.Record) error {
			value, err := f.Value(record)
			if err != nil {
				return err
			}
			return submit(ctx, value)
		}))
	}
	return f.def.New(ctrlOptions...)
}
