// Package html renders described forms as HTML: a form element carrying the
// record's class hook, one wrapper per field holding its label and input, and
// a submit button. Output is sanitised with a fixed allow-list.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/naming"
	"github.com/goliatone/go-formulay/pkg/render"
	rendertemplate "github.com/goliatone/go-formulay/pkg/render/template"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

// SubmitClass is the class of the submit button.
const SubmitClass = naming.Namespace + "-submit"

type Option func(*config)

type config struct {
	templateFS fs.FS
	logger     *zap.Logger
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// FormTemplate.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

type Renderer struct {
	templates *rendertemplate.Engine
	logger    *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine, err := rendertemplate.New("formulay-html", cfg.templateFS)
	if err != nil {
		return nil, fmt.Errorf("html renderer: configure templates: %w", err)
	}
	return &Renderer{templates: engine, logger: cfg.logger.Named("html")}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	data := map[string]any{
		"form": map[string]any{
			"Class":       form.Class,
			"Record":      form.Record,
			"ItemClass":   form.ItemClass,
			"SubmitLabel": form.SubmitLabel,
			"SubmitClass": SubmitClass,
		},
		"fields": fieldViews(form),
		"hidden": options.HiddenFields(),
	}
	if options.Action != "" {
		data["action"] = options.Action
		data["method"] = options.FormMethod()
	}
	if options.Theme != nil {
		data["theme"] = themeView(options)
	}

	raw, err := r.templates.Render(FormTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	out := formSanitizer().SanitizeBytes(raw)
	r.logger.Debug("form rendered",
		zap.String("record", form.Record),
		zap.Int("fields", len(form.Fields)),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

type fieldView struct {
	ID         string
	Name       string
	Label      string
	LabelClass string
	InputClass string
	Checkbox   bool
	Checked    bool
	Value      string
}

func fieldViews(form render.Form) []fieldView {
	prefix := naming.Kebab(form.Record)
	views := make([]fieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		views = append(views, fieldView{
			ID:         prefix + "-" + naming.Kebab(field.Field.Name),
			Name:       field.Field.Name,
			Label:      field.LabelText,
			LabelClass: field.LabelClass,
			InputClass: field.InputClass,
			Checkbox:   field.InputKind == render.InputCheckbox,
			Checked:    field.Checked,
			Value:      field.Display,
		})
	}
	return views
}

type themeToken struct {
	Name  string
	Value string
}

func themeView(options render.RenderOptions) map[string]any {
	cfg := options.Theme
	names := make([]string, 0, len(cfg.Tokens))
	for name := range cfg.Tokens {
		if naming.Kebab(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tokens := make([]themeToken, 0, len(names))
	for _, name := range names {
		tokens = append(tokens, themeToken{Name: naming.Kebab(name), Value: cfg.Tokens[name]})
	}
	return map[string]any{
		"Name":    cfg.Theme,
		"Variant": cfg.Variant,
		"Tokens":  tokens,
	}
}
