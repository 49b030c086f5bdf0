package html_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap/zaptest"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/render"
	"github.com/goliatone/go-formulay/pkg/renderers/html"
)

func signupController(t *testing.T) *controller.Controller {
	t.Helper()
	def := controller.MustCompile(model.MustNewSchema("Data",
		model.FieldDescriptor{Name: "email", Kind: model.KindText},
		model.FieldDescriptor{Name: "agree_to_terms", Kind: model.KindBoolean},
		model.FieldDescriptor{Name: "nickname", Kind: model.KindOptionalText},
	))
	ctrl, err := def.New(controller.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return ctrl
}

func newRenderer(t *testing.T, options ...html.Option) *html.Renderer {
	t.Helper()
	options = append([]html.Option{html.WithLogger(zaptest.NewLogger(t))}, options...)
	renderer, err := html.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func renderString(t *testing.T, renderer *html.Renderer, form render.Form, options render.RenderOptions) string {
	t.Helper()
	out, err := renderer.Render(context.Background(), form, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, output)
		}
	}
}

func TestRenderer_InitialForm(t *testing.T) {
	renderer := newRenderer(t)
	out := renderString(t, renderer, render.DescribeController(signupController(t)), render.RenderOptions{})

	assertContains(t, out,
		`class="data-form formula-y-form"`,
		`class="formula-y-form-item"`,
		`class="email-label formula-y-txt-label"`,
		`class="email-input formula-y-txt-input"`,
		`class="agree-to-terms-label formula-y-checkbox-label"`,
		`class="agree-to-terms-input formula-y-checkbox-input"`,
		`>Agree To Terms</label>`,
		`type="checkbox"`,
		`>Submit</button>`,
	)
	if strings.Contains(out, "required") {
		t.Fatalf("unexpected required decoration before submit\n%s", out)
	}
	if strings.Count(out, `class="formula-y-form-item"`) != 3 {
		t.Fatalf("expected one wrapper per field\n%s", out)
	}
	if strings.Index(out, "email-input") > strings.Index(out, "agree-to-terms-input") {
		t.Fatalf("fields rendered out of declaration order\n%s", out)
	}
}

func TestRenderer_RequiredWarnings(t *testing.T) {
	ctrl := signupController(t)
	if _, err := ctrl.Dispatch(context.Background(), controller.Submit{}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	out := renderString(t, newRenderer(t), render.DescribeController(ctrl), render.RenderOptions{})
	assertContains(t, out,
		`class="email-label formula-y-txt-label required"`,
		`class="email-input formula-y-txt-input required"`,
		`class="agree-to-terms-input formula-y-checkbox-input required"`,
		`class="nickname-input formula-y-txt-input"`,
	)
}

func TestRenderer_ValuesAndHiddenFields(t *testing.T) {
	ctrl := signupController(t)
	def := ctrl.Definition()
	ctx := context.Background()
	for _, action := range []controller.Action{
		def.MustUpdate("email", model.Text(`a"b@c.d`)),
		def.MustUpdate("agree_to_terms", model.Bool(true)),
	} {
		if _, err := ctrl.Dispatch(ctx, action); err != nil {
			t.Fatalf("dispatch: %v", err)
		}
	}

	options := render.RenderOptions{Action: "/signup"}.WithHidden(render.CSRFToken("_csrf", "tok"))
	out := renderString(t, newRenderer(t), render.DescribeController(ctrl), options)

	assertContains(t, out,
		`action="/signup"`,
		`method="POST"`,
		`name="_csrf"`,
		`value="tok"`,
		`b@c.d`,
		`checked`,
	)
	if strings.Contains(out, `value="a"b`) {
		t.Fatalf("expected quote in value to be escaped\n%s", out)
	}
}

func TestRenderer_ThemeTokens(t *testing.T) {
	options := render.RenderOptions{Theme: &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens:  map[string]string{"brand": "#123456"},
	}}
	out := renderString(t, newRenderer(t), render.DescribeController(signupController(t)), options)
	assertContains(t, out,
		`data-theme="acme"`,
		`data-theme-variant="dark"`,
		`data-token-brand="#123456"`,
	)
}

func TestRenderer_SanitisesCustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		html.FormTemplate: &fstest.MapFile{Data: []byte(
			`<form class="{{ form.Class }}" onsubmit="steal()"><script>alert(1)</script><button type="submit">{{ form.SubmitLabel }}</button></form>`,
		)},
	}
	out := renderString(t, newRenderer(t, html.WithTemplatesFS(files)), render.DescribeController(signupController(t)), render.RenderOptions{})

	if strings.Contains(out, "script") || strings.Contains(out, "onsubmit") {
		t.Fatalf("expected unsafe markup stripped\n%s", out)
	}
	assertContains(t, out, `class="data-form formula-y-form"`, `>Submit</button>`)
}

func TestRenderer_RegistryContract(t *testing.T) {
	registry := render.NewRegistry(newRenderer(t))
	out, err := registry.Render(context.Background(), html.Name, render.DescribeController(signupController(t)), render.RenderOptions{})
	if err != nil {
		t.Fatalf("registry render: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(out)), "<form") {
		t.Fatalf("unexpected output\n%s", out)
	}
}
