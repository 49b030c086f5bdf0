package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formulay/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, form render.Form, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + form.Record), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry(stubRenderer{name: "b"}, stubRenderer{name: "a"})

	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(stubRenderer{name: "a"}); !errors.Is(err, render.ErrDuplicateRenderer) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	out, err := registry.Render(context.Background(), "a", render.Form{Record: "Data"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "a:Data" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderOptions_HiddenFields(t *testing.T) {
	base := render.RenderOptions{Hidden: map[string]string{" existing ": "keep", "": "ignored"}}

	opts := base.WithHidden(
		render.CSRFToken("_csrf", "token123"),
		render.SessionField("abc"),
		render.Hidden("version", 4),
		render.Hidden("  ", "skip"),
	)

	want := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "_session", Value: "abc"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, opts.HiddenFields()); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if len(base.Hidden) != 2 {
		t.Fatalf("base options mutated: %v", base.Hidden)
	}
	if got := opts.FormMethod(); got != "POST" {
		t.Fatalf("unexpected default method %q", got)
	}
	if got := (render.RenderOptions{Method: "get"}).FormMethod(); got != "GET" {
		t.Fatalf("unexpected method %q", got)
	}
}
