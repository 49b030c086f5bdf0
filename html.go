package formulay

import (
	"context"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/render"
	"github.com/goliatone/go-formulay/pkg/renderers/html"
)

// RenderOptions aliases render.RenderOptions for callers that only use the
// root package.
type RenderOptions = render.RenderOptions

// RenderHTML describes the controller's current state and renders it with the
// built-in HTML renderer.
func RenderHTML(ctx context.Context, ctrl *controller.Controller, options RenderOptions, htmlOptions ...html.Option) ([]byte, error) {
	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.DescribeController(ctrl), options)
}
