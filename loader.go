package formulay

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/schema"
)

// LoadSchema reads a YAML/JSON record definition and introspects it.
func LoadSchema(ctx context.Context, src schema.Source, options ...schema.Option) (model.Schema, error) {
	doc, err := schema.Load(ctx, src)
	if err != nil {
		return model.Schema{}, err
	}
	out, err := schema.FromDocument(doc, options...)
	if err != nil {
		return model.Schema{}, fmt.Errorf("formulay: %s: %w", src.Location(), err)
	}
	return out, nil
}

// LoadOpenAPISchema reads an OpenAPI 3 document and introspects one of its
// component schemas.
func LoadOpenAPISchema(ctx context.Context, src schema.Source, component string, options ...schema.Option) (model.Schema, error) {
	doc, err := schema.Load(ctx, src)
	if err != nil {
		return model.Schema{}, err
	}
	out, err := schema.FromOpenAPI(ctx, doc, component, options...)
	if err != nil {
		return model.Schema{}, fmt.Errorf("formulay: %s: %w", src.Location(), err)
	}
	return out, nil
}
