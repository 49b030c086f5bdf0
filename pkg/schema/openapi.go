package schema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-formulay/pkg/model"
)

// FromOpenAPI introspects components.schemas.<component> of an OpenAPI 3
// document. The component must be an object with properties. Required,
// non-nullable string and boolean properties become Text and Boolean; the
// rest become their optional kinds. Properties are ordered by name because
// OpenAPI property maps carry no declaration order.
func FromOpenAPI(ctx context.Context, doc Document, component string, options ...Option) (model.Schema, error) {
	if err := ctx.Err(); err != nil {
		return model.Schema{}, err
	}
	cfg := newConfig(options)

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return model.Schema{}, fmt.Errorf("schema: load openapi %s: %w", doc.Location(), err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return model.Schema{}, fmt.Errorf("schema: openapi %s declares no component schemas", doc.Location())
	}
	ref, ok := spec.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return model.Schema{}, fmt.Errorf("schema: component %q not found in %s", component, doc.Location())
	}

	name := cfg.name(component)
	src := ref.Value
	if schemaType(src.Type) != openapi3.TypeObject || len(src.Properties) == 0 {
		return model.Schema{}, model.ShapeError(name, fmt.Sprintf("component type %q is not an object with properties", schemaType(src.Type)))
	}

	required := make(map[string]struct{}, len(src.Required))
	for _, prop := range src.Required {
		required[prop] = struct{}{}
	}

	propNames := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	fields := make([]model.FieldDescriptor, 0, len(propNames))
	for _, propName := range propNames {
		prop := src.Properties[propName]
		expr := propertyTypeExpr(prop)
		if _, isRequired := required[propName]; !isRequired || (prop != nil && prop.Value != nil && prop.Value.Nullable) {
			expr = model.OptionOf(expr)
		}
		kind, err := model.Classify(expr)
		if err != nil {
			return model.Schema{}, model.FieldTypeError(name, propName, expr)
		}
		field := model.FieldDescriptor{Name: propName, Kind: kind}
		if prop.Value.Title != "" {
			field.Label = prop.Value.Title
		}
		fields = append(fields, field)
	}

	schema, err := model.NewSchema(name, fields)
	if err != nil {
		return model.Schema{}, err
	}
	cfg.logger.Debug("openapi component introspected", zap.String("record", name), zap.Int("fields", schema.Len()))
	return schema, nil
}

func propertyTypeExpr(ref *openapi3.SchemaRef) model.TypeExpr {
	if ref == nil || ref.Value == nil {
		return model.Named("unknown")
	}
	switch typ := schemaType(ref.Value.Type); typ {
	case openapi3.TypeString:
		return model.Named("string")
	case openapi3.TypeBoolean:
		return model.Named("bool")
	case "":
		return model.Named("unknown")
	default:
		return model.Named(typ)
	}
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
