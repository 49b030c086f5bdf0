package model

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeExpr is a declared field type reduced to its head constructor and
// arguments, e.g. Option<string> is {Name: "Option", Args: [{Name: "string"}]}
// and *bool is {Name: "*", Args: [{Name: "bool"}]}.
type TypeExpr struct {
	Name string
	Args []TypeExpr
}

// Named returns a TypeExpr without arguments.
func Named(name string) TypeExpr {
	return TypeExpr{Name: name}
}

// OptionOf wraps inner in the Option constructor.
func OptionOf(inner TypeExpr) TypeExpr {
	return TypeExpr{Name: "Option", Args: []TypeExpr{inner}}
}

func (t TypeExpr) String() string {
	if t.Name == "*" && len(t.Args) == 1 {
		return "*" + t.Args[0].String()
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}

// ParseTypeExpr parses the textual type notation used by definition
// documents. Accepted forms are bare names (string, bool, int, ...), generic
// applications (Option<string>, Map<string, int>), pointer shorthand (*bool)
// and the nullable suffix (string?).
func ParseTypeExpr(raw string) (TypeExpr, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TypeExpr{}, fmt.Errorf("model: empty type expression")
	}

	if strings.HasSuffix(trimmed, "?") {
		inner, err := ParseTypeExpr(strings.TrimSuffix(trimmed, "?"))
		if err != nil {
			return TypeExpr{}, err
		}
		return OptionOf(inner), nil
	}

	if strings.HasPrefix(trimmed, "*") {
		inner, err := ParseTypeExpr(trimmed[1:])
		if err != nil {
			return TypeExpr{}, err
		}
		return TypeExpr{Name: "*", Args: []TypeExpr{inner}}, nil
	}

	open := strings.IndexByte(trimmed, '<')
	if open < 0 {
		if strings.ContainsAny(trimmed, ">,") {
			return TypeExpr{}, fmt.Errorf("model: malformed type expression %q", raw)
		}
		return Named(trimmed), nil
	}
	if !strings.HasSuffix(trimmed, ">") {
		return TypeExpr{}, fmt.Errorf("model: unterminated type arguments in %q", raw)
	}

	head := strings.TrimSpace(trimmed[:open])
	if head == "" {
		return TypeExpr{}, fmt.Errorf("model: missing type constructor in %q", raw)
	}
	parts, err := splitTypeArgs(trimmed[open+1 : len(trimmed)-1])
	if err != nil {
		return TypeExpr{}, fmt.Errorf("model: %q: %w", raw, err)
	}

	expr := TypeExpr{Name: head, Args: make([]TypeExpr, 0, len(parts))}
	for _, part := range parts {
		arg, err := ParseTypeExpr(part)
		if err != nil {
			return TypeExpr{}, err
		}
		expr.Args = append(expr.Args, arg)
	}
	return expr, nil
}

func splitTypeArgs(body string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range body {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced '>'")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '<'")
	}
	parts = append(parts, body[start:])
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("empty type argument")
		}
	}
	return parts, nil
}

// TypeExprOf maps a Go type onto the declared-type notation: string kinds
// become "string", bool kinds "bool", pointers the "*" constructor, and any
// other type keeps its Go name so classification can reject it.
func TypeExprOf(t reflect.Type) TypeExpr {
	if t == nil {
		return Named("<nil>")
	}
	switch t.Kind() {
	case reflect.String:
		return Named("string")
	case reflect.Bool:
		return Named("bool")
	case reflect.Pointer:
		return TypeExpr{Name: "*", Args: []TypeExpr{TypeExprOf(t.Elem())}}
	default:
		return Named(t.String())
	}
}
