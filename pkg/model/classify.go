package model

// Classify maps a declared type onto its FieldKind. Text comes from a string
// type, Boolean from a bool type, and the optional kinds from a one-argument
// Option/Optional/pointer wrapper around either. Every other shape, including
// an optional of an unsupported inner type, yields a CompileError wrapping
// ErrUnsupportedFieldType.
func Classify(expr TypeExpr) (FieldKind, error) {
	if kind, ok := scalarKind(expr); ok {
		return kind, nil
	}
	if isOptionConstructor(expr.Name) && len(expr.Args) == 1 {
		inner, ok := scalarKind(expr.Args[0])
		if ok {
			switch inner {
			case KindText:
				return KindOptionalText, nil
			case KindBoolean:
				return KindOptionalBoolean, nil
			}
		}
	}
	return KindInvalid, FieldTypeError("", "", expr)
}

func scalarKind(expr TypeExpr) (FieldKind, bool) {
	if len(expr.Args) != 0 {
		return KindInvalid, false
	}
	switch expr.Name {
	case "string", "String":
		return KindText, true
	case "bool", "boolean", "Boolean":
		return KindBoolean, true
	default:
		return KindInvalid, false
	}
}

func isOptionConstructor(name string) bool {
	switch name {
	case "Option", "option", "Optional", "optional", "*":
		return true
	default:
		return false
	}
}
