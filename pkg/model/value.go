package model

import "strconv"

// Value holds one field value tagged with its kind. Optional kinds track
// presence; required kinds are always present.
type Value struct {
	kind    FieldKind
	text    string
	flag    bool
	present bool
}

// Text returns a required text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s, present: true}
}

// Bool returns a required boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBoolean, flag: b, present: true}
}

// SomeText returns a present optional text value.
func SomeText(s string) Value {
	return Value{kind: KindOptionalText, text: s, present: true}
}

// SomeBool returns a present optional boolean value.
func SomeBool(b bool) Value {
	return Value{kind: KindOptionalBoolean, flag: b, present: true}
}

// None returns the absent value for an optional kind. Required kinds have no
// absent state, so their zero value is returned instead.
func None(kind FieldKind) Value {
	if !kind.Optional() {
		return Zero(kind)
	}
	return Value{kind: kind}
}

// Zero returns the initial value for a kind: "" for Text, false for Boolean
// and absent for the optional kinds.
func Zero(kind FieldKind) Value {
	switch kind {
	case KindText:
		return Text("")
	case KindBoolean:
		return Bool(false)
	case KindOptionalText, KindOptionalBoolean:
		return Value{kind: kind}
	default:
		return Value{}
	}
}

// Kind returns the kind the value was built for.
func (v Value) Kind() FieldKind { return v.kind }

// Present reports whether the value is set. Always true for required kinds.
func (v Value) Present() bool { return v.present }

// Text returns the string payload; absent values yield "".
func (v Value) Text() string { return v.text }

// Bool returns the boolean payload; absent values yield false.
func (v Value) Bool() bool { return v.flag }

// Satisfied reports whether the value passes its field's required rule:
// non-empty for Text, true for Boolean. Optional kinds always pass.
func (v Value) Satisfied() bool {
	switch v.kind {
	case KindText:
		return v.text != ""
	case KindBoolean:
		return v.flag
	case KindOptionalText, KindOptionalBoolean:
		return true
	default:
		return false
	}
}

// Equal compares kind, presence and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Interface returns the plain Go representation: string or bool, nil when
// an optional value is absent.
func (v Value) Interface() any {
	if !v.present {
		return nil
	}
	switch v.kind {
	case KindText, KindOptionalText:
		return v.text
	case KindBoolean, KindOptionalBoolean:
		return v.flag
	default:
		return nil
	}
}

func (v Value) String() string {
	if !v.present {
		return "None"
	}
	switch v.kind {
	case KindText:
		return strconv.Quote(v.text)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	case KindOptionalText:
		return "Some(" + strconv.Quote(v.text) + ")"
	case KindOptionalBoolean:
		return "Some(" + strconv.FormatBool(v.flag) + ")"
	default:
		return "<invalid>"
	}
}
