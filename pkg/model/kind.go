package model

import "fmt"

// FieldKind is the closed set of field kinds a record may declare. The zero
// value is invalid and never appears in a Schema.
type FieldKind int

const (
	KindInvalid FieldKind = iota
	KindText
	KindBoolean
	KindOptionalText
	KindOptionalBoolean
)

// Family names used in the class-name scheme.
const (
	FamilyText     = "txt"
	FamilyCheckbox = "checkbox"
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	case KindOptionalText:
		return "OptionalText"
	case KindOptionalBoolean:
		return "OptionalBoolean"
	default:
		return "Invalid"
	}
}

// Valid reports whether k is one of the four supported kinds.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindBoolean, KindOptionalText, KindOptionalBoolean:
		return true
	default:
		return false
	}
}

// Required reports whether the kind takes part in required-field validation.
func (k FieldKind) Required() bool {
	switch k {
	case KindText, KindBoolean:
		return true
	default:
		return false
	}
}

// Optional reports whether the kind can represent an absent value.
func (k FieldKind) Optional() bool {
	switch k {
	case KindOptionalText, KindOptionalBoolean:
		return true
	default:
		return false
	}
}

// TextLike reports whether the kind carries a string.
func (k FieldKind) TextLike() bool {
	switch k {
	case KindText, KindOptionalText:
		return true
	default:
		return false
	}
}

// Family returns the class-name family token: "txt" for text-like kinds and
// "checkbox" for boolean-like kinds.
func (k FieldKind) Family() string {
	if k.TextLike() {
		return FamilyText
	}
	return FamilyCheckbox
}

// MarshalText encodes the kind by name so JSON and YAML snapshots stay
// readable.
func (k FieldKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("model: cannot marshal invalid field kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *FieldKind) UnmarshalText(text []byte) error {
	kind, err := ParseFieldKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseFieldKind resolves a kind name such as "OptionalText".
func ParseFieldKind(name string) (FieldKind, error) {
	for _, kind := range []FieldKind{KindText, KindBoolean, KindOptionalText, KindOptionalBoolean} {
		if kind.String() == name {
			return kind, nil
		}
	}
	return KindInvalid, fmt.Errorf("model: unknown field kind %q", name)
}
