package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted next to the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying token under name ("_csrf",
// "csrf_token", whatever the backend expects).
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// SessionField carries the controller session identifier so a server can
// correlate a post with the session that produced it.
func SessionField(sessionID string) HiddenField {
	return Hidden("_session", sessionID)
}

// WithHidden returns a copy of o with fields merged into Hidden. Blank names
// are ignored; later fields win.
func (o RenderOptions) WithHidden(fields ...HiddenField) RenderOptions {
	merged := make(map[string]string, len(o.Hidden)+len(fields))
	for key, value := range o.Hidden {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			merged[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			merged[name] = field.Value
		}
	}
	if len(merged) == 0 {
		merged = nil
	}
	o.Hidden = merged
	return o
}

// HiddenFields returns the hidden inputs sorted by name.
func (o RenderOptions) HiddenFields() []HiddenField {
	if len(o.Hidden) == 0 {
		return nil
	}
	names := make([]string, 0, len(o.Hidden))
	for name := range o.Hidden {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fields := make([]HiddenField, 0, len(names))
	for _, name := range names {
		fields = append(fields, HiddenField{Name: strings.TrimSpace(name), Value: o.Hidden[name]})
	}
	return fields
}

// FormMethod returns Method upper-cased, defaulting to POST.
func (o RenderOptions) FormMethod() string {
	method := strings.ToUpper(strings.TrimSpace(o.Method))
	if method == "" {
		return "POST"
	}
	return method
}
