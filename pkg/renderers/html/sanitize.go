package html

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// formSanitizer allows exactly the markup the form template emits, so custom
// templates cannot smuggle scripts or event handlers into the page.
func formSanitizer() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("form", "div", "label", "input", "button")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowDataAttributes()

		policy.AllowStandardURLs()
		policy.AllowAttrs("action", "method").OnElements("form")
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs("type", "name", "value", "checked").OnElements("input")
		policy.AllowAttrs("type").OnElements("button")

		formPolicy = policy
	})
	return formPolicy
}
