// Package naming derives every generated identifier from a field's declared
// name: update action names, human-readable labels and the kebab-case tokens
// the class-name scheme is built from. All functions are pure and total; any
// identifier in snake_case, kebab-case, camelCase or PascalCase is accepted.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Namespace prefixes the shared class hooks (formula-y-form, formula-y-txt-label, ...).
const Namespace = "formula-y"

// ActionPrefix is joined with the PascalCase field name to name update actions.
const ActionPrefix = "Update"

// RequiredClass is appended to label/input classes of required fields that
// fail validation while warnings are displayed.
const RequiredClass = "required"

// ItemClass wraps each rendered label/input pair.
const ItemClass = Namespace + "-form-item"

// Labeler converts a field name into the text shown next to its input.
type Labeler func(string) string

var separatorPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Words splits an identifier on separators, lower-to-upper transitions,
// acronym endings (HTTPServer -> HTTP Server) and letter/digit boundaries.
func Words(id string) []string {
	var words []string
	for _, chunk := range separatorPattern.Split(id, -1) {
		if chunk == "" {
			continue
		}
		words = append(words, splitCamel(chunk)...)
	}
	return words
}

func splitCamel(input string) []string {
	runes := []rune(input)
	var (
		words []string
		start int
	)
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isBoundary(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r), unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	default:
		return false
	}
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	first, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(first)) + lower[size:]
}

// Pascal joins the words of id as PascalCase: agree_to_terms -> AgreeToTerms.
func Pascal(id string) string {
	var b strings.Builder
	for _, word := range Words(id) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ActionName names the update action for a field: agree_to_terms -> UpdateAgreeToTerms.
func ActionName(id string) string {
	return ActionPrefix + Pascal(id)
}

// Label converts a field name into title-spaced words: agree_to_terms -> "Agree To Terms".
func Label(id string) string {
	words := Words(id)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// Kebab converts an identifier into a lowercase hyphenated token: agree_to_terms -> agree-to-terms.
func Kebab(id string) string {
	words := Words(id)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// LabelClass builds "<kebab>-label formula-y-<family>-label[ required]".
func LabelClass(id, family string, required bool) string {
	return elementClass(id, family, "label", required)
}

// InputClass builds "<kebab>-input formula-y-<family>-input[ required]".
func InputClass(id, family string, required bool) string {
	return elementClass(id, family, "input", required)
}

// FormClass builds "<kebab-record>-form formula-y-form".
func FormClass(record string) string {
	return Kebab(record) + "-form " + Namespace + "-form"
}

func elementClass(id, family, element string, required bool) string {
	class := Kebab(id) + "-" + element + " " + Namespace + "-" + family + "-" + element
	if required {
		class += " " + RequiredClass
	}
	return class
}
