package template

import (
	"strings"
	"unicode"
)

// caseTransform is a deterministic string reformatting selected from a
// placeholder's literal spelling.
type caseTransform int

const (
	transformLower caseTransform = iota
	transformSnake
	transformKebab
	transformCamel
	transformPascal
	transformUpper
)

func (c caseTransform) String() string {
	switch c {
	case transformSnake:
		return "snake_case"
	case transformKebab:
		return "kebab-case"
	case transformCamel:
		return "camelCase"
	case transformPascal:
		return "PascalCase"
	case transformUpper:
		return "UPPER_CASE"
	default:
		return "lowercase"
	}
}

// inferTransform maps a placeholder name to its lookup key and case
// transform. The ladder is evaluated in priority order; the first match
// wins. The key is the base identifier after suffix stripping, lower-cased.
func inferTransform(name string) (key string, transform caseTransform) {
	if base, ok := strings.CutSuffix(name, "_snake"); ok && base != "" {
		return strings.ToLower(base), transformSnake
	}
	if base, ok := strings.CutSuffix(name, "-kebab"); ok && base != "" {
		return strings.ToLower(base), transformKebab
	}
	if base, ok := strings.CutSuffix(name, "Camel"); ok && base != "" {
		return strings.ToLower(base), transformCamel
	}
	if len(name) > 1 && isUpperSnake(name) {
		return strings.ToLower(name), transformUpper
	}
	if first := []rune(name); len(first) > 0 && unicode.IsUpper(first[0]) {
		return strings.ToLower(name), transformPascal
	}
	return strings.ToLower(name), transformLower
}

func isUpperSnake(s string) bool {
	for _, r := range s {
		if r != '_' && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// applyTransform reformats a bound value into the requested case.
func applyTransform(value string, transform caseTransform) string {
	switch transform {
	case transformSnake:
		return strings.Join(lowerWords(value), "_")
	case transformKebab:
		return strings.Join(lowerWords(value), "-")
	case transformCamel:
		words := lowerWords(value)
		for i := 1; i < len(words); i++ {
			words[i] = capitalize(words[i])
		}
		return strings.Join(words, "")
	case transformPascal:
		words := lowerWords(value)
		for i := range words {
			words[i] = capitalize(words[i])
		}
		return strings.Join(words, "")
	case transformUpper:
		return strings.ToUpper(strings.Join(lowerWords(value), "_"))
	default:
		return strings.ToLower(value)
	}
}

// lowerWords tokenizes an identifier into lower-cased words, splitting on
// underscores, hyphens, spaces, and camel-case boundaries.
// Examples: MyProject -> [my project], my_project -> [my project].
func lowerWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			// Boundary before an uppercase rune that follows a lowercase
			// rune, or that starts a new word in an acronym run (HTTPServer).
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					flush()
				} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					flush()
				}
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
