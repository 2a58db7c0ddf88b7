// specforge - Spec-Driven Code Generation
// Source: https://github.com/schoolboyqueue/specforge

// Package validation checks generated files for mechanical defects before
// they are written: empty content, unbalanced delimiters, and leftover
// conflict markers. It deliberately stops short of language-aware parsing.
package validation

import (
	"fmt"
	"strings"

	"github.com/schoolboyqueue/specforge/internal/provider"
)

// ValidationError pinpoints one defect in one file.
type ValidationError struct {
	Path    string
	Line    int // 1-based, 0 when the defect is file-wide
	Message string
}

func (e ValidationError) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Result is the outcome of validating a set of generated files.
type Result struct {
	Valid  bool
	Errors []ValidationError
}

// TriviallyValid is the substitute result used when validation is disabled
// by configuration.
func TriviallyValid() *Result {
	return &Result{Valid: true}
}

// Validator runs the default file checks.
type Validator struct{}

// NewValidator creates the default validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every file and aggregates defects. A non-nil Result is
// returned even when defects are found; the error return is reserved for
// the validator itself failing.
func (v *Validator) Validate(files []provider.GeneratedFile) (*Result, error) {
	result := &Result{Valid: true}

	for _, f := range files {
		errs := checkFile(f)
		if len(errs) > 0 {
			result.Valid = false
			result.Errors = append(result.Errors, errs...)
		}
	}

	return result, nil
}

func checkFile(f provider.GeneratedFile) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(f.Content) == "" {
		errs = append(errs, ValidationError{Path: f.Path, Message: "file is empty"})
		return errs
	}

	for i, line := range strings.Split(f.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "<<<<<<<") || strings.HasPrefix(trimmed, ">>>>>>>") {
			errs = append(errs, ValidationError{Path: f.Path, Line: i + 1, Message: "unresolved conflict marker"})
		}
	}

	if err := checkBalance(f); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

// checkBalance verifies braces, brackets, and parentheses pair up outside
// of string and character literals. Comment contents are not excluded; the
// check is a smoke test, not a parser.
func checkBalance(f provider.GeneratedFile) *ValidationError {
	var stack []byte
	line := 1
	var inString, inChar, escaped bool

	for i := 0; i < len(f.Content); i++ {
		c := f.Content[i]

		if c == '\n' {
			line++
			escaped = false
			continue
		}
		if escaped {
			escaped = false
			continue
		}

		switch {
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case inChar:
			if c == '\\' {
				escaped = true
			} else if c == '\'' {
				inChar = false
			}
		case c == '"':
			inString = true
		case c == '\'':
			inChar = true
		case c == '{' || c == '[' || c == '(':
			stack = append(stack, c)
		case c == '}' || c == ']' || c == ')':
			if len(stack) == 0 || stack[len(stack)-1] != opener(c) {
				return &ValidationError{Path: f.Path, Line: line, Message: fmt.Sprintf("unbalanced %q", string(c))}
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return &ValidationError{Path: f.Path, Line: line, Message: fmt.Sprintf("unclosed %q", string(stack[len(stack)-1]))}
	}
	return nil
}

func opener(closer byte) byte {
	switch closer {
	case '}':
		return '{'
	case ']':
		return '['
	default:
		return '('
	}
}
