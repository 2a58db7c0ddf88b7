// Package template implements a small placeholder templating language with
// deterministic case-transform inference. A placeholder's spelling selects
// both the lookup key and the case applied to its bound value, so one bound
// name serves every casing a generated file needs.
//
// Supported syntax: {{name}} placeholders and {{#if x}}...{{/if}} blocks.
// Loop blocks ({{#each x}}) and includes ({{> partial}}) are recognized by
// the parser but always fail to render; array iteration and partial loading
// are out of scope.
package template

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorKind categorizes template failures.
type ErrorKind string

const (
	ErrParse              ErrorKind = "parse"
	ErrMissingPlaceholder ErrorKind = "missing-placeholder"
	ErrUnsupported        ErrorKind = "unsupported"
)

// Error is the typed failure returned by parsing and rendering.
type Error struct {
	Kind    ErrorKind
	Name    string // placeholder or block name, when applicable
	Message string
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("template %s error: %s (%s)", e.Kind, e.Message, e.Name)
	}
	return fmt.Sprintf("template %s error: %s", e.Kind, e.Message)
}

// RenderResult carries rendered output plus the placeholder names that were
// actually consulted, for diagnostics.
type RenderResult struct {
	Output    string
	Consulted []string
}

// Engine binds values to placeholder names and renders templates against
// them. The bound-value mapping is per-instance; an Engine is not intended
// to be shared across concurrent renders without external synchronization.
type Engine struct {
	values   map[string]string
	required []string
}

// NewEngine creates an engine with no bindings.
func NewEngine() *Engine {
	return &Engine{values: make(map[string]string)}
}

// Bind associates a value with a placeholder name. Keys are lower-cased so
// {{Name}} and {{name}} resolve through the same binding.
func (e *Engine) Bind(name, value string) {
	e.values[strings.ToLower(name)] = value
}

// Require marks placeholder names that Validate checks before rendering.
func (e *Engine) Require(names ...string) {
	e.required = append(e.required, names...)
}

// Validate fails fast when a required placeholder has no bound value. It
// runs before any template element is visited.
func (e *Engine) Validate() error {
	for _, name := range e.required {
		if _, ok := e.values[strings.ToLower(name)]; !ok {
			return &Error{Kind: ErrMissingPlaceholder, Name: name, Message: "required placeholder is not bound"}
		}
	}
	return nil
}

// Render parses and renders a template. Rendering aborts on the first
// missing placeholder and produces no partial output.
func (e *Engine) Render(text string) (*RenderResult, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	elements, err := parse(text)
	if err != nil {
		return nil, err
	}

	consulted := make(map[string]bool)
	var out strings.Builder
	if err := e.renderElements(elements, &out, consulted); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(consulted))
	for name := range consulted {
		names = append(names, name)
	}
	sort.Strings(names)

	return &RenderResult{Output: out.String(), Consulted: names}, nil
}

// RenderSimple performs direct placeholder substitution. Block syntax is
// rejected on this path.
func (e *Engine) RenderSimple(text string) (string, error) {
	elements, err := parse(text)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, el := range elements {
		switch el.kind {
		case elemLiteral:
			out.WriteString(el.text)
		case elemPlaceholder:
			value, err := e.resolve(el.name, nil)
			if err != nil {
				return "", err
			}
			out.WriteString(value)
		default:
			return "", &Error{Kind: ErrUnsupported, Name: el.name, Message: "blocks are not supported in simple rendering"}
		}
	}
	return out.String(), nil
}

func (e *Engine) renderElements(elements []element, out *strings.Builder, consulted map[string]bool) error {
	for _, el := range elements {
		switch el.kind {
		case elemLiteral:
			out.WriteString(el.text)
		case elemPlaceholder:
			value, err := e.resolve(el.name, consulted)
			if err != nil {
				return err
			}
			out.WriteString(value)
		case elemConditional:
			// Truthiness beyond "has a bound value" is not evaluated.
			key := strings.ToLower(el.name)
			consulted[key] = true
			if _, ok := e.values[key]; ok {
				if err := e.renderElements(el.children, out, consulted); err != nil {
					return err
				}
			}
		case elemLoop:
			return &Error{Kind: ErrUnsupported, Name: el.name, Message: "loop blocks are not supported"}
		case elemInclude:
			return &Error{Kind: ErrUnsupported, Name: el.name, Message: "includes are not supported"}
		}
	}
	return nil
}

// resolve looks up a placeholder's bound value and applies the case
// transform inferred from its spelling. The transform applies to the value,
// never to the key.
func (e *Engine) resolve(name string, consulted map[string]bool) (string, error) {
	key, transform := inferTransform(name)
	if consulted != nil {
		consulted[key] = true
	}
	value, ok := e.values[key]
	if !ok {
		return "", &Error{Kind: ErrMissingPlaceholder, Name: name, Message: "no value bound for placeholder"}
	}
	return applyTransform(value, transform), nil
}
