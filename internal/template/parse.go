package template

import "strings"

type elementKind int

const (
	elemLiteral elementKind = iota
	elemPlaceholder
	elemConditional
	elemLoop
	elemInclude
)

// element is one node in the parsed template tree. Conditional and loop
// blocks carry their body in children.
type element struct {
	kind     elementKind
	text     string // literal runs only
	name     string // placeholder or block name
	children []element
}

// blockFrame tracks an open {{#if}} or {{#each}} while parsing.
type blockFrame struct {
	kind     elementKind
	name     string
	elements []element
}

// parse scans template text into an element tree. Literal runs, placeholders,
// conditional blocks, loop blocks, and includes are recognized; anything else
// between double braces is a parse error.
func parse(text string) ([]element, error) {
	root := &blockFrame{}
	stack := []*blockFrame{root}
	top := func() *blockFrame { return stack[len(stack)-1] }

	rest := text
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			if rest != "" {
				top().elements = append(top().elements, element{kind: elemLiteral, text: rest})
			}
			break
		}

		if open > 0 {
			top().elements = append(top().elements, element{kind: elemLiteral, text: rest[:open]})
		}

		close := strings.Index(rest[open:], "}}")
		if close < 0 {
			return nil, &Error{Kind: ErrParse, Message: "unterminated placeholder"}
		}
		tag := rest[open+2 : open+close]
		rest = rest[open+close+2:]

		switch {
		case strings.HasPrefix(tag, "#if "):
			name := strings.TrimSpace(strings.TrimPrefix(tag, "#if "))
			if name == "" {
				return nil, &Error{Kind: ErrParse, Message: "conditional block is missing a name"}
			}
			stack = append(stack, &blockFrame{kind: elemConditional, name: name})

		case strings.HasPrefix(tag, "#each "):
			name := strings.TrimSpace(strings.TrimPrefix(tag, "#each "))
			if name == "" {
				return nil, &Error{Kind: ErrParse, Message: "loop block is missing a name"}
			}
			stack = append(stack, &blockFrame{kind: elemLoop, name: name})

		case strings.TrimSpace(tag) == "/if":
			if len(stack) == 1 || top().kind != elemConditional {
				return nil, &Error{Kind: ErrParse, Message: "unmatched {{/if}}"}
			}
			frame := top()
			stack = stack[:len(stack)-1]
			top().elements = append(top().elements, element{
				kind:     elemConditional,
				name:     frame.name,
				children: frame.elements,
			})

		case strings.TrimSpace(tag) == "/each":
			if len(stack) == 1 || top().kind != elemLoop {
				return nil, &Error{Kind: ErrParse, Message: "unmatched {{/each}}"}
			}
			frame := top()
			stack = stack[:len(stack)-1]
			top().elements = append(top().elements, element{
				kind:     elemLoop,
				name:     frame.name,
				children: frame.elements,
			})

		case strings.HasPrefix(tag, ">"):
			name := strings.TrimSpace(strings.TrimPrefix(tag, ">"))
			if name == "" {
				return nil, &Error{Kind: ErrParse, Message: "include is missing a partial name"}
			}
			top().elements = append(top().elements, element{kind: elemInclude, name: name})

		default:
			name := strings.TrimSpace(tag)
			if name == "" || strings.ContainsAny(name, " \t\n") {
				return nil, &Error{Kind: ErrParse, Message: "invalid placeholder: {{" + tag + "}}"}
			}
			top().elements = append(top().elements, element{kind: elemPlaceholder, name: name})
		}
	}

	if len(stack) != 1 {
		return nil, &Error{Kind: ErrParse, Name: top().name, Message: "unclosed block"}
	}

	return root.elements, nil
}
