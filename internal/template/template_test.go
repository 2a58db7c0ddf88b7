package template

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderSimpleCaseTransforms(t *testing.T) {
	tests := map[string]struct {
		template string
		bound    string
		want     string
	}{
		"lowercase placeholder": {
			template: "Hello {{name}}",
			bound:    "my_project",
			want:     "Hello my_project",
		},
		"pascal placeholder": {
			template: "struct {{Name}} {}",
			bound:    "my_project",
			want:     "struct MyProject {}",
		},
		"snake suffix": {
			template: "let {{name_snake}} = 42;",
			bound:    "MyProject",
			want:     "let my_project = 42;",
		},
		"kebab suffix": {
			template: "package-name: {{name-kebab}}",
			bound:    "MyProject",
			want:     "package-name: my-project",
		},
		"upper placeholder": {
			template: "const {{NAME}} = 1;",
			bound:    "my_project",
			want:     "const MY_PROJECT = 1;",
		},
		"camel suffix": {
			template: "function {{nameCamel}}() {}",
			bound:    "my_project",
			want:     "function myProject() {}",
		},
		"multiple casings of one binding": {
			template: "{{Name}}/{{name_snake}}/{{NAME}}",
			bound:    "MyProject",
			want:     "MyProject/my_project/MY_PROJECT",
		},
		"no placeholders": {
			template: "plain text",
			bound:    "unused",
			want:     "plain text",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			e.Bind("name", test.bound)

			got, err := e.RenderSimple(test.template)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestRenderSimpleMissingPlaceholder(t *testing.T) {
	e := NewEngine()

	out, err := e.RenderSimple("Hello {{name}}")
	if err == nil {
		t.Fatal("expected error for unbound placeholder")
	}
	if out != "" {
		t.Errorf("expected no output on failure, got %q", out)
	}

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected *template.Error, got %T", err)
	}
	if terr.Kind != ErrMissingPlaceholder {
		t.Errorf("expected missing-placeholder kind, got %s", terr.Kind)
	}
	if terr.Name != "name" {
		t.Errorf("expected failing placeholder name, got %q", terr.Name)
	}
}

func TestRenderSimpleRejectsBlocks(t *testing.T) {
	tests := map[string]string{
		"conditional": "{{#if debug}}x{{/if}}",
		"loop":        "{{#each items}}x{{/each}}",
		"include":     "{{> header}}",
	}

	for name, tmpl := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			e.Bind("debug", "yes")
			if _, err := e.RenderSimple(tmpl); err == nil {
				t.Fatal("expected error for block syntax in simple rendering")
			}
		})
	}
}

func TestRenderConditional(t *testing.T) {
	tests := map[string]struct {
		bind map[string]string
		want string
	}{
		"bound condition renders body": {
			bind: map[string]string{"name": "demo", "debug": "1"},
			want: "start debug:demo end",
		},
		"unbound condition skips body": {
			bind: map[string]string{"name": "demo"},
			want: "start  end",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			for k, v := range test.bind {
				e.Bind(k, v)
			}

			result, err := e.Render("start {{#if debug}}debug:{{name}}{{/if}} end")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Output != test.want {
				t.Errorf("expected %q, got %q", test.want, result.Output)
			}
		})
	}
}

func TestRenderConditionalSkipsMissingBody(t *testing.T) {
	// A placeholder inside a skipped conditional must not fail the render.
	e := NewEngine()
	result, err := e.Render("a{{#if flag}}{{never_bound}}{{/if}}b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Output != "ab" {
		t.Errorf("expected %q, got %q", "ab", result.Output)
	}
}

func TestRenderUnsupportedElements(t *testing.T) {
	tests := map[string]struct {
		template string
		wantMsg  string
	}{
		"loop block": {
			template: "{{#each items}}{{item}}{{/each}}",
			wantMsg:  "loop blocks are not supported",
		},
		"include": {
			template: "{{> partial}}",
			wantMsg:  "includes are not supported",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			e.Bind("items", "x")
			e.Bind("item", "x")

			_, err := e.Render(test.template)
			if err == nil {
				t.Fatal("expected error")
			}
			var terr *Error
			if !errors.As(err, &terr) {
				t.Fatalf("expected *template.Error, got %T", err)
			}
			if terr.Kind != ErrUnsupported {
				t.Errorf("expected unsupported kind, got %s", terr.Kind)
			}
			if !strings.Contains(terr.Message, test.wantMsg) {
				t.Errorf("expected message containing %q, got %q", test.wantMsg, terr.Message)
			}
		})
	}
}

func TestRenderConsultedNames(t *testing.T) {
	e := NewEngine()
	e.Bind("name", "demo")
	e.Bind("version", "1.0")

	result, err := e.Render("{{Name}} v{{version}} {{#if verbose}}loud{{/if}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"name", "verbose", "version"}
	if len(result.Consulted) != len(want) {
		t.Fatalf("expected consulted %v, got %v", want, result.Consulted)
	}
	for i := range want {
		if result.Consulted[i] != want[i] {
			t.Errorf("consulted[%d]: expected %q, got %q", i, want[i], result.Consulted[i])
		}
	}
}

func TestValidateRequired(t *testing.T) {
	e := NewEngine()
	e.Require("name", "version")
	e.Bind("name", "demo")

	if err := e.Validate(); err == nil {
		t.Fatal("expected error for unbound required placeholder")
	}

	// Render must fail fast before visiting any element.
	if _, err := e.Render("static text only"); err == nil {
		t.Fatal("expected Render to fail validation")
	}

	e.Bind("version", "1.0")
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error after binding: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unterminated placeholder": "hello {{name",
		"unclosed conditional":     "{{#if a}}body",
		"unmatched close":          "text {{/if}}",
		"mismatched close":         "{{#if a}}{{/each}}",
		"empty placeholder":        "{{ }}",
		"space in placeholder":     "{{two words}}",
	}

	for name, tmpl := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			if _, err := e.Render(tmpl); err == nil {
				t.Fatalf("expected parse error for %q", tmpl)
			}
		})
	}
}
