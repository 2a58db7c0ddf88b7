package validation

import (
	"strings"
	"testing"

	"github.com/schoolboyqueue/specforge/internal/provider"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		content   string
		wantValid bool
		wantMsg   string
	}{
		"well-formed file": {
			content:   "package a\n\nfunc A() {}\n",
			wantValid: true,
		},
		"empty file": {
			content:   "",
			wantValid: false,
			wantMsg:   "file is empty",
		},
		"whitespace-only file": {
			content:   "  \n\t\n",
			wantValid: false,
			wantMsg:   "file is empty",
		},
		"unclosed brace": {
			content:   "func A() {\n",
			wantValid: false,
			wantMsg:   "unclosed",
		},
		"stray closer": {
			content:   "func A() }\n",
			wantValid: false,
			wantMsg:   "unbalanced",
		},
		"mismatched pair": {
			content:   "var x = [1, 2)\n",
			wantValid: false,
			wantMsg:   "unbalanced",
		},
		"braces inside string ignored": {
			content:   "var s = \"{[(\"\n",
			wantValid: true,
		},
		"braces inside char ignored": {
			content:   "var c = '{'\n",
			wantValid: true,
		},
		"escaped quote stays in string": {
			content:   "var s = \"a\\\"{\"\n",
			wantValid: true,
		},
		"conflict marker": {
			content:   "a\n<<<<<<< existing\nb\n",
			wantValid: false,
			wantMsg:   "conflict marker",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := NewValidator().Validate([]provider.GeneratedFile{{Path: "f.go", Content: test.content}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Valid != test.wantValid {
				t.Fatalf("expected valid=%v, got %v (errors: %v)", test.wantValid, result.Valid, result.Errors)
			}
			if !test.wantValid && test.wantMsg != "" {
				found := false
				for _, e := range result.Errors {
					if strings.Contains(e.Message, test.wantMsg) {
						found = true
					}
				}
				if !found {
					t.Errorf("expected an error containing %q, got %v", test.wantMsg, result.Errors)
				}
			}
		})
	}
}

func TestValidateAggregatesAcrossFiles(t *testing.T) {
	result, err := NewValidator().Validate([]provider.GeneratedFile{
		{Path: "good.go", Content: "package good\n"},
		{Path: "bad.go", Content: ""},
		{Path: "worse.go", Content: "func X() {\n"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid {
		t.Error("expected invalid result")
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(result.Errors), result.Errors)
	}
}

func TestValidateNoFiles(t *testing.T) {
	result, err := NewValidator().Validate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Error("empty file set should be valid")
	}
}

func TestTriviallyValid(t *testing.T) {
	if !TriviallyValid().Valid {
		t.Error("trivially valid result must be valid")
	}
}

func TestValidationErrorString(t *testing.T) {
	withLine := ValidationError{Path: "a.go", Line: 3, Message: "boom"}
	if withLine.String() != "a.go:3: boom" {
		t.Errorf("unexpected format: %q", withLine.String())
	}
	fileWide := ValidationError{Path: "a.go", Message: "empty"}
	if fileWide.String() != "a.go: empty" {
		t.Errorf("unexpected format: %q", fileWide.String())
	}
}
