// Package quality applies mechanical cleanup rules to generated files
// before validation: trailing whitespace is stripped and every file ends
// with exactly one newline. Rules are purely textual; no language
// semantics are involved.
package quality

import (
	"strings"

	"github.com/schoolboyqueue/specforge/internal/provider"
)

// Enforcer normalizes generated file contents.
type Enforcer struct{}

// NewEnforcer creates the default enforcer.
func NewEnforcer() *Enforcer {
	return &Enforcer{}
}

// Fix records how many lines were touched in one file.
type Fix struct {
	Path  string
	Lines int
}

// Enforce returns a cleaned copy of the input files. The input slice is
// never mutated.
func (e *Enforcer) Enforce(files []provider.GeneratedFile) ([]provider.GeneratedFile, error) {
	cleaned, _, err := e.EnforceWithReport(files)
	return cleaned, err
}

// EnforceWithReport is Enforce plus a per-file count of fixed lines. Files
// that needed no cleanup are omitted from the report.
func (e *Enforcer) EnforceWithReport(files []provider.GeneratedFile) ([]provider.GeneratedFile, []Fix, error) {
	cleaned := make([]provider.GeneratedFile, len(files))
	var fixes []Fix
	for i, f := range files {
		normalized := normalize(f.Content)
		cleaned[i] = provider.GeneratedFile{
			Path:    f.Path,
			Content: normalized,
		}
		if n := changedLines(f.Content, normalized); n > 0 {
			fixes = append(fixes, Fix{Path: f.Path, Lines: n})
		}
	}
	return cleaned, fixes, nil
}

// changedLines counts lines that differ between the original and cleaned
// content, position by position.
func changedLines(before, after string) int {
	if before == after {
		return 0
	}
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	changed := 0
	for i := 0; i < len(beforeLines) || i < len(afterLines); i++ {
		switch {
		case i >= len(beforeLines) || i >= len(afterLines):
			changed++
		case beforeLines[i] != afterLines[i]:
			changed++
		}
	}
	return changed
}

// normalize strips trailing whitespace per line, converts CRLF endings,
// and guarantees a single trailing newline on non-empty content.
func normalize(content string) string {
	if content == "" {
		return content
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n") + "\n"
	return out
}
