// Package prompt composes the natural-language generation prompt from a
// plan. The pipeline consumes it through a narrow Build contract; prompt
// wording is deliberately kept in one place so backends see a stable
// format.
package prompt

import (
	"fmt"
	"strings"

	"github.com/schoolboyqueue/specforge/internal/planner"
)

// Builder renders a generation plan into a prompt for a content generator.
type Builder struct {
	// ProjectName appears in the prompt header when set.
	ProjectName string
}

// NewBuilder creates a prompt builder.
func NewBuilder(projectName string) *Builder {
	return &Builder{ProjectName: projectName}
}

// Build produces the prompt text for a plan. A plan with no steps cannot
// produce a meaningful prompt and is an error.
func (b *Builder) Build(plan *planner.GenerationPlan) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("plan is nil")
	}
	if len(plan.Steps) == 0 {
		return "", fmt.Errorf("plan %s has no steps to generate from", plan.ID)
	}

	var sb strings.Builder

	sb.WriteString("You are generating source files for ")
	if b.ProjectName != "" {
		sb.WriteString(b.ProjectName)
	} else {
		sb.WriteString("a project")
	}
	sb.WriteString(".\n\n## Implementation steps (in order)\n\n")

	for i, step := range plan.Steps {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, step.ID, step.Description)
		for _, ac := range step.AcceptanceCriteria {
			fmt.Fprintf(&sb, "   - when %s, then %s\n", ac.When, ac.Then)
		}
	}

	if len(plan.Constraints) > 0 {
		sb.WriteString("\n## Constraints\n\n")
		for _, c := range plan.Constraints {
			fmt.Fprintf(&sb, "- (%s) %s\n", c.Kind, c.Description)
		}
	}

	sb.WriteString("\n## Output format\n\n")
	sb.WriteString("Emit every file as a fenced code block whose info string carries the path, e.g.:\n\n")
	sb.WriteString("```go path=internal/example/example.go\npackage example\n```\n")

	return sb.String(), nil
}
