// Package planner converts a specification into an ordered generation plan
// with explicit step dependencies and extracted constraints. Plan extraction
// is a pure function of its input and performs no I/O.
package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/schoolboyqueue/specforge/internal/spec"
)

// ConstraintKind classifies a non-functional rule inferred from
// acceptance-criterion text.
type ConstraintKind string

const (
	KindNamingConvention ConstraintKind = "naming-convention"
	KindDocumentation    ConstraintKind = "documentation"
	KindErrorHandling    ConstraintKind = "error-handling"
	KindTesting          ConstraintKind = "testing"
	KindCodeQuality      ConstraintKind = "code-quality"
	KindOther            ConstraintKind = "other"
)

// Constraint is a rule the generated code must follow, inferred from the
// Then text of an acceptance criterion.
type Constraint struct {
	ID          string
	Description string
	Kind        ConstraintKind
}

// GenerationStep is one unit of work in the plan, derived from exactly one
// requirement.
type GenerationStep struct {
	ID                 string
	Description        string
	RequirementIDs     []string
	AcceptanceCriteria []spec.AcceptanceCriterion
	Priority           string
	Optional           bool
	Sequence           int
}

// Dependency records that First must complete before Second. Execution is
// not per-step concurrent, so the pairs are advisory ordering metadata.
type Dependency struct {
	First  string
	Second string
}

// GenerationPlan is the ordered breakdown of a specification. A fresh plan
// is created per pipeline run and never mutated afterward.
type GenerationPlan struct {
	ID           string
	SpecID       string
	Steps        []GenerationStep
	Dependencies []Dependency
	Constraints  []Constraint
}

// keywordFamilies maps each constraint kind to the keywords that trigger it.
// Matching is case-insensitive over the criterion's Then text. Order here
// determines the order constraints appear per criterion.
var keywordFamilies = []struct {
	kind     ConstraintKind
	keywords []string
}{
	{KindNamingConvention, []string{"naming convention", "snake_case", "camelcase", "pascalcase"}},
	{KindDocumentation, []string{"doc comment", "documentation"}},
	{KindErrorHandling, []string{"error handling", "error type"}},
	{KindTesting, []string{"test", "unit test"}},
	{KindCodeQuality, []string{"quality", "standard"}},
}

// Process extracts a generation plan from a specification.
//
// Each requirement yields exactly one step; steps are sorted by their
// position in the requirement list, and dependencies form a single linear
// chain over the sorted steps (N steps produce N-1 pairs).
func Process(s *spec.Specification) (*GenerationPlan, error) {
	if s == nil {
		return nil, fmt.Errorf("spec is nil")
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("malformed spec: %w", err)
	}

	steps := make([]GenerationStep, 0, len(s.Requirements))
	for i, req := range s.Requirements {
		steps = append(steps, GenerationStep{
			ID:                 "step-" + req.ID,
			Description:        req.UserStory,
			RequirementIDs:     []string{req.ID},
			AcceptanceCriteria: req.AcceptanceCriteria,
			Priority:           req.Priority,
			Optional:           false,
			Sequence:           i,
		})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Sequence < steps[j].Sequence
	})

	deps := make([]Dependency, 0)
	for i := 0; i+1 < len(steps); i++ {
		deps = append(deps, Dependency{First: steps[i].ID, Second: steps[i+1].ID})
	}

	return &GenerationPlan{
		ID:           uuid.NewString(),
		SpecID:       s.ID,
		Steps:        steps,
		Dependencies: deps,
		Constraints:  extractConstraints(s),
	}, nil
}

// extractConstraints scans every acceptance criterion for keyword families.
// A single criterion can yield several constraints when its text matches
// more than one family. Constraint IDs are deterministic so re-extraction
// is idempotent.
func extractConstraints(s *spec.Specification) []Constraint {
	constraints := make([]Constraint, 0)
	for _, req := range s.Requirements {
		for _, ac := range req.AcceptanceCriteria {
			then := strings.ToLower(ac.Then)
			for _, family := range keywordFamilies {
				if matchesFamily(then, family.keywords) {
					constraints = append(constraints, Constraint{
						ID:          fmt.Sprintf("constraint-%s-%s", family.kind, ac.ID),
						Description: ac.Then,
						Kind:        family.kind,
					})
				}
			}
		}
	}
	return constraints
}

func matchesFamily(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
