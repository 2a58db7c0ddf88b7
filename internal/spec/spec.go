// Package spec defines the feature specification model consumed by the
// generation pipeline and loads spec.yaml files from disk.
package spec

// Priority levels for requirements, ordered from most to least urgent.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Specification is the structured input to the generation pipeline.
// It is immutable once loaded; the pipeline never mutates it.
type Specification struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Requirements []Requirement     `yaml:"requirements"`
	Design       string            `yaml:"design,omitempty"`
	Tasks        []string          `yaml:"tasks,omitempty"`
	Metadata     map[string]string `yaml:"metadata,omitempty"`
}

// Requirement is a single user story with its acceptance criteria.
type Requirement struct {
	ID                 string                `yaml:"id"`
	UserStory          string                `yaml:"user_story"`
	AcceptanceCriteria []AcceptanceCriterion `yaml:"acceptance_criteria"`
	Priority           string                `yaml:"priority"`
}

// AcceptanceCriterion is a When/Then pair. The Then text is scanned for
// domain keywords during constraint extraction; it is never parsed as a
// formal grammar.
type AcceptanceCriterion struct {
	ID   string `yaml:"id"`
	When string `yaml:"when"`
	Then string `yaml:"then"`
}
