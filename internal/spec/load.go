package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a spec.yaml file.
func Load(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var s Specification
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks the structural invariants a well-formed specification
// must satisfy before plan extraction.
func (s *Specification) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("spec is missing an id")
	}
	if s.Name == "" {
		return fmt.Errorf("spec %s is missing a name", s.ID)
	}

	seen := make(map[string]bool, len(s.Requirements))
	for i, req := range s.Requirements {
		if req.ID == "" {
			return fmt.Errorf("requirement at position %d is missing an id", i)
		}
		if seen[req.ID] {
			return fmt.Errorf("duplicate requirement id %q", req.ID)
		}
		seen[req.ID] = true

		if req.UserStory == "" {
			return fmt.Errorf("requirement %s is missing a user story", req.ID)
		}
		for j, ac := range req.AcceptanceCriteria {
			if ac.ID == "" {
				return fmt.Errorf("criterion at position %d of requirement %s is missing an id", j, req.ID)
			}
		}
	}

	return nil
}
