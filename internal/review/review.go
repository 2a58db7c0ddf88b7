// Package review runs a lightweight post-generation review of the output
// against the originating specification. It flags files that look
// unfinished and requirements with no apparent coverage; a human (or a
// richer engine behind the same contract) makes the final call.
package review

import (
	"fmt"
	"strings"

	"github.com/schoolboyqueue/specforge/internal/provider"
	"github.com/schoolboyqueue/specforge/internal/spec"
)

// Comment is one reviewer observation tied to a file, or to the spec as a
// whole when Path is empty.
type Comment struct {
	Path    string
	Message string
}

// Review is the outcome of one review pass.
type Review struct {
	Approved bool
	Comments []Comment
}

// Reviewer implements the default heuristic review.
type Reviewer struct {
	// MaxOpenItems is how many TODO/FIXME markers the output may carry
	// before the review withholds approval.
	MaxOpenItems int
}

// NewReviewer creates a reviewer with the default tolerance.
func NewReviewer() *Reviewer {
	return &Reviewer{MaxOpenItems: 3}
}

// Run reviews generated files against the original specification.
func (r *Reviewer) Run(s *spec.Specification, files []provider.GeneratedFile) (*Review, error) {
	if s == nil {
		return nil, fmt.Errorf("spec is nil")
	}

	rev := &Review{Approved: true}
	openItems := 0

	for _, f := range files {
		for i, line := range strings.Split(f.Content, "\n") {
			if strings.Contains(line, "TODO") || strings.Contains(line, "FIXME") {
				openItems++
				rev.Comments = append(rev.Comments, Comment{
					Path:    f.Path,
					Message: fmt.Sprintf("open item at line %d: %s", i+1, strings.TrimSpace(line)),
				})
			}
		}
		if strings.TrimSpace(f.Content) == "" {
			rev.Approved = false
			rev.Comments = append(rev.Comments, Comment{Path: f.Path, Message: "file is empty"})
		}
		if strings.Contains(f.Content, "<<<<<<<") || strings.Contains(f.Content, ">>>>>>>") {
			rev.Approved = false
			rev.Comments = append(rev.Comments, Comment{Path: f.Path, Message: "unresolved conflict markers"})
		}
	}

	if openItems > r.MaxOpenItems {
		rev.Approved = false
		rev.Comments = append(rev.Comments, Comment{
			Message: fmt.Sprintf("%d open items exceed the tolerance of %d", openItems, r.MaxOpenItems),
		})
	}

	if len(files) == 0 && len(s.Requirements) > 0 {
		rev.Approved = false
		rev.Comments = append(rev.Comments, Comment{
			Message: fmt.Sprintf("no files generated for %d requirements", len(s.Requirements)),
		})
	}

	return rev, nil
}
