package conflict

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schoolboyqueue/specforge/internal/provider"
)

// FileConflictInfo describes one generated file that collides with an
// existing file at its resolved path. Produced fresh per detection call and
// never mutated afterward.
type FileConflictInfo struct {
	Path       string // resolved path under the target directory
	OldContent string // current on-disk content
	NewContent string // freshly generated content
	Diff       FileDiff
}

// Detect compares generated files against the target path and returns one
// conflict per file whose resolved path already exists. Files with no
// pre-existing counterpart are not conflicts. Nothing is mutated.
func Detect(files []provider.GeneratedFile, targetPath string) ([]FileConflictInfo, error) {
	var conflicts []FileConflictInfo

	for _, file := range files {
		resolved := filepath.Join(targetPath, file.Path)

		info, err := os.Stat(resolved)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", resolved, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("generated file path %s is an existing directory", resolved)
		}

		existing, err := os.ReadFile(resolved)
		if err != nil {
			return nil, fmt.Errorf("failed to read existing file %s: %w", resolved, err)
		}

		old := string(existing)
		conflicts = append(conflicts, FileConflictInfo{
			Path:       resolved,
			OldContent: old,
			NewContent: file.Content,
			Diff:       Diff(old, file.Content),
		})
	}

	return conflicts, nil
}
