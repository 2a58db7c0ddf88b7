// Package writer stages generated files and commits them to disk as a
// unit. If any write fails mid-commit, files written earlier in the same
// commit are removed so no partial output is left behind.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// Staging accumulates file writes for a single commit.
type Staging struct {
	files     []stagedFile
	committed bool
}

// NewStaging creates an empty staging area.
func NewStaging() *Staging {
	return &Staging{}
}

// Add stages one file write. Nothing touches disk until Commit.
func (s *Staging) Add(path string, content []byte, mode os.FileMode) {
	s.files = append(s.files, stagedFile{path: path, content: content, mode: mode})
}

// Len reports how many files are staged.
func (s *Staging) Len() int {
	return len(s.files)
}

// Commit writes all staged files, creating parent directories as needed.
// On failure, files already written by this commit are deleted.
func (s *Staging) Commit() error {
	if s.committed {
		return fmt.Errorf("staging already committed")
	}

	written := make([]string, 0, len(s.files))
	for _, f := range s.files {
		dir := filepath.Dir(f.path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			rollback(written)
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			rollback(written)
			return fmt.Errorf("failed to write file %s: %w", f.path, err)
		}
		written = append(written, f.path)
	}

	s.committed = true
	return nil
}

func rollback(written []string) {
	for _, path := range written {
		os.Remove(path) // best effort
	}
}
