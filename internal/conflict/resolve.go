package conflict

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Strategy is the policy applied to a detected conflict.
type Strategy string

const (
	StrategySkip      Strategy = "skip"
	StrategyOverwrite Strategy = "overwrite"
	StrategyMerge     Strategy = "merge"
)

// ParseStrategy converts a config value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategySkip:
		return StrategySkip, nil
	case StrategyOverwrite:
		return StrategyOverwrite, nil
	case StrategyMerge:
		return StrategyMerge, nil
	default:
		return "", fmt.Errorf("unknown conflict strategy %q (want skip, overwrite, or merge)", s)
	}
}

// ResolutionResult reports what Resolve did for one conflict.
type ResolutionResult struct {
	Written    bool
	BackupPath string // empty when no backup was created
	Action     string
}

// Resolve applies a strategy to a single conflict.
//
// Skip never touches the file system and is idempotent. Overwrite and Merge
// first copy the existing on-disk content to a backup, then write the new
// or combined content. The input conflict is never mutated.
func Resolve(conflict FileConflictInfo, strategy Strategy, newContent string) (*ResolutionResult, error) {
	switch strategy {
	case StrategySkip:
		return &ResolutionResult{
			Written: false,
			Action:  fmt.Sprintf("skipped %s, existing file left unchanged", conflict.Path),
		}, nil

	case StrategyOverwrite:
		backupPath, err := writeBackup(conflict)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(conflict.Path, []byte(newContent), 0644); err != nil {
			return nil, fmt.Errorf("failed to overwrite %s: %w", conflict.Path, err)
		}
		return &ResolutionResult{
			Written:    true,
			BackupPath: backupPath,
			Action:     fmt.Sprintf("overwrote %s (backup at %s)", conflict.Path, backupPath),
		}, nil

	case StrategyMerge:
		backupPath, err := writeBackup(conflict)
		if err != nil {
			return nil, err
		}
		merged := Merge(conflict.OldContent, newContent)
		if err := os.WriteFile(conflict.Path, []byte(merged), 0644); err != nil {
			return nil, fmt.Errorf("failed to write merged %s: %w", conflict.Path, err)
		}
		return &ResolutionResult{
			Written:    true,
			BackupPath: backupPath,
			Action:     fmt.Sprintf("merged %s (backup at %s)", conflict.Path, backupPath),
		}, nil

	default:
		return nil, fmt.Errorf("unknown conflict strategy %q", strategy)
	}
}

// writeBackup copies the conflict's old content to a timestamped backup
// alongside the original. The backup holds exactly the pre-write bytes.
func writeBackup(conflict FileConflictInfo) (string, error) {
	backupPath := fmt.Sprintf("%s.bak-%d", conflict.Path, time.Now().UnixNano())
	if err := os.WriteFile(backupPath, []byte(conflict.OldContent), 0644); err != nil {
		return "", fmt.Errorf("failed to create backup for %s: %w", conflict.Path, err)
	}
	return backupPath, nil
}

// Merge combines old and new content line by line. Unchanged regions appear
// once; conflicting regions keep both sides under git-style markers so no
// existing work is lost. The output is non-empty whenever either input is.
func Merge(old, newer string) string {
	if old == "" {
		return newer
	}
	if newer == "" {
		return old
	}

	script := computeEditScript(splitLines(old), splitLines(newer))

	var out strings.Builder
	var removed, added []string

	flush := func() {
		if len(removed) == 0 && len(added) == 0 {
			return
		}
		out.WriteString("<<<<<<< existing\n")
		for _, line := range removed {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		out.WriteString("=======\n")
		for _, line := range added {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		out.WriteString(">>>>>>> generated\n")
		removed = removed[:0]
		added = added[:0]
	}

	for _, line := range script {
		switch line.op {
		case opRemove:
			removed = append(removed, line.text)
		case opAdd:
			added = append(added, line.text)
		default:
			flush()
			out.WriteString(line.text)
			out.WriteByte('\n')
		}
	}
	flush()

	return out.String()
}
