package provider

import (
	"fmt"
	"strings"
)

// ParseFileBlocks extracts generated files from provider output. Files are
// carried in fenced code blocks whose info string names the target path:
//
//	```go path=internal/server/server.go
//	package server
//	```
//
// Text outside fenced blocks and blocks without a path attribute are
// ignored; backends interleave commentary with file output.
func ParseFileBlocks(output string) ([]GeneratedFile, error) {
	var files []GeneratedFile
	lines := strings.Split(output, "\n")

	var inBlock bool
	var path string
	var content []string

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			if strings.HasPrefix(trimmed, "```") {
				inBlock = true
				path = extractPath(trimmed)
				content = content[:0]
			}
			continue
		}

		if trimmed == "```" {
			inBlock = false
			if path != "" {
				files = append(files, GeneratedFile{
					Path:    path,
					Content: strings.Join(content, "\n") + "\n",
				})
			}
			path = ""
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			return nil, fmt.Errorf("nested code fence at output line %d", i+1)
		}
		content = append(content, line)
	}

	if inBlock {
		return nil, fmt.Errorf("unterminated code fence in provider output")
	}

	return files, nil
}

// extractPath pulls the path=... attribute out of a fence info string.
func extractPath(fence string) string {
	info := strings.TrimPrefix(fence, "```")
	for _, field := range strings.Fields(info) {
		if value, ok := strings.CutPrefix(field, "path="); ok {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}
