// Package provider defines the content-generation capability consumed by
// the pipeline and its two implementations: one backed by an AI CLI command
// and one backed by registered file templates. The orchestrator depends
// only on the ContentGenerator interface.
package provider

import "context"

// GeneratedFile is one output file produced by a content generator. The
// pipeline never interprets Content beyond line counting and diffing.
type GeneratedFile struct {
	Path    string
	Content string
}

// Options tune a single generation call.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Result is the outcome of one generation call.
type Result struct {
	Files      []GeneratedFile
	TokensUsed int
}

// ContentGenerator produces file contents from a prompt.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string, opts Options) (*Result, error)
}

// estimateTokens approximates token usage from byte length. Four bytes per
// token is close enough for statistics; exact counts belong to the backend.
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}
