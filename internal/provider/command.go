package provider

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandProvider generates file contents by shelling out to an AI CLI
// (e.g. claude -p). The command's stdout is parsed for fenced file blocks.
type CommandProvider struct {
	Command       string   // binary to invoke (e.g. "claude")
	Args          []string // arguments placed before the prompt
	CustomCommand string   // full command template with a {{PROMPT}} placeholder
	Timeout       int      // seconds, 0 = no timeout
}

// Generate runs the configured command with the prompt and parses generated
// files from its output.
func (p *CommandProvider) Generate(ctx context.Context, prompt string, opts Options) (*Result, error) {
	if p.Command == "" && p.CustomCommand == "" {
		return nil, fmt.Errorf("no provider command configured")
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(p.Timeout)*time.Second)
		defer cancel()
	}

	cmd, err := p.buildCommand(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("provider command timed out after %ds", p.Timeout)
		}
		return nil, fmt.Errorf("provider command failed: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	files, err := ParseFileBlocks(stdout.String())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("provider output contained no file blocks")
	}

	return &Result{
		Files:      files,
		TokensUsed: estimateTokens(prompt) + estimateTokens(stdout.String()),
	}, nil
}

// buildCommand assembles the exec.Cmd, expanding the custom command
// template when one is configured.
func (p *CommandProvider) buildCommand(ctx context.Context, prompt string, opts Options) (*exec.Cmd, error) {
	if p.CustomCommand != "" {
		if !strings.Contains(p.CustomCommand, "{{PROMPT}}") {
			return nil, fmt.Errorf("custom provider command must contain {{PROMPT}} placeholder")
		}
		expanded := strings.ReplaceAll(p.CustomCommand, "{{PROMPT}}", prompt)
		parts := splitCommand(expanded)
		if len(parts) == 0 {
			return nil, fmt.Errorf("custom provider command is empty")
		}
		return exec.CommandContext(ctx, parts[0], parts[1:]...), nil
	}

	args := make([]string, 0, len(p.Args)+3)
	args = append(args, p.Args...)
	if opts.Model != "" {
		args = append(args, "--model", opts.Model)
	}
	args = append(args, prompt)
	return exec.CommandContext(ctx, p.Command, args...), nil
}

// splitCommand tokenizes a command string, honoring single and double
// quotes so prompts containing spaces survive expansion.
func splitCommand(s string) []string {
	var parts []string
	var current strings.Builder
	var quote rune

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ' ' || r == '\t' || r == '\n':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
