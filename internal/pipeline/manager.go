// specforge - Spec-Driven Code Generation
// Source: https://github.com/schoolboyqueue/specforge

// Package pipeline sequences the generation stages in a fixed order: plan
// extraction, prompt construction, content generation, quality enforcement,
// validation, conflict detection, optional review, and the gated write.
// The Manager contains only coordination logic; stage behavior lives behind
// injected collaborator interfaces so tests can swap any of them out.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/schoolboyqueue/specforge/internal/conflict"
	"github.com/schoolboyqueue/specforge/internal/planner"
	"github.com/schoolboyqueue/specforge/internal/prompt"
	"github.com/schoolboyqueue/specforge/internal/provider"
	"github.com/schoolboyqueue/specforge/internal/quality"
	"github.com/schoolboyqueue/specforge/internal/review"
	"github.com/schoolboyqueue/specforge/internal/spec"
	"github.com/schoolboyqueue/specforge/internal/validation"
	"github.com/schoolboyqueue/specforge/internal/writer"
)

// Config is the process-wide pipeline configuration. It is read-only
// during a run and replaceable between runs.
type Config struct {
	ProjectRoot      string
	Validate         bool
	Review           bool
	DryRun           bool
	ConflictStrategy conflict.Strategy
	MaxRetries       int
	UseTemplates     bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Validate:         true,
		ConflictStrategy: conflict.StrategySkip,
		MaxRetries:       3,
	}
}

// PromptBuilder constructs the generation prompt from a plan.
type PromptBuilder interface {
	Build(plan *planner.GenerationPlan) (string, error)
}

// QualityEnforcer normalizes generated files.
type QualityEnforcer interface {
	Enforce(files []provider.GeneratedFile) ([]provider.GeneratedFile, error)
}

// Validator checks generated files before they may be written.
type Validator interface {
	Validate(files []provider.GeneratedFile) (*validation.Result, error)
}

// Reviewer reviews generated output against the original spec.
type Reviewer interface {
	Run(s *spec.Specification, files []provider.GeneratedFile) (*review.Review, error)
}

// Stats aggregates run metrics. They are computed on every successful run
// regardless of which optional stages ran or whether writing occurred.
type Stats struct {
	TokensUsed        int
	TimeElapsed       time.Duration
	FilesGenerated    int
	LinesGenerated    int
	ConflictsDetected int
	ConflictsResolved int
}

// GenerationResult is the terminal artifact of one pipeline run. Ownership
// transfers fully to the caller.
type GenerationResult struct {
	Plan       *planner.GenerationPlan
	Files      []provider.GeneratedFile
	Validation *validation.Result
	Conflicts  []conflict.FileConflictInfo
	Review     *review.Review // nil unless config.Review
	Stats      Stats
}

// Options carry the per-call generation parameters, including the provider
// handle. Both the template path and the AI path require a provider.
type Options struct {
	Provider    provider.ContentGenerator
	Model       string
	Temperature float64
	MaxTokens   int
}

// Collaborators holds optional stage implementations for dependency
// injection. Nil fields fall back to the defaults.
type Collaborators struct {
	Prompts   PromptBuilder
	Quality   QualityEnforcer
	Validator Validator
	Reviewer  Reviewer
}

// Manager coordinates one pipeline run at a time. Concurrent Generate
// calls share only the immutable config; callers targeting overlapping
// output trees must serialize externally.
type Manager struct {
	config    Config
	prompts   PromptBuilder
	quality   QualityEnforcer
	validator Validator
	reviewer  Reviewer

	// sleep is injectable so retry tests don't wait out real backoff.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewManager creates a manager with the default collaborators.
func NewManager(cfg Config) *Manager {
	return NewManagerWithCollaborators(cfg, Collaborators{})
}

// NewManagerWithCollaborators creates a manager, substituting any non-nil
// collaborator.
func NewManagerWithCollaborators(cfg Config, c Collaborators) *Manager {
	m := &Manager{
		config:    cfg,
		prompts:   c.Prompts,
		quality:   c.Quality,
		validator: c.Validator,
		reviewer:  c.Reviewer,
		sleep:     sleepContext,
	}
	if m.prompts == nil {
		m.prompts = prompt.NewBuilder(cfg.ProjectRoot)
	}
	if m.quality == nil {
		m.quality = quality.NewEnforcer()
	}
	if m.validator == nil {
		m.validator = validation.NewValidator()
	}
	if m.reviewer == nil {
		m.reviewer = review.NewReviewer()
	}
	return m
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Generate runs the full pipeline once. Stage N+1 never begins before
// stage N completes successfully; any stage failure aborts the run with a
// stage-tagged error and no partial result.
func (m *Manager) Generate(ctx context.Context, s *spec.Specification, targetPath string, opts Options) (*GenerationResult, error) {
	start := time.Now()

	// Stage 1: plan extraction.
	plan, err := planner.Process(s)
	if err != nil {
		return nil, stageErr(KindSpec, "plan extraction", err)
	}

	// Stage 2: prompt construction.
	promptText, err := m.prompts.Build(plan)
	if err != nil {
		return nil, stageErr(KindPrompt, "prompt construction", err)
	}

	// Stage 3: content generation. The provider handle is required on the
	// template path too; it is simply a template-backed generator there.
	if opts.Provider == nil {
		return nil, stageErr(KindGeneration, "content generation", fmt.Errorf("no content generator provided"))
	}
	generated, err := opts.Provider.Generate(ctx, promptText, provider.Options{
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return nil, stageErr(KindGeneration, "content generation", err)
	}

	// Stage 4: quality enforcement.
	files, err := m.quality.Enforce(generated.Files)
	if err != nil {
		return nil, stageErr(KindGeneration, "quality enforcement", err)
	}

	// Stage 5: validation, or the trivially-valid substitute.
	var validationResult *validation.Result
	if m.config.Validate {
		validationResult, err = m.validator.Validate(files)
		if err != nil {
			return nil, stageErr(KindValidation, "validation", err)
		}
	} else {
		validationResult = validation.TriviallyValid()
	}

	// Stage 6: conflict detection.
	conflicts, err := conflict.Detect(files, targetPath)
	if err != nil {
		return nil, stageErr(KindGeneration, "conflict detection", err)
	}

	// Stage 7: optional review.
	var rev *review.Review
	if m.config.Review {
		rev, err = m.reviewer.Run(s, files)
		if err != nil {
			return nil, stageErr(KindGeneration, "review", err)
		}
	}

	// Stage 8: gated write. The gate is absolute and independent of the
	// conflict and review outcomes.
	resolved := 0
	if !m.config.DryRun && validationResult.Valid {
		resolved, err = m.write(files, conflicts, targetPath)
		if err != nil {
			return nil, stageErr(KindWrite, "write", err)
		}
	}

	return &GenerationResult{
		Plan:       plan,
		Files:      files,
		Validation: validationResult,
		Conflicts:  conflicts,
		Review:     rev,
		Stats: Stats{
			TokensUsed:        generated.TokensUsed,
			TimeElapsed:       time.Since(start),
			FilesGenerated:    len(files),
			LinesGenerated:    countLines(files),
			ConflictsDetected: len(conflicts),
			ConflictsResolved: resolved,
		},
	}, nil
}

// write resolves conflicted files through the configured strategy and
// commits the rest as a staged batch.
func (m *Manager) write(files []provider.GeneratedFile, conflicts []conflict.FileConflictInfo, targetPath string) (int, error) {
	conflicted := make(map[string]conflict.FileConflictInfo, len(conflicts))
	for _, c := range conflicts {
		conflicted[c.Path] = c
	}

	staging := writer.NewStaging()
	resolved := 0

	for _, f := range files {
		resolvedPath := filepath.Join(targetPath, f.Path)
		if c, ok := conflicted[resolvedPath]; ok {
			if _, err := conflict.Resolve(c, m.config.ConflictStrategy, f.Content); err != nil {
				return resolved, err
			}
			resolved++
			continue
		}
		staging.Add(resolvedPath, []byte(f.Content), 0644)
	}

	if err := staging.Commit(); err != nil {
		return resolved, err
	}
	return resolved, nil
}

func countLines(files []provider.GeneratedFile) int {
	total := 0
	for _, f := range files {
		total += strings.Count(f.Content, "\n")
	}
	return total
}
