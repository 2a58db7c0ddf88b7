package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schoolboyqueue/specforge/internal/config"
	"github.com/schoolboyqueue/specforge/internal/conflict"
	clierrors "github.com/schoolboyqueue/specforge/internal/errors"
	"github.com/schoolboyqueue/specforge/internal/pipeline"
	"github.com/schoolboyqueue/specforge/internal/progress"
	"github.com/schoolboyqueue/specforge/internal/provider"
	"github.com/schoolboyqueue/specforge/internal/spec"
	"github.com/schoolboyqueue/specforge/internal/template"
)

var generateCmd = &cobra.Command{
	Use:     "generate <spec-file>",
	Aliases: []string{"gen", "g"},
	Short:   "Generate code from a specification",
	Long: `Run the full generation pipeline for a specification file.

The generate command will:
- Extract a generation plan from the spec's requirements and criteria
- Build a prompt and generate content through the configured provider
- Normalize and validate the generated files
- Detect conflicts with existing files and resolve them per strategy
- Write to the target path only when validation passes`,
	Example: `  # Generate against the current directory
  specforge generate specs/auth.yaml

  # Generate into a separate tree, overwriting conflicts
  specforge generate specs/auth.yaml --target ./out --strategy overwrite

  # Preview the run without writing
  specforge generate specs/auth.yaml --dry-run

  # Generate from local templates with bindings
  specforge generate specs/auth.yaml --templates --set name=auth --set Table=users`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			cliErr := clierrors.MissingSpecArgument()
			clierrors.PrintError(cliErr)
			return cliErr
		}
		specPath := args[0]

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			cliErr := clierrors.ConfigParseError(configPath, err)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		applyGenerateFlags(cmd, cfg)

		s, err := loadSpec(specPath)
		if err != nil {
			return err
		}

		strategy, err := conflict.ParseStrategy(cfg.ConflictStrategy)
		if err != nil {
			cliErr := clierrors.InvalidConflictStrategy(cfg.ConflictStrategy)
			clierrors.PrintError(cliErr)
			return cliErr
		}

		bindings, _ := cmd.Flags().GetStringArray("set")
		gen, err := buildProvider(cfg, s, bindings)
		if err != nil {
			clierrors.PrintError(clierrors.AsCLIError(err))
			return err
		}

		target, _ := cmd.Flags().GetString("target")
		manager := pipeline.NewManager(pipeline.Config{
			ProjectRoot:      cfg.ProjectRoot,
			Validate:         cfg.Validate,
			Review:           cfg.Review,
			DryRun:           cfg.DryRun,
			ConflictStrategy: strategy,
			MaxRetries:       cfg.MaxRetries,
			UseTemplates:     cfg.UseTemplates,
		})

		noProgress, _ := cmd.Flags().GetBool("no-progress")
		display := startRunProgress(cfg, noProgress, s.Name)

		result, err := manager.GenerateWithRetries(cmd.Context(), s, target, pipeline.Options{
			Provider:    gen,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		})
		if err != nil {
			finishRunProgress(display, err)
			attempts := cfg.MaxRetries
			if attempts < 1 {
				attempts = 1
			}
			cliErr := clierrors.RetriesExhausted(attempts, err)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		finishRunProgress(display, nil)

		printRunSummary(cfg, result)

		if !result.Validation.Valid {
			cliErr := clierrors.ValidationFailed(len(result.Validation.Errors))
			clierrors.PrintError(cliErr)
			return cliErr
		}
		return nil
	},
}

// applyGenerateFlags overlays explicitly-set flags on the loaded config.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Configuration) {
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	if cmd.Flags().Changed("validate") {
		cfg.Validate, _ = cmd.Flags().GetBool("validate")
	}
	if cmd.Flags().Changed("review") {
		cfg.Review, _ = cmd.Flags().GetBool("review")
	}
	if cmd.Flags().Changed("strategy") {
		cfg.ConflictStrategy, _ = cmd.Flags().GetString("strategy")
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries, _ = cmd.Flags().GetInt("max-retries")
	}
	if cmd.Flags().Changed("templates") {
		cfg.UseTemplates, _ = cmd.Flags().GetBool("templates")
	}
	if cmd.Flags().Changed("model") {
		cfg.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetInt("timeout")
	}
}

// loadSpec loads and validates the specification, mapping failures to CLI errors.
func loadSpec(path string) (*spec.Specification, error) {
	if _, err := os.Stat(path); err != nil {
		cliErr := clierrors.MissingSpecFile(path)
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}
	s, err := spec.Load(path)
	if err != nil {
		cliErr := clierrors.SpecParseError(path, err)
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}
	return s, nil
}

// buildProvider selects the template-backed or command-backed generator.
func buildProvider(cfg *config.Configuration, s *spec.Specification, bindings []string) (provider.ContentGenerator, error) {
	if cfg.UseTemplates {
		templates, err := provider.LoadTemplatesDir(cfg.TemplatesDir)
		if err != nil {
			return nil, clierrors.TemplatesDirNotFound(cfg.TemplatesDir)
		}

		engine := template.NewEngine()
		engine.Bind("name", s.Name)
		engine.Bind("spec_id", s.ID)
		for _, binding := range bindings {
			key, value, found := strings.Cut(binding, "=")
			if !found {
				return nil, clierrors.NewArgumentError(
					fmt.Sprintf("invalid --set binding %q", binding),
					"use --set key=value",
				)
			}
			engine.Bind(key, value)
		}
		return provider.NewTemplateProvider(engine, templates), nil
	}

	if cfg.CustomProviderCmd == "" {
		if _, err := exec.LookPath(cfg.ProviderCmd); err != nil {
			return nil, clierrors.ProviderCliNotFound(cfg.ProviderCmd)
		}
	}
	return &provider.CommandProvider{
		Command:       cfg.ProviderCmd,
		Args:          cfg.ProviderArgs,
		CustomCommand: cfg.CustomProviderCmd,
		Timeout:       cfg.Timeout,
	}, nil
}

// startRunProgress begins a single run-level spinner when enabled.
func startRunProgress(cfg *config.Configuration, noProgress bool, name string) *progress.ProgressDisplay {
	if !cfg.ShowProgress || noProgress {
		return nil
	}
	display := progress.NewProgressDisplay(progress.DetectTerminalCapabilities())
	display.StartStage(progress.StageInfo{
		Name:        "generate " + name,
		Number:      1,
		TotalStages: 1,
		Status:      progress.StageInProgress,
		MaxAttempts: cfg.MaxRetries,
	})
	return display
}

func finishRunProgress(display *progress.ProgressDisplay, err error) {
	if display == nil {
		return
	}
	stage := progress.StageInfo{Name: "generate", Number: 1, TotalStages: 1}
	if err != nil {
		display.FailStage(stage, err)
		return
	}
	display.CompleteStage(stage)
}

// printRunSummary prints run statistics, validation errors, conflicts, and
// review comments.
func printRunSummary(cfg *config.Configuration, result *pipeline.GenerationResult) {
	bold := color.New(color.Bold)

	bold.Println("Generation summary")
	fmt.Printf("  files:     %d (%d lines)\n", result.Stats.FilesGenerated, result.Stats.LinesGenerated)
	fmt.Printf("  conflicts: %d detected, %d resolved\n", result.Stats.ConflictsDetected, result.Stats.ConflictsResolved)
	if result.Stats.TokensUsed > 0 {
		fmt.Printf("  tokens:    %d\n", result.Stats.TokensUsed)
	}
	fmt.Printf("  elapsed:   %s\n", result.Stats.TimeElapsed.Round(time.Millisecond))

	if cfg.DryRun {
		color.Yellow("dry run: nothing was written")
	}

	if !result.Validation.Valid {
		color.Red("validation errors:")
		for _, validationErr := range result.Validation.Errors {
			fmt.Printf("  %s\n", validationErr.String())
		}
	}

	if result.Review != nil {
		if result.Review.Approved {
			color.Green("review: approved")
		} else {
			color.Red("review: changes requested")
		}
		for _, comment := range result.Review.Comments {
			fmt.Printf("  %s: %s\n", comment.Path, comment.Message)
		}
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("target", "t", ".", "Target path for generated files")
	generateCmd.Flags().Bool("dry-run", false, "Run the pipeline without writing files")
	generateCmd.Flags().Bool("validate", true, "Validate generated files before writing")
	generateCmd.Flags().Bool("review", false, "Run the review stage after generation")
	generateCmd.Flags().StringP("strategy", "s", "", "Conflict strategy: skip, overwrite, or merge")
	generateCmd.Flags().IntP("max-retries", "r", 0, "Override max retry attempts (0 = use config)")
	generateCmd.Flags().Bool("templates", false, "Generate from local templates instead of the AI provider")
	generateCmd.Flags().StringArray("set", nil, "Template binding as key=value (repeatable)")
	generateCmd.Flags().String("model", "", "Model identifier passed to the provider")
	generateCmd.Flags().Int("timeout", 0, "Provider timeout in seconds (0 = use config)")
}
