// specforge - Spec-Driven Code Generation
// Source: https://github.com/schoolboyqueue/specforge

// Package cli provides Cobra-based CLI commands for the specforge code
// generation tool. It defines the user-facing commands for running the
// generation pipeline (generate), inspecting plans (plan), rendering
// templates (render), and printing version information.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "specforge",
	Short: "specforge spec-driven code generation",
	Long: `specforge spec-driven code generation

Turn YAML specifications into code. Extract a generation plan from
requirements, build a prompt, generate content through an AI CLI or
local templates, then validate before anything touches disk.

Source: https://github.com/schoolboyqueue/specforge`,
	Example: `  # Generate code from a specification
  specforge generate specs/auth.yaml --target ./out

  # Preview without writing anything
  specforge generate specs/auth.yaml --dry-run

  # Generate from local templates instead of an AI backend
  specforge generate specs/auth.yaml --templates --set name=auth

  # Inspect the generation plan for a spec
  specforge plan specs/auth.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".specforge.json", "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-progress", false, "Disable progress indicators")
}
