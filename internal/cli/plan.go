package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	clierrors "github.com/schoolboyqueue/specforge/internal/errors"
	"github.com/schoolboyqueue/specforge/internal/planner"
)

var planCmd = &cobra.Command{
	Use:     "plan <spec-file>",
	Aliases: []string{"p"},
	Short:   "Show the generation plan for a specification",
	Long: `Extract and print the generation plan for a specification without
running generation. Shows the ordered steps, their dependency chain, and
the constraints inferred from acceptance criteria.`,
	Example: `  specforge plan specs/auth.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			cliErr := clierrors.MissingSpecArgument()
			clierrors.PrintError(cliErr)
			return cliErr
		}

		s, err := loadSpec(args[0])
		if err != nil {
			return err
		}

		plan, err := planner.Process(s)
		if err != nil {
			cliErr := clierrors.WrapWithMessage(err, clierrors.Runtime, "plan extraction failed")
			clierrors.PrintError(cliErr)
			return cliErr
		}

		printPlan(plan)
		return nil
	},
}

func printPlan(plan *planner.GenerationPlan) {
	bold := color.New(color.Bold)

	bold.Printf("Plan %s (spec %s)\n\n", plan.ID, plan.SpecID)

	bold.Println("Steps:")
	for i, step := range plan.Steps {
		fmt.Printf("  %d. %s", i+1, step.ID)
		if step.Priority != "" {
			fmt.Printf(" [%s]", step.Priority)
		}
		fmt.Println()
		if step.Description != "" {
			fmt.Printf("     %s\n", step.Description)
		}
		for _, ac := range step.AcceptanceCriteria {
			fmt.Printf("     - %s: when %s, then %s\n", ac.ID, ac.When, ac.Then)
		}
	}

	if len(plan.Dependencies) > 0 {
		fmt.Println()
		bold.Println("Order:")
		for _, dep := range plan.Dependencies {
			fmt.Printf("  %s before %s\n", dep.First, dep.Second)
		}
	}

	if len(plan.Constraints) > 0 {
		fmt.Println()
		bold.Println("Constraints:")
		for _, constraint := range plan.Constraints {
			fmt.Printf("  [%s] %s\n", constraint.Kind, constraint.Description)
		}
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
