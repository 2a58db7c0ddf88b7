package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/schoolboyqueue/specforge/internal/errors"
	"github.com/schoolboyqueue/specforge/internal/template"
)

var renderCmd = &cobra.Command{
	Use:   "render <template-file>",
	Short: "Render a single template with bindings",
	Long: `Render one template file through the placeholder engine and print
the result to stdout, or write it with --out. Bindings are supplied as
repeated --set key=value flags; placeholder names with case-transform
suffixes (name_snake, NameCamel, NAME) resolve from the same base key.`,
	Example: `  specforge render templates/model.go.tmpl --set name=userAccount
  specforge render templates/model.go.tmpl --set name=auth --out internal/auth/model.go`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			cliErr := clierrors.NewArgumentErrorWithUsage(
				"no template file provided",
				"specforge render <template-file> [--set key=value]...",
				"pass the path to a template file",
			)
			clierrors.PrintError(cliErr)
			return cliErr
		}

		body, err := os.ReadFile(args[0])
		if err != nil {
			cliErr := clierrors.NewPrerequisiteError(
				fmt.Sprintf("template file not found: %s", args[0]),
				"check the path for typos",
			)
			clierrors.PrintError(cliErr)
			return cliErr
		}

		engine := template.NewEngine()
		bindings, _ := cmd.Flags().GetStringArray("set")
		for _, binding := range bindings {
			key, value, found := strings.Cut(binding, "=")
			if !found {
				cliErr := clierrors.NewArgumentError(
					fmt.Sprintf("invalid --set binding %q", binding),
					"use --set key=value",
				)
				clierrors.PrintError(cliErr)
				return cliErr
			}
			engine.Bind(key, value)
		}

		result, err := engine.Render(string(body))
		if err != nil {
			cliErr := clierrors.WrapWithMessage(err, clierrors.Runtime, "render failed")
			clierrors.PrintError(cliErr)
			return cliErr
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Print(result.Output)
			return nil
		}
		if err := os.WriteFile(out, []byte(result.Output), 0644); err != nil {
			cliErr := clierrors.TargetNotWritable(out)
			clierrors.PrintError(cliErr)
			return cliErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArray("set", nil, "Template binding as key=value (repeatable)")
	renderCmd.Flags().String("out", "", "Write output to this path instead of stdout")
}
