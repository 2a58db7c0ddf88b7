package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders a CLIError with colors for terminal display
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	heading := color.New(color.FgRed, color.Bold).Sprint(err.Category.String())
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading, err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", color.CyanString(err.Usage))
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", color.YellowString("→"), step)
		}
	}

	return b.String()
}

// FormatErrorPlain renders a CLIError without ANSI escape codes
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", err.Category.String(), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// FormatSimpleError formats a plain error under a category heading
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes the formatted error to stderr
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
