package errors

import "fmt"

// MissingSpecArgument is returned when generate is invoked without a spec path
func MissingSpecArgument() *CLIError {
	return NewArgumentErrorWithUsage(
		"no specification file provided",
		"specforge generate <spec-file> [flags]",
		"pass the path to a YAML specification file",
		"run 'specforge generate --help' for all flags",
	)
}

// MissingSpecFile is returned when the spec path does not exist
func MissingSpecFile(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("specification file not found: %s", path),
		"check the path for typos",
		"create the specification file before generating",
	)
}

// SpecParseError wraps a YAML or structural failure in the spec file
func SpecParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("failed to parse specification %s: %v", path, err),
		Remediation: []string{
			"verify the file is valid YAML",
			"ensure id, name, and requirement ids are present",
		},
		Err: err,
	}
}

// ConfigFileNotFound is returned when an explicitly named config file is missing
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"create the file or drop the --config flag to use defaults",
	)
}

// ConfigParseError wraps a config loading failure
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to parse config %s: %v", path, err),
		Remediation: []string{
			"verify the file is valid JSON",
			"compare against the defaults printed by 'specforge config show'",
		},
		Err: err,
	}
}

// ProviderCliNotFound is returned when the configured provider command is not on PATH
func ProviderCliNotFound(cmd string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("provider command %q not found in PATH", cmd),
		fmt.Sprintf("install %s or point provider_cmd at another AI CLI", cmd),
		"use --templates to generate from local templates instead",
	)
}

// ProviderCliError wraps a provider invocation failure
func ProviderCliError(err error) *CLIError {
	return Wrap(err, Runtime,
		"re-run with --verbose to see the provider output",
		"check that the provider CLI is authenticated",
	)
}

// TimeoutError is returned when the provider exceeds its deadline
func TimeoutError(duration, command string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("command timed out after %s: %s", duration, command),
		"raise the timeout in config (timeout, in seconds)",
		"reduce the specification size per run",
	)
}

// InvalidConflictStrategy is returned for an unrecognized strategy name
func InvalidConflictStrategy(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unknown conflict strategy %q", name),
		"use one of: skip, overwrite, merge",
	)
}

// InvalidFlagCombination is returned for flag combinations that make no sense
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
	)
}

// TargetNotWritable is returned when output cannot be written
func TargetNotWritable(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("cannot write to target path: %s", path),
		"check directory permissions",
		"use --dry-run to preview without writing",
	)
}

// TemplatesDirNotFound is returned when --templates is set but the dir is missing
func TemplatesDirNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("templates directory not found: %s", path),
		"set templates_dir in config or create the directory",
	)
}

// ValidationFailed is returned when generated output failed validation
func ValidationFailed(errorCount int) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("generated output failed validation with %d error(s); nothing was written", errorCount),
		"inspect the validation errors above",
		"re-run to retry generation, or use --no-validate to bypass",
	)
}

// RetriesExhausted is returned when every generation attempt failed
func RetriesExhausted(attempts int, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("generation failed after %d attempt(s): %v", attempts, err),
		Remediation: []string{
			"raise max_retries in config",
			"check provider availability and authentication",
		},
		Err: err,
	}
}
