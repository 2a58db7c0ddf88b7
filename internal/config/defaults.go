package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"project_root":        "",
		"validate":            true,
		"review":              false,
		"dry_run":             false,
		"conflict_strategy":   "skip",
		"max_retries":         3,
		"use_templates":       false,
		"provider_cmd":        "claude",
		"provider_args":       []string{"-p"},
		"custom_provider_cmd": "",
		"timeout":             300,
		"model":               "",
		"temperature":         0.2,
		"max_tokens":          0,
		"templates_dir":       "./templates",
		"show_progress":       true,
	}
}
