// specforge - Spec-Driven Code Generation
// Source: https://github.com/schoolboyqueue/specforge

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the specforge CLI tool configuration
type Configuration struct {
	ProjectRoot      string `koanf:"project_root"`
	Validate         bool   `koanf:"validate"`
	Review           bool   `koanf:"review"`
	DryRun           bool   `koanf:"dry_run"`
	ConflictStrategy string `koanf:"conflict_strategy" validate:"required,oneof=skip overwrite merge"`
	MaxRetries       int    `koanf:"max_retries" validate:"min=0,max=10"`
	UseTemplates     bool   `koanf:"use_templates"`

	ProviderCmd       string   `koanf:"provider_cmd" validate:"required"`
	ProviderArgs      []string `koanf:"provider_args"`
	CustomProviderCmd string   `koanf:"custom_provider_cmd"`
	Timeout           int      `koanf:"timeout" validate:"omitempty,min=1,max=604800"`

	Model        string  `koanf:"model"`
	Temperature  float64 `koanf:"temperature" validate:"min=0,max=2"`
	MaxTokens    int     `koanf:"max_tokens" validate:"min=0"`
	TemplatesDir string  `koanf:"templates_dir"`

	ShowProgress bool `koanf:"show_progress"` // Show progress indicators (spinners) during execution
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".specforge", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("SPECFORGE_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Validate custom_provider_cmd if specified
	if cfg.CustomProviderCmd != "" && !strings.Contains(cfg.CustomProviderCmd, "{{PROMPT}}") {
		return nil, fmt.Errorf("custom_provider_cmd must contain {{PROMPT}} placeholder")
	}

	// Expand home directory in paths
	cfg.ProjectRoot = expandHomePath(cfg.ProjectRoot)
	cfg.TemplatesDir = expandHomePath(cfg.TemplatesDir)

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: SPECFORGE_MAX_RETRIES -> max_retries
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SPECFORGE_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
