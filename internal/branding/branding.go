// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ToolName    string `yaml:"tool_name"`
	ToolURL     string `yaml:"tool_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "lc-dir",
			Description: "Copy all non-git-ignored files under a directory to your clipboard via llm-context",
			HomeDir:     ".lc-dir",
			EnvPrefix:   "LCDIR",
			ToolName:    "llm-context",
			ToolURL:     "https://github.com/cyberchitta/llm-context.py",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "lc-dir").
func CLIName() string { load(); return defaults.CLIName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".lc-dir").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LCDIR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ToolName returns the name of the external context-extraction tool.
func ToolName() string { load(); return defaults.ToolName }

// ToolURL returns where users can find installation instructions for the
// external tool.
func ToolURL() string { load(); return defaults.ToolURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("RULE_NAME") → "LCDIR_RULE_NAME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
