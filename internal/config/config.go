package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lcdir-labs/lcdir/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyRuleName   = "rule_name"
	KeyStateDir   = "state_dir"
	KeyMarkerFile = "marker_file"
	KeySelectMode = "select_mode"
	KeyDebug      = "debug"
)

// Defaults applied when neither the config file nor the environment set a key.
const (
	DefaultRuleName   = "temp-lc-dir-rule"
	DefaultStateDir   = ".llm-context"
	DefaultMarkerFile = ".gitignore"
	DefaultSelectMode = SelectAuto
)

// Selection modes for ambiguous folder names.
const (
	SelectAuto   = "auto"
	SelectPrompt = "prompt"
	SelectFirst  = "first"
	SelectFail   = "fail"
)

// Settings is the resolved configuration for a single invocation.
type Settings struct {
	RuleName   string `mapstructure:"rule_name"`
	StateDir   string `mapstructure:"state_dir"`
	MarkerFile string `mapstructure:"marker_file"`
	SelectMode string `mapstructure:"select_mode"`
	Debug      bool   `mapstructure:"debug"`
}

// Dir returns the path to the user config directory (~/.lc-dir/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.lc-dir/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from the config file at path and the environment.
// Environment variables (LCDIR_RULE_NAME, ...) take precedence over the file.
// A missing file is not an error.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyRuleName, DefaultRuleName)
	v.SetDefault(KeyStateDir, DefaultStateDir)
	v.SetDefault(KeyMarkerFile, DefaultMarkerFile)
	v.SetDefault(KeySelectMode, DefaultSelectMode)
	v.SetDefault(KeyDebug, false)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	s.SelectMode = strings.ToLower(strings.TrimSpace(s.SelectMode))
	switch s.SelectMode {
	case SelectAuto, SelectPrompt, SelectFirst, SelectFail:
	default:
		return fmt.Errorf("invalid %s %q: expected one of %s, %s, %s, %s",
			KeySelectMode, s.SelectMode, SelectAuto, SelectPrompt, SelectFirst, SelectFail)
	}

	if s.RuleName == "" || strings.ContainsAny(s.RuleName, `/\`) {
		return fmt.Errorf("invalid %s %q: must be a plain file name", KeyRuleName, s.RuleName)
	}
	if s.StateDir == "" {
		return fmt.Errorf("%s cannot be empty", KeyStateDir)
	}
	if s.MarkerFile == "" {
		return fmt.Errorf("%s cannot be empty", KeyMarkerFile)
	}
	return nil
}
