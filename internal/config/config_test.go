package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.RuleName != DefaultRuleName {
		t.Errorf("RuleName = %q, want %q", s.RuleName, DefaultRuleName)
	}
	if s.StateDir != DefaultStateDir {
		t.Errorf("StateDir = %q, want %q", s.StateDir, DefaultStateDir)
	}
	if s.MarkerFile != DefaultMarkerFile {
		t.Errorf("MarkerFile = %q, want %q", s.MarkerFile, DefaultMarkerFile)
	}
	if s.SelectMode != SelectAuto {
		t.Errorf("SelectMode = %q, want %q", s.SelectMode, SelectAuto)
	}
	if s.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "rule_name: my-rule\nselect_mode: First\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.RuleName != "my-rule" {
		t.Errorf("RuleName = %q, want my-rule", s.RuleName)
	}
	if s.SelectMode != SelectFirst {
		t.Errorf("SelectMode = %q, want %q", s.SelectMode, SelectFirst)
	}
	if !s.Debug {
		t.Error("Debug = false, want true")
	}
	if s.StateDir != DefaultStateDir {
		t.Errorf("StateDir = %q, want default %q", s.StateDir, DefaultStateDir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rule_name: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LCDIR_RULE_NAME", "from-env")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.RuleName != "from-env" {
		t.Errorf("RuleName = %q, want from-env", s.RuleName)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad select mode", "select_mode: sometimes\n", "select_mode"},
		{"rule name with slash", "rule_name: a/b\n", "rule_name"},
		{"empty state dir", "state_dir: \"\"\n", "state_dir"},
		{"malformed yaml", "rule_name: [\n", "reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFilePath(t *testing.T) {
	if got := FilePath(); filepath.Base(got) != "config.yaml" {
		t.Errorf("FilePath() = %q, want base config.yaml", got)
	}
}
