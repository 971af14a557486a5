package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var fromYAML FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\nyaml:    %+v\nbuiltin: %+v", fromYAML, DefaultFlappyConfig())
	}

	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFlappyCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 500\ncourse:\n  name: open\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("gravity = %v, expected override 500", cfg.Physics.Gravity)
	}
	if cfg.Course.Name != "open" {
		t.Errorf("course name = %q, expected open", cfg.Course.Name)
	}
	// Keys not present in the file keep their defaults
	if cfg.Physics.AscendSpeed != DefaultFlappyConfig().Physics.AscendSpeed {
		t.Errorf("ascend speed = %v, expected default", cfg.Physics.AscendSpeed)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestParseFlappyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"bounce above one", "physics:\n  bounce: 1.5\n"},
		{"flyer below ground", "flyer:\n  y: 590\n"},
		{"inverted gap", "course:\n  pairs:\n    - {x: 100, gap_top: 300, gap_bottom: 200}\n"},
		{"zero playfield", "playfield:\n  width: 0\n"},
		{"generator without spacing", "course:\n  generator:\n    count: 3\n    spacing: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFlappy([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseFlappySyntaxError(t *testing.T) {
	_, err := ParseFlappy([]byte("physics: [unterminated"))
	if err == nil {
		t.Fatal("expected a YAML syntax error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/x/y.yaml"); got != filepath.Join(home, "x", "y.yaml") {
		t.Errorf("ExpandHome(~/x/y.yaml) = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}
