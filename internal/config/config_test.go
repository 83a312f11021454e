package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "peppy-cfg") {
		t.Errorf("GetConfigDir() = %v, should contain 'peppy-cfg'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "peppy-cfg"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	v, err := NewViper()
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}

	s, err := Load(v, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dir := filepath.Join(xdg, "peppy-cfg")
	if want := filepath.Join(dir, DefaultLabelsFile); s.LabelsPath != want {
		t.Errorf("LabelsPath = %v, want %v", s.LabelsPath, want)
	}
	if want := filepath.Join(dir, DefaultStateFile); s.StatePath != want {
		t.Errorf("StatePath = %v, want %v", s.StatePath, want)
	}
	if s.Watch {
		t.Error("Watch should default to false")
	}
	if s.ConfigFile != "" {
		t.Errorf("ConfigFile = %v, want empty", s.ConfigFile)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "peppy.yaml")
	content := `labels: i18n/labels.properties
languages: /srv/peppy/languages.yaml
state: state.yaml
language: German
watch: true
log-level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	v, err := NewViper()
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}

	s, err := Load(v, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(dir, "i18n", "labels.properties"); s.LabelsPath != want {
		t.Errorf("LabelsPath = %v, want %v", s.LabelsPath, want)
	}
	if s.LanguagesPath != "/srv/peppy/languages.yaml" {
		t.Errorf("LanguagesPath = %v, want absolute path unchanged", s.LanguagesPath)
	}
	if s.Language != "German" {
		t.Errorf("Language = %v, want German", s.Language)
	}
	if !s.Watch {
		t.Error("Watch = false, want true")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", s.LogLevel)
	}
	if len(s.WatchedFiles()) != 3 {
		t.Errorf("WatchedFiles() len = %d, want 3", len(s.WatchedFiles()))
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v, err := NewViper()
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}

	if _, err := Load(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing explicit file should fail")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PEPPY_CFG_LANGUAGE", "French")
	t.Setenv("PEPPY_CFG_LOG_LEVEL", "warn")

	v, err := NewViper()
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}

	s, err := Load(v, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Language != "French" {
		t.Errorf("Language = %v, want French", s.Language)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", s.LogLevel)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr bool
	}{
		{"complete", Settings{LabelsPath: "a", LanguagesPath: "b", StatePath: "c"}, false},
		{"no labels", Settings{LanguagesPath: "b", StatePath: "c"}, true},
		{"no languages", Settings{LabelsPath: "a", StatePath: "c"}, true},
		{"no state", Settings{LabelsPath: "a", LanguagesPath: "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
