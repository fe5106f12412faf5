package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Editor.RotateDegrees != 10 {
		t.Errorf("expected rotate step 10, got %v", cfg.Editor.RotateDegrees)
	}
	if cfg.Editor.ScalePercent != 0.25 {
		t.Errorf("expected scale step 0.25, got %v", cfg.Editor.ScalePercent)
	}
	if cfg.Editor.PickRadius != 10 {
		t.Errorf("expected pick radius 10, got %v", cfg.Editor.PickRadius)
	}
	if cfg.Editor.CurveSamples != 100 {
		t.Errorf("expected 100 curve samples, got %d", cfg.Editor.CurveSamples)
	}

	if cfg.Export.Prefix != "snap" {
		t.Errorf("expected export prefix 'snap', got %s", cfg.Export.Prefix)
	}
	if cfg.Keys["insert"] != "I" || cfg.Keys["snapshot"] != "Space" {
		t.Errorf("unexpected default bindings: %v", cfg.Keys)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1024
  height: 768
  fullscreen: true

editor:
  rotate_degrees: 15
  scale_percent: 0.1

export:
  dir: "/tmp/snaps"
  png: true

keys:
  insert: "N"

logging:
  level: "debug"
  log_file: "vecedit.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Editor.RotateDegrees != 15 {
		t.Errorf("expected rotate step 15, got %v", cfg.Editor.RotateDegrees)
	}
	if cfg.Editor.ScalePercent != 0.1 {
		t.Errorf("expected scale step 0.1, got %v", cfg.Editor.ScalePercent)
	}
	// Unset fields keep their defaults
	if cfg.Editor.ZoomIn != 1.2 {
		t.Errorf("expected zoom_in default 1.2, got %v", cfg.Editor.ZoomIn)
	}
	if cfg.Export.Dir != "/tmp/snaps" || !cfg.Export.PNG {
		t.Errorf("unexpected export config: %+v", cfg.Export)
	}
	if cfg.Keys["insert"] != "N" {
		t.Errorf("expected insert bound to N, got %q", cfg.Keys["insert"])
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "vecedit.log" {
		t.Errorf("expected log file 'vecedit.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"scale step too large", func(c *Config) { c.Editor.ScalePercent = 1 }},
		{"negative zoom", func(c *Config) { c.Editor.ZoomOut = -1 }},
		{"one curve sample", func(c *Config) { c.Editor.CurveSamples = 1 }},
		{"animation type out of range", func(c *Config) { c.Editor.AnimationType = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1920
				*flagHeight = 1080
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "export flags",
			setup: func() {
				*flagExportDir = "out"
				*flagPNG = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Dir != "out" || !cfg.Export.PNG {
					t.Errorf("unexpected export config: %+v", cfg.Export)
				}
			},
			teardown: func() {
				*flagExportDir = ""
				*flagPNG = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from the flag, height from the file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Editor.RotateDegrees = 45
	cfg.Keys["quit"] = "Escape"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Editor.RotateDegrees != 45 {
		t.Errorf("expected rotate step 45, got %v", loaded.Editor.RotateDegrees)
	}
	if loaded.Keys["quit"] != "Escape" {
		t.Errorf("expected quit bound to Escape, got %q", loaded.Keys["quit"])
	}
}

func TestLoadFromFileRebindsKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
keys:
  dump: x
  quit: ""
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Keys["dump"] != "x" {
		t.Errorf("expected dump bound to x, got %q", cfg.Keys["dump"])
	}
	if cfg.Keys["export_as"] != "" {
		t.Errorf("export_as should lose X to dump, still bound to %q", cfg.Keys["export_as"])
	}
	if cfg.Keys["quit"] != "" {
		t.Errorf("expected quit unbound, got %q", cfg.Keys["quit"])
	}
	if cfg.Keys["insert"] != "I" {
		t.Errorf("untouched binding changed: insert = %q", cfg.Keys["insert"])
	}
	if len(cfg.Keys) != len(DefaultKeys()) {
		t.Errorf("expected %d actions, got %d", len(DefaultKeys()), len(cfg.Keys))
	}

	seen := make(map[string]string)
	for action, key := range cfg.Keys {
		if key == "" {
			continue
		}
		k := strings.ToUpper(key)
		if prev, ok := seen[k]; ok {
			t.Errorf("key %q bound to both %s and %s", key, prev, action)
		}
		seen[k] = action
	}
}

func TestOverlayKeysKeepsUserDuplicates(t *testing.T) {
	base := map[string]string{"idle": "E", "quit": "Q"}
	user := map[string]string{"idle": "Z", "quit": "Z"}

	got := overlayKeys(base, user)
	if got["idle"] != "Z" || got["quit"] != "Z" {
		t.Errorf("user bindings should be kept as written, got %v", got)
	}
	if base["idle"] != "E" {
		t.Error("overlay modified the base map")
	}
}

func TestSaveWritesDefaultPath(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("config dir is not taken from XDG_CONFIG_HOME here")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Keys["dump"] = "X"
	cfg.Keys["export_as"] = ""
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if path := findConfigFile(); path != DefaultPath() {
		t.Fatalf("expected the saved file to be found at %s, got %q", DefaultPath(), path)
	}
	loaded := Default()
	if err := loadFromFile(loaded, DefaultPath()); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Keys["dump"] != "X" || loaded.Keys["export_as"] != "" {
		t.Errorf("key map did not survive a save, dump=%q export_as=%q", loaded.Keys["dump"], loaded.Keys["export_as"])
	}
}
