// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Editor  EditorConfig      `yaml:"editor"`
	Export  ExportConfig      `yaml:"export"`
	Keys    map[string]string `yaml:"keys"` // action name -> SDL key name
	Logging LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// EditorConfig holds the step sizes of the interactive commands.
type EditorConfig struct {
	RotateDegrees float64 `yaml:"rotate_degrees"`
	ScalePercent  float32 `yaml:"scale_percent"`
	ZoomIn        float32 `yaml:"zoom_in"`
	ZoomOut       float32 `yaml:"zoom_out"`
	PanFraction   float32 `yaml:"pan_fraction"`
	PickRadius    float32 `yaml:"pick_radius"`
	CurveSamples  int     `yaml:"curve_samples"`
	AnimationType int     `yaml:"animation_type"`
}

// ExportConfig holds snapshot settings.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	PNG    bool   `yaml:"png"` // also write a raster preview next to the SVG
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultKeys returns the stock key bindings.
func DefaultKeys() map[string]string {
	return map[string]string{
		"idle":       "E",
		"insert":     "I",
		"translate":  "O",
		"delete":     "P",
		"colorize":   "C",
		"animate":    "U",
		"bezier":     "Y",
		"quit":       "Q",
		"rotate_ccw": "H",
		"rotate_cw":  "J",
		"scale_up":   "K",
		"scale_down": "L",
		"pan_up":     "W",
		"pan_left":   "A",
		"pan_down":   "S",
		"pan_right":  "D",
		"zoom_in":    "=",
		"zoom_out":   "-",
		"snapshot":   "Space",
		"dump":       "V",
		"export_as":  "X",
		"digit1":     "1",
		"digit2":     "2",
		"digit3":     "3",
		"digit4":     "4",
		"digit5":     "5",
		"digit6":     "6",
		"digit7":     "7",
		"digit8":     "8",
		"digit9":     "9",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "vecedit",
			Width:  640,
			Height: 480,
			VSync:  true,
			// Samples matches the 8x supersampling the editor was tuned with.
			Samples: 8,
		},
		Editor: EditorConfig{
			RotateDegrees: 10,
			ScalePercent:  0.25,
			ZoomIn:        1.2,
			ZoomOut:       0.8,
			PanFraction:   0.4,
			PickRadius:    10,
			CurveSamples:  100,
			AnimationType: 1,
		},
		Export: ExportConfig{
			Dir:    ".",
			Prefix: "snap",
		},
		Keys: DefaultKeys(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
