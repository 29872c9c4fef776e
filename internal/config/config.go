package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"quatview/internal/orient"

	"gopkg.in/yaml.v3"
)

// Config holds the window, input mode, rendering and capture settings.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// Mode is "manual" (numeric fields and Apply) or "presetCycle" (any
	// character key advances through the presets).
	Mode string `yaml:"mode"`

	// DisplayPrecision is the number of decimals in the orientation readout.
	// Unset means 7 in manual mode and full precision in preset mode; -1
	// always means full precision.
	DisplayPrecision *int `yaml:"displayPrecision,omitempty"`

	ShadowMapResolution int32 `yaml:"shadowMapResolution"`

	Capture CaptureConfig `yaml:"capture"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
	HighDPI   bool   `yaml:"highDPI"`
}

type CaptureConfig struct {
	Dir string `yaml:"dir"`
	// Scale multiplies the framebuffer size before encoding, in (0, 1].
	Scale   float64 `yaml:"scale"`
	Workers int     `yaml:"workers"`
}

const manualDecimals = 7

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Quaternion Rotation",
			TargetFPS: 60,
			HighDPI:   true,
		},
		Mode:                orient.ModeManual.String(),
		ShadowMapResolution: 2048,
		Capture: CaptureConfig{
			Dir:     "captures",
			Scale:   1,
			Workers: 2,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default when
// required is false. A file the user named explicitly should be required.
func LoadOrDefault(path string, required bool) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := orient.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("config: targetFPS %d must not be negative", c.Window.TargetFPS)
	}
	if c.ShadowMapResolution <= 0 {
		return fmt.Errorf("config: shadowMapResolution %d must be positive", c.ShadowMapResolution)
	}
	if c.Capture.Scale <= 0 || c.Capture.Scale > 1 {
		return fmt.Errorf("config: capture scale %g must be in (0, 1]", c.Capture.Scale)
	}
	if c.Capture.Workers <= 0 {
		return fmt.Errorf("config: capture workers %d must be positive", c.Capture.Workers)
	}
	return nil
}

// InputMode is the parsed Mode. Validate has already rejected bad names.
func (c Config) InputMode() orient.Mode {
	m, err := orient.ParseMode(c.Mode)
	if err != nil {
		return orient.ModeManual
	}
	return m
}

// Decimals is the readout precision for the configured mode.
func (c Config) Decimals() int {
	if c.DisplayPrecision != nil {
		if *c.DisplayPrecision < 0 {
			return orient.FullPrecision
		}
		return *c.DisplayPrecision
	}
	if c.InputMode() == orient.ModePresetCycle {
		return orient.FullPrecision
	}
	return manualDecimals
}

// Encode renders c as YAML, e.g. for writing a starter file.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
