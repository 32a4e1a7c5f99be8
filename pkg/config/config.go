// Package config loads clock face settings from an optional YAML file.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/clockface/pkg/clockface"
	"github.com/go-drift/clockface/pkg/errors"
	"github.com/go-drift/clockface/pkg/rendering"
)

// DefaultFileName is looked up in a directory by [LoadOptional].
const DefaultFileName = "clockface.yaml"

// Config represents the optional clockface.yaml configuration.
type Config struct {
	Clock   ClockConfig   `yaml:"clock"`
	Display DisplayConfig `yaml:"display"`
}

// ClockConfig contains the clock face options.
type ClockConfig struct {
	AnimationDurationMillis *int     `yaml:"animationDurationMillis,omitempty"`
	FaceColor               string   `yaml:"faceColor,omitempty"`
	RimColor                string   `yaml:"rimColor,omitempty"`
	RimStrokeWidth          *float64 `yaml:"rimStrokeWidth,omitempty"`
	StartTime               string   `yaml:"startTime,omitempty"`
}

// DisplayConfig contains output surface settings.
type DisplayConfig struct {
	Density *float64 `yaml:"density,omitempty"`
	Size    int      `yaml:"size,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Style     clockface.Style
	Density   float64
	Size      int
	StartTime clockface.ClockTime
}

// DefaultSize is the square output size in pixels.
const DefaultSize = 256

// LoadOptional reads path if present. A path naming a directory is joined
// with DefaultFileName. A missing file yields an empty config.
func LoadOptional(path string) (*Config, error) {
	const op = "config.LoadOptional"
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return cfg, nil
}

// Parse decodes YAML from r. Unknown keys are rejected. Empty input
// yields an empty config.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// Resolve applies defaults to cfg and validates the result.
func Resolve(cfg *Config) (*Resolved, error) {
	const op = "config.Resolve"
	if cfg == nil {
		cfg = &Config{}
	}

	density := 1.0
	if cfg.Display.Density != nil {
		if *cfg.Display.Density <= 0 {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("display.density must be positive, got %v", *cfg.Display.Density))
		}
		density = *cfg.Display.Density
	}

	size := cfg.Display.Size
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("display.size must be positive, got %d", size))
	}

	style := clockface.DefaultStyle(density)
	c := cfg.Clock
	if c.AnimationDurationMillis != nil {
		if *c.AnimationDurationMillis <= 0 {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("clock.animationDurationMillis must be positive, got %d", *c.AnimationDurationMillis))
		}
		style.AnimationDuration = time.Duration(*c.AnimationDurationMillis) * time.Millisecond
	}
	if s := strings.TrimSpace(c.FaceColor); s != "" {
		col, err := rendering.ParseColor(s)
		if err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("clock.faceColor: %w", err))
		}
		style.FaceColor = col
	}
	if s := strings.TrimSpace(c.RimColor); s != "" {
		col, err := rendering.ParseColor(s)
		if err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("clock.rimColor: %w", err))
		}
		style.RimColor = col
	}
	if c.RimStrokeWidth != nil {
		if *c.RimStrokeWidth < 0 {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("clock.rimStrokeWidth must not be negative, got %v", *c.RimStrokeWidth))
		}
		style.RimStrokeWidth = clockface.DpToPx(*c.RimStrokeWidth, density)
	}

	var start clockface.ClockTime
	if s := strings.TrimSpace(c.StartTime); s != "" {
		t, err := clockface.ParseClockTime(s)
		if err != nil {
			return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("clock.startTime: %w", err))
		}
		start = t
	}

	return &Resolved{
		Style:     style,
		Density:   density,
		Size:      size,
		StartTime: start,
	}, nil
}

// Load reads and resolves the configuration at path.
func Load(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return Resolve(cfg)
}
