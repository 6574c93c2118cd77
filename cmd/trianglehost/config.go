// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/surfacekit/lifecycle"
	"github.com/gogpu/surfacekit/platform"
)

// maxConfigSize caps the host file size.
const maxConfigSize = 1 << 20

// Config is the optional host file given with -config.
//
// Example:
//
//	driver: recording
//	window: {title: demo, width: 1280, height: 720, scale: 2}
//	clear_color: [0, 0, 0.2, 1]
//	acquire_timeout: 500ms
//	surface_recovery: true
//	events:
//	  - resumed
//	  - resize 640x480
//	  - redraw
//	  - close
type Config struct {
	Driver               string       `yaml:"driver"`
	Window               WindowConfig `yaml:"window"`
	ClearColor           []float64    `yaml:"clear_color"`
	AcquireTimeout       string       `yaml:"acquire_timeout"`
	SurfaceRecovery      bool         `yaml:"surface_recovery"`
	KeepContextOnSuspend bool         `yaml:"keep_context_on_suspend"`
	PowerPreference      string       `yaml:"power_preference"`
	ForceFallbackAdapter bool         `yaml:"force_fallback_adapter"`
	Events               []string     `yaml:"events"`
}

// WindowConfig is the window section of Config.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// LoadConfig reads the host file at path. An empty path yields the zero
// Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config: %s is %d bytes, limit %d", path, info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a host file. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if n := len(c.ClearColor); n != 0 && n != 3 && n != 4 {
		return fmt.Errorf("config: clear_color wants 3 or 4 components, got %d", n)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 || c.Window.Scale < 0 {
		return fmt.Errorf("config: negative window geometry %dx%d@%g", c.Window.Width, c.Window.Height, c.Window.Scale)
	}
	if _, _, err := c.acquireTimeout(); err != nil {
		return err
	}
	if _, err := parsePower(c.PowerPreference); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.ScriptEvents(); err != nil {
		return err
	}
	return nil
}

// acquireTimeout parses acquire_timeout. set is false when the key is
// absent, so an explicit zero is passed on.
func (c Config) acquireTimeout() (d time.Duration, set bool, err error) {
	if c.AcquireTimeout == "" {
		return 0, false, nil
	}
	d, err = time.ParseDuration(c.AcquireTimeout)
	if err != nil {
		return 0, false, fmt.Errorf("config: acquire_timeout: %w", err)
	}
	return d, true, nil
}

// PlatformWindow returns the window configuration for the factory. Zero
// fields are filled in by the factory.
func (c Config) PlatformWindow() platform.WindowConfig {
	return platform.WindowConfig{
		Title:       c.Window.Title,
		Width:       c.Window.Width,
		Height:      c.Window.Height,
		ScaleFactor: c.Window.Scale,
	}
}

// ScriptEvents parses the events list. It returns nil when the list is
// empty.
func (c Config) ScriptEvents() ([]platform.Event, error) {
	if len(c.Events) == 0 {
		return nil, nil
	}
	events := make([]platform.Event, 0, len(c.Events))
	for i, s := range c.Events {
		ev, err := platform.ParseEvent(s)
		if err != nil {
			return nil, fmt.Errorf("config: events[%d]: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Options converts the file settings to orchestrator options. Call it on a
// validated Config.
func (c Config) Options() []lifecycle.Option {
	opts := []lifecycle.Option{
		lifecycle.WithWindowConfig(c.PlatformWindow()),
		lifecycle.WithSurfaceRecovery(c.SurfaceRecovery),
		lifecycle.WithKeepContextOnSuspend(c.KeepContextOnSuspend),
	}
	if d, set, _ := c.acquireTimeout(); set {
		opts = append(opts, lifecycle.WithAcquireTimeout(d))
	}
	if len(c.ClearColor) >= 3 {
		col := gputypes.Color{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: 1}
		if len(c.ClearColor) == 4 {
			col.A = c.ClearColor[3]
		}
		opts = append(opts, lifecycle.WithClearColor(col))
	}
	if p, _ := parsePower(c.PowerPreference); p != gputypes.PowerPreferenceNone {
		opts = append(opts, lifecycle.WithPowerPreference(p))
	}
	if c.ForceFallbackAdapter {
		opts = append(opts, lifecycle.WithForceFallbackAdapter(true))
	}
	return opts
}

// parsePower parses a power preference name: "", "none", "low" or "high".
func parsePower(s string) (gputypes.PowerPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return gputypes.PowerPreferenceNone, nil
	case "low", "low-power":
		return gputypes.PowerPreferenceLowPower, nil
	case "high", "high-performance":
		return gputypes.PowerPreferenceHighPerformance, nil
	default:
		return gputypes.PowerPreferenceNone, fmt.Errorf("unknown power preference %q", s)
	}
}
