// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/render"
	"github.com/gogpu/surfacekit/surface"
)

// Configurator applies derived configurations to a bound surface and
// remembers the last one applied.
//
// Configurator is not safe for concurrent use.
type Configurator struct {
	last    Config
	has     bool
	applied int
}

// Configure derives the configuration from the current physical size of
// the binding's window and the context's format, and applies it.
//
// It reports false without touching the surface when the window has zero
// area, as when it is minimized. Applying a configuration identical to the
// previous one is valid and reapplies it. Backend failures wrap
// surfacekit.ErrSurfaceCreation.
func (c *Configurator) Configure(b *surface.Binding, rc *render.Context) (Config, bool, error) {
	w, h := b.Size()
	cfg := Derive(w, h, rc.Format())
	log := surfacekit.Logger()
	if cfg.Empty() {
		log.Debug("swapchain: zero-area window, not configured", "width", w, "height", h)
		return cfg, false, nil
	}
	if err := b.Surface().Configure(rc.GPUDevice(), cfg.Surface()); err != nil {
		return cfg, false, fmt.Errorf("swapchain: configure %s: %w: %w", cfg, surfacekit.ErrSurfaceCreation, err)
	}
	if c.has && cfg.Equal(c.last) {
		log.Debug("swapchain: reapplied", "config", cfg.String())
	} else {
		log.Info("swapchain: configured",
			"width", cfg.Width,
			"height", cfg.Height,
			"format", cfg.Format.String(),
			"present_mode", cfg.PresentMode.String(),
		)
	}
	c.last, c.has = cfg, true
	c.applied++
	return cfg, true, nil
}

// Last returns the most recently applied configuration.
func (c *Configurator) Last() (Config, bool) { return c.last, c.has }

// Applied returns how many configurations have been applied.
func (c *Configurator) Applied() int { return c.applied }

// Forget drops the remembered configuration. Call it when the surface it
// was applied to is released.
func (c *Configurator) Forget() { c.last, c.has = Config{}, false }
