// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Presentation policy.
const (
	// PresentMode waits for vertical blank. It is the only mode every
	// backend supports.
	PresentMode = gputypes.PresentModeFifo

	// AlphaMode leaves compositing to the platform.
	AlphaMode = gputypes.CompositeAlphaModeInherit

	// MaxFrameLatency is the number of frames queued ahead of presentation.
	MaxFrameLatency = 2
)

// Config is a derived swapchain configuration.
type Config struct {
	Format          gputypes.TextureFormat
	Width           uint32
	Height          uint32
	PresentMode     gputypes.PresentMode
	AlphaMode       gputypes.CompositeAlphaMode
	MaxFrameLatency uint32
	Usage           gputypes.TextureUsage
	ViewFormats     []gputypes.TextureFormat
}

// Derive computes the configuration for a physical size and color format.
func Derive(width, height uint32, format gputypes.TextureFormat) Config {
	return Config{
		Format:          format,
		Width:           width,
		Height:          height,
		PresentMode:     PresentMode,
		AlphaMode:       AlphaMode,
		MaxFrameLatency: MaxFrameLatency,
		Usage:           gputypes.TextureUsageRenderAttachment,
		ViewFormats:     []gputypes.TextureFormat{format},
	}
}

// Empty reports whether the configuration has zero area.
func (c Config) Empty() bool { return c.Width == 0 || c.Height == 0 }

// Equal reports whether two configurations are identical.
func (c Config) Equal(o Config) bool {
	if c.Format != o.Format || c.Width != o.Width || c.Height != o.Height ||
		c.PresentMode != o.PresentMode || c.AlphaMode != o.AlphaMode ||
		c.MaxFrameLatency != o.MaxFrameLatency || c.Usage != o.Usage ||
		len(c.ViewFormats) != len(o.ViewFormats) {
		return false
	}
	for i := range c.ViewFormats {
		if c.ViewFormats[i] != o.ViewFormats[i] {
			return false
		}
	}
	return true
}

// Surface converts c to the backend surface configuration.
func (c Config) Surface() *gputypes.SurfaceConfiguration {
	return &gputypes.SurfaceConfiguration{
		Usage:                      c.Usage,
		Format:                     c.Format,
		Width:                      c.Width,
		Height:                     c.Height,
		PresentMode:                c.PresentMode,
		DesiredMaximumFrameLatency: c.MaxFrameLatency,
		AlphaMode:                  c.AlphaMode,
		ViewFormats:                append([]gputypes.TextureFormat(nil), c.ViewFormats...),
	}
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d %s", c.Width, c.Height, c.Format)
}
