// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"math"

	"github.com/gogpu/gpucontext"
)

// NativeHandles identifies a native window for presentable surface
// creation. Display is the connection or instance handle where the
// platform has one (X11 Display*, HINSTANCE); Window is the window itself
// (X11 Window, HWND, CAMetalLayer*, ANativeWindow*).
type NativeHandles struct {
	Display uintptr
	Window  uintptr
}

// Window is the native window contract: geometry and redraw scheduling from
// gpucontext.WindowProvider, plus what surface creation needs.
type Window interface {
	gpucontext.WindowProvider

	// PhysicalSize returns the client area in physical pixels.
	PhysicalSize() (width, height uint32)

	// NativeHandles returns the handles a GPU backend needs to create a
	// presentable surface.
	NativeHandles() NativeHandles

	// Destroy closes the native window. The window must not be used
	// afterwards. Destroy is idempotent.
	Destroy()
}

// SuspendSafe is implemented by windows whose native handles are known to
// stay valid across Suspended/Resumed. Only such windows allow a render
// context to be kept across suspend.
type SuspendSafe interface {
	SurvivesSuspend() bool
}

// WindowConfig describes a window to create. Width and Height are logical
// points; ScaleFactor zero means 1.
type WindowConfig struct {
	Title       string
	Width       int
	Height      int
	ScaleFactor float64
}

// DefaultWindowConfig returns the configuration used when none is given.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Title: "surfacekit", Width: 800, Height: 600, ScaleFactor: 1}
}

// WindowFactory creates native windows. The implementation is chosen by the
// host: a real windowing system, or the headless factory.
type WindowFactory interface {
	CreateWindow(cfg WindowConfig) (Window, error)
}

// WindowFactoryFunc adapts a function to WindowFactory.
type WindowFactoryFunc func(cfg WindowConfig) (Window, error)

// CreateWindow calls f(cfg).
func (f WindowFactoryFunc) CreateWindow(cfg WindowConfig) (Window, error) { return f(cfg) }

// PhysicalSize converts a provider's logical size to physical pixels,
// rounding to the nearest pixel. Negative sizes clamp to zero.
func PhysicalSize(wp gpucontext.WindowProvider) (width, height uint32) {
	w, h := wp.Size()
	scale := wp.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	return toPhysical(w, scale), toPhysical(h, scale)
}

func toPhysical(v int, scale float64) uint32 {
	if v <= 0 {
		return 0
	}
	p := math.Round(float64(v) * scale)
	if p > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(p)
}
