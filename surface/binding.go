// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/platform"
)

// Binding pairs a native window with the presentable surface created for
// it. The two are released together, surface first, so the surface never
// outlives its window.
//
// A Binding is owned by the lifecycle orchestrator and is not safe for
// concurrent use.
type Binding struct {
	window  platform.Window
	surface backend.Surface
}

// Bind creates a presentable surface for win and takes ownership of win.
// If the backend rejects the window, win is destroyed and the error wraps
// surfacekit.ErrSurfaceCreation.
func Bind(inst backend.Instance, win platform.Window) (*Binding, error) {
	if inst == nil || win == nil {
		return nil, fmt.Errorf("surface: bind: %w: nil instance or window", surfacekit.ErrSurfaceCreation)
	}
	w, h := win.PhysicalSize()
	if w == 0 || h == 0 {
		win.Destroy()
		return nil, fmt.Errorf("surface: bind %dx%d window: %w", w, h, surfacekit.ErrSurfaceCreation)
	}
	handles := win.NativeHandles()
	s, err := inst.CreateSurface(handles.Display, handles.Window)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("surface: bind: %w: %w", surfacekit.ErrSurfaceCreation, err)
	}
	surfacekit.Logger().Info("surface: bound", "width", w, "height", h)
	return &Binding{window: win, surface: s}, nil
}

// Window returns the bound window. It panics after Unbind.
func (b *Binding) Window() platform.Window {
	if b.window == nil {
		panic("surface: Window called on released binding")
	}
	return b.window
}

// Surface returns the presentable surface. It panics after Unbind.
func (b *Binding) Surface() backend.Surface {
	if b.surface == nil {
		panic("surface: Surface called on released binding")
	}
	return b.surface
}

// Size returns the window's current physical size.
func (b *Binding) Size() (width, height uint32) {
	if b.window == nil {
		return 0, 0
	}
	return b.window.PhysicalSize()
}

// Released reports whether Unbind has been called.
func (b *Binding) Released() bool { return b.surface == nil && b.window == nil }

// Unbind releases the surface and then destroys the window. It is safe to
// call more than once.
func (b *Binding) Unbind() {
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
}

// ErrNoFormats is returned by Formats when the surface advertises nothing
// for the adapter.
var ErrNoFormats = errors.New("surface: no supported formats")

// Formats returns the color formats the surface supports with adapter, in
// the backend's preference order.
func (b *Binding) Formats(adapter backend.Adapter) ([]gputypes.TextureFormat, error) {
	caps := b.Surface().Capabilities(adapter)
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("%w: %w", surfacekit.ErrSurfaceCreation, ErrNoFormats)
	}
	return caps.Formats, nil
}
