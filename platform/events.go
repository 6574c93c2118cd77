// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Event is a platform event delivered to the lifecycle orchestrator.
// The set of events is closed; use a type switch to handle them.
type Event interface {
	fmt.Stringer
	isEvent()
}

// Resumed is delivered when the application becomes active and a window may
// be created. On desktop it arrives once at startup; on mobile it follows
// every Suspended.
type Resumed struct{}

// Suspended is delivered when the application goes to the background.
// Native window handles may be invalid after this event.
type Suspended struct{}

// WindowCreated signals that a native window with a valid handle exists.
type WindowCreated struct{}

// Resized is delivered when the window's client area changes. Width and
// Height are physical pixels.
type Resized struct {
	Width, Height uint32
}

// RedrawRequested asks the application to render one frame.
type RedrawRequested struct{}

// CloseRequested is delivered when the user or system asks the window to
// close. It is terminal.
type CloseRequested struct{}

// Pointer carries mouse, touch and pen input. It has no lifecycle effect.
type Pointer struct {
	gpucontext.PointerEvent
}

// KeyPressed carries a key press. It has no lifecycle effect.
type KeyPressed struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
}

func (Resumed) isEvent()         {}
func (Suspended) isEvent()       {}
func (WindowCreated) isEvent()   {}
func (Resized) isEvent()         {}
func (RedrawRequested) isEvent() {}
func (CloseRequested) isEvent()  {}
func (Pointer) isEvent()         {}
func (KeyPressed) isEvent()      {}

func (Resumed) String() string         { return "Resumed" }
func (Suspended) String() string       { return "Suspended" }
func (WindowCreated) String() string   { return "WindowCreated" }
func (RedrawRequested) String() string { return "RedrawRequested" }
func (CloseRequested) String() string  { return "CloseRequested" }

func (e Resized) String() string { return fmt.Sprintf("Resized(%dx%d)", e.Width, e.Height) }

func (e Pointer) String() string {
	return fmt.Sprintf("Pointer(%s %s %.1f,%.1f)", e.PointerType, e.Type, e.X, e.Y)
}

func (e KeyPressed) String() string { return fmt.Sprintf("KeyPressed(%d)", e.Key) }
