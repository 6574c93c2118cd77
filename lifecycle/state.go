// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lifecycle

// State is the orchestrator's lifecycle state.
type State uint8

const (
	// StateUninitialized: no window has been created yet.
	StateUninitialized State = iota

	// StateHasWindow: a window and surface are bound but the swapchain is
	// not configured, for example while the window has zero area.
	StateHasWindow

	// StateReady: window, render context and configured swapchain exist.
	// Only this state draws frames.
	StateReady

	// StateSuspended: the platform suspended the application. Window and
	// surface are gone.
	StateSuspended

	// StateClosed: terminal. Every event is ignored.
	StateClosed
)

var stateNames = [...]string{
	StateUninitialized: "Uninitialized",
	StateHasWindow:     "HasWindow",
	StateReady:         "Ready",
	StateSuspended:     "Suspended",
	StateClosed:        "Closed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
