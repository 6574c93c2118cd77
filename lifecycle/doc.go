// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lifecycle implements the state machine that creates, configures
// and tears down the GPU surface in response to platform events.
//
// The Orchestrator moves between five states:
//
//	Uninitialized --Resumed--> Ready <--Resized--> HasWindow
//	      Ready --Suspended--> Suspended --Resumed--> Ready
//	        any --CloseRequested--> Closed
//
// Only Resumed leads to Ready, and only Ready draws. Redraw requests in any
// other state are dropped, not queued; every successful resume ends with a
// redraw request instead.
//
// Resume failures are fatal and leave nothing behind: whatever the failed
// attempt created is released before Handle returns. During redraw, acquire
// timeouts and lost surfaces are fatal too unless WithSurfaceRecovery is set.
//
// By default Suspended releases both the surface binding and the render
// context. WithKeepContextOnSuspend keeps the context for windows that
// implement platform.SuspendSafe and report that their handles survive.
package lifecycle
