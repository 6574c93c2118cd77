// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform defines the contract between surfacekit and the
// windowing system: the lifecycle events it delivers, the Window it hands
// out, and the single-goroutine Loop that dispatches events.
//
// Real windowing systems live outside this module and implement Window and
// WindowFactory. The package ships a headless implementation and a Script
// event source for tests and headless hosts:
//
//	loop := platform.NewLoop()
//	factory := platform.NewHeadlessFactory(loop, platform.WindowConfig{Width: 800, Height: 600})
//	loop.SetSource(platform.NewScript(factory, platform.DesktopSequence(3)...))
//	err := loop.Run(ctx, orch.Handle)
package platform
