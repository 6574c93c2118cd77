// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surfacekit manages the lifecycle of a GPU-presentable window
// surface: binding a native window to a surface, negotiating an adapter and
// device compatible with it, configuring the swapchain, and rebuilding all of
// that in response to platform events such as suspend, resume and resize.
//
// # Architecture
//
// The library is organized leaf-first:
//
//   - backend: GPU backend handle. Backend selection, driver registry and the
//     narrow GPU interfaces the rest of the module programs against.
//   - backend/wgpu: driver backed by the Pure Go gogpu/wgpu implementation.
//   - backend/recording: in-memory driver that journals every GPU call.
//   - surface: Binding of a native window to a presentable surface.
//   - render: Context (adapter, device, queue, pipeline, color format) and
//     the per-frame clear-and-draw pass.
//   - swapchain: derivation and application of the presentation config.
//   - lifecycle: the Orchestrator state machine driven by platform events.
//   - platform: window and event contracts, the event loop and a headless
//     window implementation.
//   - cmd/trianglehost: headless host that replays an event script.
//
// # Quick Start
//
//	inst, err := backend.Open("", backend.SelectionFromEnv(os.LookupEnv))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Release()
//
//	loop := platform.NewLoop()
//	factory := platform.NewHeadlessFactory(loop, platform.WindowConfig{})
//	loop.SetSource(platform.NewScript(factory, platform.DesktopSequence(3)...))
//	orch := lifecycle.New(inst, factory, lifecycle.WithExitFunc(loop.Exit))
//	if err := loop.Run(ctx, orch.Handle); err != nil {
//	    log.Fatalf("%s failure: %v", surfacekit.Stage(err), err)
//	}
//
// # Errors
//
// Fatal failures wrap one of the sentinels in this package
// (ErrAdapterNotFound, ErrDeviceRequestFailed, ErrShaderCompile,
// ErrSurfaceCreation, ErrSurfaceAcquireTimeout, ErrSurfaceLost). Use Stage to
// name the failing stage in diagnostics.
//
// # Logging
//
// surfacekit is silent by default. Call SetLogger to route lifecycle
// diagnostics to a slog.Logger.
package surfacekit

// Version is the current version of the library.
const Version = "0.1.0"
