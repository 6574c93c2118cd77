// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend is the GPU backend handle: backend selection, the driver
// registry, and the narrow GPU interfaces the rest of surfacekit programs
// against.
//
// # Driver Registration
//
// Drivers are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/surfacekit/backend/wgpu"
//
// # Backend Selection
//
// The set of graphics APIs to try is a Selection. It is read once at
// startup, usually from the WGPU_BACKEND environment variable:
//
//	sel := backend.SelectionFromEnv(os.LookupEnv)
//	inst, err := backend.Open("", sel)
//
// # Asynchronous Operations
//
// Adapter requests, device requests and image acquisition return an
// await.Future. Callers on the event loop block on it; nothing else in the
// module waits on GPU work.
//
// # Available Drivers
//
//   - "wgpu": Pure Go WebGPU via gogpu/wgpu (Vulkan, Metal, DX12, GLES)
//   - "recording": in-memory driver that journals every call, for tests
//     and headless runs
package backend
