// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides the GPU driver backed by gogpu/wgpu, the Pure Go
// WebGPU implementation. It supports Vulkan, Metal, DX12 and OpenGL ES
// depending on the platform, plus the CPU software adapter.
//
// # Registration
//
// The driver registers itself as "wgpu" when this package is imported and
// takes priority over the recording driver:
//
//	import _ "github.com/gogpu/surfacekit/backend/wgpu"
//
// Importing it also links every HAL backend available on the target OS.
//
// # Threading
//
// gogpu/wgpu is synchronous. Adapter requests, device requests and image
// acquisition complete before the corresponding call returns, so every
// Future handed out by this driver is already resolved. All calls happen on
// the event loop goroutine that owns the window.
//
// # Swapchain Configuration
//
// gogpu/wgpu derives frame latency and view formats from the surface
// format. DesiredMaximumFrameLatency and ViewFormats are therefore logged at
// debug level and not forwarded.
package wgpu
