// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfacekit

import "errors"

// Fatal error taxonomy. Every GPU-facing package wraps one of these with
// context so callers can match with errors.Is regardless of which backend
// driver produced the failure.
var (
	// ErrAdapterNotFound is returned when no backend can provide an adapter
	// compatible with the requested surface.
	ErrAdapterNotFound = errors.New("surfacekit: no compatible adapter")

	// ErrDeviceRequestFailed is returned when the adapter refuses to open a
	// logical device with the required limits.
	ErrDeviceRequestFailed = errors.New("surfacekit: device request failed")

	// ErrShaderCompile is returned when the embedded shader program fails
	// validation or backend compilation.
	ErrShaderCompile = errors.New("surfacekit: shader compile error")

	// ErrSurfaceCreation is returned when the backend rejects a native window
	// handle or the surface reports no usable formats.
	ErrSurfaceCreation = errors.New("surfacekit: surface creation failed")

	// ErrSurfaceAcquireTimeout is returned when the next presentable image
	// does not become available in time.
	ErrSurfaceAcquireTimeout = errors.New("surfacekit: surface acquire timeout")

	// ErrSurfaceLost is returned when the presentable surface has been lost
	// or is outdated and must be reconfigured.
	ErrSurfaceLost = errors.New("surfacekit: surface lost")
)

// Stage names the lifecycle stage an error belongs to: "adapter",
// "device", "shader" or "surface". It returns "unknown" for errors outside
// the taxonomy and "" for nil.
func Stage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAdapterNotFound):
		return "adapter"
	case errors.Is(err, ErrDeviceRequestFailed):
		return "device"
	case errors.Is(err, ErrShaderCompile):
		return "shader"
	case errors.Is(err, ErrSurfaceCreation),
		errors.Is(err, ErrSurfaceAcquireTimeout),
		errors.Is(err, ErrSurfaceLost):
		return "surface"
	default:
		return "unknown"
	}
}

// IsFrameError reports whether err is a per-frame presentation failure
// (acquire timeout or lost surface) that a hardened host may recover from by
// dropping the frame and reconfiguring the swapchain.
func IsFrameError(err error) bool {
	return errors.Is(err, ErrSurfaceAcquireTimeout) || errors.Is(err, ErrSurfaceLost)
}
