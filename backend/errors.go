// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "errors"

// Driver-neutral errors. Drivers translate their native failures into these
// so the layers above never import a concrete GPU API.
var (
	// ErrNoAdapter is returned when adapter negotiation finds nothing.
	ErrNoAdapter = errors.New("backend: no adapter available")

	// ErrTimeout is returned when a presentable image did not become
	// available in time.
	ErrTimeout = errors.New("backend: surface acquire timed out")

	// ErrSurfaceLost is returned when the surface was lost or is outdated.
	ErrSurfaceLost = errors.New("backend: surface lost or outdated")

	// ErrLimitsExceeded is returned when a device request asks for more
	// than the adapter supports.
	ErrLimitsExceeded = errors.New("backend: required limits exceed adapter")

	// ErrUnknownDriver is returned by Open for unregistered driver names.
	ErrUnknownDriver = errors.New("backend: unknown driver")

	// ErrNoDriver is returned by Open when no driver is registered.
	ErrNoDriver = errors.New("backend: no driver registered")
)
