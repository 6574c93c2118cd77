// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render builds the GPU render context used to draw into a surface
// and records the per-frame clear-and-draw pass.
//
// A Context bundles the adapter, the logical device and its queue, the
// compiled triangle program, its pipeline layout and the render pipeline
// targeting one color format. It is built once per adapter negotiation:
//
//	rc, err := render.Build(ctx, adapter, render.ChooseFormat(formats))
//	if err != nil {
//	    return err // wraps surfacekit.ErrDeviceRequestFailed or ErrShaderCompile
//	}
//	defer rc.Release()
//
// Context implements gpucontext.DeviceProvider so it can be handed to other
// gogpu libraries that draw with a shared device.
package render
