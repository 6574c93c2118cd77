// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface binds a native window to a presentable GPU surface.
//
// A Binding owns both halves and releases them together, surface first:
//
//	b, err := surface.Bind(inst, win)
//	if err != nil {
//	    return err // wraps surfacekit.ErrSurfaceCreation
//	}
//	defer b.Unbind()
package surface
