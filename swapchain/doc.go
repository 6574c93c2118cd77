// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swapchain derives the presentation configuration of a surface
// from its window and render context and applies it.
//
// The configuration is never stored by the caller; it is recomputed on every
// resume and resize. Applying an unchanged configuration again is valid.
package swapchain
