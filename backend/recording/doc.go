// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides an in-memory backend driver that journals
// every GPU call instead of executing it.
//
// The driver registers itself as "recording" on import. It serves two
// purposes: a deterministic test double for every GPU-facing package, and
// the default driver of the headless host, whose windows carry no native
// handles a real backend could present to.
//
// # Inspection
//
//	drv := recording.NewDriver()
//	inst, _ := drv.CreateInstance(gputypes.BackendsAll)
//	// ... drive the lifecycle ...
//	drv.Journal().Count(recording.OpPresent) // frames presented
//	drv.Journal().Live()                     // objects not yet released
//
// # Fault Injection
//
// Options such as WithoutAdapter and WithShaderError make setup steps fail;
// FailNextAcquire and SetAcquirePending drive per-frame failures.
package recording
