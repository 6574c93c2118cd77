// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import "github.com/gogpu/gputypes"

// Op identifies a journaled GPU call.
type Op uint8

const (
	// Setup
	OpCreateInstance Op = iota // Instance created
	OpCreateSurface            // Surface created for a native window
	OpRequestAdapter           // Adapter negotiated
	OpRequestDevice            // Device and queue opened
	OpCreateShader             // Shader module compiled
	OpCreateLayout             // Pipeline layout created
	OpCreatePipeline           // Render pipeline created
	OpConfigure                // Surface configured
	OpUnconfigure              // Surface unconfigured

	// Per frame
	OpAcquire     // Presentable image acquired
	OpCreateView  // Texture view created
	OpBeginPass   // Render pass begun
	OpSetPipeline // Pipeline bound
	OpDraw        // Draw recorded
	OpEndPass     // Render pass ended
	OpFinish      // Encoder finished
	OpSubmit      // Command buffers submitted
	OpPresent     // Image presented
	OpDiscard     // Image returned without presenting

	// Teardown
	OpRelease // Object released
)

var opNames = [...]string{
	OpCreateInstance: "CreateInstance",
	OpCreateSurface:  "CreateSurface",
	OpRequestAdapter: "RequestAdapter",
	OpRequestDevice:  "RequestDevice",
	OpCreateShader:   "CreateShader",
	OpCreateLayout:   "CreateLayout",
	OpCreatePipeline: "CreatePipeline",
	OpConfigure:      "Configure",
	OpUnconfigure:    "Unconfigure",
	OpAcquire:        "Acquire",
	OpCreateView:     "CreateView",
	OpBeginPass:      "BeginPass",
	OpSetPipeline:    "SetPipeline",
	OpDraw:           "Draw",
	OpEndPass:        "EndPass",
	OpFinish:         "Finish",
	OpSubmit:         "Submit",
	OpPresent:        "Present",
	OpDiscard:        "Discard",
	OpRelease:        "Release",
}

// String returns the op name.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Unknown"
}

// Call is one journal entry. Only the fields relevant to Op are set.
type Call struct {
	Op Op

	// Target names the object the call acted on, such as "surface#2".
	Target string

	// Config is set for OpConfigure.
	Config gputypes.SurfaceConfiguration

	// Format is set for OpCreatePipeline: the single color target.
	Format gputypes.TextureFormat

	// Limits is set for OpRequestDevice.
	Limits gputypes.Limits

	// Clear is set for OpBeginPass.
	Clear gputypes.Color

	// VertexCount and InstanceCount are set for OpDraw.
	VertexCount   uint32
	InstanceCount uint32

	// Label carries descriptor labels and entry points.
	Label string
}
