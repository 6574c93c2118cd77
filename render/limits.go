// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/gputypes"

// webGL2Limits is the floor every GLES 3.0 and WebGL2 adapter guarantees.
// It has no storage resources and no compute.
func webGL2Limits() gputypes.Limits {
	l := gputypes.DownlevelLimits()
	l.MaxTextureDimension3D = 256
	l.MaxUniformBuffersPerShaderStage = 11
	l.MaxStorageBuffersPerShaderStage = 0
	l.MaxStorageTexturesPerShaderStage = 0
	l.MaxDynamicStorageBuffersPerPipelineLayout = 0
	l.MaxStorageBufferBindingSize = 0
	l.MaxVertexBufferArrayStride = 255
	l.MaxInterStageShaderVariables = 15
	l.MaxColorAttachments = 4
	l.MaxComputeWorkgroupStorageSize = 0
	l.MaxComputeInvocationsPerWorkgroup = 0
	l.MaxComputeWorkgroupSizeX = 0
	l.MaxComputeWorkgroupSizeY = 0
	l.MaxComputeWorkgroupSizeZ = 0
	l.MaxComputeWorkgroupsPerDimension = 0
	return l
}

// RequiredLimits returns the limits requested for the device: the WebGL2
// floor, which mobile and web adapters can satisfy, with the 1D and 2D
// texture dimensions taken from the adapter so that swapchains as large as
// the display remain valid. Zero adapter dimensions keep the floor value.
func RequiredLimits(adapter gputypes.Limits) gputypes.Limits {
	l := webGL2Limits()
	if adapter.MaxTextureDimension1D != 0 {
		l.MaxTextureDimension1D = adapter.MaxTextureDimension1D
	}
	if adapter.MaxTextureDimension2D != 0 {
		l.MaxTextureDimension2D = adapter.MaxTextureDimension2D
	}
	return l
}

// webGPUCompliant reports whether adapter limits meet the WebGPU defaults.
// Only a subset is compared; the result is used for diagnostics.
func webGPUCompliant(l gputypes.Limits) bool {
	def := gputypes.DefaultLimits()
	return l.MaxTextureDimension2D >= def.MaxTextureDimension2D &&
		l.MaxBindGroups >= def.MaxBindGroups &&
		l.MaxColorAttachments >= def.MaxColorAttachments &&
		l.MaxInterStageShaderVariables >= def.MaxInterStageShaderVariables &&
		l.MaxUniformBufferBindingSize >= def.MaxUniformBufferBindingSize
}
