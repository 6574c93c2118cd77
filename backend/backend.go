// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/internal/await"
)

// Driver opens GPU instances. Drivers register themselves from init()
// through Register, following the database/sql pattern.
type Driver interface {
	// Name returns the driver identifier (e.g., "wgpu", "recording").
	Name() string

	// CreateInstance enumerates the backends in sel and returns an
	// instance ready to create surfaces and request adapters.
	CreateInstance(sel Selection) (Instance, error)
}

// AdapterOptions controls adapter negotiation.
type AdapterOptions struct {
	PowerPreference      gputypes.PowerPreference
	ForceFallbackAdapter bool

	// CompatibleSurface, if non-nil, restricts the result to adapters able
	// to present to this surface.
	CompatibleSurface Surface
}

// Instance is the process-wide GPU backend handle. Once created it is
// immutable and lives for the duration of the process.
type Instance interface {
	// Selection returns the backend set the instance was created with.
	Selection() Selection

	// CreateSurface creates a presentable surface for a native window.
	// The handles come from platform.Window.NativeHandles.
	CreateSurface(display, window uintptr) (Surface, error)

	// RequestAdapter asynchronously negotiates an adapter. The returned
	// Future resolves with ErrNoAdapter when nothing matches.
	RequestAdapter(opts *AdapterOptions) *await.Future[Adapter]

	Release()
}

// Surface is a presentable surface bound to a native window.
type Surface interface {
	// Capabilities reports formats, present modes and alpha modes the
	// surface supports with the given adapter.
	Capabilities(adapter Adapter) gputypes.SurfaceCapabilities

	// Configure (re)creates the swapchain. Calling it again with an
	// identical configuration is valid.
	Configure(device Device, cfg *gputypes.SurfaceConfiguration) error

	Unconfigure()

	// AcquireTexture asynchronously acquires the next presentable image.
	// The Future fails with ErrTimeout or ErrSurfaceLost.
	AcquireTexture() *await.Future[SurfaceTexture]

	Present(tex SurfaceTexture) error

	Release()
}

// SurfaceTexture is one acquired presentable image.
type SurfaceTexture interface {
	CreateView() (TextureView, error)

	// Discard returns the image to the swapchain without presenting.
	Discard()
}

// Wrapper is implemented by driver objects that wrap a concrete GPU API
// object, such as *wgpu.Device from gogpu/wgpu.
type Wrapper interface {
	Native() any
}

// Unwrap returns the concrete object behind v when v is a Wrapper, and v
// itself otherwise. Consumers of gpucontext.DeviceProvider type-assert the
// result to the concrete API type.
func Unwrap(v any) any {
	if w, ok := v.(Wrapper); ok {
		return w.Native()
	}
	return v
}

// Adapter is a negotiated physical GPU.
type Adapter interface {
	Info() gputypes.AdapterInfo
	Limits() gputypes.Limits
	Features() gputypes.Features

	// RequestDevice asynchronously opens a logical device and its queue.
	RequestDevice(desc *DeviceDescriptor) *await.Future[Device]

	Release()
}

// Device is a logical GPU device.
type Device interface {
	Queue() Queue
	CreateShaderModule(desc *ShaderModuleDescriptor) (ShaderModule, error)
	CreatePipelineLayout(desc *PipelineLayoutDescriptor) (PipelineLayout, error)
	CreateRenderPipeline(desc *RenderPipelineDescriptor) (RenderPipeline, error)
	CreateCommandEncoder(label string) (CommandEncoder, error)
	Release()
}

// Queue submits recorded command buffers.
type Queue interface {
	Submit(buffers ...CommandBuffer) error
}

// ShaderModule is a compiled shader program.
type ShaderModule interface{ Release() }

// PipelineLayout describes the resource interface of a pipeline.
type PipelineLayout interface{ Release() }

// RenderPipeline is a compiled render pipeline.
type RenderPipeline interface{ Release() }

// TextureView is a view onto an acquired surface texture.
type TextureView interface{ Release() }

// CommandBuffer is a finished command recording.
type CommandBuffer interface{ Release() }

// CommandEncoder records GPU commands.
type CommandEncoder interface {
	BeginRenderPass(desc *RenderPassDescriptor) (RenderPassEncoder, error)
	Finish() (CommandBuffer, error)
}

// RenderPassEncoder records draw commands inside a render pass.
type RenderPassEncoder interface {
	SetPipeline(p RenderPipeline)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	End() error
}

// DeviceDescriptor configures device creation.
type DeviceDescriptor struct {
	Label            string
	RequiredFeatures gputypes.Features
	RequiredLimits   gputypes.Limits
}

// ShaderModuleDescriptor configures shader compilation.
type ShaderModuleDescriptor struct {
	Label string
	WGSL  string
}

// PipelineLayoutDescriptor configures a pipeline layout. The layouts this
// module builds never carry bind groups or push constants.
type PipelineLayoutDescriptor struct {
	Label string
}

// RenderPipelineDescriptor configures a render pipeline whose vertex and
// fragment stages come from the same module.
type RenderPipelineDescriptor struct {
	Label            string
	Layout           PipelineLayout
	Module           ShaderModule
	VertexEntryPoint string
	FragEntryPoint   string
	Targets          []gputypes.ColorTargetState
	Primitive        gputypes.PrimitiveState
	Multisample      gputypes.MultisampleState
}

// RenderPassDescriptor configures a single-attachment render pass.
type RenderPassDescriptor struct {
	Label      string
	View       TextureView
	LoadOp     gputypes.LoadOp
	StoreOp    gputypes.StoreOp
	ClearValue gputypes.Color
}
