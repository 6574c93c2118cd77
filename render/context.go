// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/backend"
)

// epochs numbers Contexts in creation order.
var epochs atomic.Uint64

// Context holds the GPU objects needed to draw into a surface: the adapter
// it was negotiated with, the device and queue, the triangle program, its
// layout and the pipeline targeting Format. A Context is immutable once
// built. Its format stays fixed for its whole lifetime; every surface
// configured while it lives uses that format.
type Context struct {
	epoch    uint64
	adapter  backend.Adapter
	info     gputypes.AdapterInfo
	device   backend.Device
	queue    backend.Queue
	shader   backend.ShaderModule
	layout   backend.PipelineLayout
	pipeline backend.RenderPipeline
	format   gputypes.TextureFormat
	released bool
}

// Epoch identifies this Context. Each successful Build gets a larger value.
func (c *Context) Epoch() uint64 { return c.epoch }

// Format returns the color format the pipeline renders to.
func (c *Context) Format() gputypes.TextureFormat { return c.format }

// Info returns the adapter description.
func (c *Context) Info() gputypes.AdapterInfo { return c.info }

// GPUAdapter returns the adapter the context was built from.
func (c *Context) GPUAdapter() backend.Adapter { return c.adapter }

// GPUDevice returns the logical device as a backend.Device.
func (c *Context) GPUDevice() backend.Device { return c.device }

// Released reports whether Release has been called.
func (c *Context) Released() bool { return c.released }

// Device implements gpucontext.DeviceProvider. With the wgpu driver the
// result is a *wgpu.Device.
func (c *Context) Device() gpucontext.Device { return backend.Unwrap(c.device) }

// Queue implements gpucontext.DeviceProvider. With the wgpu driver the
// result is a *wgpu.Queue.
func (c *Context) Queue() gpucontext.Queue { return backend.Unwrap(c.queue) }

// SurfaceFormat implements gpucontext.DeviceProvider.
func (c *Context) SurfaceFormat() gputypes.TextureFormat { return c.format }

// Adapter implements gpucontext.DeviceProvider. With the wgpu driver the
// result is a *wgpu.Adapter.
func (c *Context) Adapter() gpucontext.Adapter { return backend.Unwrap(c.adapter) }

// AdapterInfo implements gpucontext.DeviceProvider.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: c.info.Name, Type: adapterType(c.info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// Release releases the pipeline, layout, shader, device and adapter, in
// that order. It is safe to call more than once.
func (c *Context) Release() {
	if c.released {
		return
	}
	c.released = true
	releaseAll(c.pipeline, c.layout, c.shader, c.device, c.adapter)
}

// releaseAll releases non-nil objects in argument order.
func releaseAll(objs ...interface{ Release() }) {
	for _, o := range objs {
		if o != nil {
			o.Release()
		}
	}
}

var _ gpucontext.DeviceProvider = (*Context)(nil)
