// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

// errForeign is returned when an object created by another driver is
// passed to this one.
var errForeign = errors.New("wgpu: object does not belong to this driver")

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// NewGPUInfo extracts the loggable fields of an adapter description.
func NewGPUInfo(info gputypes.AdapterInfo) GPUInfo {
	return GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
}

// String returns a human-readable description of the GPU.
func (g GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// logGPUInfo logs information about the selected GPU.
func logGPUInfo(info gputypes.AdapterInfo) {
	g := NewGPUInfo(info)
	surfacekit.Logger().Info("wgpu: adapter selected", "gpu", g.String(), "vendor", g.Vendor)
	if g.Driver != "" {
		surfacekit.Logger().Debug("wgpu: driver", "version", g.Driver)
	}
}

type adapter struct{ a *wgpu.Adapter }

func (a *adapter) Info() gputypes.AdapterInfo  { return a.a.Info() }
func (a *adapter) Limits() gputypes.Limits     { return a.a.Limits() }
func (a *adapter) Features() gputypes.Features { return a.a.Features() }
func (a *adapter) Release()                    { a.a.Release() }
func (a *adapter) Native() any                 { return a.a }

func (a *adapter) RequestDevice(desc *backend.DeviceDescriptor) *await.Future[backend.Device] {
	var wd *wgpu.DeviceDescriptor
	if desc != nil {
		wd = &wgpu.DeviceDescriptor{
			Label:            desc.Label,
			RequiredFeatures: desc.RequiredFeatures,
			RequiredLimits:   desc.RequiredLimits,
		}
	}
	d, err := a.a.RequestDevice(wd)
	if err != nil {
		return await.Resolved[backend.Device](nil, err)
	}
	return await.Resolved[backend.Device](&device{d: d}, nil)
}

type device struct{ d *wgpu.Device }

func (d *device) Queue() backend.Queue { return queue{q: d.d.Queue()} }
func (d *device) Release()             { d.d.Release() }
func (d *device) Native() any          { return d.d }

func (d *device) CreateShaderModule(desc *backend.ShaderModuleDescriptor) (backend.ShaderModule, error) {
	m, err := d.d.CreateShaderModule(&wgpu.ShaderModuleDescriptor{Label: desc.Label, WGSL: desc.WGSL})
	if err != nil {
		return nil, err
	}
	return shaderModule{m: m}, nil
}

func (d *device) CreatePipelineLayout(desc *backend.PipelineLayoutDescriptor) (backend.PipelineLayout, error) {
	wd := &wgpu.PipelineLayoutDescriptor{}
	if desc != nil {
		wd.Label = desc.Label
	}
	l, err := d.d.CreatePipelineLayout(wd)
	if err != nil {
		return nil, err
	}
	return pipelineLayout{l: l}, nil
}

func (d *device) CreateRenderPipeline(desc *backend.RenderPipelineDescriptor) (backend.RenderPipeline, error) {
	layout, ok := desc.Layout.(pipelineLayout)
	if !ok {
		return nil, errForeign
	}
	module, ok := desc.Module.(shaderModule)
	if !ok {
		return nil, errForeign
	}
	p, err := d.d.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout.l,
		Vertex: wgpu.VertexState{
			Module:     module.m,
			EntryPoint: desc.VertexEntryPoint,
		},
		Primitive:   desc.Primitive,
		Multisample: desc.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     module.m,
			EntryPoint: desc.FragEntryPoint,
			Targets:    desc.Targets,
		},
	})
	if err != nil {
		return nil, err
	}
	return renderPipeline{p: p}, nil
}

func (d *device) CreateCommandEncoder(label string) (backend.CommandEncoder, error) {
	e, err := d.d.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, err
	}
	return encoder{e: e}, nil
}

type queue struct{ q *wgpu.Queue }

func (q queue) Native() any { return q.q }

func (q queue) Submit(buffers ...backend.CommandBuffer) error {
	cbs := make([]*wgpu.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		cb, ok := b.(commandBuffer)
		if !ok {
			return errForeign
		}
		cbs = append(cbs, cb.cb)
	}
	_, err := q.q.Submit(cbs...)
	return err
}

type shaderModule struct{ m *wgpu.ShaderModule }

func (s shaderModule) Release() { s.m.Release() }

type pipelineLayout struct{ l *wgpu.PipelineLayout }

func (l pipelineLayout) Release() { l.l.Release() }

type renderPipeline struct{ p *wgpu.RenderPipeline }

func (p renderPipeline) Release() { p.p.Release() }

var (
	_ backend.Wrapper = (*adapter)(nil)
	_ backend.Wrapper = (*device)(nil)
	_ backend.Wrapper = queue{}
)
