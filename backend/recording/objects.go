// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

// ErrReleased is returned when a released object is used.
var ErrReleased = errors.New("recording: object already released")

// errForeign is returned when an object from another driver is passed in.
var errForeign = errors.New("recording: object does not belong to this driver")

type instance struct {
	id  string
	drv *Driver
	sel backend.Selection
}

func (i *instance) Selection() backend.Selection { return i.sel }

func (i *instance) CreateSurface(display, window uintptr) (backend.Surface, error) {
	if err := i.drv.fault(&i.drv.surfaceErr); err != nil {
		return nil, err
	}
	id := i.drv.journal.create(kindSurface)
	i.drv.journal.record(Call{Op: OpCreateSurface, Target: id})
	return &surface{id: id, drv: i.drv}, nil
}

func (i *instance) RequestAdapter(opts *backend.AdapterOptions) *await.Future[backend.Adapter] {
	i.drv.mu.Lock()
	noAdapter := i.drv.noAdapter
	info, limits := i.drv.info, i.drv.limits
	i.drv.mu.Unlock()

	if noAdapter {
		return await.Resolved[backend.Adapter](nil, backend.ErrNoAdapter)
	}
	if opts != nil && opts.CompatibleSurface != nil {
		s, ok := opts.CompatibleSurface.(*surface)
		if !ok || !i.drv.journal.isLive(s.id) {
			return await.Resolved[backend.Adapter](nil, backend.ErrNoAdapter)
		}
	}
	if info.Backend == gputypes.BackendEmpty {
		info.Backend = firstBackend(i.sel)
	}
	id := i.drv.journal.create(kindAdapter)
	i.drv.journal.record(Call{Op: OpRequestAdapter, Target: id})
	return await.Resolved[backend.Adapter](&adapter{id: id, drv: i.drv, info: info, limits: limits}, nil)
}

func (i *instance) Release() { i.drv.journal.release(i.id) }

func firstBackend(sel backend.Selection) gputypes.Backend {
	for _, b := range []gputypes.Backend{
		gputypes.BackendVulkan,
		gputypes.BackendMetal,
		gputypes.BackendDX12,
		gputypes.BackendGL,
		gputypes.BackendBrowserWebGPU,
	} {
		if sel.Contains(b) {
			return b
		}
	}
	return gputypes.BackendEmpty
}

type adapter struct {
	id     string
	drv    *Driver
	info   gputypes.AdapterInfo
	limits gputypes.Limits
}

func (a *adapter) Info() gputypes.AdapterInfo { return a.info }
func (a *adapter) Limits() gputypes.Limits    { return a.limits }
func (a *adapter) Features() gputypes.Features {
	return 0
}

func (a *adapter) RequestDevice(desc *backend.DeviceDescriptor) *await.Future[backend.Device] {
	if !a.drv.journal.isLive(a.id) {
		return await.Resolved[backend.Device](nil, ErrReleased)
	}
	if err := a.drv.fault(&a.drv.deviceErr); err != nil {
		return await.Resolved[backend.Device](nil, err)
	}
	var limits gputypes.Limits
	if desc != nil {
		limits = desc.RequiredLimits
	}
	if desc != nil {
		if err := backend.CheckLimits(limits, a.limits); err != nil {
			return await.Resolved[backend.Device](nil, fmt.Errorf("recording: %w", err))
		}
	}
	id := a.drv.journal.create(kindDevice)
	a.drv.journal.record(Call{Op: OpRequestDevice, Target: id, Limits: limits})
	return await.Resolved[backend.Device](&device{id: id, drv: a.drv}, nil)
}

func (a *adapter) Release() { a.drv.journal.release(a.id) }

type device struct {
	id  string
	drv *Driver
}

func (d *device) Queue() backend.Queue { return queue{dev: d} }

func (d *device) CreateShaderModule(desc *backend.ShaderModuleDescriptor) (backend.ShaderModule, error) {
	if !d.drv.journal.isLive(d.id) {
		return nil, ErrReleased
	}
	if err := d.drv.fault(&d.drv.shaderErr); err != nil {
		return nil, err
	}
	if desc == nil || desc.WGSL == "" {
		return nil, errors.New("recording: empty shader source")
	}
	id := d.drv.journal.create(kindShader)
	d.drv.journal.record(Call{Op: OpCreateShader, Target: id, Label: desc.Label})
	return &handle{id: id, drv: d.drv}, nil
}

func (d *device) CreatePipelineLayout(desc *backend.PipelineLayoutDescriptor) (backend.PipelineLayout, error) {
	if !d.drv.journal.isLive(d.id) {
		return nil, ErrReleased
	}
	id := d.drv.journal.create(kindLayout)
	c := Call{Op: OpCreateLayout, Target: id}
	if desc != nil {
		c.Label = desc.Label
	}
	d.drv.journal.record(c)
	return &handle{id: id, drv: d.drv}, nil
}

func (d *device) CreateRenderPipeline(desc *backend.RenderPipelineDescriptor) (backend.RenderPipeline, error) {
	if !d.drv.journal.isLive(d.id) {
		return nil, ErrReleased
	}
	if desc == nil || len(desc.Targets) == 0 {
		return nil, errors.New("recording: render pipeline needs a color target")
	}
	for _, h := range []any{desc.Layout, desc.Module} {
		hh, ok := h.(*handle)
		if !ok {
			return nil, errForeign
		}
		if !d.drv.journal.isLive(hh.id) {
			return nil, ErrReleased
		}
	}
	id := d.drv.journal.create(kindPipeline)
	d.drv.journal.record(Call{
		Op:     OpCreatePipeline,
		Target: id,
		Format: desc.Targets[0].Format,
		Label:  desc.VertexEntryPoint + "/" + desc.FragEntryPoint,
	})
	return &handle{id: id, drv: d.drv}, nil
}

func (d *device) CreateCommandEncoder(label string) (backend.CommandEncoder, error) {
	if !d.drv.journal.isLive(d.id) {
		return nil, ErrReleased
	}
	return &encoder{drv: d.drv}, nil
}

func (d *device) Release() { d.drv.journal.release(d.id) }

type queue struct{ dev *device }

func (q queue) Submit(buffers ...backend.CommandBuffer) error {
	j := q.dev.drv.journal
	if !j.isLive(q.dev.id) {
		return ErrReleased
	}
	for _, b := range buffers {
		h, ok := b.(*handle)
		if !ok {
			return errForeign
		}
		if !j.drop(h.id) {
			return ErrReleased
		}
	}
	j.record(Call{Op: OpSubmit, Target: q.dev.id})
	return nil
}

// handle is a releasable object with no behavior of its own: shader
// modules, layouts, pipelines, views and command buffers.
type handle struct {
	id  string
	drv *Driver
}

func (h *handle) Release() { h.drv.journal.release(h.id) }

type encoder struct {
	drv  *Driver
	open bool
}

func (e *encoder) BeginRenderPass(desc *backend.RenderPassDescriptor) (backend.RenderPassEncoder, error) {
	if desc == nil {
		return nil, errors.New("recording: nil render pass descriptor")
	}
	v, ok := desc.View.(*handle)
	if !ok {
		return nil, errForeign
	}
	if !e.drv.journal.isLive(v.id) {
		return nil, ErrReleased
	}
	e.open = true
	e.drv.journal.record(Call{Op: OpBeginPass, Target: v.id, Clear: desc.ClearValue, Label: desc.Label})
	return &pass{enc: e}, nil
}

func (e *encoder) Finish() (backend.CommandBuffer, error) {
	if e.open {
		return nil, errors.New("recording: render pass still open")
	}
	id := e.drv.journal.create(kindCommands)
	e.drv.journal.record(Call{Op: OpFinish, Target: id})
	return &handle{id: id, drv: e.drv}, nil
}

type pass struct {
	enc      *encoder
	pipeline string
}

func (p *pass) SetPipeline(rp backend.RenderPipeline) {
	if h, ok := rp.(*handle); ok {
		p.pipeline = h.id
	}
	p.enc.drv.journal.record(Call{Op: OpSetPipeline, Target: p.pipeline})
}

func (p *pass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.enc.drv.journal.record(Call{
		Op:            OpDraw,
		Target:        p.pipeline,
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
	})
}

func (p *pass) End() error {
	p.enc.open = false
	p.enc.drv.journal.record(Call{Op: OpEndPass})
	return nil
}

type surface struct {
	id         string
	drv        *Driver
	configured bool
	device     string
}

func (s *surface) Capabilities(a backend.Adapter) gputypes.SurfaceCapabilities {
	if _, ok := a.(*adapter); !ok || !s.drv.journal.isLive(s.id) {
		return gputypes.SurfaceCapabilities{}
	}
	return gputypes.SurfaceCapabilities{
		Formats:      s.drv.snapshotFormats(),
		PresentModes: []gputypes.PresentMode{gputypes.PresentModeFifo, gputypes.PresentModeMailbox},
		AlphaModes:   []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque, gputypes.CompositeAlphaModeInherit},
		Usages:       gputypes.TextureUsageRenderAttachment,
	}
}

func (s *surface) Configure(dev backend.Device, cfg *gputypes.SurfaceConfiguration) error {
	if !s.drv.journal.isLive(s.id) {
		return ErrReleased
	}
	d, ok := dev.(*device)
	if !ok {
		return errForeign
	}
	if !s.drv.journal.isLive(d.id) {
		return ErrReleased
	}
	if cfg == nil || cfg.Width == 0 || cfg.Height == 0 {
		return errors.New("recording: zero-sized surface configuration")
	}
	if !slices.Contains(s.drv.snapshotFormats(), cfg.Format) {
		return fmt.Errorf("recording: surface format %v not supported", cfg.Format)
	}
	s.configured = true
	s.device = d.id
	c := *cfg
	c.ViewFormats = slices.Clone(cfg.ViewFormats)
	s.drv.journal.record(Call{Op: OpConfigure, Target: s.id, Config: c})
	return nil
}

func (s *surface) Unconfigure() {
	if !s.configured {
		return
	}
	s.configured = false
	s.drv.journal.record(Call{Op: OpUnconfigure, Target: s.id})
}

func (s *surface) AcquireTexture() *await.Future[backend.SurfaceTexture] {
	if !s.drv.journal.isLive(s.id) {
		return await.Resolved[backend.SurfaceTexture](nil, ErrReleased)
	}
	if !s.configured || !s.drv.journal.isLive(s.device) {
		return await.Resolved[backend.SurfaceTexture](nil, backend.ErrSurfaceLost)
	}
	pending, err := s.drv.nextAcquire()
	if pending {
		return await.New[backend.SurfaceTexture]()
	}
	if err != nil {
		return await.Resolved[backend.SurfaceTexture](nil, err)
	}
	id := s.drv.journal.create(kindTexture)
	s.drv.journal.record(Call{Op: OpAcquire, Target: id})
	return await.Resolved[backend.SurfaceTexture](&texture{id: id, drv: s.drv}, nil)
}

func (s *surface) Present(tex backend.SurfaceTexture) error {
	t, ok := tex.(*texture)
	if !ok {
		return errForeign
	}
	if !s.drv.journal.isLive(s.id) || !s.drv.journal.drop(t.id) {
		return ErrReleased
	}
	s.drv.journal.record(Call{Op: OpPresent, Target: t.id})
	return nil
}

func (s *surface) Release() {
	s.Unconfigure()
	s.drv.journal.release(s.id)
}

type texture struct {
	id  string
	drv *Driver
}

func (t *texture) CreateView() (backend.TextureView, error) {
	if !t.drv.journal.isLive(t.id) {
		return nil, ErrReleased
	}
	id := t.drv.journal.create(kindView)
	t.drv.journal.record(Call{Op: OpCreateView, Target: id})
	return &handle{id: id, drv: t.drv}, nil
}

func (t *texture) Discard() {
	if t.drv.journal.drop(t.id) {
		t.drv.journal.record(Call{Op: OpDiscard, Target: t.id})
	}
}
