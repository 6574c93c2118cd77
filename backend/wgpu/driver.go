// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/wgpu"
	_ "github.com/gogpu/wgpu/hal/allbackends" // link every HAL backend for this OS

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

func init() {
	backend.Register(backend.DriverWGPU, func() backend.Driver { return Driver{} })
}

// Driver is the gogpu/wgpu backend.Driver.
type Driver struct{}

// Name implements backend.Driver.
func (Driver) Name() string { return backend.DriverWGPU }

// CreateInstance implements backend.Driver.
func (Driver) CreateInstance(sel backend.Selection) (backend.Instance, error) {
	inst, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: sel})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	return &instance{inst: inst, sel: sel}, nil
}

type instance struct {
	inst *wgpu.Instance
	sel  backend.Selection
}

func (i *instance) Selection() backend.Selection { return i.sel }

func (i *instance) CreateSurface(display, window uintptr) (backend.Surface, error) {
	if window == 0 {
		return nil, errors.New("wgpu: window has no native handle")
	}
	s, err := i.inst.CreateSurface(display, window)
	if err != nil {
		return nil, err
	}
	return &surface{surf: s}, nil
}

func (i *instance) RequestAdapter(opts *backend.AdapterOptions) *await.Future[backend.Adapter] {
	a, err := i.inst.RequestAdapter(adapterOptions(opts))
	if err != nil {
		surfacekit.Logger().Warn("wgpu: adapter negotiation failed",
			"backends", backend.SelectionString(i.sel),
			"err", err)
		return await.Resolved[backend.Adapter](nil, mapAdapterError(err))
	}
	logGPUInfo(a.Info())
	return await.Resolved[backend.Adapter](&adapter{a: a}, nil)
}

func (i *instance) Release() { i.inst.Release() }

// adapterOptions converts driver-neutral options. A surface from another
// driver is ignored rather than rejected.
func adapterOptions(opts *backend.AdapterOptions) *wgpu.RequestAdapterOptions {
	if opts == nil {
		return nil
	}
	out := &wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	}
	if s, ok := opts.CompatibleSurface.(*surface); ok {
		out.CompatibleSurface = s.surf
	}
	return out
}

func mapAdapterError(err error) error {
	if errors.Is(err, wgpu.ErrNoAdapters) || errors.Is(err, wgpu.ErrNoBackends) {
		return fmt.Errorf("%w: %w", backend.ErrNoAdapter, err)
	}
	return err
}

// mapAcquireError translates presentation failures into the driver-neutral
// errors the lifecycle layer understands.
func mapAcquireError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wgpu.ErrTimeout):
		return fmt.Errorf("%w: %w", backend.ErrTimeout, err)
	case errors.Is(err, wgpu.ErrSurfaceLost), errors.Is(err, wgpu.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", backend.ErrSurfaceLost, err)
	default:
		return err
	}
}
