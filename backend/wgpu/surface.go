// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

type surface struct{ surf *wgpu.Surface }

func (s *surface) Capabilities(a backend.Adapter) gputypes.SurfaceCapabilities {
	ad, ok := a.(*adapter)
	if !ok {
		return gputypes.SurfaceCapabilities{}
	}
	caps := ad.a.GetSurfaceCapabilities(s.surf)
	if caps == nil {
		return gputypes.SurfaceCapabilities{}
	}
	return gputypes.SurfaceCapabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
		Usages:       gputypes.TextureUsageRenderAttachment,
	}
}

func (s *surface) Configure(dev backend.Device, cfg *gputypes.SurfaceConfiguration) error {
	d, ok := dev.(*device)
	if !ok {
		return errForeign
	}
	if cfg.DesiredMaximumFrameLatency != 0 || len(cfg.ViewFormats) != 0 {
		surfacekit.Logger().Debug("wgpu: frame latency and view formats are managed by the driver",
			"latency", cfg.DesiredMaximumFrameLatency,
			"viewFormats", len(cfg.ViewFormats))
	}
	return s.surf.Configure(d.d, &wgpu.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		PresentMode: cfg.PresentMode,
		AlphaMode:   cfg.AlphaMode,
	})
}

func (s *surface) Unconfigure() { s.surf.Unconfigure() }
func (s *surface) Release()     { s.surf.Release() }

func (s *surface) AcquireTexture() *await.Future[backend.SurfaceTexture] {
	st, suboptimal, err := s.surf.GetCurrentTexture()
	if err != nil {
		return await.Resolved[backend.SurfaceTexture](nil, mapAcquireError(err))
	}
	if suboptimal {
		surfacekit.Logger().Debug("wgpu: acquired suboptimal surface texture")
	}
	return await.Resolved[backend.SurfaceTexture](surfaceTexture{st: st, surf: s.surf}, nil)
}

func (s *surface) Present(tex backend.SurfaceTexture) error {
	st, ok := tex.(surfaceTexture)
	if !ok {
		return errForeign
	}
	return mapAcquireError(s.surf.Present(st.st))
}

type surfaceTexture struct {
	st   *wgpu.SurfaceTexture
	surf *wgpu.Surface
}

func (t surfaceTexture) CreateView() (backend.TextureView, error) {
	v, err := t.st.CreateView(nil)
	if err != nil {
		return nil, err
	}
	return textureView{v: v}, nil
}

func (t surfaceTexture) Discard() { t.surf.DiscardTexture() }

type textureView struct{ v *wgpu.TextureView }

func (v textureView) Release() { v.v.Release() }
