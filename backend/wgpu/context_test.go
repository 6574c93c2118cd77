// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"context"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	_ "github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
	"github.com/gogpu/surfacekit/render"
)

// offscreen is a backend.Surface that renders into a plain texture, so a
// frame can be drawn without a native window.
type offscreen struct {
	dev      *wgpu.Device
	tex      *wgpu.Texture
	presents int
}

func newOffscreen(t *testing.T, dev *wgpu.Device, format gputypes.TextureFormat) *offscreen {
	t.Helper()
	tex, err := dev.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "offscreen",
		Size:          wgpu.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	t.Cleanup(tex.Release)
	return &offscreen{dev: dev, tex: tex}
}

func (o *offscreen) Capabilities(backend.Adapter) gputypes.SurfaceCapabilities {
	return gputypes.SurfaceCapabilities{}
}
func (o *offscreen) Configure(backend.Device, *gputypes.SurfaceConfiguration) error { return nil }
func (o *offscreen) Unconfigure()                                                   {}
func (o *offscreen) Release()                                                       {}

func (o *offscreen) AcquireTexture() *await.Future[backend.SurfaceTexture] {
	return await.Resolved[backend.SurfaceTexture](offscreenTexture{o}, nil)
}

func (o *offscreen) Present(backend.SurfaceTexture) error {
	o.presents++
	return nil
}

type offscreenTexture struct{ o *offscreen }

func (t offscreenTexture) CreateView() (backend.TextureView, error) {
	v, err := t.o.dev.CreateTextureView(t.o.tex, nil)
	if err != nil {
		return nil, err
	}
	return textureView{v: v}, nil
}

func (offscreenTexture) Discard() {}

func TestRenderContextOnHeadlessAdapter(t *testing.T) {
	ctx := context.Background()
	inst, err := Driver{}.CreateInstance(gputypes.BackendsAll)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	defer inst.Release()

	ad, err := await.Block(ctx, inst.RequestAdapter(nil))
	if err != nil {
		t.Skipf("no adapter: %v", err)
	}
	if ad.Info().Name == "Mock Adapter" {
		ad.Release()
		t.Skip("mock adapter has no HAL device")
	}

	const format = gputypes.TextureFormatRGBA8Unorm
	rc, err := render.Build(ctx, ad, format)
	if err != nil {
		t.Fatalf("render.Build: %v", err)
	}
	defer rc.Release()

	if rc.Format() != format {
		t.Errorf("Format() = %v, want %v", rc.Format(), format)
	}
	if rc.Epoch() == 0 {
		t.Error("Epoch() = 0")
	}

	dev, ok := rc.Device().(*wgpu.Device)
	if !ok {
		t.Fatalf("Device() = %T, want *wgpu.Device", rc.Device())
	}
	if q, ok := rc.Queue().(*wgpu.Queue); !ok || q == nil {
		t.Fatalf("Queue() = %T, want non-nil *wgpu.Queue", rc.Queue())
	}
	if _, ok := rc.Adapter().(*wgpu.Adapter); !ok {
		t.Errorf("Adapter() = %T, want *wgpu.Adapter", rc.Adapter())
	}

	surf := newOffscreen(t, dev, format)
	if err := rc.DrawFrame(ctx, surf, gputypes.Color{G: 1, A: 1}); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	if surf.presents != 1 {
		t.Errorf("presents = %d, want 1", surf.presents)
	}
}

func TestUnwrap(t *testing.T) {
	q := &wgpu.Queue{}
	if got := backend.Unwrap(queue{q: q}); got != any(q) {
		t.Errorf("Unwrap(queue) = %v, want the *wgpu.Queue", got)
	}
	other := errForeign
	if got := backend.Unwrap(other); got != any(other) {
		t.Errorf("Unwrap(non-wrapper) = %v, want passthrough", got)
	}
}
