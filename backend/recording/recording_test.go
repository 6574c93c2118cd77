// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

func newInstance(t *testing.T, opts ...Option) (*Driver, backend.Instance) {
	t.Helper()
	drv := NewDriver(opts...)
	inst, err := drv.CreateInstance(gputypes.BackendsVulkan)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	return drv, inst
}

func block[T any](t *testing.T, f *await.Future[T]) T {
	t.Helper()
	v, err := await.Block(context.Background(), f)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	return v
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.DriverRecording) {
		t.Fatal("recording driver not registered on import")
	}
	inst, err := backend.Open(backend.DriverRecording, gputypes.BackendsAll)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	inst.Release()
}

func TestOpString(t *testing.T) {
	if got := OpConfigure.String(); got != "Configure" {
		t.Errorf("OpConfigure.String() = %q", got)
	}
	if got := Op(200).String(); got != "Unknown" {
		t.Errorf("Op(200).String() = %q, want Unknown", got)
	}
}

func TestFullFrame(t *testing.T) {
	drv, inst := newInstance(t)
	j := drv.Journal()

	surf, err := inst.CreateSurface(0, 0)
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	ad := block(t, inst.RequestAdapter(&backend.AdapterOptions{CompatibleSurface: surf}))
	if ad.Info().Backend != gputypes.BackendVulkan {
		t.Errorf("adapter backend = %v, want Vulkan", ad.Info().Backend)
	}
	dev := block(t, ad.RequestDevice(&backend.DeviceDescriptor{RequiredLimits: gputypes.DownlevelLimits()}))

	sm, err := dev.CreateShaderModule(&backend.ShaderModuleDescriptor{WGSL: "@vertex fn vs_main() {}"})
	if err != nil {
		t.Fatalf("CreateShaderModule() error = %v", err)
	}
	pl, _ := dev.CreatePipelineLayout(&backend.PipelineLayoutDescriptor{})
	rp, err := dev.CreateRenderPipeline(&backend.RenderPipelineDescriptor{
		Layout:           pl,
		Module:           sm,
		VertexEntryPoint: "vs_main",
		FragEntryPoint:   "fs_main",
		Targets:          []gputypes.ColorTargetState{{Format: gputypes.TextureFormatBGRA8UnormSrgb}},
	})
	if err != nil {
		t.Fatalf("CreateRenderPipeline() error = %v", err)
	}

	cfg := &gputypes.SurfaceConfiguration{Width: 640, Height: 480, Format: gputypes.TextureFormatBGRA8UnormSrgb}
	if err := surf.Configure(dev, cfg); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	tex := block(t, surf.AcquireTexture())
	view, _ := tex.CreateView()
	enc, _ := dev.CreateCommandEncoder("frame")
	pass, err := enc.BeginRenderPass(&backend.RenderPassDescriptor{View: view, ClearValue: gputypes.Color{G: 1, A: 1}})
	if err != nil {
		t.Fatalf("BeginRenderPass() error = %v", err)
	}
	pass.SetPipeline(rp)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		t.Fatal(err)
	}
	cb, err := enc.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Queue().Submit(cb); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	view.Release()
	if err := surf.Present(tex); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	draw, ok := j.Last(OpDraw)
	if !ok || draw.VertexCount != 3 || draw.InstanceCount != 1 {
		t.Errorf("draw = %+v, want 3 vertices x 1 instance", draw)
	}
	pipe, _ := j.Last(OpCreatePipeline)
	if pipe.Format != gputypes.TextureFormatBGRA8UnormSrgb || pipe.Label != "vs_main/fs_main" {
		t.Errorf("pipeline call = %+v", pipe)
	}

	for _, r := range []interface{ Release() }{rp, pl, sm, dev, ad, surf} {
		r.Release()
	}
	if live := j.Live(); len(live) != 0 {
		t.Errorf("Live() = %v, want none\n%s", live, j)
	}
}

func TestConfigureRejectsZeroSize(t *testing.T) {
	_, inst := newInstance(t)
	surf, _ := inst.CreateSurface(0, 0)
	ad := block(t, inst.RequestAdapter(nil))
	dev := block(t, ad.RequestDevice(&backend.DeviceDescriptor{}))
	err := surf.Configure(dev, &gputypes.SurfaceConfiguration{Width: 0, Height: 480, Format: gputypes.TextureFormatBGRA8Unorm})
	if err == nil {
		t.Error("Configure() with zero width should fail")
	}
}

func TestConfigureRejectsUnsupportedFormat(t *testing.T) {
	_, inst := newInstance(t, WithFormats(gputypes.TextureFormatRGBA8Unorm))
	surf, _ := inst.CreateSurface(0, 0)
	ad := block(t, inst.RequestAdapter(nil))
	dev := block(t, ad.RequestDevice(&backend.DeviceDescriptor{}))
	err := surf.Configure(dev, &gputypes.SurfaceConfiguration{Width: 1, Height: 1, Format: gputypes.TextureFormatBGRA8Unorm})
	if err == nil {
		t.Error("Configure() with unadvertised format should fail")
	}
}

func TestFaults(t *testing.T) {
	boom := errors.New("boom")

	t.Run("no adapter", func(t *testing.T) {
		_, inst := newInstance(t, WithoutAdapter())
		_, err := await.Block(context.Background(), inst.RequestAdapter(nil))
		if !errors.Is(err, backend.ErrNoAdapter) {
			t.Errorf("RequestAdapter() error = %v, want ErrNoAdapter", err)
		}
	})
	t.Run("surface", func(t *testing.T) {
		_, inst := newInstance(t, WithSurfaceError(boom))
		if _, err := inst.CreateSurface(1, 2); !errors.Is(err, boom) {
			t.Errorf("CreateSurface() error = %v, want boom", err)
		}
	})
	t.Run("device", func(t *testing.T) {
		_, inst := newInstance(t, WithDeviceError(boom))
		ad := block(t, inst.RequestAdapter(nil))
		if _, err := await.Block(context.Background(), ad.RequestDevice(nil)); !errors.Is(err, boom) {
			t.Errorf("RequestDevice() error = %v, want boom", err)
		}
	})
	t.Run("shader", func(t *testing.T) {
		_, inst := newInstance(t, WithShaderError(boom))
		ad := block(t, inst.RequestAdapter(nil))
		dev := block(t, ad.RequestDevice(nil))
		if _, err := dev.CreateShaderModule(&backend.ShaderModuleDescriptor{WGSL: "x"}); !errors.Is(err, boom) {
			t.Errorf("CreateShaderModule() error = %v, want boom", err)
		}
	})
	t.Run("limits beyond adapter", func(t *testing.T) {
		_, inst := newInstance(t, WithLimits(gputypes.Limits{MaxTextureDimension2D: 2048}))
		ad := block(t, inst.RequestAdapter(nil))
		_, err := await.Block(context.Background(), ad.RequestDevice(&backend.DeviceDescriptor{
			RequiredLimits: gputypes.Limits{MaxTextureDimension2D: 8192},
		}))
		if !errors.Is(err, backend.ErrLimitsExceeded) {
			t.Errorf("RequestDevice() beyond adapter limits error = %v, want ErrLimitsExceeded", err)
		}
	})
	t.Run("storage on a GLES adapter", func(t *testing.T) {
		gles := gputypes.DownlevelLimits()
		gles.MaxStorageBuffersPerShaderStage = 0
		_, inst := newInstance(t, WithLimits(gles))
		ad := block(t, inst.RequestAdapter(nil))
		_, err := await.Block(context.Background(), ad.RequestDevice(&backend.DeviceDescriptor{
			RequiredLimits: gputypes.DownlevelLimits(),
		}))
		if !errors.Is(err, backend.ErrLimitsExceeded) {
			t.Errorf("RequestDevice() error = %v, want ErrLimitsExceeded", err)
		}
	})
}

func TestAcquireFaults(t *testing.T) {
	drv, inst := newInstance(t)
	surf, _ := inst.CreateSurface(0, 0)
	ad := block(t, inst.RequestAdapter(nil))
	dev := block(t, ad.RequestDevice(nil))

	if _, err := await.Block(context.Background(), surf.AcquireTexture()); !errors.Is(err, backend.ErrSurfaceLost) {
		t.Errorf("acquire before configure error = %v, want ErrSurfaceLost", err)
	}
	_ = surf.Configure(dev, &gputypes.SurfaceConfiguration{Width: 8, Height: 8, Format: gputypes.TextureFormatBGRA8Unorm})

	drv.FailNextAcquire(backend.ErrTimeout)
	if _, err := await.Block(context.Background(), surf.AcquireTexture()); !errors.Is(err, backend.ErrTimeout) {
		t.Errorf("acquire error = %v, want ErrTimeout", err)
	}
	tex := block(t, surf.AcquireTexture())
	tex.Discard()
	if drv.Journal().Count(OpDiscard) != 1 {
		t.Error("Discard() not journaled")
	}

	drv.SetAcquirePending(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := await.Block(ctx, surf.AcquireTexture()); !errors.Is(err, context.Canceled) {
		t.Errorf("pending acquire error = %v, want context.Canceled", err)
	}
}

func TestSubmitConsumesCommandBuffer(t *testing.T) {
	drv, inst := newInstance(t)
	ad := block(t, inst.RequestAdapter(nil))
	dev := block(t, ad.RequestDevice(nil))
	enc, _ := dev.CreateCommandEncoder("")
	cb, _ := enc.Finish()
	if err := dev.Queue().Submit(cb); err != nil {
		t.Fatal(err)
	}
	if err := dev.Queue().Submit(cb); !errors.Is(err, ErrReleased) {
		t.Errorf("second Submit() error = %v, want ErrReleased", err)
	}
	dev.Release()
	ad.Release()
	if live := drv.Journal().Live(); len(live) != 0 {
		t.Errorf("Live() = %v, want none", live)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	drv, inst := newInstance(t)
	surf, _ := inst.CreateSurface(0, 0)
	surf.Release()
	surf.Release()
	if n := drv.Journal().Count(OpRelease); n != 1 {
		t.Errorf("release count = %d, want 1", n)
	}
}
