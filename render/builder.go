// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

// Build creates a Context for adapter rendering to format:
//
//  1. request a device and queue with no optional features and
//     RequiredLimits(adapter.Limits());
//  2. check and compile the embedded triangle program;
//  3. create a pipeline layout without bind groups;
//  4. create the render pipeline with format as its only color target.
//
// Build takes ownership of adapter. On success the Context releases it; on
// failure Build releases it together with everything created so far.
// Device failures wrap surfacekit.ErrDeviceRequestFailed and program
// failures wrap surfacekit.ErrShaderCompile. There is no fallback program.
//
// ctx bounds the wait for the device.
func Build(ctx context.Context, adapter backend.Adapter, format gputypes.TextureFormat) (*Context, error) {
	if adapter == nil {
		return nil, fmt.Errorf("render: build: %w: nil adapter", surfacekit.ErrDeviceRequestFailed)
	}
	c := &Context{adapter: adapter, info: adapter.Info(), format: format}
	if err := c.build(ctx); err != nil {
		c.Release()
		return nil, err
	}
	c.epoch = epochs.Add(1)

	log := surfacekit.Logger()
	log.Info("render: context ready",
		"epoch", c.epoch,
		"adapter", c.info.Name,
		"backend", c.info.Backend.String(),
		"type", c.info.DeviceType.String(),
		"format", format.String(),
	)
	log.Debug("render: adapter limits", "webgpu_compliant", webGPUCompliant(adapter.Limits()))
	return c, nil
}

func (c *Context) build(ctx context.Context) error {
	if c.format == gputypes.TextureFormatUndefined {
		return fmt.Errorf("render: build: %w: undefined color format", surfacekit.ErrSurfaceCreation)
	}

	dev, err := await.Block(ctx, c.adapter.RequestDevice(&backend.DeviceDescriptor{
		Label:          "surfacekit device",
		RequiredLimits: RequiredLimits(c.adapter.Limits()),
	}))
	if err != nil {
		return fmt.Errorf("render: request device: %w: %w", surfacekit.ErrDeviceRequestFailed, err)
	}
	c.device = dev
	c.queue = dev.Queue()

	src := TriangleWGSL()
	if err := CheckShader(src); err != nil {
		return fmt.Errorf("render: %w: %w", surfacekit.ErrShaderCompile, err)
	}
	c.shader, err = dev.CreateShaderModule(&backend.ShaderModuleDescriptor{Label: "triangle", WGSL: src})
	if err != nil {
		return fmt.Errorf("render: compile shader: %w: %w", surfacekit.ErrShaderCompile, err)
	}

	c.layout, err = dev.CreatePipelineLayout(&backend.PipelineLayoutDescriptor{Label: "triangle layout"})
	if err != nil {
		return fmt.Errorf("render: pipeline layout: %w: %w", surfacekit.ErrShaderCompile, err)
	}

	c.pipeline, err = dev.CreateRenderPipeline(&backend.RenderPipelineDescriptor{
		Label:            "triangle pipeline",
		Layout:           c.layout,
		Module:           c.shader,
		VertexEntryPoint: VertexEntryPoint,
		FragEntryPoint:   FragmentEntryPoint,
		Targets: []gputypes.ColorTargetState{{
			Format:    c.format,
			WriteMask: gputypes.ColorWriteMaskAll,
		}},
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("render: render pipeline: %w: %w", surfacekit.ErrShaderCompile, err)
	}
	return nil
}
