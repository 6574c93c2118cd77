// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

// Triangle draw parameters.
const (
	TriangleVertices  = 3
	TriangleInstances = 1
)

// DrawFrame acquires the next image of surf, clears it to clear, draws the
// triangle once, submits the work and presents the image.
//
// Acquisition waits until ctx is done. An expired ctx or a backend timeout
// wraps surfacekit.ErrSurfaceAcquireTimeout; a lost or outdated surface
// wraps surfacekit.ErrSurfaceLost. An image that arrives after the wait was
// abandoned is returned to the swapchain unpresented.
func (c *Context) DrawFrame(ctx context.Context, surf backend.Surface, clear gputypes.Color) error {
	if c.released {
		return fmt.Errorf("render: draw frame: %w: context released", surfacekit.ErrSurfaceLost)
	}
	tex, err := acquire(ctx, surf)
	if err != nil {
		return err
	}

	view, err := tex.CreateView()
	if err != nil {
		tex.Discard()
		return fmt.Errorf("render: create view: %w: %w", surfacekit.ErrSurfaceLost, err)
	}

	cmd, err := c.encode(view, clear)
	if err != nil {
		view.Release()
		tex.Discard()
		return err
	}
	err = c.queue.Submit(cmd)
	view.Release()
	if err != nil {
		cmd.Release()
		tex.Discard()
		return fmt.Errorf("render: submit: %w", err)
	}
	if err := surf.Present(tex); err != nil {
		return fmt.Errorf("render: present: %w: %w", surfacekit.ErrSurfaceLost, err)
	}
	surfacekit.Logger().Debug("render: frame presented", "epoch", c.epoch)
	return nil
}

func acquire(ctx context.Context, surf backend.Surface) (backend.SurfaceTexture, error) {
	fut := surf.AcquireTexture()
	tex, err := await.Block(ctx, fut)
	if err == nil {
		return tex, nil
	}
	select {
	case <-fut.Done():
	default:
		fut.Discard(func(t backend.SurfaceTexture) { t.Discard() })
		return nil, fmt.Errorf("render: acquire: %w: %w", surfacekit.ErrSurfaceAcquireTimeout, err)
	}
	if errors.Is(err, backend.ErrTimeout) {
		return nil, fmt.Errorf("render: acquire: %w: %w", surfacekit.ErrSurfaceAcquireTimeout, err)
	}
	return nil, fmt.Errorf("render: acquire: %w: %w", surfacekit.ErrSurfaceLost, err)
}

// encode records the clear pass and the triangle draw into one command
// buffer.
func (c *Context) encode(view backend.TextureView, clear gputypes.Color) (backend.CommandBuffer, error) {
	enc, err := c.device.CreateCommandEncoder("frame")
	if err != nil {
		return nil, fmt.Errorf("render: command encoder: %w", err)
	}
	pass, err := enc.BeginRenderPass(&backend.RenderPassDescriptor{
		Label:      "clear",
		View:       view,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: clear,
	})
	if err != nil {
		return nil, fmt.Errorf("render: begin pass: %w", err)
	}
	pass.SetPipeline(c.pipeline)
	pass.Draw(TriangleVertices, TriangleInstances, 0, 0)
	if err := pass.End(); err != nil {
		return nil, fmt.Errorf("render: end pass: %w", err)
	}
	cmd, err := enc.Finish()
	if err != nil {
		return nil, fmt.Errorf("render: finish: %w", err)
	}
	return cmd, nil
}
