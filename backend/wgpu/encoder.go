// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/wgpu"

	"github.com/gogpu/surfacekit/backend"
)

type encoder struct{ e *wgpu.CommandEncoder }

func (e encoder) BeginRenderPass(desc *backend.RenderPassDescriptor) (backend.RenderPassEncoder, error) {
	view, ok := desc.View.(textureView)
	if !ok {
		return nil, errForeign
	}
	p, err := e.e.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: desc.Label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view.v,
			LoadOp:     desc.LoadOp,
			StoreOp:    desc.StoreOp,
			ClearValue: desc.ClearValue,
		}},
	})
	if err != nil {
		return nil, err
	}
	return renderPass{p: p}, nil
}

func (e encoder) Finish() (backend.CommandBuffer, error) {
	cb, err := e.e.Finish()
	if err != nil {
		return nil, err
	}
	return commandBuffer{cb: cb}, nil
}

type renderPass struct{ p *wgpu.RenderPassEncoder }

func (r renderPass) SetPipeline(p backend.RenderPipeline) {
	if rp, ok := p.(renderPipeline); ok {
		r.p.SetPipeline(rp.p)
	}
}

func (r renderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.p.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (r renderPass) End() error { return r.p.End() }

type commandBuffer struct{ cb *wgpu.CommandBuffer }

func (c commandBuffer) Release() { c.cb.Release() }
