// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"

	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
)

func awaitAdapter(inst backend.Instance, b *Binding) (backend.Adapter, error) {
	return await.Block(context.Background(), inst.RequestAdapter(&backend.AdapterOptions{
		CompatibleSurface: b.Surface(),
	}))
}
