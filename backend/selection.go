// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit"
)

// EnvBackend is the environment variable that overrides backend selection.
const EnvBackend = "WGPU_BACKEND"

// Selection is the set of graphics backends an instance may use.
type Selection = gputypes.Backends

// ParseSelection parses a comma-separated backend list such as
// "vulkan,gl". Names are case-insensitive. Unknown names are logged and
// skipped; an empty result falls back to all backends.
func ParseSelection(s string) Selection {
	var sel Selection
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		b, ok := backendNames[name]
		if !ok {
			surfacekit.Logger().Warn("backend: ignoring unknown backend name", "name", name)
			continue
		}
		sel |= b
	}
	if sel == gputypes.BackendsNone {
		return gputypes.BackendsAll
	}
	return sel
}

// SelectionFromEnv reads EnvBackend through lookup (usually os.LookupEnv).
// It returns all backends when the variable is unset.
func SelectionFromEnv(lookup func(string) (string, bool)) Selection {
	if lookup == nil {
		return gputypes.BackendsAll
	}
	v, ok := lookup(EnvBackend)
	if !ok {
		return gputypes.BackendsAll
	}
	return ParseSelection(v)
}

// SelectionString renders sel as a comma-separated list in a stable order.
func SelectionString(sel Selection) string {
	if sel == gputypes.BackendsAll {
		return "all"
	}
	var parts []string
	for _, b := range []gputypes.Backend{
		gputypes.BackendVulkan,
		gputypes.BackendMetal,
		gputypes.BackendDX12,
		gputypes.BackendGL,
		gputypes.BackendBrowserWebGPU,
	} {
		if sel.Contains(b) {
			parts = append(parts, strings.ToLower(b.String()))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

var backendNames = map[string]Selection{
	"vulkan":  gputypes.BackendsVulkan,
	"vk":      gputypes.BackendsVulkan,
	"metal":   gputypes.BackendsMetal,
	"mtl":     gputypes.BackendsMetal,
	"dx12":    gputypes.BackendsDX12,
	"d3d12":   gputypes.BackendsDX12,
	"gl":      gputypes.BackendsGL,
	"gles":    gputypes.BackendsGL,
	"opengl":  gputypes.BackendsGL,
	"webgpu":  gputypes.BackendsBrowserWebGPU,
	"primary": gputypes.BackendsPrimary,
	"all":     gputypes.BackendsAll,
}
