// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"sort"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/surfacekit"
)

// Driver names in priority order: a real GPU first, the in-memory
// recorder as fallback.
const (
	DriverWGPU      = "wgpu"
	DriverRecording = "recording"
)

var drivers = gpucontext.NewRegistry[Driver](
	gpucontext.WithPriority(DriverWGPU, DriverRecording),
)

// Register registers a driver factory with the given name.
// This function is typically called from init() in driver packages:
//
//	func init() {
//	    backend.Register("wgpu", func() backend.Driver { return &Driver{} })
//	}
//
// Register panics if factory is nil or if name is already registered, so
// duplicate registrations are caught during program initialization.
func Register(name string, factory func() Driver) {
	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if drivers.Has(name) {
		panic("backend: Register called twice for " + name)
	}
	drivers.Register(name, factory)
}

// Unregister removes a driver from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	drivers.Unregister(name)
}

// Drivers returns the sorted names of all registered drivers.
func Drivers() []string {
	names := drivers.Available()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a driver with the given name exists.
func IsRegistered(name string) bool {
	return drivers.Has(name)
}

// Open creates an Instance using the named driver. An empty name selects
// the highest-priority registered driver. Open performs no I/O beyond
// backend enumeration.
func Open(name string, sel Selection) (Instance, error) {
	if name == "" {
		name = drivers.BestName()
		if name == "" {
			return nil, ErrNoDriver
		}
	}
	if !drivers.Has(name) {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownDriver, name)
	}
	d := drivers.Get(name)
	inst, err := d.CreateInstance(sel)
	if err != nil {
		return nil, fmt.Errorf("backend: open %s: %w", name, err)
	}
	surfacekit.Logger().Info("backend: instance created",
		"driver", d.Name(),
		"backends", SelectionString(sel))
	return inst, nil
}
