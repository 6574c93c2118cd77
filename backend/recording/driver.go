// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/backend"
)

func init() {
	backend.Register(backend.DriverRecording, func() backend.Driver { return NewDriver() })
}

// Object kinds used in journal ids.
const (
	kindInstance = "instance"
	kindSurface  = "surface"
	kindAdapter  = "adapter"
	kindDevice   = "device"
	kindShader   = "shader"
	kindLayout   = "layout"
	kindPipeline = "pipeline"
	kindTexture  = "texture"
	kindView     = "view"
	kindCommands = "commands"
)

// Driver is an in-memory backend.Driver. Every call is journaled and every
// created object is tracked until released, so tests can assert ordering
// and teardown completeness. Failures are injected through Options or the
// Set methods.
type Driver struct {
	journal *Journal

	mu             sync.Mutex
	formats        []gputypes.TextureFormat
	info           gputypes.AdapterInfo
	limits         gputypes.Limits
	noAdapter      bool
	deviceErr      error
	shaderErr      error
	surfaceErr     error
	acquireErrs    []error
	acquirePending bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithFormats sets the surface formats advertised to every adapter.
func WithFormats(formats ...gputypes.TextureFormat) Option {
	return func(d *Driver) { d.formats = formats }
}

// WithAdapterInfo sets the reported adapter description.
func WithAdapterInfo(info gputypes.AdapterInfo) Option {
	return func(d *Driver) { d.info = info }
}

// WithLimits sets the adapter limits.
func WithLimits(limits gputypes.Limits) Option {
	return func(d *Driver) { d.limits = limits }
}

// WithoutAdapter makes every adapter request fail.
func WithoutAdapter() Option {
	return func(d *Driver) { d.noAdapter = true }
}

// WithDeviceError makes every device request fail with err.
func WithDeviceError(err error) Option {
	return func(d *Driver) { d.deviceErr = err }
}

// WithShaderError makes every shader compilation fail with err.
func WithShaderError(err error) Option {
	return func(d *Driver) { d.shaderErr = err }
}

// WithSurfaceError makes every surface creation fail with err.
func WithSurfaceError(err error) Option {
	return func(d *Driver) { d.surfaceErr = err }
}

// NewDriver creates a recording driver. By default the adapter advertises
// BGRA8Unorm and BGRA8UnormSrgb, in that order, with WebGPU default limits.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		journal: newJournal(),
		formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatBGRA8UnormSrgb,
		},
		info: gputypes.AdapterInfo{
			Name:       "Recording Adapter",
			Vendor:     "gogpu",
			DeviceType: gputypes.DeviceTypeCPU,
			Driver:     "recording",
		},
		limits: gputypes.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements backend.Driver.
func (d *Driver) Name() string { return backend.DriverRecording }

// CreateInstance implements backend.Driver.
func (d *Driver) CreateInstance(sel backend.Selection) (backend.Instance, error) {
	id := d.journal.create(kindInstance)
	d.journal.record(Call{Op: OpCreateInstance, Target: id})
	return &instance{id: id, drv: d, sel: sel}, nil
}

// Journal returns the driver's call journal.
func (d *Driver) Journal() *Journal { return d.journal }

// SetFormats replaces the advertised surface formats.
func (d *Driver) SetFormats(formats ...gputypes.TextureFormat) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.formats = formats
}

// SetSurfaceError sets or clears (nil) the surface creation failure.
func (d *Driver) SetSurfaceError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.surfaceErr = err
}

// SetDeviceError sets or clears (nil) the device request failure.
func (d *Driver) SetDeviceError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deviceErr = err
}

// SetAdapterAvailable toggles whether adapter requests succeed.
func (d *Driver) SetAdapterAvailable(ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.noAdapter = !ok
}

// FailNextAcquire queues err as the result of the next image acquisition.
// Typical values are backend.ErrTimeout and backend.ErrSurfaceLost.
func (d *Driver) FailNextAcquire(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquireErrs = append(d.acquireErrs, err)
}

// SetAcquirePending makes image acquisition never complete while set.
func (d *Driver) SetAcquirePending(pending bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquirePending = pending
}

func (d *Driver) snapshotFormats() []gputypes.TextureFormat {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]gputypes.TextureFormat, len(d.formats))
	copy(out, d.formats)
	return out
}

// nextAcquire reports whether acquisition should hang and pops a queued
// failure, if any.
func (d *Driver) nextAcquire() (pending bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.acquirePending {
		return true, nil
	}
	if len(d.acquireErrs) > 0 {
		err = d.acquireErrs[0]
		d.acquireErrs = d.acquireErrs[1:]
	}
	return false, err
}

func (d *Driver) fault(field *error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *field
}
