// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lifecycle

import (
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit/platform"
)

// DefaultAcquireTimeout bounds image acquisition when no timeout is set.
const DefaultAcquireTimeout = time.Second

// DefaultClearColor is the background every frame is cleared to.
var DefaultClearColor = gputypes.Color{R: 0, G: 1, B: 0, A: 1}

// Option configures an Orchestrator.
//
// Example:
//
//	orch := lifecycle.New(inst, factory,
//	    lifecycle.WithSurfaceRecovery(true),
//	    lifecycle.WithExitFunc(loop.Exit),
//	)
type Option func(*options)

type options struct {
	acquireTimeout time.Duration
	recovery       bool
	keepContext    bool
	clear          gputypes.Color
	power          gputypes.PowerPreference
	forceFallback  bool
	window         platform.WindowConfig
	exit           func()
}

func defaultOptions() options {
	return options{
		acquireTimeout: DefaultAcquireTimeout,
		clear:          DefaultClearColor,
		window:         platform.DefaultWindowConfig(),
	}
}

// WithAcquireTimeout bounds how long a redraw waits for the next image.
// Zero or negative waits as long as the Handle context allows.
func WithAcquireTimeout(d time.Duration) Option {
	return func(o *options) {
		o.acquireTimeout = d
	}
}

// WithSurfaceRecovery makes acquire timeouts and lost surfaces during
// redraw non-fatal: the frame is dropped, the swapchain reconfigured and
// another redraw requested. By default they are fatal.
func WithSurfaceRecovery(enabled bool) Option {
	return func(o *options) {
		o.recovery = enabled
	}
}

// WithKeepContextOnSuspend keeps the render context across suspend when the
// window reports, through platform.SuspendSafe, that its handles survive.
// The surface binding is dropped regardless. Windows that do not implement
// SuspendSafe always lose the context.
func WithKeepContextOnSuspend(enabled bool) Option {
	return func(o *options) {
		o.keepContext = enabled
	}
}

// WithClearColor sets the frame background color.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// WithPowerPreference sets the adapter power preference.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.power = p
	}
}

// WithForceFallbackAdapter restricts adapter negotiation to fallback
// (software) adapters.
func WithForceFallbackAdapter(force bool) Option {
	return func(o *options) {
		o.forceFallback = force
	}
}

// WithWindowConfig sets the configuration passed to the window factory.
func WithWindowConfig(cfg platform.WindowConfig) Option {
	return func(o *options) {
		o.window = cfg
	}
}

// WithExitFunc sets the function called once when the orchestrator closes,
// typically the event loop's Exit.
func WithExitFunc(fn func()) Option {
	return func(o *options) {
		o.exit = fn
	}
}
