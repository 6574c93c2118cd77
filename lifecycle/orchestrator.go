// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lifecycle

import (
	"context"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/internal/await"
	"github.com/gogpu/surfacekit/platform"
	"github.com/gogpu/surfacekit/render"
	"github.com/gogpu/surfacekit/surface"
	"github.com/gogpu/surfacekit/swapchain"
)

// Stats counts what the orchestrator has done since New.
type Stats struct {
	Resumes        int // Resumed events handled
	Suspends       int // Suspended events handled
	ContextBuilds  int // render contexts built
	Configures     int // swapchain configurations applied
	Frames         int // frames presented
	DroppedRedraws int // redraws ignored because the state was not Ready
	Recoveries     int // frames dropped and swapchain reconfigured
	InputEvents    int // pointer and key events seen
}

// Orchestrator drives the surface lifecycle from platform events. It owns
// the surface binding and the render context and is the only code that
// creates or releases them.
//
// An Orchestrator must only be used from the goroutine running the event
// loop. It is not safe for concurrent use.
type Orchestrator struct {
	inst    backend.Instance
	factory platform.WindowFactory
	opts    options

	state   State
	binding *surface.Binding
	rc      *render.Context
	swap    swapchain.Configurator
	stats   Stats
}

// New creates an orchestrator in StateUninitialized. No window is created
// until the first Resumed event.
func New(inst backend.Instance, factory platform.WindowFactory, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		inst:    inst,
		factory: factory,
		opts:    defaultOptions(),
	}
	for _, opt := range opts {
		opt(&o.opts)
	}
	return o
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// Stats returns a snapshot of the counters.
func (o *Orchestrator) Stats() Stats { return o.stats }

// DeviceProvider returns the current render context for libraries that
// draw with a shared device. It reports false when no context exists.
func (o *Orchestrator) DeviceProvider() (gpucontext.DeviceProvider, bool) {
	if o.rc == nil {
		return nil, false
	}
	return o.rc, true
}

// Handle processes one platform event. It is a platform.Handler.
//
// A non-nil error is fatal: the orchestrator cannot continue and the host
// should report surfacekit.Stage(err) and exit. Events arriving after
// CloseRequested are ignored.
func (o *Orchestrator) Handle(ctx context.Context, ev platform.Event) error {
	log := surfacekit.Logger()
	if o.state == StateClosed {
		log.Debug("lifecycle: event after close ignored", "event", ev.String())
		return nil
	}
	switch e := ev.(type) {
	case platform.Resumed:
		return o.resume(ctx)
	case platform.Suspended:
		o.suspend()
		return nil
	case platform.WindowCreated:
		log.Debug("lifecycle: window created", "state", o.state.String())
		return nil
	case platform.Resized:
		return o.resize(e)
	case platform.RedrawRequested:
		return o.redraw(ctx)
	case platform.CloseRequested:
		o.Close()
		return nil
	case platform.Pointer, platform.KeyPressed:
		o.stats.InputEvents++
		log.Debug("lifecycle: input", "event", ev.String())
		return nil
	default:
		log.Debug("lifecycle: unhandled event", "event", ev.String())
		return nil
	}
}

func (o *Orchestrator) setState(s State) {
	if s == o.state {
		return
	}
	surfacekit.Logger().Info("lifecycle: state", "from", o.state.String(), "to", s.String())
	o.state = s
}

// resume binds a window if there is none, builds a render context if there
// is none, configures the swapchain and requests a redraw. On failure
// everything this call created is released.
func (o *Orchestrator) resume(ctx context.Context) error {
	o.stats.Resumes++
	// Negotiation is not cancelable once started.
	ctx = context.WithoutCancel(ctx)

	var newBinding, newContext bool
	rollback := func(err error) error {
		if newContext {
			o.rc.Release()
			o.rc = nil
		}
		if newBinding {
			o.binding.Unbind()
			o.binding = nil
			o.swap.Forget()
		}
		if o.binding != nil {
			o.setState(StateHasWindow)
		}
		return err
	}

	if o.binding == nil {
		win, err := o.factory.CreateWindow(o.opts.window)
		if err != nil {
			return fmt.Errorf("lifecycle: resume: create window: %w: %w", surfacekit.ErrSurfaceCreation, err)
		}
		b, err := surface.Bind(o.inst, win)
		if err != nil {
			return fmt.Errorf("lifecycle: resume: %w", err)
		}
		o.binding, newBinding = b, true
	}

	if o.rc != nil && !o.contextFits() {
		surfacekit.Logger().Warn("lifecycle: kept context does not fit the new surface, rebuilding",
			"format", o.rc.Format().String())
		o.rc.Release()
		o.rc = nil
	}
	if o.rc == nil {
		rc, err := o.negotiate(ctx)
		if err != nil {
			return rollback(err)
		}
		o.rc, newContext = rc, true
		o.stats.ContextBuilds++
	}

	if err := o.configure(); err != nil {
		return rollback(fmt.Errorf("lifecycle: resume: %w", err))
	}
	if o.state == StateReady {
		o.binding.Window().RequestRedraw()
	}
	return nil
}

// negotiate requests an adapter compatible with the bound surface, picks
// the color format from the surface capabilities and builds the context.
func (o *Orchestrator) negotiate(ctx context.Context) (*render.Context, error) {
	adapter, err := await.Block(ctx, o.inst.RequestAdapter(&backend.AdapterOptions{
		PowerPreference:      o.opts.power,
		ForceFallbackAdapter: o.opts.forceFallback,
		CompatibleSurface:    o.binding.Surface(),
	}))
	if err != nil {
		return nil, fmt.Errorf("lifecycle: request adapter: %w: %w", surfacekit.ErrAdapterNotFound, err)
	}
	formats, err := o.binding.Formats(adapter)
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("lifecycle: surface formats: %w", err)
	}
	format := render.ChooseFormat(formats)
	surfacekit.Logger().Debug("lifecycle: format chosen", "format", format.String(), "advertised", len(formats))
	return render.Build(ctx, adapter, format)
}

// contextFits reports whether the kept context can present to the newly
// bound surface with its fixed format.
func (o *Orchestrator) contextFits() bool {
	caps := o.binding.Surface().Capabilities(o.rc.GPUAdapter())
	return slices.Contains(caps.Formats, o.rc.Format())
}

// configure applies the swapchain configuration and moves to Ready, or to
// HasWindow when the window has zero area.
func (o *Orchestrator) configure() error {
	_, ok, err := o.swap.Configure(o.binding, o.rc)
	if err != nil {
		return err
	}
	if !ok {
		o.setState(StateHasWindow)
		return nil
	}
	o.stats.Configures++
	o.setState(StateReady)
	return nil
}

// suspend drops the binding and, unless it may be kept, the context.
func (o *Orchestrator) suspend() {
	o.stats.Suspends++
	keep := o.opts.keepContext && o.rc != nil && o.binding != nil && survivesSuspend(o.binding.Window())
	if o.binding != nil {
		o.binding.Unbind()
		o.binding = nil
		o.swap.Forget()
	}
	if o.rc != nil && !keep {
		o.rc.Release()
		o.rc = nil
	}
	surfacekit.Logger().Debug("lifecycle: suspended", "context_kept", keep)
	o.setState(StateSuspended)
}

func survivesSuspend(w platform.Window) bool {
	s, ok := w.(platform.SuspendSafe)
	return ok && s.SurvivesSuspend()
}

// resize reconfigures the swapchain for the window's current size. It is a
// no-op unless a window and context exist.
func (o *Orchestrator) resize(e platform.Resized) error {
	if o.binding == nil || o.rc == nil {
		surfacekit.Logger().Debug("lifecycle: resize ignored", "state", o.state.String(), "event", e.String())
		return nil
	}
	if err := o.configure(); err != nil {
		return fmt.Errorf("lifecycle: resize: %w", err)
	}
	if o.state == StateReady {
		o.binding.Window().RequestRedraw()
	}
	return nil
}

// redraw draws one frame when Ready and silently drops the request
// otherwise.
func (o *Orchestrator) redraw(ctx context.Context) error {
	log := surfacekit.Logger()
	if o.state != StateReady {
		o.stats.DroppedRedraws++
		log.Debug("lifecycle: redraw dropped", "state", o.state.String())
		return nil
	}
	if o.opts.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.opts.acquireTimeout)
		defer cancel()
	}
	err := o.rc.DrawFrame(ctx, o.binding.Surface(), o.opts.clear)
	if err == nil {
		o.stats.Frames++
		return nil
	}
	if !o.opts.recovery || !surfacekit.IsFrameError(err) {
		return fmt.Errorf("lifecycle: redraw: %w", err)
	}

	o.stats.Recoveries++
	log.Warn("lifecycle: frame dropped, reconfiguring", "err", err)
	if err := o.configure(); err != nil {
		return fmt.Errorf("lifecycle: redraw recovery: %w", err)
	}
	if o.state == StateReady {
		o.binding.Window().RequestRedraw()
	}
	return nil
}

// Close releases the binding and context, moves to StateClosed and calls
// the exit function. Later events are ignored. Close is idempotent.
func (o *Orchestrator) Close() {
	if o.state == StateClosed {
		return
	}
	if o.binding != nil {
		o.binding.Unbind()
		o.binding = nil
		o.swap.Forget()
	}
	if o.rc != nil {
		o.rc.Release()
		o.rc = nil
	}
	o.setState(StateClosed)
	if o.opts.exit != nil {
		o.opts.exit()
	}
}
