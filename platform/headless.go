// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"math"
	"sync"
)

// ErrWindowDestroyed is returned when a destroyed window is used.
var ErrWindowDestroyed = errors.New("platform: window destroyed")

// RedrawSink receives redraw requests from windows. *Loop implements it.
type RedrawSink interface {
	RequestRedraw()
}

// HeadlessFactory creates windows that exist only in memory. They report a
// size and forward redraw requests but carry no native handles, so only
// drivers that do not present to a real display (such as the recording
// driver) can bind surfaces to them.
//
// The factory remembers the most recent size set through Resize so that a
// window created on the next Resumed has the size the platform last
// reported, as on mobile platforms.
type HeadlessFactory struct {
	sink RedrawSink

	mu          sync.Mutex
	cfg         WindowConfig
	physW       uint32
	physH       uint32
	current     *HeadlessWindow
	created     int
	suspendSafe bool
	failNext    error
}

// NewHeadlessFactory returns a factory whose windows forward RequestRedraw
// to sink. A nil sink discards redraw requests. Zero fields in cfg take
// their values from DefaultWindowConfig.
func NewHeadlessFactory(sink RedrawSink, cfg WindowConfig) *HeadlessFactory {
	def := DefaultWindowConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.ScaleFactor <= 0 {
		cfg.ScaleFactor = 1
	}
	f := &HeadlessFactory{sink: sink, cfg: cfg}
	f.physW = toPhysical(cfg.Width, cfg.ScaleFactor)
	f.physH = toPhysical(cfg.Height, cfg.ScaleFactor)
	return f
}

// CreateWindow implements WindowFactory. The cfg argument's title is used;
// the size is the factory's current size.
func (f *HeadlessFactory) CreateWindow(cfg WindowConfig) (Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failNext; err != nil {
		f.failNext = nil
		return nil, err
	}
	title := cfg.Title
	if title == "" {
		title = f.cfg.Title
	}
	f.created++
	w := &HeadlessWindow{
		sink:        f.sink,
		title:       title,
		id:          f.created,
		scale:       f.cfg.ScaleFactor,
		width:       f.physW,
		height:      f.physH,
		suspendSafe: f.suspendSafe,
	}
	f.current = w
	return w, nil
}

// Resize sets the physical size of the current window and of windows
// created later.
func (f *HeadlessFactory) Resize(width, height uint32) {
	f.mu.Lock()
	f.physW, f.physH = width, height
	w := f.current
	f.mu.Unlock()
	if w != nil {
		w.setSize(width, height)
	}
}

// Current returns the most recently created window, or nil.
func (f *HeadlessFactory) Current() *HeadlessWindow {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Created returns how many windows the factory has created.
func (f *HeadlessFactory) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

// SetSuspendSafe marks windows created from now on as surviving suspend.
func (f *HeadlessFactory) SetSuspendSafe(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suspendSafe = ok
}

// FailNext makes the next CreateWindow return err.
func (f *HeadlessFactory) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = err
}

// HeadlessWindow is an in-memory Window.
type HeadlessWindow struct {
	sink        RedrawSink
	title       string
	id          int
	scale       float64
	suspendSafe bool

	mu        sync.Mutex
	width     uint32
	height    uint32
	destroyed bool
	redraws   int
}

// Title returns the window title.
func (w *HeadlessWindow) Title() string { return w.title }

// ID returns the window's creation sequence number, starting at 1.
func (w *HeadlessWindow) ID() int { return w.id }

// Size implements gpucontext.WindowProvider. It returns logical points.
func (w *HeadlessWindow) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(math.Round(float64(w.width) / w.scale)), int(math.Round(float64(w.height) / w.scale))
}

// ScaleFactor implements gpucontext.WindowProvider.
func (w *HeadlessWindow) ScaleFactor() float64 { return w.scale }

// RequestRedraw implements gpucontext.WindowProvider. Requests on a
// destroyed window are ignored.
func (w *HeadlessWindow) RequestRedraw() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.redraws++
	w.mu.Unlock()
	if w.sink != nil {
		w.sink.RequestRedraw()
	}
}

// PhysicalSize implements Window.
func (w *HeadlessWindow) PhysicalSize() (width, height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// NativeHandles implements Window. Headless windows have no native
// handles; the window handle is zero.
func (w *HeadlessWindow) NativeHandles() NativeHandles { return NativeHandles{} }

// Destroy implements Window.
func (w *HeadlessWindow) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (w *HeadlessWindow) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Redraws returns how many redraw requests the window forwarded.
func (w *HeadlessWindow) Redraws() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.redraws
}

// SurvivesSuspend implements SuspendSafe.
func (w *HeadlessWindow) SurvivesSuspend() bool { return w.suspendSafe }

func (w *HeadlessWindow) setSize(width, height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}

var (
	_ Window        = (*HeadlessWindow)(nil)
	_ SuspendSafe   = (*HeadlessWindow)(nil)
	_ WindowFactory = (*HeadlessFactory)(nil)
	_ RedrawSink    = (*Loop)(nil)
)
