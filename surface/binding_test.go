// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	"github.com/gogpu/surfacekit/backend/recording"
	"github.com/gogpu/surfacekit/platform"
)

// orderedWindow records whether its surface was still live when the window
// was destroyed.
type orderedWindow struct {
	*platform.HeadlessWindow
	journal         *recording.Journal
	destroyedBefore bool
}

func (w *orderedWindow) Destroy() {
	for _, id := range w.journal.Live() {
		if len(id) >= 7 && id[:7] == "surface" {
			w.destroyedBefore = true
		}
	}
	w.HeadlessWindow.Destroy()
}

func newWindow(t *testing.T, width, height uint32) *platform.HeadlessWindow {
	t.Helper()
	f := platform.NewHeadlessFactory(nil, platform.WindowConfig{Width: 1, Height: 1})
	f.Resize(width, height)
	win, err := f.CreateWindow(platform.WindowConfig{})
	if err != nil {
		t.Fatal(err)
	}
	return win.(*platform.HeadlessWindow)
}

func newInstance(t *testing.T, opts ...recording.Option) (*recording.Driver, backend.Instance) {
	t.Helper()
	drv := recording.NewDriver(opts...)
	inst, err := drv.CreateInstance(gputypes.BackendsAll)
	if err != nil {
		t.Fatal(err)
	}
	return drv, inst
}

func TestBindUnbindOrder(t *testing.T) {
	drv, inst := newInstance(t)
	win := &orderedWindow{HeadlessWindow: newWindow(t, 640, 480), journal: drv.Journal()}

	b, err := Bind(inst, win)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if w, h := b.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w, h)
	}

	b.Unbind()
	if win.destroyedBefore {
		t.Error("window destroyed while its surface was still live")
	}
	if !win.Destroyed() {
		t.Error("Unbind() did not destroy the window")
	}
	if live := drv.Journal().Live(); len(live) != 0 {
		t.Errorf("live after Unbind: %v", live)
	}
	if !b.Released() {
		t.Error("Released() = false after Unbind")
	}
}

func TestUnbindIdempotent(t *testing.T) {
	drv, inst := newInstance(t)
	b, err := Bind(inst, newWindow(t, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	b.Unbind()
	b.Unbind()
	if n := drv.Journal().Count(recording.OpRelease); n != 1 {
		t.Errorf("surface released %d times, want 1", n)
	}
	if w, h := b.Size(); w != 0 || h != 0 {
		t.Errorf("Size() after Unbind = %dx%d, want 0x0", w, h)
	}
}

func TestBindZeroSizedWindow(t *testing.T) {
	drv, inst := newInstance(t)
	win := newWindow(t, 0, 480)
	_, err := Bind(inst, win)
	if !errors.Is(err, surfacekit.ErrSurfaceCreation) {
		t.Errorf("Bind() error = %v, want ErrSurfaceCreation", err)
	}
	if !win.Destroyed() {
		t.Error("rejected window should be destroyed")
	}
	if drv.Journal().Count(recording.OpCreateSurface) != 0 {
		t.Error("no surface should be created for a zero-sized window")
	}
}

func TestBindBackendRejects(t *testing.T) {
	boom := errors.New("unsupported handle")
	_, inst := newInstance(t, recording.WithSurfaceError(boom))
	win := newWindow(t, 100, 100)
	_, err := Bind(inst, win)
	if !errors.Is(err, surfacekit.ErrSurfaceCreation) || !errors.Is(err, boom) {
		t.Errorf("Bind() error = %v, want ErrSurfaceCreation wrapping boom", err)
	}
	if !win.Destroyed() {
		t.Error("rejected window should be destroyed")
	}
}

func TestBindNil(t *testing.T) {
	if _, err := Bind(nil, nil); !errors.Is(err, surfacekit.ErrSurfaceCreation) {
		t.Errorf("Bind(nil, nil) error = %v", err)
	}
}

func TestFormats(t *testing.T) {
	drv, inst := newInstance(t)
	b, err := Bind(inst, newWindow(t, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Unbind()
	ad, err := awaitAdapter(inst, b)
	if err != nil {
		t.Fatal(err)
	}
	formats, err := b.Formats(ad)
	if err != nil || len(formats) != 2 {
		t.Errorf("Formats() = %v, %v; want two formats", formats, err)
	}

	drv.SetFormats()
	if _, err := b.Formats(ad); !errors.Is(err, ErrNoFormats) || !errors.Is(err, surfacekit.ErrSurfaceCreation) {
		t.Errorf("Formats() with none advertised error = %v", err)
	}
	ad.Release()
}

func TestAccessorsPanicAfterUnbind(t *testing.T) {
	_, inst := newInstance(t)
	b, err := Bind(inst, newWindow(t, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	b.Unbind()
	defer func() {
		if recover() == nil {
			t.Error("Surface() after Unbind did not panic")
		}
	}()
	_ = b.Surface()
}
