// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		name  string
		wp    gpucontext.WindowProvider
		wantW uint32
		wantH uint32
	}{
		{"unit scale", gpucontext.NullWindowProvider{W: 800, H: 600}, 800, 600},
		{"retina", gpucontext.NullWindowProvider{W: 800, H: 600, SF: 2}, 1600, 1200},
		{"fractional", gpucontext.NullWindowProvider{W: 101, H: 33, SF: 1.5}, 152, 50},
		{"zero", gpucontext.NullWindowProvider{}, 0, 0},
		{"negative", gpucontext.NullWindowProvider{W: -5, H: 10}, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := PhysicalSize(tt.wp)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("PhysicalSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestHeadlessFactoryDefaults(t *testing.T) {
	f := NewHeadlessFactory(nil, WindowConfig{})
	win, err := f.CreateWindow(WindowConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := win.PhysicalSize(); w != 800 || h != 600 {
		t.Errorf("PhysicalSize() = %dx%d, want 800x600", w, h)
	}
	if win.NativeHandles() != (NativeHandles{}) {
		t.Error("headless window should have no native handles")
	}
	if f.Current().Title() != "surfacekit" {
		t.Errorf("Title() = %q", f.Current().Title())
	}
}

func TestHeadlessWindowScale(t *testing.T) {
	f := NewHeadlessFactory(nil, WindowConfig{Width: 400, Height: 300, ScaleFactor: 2})
	win, _ := f.CreateWindow(WindowConfig{Title: "hidpi"})
	if w, h := win.PhysicalSize(); w != 800 || h != 600 {
		t.Errorf("PhysicalSize() = %dx%d, want 800x600", w, h)
	}
	if w, h := win.Size(); w != 400 || h != 300 {
		t.Errorf("Size() = %dx%d, want 400x300", w, h)
	}
	if f.Current().Title() != "hidpi" {
		t.Errorf("Title() = %q, want hidpi", f.Current().Title())
	}
}

func TestHeadlessResizeCarriesOver(t *testing.T) {
	f := NewHeadlessFactory(nil, WindowConfig{Width: 100, Height: 100})
	first, _ := f.CreateWindow(WindowConfig{})
	f.Resize(320, 240)
	if w, h := first.PhysicalSize(); w != 320 || h != 240 {
		t.Errorf("current window = %dx%d, want 320x240", w, h)
	}
	first.Destroy()
	second, _ := f.CreateWindow(WindowConfig{})
	if w, h := second.PhysicalSize(); w != 320 || h != 240 {
		t.Errorf("next window = %dx%d, want 320x240", w, h)
	}
	if f.Created() != 2 {
		t.Errorf("Created() = %d, want 2", f.Created())
	}
}

func TestHeadlessRedrawForwarding(t *testing.T) {
	l := NewLoop()
	f := NewHeadlessFactory(l, WindowConfig{})
	win, _ := f.CreateWindow(WindowConfig{})
	win.RequestRedraw()

	if ev, _ := l.next(); ev != (RedrawRequested{}) {
		t.Errorf("loop next = %v, want RedrawRequested", ev)
	}

	win.Destroy()
	win.RequestRedraw()
	if ev, _ := l.next(); ev != nil {
		t.Errorf("destroyed window forwarded a redraw: %v", ev)
	}
	if got := f.Current().Redraws(); got != 1 {
		t.Errorf("Redraws() = %d, want 1", got)
	}
}

func TestHeadlessFailNext(t *testing.T) {
	boom := errors.New("no display")
	f := NewHeadlessFactory(nil, WindowConfig{})
	f.FailNext(boom)
	if _, err := f.CreateWindow(WindowConfig{}); !errors.Is(err, boom) {
		t.Errorf("CreateWindow() error = %v, want boom", err)
	}
	if _, err := f.CreateWindow(WindowConfig{}); err != nil {
		t.Errorf("second CreateWindow() error = %v", err)
	}
}

func TestHeadlessSuspendSafe(t *testing.T) {
	f := NewHeadlessFactory(nil, WindowConfig{})
	f.SetSuspendSafe(true)
	win, _ := f.CreateWindow(WindowConfig{})
	ss, ok := win.(SuspendSafe)
	if !ok || !ss.SurvivesSuspend() {
		t.Error("window should report SurvivesSuspend")
	}
}

func TestScriptAppliesResize(t *testing.T) {
	f := NewHeadlessFactory(nil, WindowConfig{Width: 10, Height: 10})
	win, _ := f.CreateWindow(WindowConfig{})
	s := NewScript(f, Resumed{}, Resized{Width: 640, Height: 480})

	ctx := context.Background()
	if _, err := s.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if w, _ := win.PhysicalSize(); w != 10 {
		t.Error("resize applied before its event was pulled")
	}
	if _, err := s.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if w, h := win.PhysicalSize(); w != 640 || h != 480 {
		t.Errorf("PhysicalSize() = %dx%d, want 640x480", w, h)
	}
	if _, err := s.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d", s.Remaining())
	}
}

func TestDesktopSequence(t *testing.T) {
	seq := DesktopSequence(2)
	want := []Event{Resumed{}, WindowCreated{}, RedrawRequested{}, RedrawRequested{}, CloseRequested{}}
	if len(seq) != len(want) {
		t.Fatalf("len = %d, want %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want[i])
		}
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"resumed", Resumed{}},
		{"Suspend", Suspended{}},
		{"window-created", WindowCreated{}},
		{"redraw", RedrawRequested{}},
		{"close", CloseRequested{}},
		{"resize 800x600", Resized{Width: 800, Height: 600}},
		{"key 4", KeyPressed{Key: gpucontext.Key(4)}},
		{"pointer 1.5,2", Pointer{gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 1.5, Y: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEvent(tt.in)
			if err != nil {
				t.Fatalf("ParseEvent(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEvent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEventErrors(t *testing.T) {
	for _, in := range []string{"", "explode", "resize", "resize 800", "resize ax600", "resumed now", "pointer 1", "key x"} {
		if ev, err := ParseEvent(in); err == nil {
			t.Errorf("ParseEvent(%q) = %v, want error", in, ev)
		}
	}
}

func TestEventStrings(t *testing.T) {
	if got := (Resized{Width: 3, Height: 4}).String(); got != "Resized(3x4)" {
		t.Errorf("Resized.String() = %q", got)
	}
	if got := (RedrawRequested{}).String(); got != "RedrawRequested" {
		t.Errorf("RedrawRequested.String() = %q", got)
	}
}
