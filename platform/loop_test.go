// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type recorder struct {
	events []Event
	onEv   func(Event)
}

func (r *recorder) handle(_ context.Context, ev Event) error {
	r.events = append(r.events, ev)
	if r.onEv != nil {
		r.onEv(ev)
	}
	return nil
}

func TestLoopFIFO(t *testing.T) {
	l := NewLoop()
	l.Post(Resumed{})
	l.Post(Resized{Width: 10, Height: 20})
	l.Post(CloseRequested{})

	var r recorder
	if err := l.Run(context.Background(), r.handle); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []Event{Resumed{}, Resized{Width: 10, Height: 20}, CloseRequested{}}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("dispatched %v, want %v", r.events, want)
	}
}

func TestLoopCoalescesRedraw(t *testing.T) {
	l := NewLoop()
	l.Post(Resumed{})
	l.Post(Resized{Width: 1, Height: 1})

	r := recorder{onEv: func(ev Event) {
		if _, ok := ev.(RedrawRequested); !ok {
			l.RequestRedraw()
			l.RequestRedraw()
		}
	}}
	if err := l.Run(context.Background(), r.handle); err != nil {
		t.Fatal(err)
	}
	want := []Event{Resumed{}, Resized{Width: 1, Height: 1}, RedrawRequested{}}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("dispatched %v, want %v", r.events, want)
	}
}

func TestLoopExit(t *testing.T) {
	l := NewLoop()
	l.Post(CloseRequested{})
	l.Post(Resumed{})
	r := recorder{onEv: func(ev Event) {
		if _, ok := ev.(CloseRequested); ok {
			l.Exit()
		}
	}}
	if err := l.Run(context.Background(), r.handle); err != nil {
		t.Fatal(err)
	}
	if len(r.events) != 1 {
		t.Errorf("dispatched %v after Exit, want only CloseRequested", r.events)
	}
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", l.Pending())
	}
}

func TestLoopHandlerError(t *testing.T) {
	boom := errors.New("boom")
	l := NewLoop()
	l.Post(Resumed{})
	l.Post(Suspended{})
	calls := 0
	err := l.Run(context.Background(), func(context.Context, Event) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestLoopContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoop()
	l.Post(Resumed{})
	if err := l.Run(ctx, (&recorder{}).handle); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestLoopSourceAfterQueue(t *testing.T) {
	l := NewLoop()
	l.SetSource(NewScript(nil, Resumed{}, RedrawRequested{}))
	r := recorder{onEv: func(ev Event) {
		if _, ok := ev.(Resumed); ok {
			l.Post(WindowCreated{})
			l.RequestRedraw()
		}
	}}
	if err := l.Run(context.Background(), r.handle); err != nil {
		t.Fatal(err)
	}
	want := []Event{Resumed{}, WindowCreated{}, RedrawRequested{}, RedrawRequested{}}
	if !reflect.DeepEqual(r.events, want) {
		t.Errorf("dispatched %v, want %v", r.events, want)
	}
}
