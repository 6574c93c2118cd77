// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"context"
	"errors"
	"io"
	"sync"
)

// Handler processes one event on the loop goroutine.
type Handler func(ctx context.Context, ev Event) error

// Source produces platform events for a Loop. Next blocks until an event is
// available and returns io.EOF when the source is exhausted.
type Source interface {
	Next(ctx context.Context) (Event, error)
}

// Loop is a single-goroutine event dispatcher.
//
// Events posted with Post are dispatched in FIFO order. Redraw requests
// made through RequestRedraw are coalesced: however many arrive during a
// dispatch turn, at most one RedrawRequested is dispatched after the queue
// drains. When the queue is empty the loop pulls the next event from its
// Source, if any.
//
// Post, RequestRedraw and Exit are safe to call from any goroutine. Run must
// be called from the goroutine that owns the native windows.
type Loop struct {
	source Source

	mu     sync.Mutex
	queue  []Event
	redraw bool
	exit   bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithSource sets the event source consulted when the queue is empty.
func WithSource(s Source) LoopOption {
	return func(l *Loop) { l.source = s }
}

// NewLoop creates an empty loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetSource replaces the event source. Call it before Run.
func (l *Loop) SetSource(s Source) { l.source = s }

// Post appends ev to the queue.
func (l *Loop) Post(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, ev)
}

// RequestRedraw schedules a coalesced RedrawRequested.
func (l *Loop) RequestRedraw() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redraw = true
}

// Exit makes Run return after the event currently being handled.
func (l *Loop) Exit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.exit = true
}

// Pending returns the number of queued events.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// next pops the next event to dispatch. Queued events come first, then a
// coalesced redraw.
func (l *Loop) next() (ev Event, exit bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.exit {
		return nil, true
	}
	if len(l.queue) > 0 {
		ev = l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		return ev, false
	}
	if l.redraw {
		l.redraw = false
		return RedrawRequested{}, false
	}
	return nil, false
}

// Run dispatches events to h until Exit is called, h returns an error, ctx
// is done, or the loop is idle with an exhausted Source (or none).
func (l *Loop) Run(ctx context.Context, h Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, exit := l.next()
		if exit {
			return nil
		}
		if ev == nil {
			if l.source == nil {
				return nil
			}
			var err error
			ev, err = l.source.Next(ctx)
			if errors.Is(err, io.EOF) {
				l.source = nil
				continue
			}
			if err != nil {
				return err
			}
		}
		if err := h(ctx, ev); err != nil {
			return err
		}
	}
}
