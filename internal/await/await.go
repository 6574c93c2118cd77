// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package await is the synchronization point between the cooperative event
// loop and asynchronous GPU backend operations.
//
// Backend drivers hand back a Future for every operation that may suspend
// (adapter request, device request, image acquisition). The event loop calls
// Block on it and does nothing else until the Future resolves. This is not a
// task scheduler: there is exactly one waiter per Future and no work is
// moved off the caller's goroutine by this package.
package await

import (
	"context"
	"sync"
)

// Future is a one-shot result produced by an asynchronous backend call.
// The zero value is not usable; create Futures with New or Resolved.
type Future[T any] struct {
	done chan struct{}

	mu       sync.Mutex
	resolved bool
	val      T
	err      error
	discard  func(T)
}

// New returns an unresolved Future. The producer must call Resolve exactly
// once; later calls are ignored.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a Future that is already complete. Drivers whose
// underlying API is synchronous use this.
func Resolved[T any](val T, err error) *Future[T] {
	f := New[T]()
	f.Resolve(val, err)
	return f
}

// Resolve completes the Future. Only the first call has an effect. If the
// waiter has already given up and registered a discard function, it is
// invoked with the late value so the resource is not leaked.
func (f *Future[T]) Resolve(val T, err error) {
	f.mu.Lock()
	if f.resolved {
		f.mu.Unlock()
		return
	}
	f.resolved = true
	f.val, f.err = val, err
	discard := f.discard
	f.discard = nil
	f.mu.Unlock()
	close(f.done)

	if discard != nil && err == nil {
		discard(val)
	}
}

// Done returns a channel closed once the Future resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Discard registers fn to release the value if the Future resolves after the
// waiter abandoned it. If the Future already resolved successfully, fn runs
// immediately.
func (f *Future[T]) Discard(fn func(T)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	if !f.resolved {
		f.discard = fn
		f.mu.Unlock()
		return
	}
	val, err := f.val, f.err
	f.mu.Unlock()
	if err == nil {
		fn(val)
	}
}

func (f *Future[T]) result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.val, f.err
}

// Block waits until f resolves or ctx is done, whichever comes first.
// A resolved Future always wins over an expired ctx, so an operation that
// completed in time is never reported as a timeout.
func Block[T any](ctx context.Context, f *Future[T]) (T, error) {
	select {
	case <-f.done:
		return f.result()
	default:
	}
	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
