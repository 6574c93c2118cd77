// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gpucontext"
)

// Resizer applies a size change to the platform before the matching
// Resized event is dispatched. *HeadlessFactory implements it.
type Resizer interface {
	Resize(width, height uint32)
}

// Script is a Source that replays a fixed event sequence, one event per
// pull. It stands in for a real platform in headless runs and tests.
type Script struct {
	events  []Event
	pos     int
	resizer Resizer
}

// NewScript returns a Script over events. If r is non-nil, every Resized
// event is applied to r just before it is handed to the loop.
func NewScript(r Resizer, events ...Event) *Script {
	return &Script{events: events, resizer: r}
}

// Next implements Source.
func (s *Script) Next(ctx context.Context) (Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	if r, ok := ev.(Resized); ok && s.resizer != nil {
		s.resizer.Resize(r.Width, r.Height)
	}
	return ev, nil
}

// Remaining returns the number of events not yet replayed.
func (s *Script) Remaining() int { return len(s.events) - s.pos }

// DesktopSequence is the event order a desktop platform produces for a run
// that renders frames and then closes.
func DesktopSequence(frames int) []Event {
	events := []Event{Resumed{}, WindowCreated{}}
	for i := 0; i < frames; i++ {
		events = append(events, RedrawRequested{})
	}
	return append(events, CloseRequested{})
}

// ParseEvent parses the textual event notation used by host scripts:
//
//	resumed | suspended | window-created | redraw | close
//	resize WxH
//	key N
//	pointer X,Y
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return nil, fmt.Errorf("platform: empty event")
	}
	name, args := fields[0], fields[1:]
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("platform: event %q takes %d argument(s), got %d", name, n, len(args))
		}
		return nil
	}
	switch name {
	case "resumed", "resume":
		return only(Resumed{}, want(0))
	case "suspended", "suspend":
		return only(Suspended{}, want(0))
	case "window-created":
		return only(WindowCreated{}, want(0))
	case "redraw", "redraw-requested":
		return only(RedrawRequested{}, want(0))
	case "close", "close-requested":
		return only(CloseRequested{}, want(0))
	case "resize", "resized":
		if err := want(1); err != nil {
			return nil, err
		}
		w, h, ok := strings.Cut(args[0], "x")
		if !ok {
			return nil, fmt.Errorf("platform: resize wants WxH, got %q", args[0])
		}
		width, err := strconv.ParseUint(w, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("platform: resize width: %w", err)
		}
		height, err := strconv.ParseUint(h, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("platform: resize height: %w", err)
		}
		return Resized{Width: uint32(width), Height: uint32(height)}, nil
	case "key":
		if err := want(1); err != nil {
			return nil, err
		}
		code, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return nil, fmt.Errorf("platform: key code: %w", err)
		}
		return KeyPressed{Key: gpucontext.Key(code)}, nil
	case "pointer":
		if err := want(1); err != nil {
			return nil, err
		}
		xs, ys, ok := strings.Cut(args[0], ",")
		if !ok {
			return nil, fmt.Errorf("platform: pointer wants X,Y, got %q", args[0])
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("platform: pointer x: %w", err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("platform: pointer y: %w", err)
		}
		return Pointer{gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: x, Y: y}}, nil
	default:
		return nil, fmt.Errorf("platform: unknown event %q", name)
	}
}

func only(ev Event, err error) (Event, error) {
	if err != nil {
		return nil, err
	}
	return ev, nil
}
