// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command trianglehost runs the surface lifecycle against a headless
// window: it replays a platform event script, draws a triangle on every
// redraw and exits.
//
// Usage:
//
//	trianglehost [-config host.yml] [-driver recording] [-frames 3] [-v] [-log-json]
//
// Environment:
//
//	WGPU_BACKEND                 comma-separated backends (vulkan,metal,dx12,gl)
//	WGPU_POWER_PREF              none, low or high
//	WGPU_FORCE_FALLBACK_ADAPTER  1 to require a fallback adapter
//	SURFACEKIT_LOG               debug, info, warn or error
//
// Headless windows have no native handles, so only the recording driver
// can bind a surface to them. Any fatal error is reported as
// "<stage> failure" and the exit status is 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/surfacekit"
	"github.com/gogpu/surfacekit/backend"
	_ "github.com/gogpu/surfacekit/backend/recording"
	_ "github.com/gogpu/surfacekit/backend/wgpu"
	"github.com/gogpu/surfacekit/lifecycle"
	"github.com/gogpu/surfacekit/platform"
)

// Environment variables read besides backend.EnvBackend.
const (
	envPowerPref     = "WGPU_POWER_PREF"
	envForceFallback = "WGPU_FORCE_FALLBACK_ADAPTER"
	envLogLevel      = "SURFACEKIT_LOG"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}

// run executes the host and returns the process exit status. Canceling ctx
// stops the event loop and is a clean exit.
func run(ctx context.Context, args []string, stderr io.Writer, lookup func(string) (string, bool)) int {
	fs := flag.NewFlagSet("trianglehost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "optional YAML host file")
		driver     = fs.String("driver", "", "GPU driver (default from config, else recording)")
		frames     = fs.Int("frames", 3, "redraws in the default event script")
		verbose    = fs.Bool("v", false, "debug logging")
		jsonLog    = fs.Bool("log-json", false, "log as JSON")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if v, ok := lookup(envLogLevel); ok {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			fmt.Fprintf(stderr, "trianglehost: %s: %v\n", envLogLevel, err)
			return 2
		}
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(stderr, level, *jsonLog)
	surfacekit.SetLogger(logger)
	defer surfacekit.SetLogger(nil)

	fail := func(stage string, err error) int {
		logger.Error(fmt.Sprintf("%s failure: %v", stage, err))
		return 1
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return fail("config", err)
	}
	opts := cfg.Options()
	envOpts, err := envOptions(lookup)
	if err != nil {
		return fail("config", err)
	}
	opts = append(opts, envOpts...)

	name := *driver
	if name == "" {
		name = cfg.Driver
	}
	if name == "" {
		name = backend.DriverRecording
	}
	inst, err := backend.Open(name, backend.SelectionFromEnv(lookup))
	if err != nil {
		return fail("backend", err)
	}
	defer inst.Release()

	events, err := cfg.ScriptEvents()
	if err != nil {
		return fail("config", err)
	}
	if events == nil {
		events = platform.DesktopSequence(*frames)
	}

	loop := platform.NewLoop()
	factory := platform.NewHeadlessFactory(loop, cfg.PlatformWindow())
	loop.SetSource(platform.NewScript(factory, events...))
	orch := lifecycle.New(inst, factory, append(opts, lifecycle.WithExitFunc(loop.Exit))...)
	defer orch.Close()

	logger.Info("trianglehost: starting",
		"driver", name,
		"backends", backend.SelectionString(inst.Selection()),
		"events", len(events),
	)
	switch err := loop.Run(ctx, orch.Handle); {
	case errors.Is(err, context.Canceled):
		logger.Info("trianglehost: interrupted", "state", orch.State().String())
	case err != nil:
		return fail(surfacekit.Stage(err), err)
	}
	s := orch.Stats()
	logger.Info("trianglehost: done",
		"state", orch.State().String(),
		"frames", s.Frames,
		"dropped_redraws", s.DroppedRedraws,
		"context_builds", s.ContextBuilds,
		"configures", s.Configures,
	)
	return 0
}

// envOptions reads the adapter environment overrides.
func envOptions(lookup func(string) (string, bool)) ([]lifecycle.Option, error) {
	var opts []lifecycle.Option
	if v, ok := lookup(envPowerPref); ok {
		p, err := parsePower(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envPowerPref, err)
		}
		opts = append(opts, lifecycle.WithPowerPreference(p))
	}
	if v, ok := lookup(envForceFallback); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			opts = append(opts, lifecycle.WithForceFallbackAdapter(true))
		case "", "0", "false", "no":
		default:
			return nil, fmt.Errorf("%s: unexpected value %q", envForceFallback, v)
		}
	}
	return opts, nil
}

// newLogger builds the host logger. Terminals get compact text without
// timestamps; files and pipes get timestamped text, or JSON when asked.
func newLogger(w io.Writer, level slog.Level, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	if isTerminal(w) {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
