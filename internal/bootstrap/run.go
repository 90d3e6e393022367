//go:build linux

package bootstrap

import (
	"context"
	"runtime"

	"github.com/bnema/shade/internal/infrastructure/wayland"
	"github.com/bnema/shade/internal/logging"
)

// Run probes modules, connects to the compositor and serves until the panel
// closes or ctx is cancelled.
func Run(ctx context.Context, cfg ConfigSource, probers []Prober) error {
	// EGL contexts are bound to the calling thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	timer := NewStartupTimer()
	trace := logging.NewStartupTrace(logging.FromContext(ctx))

	modules := ProbeModules(ctx, cfg.Get().Modules, probers, timer)
	defer modules.Close()
	timer.Mark("modules")
	trace.Mark("modules_probed")

	display, err := wayland.Connect(ctx)
	if err != nil {
		return err
	}
	defer display.Close()
	timer.Mark("connect")
	trace.Mark("connected")

	platform, err := wayland.NewRenderPlatform(display)
	if err != nil {
		return err
	}
	defer platform.Close()
	timer.Mark("egl")

	return Serve(ctx, ServeInput{
		Compositor: display,
		Platform:   platform,
		Modules:    modules,
		Config:     cfg,
		Timer:      timer,
		Trace:      trace,
	})
}
