package bootstrap

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/coordinator"
)

// ConfigSource is the part of the config manager the running shell needs.
type ConfigSource interface {
	Get() *config.Config
	OnConfigChange(callback func(*config.Config))
	Watch() error
}

// ServeInput bundles what the dispatch loop runs against.
type ServeInput struct {
	Compositor port.Compositor
	Platform   port.RenderPlatform
	Modules    *ModuleSet
	Config     ConfigSource
	Timer      *StartupTimer
	Trace      *logging.StartupTrace
}

// Serve shows the panel and runs the dispatch loop until the panel is
// closed, ctx is cancelled or a fatal error occurs. Module watchers and
// config reloads feed the loop through Post.
func Serve(ctx context.Context, in ServeInput) error {
	log := logging.FromContext(ctx)

	opts := coordinator.Options{
		Compositor: in.Compositor,
		Platform:   in.Platform,
		Config:     in.Config.Get(),
	}
	if in.Modules != nil {
		opts.Modules = in.Modules.Modules
	}
	if in.Trace != nil {
		opts.OnFirstFrame = in.Trace.Finish
	}

	c := coordinator.New(ctx, opts)
	if err := c.Start(); err != nil {
		return err
	}
	defer c.Close()

	if in.Trace != nil {
		in.Trace.Mark("panel_shown")
	}
	if in.Timer != nil {
		in.Timer.Mark("panel")
		in.Timer.Log(ctx, zerolog.DebugLevel)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(watchCtx)
	if in.Modules != nil {
		for _, w := range in.Modules.Watchers() {
			g.Go(func() error {
				if err := w.Watch(gctx, c.PostUpdate); err != nil && gctx.Err() == nil {
					log.Warn().Err(err).Msg("module watcher stopped")
				}
				return nil
			})
		}
	}
	defer func() {
		cancel()
		_ = g.Wait()
	}()

	in.Config.OnConfigChange(func(next *config.Config) {
		c.Post(func() { c.ApplyConfig(next) })
	})
	if err := in.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}

	loopDone := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			c.Stop()
		case <-loopDone:
		}
	}()

	err := c.Run()
	close(loopDone)
	wg.Wait()

	if err != nil {
		log.Error().Err(err).Msg("dispatch loop failed")
		return err
	}
	log.Info().Msg("shell exited")
	return nil
}
