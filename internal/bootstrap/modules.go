package bootstrap

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/infrastructure/backlight"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/infrastructure/pulse"
	"github.com/bnema/shade/internal/logging"
)

// ProbeFunc opens one module. The returned close func may be nil.
type ProbeFunc func(ctx context.Context, cfg config.ModulesConfig) (port.Module, func(), error)

// Prober is a named module constructor.
type Prober struct {
	Name    string
	Enabled func(cfg config.ModulesConfig) bool
	Probe   ProbeFunc
}

// DefaultProbers returns the built-in modules in drawer order.
func DefaultProbers() []Prober {
	return []Prober{
		{
			Name:    backlight.Name,
			Enabled: func(cfg config.ModulesConfig) bool { return cfg.Brightness.Enabled },
			Probe:   probeBrightness,
		},
		{
			Name:    pulse.Name,
			Enabled: func(cfg config.ModulesConfig) bool { return cfg.Volume.Enabled },
			Probe:   probeVolume,
		},
	}
}

func probeBrightness(ctx context.Context, cfg config.ModulesConfig) (port.Module, func(), error) {
	opts := []backlight.Option{backlight.WithRoot(cfg.Brightness.SysfsPath)}

	var closeFn func()
	if cfg.Brightness.Logind {
		bus, err := backlight.NewLogindBus()
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("logind unavailable, sysfs writes only")
		} else {
			opts = append(opts, backlight.WithBus(bus))
			closeFn = func() { _ = bus.Close() }
		}
	}

	m, err := backlight.New(ctx, opts...)
	if err != nil {
		if closeFn != nil {
			closeFn()
		}
		return nil, nil, err
	}
	return m, closeFn, nil
}

func probeVolume(ctx context.Context, cfg config.ModulesConfig) (port.Module, func(), error) {
	m, err := pulse.Dial(ctx, cfg.Volume.Server)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Close, nil
}

// ModuleSet holds the modules that probed successfully, in prober order.
type ModuleSet struct {
	Modules []port.Module
	closers []func()
}

// Find returns the module with the given name.
func (s *ModuleSet) Find(name string) (port.Module, bool) {
	for _, m := range s.Modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Watchers returns the modules that publish outside changes.
func (s *ModuleSet) Watchers() []port.ModuleWatcher {
	var out []port.ModuleWatcher
	for _, m := range s.Modules {
		if w, ok := m.(port.ModuleWatcher); ok {
			out = append(out, w)
		}
	}
	return out
}

// Close releases module connections.
func (s *ModuleSet) Close() {
	for _, fn := range s.closers {
		fn()
	}
	s.closers = nil
}

// ProbeModules opens every enabled module concurrently. A module that fails
// to probe is logged and left out; it never fails the shell.
func ProbeModules(ctx context.Context, cfg config.ModulesConfig, probers []Prober, timer *StartupTimer) *ModuleSet {
	type result struct {
		module  port.Module
		closeFn func()
	}

	log := logging.FromContext(ctx)
	results := make([]result, len(probers))

	var g errgroup.Group
	for i, p := range probers {
		if p.Enabled != nil && !p.Enabled(cfg) {
			log.Debug().Str("module", p.Name).Msg("module disabled")
			continue
		}

		g.Go(func() error {
			start := time.Now()
			mctx := logging.WithModule(ctx, p.Name)

			m, closeFn, err := p.Probe(mctx, cfg)
			if timer != nil {
				timer.MarkDuration("probe_"+p.Name, time.Since(start))
			}
			if err != nil {
				logging.FromContext(mctx).Warn().Err(err).Msg("module unavailable")
				return nil
			}
			results[i] = result{module: m, closeFn: closeFn}
			return nil
		})
	}
	_ = g.Wait()

	set := &ModuleSet{}
	for _, r := range results {
		if r.module == nil {
			continue
		}
		set.Modules = append(set.Modules, r.module)
		if r.closeFn != nil {
			set.closers = append(set.closers, r.closeFn)
		}
	}
	return set
}
