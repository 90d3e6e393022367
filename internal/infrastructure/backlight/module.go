// Package backlight implements the brightness module over the sysfs
// backlight class, with logind as a write fallback.
package backlight

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/spf13/afero"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

// Name is the module name used in config and on the command line.
const Name = "brightness"

var (
	_ port.Module = (*Module)(nil)
	_ port.Slider = (*Module)(nil)
)

// Option configures a Module.
type Option func(*Module)

// WithFs replaces the filesystem, mainly for tests.
func WithFs(fs afero.Fs) Option {
	return func(m *Module) { m.sysfs.fs = fs }
}

// WithRoot replaces the backlight class directory.
func WithRoot(root string) Option {
	return func(m *Module) {
		if root != "" {
			m.sysfs.root = root
		}
	}
}

// WithBus enables the write fallback.
func WithBus(bus Bus) Option {
	return func(m *Module) { m.bus = bus }
}

// Module is the brightness slider. Its value is the brightness of the first
// device exposing both actual_brightness and max_brightness; writes go to
// every device.
type Module struct {
	sysfs sysfs
	bus   Bus

	mu    sync.Mutex
	value float64
}

// New probes the backlight class directory. A system without backlight
// devices gets a module reading 1.
func New(ctx context.Context, opts ...Option) (*Module, error) {
	m := &Module{sysfs: sysfs{fs: afero.NewOsFs(), root: DefaultRoot}}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Module) Name() string { return Name }

func (m *Module) Slider() (port.Slider, bool) { return m, true }

func (m *Module) Icon() port.Icon { return port.IconBrightness }

func (m *Module) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// Refresh rereads the brightness from sysfs.
func (m *Module) Refresh(ctx context.Context) error {
	log := logging.FromContext(ctx)

	devices, err := m.sysfs.devices()
	if err != nil {
		return err
	}

	value := 1.0
	found := false
	for _, dev := range devices {
		actual, ok := m.sysfs.readUint(dev, attrActual)
		if !ok {
			continue
		}
		maxBrightness, ok := m.sysfs.readUint(dev, attrMax)
		if !ok || maxBrightness == 0 {
			continue
		}
		value = min(float64(actual)/float64(maxBrightness), 1)
		found = true
		log.Debug().
			Str("device", dev.Name).
			Uint32("actual", actual).
			Uint32("max", maxBrightness).
			Msg("backlight read")
		break
	}
	if !found {
		log.Debug().Str("root", m.sysfs.root).Msg("no readable backlight device")
	}

	m.mu.Lock()
	m.value = value
	m.mu.Unlock()
	return nil
}

// SetValue clamps value to [0, 1] and writes max(int(max*value), 1) to every
// device. Devices failing both sysfs and the bus are skipped and reported;
// the clamped value is stored regardless.
func (m *Module) SetValue(ctx context.Context, value float64) error {
	log := logging.FromContext(ctx)

	if math.IsNaN(value) {
		value = 0
	}
	value = min(max(value, 0), 1)

	m.mu.Lock()
	m.value = value
	m.mu.Unlock()

	devices, err := m.sysfs.devices()
	if err != nil {
		return err
	}

	var errs []error
	for _, dev := range devices {
		maxBrightness, ok := m.sysfs.readUint(dev, attrMax)
		if !ok {
			continue
		}
		target := max(uint32(float64(maxBrightness)*value), 1)

		werr := m.sysfs.writeUint(dev, attrBrightness, target)
		if werr == nil {
			continue
		}
		if m.bus == nil {
			errs = append(errs, fmt.Errorf("%s: %w", dev.Name, werr))
			continue
		}
		if berr := m.bus.SetBrightness(ctx, subsystem, dev.Name, target); berr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dev.Name, errors.Join(werr, berr)))
			continue
		}
		log.Debug().
			Str("device", dev.Name).
			Uint32("brightness", target).
			Msg("brightness written through logind")
	}
	return errors.Join(errs...)
}
