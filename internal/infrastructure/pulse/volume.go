// Package pulse implements the volume module on the default PulseAudio sink.
package pulse

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/lawl/pulseaudio"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

// Name is the module name used in config and on the command line.
const Name = "volume"

// ErrUpdatesClosed is returned by Watch when the server connection drops.
var ErrUpdatesClosed = errors.New("pulseaudio update stream closed")

// Client is the subset of the PulseAudio client the module uses.
type Client interface {
	Volume() (float32, error)
	SetVolume(volume float32) error
	Updates() (<-chan struct{}, error)
	Close()
}

var (
	_ port.Module        = (*Module)(nil)
	_ port.Slider        = (*Module)(nil)
	_ port.ModuleWatcher = (*Module)(nil)
	_ Client             = (*pulseaudio.Client)(nil)
)

// Module is the volume slider of the default sink. Boosted volumes read as 1.
type Module struct {
	client Client

	mu    sync.Mutex
	value float64
}

// Dial connects to the PulseAudio server. An empty server uses the default
// socket of the user session.
func Dial(ctx context.Context, server string) (*Module, error) {
	var addr []string
	if server != "" {
		addr = append(addr, server)
	}

	client, err := pulseaudio.NewClient(addr...)
	if err != nil {
		return nil, fmt.Errorf("connect pulseaudio: %w", err)
	}

	m, err := New(ctx, client)
	if err != nil {
		client.Close()
		return nil, err
	}
	return m, nil
}

// New reads the initial volume through client.
func New(ctx context.Context, client Client) (*Module, error) {
	m := &Module{client: client}
	if err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Module) Name() string { return Name }

func (m *Module) Slider() (port.Slider, bool) { return m, true }

func (m *Module) Icon() port.Icon { return port.IconVolume }

func (m *Module) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *Module) store(v float64) {
	m.mu.Lock()
	m.value = clamp(v)
	m.mu.Unlock()
}

// Refresh rereads the default sink volume.
func (m *Module) Refresh(ctx context.Context) error {
	v, err := m.client.Volume()
	if err != nil {
		return fmt.Errorf("read volume: %w", err)
	}
	m.store(float64(v))

	logging.FromContext(ctx).Debug().Float32("volume", v).Msg("volume read")
	return nil
}

// SetValue clamps value to [0, 1] and sets it on the default sink. The
// clamped value is kept when the server rejects it.
func (m *Module) SetValue(_ context.Context, value float64) error {
	value = clamp(value)
	m.store(value)

	if err := m.client.SetVolume(float32(value)); err != nil {
		return fmt.Errorf("set volume: %w", err)
	}
	return nil
}

// Watch subscribes to server change notifications. Each notification
// rereads the volume here and hands the new value to post.
func (m *Module) Watch(ctx context.Context, post func(func())) error {
	log := logging.FromContext(logging.WithModule(ctx, Name))

	updates, err := m.client.Updates()
	if err != nil {
		return fmt.Errorf("subscribe pulseaudio updates: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-updates:
			if !ok {
				return ErrUpdatesClosed
			}
			v, err := m.client.Volume()
			if err != nil {
				log.Warn().Err(err).Msg("volume refresh failed")
				continue
			}
			post(func() { m.store(float64(v)) })
		}
	}
}

// Close disconnects from the server.
func (m *Module) Close() {
	m.client.Close()
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}
