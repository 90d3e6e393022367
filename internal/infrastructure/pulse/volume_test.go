package pulse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/application/port"
)

type mockClient struct {
	mock.Mock
}

func (c *mockClient) Volume() (float32, error) {
	args := c.Called()
	return args.Get(0).(float32), args.Error(1)
}

func (c *mockClient) SetVolume(volume float32) error {
	return c.Called(volume).Error(0)
}

func (c *mockClient) Updates() (<-chan struct{}, error) {
	args := c.Called()
	ch, _ := args.Get(0).(chan struct{})
	return ch, args.Error(1)
}

func (c *mockClient) Close() {
	c.Called()
}

func TestNewReadsVolume(t *testing.T) {
	client := new(mockClient)
	client.On("Volume").Return(float32(0.5), nil).Once()

	m, err := New(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, Name, m.Name())
	assert.InDelta(t, 0.5, m.Value(), 1e-6)
	slider, ok := m.Slider()
	require.True(t, ok)
	assert.Equal(t, port.IconVolume, slider.Icon())
	client.AssertExpectations(t)
}

func TestNewClampsBoostedVolume(t *testing.T) {
	client := new(mockClient)
	client.On("Volume").Return(float32(1.5), nil)

	m, err := New(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Value())
}

func TestNewFailsWithoutSink(t *testing.T) {
	client := new(mockClient)
	client.On("Volume").Return(float32(0), errors.New("sink not found"))

	_, err := New(context.Background(), client)
	assert.Error(t, err)
}

func TestSetValue(t *testing.T) {
	client := new(mockClient)
	client.On("Volume").Return(float32(0.2), nil)
	client.On("SetVolume", float32(1)).Return(nil).Once()
	client.On("SetVolume", float32(0.25)).Return(errors.New("connection reset")).Once()

	m, err := New(context.Background(), client)
	require.NoError(t, err)

	require.NoError(t, m.SetValue(context.Background(), 3))
	assert.Equal(t, 1.0, m.Value())

	err = m.SetValue(context.Background(), 0.25)
	assert.Error(t, err)
	assert.Equal(t, 0.25, m.Value(), "clamped value is kept on failure")
	client.AssertExpectations(t)
}

func TestWatchPostsUpdates(t *testing.T) {
	updates := make(chan struct{}, 1)
	client := new(mockClient)
	client.On("Volume").Return(float32(0.2), nil).Once()
	client.On("Updates").Return(updates, nil)
	client.On("Volume").Return(float32(0.7), nil)

	m, err := New(context.Background(), client)
	require.NoError(t, err)

	posted := make(chan func(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Watch(ctx, func(fn func()) { posted <- fn }) }()

	updates <- struct{}{}
	select {
	case fn := <-posted:
		assert.InDelta(t, 0.2, m.Value(), 1e-6, "value changes only when the post runs")
		fn()
		assert.InDelta(t, 0.7, m.Value(), 1e-6)
	case <-time.After(time.Second):
		t.Fatal("no update posted")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchEndsWhenStreamCloses(t *testing.T) {
	updates := make(chan struct{})
	client := new(mockClient)
	client.On("Volume").Return(float32(0.2), nil)
	client.On("Updates").Return(updates, nil)

	m, err := New(context.Background(), client)
	require.NoError(t, err)

	close(updates)
	err = m.Watch(context.Background(), func(func()) {})
	assert.ErrorIs(t, err, ErrUpdatesClosed)
}

func TestWatchSubscribeError(t *testing.T) {
	client := new(mockClient)
	client.On("Volume").Return(float32(0.2), nil)
	client.On("Updates").Return(nil, errors.New("denied"))

	m, err := New(context.Background(), client)
	require.NoError(t, err)

	assert.Error(t, m.Watch(context.Background(), func(func()) {}))
}
