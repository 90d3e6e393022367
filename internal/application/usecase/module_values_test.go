package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/application/port"
)

type mockSlider struct {
	mock.Mock
	value float64
}

func (m *mockSlider) Value() float64  { return m.value }
func (m *mockSlider) Icon() port.Icon { return port.IconVolume }

func (m *mockSlider) SetValue(ctx context.Context, v float64) error {
	m.value = v
	args := m.Called(ctx, v)
	return args.Error(0)
}

type testModule struct {
	name   string
	slider port.Slider
}

func (m *testModule) Name() string { return m.name }

func (m *testModule) Slider() (port.Slider, bool) {
	return m.slider, m.slider != nil
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "0.4", want: 0.4},
		{in: "40%", want: 0.4},
		{in: " 1 ", want: 1},
		{in: "150%", want: 1},
		{in: "-3", want: 0},
		{in: "loud", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestModuleValuesList(t *testing.T) {
	uc := NewModuleValuesUseCase([]port.Module{
		&testModule{name: "volume", slider: &mockSlider{value: 0.6}},
		&testModule{name: "clock"},
	})

	values := uc.List(context.Background())
	require.Len(t, values, 2)
	assert.Equal(t, ModuleValue{Name: "volume", Icon: port.IconVolume, Value: 0.6, Slider: true}, values[0])
	assert.Equal(t, ModuleValue{Name: "clock"}, values[1])
}

func TestModuleValuesSet(t *testing.T) {
	slider := &mockSlider{}
	slider.On("SetValue", mock.Anything, 0.25).Return(nil).Once()
	uc := NewModuleValuesUseCase([]port.Module{&testModule{name: "volume", slider: slider}})

	got, err := uc.Set(context.Background(), SetInput{Module: "volume", Value: "25%"})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got.Value, 1e-9)
	slider.AssertExpectations(t)
}

func TestModuleValuesSetWriteFailureKeepsValue(t *testing.T) {
	writeErr := errors.New("permission denied")
	slider := &mockSlider{}
	slider.On("SetValue", mock.Anything, 1.0).Return(writeErr).Once()
	uc := NewModuleValuesUseCase([]port.Module{&testModule{name: "brightness", slider: slider}})

	got, err := uc.Set(context.Background(), SetInput{Module: "brightness", Value: "2"})
	require.ErrorIs(t, err, writeErr)
	assert.InDelta(t, 1.0, got.Value, 1e-9)
}

func TestModuleValuesSetErrors(t *testing.T) {
	uc := NewModuleValuesUseCase([]port.Module{&testModule{name: "clock"}})

	_, err := uc.Set(context.Background(), SetInput{Module: "volume", Value: "0.5"})
	require.ErrorIs(t, err, ErrUnknownModule)

	_, err = uc.Set(context.Background(), SetInput{Module: "clock", Value: "0.5"})
	require.ErrorIs(t, err, ErrNotSettable)

	_, err = uc.Set(context.Background(), SetInput{Module: "clock", Value: "x"})
	require.ErrorIs(t, err, ErrInvalidValue)
}
