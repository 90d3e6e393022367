package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize_Scale(t *testing.T) {
	s := NewSize(720, 40)

	assert.Equal(t, NewSize(1440, 80), s.Scale(2))
	assert.Equal(t, s, s.Scale(1))
	assert.Equal(t, s, s.Scale(0), "non-positive factors fall back to 1")
}

func TestSize_Merge(t *testing.T) {
	configured := NewSize(1080, 0).Merge(NewSize(0, 48))
	assert.Equal(t, NewSize(1080, 48), configured)

	assert.True(t, Size{}.IsZero())
	assert.True(t, NewSize(10, 0).IsZero())
	assert.False(t, NewSize(1, 1).IsZero())
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		max    float64
		want   float64
	}{
		{name: "negative", offset: -12, max: 800, want: 0},
		{name: "inside", offset: 400, max: 800, want: 400},
		{name: "beyond", offset: 900, max: 800, want: 800},
		{name: "unknown height", offset: 900, max: 0, want: 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampOffset(tt.offset, tt.max))
		})
	}
}

func TestWindowKind_String(t *testing.T) {
	assert.Equal(t, "panel", WindowPanel.String())
	assert.Equal(t, "drawer", WindowDrawer.String())
	assert.Equal(t, "unknown", WindowKind(7).String())
}
