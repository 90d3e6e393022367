package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/logging"
)

func TestStartupTimerMarks(t *testing.T) {
	now := time.Unix(100, 0)
	clock := func() time.Time { return now }
	timer := newStartupTimer(clock)

	now = now.Add(30 * time.Millisecond)
	timer.Mark("modules")
	now = now.Add(5 * time.Millisecond)
	timer.Mark("connect")
	timer.MarkDuration("volume", 12*time.Millisecond)

	d, ok := timer.Phase("modules")
	require.True(t, ok)
	assert.Equal(t, 30*time.Millisecond, d)

	d, ok = timer.Phase("connect")
	require.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, d)

	d, ok = timer.Phase("volume")
	require.True(t, ok)
	assert.Equal(t, 12*time.Millisecond, d)

	assert.Equal(t, 35*time.Millisecond, timer.Total())
}

func TestStartupTimerLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logging.WithContext(context.Background(), logger)

	now := time.Unix(100, 0)
	timer := newStartupTimer(func() time.Time { return now })
	now = now.Add(time.Second)
	timer.Mark("panel")
	timer.Log(ctx, zerolog.InfoLevel)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "startup timing", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "panel")
	assert.Contains(t, entry, "total")
}
