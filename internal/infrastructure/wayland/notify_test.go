//go:build linux

package wayland

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func pollNotify(t *testing.T, p *notifyPipe, timeout time.Duration) bool {
	t.Helper()
	fds := []unix.PollFd{{Fd: int32(p.fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, pollTimeout(timeout))
	require.NoError(t, err)
	return n > 0 && fds[0].Revents&unix.POLLIN != 0
}

func TestNotifyPipe_WakeAndDrain(t *testing.T) {
	p, err := newNotifyPipe()
	require.NoError(t, err)
	defer p.close()

	assert.False(t, pollNotify(t, p, 0))

	for i := 0; i < 3; i++ {
		require.NoError(t, p.wake())
	}
	assert.True(t, pollNotify(t, p, 0))

	require.NoError(t, p.drain())
	assert.False(t, pollNotify(t, p, 0))
}

func TestNotifyPipe_FullPipeIsNotAnError(t *testing.T) {
	p, err := newNotifyPipe()
	require.NoError(t, err)
	defer p.close()

	// Default pipe capacity is 64 KiB.
	for i := 0; i < 70_000; i++ {
		require.NoError(t, p.wake())
	}
	require.NoError(t, p.drain())
}

func TestNotifyPipe_WakeAfterCloseIsNoop(t *testing.T) {
	p, err := newNotifyPipe()
	require.NoError(t, err)

	p.close()
	p.close()

	assert.Equal(t, closedFd, p.write)
	assert.Equal(t, closedFd, p.read)
	assert.NoError(t, p.wake())
	assert.NoError(t, p.drain())
}
