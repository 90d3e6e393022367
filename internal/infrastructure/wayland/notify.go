//go:build linux

package wayland

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

const closedFd = -1

// notifyPipe wakes a blocked poll from other goroutines. Wake after close is
// a no-op.
type notifyPipe struct {
	mu    sync.Mutex
	read  int
	write int
	buf   [64]byte
}

func newNotifyPipe() (*notifyPipe, error) {
	fds := make([]int, 2)
	if err := unix.Pipe2(fds, unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		return nil, fmt.Errorf("create notify pipe: %w", err)
	}
	return &notifyPipe{read: fds[0], write: fds[1]}, nil
}

// fd returns the read end for polling.
func (p *notifyPipe) fd() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.read
}

// wake writes one byte. A full pipe already guarantees a wakeup.
func (p *notifyPipe) wake() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.write == closedFd {
		return nil
	}
	if _, err := unix.Write(p.write, []byte{0}); err != nil && !errors.Is(err, unix.EAGAIN) {
		return fmt.Errorf("write notify pipe: %w", err)
	}
	return nil
}

// drain empties the pipe without blocking.
func (p *notifyPipe) drain() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.read == closedFd {
		return nil
	}
	for {
		_, err := unix.Read(p.read, p.buf[:])
		if errors.Is(err, unix.EAGAIN) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read notify pipe: %w", err)
		}
	}
}

func (p *notifyPipe) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.write != closedFd {
		_ = unix.Close(p.write)
		p.write = closedFd
	}
	if p.read != closedFd {
		_ = unix.Close(p.read)
		p.read = closedFd
	}
}
