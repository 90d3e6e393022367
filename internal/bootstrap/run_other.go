//go:build !linux

package bootstrap

import (
	"context"
	"errors"
)

// Run is only supported on Linux.
func Run(context.Context, ConfigSource, []Prober) error {
	return errors.New("shade requires a Linux Wayland session")
}
