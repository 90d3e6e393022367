package backlight

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

//go:generate mockgen -source=logind.go -destination=mocks/mock_bus.go

const (
	logindDest         = "org.freedesktop.login1"
	logindSessionPath  = "/org/freedesktop/login1/session/auto"
	logindSessionIface = "org.freedesktop.login1.Session"

	subsystem = "backlight"
)

// Bus writes brightness through a privileged service when sysfs is not
// writable by the session user.
type Bus interface {
	SetBrightness(ctx context.Context, subsystem, name string, value uint32) error
}

// Compile-time interface check.
var _ Bus = (*LogindBus)(nil)

// LogindBus calls SetBrightness on the caller's logind session. logind
// grants it to the user of an active local session without polkit.
type LogindBus struct {
	conn *dbus.Conn
}

// NewLogindBus connects to the system bus.
func NewLogindBus() (*LogindBus, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}
	return &LogindBus{conn: conn}, nil
}

func (b *LogindBus) SetBrightness(ctx context.Context, subsystem, name string, value uint32) error {
	obj := b.conn.Object(logindDest, logindSessionPath)
	call := obj.CallWithContext(ctx, logindSessionIface+".SetBrightness", 0, subsystem, name, value)
	if call.Err != nil {
		return fmt.Errorf("logind SetBrightness %s/%s: %w", subsystem, name, call.Err)
	}
	return nil
}

func (b *LogindBus) Close() error {
	return b.conn.Close()
}
