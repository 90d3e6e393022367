//go:build linux

// Package wayland implements the compositor and render ports on top of
// libwayland-client, the wlr layer-shell protocol and EGL.
package wayland

/*
#cgo pkg-config: wayland-client

#include <stdlib.h>
#include <wayland-client.h>
#include "wlr_layer_shell.h"

extern const struct wl_registry_listener shade_registry_listener;
extern const struct wl_output_listener shade_output_listener;
extern const struct wl_seat_listener shade_seat_listener;
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/logging"
)

const (
	compositorVersion = 4
	layerShellVersion = 4
	seatVersion       = 5
	outputVersion     = 2
)

var _ port.Compositor = (*Display)(nil)

// Display is a connection to the Wayland compositor.
type Display struct {
	ctx        context.Context
	disp       *C.struct_wl_display
	reg        *C.struct_wl_registry
	compositor *C.struct_wl_compositor
	layerShell *C.struct_zwlr_layer_shell_v1
	seat       *seat
	outputs    map[C.uint32_t]*output
	surfaces   map[port.SurfaceID]*Surface
	handler    port.EventHandler

	notify  *notifyPipe
	pollfds []unix.PollFd
}

type output struct {
	proxy   *C.struct_wl_output
	name    C.uint32_t
	scale   int
	pending int
}

// Connect connects to the compositor named by WAYLAND_DISPLAY and binds the
// globals the shell needs.
func Connect(ctx context.Context) (*Display, error) {
	ctx = logging.WithComponent(ctx, "wayland")
	log := logging.FromContext(ctx)

	d := &Display{
		ctx:      ctx,
		outputs:  make(map[C.uint32_t]*output),
		surfaces: make(map[port.SurfaceID]*Surface),
	}

	notify, err := newNotifyPipe()
	if err != nil {
		return nil, err
	}
	d.notify = notify

	disp, err := C.wl_display_connect(nil)
	if disp == nil {
		d.destroy()
		return nil, fmt.Errorf("%w: wl_display_connect: %v", port.ErrNotConnected, err)
	}
	d.disp = disp
	callbackStore(unsafe.Pointer(d.disp), d)

	d.reg = C.wl_display_get_registry(d.disp)
	if d.reg == nil {
		d.destroy()
		return nil, fmt.Errorf("%w: wl_display_get_registry failed", port.ErrNotConnected)
	}
	C.wl_registry_add_listener(d.reg, &C.shade_registry_listener, unsafe.Pointer(d.disp))

	// The first roundtrip announces the globals, the second delivers the
	// initial output and seat state.
	C.wl_display_roundtrip(d.disp)
	C.wl_display_roundtrip(d.disp)

	switch {
	case d.compositor == nil:
		d.destroy()
		return nil, fmt.Errorf("%w: wl_compositor not advertised", port.ErrProtocol)
	case d.layerShell == nil:
		d.destroy()
		return nil, fmt.Errorf("%w: zwlr_layer_shell_v1 not advertised", port.ErrProtocol)
	}

	log.Info().
		Int("outputs", len(d.outputs)).
		Bool("seat", d.seat != nil).
		Msg("connected to compositor")
	return d, nil
}

func (d *Display) SetHandler(handler port.EventHandler) {
	d.handler = handler
}

func (d *Display) emit(fn func(port.EventHandler)) {
	if d.handler != nil {
		fn(d.handler)
	}
}

// Dispatch delivers already queued events without blocking. Otherwise it
// flushes requests and polls the display and notify pipe for up to timeout.
func (d *Display) Dispatch(timeout time.Duration) (int, error) {
	for C.wl_display_prepare_read(d.disp) != 0 {
		n, err := C.wl_display_dispatch_pending(d.disp)
		if n < 0 {
			return 0, fmt.Errorf("wl_display_dispatch_pending: %w", err)
		}
		if n > 0 {
			return int(n), nil
		}
	}

	dispfd := C.wl_display_get_fd(d.disp)
	d.pollfds = append(d.pollfds[:0],
		unix.PollFd{Fd: int32(dispfd), Events: unix.POLLIN | unix.POLLERR},
		unix.PollFd{Fd: int32(d.notify.fd()), Events: unix.POLLIN | unix.POLLERR},
	)
	dispFd := &d.pollfds[0]

	if ret, err := C.wl_display_flush(d.disp); ret < 0 {
		if !errors.Is(err, unix.EAGAIN) {
			C.wl_display_cancel_read(d.disp)
			return 0, fmt.Errorf("wl_display_flush: %w", err)
		}
		// Output buffer full; poll for POLLOUT too.
		dispFd.Events |= unix.POLLOUT
	}

	if _, err := unix.Poll(d.pollfds, pollTimeout(timeout)); err != nil && !errors.Is(err, unix.EINTR) {
		C.wl_display_cancel_read(d.disp)
		return 0, fmt.Errorf("poll: %w", err)
	}

	if err := d.notify.drain(); err != nil {
		C.wl_display_cancel_read(d.disp)
		return 0, err
	}

	switch {
	case dispFd.Revents&unix.POLLIN != 0:
		if ret, err := C.wl_display_read_events(d.disp); ret < 0 {
			return 0, fmt.Errorf("wl_display_read_events: %w", err)
		}
	case dispFd.Revents&(unix.POLLERR|unix.POLLHUP) != 0:
		C.wl_display_cancel_read(d.disp)
		return 0, errors.New("display file descriptor gone")
	default:
		C.wl_display_cancel_read(d.disp)
		return 0, nil
	}

	n, err := C.wl_display_dispatch_pending(d.disp)
	if n < 0 {
		return 0, fmt.Errorf("wl_display_dispatch_pending: %w", err)
	}
	return int(n), nil
}

// Wakeup interrupts a blocked Dispatch through the notify pipe.
func (d *Display) Wakeup() {
	if err := d.notify.wake(); err != nil {
		logging.FromContext(d.ctx).Error().Err(err).Msg("wakeup failed")
	}
}

// Close destroys all surfaces and disconnects.
func (d *Display) Close() error {
	for _, s := range d.surfaces {
		s.Destroy()
	}
	d.destroy()
	return nil
}

func (d *Display) destroy() {
	if d.seat != nil {
		d.seat.destroy()
		d.seat = nil
	}
	for name, o := range d.outputs {
		C.wl_output_destroy(o.proxy)
		delete(d.outputs, name)
	}
	if d.layerShell != nil {
		C.zwlr_layer_shell_v1_destroy(d.layerShell)
		d.layerShell = nil
	}
	if d.compositor != nil {
		C.wl_compositor_destroy(d.compositor)
		d.compositor = nil
	}
	if d.reg != nil {
		C.wl_registry_destroy(d.reg)
		d.reg = nil
	}
	if d.disp != nil {
		callbackDelete(unsafe.Pointer(d.disp))
		C.wl_display_disconnect(d.disp)
		d.disp = nil
	}
	if d.notify != nil {
		d.notify.close()
	}
}

func (d *Display) outputFor(proxy *C.struct_wl_output) *output {
	for _, o := range d.outputs {
		if o.proxy == proxy {
			return o
		}
	}
	return nil
}

//export shade_onRegistryGlobal
func shade_onRegistryGlobal(data unsafe.Pointer, reg *C.struct_wl_registry, name C.uint32_t, cintf *C.char, version C.uint32_t) {
	d, ok := callbackLoad(data).(*Display)
	if !ok {
		return
	}

	switch C.GoString(cintf) {
	case "wl_compositor":
		d.compositor = (*C.struct_wl_compositor)(C.wl_registry_bind(reg, name, &C.wl_compositor_interface, compositorVersion))
	case "zwlr_layer_shell_v1":
		v := min(version, layerShellVersion)
		d.layerShell = (*C.struct_zwlr_layer_shell_v1)(C.wl_registry_bind(reg, name, &C.zwlr_layer_shell_v1_interface, v))
	case "wl_output":
		proxy := (*C.struct_wl_output)(C.wl_registry_bind(reg, name, &C.wl_output_interface, outputVersion))
		C.wl_output_add_listener(proxy, &C.shade_output_listener, unsafe.Pointer(d.disp))
		d.outputs[name] = &output{proxy: proxy, name: name, scale: 1, pending: 1}
	case "wl_seat":
		if d.seat != nil {
			break
		}
		proxy := (*C.struct_wl_seat)(C.wl_registry_bind(reg, name, &C.wl_seat_interface, min(version, seatVersion)))
		if proxy == nil {
			break
		}
		d.seat = &seat{d: d, seat: proxy, name: name, active: make(map[C.int32_t]struct{})}
		callbackStore(unsafe.Pointer(proxy), d.seat)
		C.wl_seat_add_listener(proxy, &C.shade_seat_listener, unsafe.Pointer(proxy))
	}
}

//export shade_onRegistryGlobalRemove
func shade_onRegistryGlobalRemove(data unsafe.Pointer, reg *C.struct_wl_registry, name C.uint32_t) {
	d, ok := callbackLoad(data).(*Display)
	if !ok {
		return
	}

	if s := d.seat; s != nil && s.name == name {
		s.destroy()
		d.seat = nil
		d.emit(func(h port.EventHandler) { h.TouchLost() })
	}

	o, ok := d.outputs[name]
	if !ok {
		return
	}
	delete(d.outputs, name)
	for _, s := range d.surfaces {
		s.leave(o)
	}
	C.wl_output_destroy(o.proxy)
}

//export shade_onOutputGeometry
func shade_onOutputGeometry(data unsafe.Pointer, proxy *C.struct_wl_output, x, y, physWidth, physHeight, subpixel C.int32_t, make, model *C.char, transform C.int32_t) {
}

//export shade_onOutputMode
func shade_onOutputMode(data unsafe.Pointer, proxy *C.struct_wl_output, flags C.uint32_t, width, height, refresh C.int32_t) {
}

//export shade_onOutputScale
func shade_onOutputScale(data unsafe.Pointer, proxy *C.struct_wl_output, scale C.int32_t) {
	d, ok := callbackLoad(data).(*Display)
	if !ok {
		return
	}
	if o := d.outputFor(proxy); o != nil {
		o.pending = int(scale)
	}
}

//export shade_onOutputDone
func shade_onOutputDone(data unsafe.Pointer, proxy *C.struct_wl_output) {
	d, ok := callbackLoad(data).(*Display)
	if !ok {
		return
	}
	o := d.outputFor(proxy)
	if o == nil || o.pending == o.scale {
		return
	}

	o.scale = o.pending
	logging.FromContext(d.ctx).Debug().
		Uint32("output", uint32(o.name)).
		Int("scale", o.scale).
		Msg("output scale changed")

	for _, s := range d.surfaces {
		if s.on(o) {
			s.updateScale()
		}
	}
}
