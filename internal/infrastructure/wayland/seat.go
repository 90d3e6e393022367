//go:build linux

package wayland

/*
#include <wayland-client.h>

extern const struct wl_touch_listener shade_touch_listener;
*/
import "C"

import (
	"unsafe"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

type seat struct {
	d     *Display
	seat  *C.struct_wl_seat
	name  C.uint32_t
	touch *C.struct_wl_touch

	// Touch points currently down.
	active map[C.int32_t]struct{}
}

func (s *seat) destroy() {
	s.releaseTouch()
	callbackDelete(unsafe.Pointer(s.seat))
	if C.wl_seat_get_version(s.seat) >= 5 {
		C.wl_seat_release(s.seat)
	} else {
		C.wl_seat_destroy(s.seat)
	}
}

func (s *seat) releaseTouch() {
	if s.touch == nil {
		return
	}
	callbackDelete(unsafe.Pointer(s.touch))
	if C.wl_touch_get_version(s.touch) >= 3 {
		C.wl_touch_release(s.touch)
	} else {
		C.wl_touch_destroy(s.touch)
	}
	s.touch = nil
	clear(s.active)
}

//export shade_onSeatCapabilities
func shade_onSeatCapabilities(data unsafe.Pointer, proxy *C.struct_wl_seat, caps C.uint32_t) {
	s, ok := callbackLoad(data).(*seat)
	if !ok {
		return
	}
	log := logging.FromContext(s.d.ctx)

	hasTouch := caps&C.WL_SEAT_CAPABILITY_TOUCH != 0
	switch {
	case s.touch == nil && hasTouch:
		s.touch = C.wl_seat_get_touch(s.seat)
		callbackStore(unsafe.Pointer(s.touch), s)
		C.wl_touch_add_listener(s.touch, &C.shade_touch_listener, unsafe.Pointer(s.touch))
		log.Debug().Msg("touch input available")
	case s.touch != nil && !hasTouch:
		s.releaseTouch()
		s.d.emit(func(h port.EventHandler) { h.TouchLost() })
	}
}

//export shade_onSeatName
func shade_onSeatName(data unsafe.Pointer, proxy *C.struct_wl_seat, name *C.char) {
}

//export shade_onTouchDown
func shade_onTouchDown(data unsafe.Pointer, touch *C.struct_wl_touch, serial, t C.uint32_t, surf *C.struct_wl_surface, id C.int32_t, x, y C.wl_fixed_t) {
	s, ok := callbackLoad(data).(*seat)
	if !ok {
		return
	}
	target, ok := callbackLoad(unsafe.Pointer(surf)).(*Surface)
	if !ok {
		return
	}

	s.active[id] = struct{}{}
	pos := entity.Point{X: fromFixed(int32(x)), Y: fromFixed(int32(y))}
	s.d.emit(func(h port.EventHandler) { h.TouchDown(target.id, int32(id), pos) })
}

//export shade_onTouchUp
func shade_onTouchUp(data unsafe.Pointer, touch *C.struct_wl_touch, serial, t C.uint32_t, id C.int32_t) {
	s, ok := callbackLoad(data).(*seat)
	if !ok {
		return
	}
	delete(s.active, id)
	s.d.emit(func(h port.EventHandler) { h.TouchUp(int32(id)) })
}

//export shade_onTouchMotion
func shade_onTouchMotion(data unsafe.Pointer, touch *C.struct_wl_touch, t C.uint32_t, id C.int32_t, x, y C.wl_fixed_t) {
	s, ok := callbackLoad(data).(*seat)
	if !ok {
		return
	}
	if _, down := s.active[id]; !down {
		return
	}
	pos := entity.Point{X: fromFixed(int32(x)), Y: fromFixed(int32(y))}
	s.d.emit(func(h port.EventHandler) { h.TouchMotion(int32(id), pos) })
}

//export shade_onTouchFrame
func shade_onTouchFrame(data unsafe.Pointer, touch *C.struct_wl_touch) {
}

//export shade_onTouchCancel
func shade_onTouchCancel(data unsafe.Pointer, touch *C.struct_wl_touch) {
	s, ok := callbackLoad(data).(*seat)
	if !ok {
		return
	}
	clear(s.active)
	s.d.emit(func(h port.EventHandler) { h.TouchCancel() })
}
