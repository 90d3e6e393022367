//go:build linux

package wayland

/*
#include <stdlib.h>
#include <wayland-client.h>
#include "wlr_layer_shell.h"

extern const struct wl_surface_listener shade_surface_listener;
extern const struct wl_callback_listener shade_frame_listener;
extern const struct zwlr_layer_surface_v1_listener shade_layer_surface_listener;
*/
import "C"

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

var _ port.Surface = (*Surface)(nil)

// Surface is a wl_surface with its layer-shell role.
type Surface struct {
	d        *Display
	id       port.SurfaceID
	surf     *C.struct_wl_surface
	layer    *C.struct_zwlr_layer_surface_v1
	callback *C.struct_wl_callback
	outputs  []*output
	scale    int
}

// CreateSurface creates a layer surface on the compositor's preferred output
// and commits its initial state. The compositor answers with a configure.
func (d *Display) CreateSurface(spec port.SurfaceSpec) (port.Surface, error) {
	surf := C.wl_compositor_create_surface(d.compositor)
	if surf == nil {
		return nil, fmt.Errorf("%w: wl_compositor_create_surface failed", port.ErrProtocol)
	}

	ns := C.CString(spec.Namespace)
	defer C.free(unsafe.Pointer(ns))

	layer := C.zwlr_layer_shell_v1_get_layer_surface(d.layerShell, surf, nil, C.uint32_t(spec.Layer), ns)
	if layer == nil {
		C.wl_surface_destroy(surf)
		return nil, fmt.Errorf("%w: get_layer_surface %q failed", port.ErrProtocol, spec.Namespace)
	}

	s := &Surface{
		d:     d,
		id:    port.SurfaceID(C.wl_proxy_get_id((*C.struct_wl_proxy)(unsafe.Pointer(surf)))),
		surf:  surf,
		layer: layer,
		scale: 1,
	}
	callbackStore(unsafe.Pointer(surf), s)
	callbackStore(unsafe.Pointer(layer), s)
	C.wl_surface_add_listener(surf, &C.shade_surface_listener, unsafe.Pointer(surf))
	C.zwlr_layer_surface_v1_add_listener(layer, &C.shade_layer_surface_listener, unsafe.Pointer(layer))

	C.zwlr_layer_surface_v1_set_size(layer, C.uint32_t(max(spec.Size.Width, 0)), C.uint32_t(max(spec.Size.Height, 0)))
	C.zwlr_layer_surface_v1_set_anchor(layer, C.uint32_t(spec.Anchor))
	C.zwlr_layer_surface_v1_set_exclusive_zone(layer, C.int32_t(spec.ExclusiveZone))
	C.zwlr_layer_surface_v1_set_keyboard_interactivity(layer, C.ZWLR_LAYER_SURFACE_V1_KEYBOARD_INTERACTIVITY_NONE)
	C.wl_surface_commit(surf)

	d.surfaces[s.id] = s

	logging.FromContext(d.ctx).Debug().
		Str("namespace", spec.Namespace).
		Uint32("surface", uint32(s.id)).
		Msg("layer surface created")
	return s, nil
}

func (s *Surface) ID() port.SurfaceID { return s.id }

// RequestFrame registers a frame callback and commits.
func (s *Surface) RequestFrame() {
	if s.callback == nil {
		cb := C.wl_surface_frame(s.surf)
		callbackStore(unsafe.Pointer(cb), s)
		C.wl_callback_add_listener(cb, &C.shade_frame_listener, unsafe.Pointer(cb))
		s.callback = cb
	}
	C.wl_surface_commit(s.surf)
}

func (s *Surface) SetBufferScale(factor int) {
	C.wl_surface_set_buffer_scale(s.surf, C.int32_t(factor))
}

func (s *Surface) AckConfigure(serial uint32) {
	C.zwlr_layer_surface_v1_ack_configure(s.layer, C.uint32_t(serial))
}

func (s *Surface) Commit() {
	C.wl_surface_commit(s.surf)
}

// Destroy destroys the frame callback, the layer role and the surface.
func (s *Surface) Destroy() {
	if s.surf == nil {
		return
	}
	s.dropCallback()

	callbackDelete(unsafe.Pointer(s.layer))
	C.zwlr_layer_surface_v1_destroy(s.layer)
	s.layer = nil

	callbackDelete(unsafe.Pointer(s.surf))
	C.wl_surface_destroy(s.surf)
	s.surf = nil

	delete(s.d.surfaces, s.id)
	s.outputs = nil
}

func (s *Surface) dropCallback() {
	if s.callback == nil {
		return
	}
	callbackDelete(unsafe.Pointer(s.callback))
	C.wl_callback_destroy(s.callback)
	s.callback = nil
}

func (s *Surface) on(o *output) bool {
	return slices.Contains(s.outputs, o)
}

func (s *Surface) leave(o *output) {
	s.outputs = slices.DeleteFunc(s.outputs, func(x *output) bool { return x == o })
	s.updateScale()
}

// updateScale reports a scale change once the set of outputs settles on a
// new maximum.
func (s *Surface) updateScale() {
	scales := make([]int, 0, len(s.outputs))
	for _, o := range s.outputs {
		scales = append(scales, o.scale)
	}

	scale := surfaceScale(scales)
	if scale == s.scale {
		return
	}
	s.scale = scale
	s.d.emit(func(h port.EventHandler) { h.ScaleChanged(s.id, scale) })
}

//export shade_onSurfaceEnter
func shade_onSurfaceEnter(data unsafe.Pointer, surf *C.struct_wl_surface, proxy *C.struct_wl_output) {
	s, ok := callbackLoad(data).(*Surface)
	if !ok {
		return
	}
	o := s.d.outputFor(proxy)
	if o == nil || s.on(o) {
		return
	}
	s.outputs = append(s.outputs, o)
	s.updateScale()
}

//export shade_onSurfaceLeave
func shade_onSurfaceLeave(data unsafe.Pointer, surf *C.struct_wl_surface, proxy *C.struct_wl_output) {
	s, ok := callbackLoad(data).(*Surface)
	if !ok {
		return
	}
	if o := s.d.outputFor(proxy); o != nil {
		s.leave(o)
	}
}

//export shade_onFrameDone
func shade_onFrameDone(data unsafe.Pointer, callback *C.struct_wl_callback, t C.uint32_t) {
	s, ok := callbackLoad(data).(*Surface)
	if !ok {
		return
	}
	s.dropCallback()
	s.d.emit(func(h port.EventHandler) { h.Frame(s.id, uint32(t)) })
}

//export shade_onLayerSurfaceConfigure
func shade_onLayerSurfaceConfigure(data unsafe.Pointer, layer *C.struct_zwlr_layer_surface_v1, serial, width, height C.uint32_t) {
	s, ok := callbackLoad(data).(*Surface)
	if !ok {
		return
	}
	size := entity.NewSize(int(width), int(height))
	s.d.emit(func(h port.EventHandler) { h.Configure(s.id, size, uint32(serial)) })
}

//export shade_onLayerSurfaceClosed
func shade_onLayerSurfaceClosed(data unsafe.Pointer, layer *C.struct_zwlr_layer_surface_v1) {
	s, ok := callbackLoad(data).(*Surface)
	if !ok {
		return
	}
	s.d.emit(func(h port.EventHandler) { h.Closed(s.id) })
}
