//go:build linux

package wayland

/*
#cgo pkg-config: egl wayland-egl glesv2
#cgo CFLAGS: -DMESA_EGL_NO_X11_HEADERS

#include <EGL/egl.h>
#include <GLES2/gl2.h>
#include <wayland-client.h>
#include <wayland-egl.h>

static EGLDisplay shade_egl_get_display(struct wl_display *disp) {
	return eglGetDisplay((EGLNativeDisplayType)disp);
}

static EGLSurface shade_egl_create_window_surface(EGLDisplay disp, EGLConfig conf, struct wl_egl_window *win) {
	return eglCreateWindowSurface(disp, conf, (EGLNativeWindowType)win, NULL);
}

static EGLContext shade_egl_create_context(EGLDisplay disp, EGLConfig conf) {
	const EGLint attribs[] = {
		EGL_CONTEXT_CLIENT_VERSION, 2,
		EGL_NONE,
	};
	return eglCreateContext(disp, conf, EGL_NO_CONTEXT, attribs);
}

static EGLBoolean shade_egl_choose_config(EGLDisplay disp, EGLConfig *conf) {
	const EGLint attribs[] = {
		EGL_SURFACE_TYPE, EGL_WINDOW_BIT,
		EGL_RENDERABLE_TYPE, EGL_OPENGL_ES2_BIT,
		EGL_RED_SIZE, 8,
		EGL_GREEN_SIZE, 8,
		EGL_BLUE_SIZE, 8,
		EGL_ALPHA_SIZE, 8,
		EGL_NONE,
	};
	EGLint n = 0;
	if (!eglChooseConfig(disp, attribs, conf, 1, &n)) {
		return EGL_FALSE;
	}
	return n > 0 ? EGL_TRUE : EGL_FALSE;
}

static EGLBoolean shade_egl_release_current(EGLDisplay disp) {
	return eglMakeCurrent(disp, EGL_NO_SURFACE, EGL_NO_SURFACE, EGL_NO_CONTEXT);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

var (
	_ port.RenderPlatform = (*RenderPlatform)(nil)
	_ port.RenderTarget   = (*Target)(nil)
	_ port.Canvas         = (*glCanvas)(nil)
)

// RenderPlatform creates GLES2 contexts on the EGL display of a Wayland
// connection.
type RenderPlatform struct {
	d      *Display
	disp   C.EGLDisplay
	config C.EGLConfig
}

// NewRenderPlatform initializes EGL on the display connection.
func NewRenderPlatform(d *Display) (*RenderPlatform, error) {
	disp := C.shade_egl_get_display(d.disp)
	if disp == nil {
		return nil, fmt.Errorf("%w: eglGetDisplay failed", port.ErrContext)
	}

	var major, minor C.EGLint
	if C.eglInitialize(disp, &major, &minor) == C.EGL_FALSE {
		return nil, fmt.Errorf("%w: eglInitialize: %w", port.ErrContext, eglError())
	}
	if C.eglBindAPI(C.EGL_OPENGL_ES_API) == C.EGL_FALSE {
		C.eglTerminate(disp)
		return nil, fmt.Errorf("%w: eglBindAPI: %w", port.ErrContext, eglError())
	}

	p := &RenderPlatform{d: d, disp: disp}
	if C.shade_egl_choose_config(disp, &p.config) == C.EGL_FALSE {
		C.eglTerminate(disp)
		return nil, fmt.Errorf("%w: no RGBA8 GLES2 window config", port.ErrContext)
	}

	logging.FromContext(d.ctx).Debug().
		Int("egl_major", int(major)).
		Int("egl_minor", int(minor)).
		Msg("EGL initialized")
	return p, nil
}

// CreateTarget creates a wl_egl_window, a window surface and a GLES2 context
// for surface. Swap interval is 0; frame pacing comes from frame callbacks.
func (p *RenderPlatform) CreateTarget(surface port.Surface, size entity.Size) (port.RenderTarget, error) {
	s, ok := surface.(*Surface)
	if !ok || s.surf == nil {
		return nil, errors.New("surface does not belong to this display")
	}

	size = eglSize(size)
	win := C.wl_egl_window_create(s.surf, C.int(size.Width), C.int(size.Height))
	if win == nil {
		return nil, errors.New("wl_egl_window_create failed")
	}

	ctx := C.shade_egl_create_context(p.disp, p.config)
	if ctx == nil {
		err := eglError()
		C.wl_egl_window_destroy(win)
		return nil, fmt.Errorf("eglCreateContext: %w", err)
	}

	eglSurf := C.shade_egl_create_window_surface(p.disp, p.config, win)
	if eglSurf == nil {
		err := eglError()
		C.eglDestroyContext(p.disp, ctx)
		C.wl_egl_window_destroy(win)
		return nil, fmt.Errorf("eglCreateWindowSurface: %w", err)
	}

	t := &Target{p: p, win: win, surf: eglSurf, ctx: ctx, canvas: &glCanvas{size: size}}
	if err := t.MakeCurrent(); err != nil {
		t.Destroy()
		return nil, err
	}
	if C.eglSwapInterval(p.disp, 0) == C.EGL_FALSE {
		err := eglError()
		t.Destroy()
		return nil, fmt.Errorf("eglSwapInterval: %w", err)
	}
	return t, nil
}

// Close terminates the EGL display. All targets must be destroyed first.
func (p *RenderPlatform) Close() {
	C.shade_egl_release_current(p.disp)
	C.eglTerminate(p.disp)
}

// Target is one window's GLES2 context and EGL window surface.
type Target struct {
	p      *RenderPlatform
	win    *C.struct_wl_egl_window
	surf   C.EGLSurface
	ctx    C.EGLContext
	canvas *glCanvas
}

func (t *Target) MakeCurrent() error {
	if C.eglMakeCurrent(t.p.disp, t.surf, t.surf, t.ctx) == C.EGL_FALSE {
		return fmt.Errorf("eglMakeCurrent: %w", eglError())
	}
	return nil
}

func (t *Target) Resize(size entity.Size) {
	size = eglSize(size)
	C.wl_egl_window_resize(t.win, C.int(size.Width), C.int(size.Height), 0, 0)
	t.canvas.size = size
}

func (t *Target) Canvas() port.Canvas { return t.canvas }

// Present swaps buffers, which attaches and commits the new buffer.
func (t *Target) Present() error {
	if C.eglSwapBuffers(t.p.disp, t.surf) == C.EGL_FALSE {
		return fmt.Errorf("eglSwapBuffers: %w", eglError())
	}
	return nil
}

func (t *Target) Destroy() {
	if t.win == nil {
		return
	}
	C.shade_egl_release_current(t.p.disp)
	C.eglDestroySurface(t.p.disp, t.surf)
	C.eglDestroyContext(t.p.disp, t.ctx)
	C.wl_egl_window_destroy(t.win)
	t.win = nil
}

// glCanvas fills rectangles with scissored clears, which needs no shaders.
// Fills replace the destination, alpha included.
type glCanvas struct {
	size entity.Size
}

func (c *glCanvas) Size() entity.Size { return c.size }

func (c *glCanvas) Clear(col color.NRGBA) {
	C.glDisable(C.GL_SCISSOR_TEST)
	C.glViewport(0, 0, C.GLsizei(c.size.Width), C.GLsizei(c.size.Height))
	c.clear(col)
}

func (c *glCanvas) FillRect(r image.Rectangle, col color.NRGBA) {
	x, y, w, h, ok := scissorRect(r, c.size)
	if !ok {
		return
	}
	C.glEnable(C.GL_SCISSOR_TEST)
	C.glScissor(C.GLint(x), C.GLint(y), C.GLsizei(w), C.GLsizei(h))
	c.clear(col)
	C.glDisable(C.GL_SCISSOR_TEST)
}

func (c *glCanvas) clear(col color.NRGBA) {
	r, g, b, a := glColor(col)
	C.glClearColor(C.GLfloat(r), C.GLfloat(g), C.GLfloat(b), C.GLfloat(a))
	C.glClear(C.GL_COLOR_BUFFER_BIT)
}

func eglError() error {
	return fmt.Errorf("EGL error 0x%x", int(C.eglGetError()))
}
