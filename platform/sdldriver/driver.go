// Package sdldriver implements the platform boundary on SDL2.
package sdldriver

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"glquad/platform"
)

// Driver is the SDL2-backed platform driver.
type Driver struct{}

// New returns an uninitialized driver; call Init from the main thread.
func New() *Driver {
	return &Driver{}
}

// Init locks the calling goroutine to its OS thread and brings up the SDL
// video and event subsystems. All further driver calls must happen on this
// thread.
func (*Driver) Init() error {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	return nil
}

// Quit shuts the SDL subsystems down.
func (*Driver) Quit() {
	sdl.Quit()
}

// CreateWindow opens a native window. When the OpenGL flag is requested the
// context attributes are set first: 4.1 core profile, double buffered.
func (*Driver) CreateWindow(title string, x, y, w, h int32, flags platform.Flags) (platform.NativeWindow, error) {
	if flags&platform.WindowOpenGL != 0 {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	}

	// platform.Flags and platform.PosUndefined use the SDL values directly.
	win, err := sdl.CreateWindow(title, x, y, w, h, uint32(flags))
	if err != nil {
		return nil, err
	}
	return &nativeWindow{win: win}, nil
}

// PollEvent drains one event from the SDL queue, mapping quit and keydown
// records and passing everything else through as EventOther.
func (*Driver) PollEvent() (platform.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return platform.Event{}, false
	}
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return platform.Event{Kind: platform.EventQuit}, true
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return platform.Event{Kind: platform.EventKeyDown, Key: platform.Keycode(e.Keysym.Sym)}, true
		}
	}
	return platform.Event{Kind: platform.EventOther}, true
}

// SetSwapInterval requests vertical sync for the current context.
func (*Driver) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

type nativeWindow struct {
	win *sdl.Window
}

func (w *nativeWindow) Flags() platform.Flags {
	return platform.Flags(w.win.GetFlags())
}

func (w *nativeWindow) Size() (int32, int32) {
	return w.win.GetSize()
}

func (w *nativeWindow) Raise() {
	w.win.Raise()
}

func (w *nativeWindow) Swap() {
	w.win.GLSwap()
}

func (w *nativeWindow) CreateContext() (platform.NativeContext, error) {
	ctx, err := w.win.GLCreateContext()
	if err != nil {
		return nil, err
	}
	return &nativeContext{ctx: ctx}, nil
}

func (w *nativeWindow) Destroy() error {
	return w.win.Destroy()
}

type nativeContext struct {
	ctx sdl.GLContext
}

func (c *nativeContext) Destroy() {
	sdl.GLDeleteContext(c.ctx)
}
