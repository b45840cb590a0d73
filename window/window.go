// Package window owns the native platform window: lifecycle, live flag
// queries and the single renderer slot.
package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"glquad/platform"
	"glquad/renderer"
)

// Errors reported by CreateRenderer.
var (
	ErrRendererAlreadyExists = errors.New("window already has a renderer")
	ErrGraphicsUnsupported   = errors.New("window was not created with graphics capability")
	ErrNotInitialized        = errors.New("window is not initialized")
)

// CreationError reports that the platform refused to create the window,
// carrying its diagnostic.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create window: %v", e.Cause)
}

func (e *CreationError) Unwrap() error {
	return e.Cause
}

// Config describes the window to create. Placement defaults should use
// platform.PosUndefined to let the platform choose.
type Config struct {
	Title         string
	X, Y          int32
	Width, Height int32
	Flags         platform.Flags
	Logger        *slog.Logger
}

// DefaultConfig returns a config with platform-chosen placement.
func DefaultConfig(title string, width, height int32, flags platform.Flags) Config {
	return Config{
		Title:  title,
		X:      platform.PosUndefined,
		Y:      platform.PosUndefined,
		Width:  width,
		Height: height,
		Flags:  flags,
	}
}

// Window owns one native window handle and at most one renderer. Explicit
// Free is the primary release path; a finalizer covers the case where it was
// skipped.
type Window struct {
	native platform.NativeWindow
	flags  platform.Flags // creation flags, for capability checks
	log    *slog.Logger

	renderer      *renderer.Renderer
	rendererTried bool
	freed         bool
}

// Create requests a native window from the driver.
func Create(drv platform.Driver, cfg Config) (*Window, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	native, err := drv.CreateWindow(cfg.Title, cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.Flags)
	if err != nil {
		return nil, &CreationError{Cause: err}
	}
	w := &Window{native: native, flags: cfg.Flags, log: log}
	log.Info("window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	runtime.SetFinalizer(w, (*Window).Free)
	return w, nil
}

// IsInitialized reports whether the native handle is live.
func (w *Window) IsInitialized() bool {
	return w.native != nil
}

// liveFlags queries the platform's flag bitset, or logs and reports false
// when the window is uninitialized. Misuse diagnostic, not an error return.
func (w *Window) liveFlags(query string) (platform.Flags, bool) {
	if !w.IsInitialized() {
		w.logger().Error("flag query on uninitialized window", "query", query)
		return 0, false
	}
	return w.native.Flags(), true
}

func (w *Window) hasFlag(query string, bit platform.Flags) bool {
	flags, ok := w.liveFlags(query)
	return ok && flags&bit != 0
}

// IsFullscreen reports whether the fullscreen bit is set; true for both
// exclusive and borderless-desktop fullscreen.
func (w *Window) IsFullscreen() bool {
	return w.hasFlag("fullscreen", platform.WindowFullscreen)
}

// IsFullscreenBorderless reports whether the full desktop-fullscreen mask is
// set.
func (w *Window) IsFullscreenBorderless() bool {
	flags, ok := w.liveFlags("fullscreen-borderless")
	return ok && flags&platform.WindowFullscreenDesktop == platform.WindowFullscreenDesktop
}

// IsWindowed reports whether neither fullscreen mode is active.
func (w *Window) IsWindowed() bool {
	flags, ok := w.liveFlags("windowed")
	return ok && flags&platform.WindowFullscreenDesktop == 0
}

// IsOpenGL reports whether the window can host a graphics context.
func (w *Window) IsOpenGL() bool {
	return w.hasFlag("opengl", platform.WindowOpenGL)
}

func (w *Window) IsHidden() bool {
	return w.hasFlag("hidden", platform.WindowHidden)
}

// IsDecorated reports whether the window has a border.
func (w *Window) IsDecorated() bool {
	flags, ok := w.liveFlags("decorated")
	return ok && flags&platform.WindowBorderless == 0
}

func (w *Window) IsResizable() bool {
	return w.hasFlag("resizable", platform.WindowResizable)
}

func (w *Window) IsMinimized() bool {
	return w.hasFlag("minimized", platform.WindowMinimized)
}

func (w *Window) IsMaximized() bool {
	return w.hasFlag("maximized", platform.WindowMaximized)
}

func (w *Window) IsInputGrabbed() bool {
	return w.hasFlag("input-grabbed", platform.WindowInputGrabbed)
}

func (w *Window) HasInputFocus() bool {
	return w.hasFlag("input-focus", platform.WindowInputFocus)
}

func (w *Window) IsMouseHovered() bool {
	return w.hasFlag("mouse-hover", platform.WindowMouseFocus)
}

func (w *Window) IsHighDPI() bool {
	return w.hasFlag("high-dpi", platform.WindowAllowHighDPI)
}

// Size reports the platform's current window size; ok is false with a
// logged error when the window is uninitialized.
func (w *Window) Size() (width, height int32, ok bool) {
	if !w.IsInitialized() {
		w.logger().Error("size query on uninitialized window")
		return 0, 0, false
	}
	width, height = w.native.Size()
	return width, height, true
}

// Raise brings the window to the front and requests input focus.
func (w *Window) Raise() {
	if !w.IsInitialized() {
		w.logger().Error("raise on uninitialized window")
		return
	}
	w.native.Raise()
}

// HandleEvent receives one polled platform event. Window state is queried
// live from the platform flag bitset, so no bookkeeping is needed here; the
// hook exists so the loop forwards every event it does not consume.
func (w *Window) HandleEvent(platform.Event) {}

// CreateRenderer builds this window's renderer. The single renderer slot is
// claimed by the first call, succeed or fail; a second call always reports
// ErrRendererAlreadyExists. A window created without the OpenGL flag is
// rejected before any context creation.
func (w *Window) CreateRenderer(cfg renderer.Config) (*renderer.Renderer, error) {
	if !w.IsInitialized() {
		return nil, ErrNotInitialized
	}
	if w.rendererTried {
		return nil, ErrRendererAlreadyExists
	}
	if w.flags&platform.WindowOpenGL == 0 {
		return nil, ErrGraphicsUnsupported
	}
	w.rendererTried = true
	if cfg.Logger == nil {
		cfg.Logger = w.log
	}
	r, err := renderer.New(w.native, cfg)
	if err != nil {
		return nil, err
	}
	w.renderer = r
	return r, nil
}

// SwapBuffers presents the current frame. Logged no-op when the window is
// uninitialized or not graphics-capable.
func (w *Window) SwapBuffers() {
	if !w.IsInitialized() {
		w.logger().Error("swap on uninitialized window")
		return
	}
	if w.flags&platform.WindowOpenGL == 0 {
		w.logger().Error("swap on window without graphics capability")
		return
	}
	w.native.Swap()
}

// Free releases the owned renderer and then the native handle. The second
// call logs and makes no platform call.
func (w *Window) Free() {
	if w.freed || w.native == nil {
		w.logger().Error("window already freed")
		return
	}
	if w.renderer != nil {
		w.renderer.Free()
		w.renderer = nil
	}
	if err := w.native.Destroy(); err != nil {
		w.logger().Error("destroy window", "error", err)
	}
	w.native = nil
	w.freed = true
	runtime.SetFinalizer(w, nil)
}

func (w *Window) logger() *slog.Logger {
	if w.log == nil {
		return slog.Default()
	}
	return w.log
}
