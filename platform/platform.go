// Package platform defines the boundary between the window/renderer layers
// and the concrete windowing backend. The one real implementation lives in
// platform/sdldriver; tests substitute fakes.
package platform

// Flags is the window capability/state bitset. Values match the SDL wire
// values so the SDL driver passes them through unchanged, and so live flag
// queries can be tested bit-for-bit.
type Flags uint32

const (
	WindowFullscreen        Flags = 0x00000001
	WindowOpenGL            Flags = 0x00000002
	WindowShown             Flags = 0x00000004
	WindowHidden            Flags = 0x00000008
	WindowBorderless        Flags = 0x00000010
	WindowResizable         Flags = 0x00000020
	WindowMinimized         Flags = 0x00000040
	WindowMaximized         Flags = 0x00000080
	WindowInputGrabbed      Flags = 0x00000100
	WindowInputFocus        Flags = 0x00000200
	WindowMouseFocus        Flags = 0x00000400
	WindowFullscreenDesktop Flags = WindowFullscreen | 0x00001000
	WindowAllowHighDPI      Flags = 0x00002000
)

// PosUndefined lets the platform choose window placement.
const PosUndefined int32 = 0x1FFF0000

// Keycode identifies a key in keyboard events.
type Keycode int32

// KeyEscape is the designated quit key.
const KeyEscape Keycode = 27

// EventKind discriminates the events the loop cares about. Everything the
// backend reports that is not a quit or keydown arrives as EventOther and is
// forwarded to the window untouched.
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventKeyDown
)

// Event is one polled input or window event.
type Event struct {
	Kind EventKind
	Key  Keycode // valid for EventKeyDown
}

// Driver is the windowing backend: subsystem lifecycle, window creation and
// the event queue. Init must be called once, from the main thread, before
// any other method.
type Driver interface {
	Init() error
	Quit()
	CreateWindow(title string, x, y, w, h int32, flags Flags) (NativeWindow, error)
	// PollEvent reports the next pending event, if any. It never blocks.
	PollEvent() (Event, bool)
	// SetSwapInterval requests vertical sync; callers treat failure as
	// best-effort.
	SetSwapInterval(interval int) error
}

// NativeWindow is an open platform window.
type NativeWindow interface {
	// Flags reports the live state bitset for this window.
	Flags() Flags
	Size() (w, h int32)
	Raise()
	Swap()
	CreateContext() (NativeContext, error)
	Destroy() error
}

// NativeContext is a live graphics context bound to one window's surface.
type NativeContext interface {
	Destroy()
}
