package graphics

import (
	"fmt"
	"log/slog"

	"glquad/platform"
)

// CreationError reports that the platform could not create a graphics
// context for the window surface.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("create graphics context: %v", e.Cause)
}

func (e *CreationError) Unwrap() error {
	return e.Cause
}

// Context owns one native graphics context bound to a single window surface
// at creation time. The owning renderer frees it; Free is idempotent.
type Context struct {
	native platform.NativeContext
	log    *slog.Logger
}

// NewContext creates a context on the given window's surface.
func NewContext(win platform.NativeWindow, log *slog.Logger) (*Context, error) {
	if log == nil {
		log = slog.Default()
	}
	native, err := win.CreateContext()
	if err != nil {
		return nil, &CreationError{Cause: err}
	}
	return &Context{native: native, log: log}, nil
}

// Free releases the native context. A second call logs and does nothing.
func (c *Context) Free() {
	if c.native == nil {
		c.log.Error("graphics context already freed")
		return
	}
	c.native.Destroy()
	c.native = nil
}
