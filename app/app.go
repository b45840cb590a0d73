// Package app runs the event/draw loop: poll platform events, forward them
// to the window, draw and present until a quit event or the quit key.
package app

import (
	"log/slog"

	"glquad/platform"
)

// DrawPolicy names the loop's redraw cadence. The source system drew once
// per poll iteration whether or not an event was pending; that behavior is
// kept as the default rather than silently corrected.
type DrawPolicy int

const (
	// DrawPerEvent polls at most one event per iteration and draws every
	// iteration.
	DrawPerEvent DrawPolicy = iota
	// DrawPerFrame drains all pending events, then draws once.
	DrawPerFrame
)

// EventSource supplies pending events without blocking. The platform driver
// satisfies it.
type EventSource interface {
	PollEvent() (platform.Event, bool)
}

// Drawer issues one frame's draw call.
type Drawer interface {
	Draw()
}

// Surface is the window the loop presents to and forwards events to.
type Surface interface {
	SwapBuffers()
	HandleEvent(platform.Event)
}

// Config wires the loop's collaborators.
type Config struct {
	Surface Surface
	Drawer  Drawer
	Events  EventSource
	Policy  DrawPolicy
	QuitKey platform.Keycode // zero means Escape
	Logger  *slog.Logger
}

// App owns the loop state. Single-threaded; Run must be called on the
// thread holding the graphics context.
type App struct {
	surface Surface
	drawer  Drawer
	events  EventSource
	policy  DrawPolicy
	quitKey platform.Keycode
	log     *slog.Logger

	quit bool
}

// New builds the loop from its collaborators.
func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	quitKey := cfg.QuitKey
	if quitKey == 0 {
		quitKey = platform.KeyEscape
	}
	return &App{
		surface: cfg.Surface,
		drawer:  cfg.Drawer,
		events:  cfg.Events,
		policy:  cfg.Policy,
		quitKey: quitKey,
		log:     log,
	}
}

// Run iterates until a quit event or the quit key arrives. Each iteration
// polls per the draw policy, then draws and presents exactly once.
func (a *App) Run() {
	for !a.quit {
		switch a.policy {
		case DrawPerFrame:
			for {
				ev, ok := a.events.PollEvent()
				if !ok {
					break
				}
				a.handle(ev)
			}
		default:
			if ev, ok := a.events.PollEvent(); ok {
				a.handle(ev)
			}
		}
		a.drawer.Draw()
		a.surface.SwapBuffers()
	}
	a.log.Info("event loop finished")
}

func (a *App) handle(ev platform.Event) {
	switch {
	case ev.Kind == platform.EventQuit:
		a.quit = true
	case ev.Kind == platform.EventKeyDown && ev.Key == a.quitKey:
		a.quit = true
	default:
		a.surface.HandleEvent(ev)
	}
}
