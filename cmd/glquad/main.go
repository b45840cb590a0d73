// Command glquad opens a window, builds the demo renderer and runs the
// event loop until quit. On any logged error it pauses before exiting so the
// diagnostics can be read.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"glquad/app"
	"glquad/graphics"
	"glquad/platform"
	"glquad/platform/sdldriver"
	"glquad/renderer"
	"glquad/shader"
	"glquad/window"
)

func init() {
	runtime.LockOSThread()
}

// demoMesh is the hard-coded multicolored quad: two triangles, one color
// per corner.
func demoMesh() renderer.Mesh {
	return renderer.Mesh{
		Positions: []float32{
			-0.5, 0.5, 0.0,
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			-0.5, 0.5, 0.0,
			0.5, -0.5, 0.0,
			0.5, 0.5, 0.0,
		},
		Colors: []float32{
			1.0, 0.0, 0.0,
			0.0, 1.0, 0.0,
			0.0, 0.0, 1.0,
			1.0, 0.0, 0.0,
			0.0, 0.0, 1.0,
			1.0, 1.0, 0.0,
		},
	}
}

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	fullscreen := flag.Bool("fullscreen", false, "start in borderless fullscreen")
	vsync := flag.Bool("vsync", true, "request vertical sync (best effort)")
	perFrame := flag.Bool("draw-per-frame", false, "drain all events before each draw instead of drawing once per poll")
	flag.Parse()

	counter := app.NewErrorCounter(slog.NewTextHandler(os.Stderr, nil))
	logger := slog.New(counter)

	run(logger, *width, *height, *fullscreen, *vsync, *perFrame)

	if counter.Errors() > 0 {
		fmt.Fprint(os.Stderr, "errors occurred; press enter to exit: ")
		bufio.NewReader(os.Stdin).ReadString('\n')
		os.Exit(1)
	}
}

func run(logger *slog.Logger, width, height int, fullscreen, vsync, perFrame bool) {
	drv := sdldriver.New()
	if err := drv.Init(); err != nil {
		logger.Error("platform init failed", "error", err)
		return
	}
	defer drv.Quit()

	flags := platform.WindowOpenGL | platform.WindowShown | platform.WindowAllowHighDPI
	if fullscreen {
		flags |= platform.WindowFullscreenDesktop
	}
	cfg := window.DefaultConfig("glquad", int32(width), int32(height), flags)
	cfg.Logger = logger
	win, err := window.Create(drv, cfg)
	if err != nil {
		logger.Error("window creation failed", "error", err)
		return
	}
	defer win.Free()

	r, err := win.CreateRenderer(renderer.Config{
		API:     graphics.OpenGL(),
		Shaders: shader.Builtin(),
		Mesh:    demoMesh(),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("renderer creation failed", "error", err)
		return
	}

	if vsync {
		if err := drv.SetSwapInterval(1); err != nil {
			logger.Warn("vsync unavailable", "error", err)
		}
	}
	win.Raise()

	policy := app.DrawPerEvent
	if perFrame {
		policy = app.DrawPerFrame
	}
	app.New(app.Config{
		Surface: win,
		Drawer:  r,
		Events:  drv,
		Policy:  policy,
		Logger:  logger,
	}).Run()

	for _, name := range r.DrainErrors() {
		logger.Error("gl error pending after run", "glerror", name)
	}
}
