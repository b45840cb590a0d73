package window_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glquad/internal/gltest"
	"glquad/platform"
	"glquad/renderer"
	"glquad/shader"
	"glquad/window"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func newTestWindow(t *testing.T, drv *gltest.FakeDriver, flags platform.Flags) (*window.Window, *bytes.Buffer) {
	t.Helper()
	logger, buf := testLogger()
	cfg := window.DefaultConfig("Test", 800, 600, flags)
	cfg.Logger = logger
	w, err := window.Create(drv, cfg)
	require.NoError(t, err)
	return w, buf
}

func rendererConfig() renderer.Config {
	return renderer.Config{
		API:     gltest.NewFakeAPI(),
		Shaders: shader.Builtin(),
		Mesh: renderer.Mesh{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Colors:    []float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		},
	}
}

func TestCreateFailureCarriesDiagnostic(t *testing.T) {
	drv := &gltest.FakeDriver{CreateErr: errors.New("no display")}
	_, err := window.Create(drv, window.DefaultConfig("Test", 800, 600, 0))

	var cerr *window.CreationError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorContains(t, err, "no display")
}

func TestPlainWindowScenario(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, 0)

	assert.True(t, w.IsInitialized())
	width, height, ok := w.Size()
	require.True(t, ok)
	assert.Equal(t, int32(800), width)
	assert.Equal(t, int32(600), height)

	assert.False(t, w.IsFullscreen())
	assert.False(t, w.IsFullscreenBorderless())
	assert.False(t, w.IsOpenGL())
	assert.False(t, w.IsHidden())
	assert.False(t, w.IsResizable())
	assert.False(t, w.IsMinimized())
	assert.False(t, w.IsMaximized())
	assert.False(t, w.IsInputGrabbed())
	assert.False(t, w.HasInputFocus())
	assert.False(t, w.IsMouseHovered())
	assert.False(t, w.IsHighDPI())
	// With no flag bits set the window is a plain decorated window.
	assert.True(t, w.IsWindowed())
	assert.True(t, w.IsDecorated())
}

func TestFlagQueriesTrackLiveBits(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowOpenGL)
	native := drv.Created[0]

	native.FlagBits |= platform.WindowFullscreenDesktop | platform.WindowInputFocus
	assert.True(t, w.IsFullscreen())
	assert.True(t, w.IsFullscreenBorderless())
	assert.False(t, w.IsWindowed())
	assert.True(t, w.HasInputFocus())

	native.FlagBits = platform.WindowOpenGL | platform.WindowBorderless
	assert.False(t, w.IsFullscreen())
	assert.False(t, w.IsDecorated())
	assert.True(t, w.IsWindowed())
}

func TestUninitializedQueriesLogAndReturnFalse(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, buf := newTestWindow(t, drv, platform.WindowFullscreen)
	w.Free()
	buf.Reset()

	assert.False(t, w.IsInitialized())
	assert.False(t, w.IsFullscreen())
	assert.Contains(t, buf.String(), "uninitialized")

	buf.Reset()
	_, _, ok := w.Size()
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "uninitialized")

	buf.Reset()
	w.Raise()
	assert.Contains(t, buf.String(), "uninitialized")
	assert.Zero(t, drv.Created[0].Raised)
}

func TestFreeIsIdempotent(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, buf := newTestWindow(t, drv, 0)

	w.Free()
	assert.Equal(t, 1, drv.Created[0].Destroyed)
	assert.NotContains(t, buf.String(), "already freed")

	w.Free()
	assert.Equal(t, 1, drv.Created[0].Destroyed)
	assert.Contains(t, buf.String(), "already freed")
}

func TestFreeReleasesRendererFirst(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowOpenGL)

	cfg := rendererConfig()
	api := cfg.API.(*gltest.FakeAPI)
	_, err := w.CreateRenderer(cfg)
	require.NoError(t, err)
	require.NotZero(t, api.LiveHandles())

	w.Free()
	assert.Zero(t, api.LiveHandles())
	assert.Equal(t, 1, drv.Created[0].Ctx.Destroyed)
	assert.Equal(t, 1, drv.Created[0].Destroyed)
}

func TestCreateRendererTwice(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowOpenGL)

	r, err := w.CreateRenderer(rendererConfig())
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = w.CreateRenderer(rendererConfig())
	assert.ErrorIs(t, err, window.ErrRendererAlreadyExists)
}

func TestRendererSlotClaimedByFailedAttempt(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowOpenGL)

	cfg := rendererConfig()
	cfg.API.(*gltest.FakeAPI).InitErr = errors.New("loader broke")
	_, err := w.CreateRenderer(cfg)
	var lerr *renderer.ExtensionLoadError
	require.ErrorAs(t, err, &lerr)

	_, err = w.CreateRenderer(rendererConfig())
	assert.ErrorIs(t, err, window.ErrRendererAlreadyExists)
}

func TestCreateRendererWithoutGraphicsFlag(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowResizable)

	_, err := w.CreateRenderer(rendererConfig())
	assert.ErrorIs(t, err, window.ErrGraphicsUnsupported)
	// Rejected before any context creation was attempted.
	assert.Zero(t, drv.Created[0].CtxCreated)
}

func TestSwapBuffers(t *testing.T) {
	drv := &gltest.FakeDriver{}
	w, _ := newTestWindow(t, drv, platform.WindowOpenGL)
	w.SwapBuffers()
	assert.Equal(t, 1, drv.Created[0].Swaps)

	plain, buf := newTestWindow(t, &gltest.FakeDriver{}, 0)
	plain.SwapBuffers()
	assert.Contains(t, buf.String(), "graphics")
}
