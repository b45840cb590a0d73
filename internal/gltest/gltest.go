// Package gltest provides fakes for the platform and graphics boundaries
// with handle accounting, so lifecycle tests can verify that every failure
// path releases exactly what it acquired.
package gltest

import (
	"fmt"

	"glquad/platform"
)

// FakeContext stands in for a native graphics context.
type FakeContext struct {
	Destroyed int
}

func (c *FakeContext) Destroy() {
	c.Destroyed++
}

// FakeWindow stands in for a native window. Knobs select failure modes;
// counters record platform calls.
type FakeWindow struct {
	FlagBits platform.Flags
	W, H     int32

	CtxErr     error
	DestroyErr error

	Ctx        *FakeContext
	CtxCreated int
	Destroyed  int
	Raised     int
	Swaps      int
}

func (w *FakeWindow) Flags() platform.Flags {
	return w.FlagBits
}

func (w *FakeWindow) Size() (int32, int32) {
	return w.W, w.H
}

func (w *FakeWindow) Raise() {
	w.Raised++
}

func (w *FakeWindow) Swap() {
	w.Swaps++
}

func (w *FakeWindow) CreateContext() (platform.NativeContext, error) {
	w.CtxCreated++
	if w.CtxErr != nil {
		return nil, w.CtxErr
	}
	w.Ctx = &FakeContext{}
	return w.Ctx, nil
}

func (w *FakeWindow) Destroy() error {
	w.Destroyed++
	return w.DestroyErr
}

// FakeDriver stands in for the platform driver. Events are served from
// Queue in order.
type FakeDriver struct {
	InitErr   error
	CreateErr error
	// Window, when set, is returned by CreateWindow instead of a fresh fake.
	Window *FakeWindow

	Created      []*FakeWindow
	Quits        int
	Queue        []platform.Event
	SwapInterval int
	SwapErr      error
}

func (d *FakeDriver) Init() error {
	return d.InitErr
}

func (d *FakeDriver) Quit() {
	d.Quits++
}

func (d *FakeDriver) CreateWindow(title string, x, y, w, h int32, flags platform.Flags) (platform.NativeWindow, error) {
	if d.CreateErr != nil {
		return nil, d.CreateErr
	}
	win := d.Window
	if win == nil {
		win = &FakeWindow{FlagBits: flags, W: w, H: h}
	}
	d.Created = append(d.Created, win)
	return win, nil
}

func (d *FakeDriver) PollEvent() (platform.Event, bool) {
	if len(d.Queue) == 0 {
		return platform.Event{}, false
	}
	ev := d.Queue[0]
	d.Queue = d.Queue[1:]
	return ev, true
}

func (d *FakeDriver) SetSwapInterval(interval int) error {
	d.SwapInterval = interval
	return d.SwapErr
}

// FakeAPI implements the graphics API boundary in memory. Every handle kind
// is tracked in a live set, so LiveHandles reports what an aborted pipeline
// failed to release. Ops records the draw-path call sequence.
type FakeAPI struct {
	InitErr    error
	VersionStr string
	VendorStr  string
	// FailCompile marks shader kinds whose compilation reports failure.
	FailCompile map[uint32]bool
	CompileLog  string
	FailLink    bool
	LinkLog     string
	// Attribs maps attribute names to locations; unknown names resolve
	// to -1.
	Attribs map[string]int32
	// PendingErrors is the GL error queue served by GetError.
	PendingErrors []uint32

	nextID        uint32
	LiveShaders   map[uint32]uint32
	CompiledKinds []uint32
	Sources       map[uint32]string
	LivePrograms  map[uint32]bool
	Attached      map[uint32][]uint32
	LiveBuffers   map[uint32]bool
	LiveVAOs      map[uint32]bool
	Uploaded      map[uint32][]float32
	Enabled       []uint32
	Ops           []string

	boundBuffer uint32
}

// NewFakeAPI returns a fake wired for the happy path: both demo attributes
// resolve and all status queries succeed.
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{
		VersionStr:   "4.1 fake",
		VendorStr:    "gltest",
		Attribs:      map[string]int32{"vertexPosition": 0, "vertexColor": 1},
		LiveShaders:  map[uint32]uint32{},
		Sources:      map[uint32]string{},
		LivePrograms: map[uint32]bool{},
		Attached:     map[uint32][]uint32{},
		LiveBuffers:  map[uint32]bool{},
		LiveVAOs:     map[uint32]bool{},
		Uploaded:     map[uint32][]float32{},
	}
}

// LiveHandles counts every GPU object the fake still considers allocated.
func (f *FakeAPI) LiveHandles() int {
	return len(f.LiveShaders) + len(f.LivePrograms) + len(f.LiveBuffers) + len(f.LiveVAOs)
}

func (f *FakeAPI) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *FakeAPI) Init() error {
	return f.InitErr
}

func (f *FakeAPI) Version() string {
	return f.VersionStr
}

func (f *FakeAPI) Vendor() string {
	return f.VendorStr
}

func (f *FakeAPI) CreateShader(kind uint32) uint32 {
	id := f.id()
	f.LiveShaders[id] = kind
	return id
}

func (f *FakeAPI) ShaderSource(shader uint32, src string) {
	f.Sources[shader] = src
}

func (f *FakeAPI) CompileShader(shader uint32) {
	f.CompiledKinds = append(f.CompiledKinds, f.LiveShaders[shader])
}

func (f *FakeAPI) CompileStatus(shader uint32) bool {
	return !f.FailCompile[f.LiveShaders[shader]]
}

func (f *FakeAPI) ShaderInfoLog(uint32) string {
	return f.CompileLog
}

func (f *FakeAPI) DeleteShader(shader uint32) {
	delete(f.LiveShaders, shader)
}

func (f *FakeAPI) CreateProgram() uint32 {
	id := f.id()
	f.LivePrograms[id] = true
	return id
}

func (f *FakeAPI) AttachShader(program, shader uint32) {
	f.Attached[program] = append(f.Attached[program], shader)
}

func (f *FakeAPI) LinkProgram(uint32) {}

func (f *FakeAPI) LinkStatus(uint32) bool {
	return !f.FailLink
}

func (f *FakeAPI) ProgramInfoLog(uint32) string {
	return f.LinkLog
}

func (f *FakeAPI) DeleteProgram(program uint32) {
	delete(f.LivePrograms, program)
}

func (f *FakeAPI) UseProgram(program uint32) {
	f.Ops = append(f.Ops, fmt.Sprintf("use %d", program))
}

func (f *FakeAPI) AttribLocation(_ uint32, name string) int32 {
	if loc, ok := f.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *FakeAPI) GenBuffer() uint32 {
	id := f.id()
	f.LiveBuffers[id] = true
	return id
}

func (f *FakeAPI) BindArrayBuffer(buffer uint32) {
	f.boundBuffer = buffer
}

func (f *FakeAPI) BufferData(data []float32) {
	f.Uploaded[f.boundBuffer] = data
}

func (f *FakeAPI) DeleteBuffer(buffer uint32) {
	delete(f.LiveBuffers, buffer)
}

func (f *FakeAPI) GenVertexArray() uint32 {
	id := f.id()
	f.LiveVAOs[id] = true
	return id
}

func (f *FakeAPI) BindVertexArray(array uint32) {
	f.Ops = append(f.Ops, fmt.Sprintf("bindvao %d", array))
}

func (f *FakeAPI) DeleteVertexArray(array uint32) {
	delete(f.LiveVAOs, array)
}

func (f *FakeAPI) VertexAttribPointer(uint32, int32) {}

func (f *FakeAPI) EnableVertexAttribArray(index uint32) {
	f.Enabled = append(f.Enabled, index)
}

func (f *FakeAPI) DrawTriangles(first, count int32) {
	f.Ops = append(f.Ops, fmt.Sprintf("draw %d %d", first, count))
}

func (f *FakeAPI) ClearColor(float32, float32, float32, float32) {}

func (f *FakeAPI) Clear() {
	f.Ops = append(f.Ops, "clear")
}

func (f *FakeAPI) GetError() uint32 {
	if len(f.PendingErrors) == 0 {
		return 0
	}
	code := f.PendingErrors[0]
	f.PendingErrors = f.PendingErrors[1:]
	return code
}
