// Package graphics wraps the OpenGL boundary: the API interface carries
// exactly the calls the renderer makes, and Context owns the native graphics
// context bound to a window surface.
package graphics

// Shader stage kinds, using the GL enum values.
const (
	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30
)

// API is the set of GL calls the renderer depends on. The real
// implementation is returned by OpenGL; tests substitute fakes with handle
// accounting.
type API interface {
	// Init resolves the GL function pointers for the current context.
	Init() error
	// Version reports the GL_VERSION string; empty means the probe failed.
	Version() string
	Vendor() string

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	// ShaderInfoLog returns the compile diagnostic, or "" when the driver
	// reports a zero-length log.
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	// AttribLocation resolves a named vertex attribute; negative means the
	// linked program does not declare it.
	AttribLocation(program uint32, name string) int32

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// BufferData uploads the float array to the bound array buffer as
	// static draw data.
	BufferData(data []float32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)

	DrawTriangles(first, count int32)
	ClearColor(r, g, b, a float32)
	Clear()
	// GetError pops one entry from the GL error queue; 0 means empty.
	GetError() uint32
}

var errorNames = map[uint32]string{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0503: "GL_STACK_OVERFLOW",
	0x0504: "GL_STACK_UNDERFLOW",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorName renders a GL error code symbolically for diagnostics.
func ErrorName(code uint32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "GL_UNKNOWN_ERROR"
}
