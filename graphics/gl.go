package graphics

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// OpenGL returns the API implementation backed by the go-gl bindings. All
// calls require a current context on the calling thread.
func OpenGL() API {
	return glAPI{}
}

type glAPI struct{}

func (glAPI) Init() error {
	return gl.Init()
}

func (glAPI) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (glAPI) Vendor() string {
	return gl.GoStr(gl.GetString(gl.VENDOR))
}

func (glAPI) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

func (glAPI) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (glAPI) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (glAPI) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (glAPI) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (glAPI) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (glAPI) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (glAPI) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (glAPI) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (glAPI) LinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (glAPI) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (glAPI) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (glAPI) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (glAPI) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (glAPI) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (glAPI) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (glAPI) BufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (glAPI) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (glAPI) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (glAPI) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (glAPI) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (glAPI) VertexAttribPointer(index uint32, size int32) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (glAPI) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (glAPI) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (glAPI) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (glAPI) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (glAPI) GetError() uint32 {
	return gl.GetError()
}
