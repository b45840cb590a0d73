package renderer

import (
	"fmt"

	"glquad/graphics"
)

// Stage identifies one shader stage of the program being built.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

func (s Stage) glKind() uint32 {
	if s == FragmentStage {
		return graphics.FragmentShader
	}
	return graphics.VertexShader
}

// ExtensionLoadError reports that the GL function loader failed, leaving the
// API unusable for the created context.
type ExtensionLoadError struct {
	Cause error
}

func (e *ExtensionLoadError) Error() string {
	return fmt.Sprintf("load gl functions: %v", e.Cause)
}

func (e *ExtensionLoadError) Unwrap() error {
	return e.Cause
}

// ShaderCompileError carries the failing stage and the compiler's diagnostic
// log; Log is empty when the driver reported a zero-length log.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the linker's diagnostic log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("link shader program: %s", e.Log)
}

// AttributeNotFoundError reports a vertex attribute the linked program does
// not declare.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("vertex attribute %q not found in linked program", e.Name)
}

// BufferUploadError reports a GL error raised while allocating or binding
// the vertex buffers.
type BufferUploadError struct {
	Code uint32
}

func (e *BufferUploadError) Error() string {
	return fmt.Sprintf("upload vertex buffers: %s", graphics.ErrorName(e.Code))
}
