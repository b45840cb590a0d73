// Package renderer builds and drives the demo draw call: one shader program,
// one vertex array, one buffer per vertex stream. Construction is a staged
// pipeline that either yields a fully initialized renderer or releases
// everything it acquired and returns a typed error for the failing stage.
package renderer

import (
	"fmt"
	"log/slog"
	"strings"

	"glquad/graphics"
	"glquad/platform"
	"glquad/shader"
)

// Config carries the renderer's collaborators.
type Config struct {
	API     graphics.API
	Shaders shader.Provider
	Mesh    Mesh
	Logger  *slog.Logger
}

// Renderer owns a graphics context, a linked shader program and the GPU
// buffers for one mesh. Zero value is not usable; construct with New.
type Renderer struct {
	ctx *graphics.Context
	api graphics.API
	log *slog.Logger

	program     uint32
	vao         uint32
	buffers     []uint32
	vertexCount int32
}

// New runs the initialization pipeline against the given window surface:
// context creation, function loading, shader compilation and linking,
// attribute resolution, buffer upload. The first failure aborts the
// remaining stages, releases every resource acquired in this attempt and is
// returned as a typed error.
func New(win platform.NativeWindow, cfg Config) (*Renderer, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Mesh.validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	ctx, err := graphics.NewContext(win, log)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		ctx:         ctx,
		api:         cfg.API,
		log:         log,
		vertexCount: int32(cfg.Mesh.VertexCount()),
	}
	ready := false
	defer func() {
		if !ready {
			r.Free()
		}
	}()

	if err := r.api.Init(); err != nil {
		log.Error("gl function loading failed", "error", err)
		return nil, &ExtensionLoadError{Cause: err}
	}
	if version := r.api.Version(); version == "" {
		log.Warn("gl version probe returned nothing")
	} else {
		log.Info("graphics context ready", "version", version, "vendor", r.api.Vendor())
	}

	if err := r.buildProgram(cfg.Shaders); err != nil {
		return nil, err
	}
	if err := r.uploadMesh(cfg.Mesh); err != nil {
		return nil, err
	}

	r.api.ClearColor(0.1, 0.1, 0.15, 1.0)
	log.Info("renderer ready", "vertices", r.vertexCount)
	ready = true
	return r, nil
}

// buildProgram compiles both stages in order, links, and resolves nothing
// beyond link status; shader objects are deleted once linking settles.
func (r *Renderer) buildProgram(provider shader.Provider) error {
	r.program = r.api.CreateProgram()

	stages := []struct {
		stage Stage
		name  string
	}{
		{VertexStage, shader.VertexName},
		{FragmentStage, shader.FragmentName},
	}
	var shaders []uint32
	defer func() {
		for _, s := range shaders {
			r.api.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		src, err := provider.ShaderSource(st.name)
		if err != nil {
			return fmt.Errorf("load %s shader source: %w", st.stage, err)
		}
		id, err := r.compileStage(st.stage, src)
		if err != nil {
			return err
		}
		shaders = append(shaders, id)
		r.api.AttachShader(r.program, id)
	}

	r.api.LinkProgram(r.program)
	if !r.api.LinkStatus(r.program) {
		linkLog := r.api.ProgramInfoLog(r.program)
		r.log.Error("program link failed", "log", linkLog)
		return &ProgramLinkError{Log: linkLog}
	}
	return nil
}

func (r *Renderer) compileStage(stage Stage, src string) (uint32, error) {
	id := r.api.CreateShader(stage.glKind())
	r.api.ShaderSource(id, normalizeNewlines(src))
	r.api.CompileShader(id)
	if !r.api.CompileStatus(id) {
		compileLog := r.api.ShaderInfoLog(id)
		r.log.Error("shader compilation failed", "stage", stage.String(), "log", compileLog)
		r.api.DeleteShader(id)
		return 0, &ShaderCompileError{Stage: stage, Log: compileLog}
	}
	return id, nil
}

// uploadMesh resolves the attribute locations by name, then binds one buffer
// per stream into a single vertex array with the attribute enabled.
func (r *Renderer) uploadMesh(mesh Mesh) error {
	streams := []struct {
		attrib string
		data   []float32
	}{
		{PositionAttrib, mesh.Positions},
		{ColorAttrib, mesh.Colors},
	}

	locations := make([]int32, len(streams))
	for i, s := range streams {
		loc := r.api.AttribLocation(r.program, s.attrib)
		if loc < 0 {
			r.log.Error("vertex attribute not found", "name", s.attrib)
			return &AttributeNotFoundError{Name: s.attrib}
		}
		locations[i] = loc
	}

	r.vao = r.api.GenVertexArray()
	r.api.BindVertexArray(r.vao)
	for i, s := range streams {
		buf := r.api.GenBuffer()
		r.buffers = append(r.buffers, buf)
		r.api.BindArrayBuffer(buf)
		r.api.BufferData(s.data)
		r.api.VertexAttribPointer(uint32(locations[i]), floatsPerVertex)
		r.api.EnableVertexAttribArray(uint32(locations[i]))
	}
	r.api.BindArrayBuffer(0)
	r.api.BindVertexArray(0)

	if code := r.api.GetError(); code != 0 {
		r.log.Error("vertex buffer upload failed", "glerror", graphics.ErrorName(code))
		return &BufferUploadError{Code: code}
	}
	return nil
}

// Draw clears the surface and issues the draw call: bind program, bind
// vertex array, draw the fixed vertex count, unbind both. It cannot fail;
// the caller checks the GL error queue after the loop via DrainErrors.
func (r *Renderer) Draw() {
	r.api.Clear()
	r.api.UseProgram(r.program)
	r.api.BindVertexArray(r.vao)
	r.api.DrawTriangles(0, r.vertexCount)
	r.api.BindVertexArray(0)
	r.api.UseProgram(0)
}

// DrainErrors empties the GL error queue, returning the symbolic name of
// each pending error.
func (r *Renderer) DrainErrors() []string {
	var names []string
	for code := r.api.GetError(); code != 0; code = r.api.GetError() {
		names = append(names, graphics.ErrorName(code))
	}
	return names
}

// Free releases the GPU objects and the graphics context, children first.
// Safe to call on a partially constructed renderer.
func (r *Renderer) Free() {
	if r.vao != 0 {
		r.api.DeleteVertexArray(r.vao)
		r.vao = 0
	}
	for _, buf := range r.buffers {
		r.api.DeleteBuffer(buf)
	}
	r.buffers = nil
	if r.program != 0 {
		r.api.DeleteProgram(r.program)
		r.program = 0
	}
	if r.ctx != nil {
		r.ctx.Free()
		r.ctx = nil
	}
}

func normalizeNewlines(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.ReplaceAll(src, "\r", "\n")
}
