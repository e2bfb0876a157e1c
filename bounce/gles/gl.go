// Package gles renders the bouncing circle through an OpenGL ES 2.0
// pipeline: a compiled shader program, a GPU-resident triangle-fan mesh,
// and a per-frame model-view-projection rebuild.
//
// The package is driven by a host that owns the GL thread; all calls on a
// Renderer must happen on that thread, in lifecycle order.
package gles

import "golang.org/x/mobile/gl"

// Context is the subset of gl.Context the renderer needs. Narrowing the
// interface keeps the renderer testable with a recording fake; a real
// gl.Context satisfies it directly.
type Context interface {
	CreateShader(ty gl.Enum) gl.Shader
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	DeleteShader(s gl.Shader)

	CreateProgram() gl.Program
	AttachShader(p gl.Program, s gl.Shader)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	DeleteProgram(p gl.Program)
	UseProgram(p gl.Program)

	GetUniformLocation(p gl.Program, name string) gl.Uniform
	GetAttribLocation(p gl.Program, name string) gl.Attrib
	UniformMatrix4fv(dst gl.Uniform, src []float32)
	Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32)

	CreateBuffer() gl.Buffer
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)
	DeleteBuffer(v gl.Buffer)

	EnableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	DisableVertexAttribArray(a gl.Attrib)
	DrawArrays(mode gl.Enum, first, count int)

	ClearColor(red, green, blue, alpha float32)
	Clear(mask gl.Enum)
	Viewport(x, y, width, height int)
}

var _ Context = gl.Context(nil)
