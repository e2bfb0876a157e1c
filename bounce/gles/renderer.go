package gles

import (
	"encoding/binary"
	"log/slog"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"github.com/valerio/go-bounce/bounce/mat4"
	"github.com/valerio/go-bounce/bounce/surface"
)

// Renderer draws the bouncing circle with one draw call per frame. The
// host's GL thread drives it: SurfaceCreated compiles the program and
// uploads the mesh, DrawTick produces one frame, SurfaceDestroyed releases
// the GPU objects.
type Renderer struct {
	glctx Context

	program   gl.Program
	mvpMatrix gl.Uniform
	color     gl.Uniform
	position  gl.Attrib
	vbo       gl.Buffer

	width  int
	height int
	ball   Ball
}

var _ surface.Renderer = (*Renderer)(nil)

// New creates a renderer bound to a GL context. The context must be current
// on the calling thread for every lifecycle call.
func New(glctx Context) *Renderer {
	return &Renderer{
		glctx: glctx,
		ball:  NewBall(),
	}
}

// SurfaceCreated compiles and links the shader program, caches the uniform
// and attribute locations, and uploads the circle mesh. On failure the
// renderer stays uninitialized and DrawTick is a no-op; no GPU objects are
// left behind.
func (r *Renderer) SurfaceCreated(w surface.Window) error {
	if w != nil {
		r.width, r.height = w.Size()
	}

	program, err := CreateProgram(r.glctx, vertexShaderSource, fragmentShaderSource)
	if err != nil {
		slog.Error("failed to create shader program", "error", err)
		return err
	}
	r.program = program
	r.mvpMatrix = r.glctx.GetUniformLocation(program, "uMVPMatrix")
	r.color = r.glctx.GetUniformLocation(program, "uColor")
	r.position = r.glctx.GetAttribLocation(program, "aPosition")

	verts := CircleVertices(segmentCount)
	r.vbo = r.glctx.CreateBuffer()
	r.glctx.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.glctx.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, verts...), gl.STATIC_DRAW)

	r.glctx.ClearColor(0.1, 0.1, 0.1, 1.0)

	slog.Info("GL renderer initialized", "segments", segmentCount)
	return nil
}

// SurfaceChanged records the surface dimensions and resets the viewport.
// The aspect-dependent projection is rebuilt on the next draw.
func (r *Renderer) SurfaceChanged(width, height int) {
	slog.Info("surface changed", "width", width, "height", height)
	r.width = width
	r.height = height
	r.glctx.Viewport(0, 0, width, height)
}

// DrawTick advances the animation by one step and renders one frame.
func (r *Renderer) DrawTick() {
	if !r.program.Init {
		return
	}

	r.glctx.Clear(gl.COLOR_BUFFER_BIT)
	r.ball.Step()

	aspect := float32(1)
	if r.width > 0 && r.height > 0 {
		aspect = float32(r.width) / float32(r.height)
	}

	// Scale the projection's half-extents by the aspect ratio so the unit
	// circle stays circular on non-square surfaces.
	var projection mat4.Mat4
	if aspect >= 1 {
		projection = mat4.Ortho(-aspect, aspect, -1, 1)
	} else {
		projection = mat4.Ortho(-1, 1, -1/aspect, 1/aspect)
	}

	// Map the normalized [0,1] position into the signed projection range.
	cx := (r.ball.X*2 - 1) * aspect
	cy := r.ball.Y*2 - 1
	model := mat4.Translation(cx, cy)
	model[0] = r.ball.Radius * aspect
	model[5] = r.ball.Radius

	mvp := mat4.Mul(projection, model)

	r.glctx.UseProgram(r.program)
	r.glctx.UniformMatrix4fv(r.mvpMatrix, mvp[:])
	r.glctx.Uniform4f(r.color, 1.0, 0.5, 0.0, 1.0)

	r.glctx.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.glctx.EnableVertexAttribArray(r.position)
	r.glctx.VertexAttribPointer(r.position, 2, gl.FLOAT, false, 0, 0)
	r.glctx.DrawArrays(gl.TRIANGLE_FAN, 0, fanVertexCount)
	r.glctx.DisableVertexAttribArray(r.position)
}

// SurfaceDestroyed releases the vertex buffer and the shader program. Both
// handles are zeroed so a repeated call releases nothing twice.
func (r *Renderer) SurfaceDestroyed() {
	if r.vbo.Value != 0 {
		r.glctx.DeleteBuffer(r.vbo)
		r.vbo = gl.Buffer{}
	}
	if r.program.Init {
		r.glctx.DeleteProgram(r.program)
		r.program = gl.Program{}
	}
	slog.Info("GL renderer destroyed")
}
