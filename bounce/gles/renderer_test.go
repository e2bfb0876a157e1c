package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/mobile/gl"
)

func TestRendererSurfaceCreated(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)

	require.NoError(t, r.SurfaceCreated(nil))

	assert.Len(t, glctx.programs, 1)
	assert.Empty(t, glctx.shaders)

	// The unit circle mesh was uploaded once: 66 vertices, 2 float32 each.
	require.Len(t, glctx.buffers, 1)
	for _, data := range glctx.buffers {
		assert.Len(t, data, 66*2*4)
	}

	assert.Equal(t, [4]float32{0.1, 0.1, 0.1, 1}, glctx.clearColor)
}

func TestRendererDrawBeforeInitIsNoOp(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)

	r.DrawTick()

	assert.Zero(t, glctx.clearCount)
	assert.Empty(t, glctx.draws)
}

func TestRendererSurfaceChanged(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)
	require.NoError(t, r.SurfaceCreated(nil))

	r.SurfaceChanged(1920, 1080)
	assert.Equal(t, [4]int{0, 0, 1920, 1080}, glctx.viewport)
}

func TestRendererDrawTick(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)
	require.NoError(t, r.SurfaceCreated(nil))
	r.SurfaceChanged(1920, 1080)

	// Wind the ball back one step so the frame under test renders it dead
	// center, where the model translation must vanish.
	r.ball = Ball{X: 0.5 - 0.01, Y: 0.5 - 0.015, VX: 0.01, VY: 0.015, Radius: 0.1}

	r.DrawTick()

	assert.Equal(t, 1, glctx.clearCount)

	require.Len(t, glctx.draws, 1)
	assert.Equal(t, gl.Enum(gl.TRIANGLE_FAN), glctx.draws[0].mode)
	assert.Equal(t, 0, glctx.draws[0].first)
	assert.Equal(t, 66, glctx.draws[0].count)

	// Solid orange.
	colorLoc := glctx.uniformNames["uColor"]
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, glctx.vec4s[colorLoc])

	// A circle centered at normalized (0.5, 0.5) maps to clip-space origin,
	// and its on-screen radius is aspect-independent.
	mvpLoc := glctx.uniformNames["uMVPMatrix"]
	mvp := glctx.matrices[mvpLoc]
	require.Len(t, mvp, 16)
	assert.InDelta(t, 0, mvp[12], 1e-5)
	assert.InDelta(t, 0, mvp[13], 1e-5)
	assert.InDelta(t, 0.1, mvp[0], 1e-5)
	assert.InDelta(t, 0.1, mvp[5], 1e-5)

	// The attribute is disabled again after the draw.
	posLoc := glctx.attribNames["aPosition"]
	assert.False(t, glctx.enabledAttribs[posLoc])
}

func TestRendererDrawTickPortraitAspect(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)
	require.NoError(t, r.SurfaceCreated(nil))
	r.SurfaceChanged(1080, 1920)

	r.ball = Ball{X: 0.5 - 0.01, Y: 0.5 - 0.015, VX: 0.01, VY: 0.015, Radius: 0.1}
	r.DrawTick()

	// Portrait surfaces scale the vertical half-extent instead; the circle
	// still reaches the screen at the same clip-space radius.
	mvp := glctx.matrices[glctx.uniformNames["uMVPMatrix"]]
	require.Len(t, mvp, 16)
	assert.InDelta(t, 0, mvp[12], 1e-5)
	assert.InDelta(t, 0, mvp[13], 1e-5)
}

func TestRendererInitFailureLeavesNothingResident(t *testing.T) {
	glctx := newFakeContext()
	glctx.linkShouldFail = true
	r := New(glctx)

	require.Error(t, r.SurfaceCreated(nil))

	assert.Empty(t, glctx.programs)
	assert.Empty(t, glctx.shaders)
	assert.Empty(t, glctx.buffers)

	// Draw after a failed init stays a no-op.
	r.DrawTick()
	assert.Empty(t, glctx.draws)
}

func TestRendererSurfaceDestroyedIdempotent(t *testing.T) {
	glctx := newFakeContext()
	r := New(glctx)
	require.NoError(t, r.SurfaceCreated(nil))

	r.SurfaceDestroyed()
	r.SurfaceDestroyed()

	assert.Equal(t, 1, glctx.deletedBuffers)
	assert.Equal(t, 1, glctx.deletedPrograms)
	assert.Empty(t, glctx.buffers)
	assert.Empty(t, glctx.programs)

	// Draw after teardown is a no-op.
	r.DrawTick()
	assert.Empty(t, glctx.draws)
}
