package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleVertices(t *testing.T) {
	verts := CircleVertices(64)

	// Center + 65 rim vertices, 2 floats each.
	require.Len(t, verts, (64+2)*2)

	// Fan center at the origin.
	assert.Zero(t, verts[0])
	assert.Zero(t, verts[1])

	// Every rim vertex sits on the unit circle.
	for i := 1; i < len(verts)/2; i++ {
		x, y := verts[i*2], verts[i*2+1]
		assert.InDelta(t, 1.0, x*x+y*y, 1e-5, "rim vertex %d", i)
	}

	// The last rim vertex closes the fan back at the first.
	n := len(verts)
	assert.InDelta(t, verts[2], verts[n-2], 1e-5)
	assert.InDelta(t, verts[3], verts[n-1], 1e-5)
}
