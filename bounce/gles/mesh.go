package gles

import "github.com/chewxy/math32"

// segmentCount is the number of rim segments in the circle mesh. More
// segments make a smoother circle.
const segmentCount = 64

// fanVertexCount is the number of vertices in the triangle fan: the shared
// center plus segmentCount+1 rim vertices (the first rim vertex repeats to
// close the fan).
const fanVertexCount = segmentCount + 2

// CircleVertices builds a unit-radius triangle fan in the XY plane as a
// flat list of (x, y) pairs. The mesh is uploaded once and scaled per frame
// through the model matrix.
func CircleVertices(segments int) []float32 {
	verts := make([]float32, 0, (segments+2)*2)
	verts = append(verts, 0, 0)
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		verts = append(verts, math32.Cos(angle), math32.Sin(angle))
	}
	return verts
}
