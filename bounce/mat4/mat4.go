// Package mat4 provides the minimal 4x4 float32 matrix operations used by
// the GL renderer: identity, orthographic projection, translation and
// composition. Matrices are flat arrays with translation in elements 12
// and 13, the layout consumed directly by UniformMatrix4fv.
package mat4

// Mat4 is a 4x4 float32 matrix stored as a flat array.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
	return m
}

// Ortho returns an orthographic projection mapping
// [left, right] x [bottom, top] onto [-1, 1] x [-1, 1].
func Ortho(left, right, bottom, top float32) Mat4 {
	var m Mat4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -1
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[15] = 1
	return m
}

// Translation returns a matrix translating by (tx, ty, 0).
func Translation(tx, ty float32) Mat4 {
	m := Identity()
	m[12] = tx
	m[13] = ty
	return m
}

// Mul returns the product a x b. The result is accumulated into a
// temporary, so either operand may alias a caller-held destination.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Apply transforms the point (x, y, 0, 1) by m and returns the transformed
// x and y, useful for verifying projections.
func Apply(m Mat4, x, y float32) (float32, float32) {
	ox := m[0]*x + m[4]*y + m[12]
	oy := m[1]*x + m[5]*y + m[13]
	return ox, oy
}
