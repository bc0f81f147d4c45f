package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// MulVec4 multiplies a 4x4 column-major matrix by a 4-component column vector.
//
// Parameters:
//   - m: the matrix (16 elements)
//   - v: the vector
//
// Returns:
//   - [4]float32: m * v
func MulVec4(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}

// TransformPoint applies a 4x4 column-major matrix to a point, including the
// perspective divide when w is not 1.
//
// Parameters:
//   - m: the matrix (16 elements)
//   - p: the point
//
// Returns:
//   - [3]float32: the transformed point
func TransformPoint(m []float32, p [3]float32) [3]float32 {
	v := MulVec4(m, [4]float32{p[0], p[1], p[2], 1})
	if v[3] != 0 && v[3] != 1 {
		return [3]float32{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return [3]float32{v[0], v[1], v[2]}
}

// Perspective creates a perspective projection matrix.
// Maps depth into the WebGPU clip space range [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// Orthographic creates an orthographic projection matrix for the given view volume.
// Maps depth into the WebGPU clip space range [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal extents of the view volume
//   - top, bottom: vertical extents of the view volume
//   - near, far: depth extents of the view volume
func Orthographic(out []float32, left, right, top, bottom, near, far float32) {
	Identity(out)

	w := right - left
	h := top - bottom
	d := far - near
	if w == 0 || h == 0 || d == 0 {
		return
	}

	out[0] = 2 / w
	out[5] = 2 / h
	out[10] = -1 / d
	out[12] = -(right + left) / w
	out[13] = -(top + bottom) / h
	out[14] = -near / d
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method. If the matrix is singular the output is left
// unchanged and the function returns false.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}

	invDet := 1.0 / det

	var buf [16]float32
	buf[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	buf[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	buf[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	buf[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	buf[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	buf[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	buf[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	buf[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	buf[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	buf[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	buf[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	buf[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	buf[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	buf[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	buf[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	buf[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	copy(out, buf[:])
	return true
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	val := z0*z0 + z1*z1 + z2*z2
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / math32.Sqrt(val)
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = x0*x0 + x1*x1 + x2*x2
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / math32.Sqrt(val)
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// ComposeMatrix builds a column-major model matrix from a translation, a rotation
// quaternion stored as (x, y, z, w), and a scale. Equivalent to T * R * S.
//
// Parameters:
//   - position: the translation
//   - quat: the rotation quaternion (x, y, z, w)
//   - scale: the per-axis scale
//
// Returns:
//   - [16]float32: the composed matrix
func ComposeMatrix(position [3]float32, quat [4]float32, scale [3]float32) [16]float32 {
	q := mgl32.Quat{W: quat[3], V: mgl32.Vec3{quat[0], quat[1], quat[2]}}
	m := mgl32.Translate3D(position[0], position[1], position[2]).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	return [16]float32(m)
}

// DecomposeMatrix splits a column-major affine matrix into translation, rotation
// quaternion (x, y, z, w), and scale. Shear is discarded.
//
// Parameters:
//   - m: the matrix to decompose
//
// Returns:
//   - position: the translation
//   - quat: the rotation quaternion (x, y, z, w)
//   - scale: the per-axis scale
func DecomposeMatrix(m [16]float32) (position [3]float32, quat [4]float32, scale [3]float32) {
	position = [3]float32{m[12], m[13], m[14]}

	sx := Length3(m[0], m[1], m[2])
	sy := Length3(m[4], m[5], m[6])
	sz := Length3(m[8], m[9], m[10])

	// A negative determinant means one axis is mirrored.
	det := m[0]*(m[5]*m[10]-m[9]*m[6]) - m[4]*(m[1]*m[10]-m[9]*m[2]) + m[8]*(m[1]*m[6]-m[5]*m[2])
	if det < 0 {
		sx = -sx
	}
	scale = [3]float32{sx, sy, sz}

	rot := mgl32.Ident4()
	if sx != 0 && sy != 0 && sz != 0 {
		for i := 0; i < 3; i++ {
			rot[i] = m[i] / sx
			rot[4+i] = m[4+i] / sy
			rot[8+i] = m[8+i] / sz
		}
	}
	q := mgl32.Mat4ToQuat(rot).Normalize()
	quat = [4]float32{q.V[0], q.V[1], q.V[2], q.W}
	return position, quat, scale
}

// EulerToQuat converts XYZ-ordered Euler angles in radians into a quaternion (x, y, z, w).
//
// Parameters:
//   - x, y, z: rotation angles in radians around each axis
//
// Returns:
//   - [4]float32: the quaternion (x, y, z, w)
func EulerToQuat(x, y, z float32) [4]float32 {
	q := mgl32.AnglesToQuat(x, y, z, mgl32.XYZ)
	return [4]float32{q.V[0], q.V[1], q.V[2], q.W}
}

// QuatToEuler converts a quaternion (x, y, z, w) into XYZ-ordered Euler angles in radians.
//
// Parameters:
//   - q: the quaternion (x, y, z, w)
//
// Returns:
//   - [3]float32: the rotation angles around x, y and z
func QuatToEuler(q [4]float32) [3]float32 {
	m := mgl32.Quat{W: q[3], V: mgl32.Vec3{q[0], q[1], q[2]}}.Normalize().Mat4()
	m13 := Clamp(m[8], -1, 1)
	y := math32.Asin(m13)
	var x, z float32
	if math32.Abs(m13) < 0.9999999 {
		x = math32.Atan2(-m[9], m[10])
		z = math32.Atan2(-m[4], m[0])
	} else {
		x = math32.Atan2(m[6], m[5])
	}
	return [3]float32{x, y, z}
}

// SlerpQuat spherically interpolates between two quaternions stored as (x, y, z, w).
//
// Parameters:
//   - a: the start quaternion
//   - b: the end quaternion
//   - t: the interpolation factor in [0, 1]
//
// Returns:
//   - [4]float32: the interpolated quaternion
func SlerpQuat(a, b [4]float32, t float32) [4]float32 {
	qa := mgl32.Quat{W: a[3], V: mgl32.Vec3{a[0], a[1], a[2]}}
	qb := mgl32.Quat{W: b[3], V: mgl32.Vec3{b[0], b[1], b[2]}}
	q := mgl32.QuatSlerp(qa, qb, t)
	return [4]float32{q.V[0], q.V[1], q.V[2], q.W}
}

// Length3 returns the Euclidean length of a 3-component vector.
func Length3(x, y, z float32) float32 {
	return math32.Sqrt(x*x + y*y + z*z)
}

// Normalize3 normalizes a 3-component vector. Returns a zero vector if the input
// has zero length.
func Normalize3(x, y, z float32) [3]float32 {
	length := Length3(x, y, z)
	if length == 0 {
		return [3]float32{0, 0, 0}
	}
	inv := 1.0 / length
	return [3]float32{x * inv, y * inv, z * inv}
}

// Normalize4 scales a quaternion (x, y, z, w) to unit length. A zero quaternion
// becomes the identity rotation.
func Normalize4(q [4]float32) [4]float32 {
	length := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if length == 0 {
		return [4]float32{0, 0, 0, 1}
	}
	inv := 1.0 / length
	return [4]float32{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Clamp restricts v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
