package raycast

import (
	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/chewxy/math32"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NewAABB creates an AABB from two corners, ordering each axis so Min <= Max.
func NewAABB(a, b [3]float32) AABB {
	box := AABB{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) [3]float32 {
	return [3]float32{
		r.Origin[0] + r.Direction[0]*t,
		r.Origin[1] + r.Direction[1]*t,
		r.Origin[2] + r.Direction[2]*t,
	}
}

// Transform maps the ray through a column-major matrix. The direction is transformed as
// a vector and left unnormalized, so distances along the result are in the target space.
func (r Ray) Transform(m [16]float32) Ray {
	o := common.TransformPoint(m[:], r.Origin)
	d := common.MulVec4(m[:], [4]float32{r.Direction[0], r.Direction[1], r.Direction[2], 0})
	return Ray{Origin: o, Direction: [3]float32{d[0], d[1], d[2]}}
}

// Unproject converts normalized device coordinates to a world-space ray.
// Depth 0 is the near plane and depth 1 the far plane, as in WebGPU clip space.
//
// Parameters:
//   - ndcX, ndcY: pointer position in [-1, 1], +Y up
//   - invViewProj: inverse of the camera view-projection matrix
//
// Returns:
//   - Ray: ray starting on the near plane
func Unproject(ndcX, ndcY float32, invViewProj [16]float32) Ray {
	near := unprojectPoint(invViewProj, [4]float32{ndcX, ndcY, 0, 1})
	far := unprojectPoint(invViewProj, [4]float32{ndcX, ndcY, 1, 1})
	dir := common.Normalize3(far[0]-near[0], far[1]-near[1], far[2]-near[2])
	return Ray{Origin: near, Direction: dir}
}

func unprojectPoint(m [16]float32, p [4]float32) [3]float32 {
	v := common.MulVec4(m[:], p)
	if v[3] != 0 {
		v[0] /= v[3]
		v[1] /= v[3]
		v[2] /= v[3]
	}
	return [3]float32{v[0], v[1], v[2]}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = math32.Max(tmin, t1)
			tmax = math32.Min(tmax, t2)
		} else if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle tests the ray against triangle (a, b, c) using the Möller–Trumbore
// algorithm. Counter-clockwise triangles face the viewer; with cullBack set, rays hitting
// the back face miss.
//
// Returns the distance along the ray and whether the triangle was hit in front of the origin.
func (r Ray) IntersectTriangle(a, b, c [3]float32, cullBack bool) (t float32, hit bool) {
	const epsilon = 1e-7

	e1 := sub(b, a)
	e2 := sub(c, a)
	p := cross(r.Direction, e2)
	det := dot(e1, p)

	if cullBack {
		if det < epsilon {
			return 0, false
		}
	} else if math32.Abs(det) < epsilon {
		return 0, false
	}

	inv := 1 / det
	s := sub(r.Origin, a)
	u := dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := cross(s, e1)
	v := dot(r.Direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = dot(e2, q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
