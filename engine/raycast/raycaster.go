package raycast

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/chewxy/math32"
)

// Intersection is a single ray hit against a mesh triangle.
type Intersection struct {
	// Distance from the ray origin to Point in world units.
	Distance float32

	// Point is the world-space hit position.
	Point [3]float32

	// FaceIndex is the index of the triangle that was hit.
	FaceIndex int

	// Object is the mesh that was hit.
	Object mesh.Mesh
}

// raycaster is the implementation of the Raycaster interface.
type raycaster struct {
	mu *sync.RWMutex

	ray  Ray
	near float32
	far  float32
}

// Raycaster casts a world-space ray into the scene graph and reports mesh hits.
type Raycaster interface {
	// Ray returns the current world-space ray.
	//
	// Returns:
	//   - Ray: the ray
	Ray() Ray

	// Set replaces the ray. The direction is normalized.
	//
	// Parameters:
	//   - origin: the ray origin
	//   - direction: the ray direction
	Set(origin, direction [3]float32)

	// SetFromCamera aims the ray from the camera through a pointer position in NDC.
	// Perspective rays start at the camera, orthographic rays on the near plane.
	//
	// Parameters:
	//   - ndc: pointer position with x and y in [-1, 1], +Y up
	//   - cam: the camera
	SetFromCamera(ndc [2]float32, cam camera.Camera)

	// Near returns the minimum hit distance.
	Near() float32

	// Far returns the maximum hit distance.
	Far() float32

	// IntersectObject tests the ray against n and, when recursive is set, its descendants.
	// Hidden nodes and their subtrees are skipped.
	//
	// Parameters:
	//   - n: the node to test
	//   - recursive: whether to descend into children
	//
	// Returns:
	//   - []Intersection: hits sorted by ascending distance
	IntersectObject(n node.Node, recursive bool) []Intersection

	// IntersectObjects is IntersectObject over several roots, merged and sorted.
	//
	// Parameters:
	//   - nodes: the nodes to test
	//   - recursive: whether to descend into children
	//
	// Returns:
	//   - []Intersection: hits sorted by ascending distance
	IntersectObjects(nodes []node.Node, recursive bool) []Intersection
}

var _ Raycaster = &raycaster{}

// NewRaycaster creates a raycaster pointing down -Z from the origin.
//
// Parameters:
//   - options: functional options for the raycaster
//
// Returns:
//   - Raycaster: the raycaster
func NewRaycaster(options ...RaycasterBuilderOption) Raycaster {
	r := &raycaster{
		mu:   &sync.RWMutex{},
		ray:  Ray{Direction: [3]float32{0, 0, -1}},
		near: 0,
		far:  math32.Inf(1),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// PointerToNDC converts a pointer offset inside a viewport of the given size to
// normalized device coordinates with +Y up. A zero-sized viewport maps to the center.
func PointerToNDC(x, y float32, width, height int) [2]float32 {
	if width <= 0 || height <= 0 {
		return [2]float32{}
	}
	return [2]float32{
		x/float32(width)*2 - 1,
		-(y/float32(height))*2 + 1,
	}
}

func (r *raycaster) Ray() Ray {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ray
}

func (r *raycaster) Set(origin, direction [3]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ray = Ray{Origin: origin, Direction: common.Normalize3(direction[0], direction[1], direction[2])}
}

func (r *raycaster) SetFromCamera(ndc [2]float32, cam camera.Camera) {
	if cam == nil {
		return
	}
	inv := cam.InverseViewProjectionMatrix()
	ray := Unproject(ndc[0], ndc[1], inv)
	if cam.Type() == camera.CameraTypePerspective {
		origin := cam.WorldPosition()
		far := unprojectPoint(inv, [4]float32{ndc[0], ndc[1], 1, 1})
		d := sub(far, origin)
		ray = Ray{Origin: origin, Direction: common.Normalize3(d[0], d[1], d[2])}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ray = ray
}

func (r *raycaster) Near() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.near
}

func (r *raycaster) Far() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.far
}

func (r *raycaster) IntersectObject(n node.Node, recursive bool) []Intersection {
	return r.IntersectObjects([]node.Node{n}, recursive)
}

func (r *raycaster) IntersectObjects(nodes []node.Node, recursive bool) []Intersection {
	r.mu.RLock()
	ray, near, far := r.ray, r.near, r.far
	r.mu.RUnlock()

	var hits []Intersection
	for _, root := range nodes {
		if root == nil {
			continue
		}
		root.Traverse(func(n node.Node) bool {
			if !n.Visible() {
				return false
			}
			if m, ok := n.(mesh.Mesh); ok {
				hits = append(hits, intersectMesh(ray, m, near, far)...)
			}
			return recursive
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// intersectMesh tests the ray against the mesh in its local space, first against the
// geometry bounds and then against each triangle.
func intersectMesh(ray Ray, m mesh.Mesh, near, far float32) []Intersection {
	g := m.Geometry()
	if g == nil || g.TriangleCount() == 0 {
		return nil
	}

	world := m.WorldMatrix()
	var inv [16]float32
	if !common.Invert4(inv[:], world[:]) {
		return nil
	}
	local := ray.Transform(inv)

	lo, hi := g.BoundingBox()
	if _, ok := local.IntersectAABB(NewAABB(lo, hi)); !ok {
		return nil
	}

	cullBack := true
	if mat := m.Material(); mat != nil && mat.DoubleSided() {
		cullBack = false
	}

	positions := g.Positions()
	indices := g.Indices()
	var hits []Intersection
	for face := 0; face < len(indices)/3; face++ {
		a := positions[indices[face*3]]
		b := positions[indices[face*3+1]]
		c := positions[indices[face*3+2]]
		t, ok := local.IntersectTriangle(a, b, c, cullBack)
		if !ok {
			continue
		}
		point := common.TransformPoint(world[:], local.At(t))
		d := sub(point, ray.Origin)
		dist := common.Length3(d[0], d[1], d[2])
		if dist < near || dist > far {
			continue
		}
		hits = append(hits, Intersection{
			Distance:  dist,
			Point:     point,
			FaceIndex: face,
			Object:    m,
		})
	}
	return hits
}
