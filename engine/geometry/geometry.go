package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// GeometryType identifies the shape a Geometry was generated from.
type GeometryType int

const (
	// GeometryTypeBuffer is an arbitrary triangle list supplied by the caller or a model file.
	GeometryTypeBuffer GeometryType = iota

	// GeometryTypeBox is an axis-aligned box centered on the origin.
	GeometryTypeBox

	// GeometryTypeSphere is a UV sphere centered on the origin.
	GeometryTypeSphere

	// GeometryTypePlane is a rectangle in the XY plane facing +Z.
	GeometryTypePlane
)

func (t GeometryType) String() string {
	switch t {
	case GeometryTypeBuffer:
		return "BufferGeometry"
	case GeometryTypeBox:
		return "BoxGeometry"
	case GeometryTypeSphere:
		return "SphereGeometry"
	case GeometryTypePlane:
		return "PlaneGeometry"
	default:
		return "UnknownGeometry"
	}
}

// geometryImpl is the implementation of the Geometry interface.
type geometryImpl struct {
	geometryType GeometryType

	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32
	indices   []uint32

	boundingMin [3]float32
	boundingMax [3]float32
}

// Geometry is an indexed triangle list with an axis-aligned bounding box.
// Geometry is immutable once created and may be shared between meshes.
type Geometry interface {
	// Type returns the shape the geometry was generated from.
	//
	// Returns:
	//   - GeometryType: the geometry type
	Type() GeometryType

	// Positions returns the vertex positions in local space.
	//
	// Returns:
	//   - [][3]float32: the vertex positions
	Positions() [][3]float32

	// Normals returns per-vertex normals, or nil when the source supplied none.
	//
	// Returns:
	//   - [][3]float32: the vertex normals
	Normals() [][3]float32

	// UVs returns per-vertex texture coordinates, or nil when the source supplied none.
	//
	// Returns:
	//   - [][2]float32: the texture coordinates
	UVs() [][2]float32

	// Indices returns the triangle list indices. Every three indices form one triangle.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// TriangleCount returns the number of triangles in the index list.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// BoundingBox returns the minimum and maximum corners of the local-space bounds.
	//
	// Returns:
	//   - min: the minimum corner
	//   - max: the maximum corner
	BoundingBox() (min, max [3]float32)
}

var _ Geometry = &geometryImpl{}

// NewBufferGeometry creates a geometry from raw positions and triangle indices.
// When indices is nil the positions are treated as a non-indexed triangle list.
//
// Parameters:
//   - positions: vertex positions in local space
//   - indices: triangle indices into positions, or nil
//   - options: functional options for normals and texture coordinates
//
// Returns:
//   - Geometry: the new geometry
//   - error: error if an index is out of range or the index count is not a multiple of three
func NewBufferGeometry(positions [][3]float32, indices []uint32, options ...GeometryBuilderOption) (Geometry, error) {
	if indices == nil {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("index %d at position %d out of range for %d vertices", idx, i, len(positions))
		}
	}

	g := newGeometry(GeometryTypeBuffer, positions, indices)
	for _, option := range options {
		option(g)
	}
	return g, nil
}

// NewBoxGeometry creates a box centered on the origin.
//
// Parameters:
//   - width: extent along x
//   - height: extent along y
//   - depth: extent along z
//
// Returns:
//   - Geometry: the box geometry
func NewBoxGeometry(width, height, depth float32) Geometry {
	hx, hy, hz := width/2, height/2, depth/2

	// Each face: normal, then four corners counter-clockwise seen from outside.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}

	positions := make([][3]float32, 0, 24)
	normals := make([][3]float32, 0, 24)
	uvs := make([][2]float32, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(positions))
		positions = append(positions, f.corners[:]...)
		normals = append(normals, f.normal, f.normal, f.normal, f.normal)
		uvs = append(uvs, [2]float32{0, 1}, [2]float32{1, 1}, [2]float32{1, 0}, [2]float32{0, 0})
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	g := newGeometry(GeometryTypeBox, positions, indices)
	g.normals = normals
	g.uvs = uvs
	return g
}

// NewSphereGeometry creates a UV sphere centered on the origin.
//
// Parameters:
//   - radius: the sphere radius
//   - widthSegments: number of horizontal segments (minimum 3)
//   - heightSegments: number of vertical segments (minimum 2)
//
// Returns:
//   - Geometry: the sphere geometry
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	var positions [][3]float32
	var normals [][3]float32
	var uvs [][2]float32
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		phi := v * math32.Pi
		for x := 0; x <= widthSegments; x++ {
			u := float32(x) / float32(widthSegments)
			theta := u * 2 * math32.Pi

			n := [3]float32{
				-math32.Cos(theta) * math32.Sin(phi),
				math32.Cos(phi),
				math32.Sin(theta) * math32.Sin(phi),
			}
			normals = append(normals, n)
			positions = append(positions, [3]float32{n[0] * radius, n[1] * radius, n[2] * radius})
			uvs = append(uvs, [2]float32{u, 1 - v})
		}
	}

	var indices []uint32
	row := uint32(widthSegments + 1)
	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			a := uint32(y)*row + uint32(x) + 1
			b := uint32(y)*row + uint32(x)
			c := uint32(y+1)*row + uint32(x)
			d := uint32(y+1)*row + uint32(x) + 1
			if y != 0 {
				indices = append(indices, a, b, d)
			}
			if y != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	g := newGeometry(GeometryTypeSphere, positions, indices)
	g.normals = normals
	g.uvs = uvs
	return g
}

// NewPlaneGeometry creates a rectangle in the XY plane facing +Z.
//
// Parameters:
//   - width: extent along x
//   - height: extent along y
//
// Returns:
//   - Geometry: the plane geometry
func NewPlaneGeometry(width, height float32) Geometry {
	hx, hy := width/2, height/2
	positions := [][3]float32{{-hx, -hy, 0}, {hx, -hy, 0}, {hx, hy, 0}, {-hx, hy, 0}}
	g := newGeometry(GeometryTypePlane, positions, []uint32{0, 1, 2, 0, 2, 3})
	g.normals = [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	g.uvs = [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	return g
}

// newGeometry stores the vertex data and computes the bounding box.
func newGeometry(geometryType GeometryType, positions [][3]float32, indices []uint32) *geometryImpl {
	g := &geometryImpl{
		geometryType: geometryType,
		positions:    positions,
		indices:      indices,
	}
	g.computeBounds()
	return g
}

// computeBounds recomputes the axis-aligned bounding box from the positions.
// An empty geometry has a zero-size box at the origin.
func (g *geometryImpl) computeBounds() {
	if len(g.positions) == 0 {
		g.boundingMin = [3]float32{}
		g.boundingMax = [3]float32{}
		return
	}
	g.boundingMin = g.positions[0]
	g.boundingMax = g.positions[0]
	for _, p := range g.positions[1:] {
		for i := 0; i < 3; i++ {
			g.boundingMin[i] = math32.Min(g.boundingMin[i], p[i])
			g.boundingMax[i] = math32.Max(g.boundingMax[i], p[i])
		}
	}
}

func (g *geometryImpl) Type() GeometryType {
	return g.geometryType
}

func (g *geometryImpl) Positions() [][3]float32 {
	return g.positions
}

func (g *geometryImpl) Normals() [][3]float32 {
	return g.normals
}

func (g *geometryImpl) UVs() [][2]float32 {
	return g.uvs
}

func (g *geometryImpl) Indices() []uint32 {
	return g.indices
}

func (g *geometryImpl) TriangleCount() int {
	return len(g.indices) / 3
}

func (g *geometryImpl) BoundingBox() (min, max [3]float32) {
	return g.boundingMin, g.boundingMax
}
