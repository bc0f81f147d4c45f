package mesh

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
)

// meshImpl is the implementation of the Mesh interface.
type meshImpl struct {
	*node.Object

	mu       *sync.RWMutex
	geometry geometry.Geometry
	material material.Material

	castShadow    bool
	receiveShadow bool
}

// Mesh is a scene node that draws a geometry with a material.
// A geometry may be shared between meshes; the mesh never modifies it.
type Mesh interface {
	node.Node

	// Geometry retrieves the vertex data drawn by this mesh.
	//
	// Returns:
	//   - geometry.Geometry: the geometry
	Geometry() geometry.Geometry

	// Material retrieves the surface properties used to draw this mesh.
	//
	// Returns:
	//   - material.Material: the material
	Material() material.Material

	// SetMaterial replaces the mesh material. A nil material is ignored.
	//
	// Parameters:
	//   - m: the new material
	SetMaterial(m material.Material)

	// CastShadow reports whether the mesh is drawn into shadow maps.
	CastShadow() bool

	// ReceiveShadow reports whether the mesh is shaded by shadow maps.
	ReceiveShadow() bool
}

var _ Mesh = &meshImpl{}

// NewMesh creates a mesh node.
//
// Parameters:
//   - g: the geometry to draw
//   - m: the material to draw it with
//   - options: functional options for the mesh
//
// Returns:
//   - Mesh: the new mesh
func NewMesh(g geometry.Geometry, m material.Material, options ...MeshBuilderOption) Mesh {
	mi := &meshImpl{
		mu:       &sync.RWMutex{},
		geometry: g,
		material: m,
	}
	mi.Object = node.NewObject(mi, "")
	for _, option := range options {
		option(mi)
	}
	return mi
}

func (m *meshImpl) Geometry() geometry.Geometry {
	return m.geometry
}

func (m *meshImpl) Material() material.Material {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.material
}

func (m *meshImpl) SetMaterial(mat material.Material) {
	if mat == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.material = mat
}

func (m *meshImpl) CastShadow() bool {
	return m.castShadow
}

func (m *meshImpl) ReceiveShadow() bool {
	return m.receiveShadow
}
