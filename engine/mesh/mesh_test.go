package mesh

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/stretchr/testify/assert"
)

func TestNewMesh(t *testing.T) {
	g := geometry.NewBoxGeometry(1, 1, 1)
	m := material.NewMaterial()

	mesh := NewMesh(g, m, WithName("crate"), WithPosition(1, 2, 3), WithShadows(true, false))

	assert.Equal(t, "crate", mesh.Name())
	assert.Equal(t, [3]float32{1, 2, 3}, mesh.Position())
	assert.Same(t, g, mesh.Geometry())
	assert.Same(t, m, mesh.Material())
	assert.True(t, mesh.CastShadow())
	assert.False(t, mesh.ReceiveShadow())
}

func TestMeshAsChild(t *testing.T) {
	root := node.NewGroup("root")
	mesh := NewMesh(geometry.NewPlaneGeometry(1, 1), material.NewMaterial(), WithName("floor"))
	root.Add(mesh)

	found, ok := root.Find("floor").(Mesh)
	assert.True(t, ok)
	assert.Same(t, mesh, found)
	assert.Equal(t, node.Node(root), mesh.Parent())
}

func TestSetMaterialIgnoresNil(t *testing.T) {
	m := material.NewMaterial()
	mesh := NewMesh(geometry.NewPlaneGeometry(1, 1), m)
	mesh.SetMaterial(nil)
	assert.Same(t, m, mesh.Material())

	other := material.NewMaterial(material.WithColorHex(0xff0000))
	mesh.SetMaterial(other)
	assert.Same(t, other, mesh.Material())
}
