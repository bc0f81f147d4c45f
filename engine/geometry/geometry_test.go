package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxGeometryBounds(t *testing.T) {
	g := NewBoxGeometry(2, 4, 6)

	assert.Equal(t, GeometryTypeBox, g.Type())
	assert.Len(t, g.Positions(), 24)
	assert.Len(t, g.Normals(), 24)
	assert.Equal(t, 12, g.TriangleCount())

	min, max := g.BoundingBox()
	assert.Equal(t, [3]float32{-1, -2, -3}, min)
	assert.Equal(t, [3]float32{1, 2, 3}, max)
}

func TestSphereGeometryClampsSegments(t *testing.T) {
	g := NewSphereGeometry(1, 1, 1)

	// 3 width segments and 2 height segments after clamping.
	assert.Len(t, g.Positions(), 4*3)
	assert.Equal(t, 6, g.TriangleCount())

	min, max := g.BoundingBox()
	assert.InDelta(t, 1, max[1], 1e-6)
	assert.InDelta(t, -1, min[1], 1e-6)
}

func TestPlaneGeometry(t *testing.T) {
	g := NewPlaneGeometry(10, 4)
	min, max := g.BoundingBox()
	assert.Equal(t, [3]float32{-5, -2, 0}, min)
	assert.Equal(t, [3]float32{5, 2, 0}, max)
	assert.Equal(t, "PlaneGeometry", g.Type().String())
}

func TestBufferGeometry(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	t.Run("non-indexed", func(t *testing.T) {
		g, err := NewBufferGeometry(positions, nil)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 1, 2}, g.Indices())
		assert.Nil(t, g.Normals())
	})

	t.Run("options", func(t *testing.T) {
		normals := [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
		g, err := NewBufferGeometry(positions, []uint32{0, 1, 2}, WithNormals(normals), WithUVs([][2]float32{{0, 0}}))
		require.NoError(t, err)
		assert.Equal(t, normals, g.Normals())
		assert.Nil(t, g.UVs())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewBufferGeometry(positions, []uint32{0, 1, 3})
		assert.Error(t, err)
	})

	t.Run("partial triangle", func(t *testing.T) {
		_, err := NewBufferGeometry(positions, []uint32{0, 1})
		assert.Error(t, err)
	})
}
