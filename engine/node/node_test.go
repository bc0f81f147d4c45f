package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDetachesFromPreviousParent(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")

	a.Add(child)
	require.Equal(t, Node(a), child.Parent())

	b.Add(child)
	assert.Empty(t, a.Children())
	assert.Equal(t, []Node{child}, b.Children())
	assert.Equal(t, Node(b), child.Parent())
}

func TestAddSelfIgnored(t *testing.T) {
	g := NewGroup("g")
	g.Add(g, nil)
	assert.Empty(t, g.Children())
}

func TestRemove(t *testing.T) {
	g := NewGroup("g")
	c := NewGroup("c")
	assert.False(t, g.Remove(c))

	g.Add(c)
	assert.True(t, g.Remove(c))
	assert.Nil(t, c.Parent())
	assert.Empty(t, g.Children())
}

func TestChildFirstMatchImmediateOnly(t *testing.T) {
	root := NewGroup("root")
	first := NewGroup("box")
	second := NewGroup("box")
	nested := NewGroup("deep")
	root.Add(first, second)
	first.Add(nested)

	assert.Same(t, first, root.Child("box"))
	assert.Nil(t, root.Child("deep"))
	assert.Same(t, nested, root.Find("deep"))
	assert.Nil(t, root.Find("root"))
}

func TestTraverseSkipsSubtree(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	a.Add(NewGroup("a1"))
	root.Add(a, b)

	var visited []string
	root.Traverse(func(n Node) bool {
		visited = append(visited, n.Name())
		return n.Name() != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, visited)
}

func TestWorldMatrixComposesParents(t *testing.T) {
	parent := NewGroup("parent")
	parent.SetPosition(10, 0, 0)
	parent.SetScale(2, 2, 2)

	child := NewGroup("child")
	child.SetPosition(1, 2, 3)
	parent.Add(child)

	assert.Equal(t, [3]float32{12, 4, 6}, child.WorldPosition())
}

func TestRotationRoundTrip(t *testing.T) {
	g := NewGroup("g")
	g.SetRotation(0.1, 0.2, 0.3)
	r := g.Rotation()
	assert.InDelta(t, 0.1, r[0], 1e-5)
	assert.InDelta(t, 0.2, r[1], 1e-5)
	assert.InDelta(t, 0.3, r[2], 1e-5)
}

func TestAxesHelperSegments(t *testing.T) {
	h := NewAxesHelper(100)
	assert.Equal(t, "axesHelper", h.Name())
	seg := h.Segments()
	assert.Equal(t, [3]float32{100, 0, 0}, seg[0][1])
	assert.Equal(t, [3]float32{0, 0, 100}, seg[2][1])
}
