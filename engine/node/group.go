package node

// Group is a node without geometry of its own. Its transform applies to all of its children.
type Group struct {
	*Object
}

// NewGroup creates an empty named group.
//
// Parameters:
//   - name: the group name
//
// Returns:
//   - *Group: the new group
func NewGroup(name string) *Group {
	g := &Group{}
	g.Object = NewObject(g, name)
	return g
}

// AxesHelper marks the world axes with three line segments of the given length,
// colored red (x), green (y) and blue (z).
type AxesHelper struct {
	*Object

	size float32
}

// NewAxesHelper creates an axes helper whose segments extend size units from the origin.
//
// Parameters:
//   - size: the length of each axis segment
//
// Returns:
//   - *AxesHelper: the new helper
func NewAxesHelper(size float32) *AxesHelper {
	a := &AxesHelper{size: size}
	a.Object = NewObject(a, "axesHelper")
	return a
}

// Size returns the length of each axis segment.
func (a *AxesHelper) Size() float32 {
	return a.size
}

// Segments returns the start and end points of the x, y and z segments in local space.
func (a *AxesHelper) Segments() [3][2][3]float32 {
	s := a.size
	return [3][2][3]float32{
		{{0, 0, 0}, {s, 0, 0}},
		{{0, 0, 0}, {0, s, 0}},
		{{0, 0, 0}, {0, 0, s}},
	}
}
