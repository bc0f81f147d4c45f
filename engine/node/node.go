package node

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
)

// Node is a transformable element of the scene graph. Every renderable, camera,
// light and group in the engine embeds *Object to satisfy this interface.
//
// Children are owned by at most one parent at a time; adding a node that already
// has a parent detaches it from the previous one first.
type Node interface {
	// Name returns the node's name. Names are not required to be unique.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// SetName sets the node's name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Position returns the local translation relative to the parent.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// SetPosition sets the local translation relative to the parent.
	//
	// Parameters:
	//   - x, y, z: the translation components
	SetPosition(x, y, z float32)

	// Quaternion returns the local rotation as a quaternion (x, y, z, w).
	//
	// Returns:
	//   - [4]float32: the rotation quaternion
	Quaternion() [4]float32

	// SetQuaternion sets the local rotation from a quaternion (x, y, z, w).
	//
	// Parameters:
	//   - x, y, z, w: the quaternion components
	SetQuaternion(x, y, z, w float32)

	// Rotation returns the local rotation as XYZ Euler angles in radians.
	//
	// Returns:
	//   - [3]float32: rotation angles around x, y and z
	Rotation() [3]float32

	// SetRotation sets the local rotation from XYZ Euler angles in radians.
	//
	// Parameters:
	//   - x, y, z: rotation angles in radians
	SetRotation(x, y, z float32)

	// Scale returns the local scale.
	//
	// Returns:
	//   - [3]float32: scale as (x, y, z)
	Scale() [3]float32

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - x, y, z: the scale factors
	SetScale(x, y, z float32)

	// Visible reports whether the node takes part in rendering and picking.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// SetVisible toggles the node's visibility.
	//
	// Parameters:
	//   - visible: the new visibility
	SetVisible(visible bool)

	// Parent returns the node this node is attached to, or nil.
	//
	// Returns:
	//   - Node: the parent node or nil
	Parent() Node

	// Children returns a snapshot of the node's direct children in insertion order.
	//
	// Returns:
	//   - []Node: the children
	Children() []Node

	// Add attaches the given nodes as children, detaching each from its previous parent.
	// Adding a node to itself is ignored.
	//
	// Parameters:
	//   - children: the nodes to attach
	Add(children ...Node)

	// Remove detaches a direct child.
	//
	// Parameters:
	//   - child: the node to detach
	//
	// Returns:
	//   - bool: true if the node was a child and has been detached
	Remove(child Node) bool

	// Child returns the first direct child with the given name.
	//
	// Parameters:
	//   - name: the name to look for
	//
	// Returns:
	//   - Node: the first matching child, or nil
	Child(name string) Node

	// Find searches the subtree depth-first (excluding this node) for the first node
	// with the given name.
	//
	// Parameters:
	//   - name: the name to look for
	//
	// Returns:
	//   - Node: the first matching descendant, or nil
	Find(name string) Node

	// Traverse visits this node and its descendants depth-first in pre-order.
	// Returning false from fn skips the visited node's subtree.
	//
	// Parameters:
	//   - fn: the visitor
	Traverse(fn func(n Node) bool)

	// LocalMatrix returns the column-major transform relative to the parent.
	//
	// Returns:
	//   - [16]float32: the local transform
	LocalMatrix() [16]float32

	// WorldMatrix returns the column-major transform relative to the graph root.
	//
	// Returns:
	//   - [16]float32: the world transform
	WorldMatrix() [16]float32

	// WorldPosition returns the translation of the world transform.
	//
	// Returns:
	//   - [3]float32: world-space position
	WorldPosition() [3]float32

	// setParent records the node's parent. Restricts implementations to types embedding *Object.
	setParent(parent Node)
}

// Object is the base implementation of Node. Concrete node types embed *Object and
// pass themselves to NewObject so that parent/child links refer to the outer type.
type Object struct {
	mu *sync.RWMutex

	self Node

	name       string
	position   [3]float32
	quaternion [4]float32
	scale      [3]float32
	visible    bool

	parent   Node
	children []Node
}

var _ Node = &Object{}

// NewObject creates the base node state for self, which must be the outer value
// embedding the returned *Object. Passing nil makes the Object its own self.
//
// Parameters:
//   - self: the outer node embedding the returned Object, or nil
//   - name: the node name
//
// Returns:
//   - *Object: the initialized base node
func NewObject(self Node, name string) *Object {
	o := &Object{
		mu:         &sync.RWMutex{},
		name:       name,
		quaternion: [4]float32{0, 0, 0, 1},
		scale:      [3]float32{1, 1, 1},
		visible:    true,
	}
	o.self = self
	if o.self == nil {
		o.self = o
	}
	return o
}

// Self returns the outer node this Object was created for.
//
// Returns:
//   - Node: the embedding node
func (o *Object) Self() Node {
	return o.self
}

func (o *Object) Name() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.name
}

func (o *Object) SetName(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.name = name
}

func (o *Object) Position() [3]float32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.position
}

func (o *Object) SetPosition(x, y, z float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.position = [3]float32{x, y, z}
}

func (o *Object) Quaternion() [4]float32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.quaternion
}

func (o *Object) SetQuaternion(x, y, z, w float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.quaternion = [4]float32{x, y, z, w}
}

func (o *Object) Rotation() [3]float32 {
	return common.QuatToEuler(o.Quaternion())
}

func (o *Object) SetRotation(x, y, z float32) {
	q := common.EulerToQuat(x, y, z)
	o.SetQuaternion(q[0], q[1], q[2], q[3])
}

func (o *Object) Scale() [3]float32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.scale
}

func (o *Object) SetScale(x, y, z float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scale = [3]float32{x, y, z}
}

func (o *Object) Visible() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.visible
}

func (o *Object) SetVisible(visible bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = visible
}

func (o *Object) Parent() Node {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.parent
}

func (o *Object) Children() []Node {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]Node, len(o.children))
	copy(out, o.children)
	return out
}

func (o *Object) Add(children ...Node) {
	for _, child := range children {
		if child == nil || child == o.self {
			continue
		}
		if prev := child.Parent(); prev != nil {
			prev.Remove(child)
		}
		o.mu.Lock()
		o.children = append(o.children, child)
		o.mu.Unlock()
		child.setParent(o.self)
	}
}

func (o *Object) Remove(child Node) bool {
	o.mu.Lock()
	idx := -1
	for i, c := range o.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		o.mu.Unlock()
		return false
	}
	o.children = append(o.children[:idx], o.children[idx+1:]...)
	o.mu.Unlock()

	child.setParent(nil)
	return true
}

func (o *Object) Child(name string) Node {
	for _, c := range o.Children() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func (o *Object) Find(name string) Node {
	var found Node
	for _, c := range o.Children() {
		c.Traverse(func(n Node) bool {
			if found != nil {
				return false
			}
			if n.Name() == name {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

func (o *Object) Traverse(fn func(n Node) bool) {
	if !fn(o.self) {
		return
	}
	for _, c := range o.Children() {
		c.Traverse(fn)
	}
}

func (o *Object) LocalMatrix() [16]float32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return common.ComposeMatrix(o.position, o.quaternion, o.scale)
}

func (o *Object) WorldMatrix() [16]float32 {
	local := o.LocalMatrix()
	parent := o.Parent()
	if parent == nil {
		return local
	}
	parentWorld := parent.WorldMatrix()
	var world [16]float32
	common.Mul4(world[:], parentWorld[:], local[:])
	return world
}

func (o *Object) WorldPosition() [3]float32 {
	m := o.WorldMatrix()
	return [3]float32{m[12], m[13], m[14]}
}

func (o *Object) setParent(parent Node) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.parent = parent
}
