package builder

import (
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/Carmen-Shannon/oxy-build/engine/raycast"
)

// IntersectionHandler receives each frame's pick results, nearest first, together with
// the current selection, and returns the new selection.
type IntersectionHandler func(hits []raycast.Intersection, selected node.Node) node.Node

// SetRaycaster enables picking: every frame a ray is cast from the camera through the
// pointer into the whole scene and handler is called with the hits.
//
// Parameters:
//   - handler: the pick handler, or nil to disable picking
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetRaycaster(handler IntersectionHandler) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}

	if b.raycaster == nil {
		b.raycaster = b.lib.Raycaster()
	}
	b.onIntersect = handler
	return b
}

// OnPointerMove records the pointer position, given in pixels from the top-left of the
// container, as normalized device coordinates.
//
// Parameters:
//   - x, y: the pointer offset in logical pixels
func (b *Builder) OnPointerMove(x, y float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var width, height int
	switch {
	case b.container != nil:
		width, height = b.container.Size()
	case b.renderer != nil:
		width, height = b.renderer.Size()
	}
	b.pointer = raycast.PointerToNDC(x, y, width, height)
}

// Raycaster returns the raycaster, or nil before SetRaycaster.
func (b *Builder) Raycaster() raycast.Raycaster {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.raycaster
}

// Pointer returns the last pointer position in normalized device coordinates.
func (b *Builder) Pointer() [2]float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pointer
}

// Selection returns the node last returned by the intersection handler.
func (b *Builder) Selection() node.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}
