package builder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"go.uber.org/zap"
)

// SetGeometry stages the geometry returned by fn for the next SetMesh.
//
// Parameters:
//   - fn: builds the geometry from the library
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetGeometry(fn func(lib engine.Library) geometry.Geometry) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}
	if fn == nil {
		return b.fail("SetGeometry", errNil("SetGeometry"))
	}

	g := fn(b.lib)
	if g == nil {
		return b.fail("SetGeometry", errNil("SetGeometry"))
	}
	b.geometry = g
	return b
}

// SetMaterial stages the material returned by fn for the next SetMesh.
//
// Parameters:
//   - fn: builds the material from the library
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetMaterial(fn func(lib engine.Library) material.Material) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}
	if fn == nil {
		return b.fail("SetMaterial", errNil("SetMaterial"))
	}

	m := fn(b.lib)
	if m == nil {
		return b.fail("SetMaterial", errNil("SetMaterial"))
	}
	b.material = m
	return b
}

// SetMesh combines the staged geometry and material into a mesh named name at
// (x, y, z) and clears both staging slots. With isGroup the mesh is buffered for the
// next AddMeshGroup, otherwise it is added to the scene.
//
// Parameters:
//   - name: the mesh name
//   - x, y, z: the mesh position
//   - isGroup: whether to buffer the mesh instead of attaching it
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetMesh(name string, x, y, z float32, isGroup bool) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetMesh") {
		return b
	}
	if b.geometry == nil {
		return b.fail("SetMesh", fmt.Errorf("%w: mesh %q", ErrMissingGeometry, name))
	}
	if b.material == nil {
		return b.fail("SetMesh", fmt.Errorf("%w: mesh %q", ErrMissingMaterial, name))
	}

	m := b.lib.Mesh(b.geometry, b.material, mesh.WithName(name), mesh.WithPosition(x, y, z))
	b.geometry = nil
	b.material = nil

	if isGroup {
		b.meshGroup = append(b.meshGroup, m)
	} else {
		b.scene.Add(m)
	}
	b.logger.Debug("mesh set", zap.String("name", name), zap.Bool("grouped", isGroup))
	return b
}

// AddMeshGroup wraps every buffered mesh in a group named name, adds the group to the
// scene and empties the buffer.
//
// Parameters:
//   - name: the group name
//
// Returns:
//   - *Builder: the builder
func (b *Builder) AddMeshGroup(name string) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("AddMeshGroup") {
		return b
	}
	if len(b.meshGroup) == 0 {
		return b.fail("AddMeshGroup", fmt.Errorf("%w: group %q", ErrEmptyMeshGroup, name))
	}

	group := b.lib.Group(name)
	for _, m := range b.meshGroup {
		group.Add(m)
	}
	b.scene.Add(group)
	b.logger.Debug("mesh group added", zap.String("name", name), zap.Int("members", len(b.meshGroup)))
	b.meshGroup = nil
	return b
}
