package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"go.uber.org/zap"
)

// Model is one instantiated glTF asset: a fresh node graph, its clips and a mixer bound
// to the graph root.
type Model struct {
	// Name is the root node's name.
	Name string

	// Root is a group holding the document's scene roots.
	Root node.Node

	// Clips holds one clip per glTF animation, in document order.
	Clips []*animation.Clip

	// Mixer is named after the model and bound to Root.
	Mixer *animation.Mixer
}

// Clip returns the first clip with the given name, or nil.
func (m *Model) Clip(name string) *animation.Clip {
	for _, c := range m.Clips {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// instantiate builds new nodes, materials and clips from imported data.
func instantiate(imp *importedModel, name string, logger *zap.Logger) (*Model, error) {
	materials := make([]material.Material, len(imp.materials))
	for i, src := range imp.materials {
		materials[i] = material.NewMaterial(
			material.WithName(src.name),
			material.WithType(material.MaterialTypeStandard),
			material.WithColor(src.color),
			material.WithOpacity(src.opacity),
			material.WithTransparent(src.transparent || src.opacity < 1),
			material.WithDoubleSided(src.doubleSided),
			material.WithMetallic(src.metallic),
			material.WithRoughness(src.roughness),
			material.WithEmissive(src.emissive),
		)
	}

	b := &graphBuilder{imp: imp, materials: materials, visiting: make(map[int]bool)}
	root := node.NewGroup(name)
	for _, idx := range imp.roots {
		if idx < 0 || idx >= len(imp.nodes) {
			return nil, fmt.Errorf("scene root %d out of range", idx)
		}
		n, err := b.build(idx)
		if err != nil {
			return nil, err
		}
		root.Add(n)
	}

	model := &Model{
		Name:  name,
		Root:  root,
		Mixer: animation.NewMixer(root, animation.WithName(name), animation.WithLogger(logger)),
	}
	for _, src := range imp.clips {
		tracks := make([]*animation.KeyframeTrack, 0, len(src.tracks))
		for _, t := range src.tracks {
			var opts []animation.KeyframeTrackOption
			if t.discrete {
				opts = append(opts, animation.WithInterpolation(animation.InterpolationDiscrete))
			}
			track, err := animation.NewKeyframeTrack(t.trackType, t.name, t.times, t.values, opts...)
			if err != nil {
				logger.Warn("skipping invalid track", zap.String("clip", src.name), zap.Error(err))
				continue
			}
			tracks = append(tracks, track)
		}
		model.Clips = append(model.Clips, animation.NewClip(src.name, src.duration, tracks))
	}
	return model, nil
}

type graphBuilder struct {
	imp       *importedModel
	materials []material.Material
	visiting  map[int]bool
}

// build creates the node for imp.nodes[idx] and its subtree. A node with one primitive
// becomes a mesh; several primitives become a group of meshes named <node>_<i>.
func (b *graphBuilder) build(idx int) (node.Node, error) {
	if b.visiting[idx] {
		return nil, fmt.Errorf("node %d is part of a cycle", idx)
	}
	b.visiting[idx] = true
	defer delete(b.visiting, idx)

	src := &b.imp.nodes[idx]
	var n node.Node
	switch len(src.primitives) {
	case 0:
		n = node.NewGroup(src.name)
	case 1:
		m, err := b.mesh(src.name, &src.primitives[0])
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", src.name, err)
		}
		n = m
	default:
		g := node.NewGroup(src.name)
		for i := range src.primitives {
			m, err := b.mesh(fmt.Sprintf("%s_%d", src.name, i), &src.primitives[i])
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", src.name, err)
			}
			g.Add(m)
		}
		n = g
	}

	n.SetPosition(src.position[0], src.position[1], src.position[2])
	n.SetQuaternion(src.quaternion[0], src.quaternion[1], src.quaternion[2], src.quaternion[3])
	n.SetScale(src.scale[0], src.scale[1], src.scale[2])

	for _, c := range src.children {
		child, err := b.build(c)
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}
	return n, nil
}

func (b *graphBuilder) mesh(name string, p *importedPrimitive) (mesh.Mesh, error) {
	var opts []geometry.GeometryBuilderOption
	if len(p.normals) > 0 {
		opts = append(opts, geometry.WithNormals(p.normals))
	}
	if len(p.uvs) > 0 {
		opts = append(opts, geometry.WithUVs(p.uvs))
	}
	g, err := geometry.NewBufferGeometry(p.positions, p.indices, opts...)
	if err != nil {
		return nil, err
	}

	var mat material.Material
	if p.material >= 0 {
		mat = b.materials[p.material]
	} else {
		mat = material.NewMaterial(material.WithType(material.MaterialTypeStandard))
	}
	return mesh.NewMesh(g, mat, mesh.WithName(name)), nil
}
