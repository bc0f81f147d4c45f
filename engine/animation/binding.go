package animation

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
)

// materialHolder is satisfied by nodes that draw with a material, such as meshes.
type materialHolder interface {
	Material() material.Material
}

// binding writes sampled track values onto one node property.
type binding struct {
	track *KeyframeTrack
	apply func(value any)
}

// resolveNode finds the node named by a track: the root itself or its first descendant
// with that name.
func resolveNode(root node.Node, name string) node.Node {
	if root.Name() == name {
		return root
	}
	return root.Find(name)
}

// bind resolves a track's node and property under root.
func bind(root node.Node, track *KeyframeTrack) (*binding, error) {
	target := resolveNode(root, track.NodeName())
	if target == nil {
		return nil, fmt.Errorf("%w: %q under %q", ErrNodeNotFound, track.NodeName(), root.Name())
	}

	property := track.Property()
	wantSize := func(n int) error {
		if track.ValueSize() != n || track.Type().discrete() {
			return fmt.Errorf("%w: %s needs %d floats per key, track has %d %s values",
				ErrInvalidTrack, track.Name(), n, track.ValueSize(), track.Type())
		}
		return nil
	}

	b := &binding{track: track}
	switch property {
	case "position":
		if err := wantSize(3); err != nil {
			return nil, err
		}
		b.apply = func(v any) {
			f := v.([]float32)
			target.SetPosition(f[0], f[1], f[2])
		}
	case "scale":
		if err := wantSize(3); err != nil {
			return nil, err
		}
		b.apply = func(v any) {
			f := v.([]float32)
			target.SetScale(f[0], f[1], f[2])
		}
	case "rotation":
		if err := wantSize(3); err != nil {
			return nil, err
		}
		b.apply = func(v any) {
			f := v.([]float32)
			target.SetRotation(f[0], f[1], f[2])
		}
	case "quaternion":
		if err := wantSize(4); err != nil {
			return nil, err
		}
		b.apply = func(v any) {
			f := v.([]float32)
			q := common.Normalize4([4]float32(f))
			target.SetQuaternion(q[0], q[1], q[2], q[3])
		}
	case "visible":
		if track.Type() != TrackTypeBoolean {
			return nil, fmt.Errorf("%w: %s needs a boolean track, got %s", ErrInvalidTrack, track.Name(), track.Type())
		}
		b.apply = func(v any) {
			target.SetVisible(v.(bool))
		}
	case "material.color", "material.opacity":
		holder, ok := target.(materialHolder)
		if !ok || holder.Material() == nil {
			return nil, fmt.Errorf("%w: %q has no material", ErrUnknownProperty, track.NodeName())
		}
		if property == "material.color" {
			if err := wantSize(3); err != nil {
				return nil, err
			}
			b.apply = func(v any) {
				f := v.([]float32)
				holder.Material().SetColor(f[0], f[1], f[2])
			}
			break
		}
		if err := wantSize(1); err != nil {
			return nil, err
		}
		b.apply = func(v any) {
			holder.Material().SetOpacity(v.([]float32)[0])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	return b, nil
}
