package controls

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrUnknownProperty is returned when a property name is not in the table.
	ErrUnknownProperty = errors.New("unknown orbit controls property")

	// ErrInvalidValue is returned when a value cannot be converted to the property's type.
	ErrInvalidValue = errors.New("invalid orbit controls property value")
)

// property reads and writes one named setting of the controls.
type property struct {
	get     func(oc *orbitControlsImpl) any
	convert func(value any) (any, error)
	set     func(oc *orbitControlsImpl, value any)
}

// properties is the closed set of settings that can be written by name.
var properties = map[string]property{
	"autoRotate":      boolProperty(func(oc *orbitControlsImpl) *bool { return &oc.autoRotate }),
	"autoRotateSpeed": floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.autoRotateSpeed }),
	"enableDamping":   boolProperty(func(oc *orbitControlsImpl) *bool { return &oc.enableDamping }),
	"dampingFactor":   floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.dampingFactor }),
	"enablePan":       boolProperty(func(oc *orbitControlsImpl) *bool { return &oc.enablePan }),
	"enableRotate":    boolProperty(func(oc *orbitControlsImpl) *bool { return &oc.enableRotate }),
	"enableZoom":      boolProperty(func(oc *orbitControlsImpl) *bool { return &oc.enableZoom }),
	"minPolarAngle":   floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.minPolarAngle }),
	"maxPolarAngle":   floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.maxPolarAngle }),
	"minDistance":     floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.minDistance }),
	"maxDistance":     floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.maxDistance }),
	"minAzimuthAngle": floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.minAzimuthAngle }),
	"maxAzimuthAngle": floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.maxAzimuthAngle }),
	"rotateSpeed":     floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.rotateSpeed }),
	"panSpeed":        floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.panSpeed }),
	"zoomSpeed":       floatProperty(func(oc *orbitControlsImpl) *float32 { return &oc.zoomSpeed }),
}

// PropertyNames lists every settable property name in sorted order.
//
// Returns:
//   - []string: the property names
func PropertyNames() []string {
	return slices.Sorted(maps.Keys(properties))
}

func (oc *orbitControlsImpl) Get(key string) (any, bool) {
	p, ok := properties[key]
	if !ok {
		return nil, false
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return p.get(oc), true
}

func (oc *orbitControlsImpl) Set(key string, value any) error {
	_, err := oc.Apply(map[string]any{key: value})
	return err
}

func (oc *orbitControlsImpl) Apply(props map[string]any) ([]string, error) {
	keys := slices.Sorted(maps.Keys(props))
	converted := make([]any, len(keys))
	for i, key := range keys {
		p, ok := properties[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, key)
		}
		v, err := p.convert(props[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		converted[i] = v
	}

	oc.mu.Lock()
	defer oc.mu.Unlock()
	for i, key := range keys {
		properties[key].set(oc, converted[i])
	}
	return keys, nil
}

func boolProperty(field func(oc *orbitControlsImpl) *bool) property {
	return property{
		get: func(oc *orbitControlsImpl) any { return *field(oc) },
		convert: func(value any) (any, error) {
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: want bool, got %T", ErrInvalidValue, value)
			}
			return b, nil
		},
		set: func(oc *orbitControlsImpl, value any) { *field(oc) = value.(bool) },
	}
}

func floatProperty(field func(oc *orbitControlsImpl) *float32) property {
	return property{
		get:     func(oc *orbitControlsImpl) any { return *field(oc) },
		convert: toFloat32,
		set:     func(oc *orbitControlsImpl, value any) { *field(oc) = value.(float32) },
	}
}

// toFloat32 accepts any Go numeric type, which covers values decoded from YAML and JSON.
func toFloat32(value any) (any, error) {
	switch v := value.(type) {
	case float32:
		return v, nil
	case float64:
		return float32(v), nil
	case int:
		return float32(v), nil
	case int8:
		return float32(v), nil
	case int16:
		return float32(v), nil
	case int32:
		return float32(v), nil
	case int64:
		return float32(v), nil
	case uint:
		return float32(v), nil
	case uint8:
		return float32(v), nil
	case uint16:
		return float32(v), nil
	case uint32:
		return float32(v), nil
	case uint64:
		return float32(v), nil
	default:
		return nil, fmt.Errorf("%w: want number, got %T", ErrInvalidValue, value)
	}
}
