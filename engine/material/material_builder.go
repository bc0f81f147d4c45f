package material

import "github.com/Carmen-Shannon/oxy-build/common"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithType is an option builder that sets the shading model of the material.
//
// Parameters:
//   - t: the material type
//
// Returns:
//   - MaterialBuilderOption: a function that applies the type option to a material
func WithType(t MaterialType) MaterialBuilderOption {
	return func(m *material) {
		m.materialType = t
	}
}

// WithColor is an option builder that sets the linear RGB base color.
//
// Parameters:
//   - color: the base color as RGB float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithColorHex is an option builder that sets the base color from a 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColorHex(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.color = common.HexToRGB(hex)
	}
}

// WithEmissive is an option builder that sets the emitted RGB color.
//
// Parameters:
//   - emissive: RGB components in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(emissive [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = emissive
	}
}

// WithEmissiveHex is an option builder that sets the emissive color from a 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissiveHex(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.emissive = common.HexToRGB(hex)
	}
}

// WithOpacity is an option builder that sets the opacity, clamped to [0, 1].
//
// Parameters:
//   - opacity: the opacity
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = common.Clamp(opacity, 0, 1)
	}
}

// WithTransparent is an option builder that enables alpha blending.
//
// Parameters:
//   - transparent: true to blend the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the transparency option to a material
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithWireframe is an option builder that draws triangle edges only.
//
// Parameters:
//   - wireframe: true for wireframe rendering
//
// Returns:
//   - MaterialBuilderOption: a function that applies the wireframe option to a material
func WithWireframe(wireframe bool) MaterialBuilderOption {
	return func(m *material) {
		m.wireframe = wireframe
	}
}

// WithDoubleSided is an option builder that draws back faces.
//
// Parameters:
//   - doubleSided: true to draw back faces
//
// Returns:
//   - MaterialBuilderOption: a function that applies the side option to a material
func WithDoubleSided(doubleSided bool) MaterialBuilderOption {
	return func(m *material) {
		m.doubleSided = doubleSided
	}
}

// WithMetallic is an option builder that sets the metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.roughness = roughness
	}
}
