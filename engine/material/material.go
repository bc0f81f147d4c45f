package material

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
)

// MaterialType selects the shading model used for a material.
type MaterialType int

const (
	// MaterialTypeBasic is unlit, flat-colored shading.
	MaterialTypeBasic MaterialType = iota

	// MaterialTypeStandard is metallic-roughness physically based shading.
	MaterialTypeStandard
)

func (t MaterialType) String() string {
	switch t {
	case MaterialTypeBasic:
		return "MeshBasicMaterial"
	case MaterialTypeStandard:
		return "MeshStandardMaterial"
	default:
		return "UnknownMaterial"
	}
}

// material is the implementation of the Material interface.
type material struct {
	mu *sync.RWMutex

	name         string
	materialType MaterialType
	color        [3]float32
	emissive     [3]float32
	opacity      float32
	transparent  bool
	wireframe    bool
	doubleSided  bool
	metallic     float32
	roughness    float32
}

// Material defines the surface properties of a mesh.
//
// Color and opacity are mutable after construction so animation tracks can drive them.
// All accessors are safe for concurrent use.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Type retrieves the shading model.
	//
	// Returns:
	//   - MaterialType: the material type
	Type() MaterialType

	// Color retrieves the linear RGB base color.
	//
	// Returns:
	//   - [3]float32: the color in [0, 1]
	Color() [3]float32

	// SetColor sets the linear RGB base color.
	//
	// Parameters:
	//   - r, g, b: color components in [0, 1]
	SetColor(r, g, b float32)

	// ColorHex retrieves the base color as a 0xRRGGBB value.
	//
	// Returns:
	//   - uint32: the packed color
	ColorHex() uint32

	// Emissive retrieves the emitted RGB color. Only used by standard materials.
	//
	// Returns:
	//   - [3]float32: the emissive color
	Emissive() [3]float32

	// Opacity retrieves the opacity in [0, 1].
	//
	// Returns:
	//   - float32: the opacity
	Opacity() float32

	// SetOpacity sets the opacity. Values are clamped to [0, 1].
	//
	// Parameters:
	//   - opacity: the new opacity
	SetOpacity(opacity float32)

	// Transparent reports whether the material is blended instead of written opaque.
	//
	// Returns:
	//   - bool: true if the material is transparent
	Transparent() bool

	// Wireframe reports whether triangles are drawn as edges.
	//
	// Returns:
	//   - bool: true for wireframe rendering
	Wireframe() bool

	// DoubleSided reports whether back faces are drawn.
	//
	// Returns:
	//   - bool: true if back faces are drawn
	DoubleSided() bool

	// Metallic retrieves the metallic factor.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the roughness factor.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults to an opaque white basic material.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		mu:        &sync.RWMutex{},
		color:     [3]float32{1, 1, 1},
		opacity:   1.0,
		metallic:  0.0,
		roughness: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Type() MaterialType {
	return m.materialType
}

func (m *material) Color() [3]float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.color
}

func (m *material) SetColor(r, g, b float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.color = [3]float32{r, g, b}
}

func (m *material) ColorHex() uint32 {
	return common.RGBToHex(m.Color())
}

func (m *material) Emissive() [3]float32 {
	return m.emissive
}

func (m *material) Opacity() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.opacity
}

func (m *material) SetOpacity(opacity float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opacity = common.Clamp(opacity, 0, 1)
}

func (m *material) Transparent() bool {
	return m.transparent
}

func (m *material) Wireframe() bool {
	return m.wireframe
}

func (m *material) DoubleSided() bool {
	return m.doubleSided
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) Roughness() float32 {
	return m.roughness
}
