package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, MaterialTypeBasic, m.Type())
	assert.Equal(t, uint32(0xffffff), m.ColorHex())
	assert.Equal(t, float32(1), m.Opacity())
	assert.False(t, m.Transparent())
	assert.Equal(t, float32(1), m.Roughness())
}

func TestMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithName("hull"),
		WithType(MaterialTypeStandard),
		WithColorHex(0x336699),
		WithEmissiveHex(0x000010),
		WithOpacity(1.5),
		WithTransparent(true),
		WithWireframe(true),
		WithMetallic(0.8),
		WithRoughness(0.2),
	)

	assert.Equal(t, "hull", m.Name())
	assert.Equal(t, "MeshStandardMaterial", m.Type().String())
	assert.Equal(t, uint32(0x336699), m.ColorHex())
	assert.Equal(t, uint32(0x000010),
		uint32(m.Emissive()[2]*255+0.5))
	assert.Equal(t, float32(1), m.Opacity())
	assert.True(t, m.Transparent())
	assert.True(t, m.Wireframe())
	assert.Equal(t, float32(0.8), m.Metallic())
	assert.Equal(t, float32(0.2), m.Roughness())
}

func TestMaterialMutation(t *testing.T) {
	m := NewMaterial()
	m.SetColor(1, 0, 0)
	m.SetOpacity(-1)

	assert.Equal(t, [3]float32{1, 0, 0}, m.Color())
	assert.Equal(t, float32(0), m.Opacity())
}
