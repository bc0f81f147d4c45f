package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/stretchr/testify/assert"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()
	assert.True(t, s.Active())
	assert.Equal(t, uint32(0xffffff), s.BackgroundHex())
	assert.Equal(t, float32(0), s.BackgroundBlurriness())
	assert.Equal(t, 0, s.Count())
}

func TestSceneOptions(t *testing.T) {
	s := NewScene(WithName("level"), WithBackground(0x102030), WithBackgroundBlurriness(2), WithActive(false))
	assert.Equal(t, "level", s.Name())
	assert.Equal(t, uint32(0x102030), s.BackgroundHex())
	assert.Equal(t, float32(1), s.BackgroundBlurriness())
	assert.False(t, s.Active())

	s.SetBackground(0xff0000)
	assert.Equal(t, [3]float32{1, 0, 0}, s.Background())
}

func TestMeshesSkipHiddenSubtrees(t *testing.T) {
	s := NewScene()
	g := geometry.NewBoxGeometry(1, 1, 1)
	visible := mesh.NewMesh(g, material.NewMaterial(), mesh.WithName("a"))
	hiddenGroup := node.NewGroup("hidden")
	hiddenGroup.SetVisible(false)
	hiddenGroup.Add(mesh.NewMesh(g, material.NewMaterial(), mesh.WithName("b")))

	s.Add(visible, hiddenGroup)

	meshes := s.Meshes()
	assert.Len(t, meshes, 1)
	assert.Equal(t, "a", meshes[0].Name())
	assert.Equal(t, 3, s.Count())
}

func TestLightsAndAmbient(t *testing.T) {
	s := NewScene()
	s.Add(
		light.NewLight(light.LightTypeAmbient, light.WithIntensity(0.5)),
		light.NewLight(light.LightTypeAmbient, light.WithColorHex(0xff0000)),
		light.NewLight(light.LightTypeAmbient, light.WithEnabled(false)),
		light.NewLight(light.LightTypeSpot),
	)

	assert.Len(t, s.Lights(), 3)
	assert.Equal(t, [3]float32{1.5, 0.5, 0.5}, s.AmbientColor())
}
