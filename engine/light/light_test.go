package light

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypeAmbient)

	assert.Equal(t, "AmbientLight", l.Name())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1), l.Intensity())
	assert.True(t, l.Enabled())
	assert.False(t, l.CastsShadows())
	assert.Equal(t, *DefaultShadow(), *l.Shadow())
}

func TestSpotLightDirectionFollowsTarget(t *testing.T) {
	target := node.NewGroup("box")
	target.SetPosition(10, 0, 0)

	l := NewLight(LightTypeSpot, WithName("spotLight"), WithPosition(0, 0, 0), WithTarget(target))
	d := l.Direction()
	assert.InDelta(t, 1, d[0], 1e-6)
	assert.InDelta(t, 0, d[1], 1e-6)

	target.SetPosition(0, 0, -5)
	d = l.Direction()
	assert.InDelta(t, -1, d[2], 1e-6)

	l.SetTarget(nil)
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
}

func TestDirectionDegenerateTarget(t *testing.T) {
	target := node.NewGroup("origin")
	l := NewLight(LightTypeDirectional, WithTarget(target))
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())
}

func TestWithShadowKeepsDefaults(t *testing.T) {
	l := NewLight(LightTypeSpot, WithCastsShadows(true), WithShadow(Shadow{Near: 500, Far: 100, Fov: 30}))

	s := l.Shadow()
	assert.Equal(t, float32(500), s.Near)
	assert.Equal(t, float32(100), s.Far)
	assert.Equal(t, float32(30), s.Fov)
	assert.Equal(t, ShadowMapResolution, s.MapSize)
	assert.Equal(t, DefaultShadowBias, s.Bias)
	assert.True(t, l.CastsShadows())
}

func TestSpotCone(t *testing.T) {
	l := NewLight(LightTypeSpot, WithSpotCone(0, 60))
	assert.InDelta(t, 1, l.InnerCone(), 1e-6)
	assert.InDelta(t, 0.5, l.OuterCone(), 1e-6)
}

func TestColorHex(t *testing.T) {
	l := NewLight(LightTypePoint, WithColorHex(0x00ff00), WithRange(25))
	assert.Equal(t, [3]float32{0, 1, 0}, l.Color())
	assert.Equal(t, float32(25), l.Range())
	assert.Equal(t, "PointLight", l.Type().String())
}
