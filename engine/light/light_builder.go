package light

import (
	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/chewxy/math32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithName is an option builder that sets the node name of the light.
//
// Parameters:
//   - name: the light name
//
// Returns:
//   - LightBuilderOption: a function that applies the name option to a lightImpl
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetName(name)
	}
}

// WithPosition is an option builder that sets the local position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetPosition(x, y, z)
	}
}

// WithTarget is an option builder that sets the node a directional or spot light points at.
//
// Parameters:
//   - target: the target node
//
// Returns:
//   - LightBuilderOption: a function that applies the target option to a lightImpl
func WithTarget(target node.Node) LightBuilderOption {
	return func(l *lightImpl) {
		l.target = target
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithColorHex is an option builder that sets the color from a 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColorHex(hex uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = common.HexToRGB(hex)
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithRange is an option builder that sets the maximum attenuation distance for
// point and spot lights.
//
// Parameters:
//   - lightRange: the range value
//
// Returns:
//   - LightBuilderOption: a function that applies the range option to a lightImpl
func WithRange(lightRange float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightRange = lightRange
	}
}

// WithSpotCone is an option builder that sets the inner and outer cone half-angles
// for spot lights. Angles are specified in degrees and converted to cosines internally.
//
// Parameters:
//   - innerDeg: inner cone half-angle in degrees
//   - outerDeg: outer cone half-angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the spot cone option to a lightImpl
func WithSpotCone(innerDeg, outerDeg float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.innerCone = cosDeg(innerDeg)
		l.outerCone = cosDeg(outerDeg)
	}
}

// WithEnabled is an option builder that sets whether the light is active for rendering.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

// WithCastsShadows is an option builder that sets whether the light renders a shadow map.
//
// Parameters:
//   - castsShadows: true to enable shadow casting
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow casting option to a lightImpl
func WithCastsShadows(castsShadows bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.castsShadows = castsShadows
	}
}

// WithShadow is an option builder that replaces the shadow camera settings.
// Zero fields keep their defaults.
//
// Parameters:
//   - shadow: the shadow settings
//
// Returns:
//   - LightBuilderOption: a function that applies the shadow option to a lightImpl
func WithShadow(shadow Shadow) LightBuilderOption {
	return func(l *lightImpl) {
		l.shadow.Near = common.Coalesce(shadow.Near, l.shadow.Near)
		l.shadow.Far = common.Coalesce(shadow.Far, l.shadow.Far)
		l.shadow.Fov = common.Coalesce(shadow.Fov, l.shadow.Fov)
		l.shadow.MapSize = common.Coalesce(shadow.MapSize, l.shadow.MapSize)
		l.shadow.Bias = common.Coalesce(shadow.Bias, l.shadow.Bias)
	}
}

// cosDeg converts an angle in degrees to the cosine of that angle in radians.
func cosDeg(deg float32) float32 {
	return math32.Cos(common.DegToRad(deg))
}
