package builder

import (
	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"go.uber.org/zap"
)

const (
	ambientLightName = "ambientLight"
	spotLightName    = "spotLight"
)

// SetLight adds the light returned by fn to the scene.
//
// Parameters:
//   - fn: builds the light from the library
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetLight(fn func(lib engine.Library) light.Light) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetLight") {
		return b
	}
	if fn == nil {
		return b.fail("SetLight", errNil("SetLight"))
	}

	l := fn(b.lib)
	if l == nil {
		return b.fail("SetLight", errNil("SetLight"))
	}
	b.scene.Add(l)
	return b
}

// SetAmbientLight adds an ambient light named "ambientLight" to the scene.
//
// Parameters:
//   - color: the light color as 0xRRGGBB
//   - intensity: the light intensity
//   - x, y, z: the light position
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetAmbientLight(color uint32, intensity, x, y, z float32) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetAmbientLight") {
		return b
	}

	b.scene.Add(b.lib.AmbientLight(
		light.WithName(ambientLightName),
		light.WithColorHex(color),
		light.WithIntensity(intensity),
		light.WithPosition(x, y, z),
	))
	return b
}

// SetSpotLight adds a shadow casting spot light named "spotLight" to the scene. When
// options.Target names a direct child of the scene the light aims at it; otherwise the
// target is left at its default.
//
// Parameters:
//   - options: color, intensity, shadow camera, position and target name
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetSpotLight(options SpotLightOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetSpotLight") {
		return b
	}

	lightOptions := []light.LightBuilderOption{
		light.WithName(spotLightName),
		light.WithColorHex(options.Color),
		light.WithIntensity(options.Intensity),
		light.WithPosition(options.X, options.Y, options.Z),
		light.WithCastsShadows(true),
		light.WithShadow(light.Shadow{Near: options.Near, Far: options.Far, Fov: options.Fov}),
	}
	if options.Target != "" {
		if target := b.scene.Child(options.Target); target != nil {
			lightOptions = append(lightOptions, light.WithTarget(target))
		} else {
			b.logger.Debug("spot light target not found", zap.String("target", options.Target))
		}
	}
	b.scene.Add(b.lib.SpotLight(lightOptions...))
	return b
}
