package light

// ShadowMapResolution is the default width and height in texels of the shadow
// depth texture.
const ShadowMapResolution = 2048

// DefaultShadowNear is the default near plane of the shadow camera.
const DefaultShadowNear float32 = 0.5

// DefaultShadowFar is the default far plane of the shadow camera.
const DefaultShadowFar float32 = 500.0

// DefaultShadowFov is the default vertical field of view in degrees of a spot light's
// perspective shadow camera.
const DefaultShadowFov float32 = 50.0

// DefaultShadowBias is the constant depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.001

// Shadow holds the projection used when rendering a light's shadow map.
// Fields are plain values; the light owns the struct and callers may mutate it directly
// before the next frame.
type Shadow struct {
	// Near is the near plane of the shadow camera.
	Near float32 `yaml:"near"`

	// Far is the far plane of the shadow camera.
	Far float32 `yaml:"far"`

	// Fov is the vertical field of view in degrees for perspective shadow cameras.
	Fov float32 `yaml:"fov"`

	// MapSize is the width and height of the depth texture in texels.
	MapSize int `yaml:"map_size"`

	// Bias is the constant depth bias.
	Bias float32 `yaml:"bias"`
}

// DefaultShadow returns shadow settings populated with the package defaults.
//
// Returns:
//   - *Shadow: the default shadow settings
func DefaultShadow() *Shadow {
	return &Shadow{
		Near:    DefaultShadowNear,
		Far:     DefaultShadowFar,
		Fov:     DefaultShadowFov,
		MapSize: ShadowMapResolution,
		Bias:    DefaultShadowBias,
	}
}
