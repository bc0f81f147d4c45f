package scene

import "github.com/Carmen-Shannon/oxy-build/common"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the name of the scene root.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.SetName(name)
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithBackground sets the clear color from a 0xRRGGBB value.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackground(hex uint32) SceneBuilderOption {
	return func(s *scene) {
		s.background = common.HexToRGB(hex)
	}
}

// WithBackgroundBlurriness sets the background blur, clamped to [0, 1].
//
// Parameters:
//   - blurriness: the blur amount
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBackgroundBlurriness(blurriness float32) SceneBuilderOption {
	return func(s *scene) {
		s.backgroundBlurriness = common.Clamp(blurriness, 0, 1)
	}
}
