package builder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
)

// SceneOptions configures SetScene.
type SceneOptions struct {
	// Background is the clear color as 0xRRGGBB. Zero means white.
	Background           uint32  `yaml:"background"`
	BackgroundBlurriness float32 `yaml:"background_blurriness"`
}

// RendererOptions configures SetWebGPURenderer.
type RendererOptions struct {
	// Antialias enables 4x multisampling.
	Antialias bool `yaml:"antialias"`

	// Alpha composites the surface with premultiplied alpha.
	Alpha bool `yaml:"alpha"`
}

// PerspectiveCameraOptions configures SetPerspectiveCamera.
type PerspectiveCameraOptions struct {
	Fov    float32 `yaml:"fov"`
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`

	// X, Y, Z is the camera position.
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`

	// TargetX, TargetY, TargetZ is the look-at point.
	TargetX float32 `yaml:"target_x"`
	TargetY float32 `yaml:"target_y"`
	TargetZ float32 `yaml:"target_z"`
}

// OrthographicCameraOptions configures SetOrthographicCamera.
type OrthographicCameraOptions struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`

	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`

	TargetX float32 `yaml:"target_x"`
	TargetY float32 `yaml:"target_y"`
	TargetZ float32 `yaml:"target_z"`
}

// SpotLightOptions configures SetSpotLight.
type SpotLightOptions struct {
	// Target names a direct child of the scene to aim at. Empty or unknown names leave
	// the light aimed at its default target.
	Target    string  `yaml:"target"`
	Color     uint32  `yaml:"color"`
	Intensity float32 `yaml:"intensity"`

	// Near, Far and Fov configure the shadow camera.
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	Fov  float32 `yaml:"fov"`

	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// OrbitControlsOptions maps orbit controls property names to values. Keys that are
// not controls properties are ignored.
type OrbitControlsOptions map[string]any

// KeyframeTrackOptions describes one keyframe track for GetKeyframeTrack.
type KeyframeTrackOptions struct {
	Type animation.TrackType `yaml:"type"`

	// Name is the binding path "<node>.<property>".
	Name   string    `yaml:"name"`
	Times  []float32 `yaml:"times"`
	Values any       `yaml:"values"`

	Discrete bool `yaml:"discrete"`
}

// DefaultSceneOptions returns a white background with no blur.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Background:           defaultBackground,
		BackgroundBlurriness: 0,
	}
}

// DefaultRendererOptions returns antialiasing on and alpha off.
func DefaultRendererOptions() RendererOptions {
	return RendererOptions{
		Antialias: true,
		Alpha:     false,
	}
}

// DefaultPerspectiveCameraOptions returns a 45 degree camera at (1, 1, 1).
func DefaultPerspectiveCameraOptions() PerspectiveCameraOptions {
	return PerspectiveCameraOptions{
		Fov:    45,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
		X:      1,
		Y:      1,
		Z:      1,
	}
}

// DefaultOrthographicCameraOptions returns a 120 unit wide view volume at (1, 1, 1).
func DefaultOrthographicCameraOptions() OrthographicCameraOptions {
	return OrthographicCameraOptions{
		Left:   -60,
		Right:  60,
		Top:    60,
		Bottom: -60,
		Near:   1,
		Far:    70,
		X:      1,
		Y:      1,
		Z:      1,
	}
}

// DefaultSpotLightOptions returns a white spot light with the shadow camera at near 500, far 100, fov 30.
func DefaultSpotLightOptions() SpotLightOptions {
	return SpotLightOptions{
		Color:     0xffffff,
		Intensity: 1,
		Near:      500,
		Far:       100,
		Fov:       30,
	}
}

// DefaultOrbitControlsOptions returns damped controls with every interaction enabled
// and no distance or angle limits.
func DefaultOrbitControlsOptions() OrbitControlsOptions {
	return OrbitControlsOptions{
		"autoRotate":      false,
		"autoRotateSpeed": float32(2),
		"enableDamping":   true,
		"enablePan":       true,
		"enableRotate":    true,
		"minPolarAngle":   float32(0),
		"maxPolarAngle":   float32(math32.Pi),
		"minDistance":     float32(0),
		"maxDistance":     math32.Inf(1),
		"minAzimuthAngle": math32.Inf(1),
		"maxAzimuthAngle": math32.Inf(1),
	}
}

// KeyframeTrackOption builds a track descriptor for property of nodeName.
//
// Parameters:
//   - trackType: the kind of value animated
//   - nodeName: the animated node
//   - property: the animated property, for example "position" or "material.color"
//   - times: key times in seconds
//   - values: flattened key values
//
// Returns:
//   - KeyframeTrackOptions: the descriptor
func KeyframeTrackOption(trackType animation.TrackType, nodeName, property string, times []float32, values any) KeyframeTrackOptions {
	return KeyframeTrackOptions{
		Type:   trackType,
		Name:   nodeName + "." + property,
		Times:  times,
		Values: values,
	}
}

// Merge overlays the non-zero fields of override onto defaults. Zero fields, including
// false booleans, keep the default; build the struct directly to clear a default.
//
// Parameters:
//   - defaults: the base options, usually from a Default*Options factory
//   - override: the caller's overrides
//
// Returns:
//   - T: the merged options
//   - error: an error if T cannot be copied
func Merge[T any](defaults, override T) (T, error) {
	out := defaults
	if err := copier.CopyWithOption(&out, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return defaults, fmt.Errorf("merge options: %w", err)
	}
	return out, nil
}

// MergeOrbitControls returns defaults with every key of override set on top.
func MergeOrbitControls(defaults, override OrbitControlsOptions) OrbitControlsOptions {
	out := make(OrbitControlsOptions, len(defaults)+len(override))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
