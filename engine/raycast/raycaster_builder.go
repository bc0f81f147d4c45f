package raycast

import "github.com/Carmen-Shannon/oxy-build/common"

// RaycasterBuilderOption is a function that configures a raycaster.
type RaycasterBuilderOption func(*raycaster)

// WithRange limits hits to distances within [near, far].
// Ranges with far < near are ignored.
//
// Parameters:
//   - near: the minimum distance
//   - far: the maximum distance
//
// Returns:
//   - RaycasterBuilderOption: the option
func WithRange(near, far float32) RaycasterBuilderOption {
	return func(r *raycaster) {
		if far < near {
			return
		}
		r.near = near
		r.far = far
	}
}

// WithRay sets the initial ray.
func WithRay(origin, direction [3]float32) RaycasterBuilderOption {
	return func(r *raycaster) {
		r.ray = Ray{Origin: origin, Direction: common.Normalize3(direction[0], direction[1], direction[2])}
	}
}
