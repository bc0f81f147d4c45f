package controls

// OrbitControlsOption is a functional option for configuring OrbitControls.
type OrbitControlsOption func(*orbitControlsImpl)

// WithTarget sets the orbit pivot.
//
// Parameters:
//   - x, y, z: the pivot in world space
//
// Returns:
//   - OrbitControlsOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.target = [3]float32{x, y, z}
	}
}

// WithDamping enables inertia with the given factor.
//
// Parameters:
//   - factor: fraction of the pending motion applied per update
//
// Returns:
//   - OrbitControlsOption: functional option to enable damping
func WithDamping(factor float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.enableDamping = true
		oc.dampingFactor = factor
	}
}

// WithAutoRotate enables rotation around the target while the user is idle.
// A speed of 2.0 completes one revolution in 30 seconds at 60 updates per second.
//
// Parameters:
//   - speed: the rotation speed
//
// Returns:
//   - OrbitControlsOption: functional option to enable auto-rotation
func WithAutoRotate(speed float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.autoRotate = true
		oc.autoRotateSpeed = speed
	}
}

// WithDistanceLimits bounds the distance between camera and target.
//
// Parameters:
//   - min: the minimum distance
//   - max: the maximum distance
//
// Returns:
//   - OrbitControlsOption: functional option to set distance limits
func WithDistanceLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minDistance = min
		oc.maxDistance = max
	}
}

// WithPolarLimits bounds the angle from the +Y axis, in radians.
//
// Parameters:
//   - min: the minimum polar angle
//   - max: the maximum polar angle
//
// Returns:
//   - OrbitControlsOption: functional option to set polar limits
func WithPolarLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minPolarAngle = min
		oc.maxPolarAngle = max
	}
}

// WithAzimuthLimits bounds the angle around the +Y axis, in radians. The bounds only take
// effect when both are finite.
//
// Parameters:
//   - min: the minimum azimuth angle
//   - max: the maximum azimuth angle
//
// Returns:
//   - OrbitControlsOption: functional option to set azimuth limits
func WithAzimuthLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControlsImpl) {
		oc.minAzimuthAngle = min
		oc.maxAzimuthAngle = max
	}
}
