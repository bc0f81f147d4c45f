package camera

type CameraBuilderOption func(*cameraImpl)

// WithName sets the camera's node name.
//
// Parameters:
//   - name: the node name
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's name
func WithName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetName(name)
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = [3]float32{x, y, z}
	}
}

// WithFov sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithBounds sets the orthographic view volume extents.
//
// Parameters:
//   - left, right, top, bottom: the extents
//
// Returns:
//   - CameraBuilderOption: functional option to set the bounds
func WithBounds(left, right, top, bottom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.left, c.right, c.top, c.bottom = left, right, top, bottom
	}
}

// WithPosition places the camera.
//
// Parameters:
//   - x, y, z: the camera position
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.SetPosition(x, y, z)
	}
}

// WithTarget sets the look-at point. Apply after WithPosition so the rotation matches.
//
// Parameters:
//   - x, y, z: the look-at point
//
// Returns:
//   - CameraBuilderOption: functional option to set the target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.LookAt(x, y, z)
	}
}
