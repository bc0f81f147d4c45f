package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
)

// CameraType selects the projection used by a camera.
type CameraType int

const (
	// CameraTypePerspective projects with a vertical field of view.
	CameraTypePerspective CameraType = iota

	// CameraTypeOrthographic projects a box-shaped view volume without foreshortening.
	CameraTypeOrthographic
)

func (t CameraType) String() string {
	switch t {
	case CameraTypePerspective:
		return "PerspectiveCamera"
	case CameraTypeOrthographic:
		return "OrthographicCamera"
	default:
		return "UnknownCamera"
	}
}

type cameraImpl struct {
	*node.Object

	mu *sync.Mutex

	cameraType CameraType

	up     [3]float32
	target [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32
	zoom   float32

	left   float32
	right  float32
	top    float32
	bottom float32
}

// Camera defines the interface for a scene camera.
//
// The camera is a scene node; its world position is the eye. It always looks at
// Target. View and projection matrices are computed from the current state on request.
type Camera interface {
	node.Node

	// Type returns the projection type.
	//
	// Returns:
	//   - CameraType: perspective or orthographic
	Type() CameraType

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - [3]float32: the look-at point
	Target() [3]float32

	// LookAt points the camera at a world-space point and updates the node rotation to match.
	//
	// Parameters:
	//   - x, y, z: the look-at point
	LookAt(x, y, z float32)

	// Fov returns the vertical field of view in degrees. Perspective only.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// SetFov sets the vertical field of view in degrees.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Zoom returns the zoom factor. Orthographic bounds are divided by it; perspective
	// cameras narrow their field of view by it.
	//
	// Returns:
	//   - float32: the zoom factor
	Zoom() float32

	// SetZoom sets the zoom factor. Non-positive values are ignored.
	//
	// Parameters:
	//   - zoom: the zoom factor
	SetZoom(zoom float32)

	// Bounds returns the orthographic view volume extents.
	//
	// Returns:
	//   - left, right, top, bottom: the extents
	Bounds() (left, right, top, bottom float32)

	// SetBounds sets the orthographic view volume extents.
	//
	// Parameters:
	//   - left, right, top, bottom: the extents
	SetBounds(left, right, top, bottom float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// InverseViewProjectionMatrix returns the inverse of the view-projection matrix.
	// Used to unproject normalized device coordinates into world space.
	//
	// Returns:
	//   - [16]float32: the inverse view-projection matrix
	InverseViewProjectionMatrix() [16]float32
}

var _ Camera = &cameraImpl{}

// NewPerspectiveCamera creates a perspective camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) Camera {
	return newCamera(CameraTypePerspective, "PerspectiveCamera", options...)
}

// NewOrthographicCamera creates an orthographic camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) Camera {
	return newCamera(CameraTypeOrthographic, "OrthographicCamera", options...)
}

func newCamera(cameraType CameraType, name string, options ...CameraBuilderOption) *cameraImpl {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		cameraType: cameraType,
		up:         [3]float32{0, 1, 0},
		target:     [3]float32{0, 0, -1},
		fov:        50,
		aspect:     1,
		near:       0.1,
		far:        2000,
		zoom:       1,
		left:       -1,
		right:      1,
		top:        1,
		bottom:     -1,
	}
	c.Object = node.NewObject(c, name)
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Type() CameraType {
	return c.cameraType
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
}

func (c *cameraImpl) Target() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *cameraImpl) LookAt(x, y, z float32) {
	c.mu.Lock()
	c.target = [3]float32{x, y, z}
	c.mu.Unlock()

	// The node rotation is the inverse of the view rotation.
	view := c.ViewMatrix()
	var world [16]float32
	if !common.Invert4(world[:], view[:]) {
		return
	}
	_, q, _ := common.DecomposeMatrix(world)
	c.SetQuaternion(q[0], q[1], q[2], q[3])
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float32) {
	if zoom <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) Bounds() (left, right, top, bottom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) SetBounds(left, right, top, bottom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	eye := c.WorldPosition()

	c.mu.Lock()
	defer c.mu.Unlock()
	var view [16]float32
	common.LookAt(view[:],
		eye[0], eye[1], eye[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)
	return view
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var proj [16]float32
	switch c.cameraType {
	case CameraTypeOrthographic:
		// Zoom scales the bounds around their center.
		cx := (c.left + c.right) / 2
		cy := (c.top + c.bottom) / 2
		hw := (c.right - c.left) / (2 * c.zoom)
		hh := (c.top - c.bottom) / (2 * c.zoom)
		common.Orthographic(proj[:], cx-hw, cx+hw, cy+hh, cy-hh, c.near, c.far)
	default:
		fov := common.DegToRad(c.fov) / c.zoom
		common.Perspective(proj[:], fov, c.aspect, c.near, c.far)
	}
	return proj
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	var vp [16]float32
	common.Mul4(vp[:], proj[:], view[:])
	return vp
}

func (c *cameraImpl) InverseViewProjectionMatrix() [16]float32 {
	vp := c.ViewProjectionMatrix()
	var inv [16]float32
	if !common.Invert4(inv[:], vp[:]) {
		common.Identity(inv[:])
	}
	return inv
}
