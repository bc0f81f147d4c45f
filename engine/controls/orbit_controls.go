package controls

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/chewxy/math32"
)

const eps = 1e-6

// Viewport reports the size in pixels of the surface the pointer moves over.
type Viewport interface {
	Size() (width, height int)
}

// spherical holds a radius and two angles around the Y axis.
// theta is the azimuth measured from +Z, phi the polar angle measured from +Y.
type spherical struct {
	radius float32
	theta  float32
	phi    float32
}

// orbitControlsImpl is the implementation of the OrbitControls interface.
type orbitControlsImpl struct {
	mu *sync.Mutex

	camera   camera.Camera
	viewport Viewport

	target [3]float32

	enabled         bool
	autoRotate      bool
	autoRotateSpeed float32
	enableDamping   bool
	dampingFactor   float32
	enablePan       bool
	enableRotate    bool
	enableZoom      bool
	minPolarAngle   float32
	maxPolarAngle   float32
	minDistance     float32
	maxDistance     float32
	minAzimuthAngle float32
	maxAzimuthAngle float32
	rotateSpeed     float32
	panSpeed        float32
	zoomSpeed       float32
	minZoom         float32
	maxZoom         float32

	// Pending input, consumed by Update.
	sphericalDelta spherical
	scale          float32
	panOffset      [3]float32
	rotating       bool

	lastPosition   [3]float32
	lastQuaternion [4]float32
}

// OrbitControls rotates, pans and dollies a camera around a target point.
//
// Input methods accumulate deltas; Update applies them to the camera once per frame.
// With damping enabled the deltas decay over several updates instead of being consumed at once.
type OrbitControls interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Target returns the orbit pivot in world space.
	//
	// Returns:
	//   - [3]float32: the pivot
	Target() [3]float32

	// SetTarget moves the orbit pivot.
	//
	// Parameters:
	//   - x, y, z: the new pivot
	SetTarget(x, y, z float32)

	// Enabled reports whether input and updates are processed.
	Enabled() bool

	// SetEnabled toggles input and update processing.
	//
	// Parameters:
	//   - enabled: the new state
	SetEnabled(enabled bool)

	// Rotate orbits the camera by a pointer movement in pixels.
	//
	// Parameters:
	//   - dx, dy: the pointer movement in pixels
	Rotate(dx, dy float32)

	// Pan translates the camera and target by a pointer movement in pixels.
	//
	// Parameters:
	//   - dx, dy: the pointer movement in pixels
	Pan(dx, dy float32)

	// Dolly moves the camera toward the target for positive delta and away for negative delta.
	//
	// Parameters:
	//   - delta: the scroll amount; only the sign is used
	Dolly(delta float32)

	// SetRotating marks whether a user drag is in progress. Auto-rotation pauses while dragging.
	//
	// Parameters:
	//   - rotating: true while the user drags
	SetRotating(rotating bool)

	// Update applies pending input, auto-rotation and constraints to the camera.
	//
	// Returns:
	//   - bool: true if the camera moved
	Update() bool

	// Get reads a property by name.
	//
	// Parameters:
	//   - key: the property name
	//
	// Returns:
	//   - any: the current value (bool or float32)
	//   - bool: false if the property does not exist
	Get(key string) (any, bool)

	// Set writes a single property by name.
	//
	// Parameters:
	//   - key: the property name
	//   - value: the new value
	//
	// Returns:
	//   - error: ErrUnknownProperty or ErrInvalidValue on failure
	Set(key string, value any) error

	// Apply validates every entry in props and, only if all are valid, writes them.
	//
	// Parameters:
	//   - props: property names mapped to values
	//
	// Returns:
	//   - []string: the applied keys in sorted order
	//   - error: the first validation failure, in which case nothing is applied
	Apply(props map[string]any) ([]string, error)
}

var _ OrbitControls = &orbitControlsImpl{}

// NewOrbitControls attaches orbit controls to a camera, pivoting around the camera's current target.
//
// Parameters:
//   - cam: the camera to control
//   - viewport: the surface the pointer moves over, used to scale pixel input; may be nil
//   - options: functional options to configure the controls
//
// Returns:
//   - OrbitControls: the newly created controls
func NewOrbitControls(cam camera.Camera, viewport Viewport, options ...OrbitControlsOption) OrbitControls {
	oc := &orbitControlsImpl{
		mu:       &sync.Mutex{},
		camera:   cam,
		viewport: viewport,
		target:   cam.Target(),

		enabled:         true,
		autoRotateSpeed: 2.0,
		dampingFactor:   0.05,
		enablePan:       true,
		enableRotate:    true,
		enableZoom:      true,
		minPolarAngle:   0,
		maxPolarAngle:   math32.Pi,
		minDistance:     0,
		maxDistance:     math32.Inf(1),
		minAzimuthAngle: math32.Inf(-1),
		maxAzimuthAngle: math32.Inf(1),
		rotateSpeed:     1.0,
		panSpeed:        1.0,
		zoomSpeed:       1.0,
		minZoom:         0,
		maxZoom:         math32.Inf(1),

		scale: 1,
	}
	for _, option := range options {
		option(oc)
	}
	oc.Update()
	return oc
}

func (oc *orbitControlsImpl) Camera() camera.Camera {
	return oc.camera
}

func (oc *orbitControlsImpl) Target() [3]float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControlsImpl) SetTarget(x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = [3]float32{x, y, z}
}

func (oc *orbitControlsImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enabled
}

func (oc *orbitControlsImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enabled = enabled
}

func (oc *orbitControlsImpl) SetRotating(rotating bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.rotating = rotating
}

func (oc *orbitControlsImpl) Rotate(dx, dy float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || !oc.enableRotate {
		return
	}
	_, h := oc.viewportSize()
	oc.rotateLeft(2 * math32.Pi * dx / h * oc.rotateSpeed)
	oc.rotateUp(2 * math32.Pi * dy / h * oc.rotateSpeed)
}

func (oc *orbitControlsImpl) Pan(dx, dy float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || !oc.enablePan {
		return
	}

	w, h := oc.viewportSize()
	m := oc.camera.WorldMatrix()
	right := [3]float32{m[0], m[1], m[2]}
	up := [3]float32{m[4], m[5], m[6]}

	var distX, distY float32
	switch oc.camera.Type() {
	case camera.CameraTypeOrthographic:
		left, r, top, bottom := oc.camera.Bounds()
		zoom := oc.camera.Zoom()
		distX = dx * (r - left) / zoom / w
		distY = dy * (top - bottom) / zoom / h
	default:
		pos := oc.camera.Position()
		offset := sub(pos, oc.target)
		targetDistance := common.Length3(offset[0], offset[1], offset[2])
		targetDistance *= math32.Tan(common.DegToRad(oc.camera.Fov()) / 2)
		distX = 2 * dx * targetDistance / h
		distY = 2 * dy * targetDistance / h
	}

	distX *= oc.panSpeed
	distY *= oc.panSpeed
	for i := 0; i < 3; i++ {
		oc.panOffset[i] += -right[i]*distX + up[i]*distY
	}
}

func (oc *orbitControlsImpl) Dolly(delta float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled || !oc.enableZoom || delta == 0 {
		return
	}

	zoomScale := math32.Pow(0.95, oc.zoomSpeed)
	if oc.camera.Type() == camera.CameraTypeOrthographic {
		zoom := oc.camera.Zoom()
		if delta > 0 {
			zoom /= zoomScale
		} else {
			zoom *= zoomScale
		}
		oc.camera.SetZoom(math32.Max(oc.minZoom, math32.Min(oc.maxZoom, zoom)))
		return
	}
	if delta > 0 {
		oc.scale *= zoomScale
	} else {
		oc.scale /= zoomScale
	}
}

func (oc *orbitControlsImpl) Update() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if !oc.enabled {
		return false
	}

	position := oc.camera.Position()
	offset := sub(position, oc.target)
	s := toSpherical(offset)

	if oc.autoRotate && !oc.rotating {
		oc.rotateLeft(2 * math32.Pi / 60 / 60 * oc.autoRotateSpeed)
	}

	if oc.enableDamping {
		s.theta += oc.sphericalDelta.theta * oc.dampingFactor
		s.phi += oc.sphericalDelta.phi * oc.dampingFactor
	} else {
		s.theta += oc.sphericalDelta.theta
		s.phi += oc.sphericalDelta.phi
	}

	s.theta = clampAzimuth(s.theta, oc.minAzimuthAngle, oc.maxAzimuthAngle)
	s.phi = common.Clamp(s.phi, oc.minPolarAngle, oc.maxPolarAngle)
	s.phi = common.Clamp(s.phi, eps, math32.Pi-eps)

	s.radius = common.Clamp(s.radius*oc.scale, oc.minDistance, oc.maxDistance)

	if oc.enableDamping {
		for i := 0; i < 3; i++ {
			oc.target[i] += oc.panOffset[i] * oc.dampingFactor
		}
	} else {
		for i := 0; i < 3; i++ {
			oc.target[i] += oc.panOffset[i]
		}
	}

	offset = fromSpherical(s)
	position = [3]float32{oc.target[0] + offset[0], oc.target[1] + offset[1], oc.target[2] + offset[2]}
	oc.camera.SetPosition(position[0], position[1], position[2])
	oc.camera.LookAt(oc.target[0], oc.target[1], oc.target[2])

	if oc.enableDamping {
		oc.sphericalDelta.theta *= 1 - oc.dampingFactor
		oc.sphericalDelta.phi *= 1 - oc.dampingFactor
		for i := 0; i < 3; i++ {
			oc.panOffset[i] *= 1 - oc.dampingFactor
		}
	} else {
		oc.sphericalDelta = spherical{}
		oc.panOffset = [3]float32{}
	}
	oc.scale = 1

	quat := oc.camera.Quaternion()
	moved := distanceSquared(oc.lastPosition, position) > eps ||
		8*(1-dot4(oc.lastQuaternion, quat)) > eps
	if moved {
		oc.lastPosition = position
		oc.lastQuaternion = quat
	}
	return moved
}

// rotateLeft and rotateUp accumulate angles; caller must hold the mutex.
func (oc *orbitControlsImpl) rotateLeft(angle float32) {
	oc.sphericalDelta.theta -= angle
}

func (oc *orbitControlsImpl) rotateUp(angle float32) {
	oc.sphericalDelta.phi -= angle
}

// viewportSize returns the viewport size, substituting 1 for unknown or zero dimensions.
func (oc *orbitControlsImpl) viewportSize() (float32, float32) {
	w, h := 1, 1
	if oc.viewport != nil {
		w, h = oc.viewport.Size()
	}
	return float32(max(w, 1)), float32(max(h, 1))
}

// clampAzimuth restricts theta to [min, max] when both limits are finite.
// Limits are normalized to (-π, π]; a range that wraps past π clamps to the nearer edge.
func clampAzimuth(theta, min, max float32) float32 {
	if math32.IsInf(min, 0) || math32.IsInf(max, 0) || math32.IsNaN(min) || math32.IsNaN(max) {
		return theta
	}
	twoPi := 2 * math32.Pi
	if min < -math32.Pi {
		min += twoPi
	} else if min > math32.Pi {
		min -= twoPi
	}
	if max < -math32.Pi {
		max += twoPi
	} else if max > math32.Pi {
		max -= twoPi
	}

	if min <= max {
		return math32.Max(min, math32.Min(max, theta))
	}
	if theta > (min+max)/2 {
		return math32.Max(min, theta)
	}
	return math32.Min(max, theta)
}

func toSpherical(v [3]float32) spherical {
	r := common.Length3(v[0], v[1], v[2])
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math32.Atan2(v[0], v[2]),
		phi:    math32.Acos(common.Clamp(v[1]/r, -1, 1)),
	}
}

func fromSpherical(s spherical) [3]float32 {
	sinPhi := math32.Sin(s.phi) * s.radius
	return [3]float32{
		sinPhi * math32.Sin(s.theta),
		math32.Cos(s.phi) * s.radius,
		sinPhi * math32.Cos(s.theta),
	}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func distanceSquared(a, b [3]float32) float32 {
	d := sub(a, b)
	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}

func dot4(a, b [4]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
