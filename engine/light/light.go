package light

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeAmbient lights every surface equally, regardless of position or orientation.
	LightTypeAmbient LightType = iota

	// LightTypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon. Affects all fragments
	// uniformly with no distance attenuation.
	LightTypeDirectional

	// LightTypePoint represents a light that emits in all directions from a position.
	// Attenuates with distance up to a configurable range.
	LightTypePoint

	// LightTypeSpot represents a light that emits in a cone from a position toward a target.
	// Attenuates with both distance and angle from the cone axis, controlled by inner
	// and outer cone angles.
	LightTypeSpot
)

func (t LightType) String() string {
	switch t {
	case LightTypeAmbient:
		return "AmbientLight"
	case LightTypeDirectional:
		return "DirectionalLight"
	case LightTypePoint:
		return "PointLight"
	case LightTypeSpot:
		return "SpotLight"
	default:
		return "UnknownLight"
	}
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	*node.Object

	mu *sync.RWMutex

	lightType    LightType
	color        [3]float32
	intensity    float32
	lightRange   float32
	innerCone    float32 // stored as cos(angle in radians)
	outerCone    float32 // stored as cos(angle in radians)
	enabled      bool
	castsShadows bool

	target node.Node
	shadow *Shadow
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene nodes; their world position is the light position. Directional and
// spot lights point from their position toward a target node. All light types share this
// interface; type-specific properties return zero values when not applicable.
type Light interface {
	node.Node

	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type
	Type() LightType

	// Direction returns the normalized direction from the light toward its target.
	// Lights without a target point down -Y. Meaningless for ambient and point lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Target returns the node the light points at, or nil.
	//
	// Returns:
	//   - node.Node: the target node
	Target() node.Node

	// SetTarget sets the node the light points at.
	//
	// Parameters:
	//   - target: the target node, or nil to point down -Y
	SetTarget(target node.Node)

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// Range returns the maximum attenuation distance for point and spot lights.
	// Zero means no limit.
	//
	// Returns:
	//   - float32: the range value
	Range() float32

	// SetRange sets the maximum attenuation distance.
	//
	// Parameters:
	//   - lightRange: the range value
	SetRange(lightRange float32)

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// CastsShadows returns whether this light renders a shadow map.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// SetCastsShadows sets whether the light renders a shadow map.
	//
	// Parameters:
	//   - castsShadows: true to enable shadow casting
	SetCastsShadows(castsShadows bool)

	// Shadow returns the shadow camera settings. Never nil.
	//
	// Returns:
	//   - *Shadow: the shadow settings
	Shadow() *Shadow
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:           &sync.RWMutex{},
		lightType:    lightType,
		color:        [3]float32{1, 1, 1},
		intensity:    1.0,
		lightRange:   0,
		innerCone:    0.9063, // cos(25°)
		outerCone:    0.8192, // cos(35°)
		enabled:      true,
		castsShadows: false,
		shadow:       DefaultShadow(),
	}
	l.Object = node.NewObject(l, lightType.String())
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Direction() [3]float32 {
	target := l.Target()
	if target == nil {
		return [3]float32{0, -1, 0}
	}
	from := l.WorldPosition()
	to := target.WorldPosition()
	d := common.Normalize3(to[0]-from[0], to[1]-from[1], to[2]-from[2])
	if d == [3]float32{} {
		return [3]float32{0, -1, 0}
	}
	return d
}

func (l *lightImpl) Target() node.Node {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.target
}

func (l *lightImpl) SetTarget(target node.Node) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = target
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.color
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) Intensity() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intensity
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) Range() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lightRange
}

func (l *lightImpl) SetRange(lightRange float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lightRange = lightRange
}

func (l *lightImpl) InnerCone() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outerCone
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.innerCone = cosDeg(innerDeg)
	l.outerCone = cosDeg(outerDeg)
}

func (l *lightImpl) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) CastsShadows() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.castsShadows
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.castsShadows = castsShadows
}

func (l *lightImpl) Shadow() *Shadow {
	return l.shadow
}
