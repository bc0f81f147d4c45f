package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveCameraView(t *testing.T) {
	c := NewPerspectiveCamera(WithFov(45), WithAspect(2), WithNear(0.1), WithFar(1000), WithPosition(0, 0, 10), WithTarget(0, 0, 0))

	assert.Equal(t, CameraTypePerspective, c.Type())
	assert.Equal(t, float32(45), c.Fov())
	assert.Equal(t, float32(2), c.Aspect())

	view := c.ViewMatrix()
	p := common.TransformPoint(view[:], [3]float32{0, 0, 0})
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -10, p[2], 1e-5)
}

func TestLookAtSetsRotation(t *testing.T) {
	c := NewPerspectiveCamera(WithPosition(10, 0, 0), WithTarget(0, 0, 0))

	// Looking down -X means the camera's local -Z axis maps onto world -X.
	m := c.WorldMatrix()
	forward := common.MulVec4(m[:], [4]float32{0, 0, -1, 0})
	assert.InDelta(t, -1, forward[0], 1e-5)
	assert.InDelta(t, 0, forward[1], 1e-5)
	assert.InDelta(t, 0, forward[2], 1e-5)
}

func TestInverseViewProjectionUnprojectsCenter(t *testing.T) {
	c := NewPerspectiveCamera(WithNear(1), WithFar(100), WithPosition(0, 5, 0), WithTarget(0, 5, -10))

	inv := c.InverseViewProjectionMatrix()
	near := common.MulVec4(inv[:], [4]float32{0, 0, 0, 1})
	far := common.MulVec4(inv[:], [4]float32{0, 0, 1, 1})

	assert.InDelta(t, 5, near[1]/near[3], 1e-4)
	assert.InDelta(t, -1, near[2]/near[3], 1e-4)
	assert.InDelta(t, -100, far[2]/far[3], 1e-2)
}

func TestOrthographicZoom(t *testing.T) {
	c := NewOrthographicCamera(WithBounds(-60, 60, 60, -60), WithNear(1), WithFar(70))
	assert.Equal(t, "OrthographicCamera", c.Type().String())

	proj := c.ProjectionMatrix()
	assert.InDelta(t, 2.0/120.0, proj[0], 1e-7)

	c.SetZoom(2)
	proj = c.ProjectionMatrix()
	assert.InDelta(t, 4.0/120.0, proj[0], 1e-7)

	c.SetZoom(0)
	assert.Equal(t, float32(2), c.Zoom())
}
