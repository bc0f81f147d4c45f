package controls

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedViewport struct {
	width, height int
}

func (v fixedViewport) Size() (int, int) {
	return v.width, v.height
}

func newTestCamera() camera.Camera {
	return camera.NewPerspectiveCamera(camera.WithPosition(0, 0, 10), camera.WithTarget(0, 0, 0))
}

func TestRotateWithoutDamping(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100})

	// 25px of a 100px viewport is a quarter turn.
	oc.Rotate(25, 0)
	require.True(t, oc.Update())

	pos := oc.Camera().Position()
	assert.InDelta(t, -10, pos[0], 1e-4)
	assert.InDelta(t, 0, pos[1], 1e-4)
	assert.InDelta(t, 0, pos[2], 1e-4)

	assert.False(t, oc.Update(), "no pending input should leave the camera in place")
}

func TestRotateWithDamping(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100}, WithDamping(0.5))

	oc.Rotate(25, 0)
	oc.Update()

	pos := oc.Camera().Position()
	assert.InDelta(t, 10*math32.Sin(-math32.Pi/4), pos[0], 1e-4)

	oc.Update()
	pos = oc.Camera().Position()
	assert.InDelta(t, 10*math32.Sin(-3*math32.Pi/8), pos[0], 1e-4)
}

func TestDolly(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), nil)
	oc.Dolly(1)
	oc.Update()
	assert.InDelta(t, 9.5, oc.Camera().Position()[2], 1e-4)

	oc.Dolly(-1)
	oc.Update()
	assert.InDelta(t, 10, oc.Camera().Position()[2], 1e-4)
}

func TestDistanceLimits(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), nil, WithDistanceLimits(5, 8))
	assert.InDelta(t, 8, oc.Camera().Position()[2], 1e-4)
}

func TestPolarLimits(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100}, WithPolarLimits(math32.Pi/4, math32.Pi/2))

	oc.Rotate(0, 50)
	oc.Update()
	assert.InDelta(t, 10*math32.Cos(math32.Pi/4), oc.Camera().Position()[1], 1e-4)
}

func TestAzimuthLimitsRequireBothFinite(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100}, WithAzimuthLimits(-0.5, 0.5))
		oc.Rotate(25, 0)
		oc.Update()
		assert.InDelta(t, 10*math32.Sin(-0.5), oc.Camera().Position()[0], 1e-4)
	})

	t.Run("one infinite", func(t *testing.T) {
		oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100}, WithAzimuthLimits(math32.Inf(1), 0.5))
		oc.Rotate(25, 0)
		oc.Update()
		assert.InDelta(t, -10, oc.Camera().Position()[0], 1e-4)
	})
}

func TestAutoRotate(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), nil, WithAutoRotate(2))
	before := oc.Camera().Position()

	require.True(t, oc.Update())
	after := oc.Camera().Position()
	assert.Less(t, after[0], before[0])

	oc.SetRotating(true)
	oc.Update()
	paused := oc.Camera().Position()
	for i := range after {
		assert.InDelta(t, after[i], paused[i], 1e-4)
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100})
	oc.SetEnabled(false)
	oc.Rotate(25, 0)
	assert.False(t, oc.Update())

	oc.SetEnabled(true)
	assert.False(t, oc.Update())
	assert.InDelta(t, 10, oc.Camera().Position()[2], 1e-4)
}

func TestPanMovesTarget(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), fixedViewport{100, 100})
	oc.Pan(10, 0)
	oc.Update()

	// Dragging right moves the scene right, so the target moves left.
	assert.Less(t, oc.Target()[0], float32(0))
	assert.InDelta(t, oc.Target()[0], oc.Camera().Position()[0], 1e-4)
}

func TestApplyProperties(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), nil)

	applied, err := oc.Apply(map[string]any{
		"autoRotate":  true,
		"maxDistance": 50,
		"rotateSpeed": 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"autoRotate", "maxDistance", "rotateSpeed"}, applied)

	v, ok := oc.Get("maxDistance")
	require.True(t, ok)
	assert.Equal(t, float32(50), v)

	v, _ = oc.Get("autoRotate")
	assert.Equal(t, true, v)
}

func TestApplyIsAllOrNothing(t *testing.T) {
	oc := NewOrbitControls(newTestCamera(), nil)

	_, err := oc.Apply(map[string]any{"autoRotate": true, "spin": 3})
	assert.ErrorIs(t, err, ErrUnknownProperty)
	v, _ := oc.Get("autoRotate")
	assert.Equal(t, false, v)

	err = oc.Set("enablePan", "yes")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, ok := oc.Get("spin")
	assert.False(t, ok)
}

func TestPropertyNames(t *testing.T) {
	names := PropertyNames()
	assert.Len(t, names, 16)
	assert.Contains(t, names, "minAzimuthAngle")
	assert.IsIncreasing(t, names)
}
