package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert4RoundTrip(t *testing.T) {
	m := ComposeMatrix([3]float32{1, 2, 3}, EulerToQuat(0.3, -0.2, 0.1), [3]float32{2, 2, 2})

	var inv, product [16]float32
	require.True(t, Invert4(inv[:], m[:]))
	Mul4(product[:], m[:], inv[:])

	var ident [16]float32
	Identity(ident[:])
	for i := range ident {
		assert.InDelta(t, ident[i], product[i], 1e-5, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	out[0] = 42
	assert.False(t, Invert4(out[:], zero[:]))
	assert.Equal(t, float32(42), out[0])
}

func TestComposeDecompose(t *testing.T) {
	pos := [3]float32{-4, 5, 6}
	quat := EulerToQuat(0.5, 0.25, -0.75)
	scale := [3]float32{1, 3, 0.5}

	p, q, s := DecomposeMatrix(ComposeMatrix(pos, quat, scale))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, pos[i], p[i], 1e-5)
		assert.InDelta(t, scale[i], s[i], 1e-5)
	}

	// q and -q describe the same rotation.
	sign := float32(1)
	if q[3]*quat[3] < 0 {
		sign = -1
	}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, quat[i], sign*q[i], 1e-5)
	}
}

func TestEulerQuatRoundTrip(t *testing.T) {
	euler := [3]float32{0.4, -0.3, 1.2}
	got := QuatToEuler(EulerToQuat(euler[0], euler[1], euler[2]))
	for i := range euler {
		assert.InDelta(t, euler[i], got[i], 1e-5)
	}
}

func TestTransformPointTranslation(t *testing.T) {
	m := ComposeMatrix([3]float32{1, 2, 3}, [4]float32{0, 0, 0, 1}, [3]float32{1, 1, 1})
	assert.Equal(t, [3]float32{2, 3, 4}, TransformPoint(m[:], [3]float32{1, 1, 1}))
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], math32.Pi/2, 1, 1, 100)

	near := MulVec4(proj[:], [4]float32{0, 0, -1, 1})
	far := MulVec4(proj[:], [4]float32{0, 0, -100, 1})
	assert.InDelta(t, 0, near[2]/near[3], 1e-5)
	assert.InDelta(t, 1, far[2]/far[3], 1e-5)
}

func TestOrthographicDepthRange(t *testing.T) {
	var proj [16]float32
	Orthographic(proj[:], -60, 60, 60, -60, 1, 70)

	near := MulVec4(proj[:], [4]float32{60, -60, -1, 1})
	far := MulVec4(proj[:], [4]float32{0, 0, -70, 1})
	assert.InDelta(t, 1, near[0], 1e-6)
	assert.InDelta(t, -1, near[1], 1e-6)
	assert.InDelta(t, 0, near[2], 1e-6)
	assert.InDelta(t, 1, far[2], 1e-6)
}

func TestSlerpQuatEndpoints(t *testing.T) {
	a := EulerToQuat(0, 0, 0)
	b := EulerToQuat(0, math32.Pi/2, 0)
	mid := SlerpQuat(a, b, 0.5)
	want := EulerToQuat(0, math32.Pi/4, 0)
	for i := range want {
		assert.InDelta(t, want[i], mid[i], 1e-5)
	}
}

func TestHexColor(t *testing.T) {
	rgb := HexToRGB(0xff8000)
	assert.Equal(t, float32(1), rgb[0])
	assert.InDelta(t, 128.0/255.0, rgb[1], 1e-6)
	assert.Equal(t, float32(0), rgb[2])
	assert.Equal(t, uint32(0xff8000), RGBToHex(rgb))
	assert.Equal(t, uint32(0xffffff), RGBToHex([3]float32{2, 2, 2}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", Coalesce[string]())
}

func TestNormalize4(t *testing.T) {
	assert.Equal(t, [4]float32{0, 0, 0, 1}, Normalize4([4]float32{}))
	q := Normalize4([4]float32{0, 0, 3, 4})
	assert.InDelta(t, 0.6, q[2], 1e-6)
	assert.InDelta(t, 0.8, q[3], 1e-6)
}
