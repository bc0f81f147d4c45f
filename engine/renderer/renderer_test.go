package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	w, h  int
	ratio float32
}

func (f fakeSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (f fakeSurface) Width() int                                 { return f.w }
func (f fakeSurface) Height() int                                { return f.h }
func (f fakeSurface) PixelRatio() float32                        { return f.ratio }

func newHeadless(t *testing.T, options ...RendererBuilderOption) (Renderer, *headlessRendererBackend) {
	t.Helper()
	r, err := NewRenderer(fakeSurface{w: 800, h: 600, ratio: 2}, append([]RendererBuilderOption{WithBackend(BackendTypeHeadless)}, options...)...)
	require.NoError(t, err)
	return r, r.(*renderer).backend.(*headlessRendererBackend)
}

func TestNewRendererTakesSurfaceSize(t *testing.T) {
	r, b := newHeadless(t)
	w, h := r.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, float32(2), r.PixelRatio())
	assert.Equal(t, 1600, b.width)
	assert.Equal(t, 1200, b.height)
	assert.False(t, r.Antialias())
	assert.Equal(t, BackendTypeHeadless, r.BackendType())
}

func TestOptionsOverrideSurface(t *testing.T) {
	r, b := newHeadless(t, WithSize(100, 50), WithPixelRatio(1), WithAntialias(true), WithAlpha(true), WithPresentMode(PresentModeUncapped))
	w, h := r.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
	assert.Equal(t, 100, b.width)
	assert.True(t, r.Antialias())
	assert.True(t, r.Alpha())
	assert.Equal(t, PresentModeUncapped, b.presentMode)
}

func TestWGPUBackendNeedsDescriptor(t *testing.T) {
	_, err := NewRenderer(fakeSurface{w: 10, h: 10, ratio: 1})
	assert.ErrorIs(t, err, ErrNoSurface)

	_, err = NewRenderer(nil)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestRenderClearsToBackground(t *testing.T) {
	r, b := newHeadless(t)
	s := scene.NewScene(scene.WithBackground(0xff0000))
	s.Add(mesh.NewMesh(geometry.NewBoxGeometry(1, 1, 1), material.NewMaterial()))
	s.Add(light.NewLight(light.LightTypeAmbient))
	cam := camera.NewPerspectiveCamera()

	require.NoError(t, r.Render(s, cam))
	require.NoError(t, r.Render(s, cam))

	info := r.Info()
	assert.Equal(t, uint64(2), info.Frames)
	assert.Equal(t, uint64(2), b.presented)
	assert.Equal(t, 1, info.Meshes)
	assert.Equal(t, 1, info.Lights)
	assert.InDelta(t, 1.0, info.ClearColor[0], 1e-6)
	assert.InDelta(t, 0.0, info.ClearColor[1], 1e-6)
	assert.InDelta(t, 1.0, info.ClearColor[3], 1e-6)
}

func TestRenderSkipsInactiveScene(t *testing.T) {
	r, _ := newHeadless(t)
	s := scene.NewScene(scene.WithActive(false))
	require.NoError(t, r.Render(s, camera.NewPerspectiveCamera()))
	assert.Zero(t, r.Info().Frames)
}

func TestRenderNeedsSceneAndCamera(t *testing.T) {
	r, _ := newHeadless(t)
	assert.ErrorIs(t, r.Render(nil, camera.NewPerspectiveCamera()), ErrNothingToRender)
	assert.ErrorIs(t, r.Render(scene.NewScene(), nil), ErrNothingToRender)
}

func TestSetSizeReconfigures(t *testing.T) {
	r, b := newHeadless(t)
	require.NoError(t, r.SetSize(320, 240))
	assert.Equal(t, 640, b.width)
	assert.Equal(t, 480, b.height)

	require.NoError(t, r.SetPixelRatio(1))
	assert.Equal(t, 320, b.width)

	require.NoError(t, r.SetPixelRatio(0))
	assert.Equal(t, float32(1), r.PixelRatio())
}

func TestHeadlessFrameProtocol(t *testing.T) {
	b := newHeadlessRendererBackend()
	require.NoError(t, b.BeginFrame([4]float64{}))
	assert.Error(t, b.BeginFrame([4]float64{}))
	require.NoError(t, b.EndFrame())
	assert.Error(t, b.EndFrame())
	b.Present()
	b.Present()
	assert.Equal(t, uint64(1), b.presented)

	b.Release()
	assert.True(t, b.released)
}
