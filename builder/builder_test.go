package builder

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/Carmen-Shannon/oxy-build/engine/raycast"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

type fakeContainer struct {
	w, h int
}

func (f fakeContainer) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (f fakeContainer) Width() int                                 { return f.w }
func (f fakeContainer) Height() int                                { return f.h }
func (f fakeContainer) PixelRatio() float32                        { return 1 }
func (f fakeContainer) Size() (int, int)                           { return f.w, f.h }

// manualClock is advanced by hand between frames.
type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time          { return c.t }
func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func headlessLibrary() engine.Library {
	return engine.NewLibrary(engine.WithRendererOptions(renderer.WithBackend(renderer.BackendTypeHeadless)))
}

// newReady returns a builder with a scene, an 800x600 headless renderer and a camera
// at (0, 0, 10) looking at the origin.
func newReady(t *testing.T, options ...BuilderOption) *Builder {
	t.Helper()
	cam := DefaultPerspectiveCameraOptions()
	cam.X, cam.Y, cam.Z = 0, 0, 10

	b := New(headlessLibrary(), options...).
		SetScene(DefaultSceneOptions()).
		SetWebGPURenderer(fakeContainer{w: 800, h: 600}, DefaultRendererOptions()).
		SetPerspectiveCamera(cam)
	require.NoError(t, b.Err())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func box(lib engine.Library) geometry.Geometry {
	return lib.BoxGeometry(2, 2, 2)
}

func red(lib engine.Library) material.Material {
	return lib.BasicMaterial(material.WithColorHex(0xff0000))
}

func TestOrderViolationMutatesNothing(t *testing.T) {
	b := New(headlessLibrary())
	b.SetPerspectiveCamera(DefaultPerspectiveCameraOptions())
	assert.ErrorIs(t, b.Err(), ErrMissingScene)
	assert.Nil(t, b.Camera())

	// Sticky: later calls are no-ops.
	b.SetScene(DefaultSceneOptions())
	assert.Nil(t, b.Scene())
	assert.ErrorIs(t, b.Err(), ErrMissingScene)
}

func TestSetSceneZeroBackgroundIsWhite(t *testing.T) {
	b := New(headlessLibrary()).SetScene(SceneOptions{})
	require.NoError(t, b.Err())
	assert.Equal(t, uint32(0xffffff), b.Scene().BackgroundHex())
	assert.Equal(t, float32(0), b.Scene().BackgroundBlurriness())

	b = New(headlessLibrary()).SetScene(SceneOptions{Background: 0x102030, BackgroundBlurriness: 0.25})
	require.NoError(t, b.Err())
	assert.Equal(t, uint32(0x102030), b.Scene().BackgroundHex())
	assert.Equal(t, float32(0.25), b.Scene().BackgroundBlurriness())
	assert.Equal(t, "scene", b.Scene().Name())
}

func TestPrerequisiteErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(b *Builder) *Builder
		want error
	}{
		{"mesh without scene", func(b *Builder) *Builder { return b.SetMesh("a", 0, 0, 0, false) }, ErrMissingScene},
		{"light without scene", func(b *Builder) *Builder { return b.SetAmbientLight(0xffffff, 1, 0, 0, 0) }, ErrMissingScene},
		{"renderer without container", func(b *Builder) *Builder { return b.SetWebGPURenderer(nil, DefaultRendererOptions()) }, ErrMissingContainer},
		{"controls without camera", func(b *Builder) *Builder {
			return b.SetScene(DefaultSceneOptions()).SetOrbitControls(DefaultOrbitControlsOptions())
		}, ErrMissingCamera},
		{"controls without renderer", func(b *Builder) *Builder {
			return b.SetScene(DefaultSceneOptions()).SetPerspectiveCamera(DefaultPerspectiveCameraOptions()).SetOrbitControls(nil)
		}, ErrMissingRenderer},
		{"mesh without geometry", func(b *Builder) *Builder {
			return b.SetScene(DefaultSceneOptions()).SetMaterial(red).SetMesh("a", 0, 0, 0, false)
		}, ErrMissingGeometry},
		{"mesh without material", func(b *Builder) *Builder {
			return b.SetScene(DefaultSceneOptions()).SetGeometry(box).SetMesh("a", 0, 0, 0, false)
		}, ErrMissingMaterial},
		{"nil constructor", func(b *Builder) *Builder { return b.SetGeometry(nil) }, ErrNilConstructor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.run(New(headlessLibrary()))
			assert.ErrorIs(t, b.Err(), tt.want)
		})
	}
}

func TestFailedMeshKeepsStaging(t *testing.T) {
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions()).SetMaterial(red)
	count := b.Scene().Count()

	b.SetMesh("a", 0, 0, 0, false)
	require.ErrorIs(t, b.Err(), ErrMissingGeometry)
	_, m := b.Staged()
	assert.NotNil(t, m)
	assert.Equal(t, count, b.Scene().Count())
}

func TestSetMeshConsumesStaging(t *testing.T) {
	b := New(headlessLibrary()).
		SetScene(DefaultSceneOptions()).
		SetGeometry(box).
		SetMaterial(red).
		SetMesh("A", 1, 2, 3, false)
	require.NoError(t, b.Err())

	n := b.Scene().Child("A")
	require.NotNil(t, n)
	m, ok := n.(mesh.Mesh)
	require.True(t, ok)
	assert.Equal(t, [3]float32{1, 2, 3}, m.Position())
	assert.Equal(t, [3]float32{1, 0, 0}, m.Material().Color())
	assert.Len(t, b.Scene().Meshes(), 1)

	g, mat := b.Staged()
	assert.Nil(t, g)
	assert.Nil(t, mat)

	b.SetMesh("B", 0, 0, 0, false)
	assert.ErrorIs(t, b.Err(), ErrMissingGeometry)
}

func TestAddMeshGroup(t *testing.T) {
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions())
	b.AddMeshGroup("empty")
	assert.ErrorIs(t, b.Err(), ErrEmptyMeshGroup)

	b = New(headlessLibrary()).
		SetScene(DefaultSceneOptions()).
		SetGeometry(box).SetMaterial(red).SetMesh("left", -2, 0, 0, true).
		SetGeometry(box).SetMaterial(red).SetMesh("right", 2, 0, 0, true)
	require.NoError(t, b.Err())
	assert.Len(t, b.PendingGroup(), 2)
	assert.Nil(t, b.Scene().Child("left"))

	b.AddMeshGroup("pair")
	require.NoError(t, b.Err())

	group := b.Scene().Child("pair")
	require.NotNil(t, group)
	require.Len(t, group.Children(), 2)
	assert.Equal(t, "left", group.Children()[0].Name())
	assert.Equal(t, "right", group.Children()[1].Name())
	assert.Nil(t, b.Scene().Child("left"))
	assert.Empty(t, b.PendingGroup())
}

func TestLights(t *testing.T) {
	b := New(headlessLibrary()).
		SetScene(DefaultSceneOptions()).
		SetGeometry(box).SetMaterial(red).SetMesh("crate", 0, 0, 0, false).
		SetAmbientLight(0x404040, 0.5, 0, 10, 0)

	spot := DefaultSpotLightOptions()
	spot.Target = "crate"
	spot.X, spot.Y, spot.Z = 0, 20, 0
	b.SetSpotLight(spot)
	require.NoError(t, b.Err())

	ambient, ok := b.Scene().Child("ambientLight").(light.Light)
	require.True(t, ok)
	assert.Equal(t, light.LightTypeAmbient, ambient.Type())
	assert.Equal(t, float32(0.5), ambient.Intensity())

	sl, ok := b.Scene().Child("spotLight").(light.Light)
	require.True(t, ok)
	assert.Equal(t, light.LightTypeSpot, sl.Type())
	assert.True(t, sl.CastsShadows())
	assert.Equal(t, float32(500), sl.Shadow().Near)
	assert.Equal(t, float32(100), sl.Shadow().Far)
	assert.Equal(t, float32(30), sl.Shadow().Fov)
	require.NotNil(t, sl.Target())
	assert.Equal(t, "crate", sl.Target().Name())
}

func TestSpotLightMissingTargetIgnored(t *testing.T) {
	spot := DefaultSpotLightOptions()
	spot.Target = "nowhere"
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions()).SetSpotLight(spot)
	require.NoError(t, b.Err())
	assert.NotNil(t, b.Scene().Child("spotLight"))
}

func TestOrbitControlsFiltersKeys(t *testing.T) {
	b := newReady(t)

	b.SetOrbitControls(OrbitControlsOptions{})
	require.NoError(t, b.Err())
	oc := b.Controls()
	require.NotNil(t, oc)

	b.SetOrbitControls(OrbitControlsOptions{
		"enableDamping": false,
		"rotateSpeed":   0.5,
		"notAProperty":  42,
	})
	require.NoError(t, b.Err())
	assert.Same(t, oc, b.Controls())

	v, ok := oc.Get("enableDamping")
	require.True(t, ok)
	assert.Equal(t, false, v)
	v, _ = oc.Get("rotateSpeed")
	assert.Equal(t, float32(0.5), v)
	v, _ = oc.Get("enablePan")
	assert.Equal(t, true, v)
	_, ok = oc.Get("notAProperty")
	assert.False(t, ok)
}

func TestOrbitControlsBadValueMutatesNothing(t *testing.T) {
	b := newReady(t)
	b.SetOrbitControls(OrbitControlsOptions{"enableDamping": "yes"})
	assert.Error(t, b.Err())
	assert.Nil(t, b.Controls())
}

func TestGetKeyframeTrack(t *testing.T) {
	b := New(headlessLibrary())
	tracks, err := b.GetKeyframeTrack([]KeyframeTrackOptions{
		KeyframeTrackOption(animation.TrackTypeVector, "crate", "position", []float32{0, 1}, []float32{0, 0, 0, 2, 0, 0}),
		KeyframeTrackOption(animation.TrackTypeColor, "crate", "material.color", []float32{0, 1}, []float32{1, 0, 0, 0, 0, 1}),
		KeyframeTrackOption(animation.TrackTypeBoolean, "crate", "visible", []float32{0, 1}, []bool{true, false}),
	})
	require.NoError(t, err)
	require.Len(t, tracks, 3)
	assert.Equal(t, "crate.position", tracks[0].Name())
	assert.Equal(t, "crate.material.color", tracks[1].Name())
	assert.Equal(t, "crate.visible", tracks[2].Name())

	_, err = b.GetKeyframeTrack([]KeyframeTrackOptions{
		KeyframeTrackOption(animation.TrackTypeVector, "crate", "position", []float32{0, 1}, []float32{0, 0, 0}),
	})
	assert.ErrorIs(t, err, animation.ErrInvalidTrack)
}

func TestGetKeyframeTrackFromYAML(t *testing.T) {
	var options []KeyframeTrackOptions
	require.NoError(t, yaml.Unmarshal([]byte(`
- type: vector
  name: crate.position
  times: [0, 1]
  values: [0, 0, 0, 2, 0.5, 0]
- type: boolean
  name: crate.visible
  times: [0, 1]
  values: [true, false]
`), &options))

	tracks, err := New(headlessLibrary()).GetKeyframeTrack(options)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, []float32{2, 0.5, 0}, tracks[0].Sample(1))
	assert.Equal(t, false, tracks[1].Sample(1))
}

func TestAddAnimationMixerPlaysOnFrame(t *testing.T) {
	clock := &manualClock{t: time.Unix(0, 0)}
	b := newReady(t, WithClock(clock.now)).
		SetGeometry(box).SetMaterial(red).SetMesh("crate", 0, 0, 0, false)

	tracks, err := b.GetKeyframeTrack([]KeyframeTrackOptions{
		KeyframeTrackOption(animation.TrackTypeVector, "crate", "position", []float32{0, 1}, []float32{0, 0, 0, 2, 0, 0}),
	})
	require.NoError(t, err)

	var configured *animation.Action
	b.AddAnimationMixer("crate", "crateMixer", "slide", -1, tracks, func(a *animation.Action, _ engine.Library) {
		configured = a.SetLoop(animation.LoopOnce, 1)
	})
	require.NoError(t, b.Err())
	require.Len(t, b.Mixers(), 1)
	assert.Equal(t, "crateMixer", b.Mixers()[0].Name())

	action := b.GetAnimationAction("crate")
	require.NotNil(t, action)
	assert.Same(t, configured, action)
	assert.Equal(t, 1, action.BoundTracks())
	assert.True(t, action.IsRunning())
	assert.Nil(t, b.GetAnimationAction("missing"))

	require.NoError(t, b.Frame(nil))
	clock.advance(500 * time.Millisecond)
	var seen FrameContext
	require.NoError(t, b.Frame(func(fc FrameContext) { seen = fc }))

	assert.InDelta(t, 0.5, seen.Delta, 1e-6)
	assert.InDelta(t, 0.5, seen.Elapsed, 1e-6)
	assert.InDeltaSlice(t, []float32{1, 0, 0}, sliceOf(b.Scene().Child("crate").Position()), 1e-5)
	assert.Equal(t, uint64(2), b.Renderer().Info().Frames)
}

func TestAddAnimationMixerUnknownNode(t *testing.T) {
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions())
	b.AddAnimationMixer("ghost", "m", "c", 1, nil, nil)
	assert.ErrorIs(t, b.Err(), ErrNodeNotFound)
	assert.Empty(t, b.Mixers())
	assert.Empty(t, b.Actions())
}

func TestRaycastHandlerUpdatesSelection(t *testing.T) {
	b := newReady(t).SetGeometry(box).SetMaterial(red).SetMesh("crate", 0, 0, 0, false)

	calls := 0
	b.SetRaycaster(func(hits []raycast.Intersection, selected node.Node) node.Node {
		calls++
		if len(hits) == 0 {
			return nil
		}
		return hits[0].Object
	})
	require.NoError(t, b.Err())

	b.OnPointerMove(400, 300)
	assert.Equal(t, [2]float32{0, 0}, b.Pointer())

	require.NoError(t, b.Frame(nil))
	assert.Equal(t, 1, calls)
	require.NotNil(t, b.Selection())
	assert.Equal(t, "crate", b.Selection().Name())

	b.OnPointerMove(0, 0)
	assert.Equal(t, [2]float32{-1, 1}, b.Pointer())
	require.NoError(t, b.Frame(nil))
	assert.Nil(t, b.Selection())
}

func TestRaycasterWithoutHandlerSkipsPicking(t *testing.T) {
	b := newReady(t).SetGeometry(box).SetMaterial(red).SetMesh("crate", 0, 0, 0, false)
	b.SetRaycaster(nil)
	require.NoError(t, b.Err())
	require.NotNil(t, b.Raycaster())

	b.OnPointerMove(400, 300)
	require.NoError(t, b.Frame(nil))
	assert.Nil(t, b.Selection())
}

func TestLoadGLTFAttachesModel(t *testing.T) {
	doc := map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"nodes": []int{0}}},
		"nodes":  []any{map[string]any{"name": "pivot", "translation": []float32{0, 1, 0}}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crate.gltf"), data, 0o644))

	b := New(headlessLibrary(), WithLoaderOptions()).SetScene(DefaultSceneOptions())
	defer b.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := b.LoadGLTF(ctx, filepath.Join(dir, "crate.gltf"), "crate").Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, "crate", m.Name)
	assert.Same(t, m.Root, b.Scene().Child("crate"))
	assert.NotNil(t, m.Root.Find("pivot"))
	require.Len(t, b.Mixers(), 1)
	assert.Same(t, m.Mixer, b.Mixers()[0])
}

func TestLoadGLTFFailureAttachesNothing(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	b := New(headlessLibrary(), WithLogger(zap.New(core))).SetScene(DefaultSceneOptions())
	defer b.Close()
	count := b.Scene().Count()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := b.LoadGLTF(ctx, filepath.Join(t.TempDir(), "missing.gltf"), "ghost").Wait(ctx)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrModelLoad))

	assert.Equal(t, count, b.Scene().Count())
	assert.Empty(t, b.Mixers())
	assert.Equal(t, 1, logs.FilterMessage("model load failed").Len())
}

func TestLoadGLTFWithoutScene(t *testing.T) {
	b := New(headlessLibrary())
	err := b.LoadGLTF(context.Background(), "crate.gltf", "crate").Err()
	assert.ErrorIs(t, err, ErrMissingScene)
	assert.ErrorIs(t, b.Err(), ErrMissingScene)
}

func TestLoadGLTFAfterClose(t *testing.T) {
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions())
	require.NoError(t, b.Close())
	assert.Error(t, b.LoadGLTF(context.Background(), "crate.gltf", "crate").Err())
}

func TestAnimateRunsFrames(t *testing.T) {
	b := newReady(t)
	frames := 0
	err := b.Animate(context.Background(), TickerFrames{Interval: time.Millisecond, Limit: 3}, func(FrameContext) { frames++ })
	require.NoError(t, err)
	assert.Equal(t, 3, frames)
	assert.Equal(t, uint64(3), b.Renderer().Info().Frames)
}

func TestAnimateStopsOnContext(t *testing.T) {
	b := newReady(t)
	ctx, cancel := context.WithCancel(context.Background())
	err := b.Animate(ctx, TickerFrames{Interval: time.Millisecond}, func(fc FrameContext) {
		if fc.Elapsed >= 0 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnimateRecoversPanic(t *testing.T) {
	b := newReady(t)
	err := b.Animate(context.Background(), TickerFrames{Interval: time.Millisecond, Limit: 1}, func(FrameContext) {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAnimateRequiresSetup(t *testing.T) {
	b := New(headlessLibrary()).SetScene(DefaultSceneOptions())
	assert.ErrorIs(t, b.Animate(context.Background(), TickerFrames{Limit: 1}, nil), ErrMissingCamera)
}

// fakeInput records the callbacks BindInput installs.
type fakeInput struct {
	button func(button int, pressed bool, x, y float32)
	move   func(x, y float32)
	scroll func(delta float32)
	resize func(width, height int)
}

func (f *fakeInput) SetMouseButtonCallback(cb func(button int, pressed bool, x, y float32)) {
	f.button = cb
}
func (f *fakeInput) SetMouseMoveCallback(cb func(x, y float32))   { f.move = cb }
func (f *fakeInput) SetScrollCallback(cb func(delta float32))     { f.scroll = cb }
func (f *fakeInput) SetResizeCallback(cb func(width, height int)) { f.resize = cb }

func TestBindInput(t *testing.T) {
	b := newReady(t).SetOrbitControls(OrbitControlsOptions{"enableDamping": false})
	require.NoError(t, b.Err())
	in := &fakeInput{}
	b.BindInput(in)

	before := b.Camera().Position()
	in.button(0, true, 400, 300)
	in.move(500, 300)
	in.button(0, false, 500, 300)
	require.NoError(t, b.Frame(nil))
	assert.NotEqual(t, before, b.Camera().Position())
	assert.Equal(t, [2]float32{0.25, 0}, b.Pointer())

	in.resize(400, 100)
	w, h := b.Renderer().Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, float32(4), b.Camera().Aspect())
}

func TestMergeKeepsDefaults(t *testing.T) {
	got, err := Merge(DefaultPerspectiveCameraOptions(), PerspectiveCameraOptions{Fov: 60, Z: 30})
	require.NoError(t, err)
	assert.Equal(t, float32(60), got.Fov)
	assert.Equal(t, float32(30), got.Z)
	assert.Equal(t, float32(1), got.X)
	assert.Equal(t, float32(1000), got.Far)

	ortho := DefaultOrthographicCameraOptions()
	assert.Equal(t, float32(70), ortho.Far)

	oc := MergeOrbitControls(DefaultOrbitControlsOptions(), OrbitControlsOptions{"enableDamping": false})
	assert.Equal(t, false, oc["enableDamping"])
	assert.Equal(t, true, oc["enablePan"])
}

func sliceOf(v [3]float32) []float32 {
	return v[:]
}
