package builder

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/controls"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/loader"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/Carmen-Shannon/oxy-build/engine/profiler"
	"github.com/Carmen-Shannon/oxy-build/engine/raycast"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"go.uber.org/zap"
)

// Container is the host surface a renderer presents into and the pointer moves over.
// window.Window satisfies it.
type Container interface {
	renderer.Surface

	// Size returns the logical width and height.
	Size() (width, height int)
}

// Builder assembles a scene, renderer, camera, lights, meshes, controls, animations and
// picking through chained calls, then drives them from a frame loop.
//
// Calls are order dependent. A call whose prerequisite is missing records the error,
// logs it and leaves the builder unchanged; every later setup call is then a no-op that
// returns the same builder. Check Err after a chain. Builder is safe for use by the
// loader goroutines that attach models.
type Builder struct {
	mu *sync.Mutex

	lib    engine.Library
	logger *zap.Logger
	err    error

	container Container
	scene     scene.Scene
	renderer  renderer.Renderer
	camera    camera.Camera
	controls  controls.OrbitControls

	geometry  geometry.Geometry
	material  material.Material
	meshGroup []mesh.Mesh

	mixers  []*animation.Mixer
	actions []*animation.Action

	raycaster   raycast.Raycaster
	onIntersect IntersectionHandler
	pointer     [2]float32
	selection   node.Node

	now      func() time.Time
	clock    *animation.Clock
	profiler *profiler.Profiler

	loader        loader.Loader
	loaderOptions []loader.LoaderBuilderOption
	closed        bool
}

// New creates a builder that constructs everything through lib.
//
// Parameters:
//   - lib: the constructor library handed to callbacks, or nil for engine.Default()
//   - options: functional options to configure the builder
//
// Returns:
//   - *Builder: the builder
func New(lib engine.Library, options ...BuilderOption) *Builder {
	if lib == nil {
		lib = engine.Default()
	}
	b := &Builder{
		mu:     &sync.Mutex{},
		lib:    lib,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(b)
	}
	b.clock = animation.NewClock(b.now)
	return b
}

// fail records err as the sticky error. Callers hold b.mu.
func (b *Builder) fail(op string, err error) *Builder {
	b.err = err
	b.logger.Error("builder call failed", zap.String("op", op), zap.Error(err))
	return b
}

// Err returns the first error recorded by a setup call, or nil.
func (b *Builder) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Library returns the constructor library.
func (b *Builder) Library() engine.Library {
	return b.lib
}

// Scene returns the scene, or nil before SetScene.
func (b *Builder) Scene() scene.Scene {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scene
}

// Renderer returns the renderer, or nil before SetRenderer.
func (b *Builder) Renderer() renderer.Renderer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.renderer
}

// Camera returns the camera, or nil before SetCamera.
func (b *Builder) Camera() camera.Camera {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.camera
}

// Controls returns the orbit controls, or nil before SetOrbitControls.
func (b *Builder) Controls() controls.OrbitControls {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.controls
}

// Mixers returns a copy of the registered mixers in registration order.
func (b *Builder) Mixers() []*animation.Mixer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*animation.Mixer(nil), b.mixers...)
}

// Actions returns a copy of the actions created by AddAnimationMixer.
func (b *Builder) Actions() []*animation.Action {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*animation.Action(nil), b.actions...)
}

// Staged returns the geometry and material waiting for the next SetMesh.
//
// Returns:
//   - geometry.Geometry: the staged geometry, or nil
//   - material.Material: the staged material, or nil
func (b *Builder) Staged() (geometry.Geometry, material.Material) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.geometry, b.material
}

// PendingGroup returns a copy of the meshes waiting for AddMeshGroup.
func (b *Builder) PendingGroup() []mesh.Mesh {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]mesh.Mesh(nil), b.meshGroup...)
}

// Close stops the model loader and releases the renderer. Loads still queued may never
// settle, so bound Future.Wait with a context. Later LoadGLTF calls reject with
// loader.ErrLoaderClosed.
//
// Returns:
//   - error: nil; kept so Builder satisfies io.Closer
func (b *Builder) Close() error {
	b.mu.Lock()
	l := b.loader
	r := b.renderer
	b.loader = nil
	b.closed = true
	b.mu.Unlock()

	// Loader callbacks take b.mu, so the pool is drained without holding it.
	if l != nil {
		l.Close()
	}
	if r != nil {
		r.Release()
	}
	return nil
}

// requireScene reports ErrMissingScene. Callers hold b.mu.
func (b *Builder) requireScene(op string) bool {
	if b.scene == nil {
		b.fail(op, ErrMissingScene)
		return false
	}
	return true
}

// errNil wraps ErrNilConstructor for op.
func errNil(op string) error {
	return fmt.Errorf("%w: %s", ErrNilConstructor, op)
}
