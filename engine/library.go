package engine

import (
	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/geometry"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"github.com/Carmen-Shannon/oxy-build/engine/material"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"github.com/Carmen-Shannon/oxy-build/engine/raycast"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"go.uber.org/zap"
)

// Library is the set of constructors construction callbacks may use.
// It is the only view of the engine packages a callback receives, so callers can
// substitute their own implementation to intercept or decorate what gets built.
type Library interface {
	// Scene creates an empty scene.
	Scene(options ...scene.SceneBuilderOption) scene.Scene

	// Group creates an empty named group node.
	Group(name string) node.Node

	// AxesHelper creates an axes helper of the given size.
	AxesHelper(size float32) node.Node

	// BoxGeometry creates an axis-aligned box centered on the origin.
	BoxGeometry(width, height, depth float32) geometry.Geometry

	// SphereGeometry creates a UV sphere centered on the origin.
	SphereGeometry(radius float32, widthSegments, heightSegments int) geometry.Geometry

	// PlaneGeometry creates a plane in the XY plane facing +Z.
	PlaneGeometry(width, height float32) geometry.Geometry

	// BufferGeometry creates a geometry from raw positions and triangle indices.
	//
	// Parameters:
	//   - positions: vertex positions
	//   - indices: triangle indices, or nil for a non-indexed triangle list
	//   - options: normals and uvs
	//
	// Returns:
	//   - geometry.Geometry: the geometry
	//   - error: an error if the data is malformed
	BufferGeometry(positions [][3]float32, indices []uint32, options ...geometry.GeometryBuilderOption) (geometry.Geometry, error)

	// BasicMaterial creates an unlit material.
	BasicMaterial(options ...material.MaterialBuilderOption) material.Material

	// StandardMaterial creates a metallic-roughness material.
	StandardMaterial(options ...material.MaterialBuilderOption) material.Material

	// Mesh combines a geometry and a material into a scene node.
	Mesh(g geometry.Geometry, m material.Material, options ...mesh.MeshBuilderOption) mesh.Mesh

	// PerspectiveCamera creates a perspective camera.
	PerspectiveCamera(options ...camera.CameraBuilderOption) camera.Camera

	// OrthographicCamera creates an orthographic camera.
	OrthographicCamera(options ...camera.CameraBuilderOption) camera.Camera

	// AmbientLight creates an ambient light.
	AmbientLight(options ...light.LightBuilderOption) light.Light

	// DirectionalLight creates a directional light.
	DirectionalLight(options ...light.LightBuilderOption) light.Light

	// PointLight creates a point light.
	PointLight(options ...light.LightBuilderOption) light.Light

	// SpotLight creates a spot light.
	SpotLight(options ...light.LightBuilderOption) light.Light

	// Renderer creates a renderer presenting into surface. Library-wide renderer
	// options are applied before options.
	//
	// Parameters:
	//   - surface: the container
	//   - options: per-call renderer options
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	//   - error: an error if the backend cannot be created
	Renderer(surface renderer.Surface, options ...renderer.RendererBuilderOption) (renderer.Renderer, error)

	// Raycaster creates a raycaster.
	Raycaster(options ...raycast.RaycasterBuilderOption) raycast.Raycaster

	// Mixer creates an animation mixer for the graph rooted at root.
	Mixer(root node.Node, options ...animation.MixerOption) *animation.Mixer

	// Clip creates an animation clip.
	Clip(name string, duration float32, tracks []*animation.KeyframeTrack) *animation.Clip

	// KeyframeTrack creates a keyframe track.
	KeyframeTrack(trackType animation.TrackType, name string, times []float32, values any, options ...animation.KeyframeTrackOption) (*animation.KeyframeTrack, error)
}

// library is the stock implementation of Library backed by the engine packages.
type library struct {
	logger          *zap.Logger
	rendererOptions []renderer.RendererBuilderOption
}

var _ Library = &library{}

// NewLibrary creates a Library backed by the engine packages.
//
// Parameters:
//   - options: functional options to configure the library
//
// Returns:
//   - Library: the library
func NewLibrary(options ...LibraryBuilderOption) Library {
	l := &library{logger: zap.NewNop()}
	for _, option := range options {
		option(l)
	}
	return l
}

// Default returns a Library with default settings.
func Default() Library {
	return NewLibrary()
}

func (l *library) Scene(options ...scene.SceneBuilderOption) scene.Scene {
	return scene.NewScene(options...)
}

func (l *library) Group(name string) node.Node {
	return node.NewGroup(name)
}

func (l *library) AxesHelper(size float32) node.Node {
	return node.NewAxesHelper(size)
}

func (l *library) BoxGeometry(width, height, depth float32) geometry.Geometry {
	return geometry.NewBoxGeometry(width, height, depth)
}

func (l *library) SphereGeometry(radius float32, widthSegments, heightSegments int) geometry.Geometry {
	return geometry.NewSphereGeometry(radius, widthSegments, heightSegments)
}

func (l *library) PlaneGeometry(width, height float32) geometry.Geometry {
	return geometry.NewPlaneGeometry(width, height)
}

func (l *library) BufferGeometry(positions [][3]float32, indices []uint32, options ...geometry.GeometryBuilderOption) (geometry.Geometry, error) {
	return geometry.NewBufferGeometry(positions, indices, options...)
}

func (l *library) BasicMaterial(options ...material.MaterialBuilderOption) material.Material {
	return material.NewMaterial(append([]material.MaterialBuilderOption{material.WithType(material.MaterialTypeBasic)}, options...)...)
}

func (l *library) StandardMaterial(options ...material.MaterialBuilderOption) material.Material {
	return material.NewMaterial(append([]material.MaterialBuilderOption{material.WithType(material.MaterialTypeStandard)}, options...)...)
}

func (l *library) Mesh(g geometry.Geometry, m material.Material, options ...mesh.MeshBuilderOption) mesh.Mesh {
	return mesh.NewMesh(g, m, options...)
}

func (l *library) PerspectiveCamera(options ...camera.CameraBuilderOption) camera.Camera {
	return camera.NewPerspectiveCamera(options...)
}

func (l *library) OrthographicCamera(options ...camera.CameraBuilderOption) camera.Camera {
	return camera.NewOrthographicCamera(options...)
}

func (l *library) AmbientLight(options ...light.LightBuilderOption) light.Light {
	return light.NewLight(light.LightTypeAmbient, options...)
}

func (l *library) DirectionalLight(options ...light.LightBuilderOption) light.Light {
	return light.NewLight(light.LightTypeDirectional, options...)
}

func (l *library) PointLight(options ...light.LightBuilderOption) light.Light {
	return light.NewLight(light.LightTypePoint, options...)
}

func (l *library) SpotLight(options ...light.LightBuilderOption) light.Light {
	return light.NewLight(light.LightTypeSpot, options...)
}

func (l *library) Renderer(surface renderer.Surface, options ...renderer.RendererBuilderOption) (renderer.Renderer, error) {
	opts := make([]renderer.RendererBuilderOption, 0, len(l.rendererOptions)+len(options)+1)
	opts = append(opts, renderer.WithLogger(l.logger))
	opts = append(opts, l.rendererOptions...)
	opts = append(opts, options...)
	return renderer.NewRenderer(surface, opts...)
}

func (l *library) Raycaster(options ...raycast.RaycasterBuilderOption) raycast.Raycaster {
	return raycast.NewRaycaster(options...)
}

func (l *library) Mixer(root node.Node, options ...animation.MixerOption) *animation.Mixer {
	return animation.NewMixer(root, append([]animation.MixerOption{animation.WithLogger(l.logger)}, options...)...)
}

func (l *library) Clip(name string, duration float32, tracks []*animation.KeyframeTrack) *animation.Clip {
	return animation.NewClip(name, duration, tracks)
}

func (l *library) KeyframeTrack(trackType animation.TrackType, name string, times []float32, values any, options ...animation.KeyframeTrackOption) (*animation.KeyframeTrack, error) {
	return animation.NewKeyframeTrack(trackType, name, times, values, options...)
}
