package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/Carmen-Shannon/oxy-build/engine/light"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/Carmen-Shannon/oxy-build/engine/node"
)

// Scene is the root of a node graph. It carries the clear color used by the renderer
// and collects the visible meshes and enabled lights beneath it each frame.
// Scenes can be hot-swapped via the Active flag to switch between different views.
// Thread-safe for concurrent access.
type Scene interface {
	node.Node

	// Active reports whether the scene is rendered.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive toggles whether the scene is rendered.
	//
	// Parameters:
	//   - active: the new state
	SetActive(active bool)

	// Background returns the clear color as linear RGB.
	//
	// Returns:
	//   - [3]float32: the background color
	Background() [3]float32

	// BackgroundHex returns the clear color as a 0xRRGGBB value.
	//
	// Returns:
	//   - uint32: the packed background color
	BackgroundHex() uint32

	// SetBackground sets the clear color from a 0xRRGGBB value.
	//
	// Parameters:
	//   - hex: the packed color
	SetBackground(hex uint32)

	// BackgroundBlurriness returns the blur applied to an environment background in [0, 1].
	//
	// Returns:
	//   - float32: the blurriness
	BackgroundBlurriness() float32

	// SetBackgroundBlurriness sets the background blur, clamped to [0, 1].
	//
	// Parameters:
	//   - blurriness: the new blurriness
	SetBackgroundBlurriness(blurriness float32)

	// Meshes collects every visible mesh in the graph. Invisible nodes hide their subtree.
	//
	// Returns:
	//   - []mesh.Mesh: the visible meshes in traversal order
	Meshes() []mesh.Mesh

	// Lights collects every enabled, visible light in the graph.
	//
	// Returns:
	//   - []light.Light: the lights in traversal order
	Lights() []light.Light

	// AmbientColor sums color times intensity over the enabled ambient lights.
	//
	// Returns:
	//   - [3]float32: the ambient term
	AmbientColor() [3]float32

	// Count returns the number of nodes below the scene root.
	//
	// Returns:
	//   - int: the descendant count
	Count() int
}

type scene struct {
	*node.Object

	mu *sync.RWMutex

	active               bool
	background           [3]float32
	backgroundBlurriness float32
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates an empty active scene with a white background.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:         &sync.RWMutex{},
		active:     true,
		background: [3]float32{1, 1, 1},
	}
	s.Object = node.NewObject(s, "Scene")
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Background() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

func (s *scene) BackgroundHex() uint32 {
	return common.RGBToHex(s.Background())
}

func (s *scene) SetBackground(hex uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = common.HexToRGB(hex)
}

func (s *scene) BackgroundBlurriness() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backgroundBlurriness
}

func (s *scene) SetBackgroundBlurriness(blurriness float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backgroundBlurriness = common.Clamp(blurriness, 0, 1)
}

func (s *scene) Meshes() []mesh.Mesh {
	var out []mesh.Mesh
	s.Traverse(func(n node.Node) bool {
		if !n.Visible() {
			return false
		}
		if m, ok := n.(mesh.Mesh); ok {
			out = append(out, m)
		}
		return true
	})
	return out
}

func (s *scene) Lights() []light.Light {
	var out []light.Light
	s.Traverse(func(n node.Node) bool {
		if !n.Visible() {
			return false
		}
		if l, ok := n.(light.Light); ok && l.Enabled() {
			out = append(out, l)
		}
		return true
	})
	return out
}

func (s *scene) AmbientColor() [3]float32 {
	var ambient [3]float32
	for _, l := range s.Lights() {
		if l.Type() != light.LightTypeAmbient {
			continue
		}
		c := l.Color()
		k := l.Intensity()
		ambient[0] += c[0] * k
		ambient[1] += c[1] * k
		ambient[2] += c[2] * k
	}
	return ambient
}

func (s *scene) Count() int {
	count := -1
	s.Traverse(func(node.Node) bool {
		count++
		return true
	})
	return count
}
