package animation

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-build/engine/node"
	"go.uber.org/zap"
)

// Mixer plays clips against the node graph rooted at one node.
// Actions are created through ClipAction; Update advances every running action
// and writes the sampled values onto the bound nodes.
type Mixer struct {
	mu *sync.Mutex

	name      string
	root      node.Node
	time      float32
	timeScale float32
	actions   []*Action

	logger *zap.Logger
}

// NewMixer creates a mixer for the graph rooted at root.
//
// Parameters:
//   - root: the node whose subtree the mixer animates
//   - options: functional options
//
// Returns:
//   - *Mixer: the mixer
func NewMixer(root node.Node, options ...MixerOption) *Mixer {
	m := &Mixer{
		mu:        &sync.Mutex{},
		root:      root,
		timeScale: 1,
		logger:    zap.NewNop(),
	}
	if root != nil {
		m.name = root.Name()
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Name returns the mixer name.
func (m *Mixer) Name() string {
	return m.name
}

// Root returns the node the mixer animates.
func (m *Mixer) Root() node.Node {
	return m.root
}

// Time returns the total scaled time the mixer has advanced, in seconds.
func (m *Mixer) Time() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.time
}

// TimeScale returns the global speed multiplier.
func (m *Mixer) TimeScale() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timeScale
}

// SetTimeScale sets the global speed multiplier applied to every action.
//
// Parameters:
//   - scale: the multiplier
func (m *Mixer) SetTimeScale(scale float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeScale = scale
}

// ClipAction returns the action playing clip on this mixer, creating it on first use.
// Tracks whose node or property cannot be resolved are logged and skipped.
//
// Parameters:
//   - clip: the clip to play
//
// Returns:
//   - *Action: the action, or nil for a nil clip
func (m *Mixer) ClipAction(clip *Clip) *Action {
	if clip == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.actions {
		if a.clip == clip {
			return a
		}
	}

	a := newAction(m, clip)
	if m.root != nil {
		for _, track := range clip.tracks {
			b, err := bind(m.root, track)
			if err != nil {
				m.logger.Warn("skipping unbound track",
					zap.String("mixer", m.name),
					zap.String("clip", clip.name),
					zap.String("track", track.Name()),
					zap.Error(err))
				continue
			}
			a.bindings = append(a.bindings, b)
		}
	}
	m.actions = append(m.actions, a)
	return a
}

// ExistingAction returns the action for the clip with the given name, or nil.
//
// Parameters:
//   - clipName: the clip name
//
// Returns:
//   - *Action: the action, or nil
func (m *Mixer) ExistingAction(clipName string) *Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.actions {
		if a.clip.name == clipName {
			return a
		}
	}
	return nil
}

// Actions returns the mixer's actions in creation order.
func (m *Mixer) Actions() []*Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Action(nil), m.actions...)
}

// StopAllAction stops every action on the mixer.
func (m *Mixer) StopAllAction() {
	for _, a := range m.Actions() {
		a.Stop()
	}
}

// Update advances the mixer and every running action by delta seconds and applies
// the sampled values to the bound nodes.
//
// Parameters:
//   - delta: elapsed time in seconds
func (m *Mixer) Update(delta float32) {
	m.mu.Lock()
	scaled := delta * m.timeScale
	m.time += scaled
	actions := append([]*Action(nil), m.actions...)
	m.mu.Unlock()

	for _, a := range actions {
		a.update(scaled)
	}
}
