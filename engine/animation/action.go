package animation

import (
	"sync"

	"github.com/chewxy/math32"
)

// LoopMode controls what an action does when it reaches the end of its clip.
type LoopMode int

const (
	// LoopRepeat restarts the clip from the beginning.
	LoopRepeat LoopMode = iota

	// LoopOnce plays the clip a single time.
	LoopOnce

	// LoopPingPong alternates between playing forward and backward.
	LoopPingPong
)

// Infinite repetitions for SetLoop.
const Infinite = -1

// Action schedules one clip on one mixer.
type Action struct {
	mu *sync.Mutex

	mixer    *Mixer
	clip     *Clip
	name     string
	bindings []*binding

	time              float32
	timeScale         float32
	loop              LoopMode
	repetitions       int
	loopCount         int
	running           bool
	paused            bool
	finished          bool
	clampWhenFinished bool
}

func newAction(m *Mixer, clip *Clip) *Action {
	return &Action{
		mu:          &sync.Mutex{},
		mixer:       m,
		clip:        clip,
		name:        clip.name,
		timeScale:   1,
		loop:        LoopRepeat,
		repetitions: Infinite,
	}
}

// Name returns the action name. Defaults to the clip name.
func (a *Action) Name() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.name
}

// SetName renames the action.
//
// Parameters:
//   - name: the new name
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetName(name string) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
	return a
}

// Clip returns the clip this action plays.
func (a *Action) Clip() *Clip {
	return a.clip
}

// Mixer returns the mixer that owns this action.
func (a *Action) Mixer() *Mixer {
	return a.mixer
}

// BoundTracks returns the number of tracks that resolved to a node property.
func (a *Action) BoundTracks() int {
	return len(a.bindings)
}

// Play starts the action. A finished action is restarted from the beginning.
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) Play() *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finished {
		a.resetLocked()
	}
	a.running = true
	return a
}

// Stop halts the action and rewinds it.
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) Stop() *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	a.resetLocked()
	return a
}

// Reset rewinds the action and clears its paused and finished state without stopping it.
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) Reset() *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.resetLocked()
	return a
}

func (a *Action) resetLocked() {
	a.time = 0
	a.loopCount = 0
	a.paused = false
	a.finished = false
}

// SetPaused freezes or resumes the action at its current time.
//
// Parameters:
//   - paused: true to freeze
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetPaused(paused bool) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paused = paused
	return a
}

// Paused reports whether the action is frozen.
func (a *Action) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Finished reports whether a bounded loop has completed.
func (a *Action) Finished() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finished
}

// IsRunning reports whether the action is playing and advancing.
func (a *Action) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running && !a.paused && !a.finished
}

// SetLoop sets the loop mode and number of repetitions (Infinite for no limit).
//
// Parameters:
//   - mode: the loop mode
//   - repetitions: the number of plays, or Infinite
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetLoop(mode LoopMode, repetitions int) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loop = mode
	a.repetitions = repetitions
	return a
}

// Loop returns the loop mode.
func (a *Action) Loop() LoopMode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loop
}

// SetClampWhenFinished keeps the last frame applied after a bounded loop ends.
// Otherwise the action stops running once finished.
//
// Parameters:
//   - clamp: true to hold the final pose
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetClampWhenFinished(clamp bool) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clampWhenFinished = clamp
	return a
}

// SetTimeScale sets the playback speed. Negative values play backward.
//
// Parameters:
//   - scale: the speed multiplier
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetTimeScale(scale float32) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.timeScale = scale
	return a
}

// TimeScale returns the playback speed.
func (a *Action) TimeScale() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timeScale
}

// SetTime jumps to a local time in seconds.
//
// Parameters:
//   - t: the new time
//
// Returns:
//   - *Action: the action, for chaining
func (a *Action) SetTime(t float32) *Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.time = t
	return a
}

// Time returns the local time in seconds.
func (a *Action) Time() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.time
}

// update advances local time by delta (already scaled by the mixer) and applies the pose.
func (a *Action) update(delta float32) {
	a.mu.Lock()
	if !a.running || a.paused || a.finished {
		a.mu.Unlock()
		return
	}

	sampleAt := a.advanceLocked(delta * a.timeScale)
	if a.finished && !a.clampWhenFinished {
		a.running = false
	}
	bindings := a.bindings
	a.mu.Unlock()

	for _, b := range bindings {
		b.apply(b.track.Sample(sampleAt))
	}
}

// advanceLocked moves the local time and returns the clip time to sample.
// Caller must hold the mutex.
func (a *Action) advanceLocked(dt float32) float32 {
	duration := a.clip.duration
	if duration <= 0 {
		a.time = 0
		return 0
	}

	t := a.time + dt
	if a.loop == LoopOnce {
		switch {
		case t >= duration:
			t = duration
			a.finished = true
		case t < 0:
			t = 0
			a.finished = true
		}
		a.time = t
		return t
	}

	if t >= duration || t < 0 {
		loops := math32.Floor(t / duration)
		t -= duration * loops
		a.loopCount += int(math32.Abs(loops))

		if a.repetitions >= 0 && a.loopCount >= a.repetitions {
			a.finished = true
			if dt > 0 {
				t = duration
			} else {
				t = 0
			}
			// Ping-pong ends on whichever edge the last pass reached.
			if a.loop == LoopPingPong && a.repetitions%2 == 0 {
				a.time = t
				return duration - t
			}
			a.time = t
			return t
		}
	}
	a.time = t

	if a.loop == LoopPingPong && a.loopCount%2 == 1 {
		return duration - t
	}
	return t
}
