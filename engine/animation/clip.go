package animation

// Clip is a named, reusable set of keyframe tracks played together.
type Clip struct {
	name     string
	duration float32
	tracks   []*KeyframeTrack
}

// NewClip creates a clip. A negative duration is replaced by the time of the latest key
// across all tracks.
//
// Parameters:
//   - name: the clip name
//   - duration: the clip length in seconds, or a negative value to derive it
//   - tracks: the tracks played by the clip
//
// Returns:
//   - *Clip: the clip
func NewClip(name string, duration float32, tracks []*KeyframeTrack) *Clip {
	c := &Clip{
		name:     name,
		duration: duration,
		tracks:   append([]*KeyframeTrack(nil), tracks...),
	}
	if c.duration < 0 {
		c.duration = 0
		for _, t := range c.tracks {
			c.duration = max(c.duration, t.Duration())
		}
	}
	return c
}

// Name returns the clip name.
func (c *Clip) Name() string {
	return c.name
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float32 {
	return c.duration
}

// Tracks returns the clip's tracks.
func (c *Clip) Tracks() []*KeyframeTrack {
	return append([]*KeyframeTrack(nil), c.tracks...)
}
