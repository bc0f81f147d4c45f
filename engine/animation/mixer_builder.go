package animation

import "go.uber.org/zap"

// MixerOption is a functional option for configuring a Mixer.
type MixerOption func(*Mixer)

// WithName overrides the mixer name, which defaults to the root node name.
//
// Parameters:
//   - name: the mixer name
//
// Returns:
//   - MixerOption: the option
func WithName(name string) MixerOption {
	return func(m *Mixer) {
		m.name = name
	}
}

// WithTimeScale sets the initial global speed multiplier.
//
// Parameters:
//   - scale: the multiplier
//
// Returns:
//   - MixerOption: the option
func WithTimeScale(scale float32) MixerOption {
	return func(m *Mixer) {
		m.timeScale = scale
	}
}

// WithLogger sets the logger used to report tracks that cannot be bound.
//
// Parameters:
//   - logger: the logger; nil keeps the no-op default
//
// Returns:
//   - MixerOption: the option
func WithLogger(logger *zap.Logger) MixerOption {
	return func(m *Mixer) {
		if logger != nil {
			m.logger = logger
		}
	}
}
