package animation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/oxy-build/common"
)

// Interpolation selects how a track blends between keyframes.
type Interpolation int

const (
	// InterpolationLinear blends linearly between neighbouring keys (slerp for quaternions).
	InterpolationLinear Interpolation = iota

	// InterpolationDiscrete holds each key's value until the next key.
	InterpolationDiscrete
)

// KeyframeTrack is a timed sequence of values for one property of one node.
// The track name has the form "<node>.<property>", for example "box.position" or
// "hull.material.color".
type KeyframeTrack struct {
	name          string
	trackType     TrackType
	interpolation Interpolation

	times     []float32
	values    []float32
	bools     []bool
	strings   []string
	valueSize int
}

// KeyframeTrackOption configures a track during construction.
type KeyframeTrackOption func(*KeyframeTrack)

// WithInterpolation overrides the interpolation of a numeric track.
// Boolean and string tracks are always discrete.
//
// Parameters:
//   - interpolation: the interpolation mode
//
// Returns:
//   - KeyframeTrackOption: the option
func WithInterpolation(interpolation Interpolation) KeyframeTrackOption {
	return func(k *KeyframeTrack) {
		if !k.trackType.discrete() {
			k.interpolation = interpolation
		}
	}
}

// NewKeyframeTrack validates and creates a keyframe track.
//
// values holds the flattened key values. Numeric types accept []float32, []float64 or
// []int with len(values) a multiple of len(times); boolean tracks take []bool and string
// tracks []string with one entry per key. A []any, as decoded from YAML, is accepted
// when every element has the track's value type.
//
// Parameters:
//   - trackType: the kind of value animated
//   - name: the binding path "<node>.<property>"
//   - times: key times in seconds, non-decreasing
//   - values: the key values
//   - options: functional options
//
// Returns:
//   - *KeyframeTrack: the track
//   - error: ErrInvalidTrack or ErrUnknownTrackType describing the first problem found
func NewKeyframeTrack(trackType TrackType, name string, times []float32, values any, options ...KeyframeTrackOption) (*KeyframeTrack, error) {
	if _, ok := trackTypeNames[trackType]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrackType, int(trackType))
	}
	if nodeName, property := splitTrackName(name); nodeName == "" || property == "" {
		return nil, fmt.Errorf("%w: name %q is not of the form <node>.<property>", ErrInvalidTrack, name)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: %s has no keys", ErrInvalidTrack, name)
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, fmt.Errorf("%w: %s key %d at %v precedes previous key at %v", ErrInvalidTrack, name, i, times[i], times[i-1])
		}
	}

	k := &KeyframeTrack{
		name:      name,
		trackType: trackType,
		times:     append([]float32(nil), times...),
	}
	if trackType.discrete() {
		k.interpolation = InterpolationDiscrete
	}

	switch trackType {
	case TrackTypeBoolean:
		b, ok := elements[bool](values)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants []bool values, got %T", ErrInvalidTrack, name, values)
		}
		k.bools = append([]bool(nil), b...)
		k.valueSize = 1
		if len(b) != len(times) {
			return nil, fmt.Errorf("%w: %s has %d values for %d keys", ErrInvalidTrack, name, len(b), len(times))
		}
	case TrackTypeString:
		s, ok := elements[string](values)
		if !ok {
			return nil, fmt.Errorf("%w: %s wants []string values, got %T", ErrInvalidTrack, name, values)
		}
		k.strings = append([]string(nil), s...)
		k.valueSize = 1
		if len(s) != len(times) {
			return nil, fmt.Errorf("%w: %s has %d values for %d keys", ErrInvalidTrack, name, len(s), len(times))
		}
	default:
		floats, err := toFloats(values)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTrack, name, err)
		}
		if len(floats) == 0 || len(floats)%len(times) != 0 {
			return nil, fmt.Errorf("%w: %s has %d values for %d keys", ErrInvalidTrack, name, len(floats), len(times))
		}
		k.values = floats
		k.valueSize = len(floats) / len(times)
		if want := trackType.fixedValueSize(); want != 0 && k.valueSize != want {
			return nil, fmt.Errorf("%w: %s %s track needs %d values per key, got %d", ErrInvalidTrack, name, trackType, want, k.valueSize)
		}
	}

	for _, option := range options {
		option(k)
	}
	return k, nil
}

// Name returns the binding path "<node>.<property>".
func (k *KeyframeTrack) Name() string {
	return k.name
}

// NodeName returns the node part of the binding path.
func (k *KeyframeTrack) NodeName() string {
	n, _ := splitTrackName(k.name)
	return n
}

// Property returns the property part of the binding path.
func (k *KeyframeTrack) Property() string {
	_, p := splitTrackName(k.name)
	return p
}

// Type returns the kind of value animated.
func (k *KeyframeTrack) Type() TrackType {
	return k.trackType
}

// Interpolation returns the interpolation mode.
func (k *KeyframeTrack) Interpolation() Interpolation {
	return k.interpolation
}

// Times returns a copy of the key times.
func (k *KeyframeTrack) Times() []float32 {
	return append([]float32(nil), k.times...)
}

// ValueSize returns the number of values per key.
func (k *KeyframeTrack) ValueSize() int {
	return k.valueSize
}

// Duration returns the time of the last key.
func (k *KeyframeTrack) Duration() float32 {
	return k.times[len(k.times)-1]
}

// Sample evaluates the track at time t. Times before the first key clamp to the first
// value and times after the last key clamp to the last value.
//
// Parameters:
//   - t: the sample time in seconds
//
// Returns:
//   - any: []float32 for numeric types, bool for boolean tracks, string for string tracks
func (k *KeyframeTrack) Sample(t float32) any {
	switch k.trackType {
	case TrackTypeBoolean:
		return k.bools[k.keyAt(t)]
	case TrackTypeString:
		return k.strings[k.keyAt(t)]
	}
	return k.sampleFloats(t)
}

// keyAt returns the index of the last key at or before t, or 0 before the first key.
func (k *KeyframeTrack) keyAt(t float32) int {
	i := sort.Search(len(k.times), func(i int) bool { return k.times[i] > t })
	return max(i-1, 0)
}

func (k *KeyframeTrack) value(i int) []float32 {
	return k.values[i*k.valueSize : (i+1)*k.valueSize]
}

func (k *KeyframeTrack) sampleFloats(t float32) []float32 {
	out := make([]float32, k.valueSize)
	last := len(k.times) - 1

	if t <= k.times[0] {
		copy(out, k.value(0))
		return out
	}
	if t >= k.times[last] {
		copy(out, k.value(last))
		return out
	}

	i := k.keyAt(t)
	if k.interpolation == InterpolationDiscrete {
		copy(out, k.value(i))
		return out
	}

	t0, t1 := k.times[i], k.times[i+1]
	alpha := float32(0)
	if t1 > t0 {
		alpha = (t - t0) / (t1 - t0)
	}
	a, b := k.value(i), k.value(i+1)

	if k.trackType == TrackTypeQuaternion {
		q := common.SlerpQuat([4]float32(a), [4]float32(b), alpha)
		copy(out, q[:])
		return out
	}
	for j := range out {
		out[j] = a[j] + (b[j]-a[j])*alpha
	}
	return out
}

// splitTrackName splits "<node>.<property>" at the first dot. Property paths such as
// "material.color" keep their inner dots.
func splitTrackName(name string) (nodeName, property string) {
	nodeName, property, ok := strings.Cut(name, ".")
	if !ok {
		return "", ""
	}
	return nodeName, property
}

func toFloats(values any) ([]float32, error) {
	switch v := values.(type) {
	case []float32:
		return append([]float32(nil), v...), nil
	case []float64:
		out := make([]float32, len(v))
		for i, f := range v {
			out[i] = float32(f)
		}
		return out, nil
	case []int:
		out := make([]float32, len(v))
		for i, n := range v {
			out[i] = float32(n)
		}
		return out, nil
	case []any:
		out := make([]float32, len(v))
		for i, e := range v {
			switch n := e.(type) {
			case float64:
				out[i] = float32(n)
			case float32:
				out[i] = n
			case int:
				out[i] = float32(n)
			default:
				return nil, fmt.Errorf("value %d is %T, not a number", i, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value slice %T", values)
	}
}

// elements returns values as a []T, converting a []any element by element.
func elements[T any](values any) ([]T, bool) {
	switch v := values.(type) {
	case []T:
		return v, true
	case []any:
		out := make([]T, len(v))
		for i, e := range v {
			t, ok := e.(T)
			if !ok {
				return nil, false
			}
			out[i] = t
		}
		return out, true
	default:
		return nil, false
	}
}
