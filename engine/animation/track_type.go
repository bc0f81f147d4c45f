package animation

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TrackType identifies the kind of value a keyframe track animates.
type TrackType int

const (
	// TrackTypeNumber animates a single scalar.
	TrackTypeNumber TrackType = iota

	// TrackTypeVector animates a fixed-size float vector such as a position or scale.
	TrackTypeVector

	// TrackTypeQuaternion animates a rotation stored as (x, y, z, w). Interpolated by slerp.
	TrackTypeQuaternion

	// TrackTypeColor animates a linear RGB color.
	TrackTypeColor

	// TrackTypeBoolean animates an on/off flag. Always discrete.
	TrackTypeBoolean

	// TrackTypeString animates a string. Always discrete.
	TrackTypeString
)

// trackTypeNames is the closed table of track type names.
var trackTypeNames = map[TrackType]string{
	TrackTypeNumber:     "number",
	TrackTypeVector:     "vector",
	TrackTypeQuaternion: "quaternion",
	TrackTypeColor:      "color",
	TrackTypeBoolean:    "boolean",
	TrackTypeString:     "string",
}

func (t TrackType) String() string {
	if name, ok := trackTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TrackType(%d)", int(t))
}

// ParseTrackType resolves a track type by name. Matching is case-insensitive and accepts
// both the short name ("vector") and the keyframe track class name ("VectorKeyframeTrack").
//
// Parameters:
//   - name: the type name
//
// Returns:
//   - TrackType: the resolved type
//   - error: ErrUnknownTrackType if no type matches
func ParseTrackType(name string) (TrackType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "keyframetrack")
	for t, n := range trackTypeNames {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTrackType, name)
}

// MarshalYAML writes the track type as its short name.
func (t TrackType) MarshalYAML() (any, error) {
	if _, ok := trackTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrackType, int(t))
	}
	return t.String(), nil
}

// UnmarshalYAML reads a track type from its name.
func (t *TrackType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTrackType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// discrete reports whether values of this type can only be stepped, never blended.
func (t TrackType) discrete() bool {
	return t == TrackTypeBoolean || t == TrackTypeString
}

// fixedValueSize returns the number of floats per keyframe, or 0 when the size is
// taken from the data.
func (t TrackType) fixedValueSize() int {
	switch t {
	case TrackTypeNumber, TrackTypeBoolean, TrackTypeString:
		return 1
	case TrackTypeQuaternion:
		return 4
	case TrackTypeColor:
		return 3
	default:
		return 0
	}
}
