package animation

import "errors"

var (
	// ErrUnknownTrackType is returned when a track type name is not in the table.
	ErrUnknownTrackType = errors.New("unknown keyframe track type")

	// ErrInvalidTrack is returned when a keyframe track fails validation.
	ErrInvalidTrack = errors.New("invalid keyframe track")

	// ErrNodeNotFound is returned when a track names a node missing from the mixer root.
	ErrNodeNotFound = errors.New("animated node not found")

	// ErrUnknownProperty is returned when a track names a property that cannot be animated.
	ErrUnknownProperty = errors.New("unknown animated property")
)
