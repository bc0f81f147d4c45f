package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/engine/animation"
)

type importedClip struct {
	name     string
	duration float32
	tracks   []importedTrack
}

type importedTrack struct {
	name      string
	trackType animation.TrackType
	times     []float32
	values    []float32
	discrete  bool
}

// gltfAnimationExtractor converts glTF animations into clip data whose track names
// address nodes by name: "<node>.position", "<node>.quaternion" and "<node>.scale".
type gltfAnimationExtractor struct {
	parser *gltfParser
}

func newGLTFAnimationExtractor(parser *gltfParser) *gltfAnimationExtractor {
	return &gltfAnimationExtractor{parser: parser}
}

// ExtractAll converts every animation in the document. Channels without a target node
// and morph-target weight channels are reported as warnings and skipped.
//
// Returns:
//   - []importedClip: one clip per glTF animation
//   - []string: warnings for skipped channels
//   - error: error if an accessor or sampler is malformed
func (e *gltfAnimationExtractor) ExtractAll() ([]importedClip, []string, error) {
	doc := e.parser.document
	var warnings []string

	clips := make([]importedClip, 0, len(doc.Animations))
	for ai := range doc.Animations {
		anim := &doc.Animations[ai]
		clip := importedClip{name: anim.Name}
		if clip.name == "" {
			clip.name = fmt.Sprintf("animation_%d", ai)
		}

		for ci := range anim.Channels {
			ch := &anim.Channels[ci]
			if ch.Target.Node == nil || *ch.Target.Node < 0 || *ch.Target.Node >= len(doc.Nodes) {
				warnings = append(warnings, fmt.Sprintf("%s channel %d: no target node", clip.name, ci))
				continue
			}

			var property string
			var trackType animation.TrackType
			switch ch.Target.Path {
			case gltfAnimPathTranslation:
				property, trackType = "position", animation.TrackTypeVector
			case gltfAnimPathRotation:
				property, trackType = "quaternion", animation.TrackTypeQuaternion
			case gltfAnimPathScale:
				property, trackType = "scale", animation.TrackTypeVector
			default:
				warnings = append(warnings, fmt.Sprintf("%s channel %d: unsupported path %q", clip.name, ci, ch.Target.Path))
				continue
			}

			if ch.Sampler < 0 || ch.Sampler >= len(anim.Samplers) {
				return nil, warnings, fmt.Errorf("animation %q channel %d: invalid sampler index %d", clip.name, ci, ch.Sampler)
			}
			track, err := e.extractTrack(&anim.Samplers[ch.Sampler], gltfNodeName(doc, *ch.Target.Node)+"."+property, trackType)
			if err != nil {
				return nil, warnings, fmt.Errorf("animation %q channel %d: %w", clip.name, ci, err)
			}
			if n := len(track.times); n > 0 && track.times[n-1] > clip.duration {
				clip.duration = track.times[n-1]
			}
			clip.tracks = append(clip.tracks, track)
		}
		clips = append(clips, clip)
	}
	return clips, warnings, nil
}

func (e *gltfAnimationExtractor) extractTrack(s *gltfAnimSampler, name string, trackType animation.TrackType) (importedTrack, error) {
	times, _, err := e.parser.readFloats(s.Input)
	if err != nil {
		return importedTrack{}, fmt.Errorf("failed to read times: %w", err)
	}
	values, size, err := e.parser.readFloats(s.Output)
	if err != nil {
		return importedTrack{}, fmt.Errorf("failed to read values: %w", err)
	}

	// Cubic-spline outputs store (in-tangent, value, out-tangent) per key; keep the value.
	if s.Interpolation == gltfInterpolationCubicSpline {
		keys := len(values) / (3 * size)
		flat := make([]float32, 0, keys*size)
		for k := 0; k < keys; k++ {
			start := (k*3 + 1) * size
			flat = append(flat, values[start:start+size]...)
		}
		values = flat
	}

	return importedTrack{
		name:      name,
		trackType: trackType,
		times:     times,
		values:    values,
		discrete:  s.Interpolation == gltfInterpolationStep,
	}, nil
}
