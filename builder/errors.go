package builder

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-build/engine/loader"
)

var (
	// ErrMissingScene is returned by calls that need SetScene first.
	ErrMissingScene = errors.New("missing scene")

	// ErrMissingCamera is returned by calls that need a camera first.
	ErrMissingCamera = errors.New("missing camera")

	// ErrMissingRenderer is returned by calls that need a renderer first.
	ErrMissingRenderer = errors.New("missing renderer")

	// ErrMissingContainer is returned when a renderer is requested without a container.
	ErrMissingContainer = errors.New("missing container")

	// ErrMissingGeometry is returned by SetMesh when no geometry is staged.
	ErrMissingGeometry = errors.New("missing staged geometry")

	// ErrMissingMaterial is returned by SetMesh when no material is staged.
	ErrMissingMaterial = errors.New("missing staged material")

	// ErrEmptyMeshGroup is returned by AddMeshGroup when no meshes are buffered.
	ErrEmptyMeshGroup = errors.New("mesh group is empty")

	// ErrNodeNotFound is returned when a named node is not a direct child of the scene.
	ErrNodeNotFound = errors.New("node not found in scene")

	// ErrNilConstructor is returned when a construction callback is nil or returns nil.
	ErrNilConstructor = errors.New("constructor returned nothing")

	// ErrModelLoad rejects a failed LoadGLTF. The cause is logged, not attached.
	ErrModelLoad = loader.ErrModelLoad
)
