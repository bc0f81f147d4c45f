package mesh

// MeshBuilderOption is a function that configures a mesh during construction.
type MeshBuilderOption func(*meshImpl)

// WithName sets the node name of the mesh.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *meshImpl) {
		m.SetName(name)
	}
}

// WithPosition sets the local position of the mesh.
//
// Parameters:
//   - x, y, z: the translation components
//
// Returns:
//   - MeshBuilderOption: a function that applies the position option to a mesh
func WithPosition(x, y, z float32) MeshBuilderOption {
	return func(m *meshImpl) {
		m.SetPosition(x, y, z)
	}
}

// WithShadows toggles shadow casting and receiving.
//
// Parameters:
//   - cast: true to draw the mesh into shadow maps
//   - receive: true to shade the mesh with shadow maps
//
// Returns:
//   - MeshBuilderOption: a function that applies the shadow options to a mesh
func WithShadows(cast, receive bool) MeshBuilderOption {
	return func(m *meshImpl) {
		m.castShadow = cast
		m.receiveShadow = receive
	}
}
