package geometry

// GeometryBuilderOption is a functional option for configuring a buffer geometry.
type GeometryBuilderOption func(*geometryImpl)

// WithNormals attaches per-vertex normals. Ignored when the count does not match the positions.
//
// Parameters:
//   - normals: one normal per vertex
//
// Returns:
//   - GeometryBuilderOption: a function that applies the normals
func WithNormals(normals [][3]float32) GeometryBuilderOption {
	return func(g *geometryImpl) {
		if len(normals) == len(g.positions) {
			g.normals = normals
		}
	}
}

// WithUVs attaches per-vertex texture coordinates. Ignored when the count does not match the positions.
//
// Parameters:
//   - uvs: one texture coordinate per vertex
//
// Returns:
//   - GeometryBuilderOption: a function that applies the texture coordinates
func WithUVs(uvs [][2]float32) GeometryBuilderOption {
	return func(g *geometryImpl) {
		if len(uvs) == len(g.positions) {
			g.uvs = uvs
		}
	}
}
