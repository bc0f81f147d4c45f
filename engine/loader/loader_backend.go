package loader

import "io"

// loaderBackend parses one model file format into importedModel data.
type loaderBackend interface {
	// Load parses the file at path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *importedModel: the parsed model data
	//   - error: error if loading fails
	Load(path string) (*importedModel, error)

	// LoadReader parses a model from a stream. External buffers resolve against baseDir.
	//
	// Parameters:
	//   - r: the reader providing model data
	//   - isGLB: true for GLB binary data, false for glTF JSON
	//   - baseDir: directory for relative buffer URIs
	//
	// Returns:
	//   - *importedModel: the parsed model data
	//   - error: error if loading fails
	LoadReader(r io.Reader, isGLB bool, baseDir string) (*importedModel, error)
}
