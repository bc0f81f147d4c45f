package loader

import "go.uber.org/zap"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithLogger sets the logger for load failures and skipped content.
//
// Parameters:
//   - logger: the zap logger; nil is ignored
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(logger *zap.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithDracoDecoder registers the decoder for KHR_draco_mesh_compression primitives.
//
// Parameters:
//   - decoder: the Draco decoder
//
// Returns:
//   - LoaderBuilderOption: a function that applies the decoder option to a loader
func WithDracoDecoder(decoder DracoDecoder) LoaderBuilderOption {
	return func(l *loader) {
		l.draco = decoder
	}
}

// WithAssetRoot sets the directory relative model paths resolve against.
//
// Parameters:
//   - root: the asset directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the asset root option to a loader
func WithAssetRoot(root string) LoaderBuilderOption {
	return func(l *loader) {
		l.assetRoot = root
	}
}

// WithWorkers sets the maximum number of concurrent asynchronous loads.
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}
