package engine

import (
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"go.uber.org/zap"
)

// LibraryBuilderOption is a functional option for configuring a Library.
type LibraryBuilderOption func(*library)

// WithLogger sets the logger handed to renderers and mixers. A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - LibraryBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) LibraryBuilderOption {
	return func(l *library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRendererOptions adds options applied to every renderer the library creates,
// for example renderer.WithBackend(renderer.BackendTypeHeadless).
//
// Parameters:
//   - options: renderer options
//
// Returns:
//   - LibraryBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) LibraryBuilderOption {
	return func(l *library) {
		l.rendererOptions = append(l.rendererOptions, options...)
	}
}
