package builder

import (
	"time"

	"github.com/Carmen-Shannon/oxy-build/engine/loader"
	"github.com/Carmen-Shannon/oxy-build/engine/profiler"
	"go.uber.org/zap"
)

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger for the builder and the loader it creates. A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - BuilderOption: option function to apply
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithLoaderOptions adds options for the model loader created by the first LoadGLTF,
// such as loader.WithDracoDecoder or loader.WithAssetRoot.
//
// Parameters:
//   - options: loader options
//
// Returns:
//   - BuilderOption: option function to apply
func WithLoaderOptions(options ...loader.LoaderBuilderOption) BuilderOption {
	return func(b *Builder) {
		b.loaderOptions = append(b.loaderOptions, options...)
	}
}

// WithClock replaces the time source of the frame clock.
//
// Parameters:
//   - now: the time source
//
// Returns:
//   - BuilderOption: option function to apply
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// WithProfiler ticks p once per rendered frame.
func WithProfiler(p *profiler.Profiler) BuilderOption {
	return func(b *Builder) {
		b.profiler = p
	}
}
