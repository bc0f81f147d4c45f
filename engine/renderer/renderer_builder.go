package renderer

import "go.uber.org/zap"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend selects the backend implementation. Defaults to BackendTypeWGPU.
//
// Parameters:
//   - backendType: the backend to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backendType RendererBackendType) RendererBuilderOption {
	return func(r *renderer) {
		r.backendType = backendType
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// Higher values (MSAA8x, MSAA16x) are adapter-dependent and may not be supported
// by all hardware.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff, MSAA4x, MSAA8x, or MSAA16x)
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.sampleCount = count
	}
}

// WithAntialias enables 4x MSAA when true and disables multisampling when false.
//
// Parameters:
//   - antialias: the antialias flag
//
// Returns:
//   - RendererBuilderOption: a function that applies the antialias option to a renderer
func WithAntialias(antialias bool) RendererBuilderOption {
	return func(r *renderer) {
		if antialias {
			r.sampleCount = MSAA4x
		} else {
			r.sampleCount = MSAAOff
		}
	}
}

// WithAlpha composites the surface with premultiplied alpha when the adapter supports it.
//
// Parameters:
//   - alpha: the alpha flag
//
// Returns:
//   - RendererBuilderOption: a function that applies the alpha option to a renderer
func WithAlpha(alpha bool) RendererBuilderOption {
	return func(r *renderer) {
		r.alpha = alpha
	}
}

// WithForceSoftwareRenderer requests the fallback (software) adapter.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceSoftwareAdapter = force
	}
}

// WithSize overrides the logical size taken from the surface.
//
// Parameters:
//   - width, height: the logical size in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width, r.height = width, height
	}
}

// WithPixelRatio overrides the pixel ratio taken from the surface. Values <= 0 are ignored.
//
// Parameters:
//   - ratio: physical pixels per logical pixel
//
// Returns:
//   - RendererBuilderOption: a function that applies the pixel ratio option to a renderer
func WithPixelRatio(ratio float32) RendererBuilderOption {
	return func(r *renderer) {
		if ratio > 0 {
			r.pixelRatio = ratio
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
