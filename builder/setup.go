package builder

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-build/engine"
	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/renderer"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"go.uber.org/zap"
)

// axesHelperSize is the length of each axis drawn by InitHelper.
const axesHelperSize = 100

// defaultBackground replaces a zero SceneOptions.Background.
const defaultBackground = 0xffffff

// SetScene replaces the scene with a new empty one. A zero background is white.
//
// Parameters:
//   - options: background color and blur
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetScene(options SceneOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}

	background := options.Background
	if background == 0 {
		background = defaultBackground
	}
	b.scene = b.lib.Scene(
		scene.WithName("scene"),
		scene.WithBackground(background),
		scene.WithBackgroundBlurriness(options.BackgroundBlurriness),
	)
	b.logger.Debug("scene set", zap.Uint32("background", background))
	return b
}

// InitHelper adds an axes helper to the scene.
func (b *Builder) InitHelper() *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("InitHelper") {
		return b
	}

	b.scene.Add(b.lib.AxesHelper(axesHelperSize))
	return b
}

// SetRenderer stores the renderer returned by fn.
//
// Parameters:
//   - fn: builds the renderer from the library
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetRenderer(fn func(lib engine.Library) (renderer.Renderer, error)) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}
	if fn == nil {
		return b.fail("SetRenderer", errNil("SetRenderer"))
	}

	r, err := fn(b.lib)
	if err != nil {
		return b.fail("SetRenderer", fmt.Errorf("create renderer: %w", err))
	}
	if r == nil {
		return b.fail("SetRenderer", errNil("SetRenderer"))
	}
	b.renderer = r
	return b
}

// SetWebGPURenderer creates a renderer presenting into container, sized to the
// container and using its pixel ratio.
//
// Parameters:
//   - container: the host surface
//   - options: antialias and alpha settings
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetWebGPURenderer(container Container, options RendererOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b
	}
	if container == nil {
		return b.fail("SetWebGPURenderer", ErrMissingContainer)
	}

	r, err := b.lib.Renderer(container,
		renderer.WithAntialias(options.Antialias),
		renderer.WithAlpha(options.Alpha),
		renderer.WithSize(container.Width(), container.Height()),
		renderer.WithPixelRatio(container.PixelRatio()),
	)
	if err != nil {
		return b.fail("SetWebGPURenderer", fmt.Errorf("create renderer: %w", err))
	}
	b.container = container
	b.renderer = r
	b.logger.Info("renderer set",
		zap.Stringer("backend", r.BackendType()),
		zap.Bool("antialias", options.Antialias),
		zap.Bool("alpha", options.Alpha))
	return b
}

// SetCamera adds the camera returned by fn to the scene.
//
// Parameters:
//   - fn: builds the camera from the library
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetCamera(fn func(lib engine.Library) camera.Camera) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetCamera") {
		return b
	}
	if fn == nil {
		return b.fail("SetCamera", errNil("SetCamera"))
	}

	cam := fn(b.lib)
	if cam == nil {
		return b.fail("SetCamera", errNil("SetCamera"))
	}
	b.attachCamera(cam)
	return b
}

// SetPerspectiveCamera adds a perspective camera to the scene.
//
// Parameters:
//   - options: frustum, position and look-at point
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetPerspectiveCamera(options PerspectiveCameraOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetPerspectiveCamera") {
		return b
	}

	b.attachCamera(b.lib.PerspectiveCamera(
		camera.WithFov(options.Fov),
		camera.WithAspect(options.Aspect),
		camera.WithNear(options.Near),
		camera.WithFar(options.Far),
		camera.WithPosition(options.X, options.Y, options.Z),
		camera.WithTarget(options.TargetX, options.TargetY, options.TargetZ),
	))
	return b
}

// SetOrthographicCamera adds an orthographic camera to the scene.
//
// Parameters:
//   - options: view volume, position and look-at point
//
// Returns:
//   - *Builder: the builder
func (b *Builder) SetOrthographicCamera(options OrthographicCameraOptions) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil || !b.requireScene("SetOrthographicCamera") {
		return b
	}

	b.attachCamera(b.lib.OrthographicCamera(
		camera.WithBounds(options.Left, options.Right, options.Top, options.Bottom),
		camera.WithNear(options.Near),
		camera.WithFar(options.Far),
		camera.WithPosition(options.X, options.Y, options.Z),
		camera.WithTarget(options.TargetX, options.TargetY, options.TargetZ),
	))
	return b
}

// attachCamera replaces the current camera. Callers hold b.mu.
func (b *Builder) attachCamera(cam camera.Camera) {
	if b.camera != nil {
		b.scene.Remove(b.camera)
	}
	b.camera = cam
	b.scene.Add(cam)
	b.logger.Debug("camera set", zap.Stringer("type", cam.Type()))
}
