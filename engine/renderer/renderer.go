package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-build/engine/camera"
	"github.com/Carmen-Shannon/oxy-build/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

var (
	// ErrNoSurface is returned when the wgpu backend is requested for a surface without a descriptor.
	ErrNoSurface = errors.New("surface has no wgpu descriptor")

	// ErrNothingToRender is returned by Render when the scene or camera is nil.
	ErrNothingToRender = errors.New("render requires a scene and a camera")
)

// Surface is the host container a renderer presents into, usually a window.
type Surface interface {
	// SurfaceDescriptor returns the platform surface handle, or nil for headless containers.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Width returns the container width in logical pixels.
	Width() int

	// Height returns the container height in logical pixels.
	Height() int

	// PixelRatio returns physical pixels per logical pixel.
	PixelRatio() float32
}

// Info reports what the last frames did.
type Info struct {
	// Frames is the number of frames presented.
	Frames uint64

	// Meshes is the number of visible meshes in the last rendered scene.
	Meshes int

	// Lights is the number of enabled lights in the last rendered scene.
	Lights int

	// ClearColor is the RGBA color the last frame was cleared to.
	ClearColor [4]float64
}

// Renderer draws a scene as seen by a camera onto its surface.
type Renderer interface {
	// Render draws one frame. Inactive scenes are skipped.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the viewpoint
	//
	// Returns:
	//   - error: ErrNothingToRender for a nil scene or camera, or a backend error
	Render(s scene.Scene, cam camera.Camera) error

	// SetSize resizes the drawing buffer to width x height logical pixels.
	//
	// Parameters:
	//   - width, height: the new logical size
	//
	// Returns:
	//   - error: an error if the surface cannot be reconfigured
	SetSize(width, height int) error

	// Size returns the drawing buffer size in logical pixels.
	//
	// Returns:
	//   - int: the width
	//   - int: the height
	Size() (width, height int)

	// SetPixelRatio sets physical pixels per logical pixel and reconfigures the surface.
	//
	// Parameters:
	//   - ratio: the pixel ratio; values <= 0 are ignored
	//
	// Returns:
	//   - error: an error if the surface cannot be reconfigured
	SetPixelRatio(ratio float32) error

	// PixelRatio returns physical pixels per logical pixel.
	PixelRatio() float32

	// Antialias reports whether multisampling is enabled.
	Antialias() bool

	// Alpha reports whether the surface is composited with alpha.
	Alpha() bool

	// BackendType returns the backend in use.
	BackendType() RendererBackendType

	// Info returns frame statistics.
	Info() Info

	// Release frees the backend. The renderer must not be used afterwards.
	Release()
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend     RendererBackend
	backendType RendererBackendType

	width, height int
	pixelRatio    float32

	pendingPresentMode   *PresentMode
	sampleCount          MSAASampleCount
	alpha                bool
	forceSoftwareAdapter bool

	info   Info
	logger *zap.Logger
}

var _ Renderer = &renderer{}

// NewRenderer creates a renderer sized to surface and configures its swapchain.
//
// Parameters:
//   - surface: the container to present into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: ErrNoSurface or a backend initialisation error
func NewRenderer(surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: BackendTypeWGPU,
		sampleCount: MSAAOff,
		pixelRatio:  1,
		logger:      zap.NewNop(),
	}
	if surface != nil {
		r.width, r.height = surface.Width(), surface.Height()
		if ratio := surface.PixelRatio(); ratio > 0 {
			r.pixelRatio = ratio
		}
	}
	for _, option := range options {
		option(r)
	}

	switch r.backendType {
	case BackendTypeHeadless:
		r.backend = newHeadlessRendererBackend()
	case BackendTypeWGPU:
		if surface == nil {
			return nil, ErrNoSurface
		}
		b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceSoftwareAdapter, r.sampleCount, r.alpha)
		if err != nil {
			return nil, err
		}
		r.backend = b
	default:
		return nil, fmt.Errorf("unknown renderer backend %d", int(r.backendType))
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	if err := r.configure(); err != nil {
		r.backend.Release()
		return nil, err
	}

	r.logger.Info("renderer ready",
		zap.Stringer("backend", r.backendType),
		zap.Int("width", r.width),
		zap.Int("height", r.height),
		zap.Float32("pixel_ratio", r.pixelRatio),
		zap.Uint32("msaa", uint32(r.sampleCount)))
	return r, nil
}

// configure pushes the physical size to the backend. Caller must not hold the mutex.
func (r *renderer) configure() error {
	w, h := r.physicalSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := r.backend.ConfigureSurface(w, h); err != nil {
		return fmt.Errorf("configure surface: %w", err)
	}
	return nil
}

func (r *renderer) physicalSize() (int, int) {
	return int(float32(r.width) * r.pixelRatio), int(float32(r.height) * r.pixelRatio)
}

func (r *renderer) Render(s scene.Scene, cam camera.Camera) error {
	if s == nil || cam == nil {
		return ErrNothingToRender
	}
	if !s.Active() {
		return nil
	}

	bg := s.Background()
	clear := [4]float64{float64(bg[0]), float64(bg[1]), float64(bg[2]), 1}
	meshes := s.Meshes()
	lights := s.Lights()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.BeginFrame(clear); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	if err := r.backend.EndFrame(); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	r.backend.Present()

	r.info.Frames++
	r.info.Meshes = len(meshes)
	r.info.Lights = len(lights)
	r.info.ClearColor = clear
	return nil
}

func (r *renderer) SetSize(width, height int) error {
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	return r.configure()
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPixelRatio(ratio float32) error {
	if ratio <= 0 {
		return nil
	}
	r.mu.Lock()
	r.pixelRatio = ratio
	r.mu.Unlock()
	return r.configure()
}

func (r *renderer) PixelRatio() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pixelRatio
}

func (r *renderer) Antialias() bool {
	return r.sampleCount > MSAAOff
}

func (r *renderer) Alpha() bool {
	return r.alpha
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Info() Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.info
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
