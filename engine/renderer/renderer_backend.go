package renderer

// RendererBackendType identifies the backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeHeadless selects a backend that records frames without touching a GPU.
	// Used by tests and by hosts that drive the loop from a ticker.
	BackendTypeHeadless
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	case BackendTypeHeadless:
		return "headless"
	default:
		return "unknown"
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. Selected by the antialias flag.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is the frame-level interface a Renderer drives.
// A frame is BeginFrame, EndFrame, Present, in that order.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and any attachments for the given pixel size.
	//
	// Parameters:
	//   - width, height: the surface size in physical pixels
	//
	// Returns:
	//   - error: an error if the surface cannot be configured
	ConfigureSurface(width, height int) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface image and opens a pass that clears it.
	//
	// Parameters:
	//   - clear: the RGBA clear color
	//
	// Returns:
	//   - error: an error if a frame is already open or the image cannot be acquired
	BeginFrame(clear [4]float64) error

	// EndFrame closes the pass and submits the recorded commands.
	//
	// Returns:
	//   - error: an error if the commands could not be submitted
	EndFrame() error

	// Present shows the submitted frame. A no-op if no frame is held.
	Present()

	// Release frees every GPU object held by the backend.
	Release()
}
