package window

import (
	"context"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a platform window that hosts a renderer surface, delivers input and
// drives the per-frame callback.
type Window interface {
	// SetResizeCallback registers a function called with the new logical size.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback registers a function called with the vertical scroll delta.
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback registers a function called on key press and repeat.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback registers a function called on key release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseButtonCallback registers a function called when a mouse button changes state.
	//
	// Parameters:
	//   - callback: receives the button (common.MouseButton*), its new state and the cursor position
	SetMouseButtonCallback(callback func(button int, pressed bool, x, y float32))

	// SetMouseMoveCallback registers a function called with the cursor position in
	// logical pixels relative to the top-left of the content area.
	SetMouseMoveCallback(callback func(x, y float32))

	// SurfaceDescriptor returns the wgpu surface handle for the window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open.
	IsRunning() bool

	// Close destroys the window.
	//
	// Returns:
	//   - error: an error if the window was never opened
	Close() error

	// Run polls events and calls frame once per iteration until the window closes,
	// ctx is cancelled or frame returns false. Must be called from the goroutine
	// that created the window.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//   - frame: the per-frame callback; return false to stop
	//
	// Returns:
	//   - error: ctx.Err() if the loop ended by cancellation, nil otherwise
	Run(ctx context.Context, frame func() bool) error

	// Width returns the content width in logical pixels.
	Width() int

	// Height returns the content height in logical pixels.
	Height() int

	// Size returns the content size in logical pixels.
	Size() (width, height int)

	// PixelRatio returns framebuffer pixels per logical pixel.
	PixelRatio() float32
}

type engineWindow struct {
	mu *sync.RWMutex

	title string

	minWidth  int
	minHeight int
	maxWidth  int
	maxHeight int

	width      int
	height     int
	pixelRatio float32

	internalWindow *glfwWindow

	onResize      func(width, height int)
	onScroll      func(delta float32)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseButton func(button int, pressed bool, x, y float32)
	onMouseMove   func(x, y float32)
}

var _ Window = &engineWindow{}

// NewWindow opens a platform window. The calling goroutine is locked to its OS thread.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window
//   - error: an error if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		mu:         &sync.RWMutex{},
		title:      "oxy-build",
		minWidth:   320,
		minHeight:  200,
		width:      1280,
		height:     720,
		pixelRatio: 1,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(button int, pressed bool, x, y float32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y float32)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMouseMove = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Run(ctx context.Context, frame func() bool) error {
	for w.IsRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !platformProcessMessages(w) {
			break
		}
		if !frame() {
			break
		}
		runtime.Gosched()
	}
	return nil
}

func (w *engineWindow) Width() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.height
}

func (w *engineWindow) Size() (int, int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height
}

func (w *engineWindow) PixelRatio() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pixelRatio
}

// resize records a new logical size and framebuffer width, then notifies the callback.
func (w *engineWindow) resize(width, height, fbWidth int) {
	w.mu.Lock()
	w.width, w.height = width, height
	if width > 0 && fbWidth > 0 {
		w.pixelRatio = float32(fbWidth) / float32(width)
	}
	cb := w.onResize
	w.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

func (w *engineWindow) callbacks() (onScroll func(float32), onKeyDown, onKeyUp func(uint32), onMouseButton func(int, bool, float32, float32), onMouseMove func(float32, float32)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.onScroll, w.onKeyDown, w.onKeyUp, w.onMouseButton, w.onMouseMove
}
