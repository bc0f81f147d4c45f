package renderer

import (
	"errors"
	"sync"
)

var errFrameOpen = errors.New("previous frame not yet presented")

// headlessRendererBackend follows the wgpu frame protocol without a device.
type headlessRendererBackend struct {
	mu *sync.Mutex

	width, height int
	presentMode   PresentMode

	open      bool
	submitted bool
	presented uint64
	lastClear [4]float64
	released  bool
}

var _ RendererBackend = &headlessRendererBackend{}

func newHeadlessRendererBackend() *headlessRendererBackend {
	return &headlessRendererBackend{mu: &sync.Mutex{}}
}

func (b *headlessRendererBackend) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	return nil
}

func (b *headlessRendererBackend) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presentMode = mode
}

func (b *headlessRendererBackend) BeginFrame(clear [4]float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open || b.submitted {
		return errFrameOpen
	}
	b.open = true
	b.lastClear = clear
	return nil
}

func (b *headlessRendererBackend) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return errors.New("no frame to end")
	}
	b.open = false
	b.submitted = true
	return nil
}

func (b *headlessRendererBackend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.submitted {
		return
	}
	b.submitted = false
	b.presented++
}

func (b *headlessRendererBackend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.released = true
}
