package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode // defaults to PresentModeFifo (VSync)
	sampleCount MSAASampleCount
	alpha       bool

	// Frame state between BeginFrame and Present.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend opens an instance, adapter and device for the given surface.
// The calling goroutine is locked to its OS thread, as the surface requires.
//
// Parameters:
//   - surfaceDescriptor: the platform surface to present to
//   - forceFallbackAdapter: true to request the software adapter
//   - sampleCount: the MSAA sample count
//   - alpha: true to composite the surface with premultiplied alpha when supported
//
// Returns:
//   - *wgpuRendererBackendImpl: the backend
//   - error: an error if no adapter or device is available
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount, alpha bool) (*wgpuRendererBackendImpl, error) {
	if surfaceDescriptor == nil {
		return nil, ErrNoSurface
	}
	runtime.LockOSThread()

	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		alpha:       alpha,
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		return errors.New("surface reports no supported formats")
	}
	b.surfaceFormat = capabilities.Formats[0]

	alphaMode := capabilities.AlphaModes[0]
	if b.alpha {
		for _, m := range capabilities.AlphaModes {
			if m == wgpu.CompositeAlphaModePremultiplied {
				alphaMode = m
				break
			}
		}
	}

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   alphaMode,
	})

	b.releaseMSAALocked()
	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The pass draws into the MSAA texture and resolves into the swapchain view.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("create msaa texture: %w", err)
		}
		view, err := msaaTexture.CreateView(nil)
		if err != nil {
			msaaTexture.Release()
			return fmt.Errorf("create msaa view: %w", err)
		}
		b.msaaTexture = msaaTexture
		b.msaaTextureView = view
	}

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: storeOp,
			},
		},
	}
	return nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame(clear [4]float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.renderPassDescriptor == nil {
		return errors.New("surface not configured")
	}
	// Acquiring a second image before presenting the first is a wgpu validation error.
	if b.frameSurface != nil {
		return errFrameOpen
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	attachment := &b.renderPassDescriptor.ColorAttachments[0]
	if b.sampleCount > 1 {
		attachment.ResolveTarget = view
	} else {
		attachment.View = view
	}
	attachment.ClearValue = wgpu.Color{R: clear[0], G: clear[1], B: clear[2], A: clear[3]}

	b.frameEncoder = encoder
	b.framePass = encoder.BeginRenderPass(b.renderPassDescriptor)
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return errors.New("no frame to end")
	}
	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		b.releaseFrameLocked()
		return fmt.Errorf("finish frame: %w", err)
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	return nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()
	b.releaseFrameLocked()
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseFrameLocked()
	b.releaseMSAALocked()
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func (b *wgpuRendererBackendImpl) releaseFrameLocked() {
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuRendererBackendImpl) releaseMSAALocked() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
}
