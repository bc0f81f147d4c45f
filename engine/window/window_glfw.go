package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-build/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errWindowClosed = errors.New("window is not initialized")

type glfwWindow struct {
	window  *glfw.Window
	running bool
}

func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// The surface is driven by wgpu, not an OpenGL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	maxW, maxH := glfw.DontCare, glfw.DontCare
	if w.maxWidth > 0 {
		maxW = w.maxWidth
	}
	if w.maxHeight > 0 {
		maxH = w.maxHeight
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, maxW, maxH)

	gw := &glfwWindow{
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		_, onKeyDown, onKeyUp, _, _ := w.callbacks()
		switch action {
		case glfw.Press, glfw.Repeat:
			if onKeyDown != nil {
				onKeyDown(uint32(key))
			}
		case glfw.Release:
			if onKeyUp != nil {
				onKeyUp(uint32(key))
			}
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if onScroll, _, _, _, _ := w.callbacks(); onScroll != nil {
			onScroll(float32(yoff))
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		_, _, _, onMouseButton, _ := w.callbacks()
		if onMouseButton == nil {
			return
		}
		var b int
		switch button {
		case glfw.MouseButtonLeft:
			b = common.MouseButtonLeft
		case glfw.MouseButtonRight:
			b = common.MouseButtonRight
		case glfw.MouseButtonMiddle:
			b = common.MouseButtonMiddle
		default:
			return
		}
		xpos, ypos := win.GetCursorPos()
		onMouseButton(b, action == glfw.Press, float32(xpos), float32(ypos))
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if _, _, _, _, onMouseMove := w.callbacks(); onMouseMove != nil {
			onMouseMove(float32(xpos), float32(ypos))
		}
	})

	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		fbWidth, _ := win.GetFramebufferSize()
		w.resize(width, height, fbWidth)
	})

	width, height := win.GetSize()
	fbWidth, _ := win.GetFramebufferSize()
	w.resize(width, height, fbWidth)

	return nil
}

func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.internalWindow.window)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw := w.internalWindow
	if gw == nil {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

func platformCloseWindow(w *engineWindow) error {
	gw := w.internalWindow
	if gw == nil {
		return errWindowClosed
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
