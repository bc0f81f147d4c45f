package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA     = 65  // A key (ASCII)
	KeyH     = 72  // H key (ASCII)
	KeyP     = 80  // P key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Mouse buttons as reported by the window layer.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)
