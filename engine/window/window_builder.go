package window

// WindowBuilderOption is a functional option applied to a window before it opens.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title.
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial content size in logical pixels. Non-positive values are ignored.
//
// Parameters:
//   - width, height: the initial size
//
// Returns:
//   - WindowBuilderOption: the option
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithMinSize sets the smallest size the user can resize the window to.
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = width, height
	}
}

// WithMaxSize sets the largest size the user can resize the window to. Zero means unlimited.
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth, w.maxHeight = width, height
	}
}
