package window

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeTracksPixelRatio(t *testing.T) {
	w := &engineWindow{mu: &sync.RWMutex{}, pixelRatio: 1}
	var got [2]int
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })

	w.resize(640, 480, 1280)

	width, height := w.Size()
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)
	assert.Equal(t, float32(2), w.PixelRatio())
	assert.Equal(t, [2]int{640, 480}, got)

	w.resize(0, 0, 0)
	assert.Equal(t, float32(2), w.PixelRatio())
}

func TestClosedWindow(t *testing.T) {
	w := &engineWindow{mu: &sync.RWMutex{}}
	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.ErrorIs(t, w.Close(), errWindowClosed)

	called := false
	assert.NoError(t, w.Run(context.Background(), func() bool { called = true; return true }))
	assert.False(t, called)
}
