package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFileOutputRespectsLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "build.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	require.NoError(t, InitWithFileConfig("warn", cfg, false))
	t.Cleanup(func() { require.NoError(t, InitWithFileConfig("info", FileConfig{}, false)) })

	Info("hidden entry")
	Warn("visible entry")
	Loader().Error("named entry")
	Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden entry")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "visible entry")
	assert.Contains(t, out, "builder.loader")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestComponentLoggers(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "components.log")
	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	require.NoError(t, InitWithFileConfig("debug", cfg, false))
	t.Cleanup(func() { require.NoError(t, InitWithFileConfig("info", FileConfig{}, false)) })

	Engine().Debug("engine entry")
	Builder().Info("builder entry")
	Profiler().Info("profiler entry")
	Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], ComponentEngine)
	assert.Contains(t, lines[1], ComponentBuilder)
	assert.Contains(t, lines[2], ComponentProfiler)
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	l, err := New("debug", FileConfig{}, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("verbose", FileConfig{}, false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"INFO":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
