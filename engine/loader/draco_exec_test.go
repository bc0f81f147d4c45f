package loader

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJFanTriangulates(t *testing.T) {
	p, err := parseOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)

	assert.Len(t, p.Positions, 4)
	assert.Len(t, p.UVs, 4)
	assert.Len(t, p.Normals, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, p.Indices)
	assert.Equal(t, [3]float32{1, 1, 0}, p.Positions[2])
}

func TestParseOBJNegativeIndicesAndPositionsOnly(t *testing.T) {
	p, err := parseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, p.Indices)
	assert.Nil(t, p.UVs)
	assert.Nil(t, p.Normals)
}

func TestParseOBJErrors(t *testing.T) {
	_, err := parseOBJ(strings.NewReader("v 0 0 0\n"))
	assert.Error(t, err)

	_, err = parseOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)

	_, err = parseOBJ(strings.NewReader("v 0 zero 0\n"))
	assert.Error(t, err)
}

func TestExecDracoDecoder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script decoder")
	}
	dir := t.TempDir()
	fixture := filepath.Join(dir, "fixture.obj")
	require.NoError(t, os.WriteFile(fixture, []byte(quadOBJ), 0o644))

	// Stand-in for draco_decoder: copies the fixture to the -o argument.
	script := filepath.Join(dir, "draco_decoder")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ncp "+fixture+" \"$4\"\n"), 0o755))

	p, err := NewExecDracoDecoder(script).Decode([]byte{1, 2, 3}, map[string]int{"POSITION": 0})
	require.NoError(t, err)
	assert.Len(t, p.Indices, 6)

	failing := filepath.Join(dir, "broken_decoder")
	require.NoError(t, os.WriteFile(failing, []byte("#!/bin/sh\necho corrupt >&2\nexit 1\n"), 0o755))
	_, err = NewExecDracoDecoder(failing).Decode([]byte{1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}
