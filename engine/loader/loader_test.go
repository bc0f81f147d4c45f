package loader

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-build/engine/animation"
	"github.com/Carmen-Shannon/oxy-build/engine/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testBuffer lays out a triangle, its indices and two animation channels.
func testBuffer() []byte {
	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	w([]float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}) // 0: positions
	w([]uint16{0, 1, 2, 0})                    // 36: indices + pad
	w([]float32{0, 1})                         // 44: times
	w([]float32{0, 0, 0, 2, 0, 0})             // 52: translations
	w([]float32{0, 0, 0, 1, 0, 1, 0, 0})       // 76: rotations
	return buf.Bytes()
}

func testDocument(uri string) map[string]any {
	return map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"name": "testScene", "nodes": []int{0}}},
		"nodes": []any{
			map[string]any{"name": "box", "mesh": 0, "translation": []float32{1, 2, 3}, "children": []int{1}},
			map[string]any{},
		},
		"meshes": []any{map[string]any{"primitives": []any{map[string]any{
			"attributes": map[string]int{"POSITION": 0},
			"indices":    1,
			"material":   0,
		}}}},
		"materials": []any{map[string]any{
			"name":                 "red",
			"doubleSided":          true,
			"pbrMetallicRoughness": map[string]any{"baseColorFactor": []float32{1, 0, 0, 0.5}},
		}},
		"accessors": []any{
			map[string]any{"bufferView": 0, "componentType": gltfComponentTypeFloat, "count": 3, "type": "VEC3"},
			map[string]any{"bufferView": 1, "componentType": gltfComponentTypeUnsignedShort, "count": 3, "type": "SCALAR"},
			map[string]any{"bufferView": 2, "componentType": gltfComponentTypeFloat, "count": 2, "type": "SCALAR"},
			map[string]any{"bufferView": 3, "componentType": gltfComponentTypeFloat, "count": 2, "type": "VEC3"},
			map[string]any{"bufferView": 4, "componentType": gltfComponentTypeFloat, "count": 2, "type": "VEC4"},
		},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			map[string]any{"buffer": 0, "byteOffset": 36, "byteLength": 6},
			map[string]any{"buffer": 0, "byteOffset": 44, "byteLength": 8},
			map[string]any{"buffer": 0, "byteOffset": 52, "byteLength": 24},
			map[string]any{"buffer": 0, "byteOffset": 76, "byteLength": 32},
		},
		"buffers": []any{map[string]any{"uri": uri, "byteLength": 108}},
		"animations": []any{map[string]any{
			"name": "move",
			"channels": []any{
				map[string]any{"sampler": 0, "target": map[string]any{"node": 0, "path": "translation"}},
				map[string]any{"sampler": 1, "target": map[string]any{"node": 1, "path": "rotation"}},
				map[string]any{"sampler": 0, "target": map[string]any{"node": 0, "path": "weights"}},
			},
			"samplers": []any{
				map[string]any{"input": 2, "output": 3},
				map[string]any{"input": 2, "output": 4, "interpolation": "STEP"},
			},
		}},
	}
}

func writeGLTF(t *testing.T, doc map[string]any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "model.gltf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func dataURI() string {
	return "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(testBuffer())
}

func TestLoadBuildsNodeGraph(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	m, err := l.Load("", writeGLTF(t, testDocument(dataURI())))
	require.NoError(t, err)

	assert.Equal(t, "testScene", m.Name)
	assert.Equal(t, "testScene", m.Root.Name())
	require.Len(t, m.Root.Children(), 1)

	box, ok := m.Root.Children()[0].(mesh.Mesh)
	require.True(t, ok)
	assert.Equal(t, "box", box.Name())
	assert.Equal(t, [3]float32{1, 2, 3}, box.Position())
	assert.Equal(t, 1, box.Geometry().TriangleCount())
	assert.Equal(t, [3]float32{1, 0, 0}, box.Material().Color())
	assert.InDelta(t, 0.5, box.Material().Opacity(), 1e-6)
	assert.True(t, box.Material().Transparent())
	assert.True(t, box.Material().DoubleSided())
	assert.NotNil(t, box.Child("node_1"))
}

func TestLoadExtractsClips(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	m, err := l.Load("fox", writeGLTF(t, testDocument(dataURI())))
	require.NoError(t, err)
	assert.Equal(t, "fox", m.Name)
	assert.Equal(t, "fox", m.Mixer.Name())

	clip := m.Clip("move")
	require.NotNil(t, clip)
	assert.Equal(t, float32(1), clip.Duration())
	require.Len(t, clip.Tracks(), 2)
	assert.Equal(t, "box.position", clip.Tracks()[0].Name())
	assert.Equal(t, "node_1.quaternion", clip.Tracks()[1].Name())
	assert.Equal(t, animation.InterpolationDiscrete, clip.Tracks()[1].Interpolation())

	action := m.Mixer.ClipAction(clip)
	assert.Equal(t, 2, action.BoundTracks())
	action.Play()
	m.Mixer.Update(0.5)

	box := m.Root.Find("box")
	assert.InDelta(t, 1, box.Position()[0], 1e-5)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, m.Root.Find("node_1").Quaternion())
}

func TestLoadCachesParsedDocument(t *testing.T) {
	l := NewLoader()
	defer l.Close()
	path := writeGLTF(t, testDocument(dataURI()))

	assert.False(t, l.Cached(path))
	first, err := l.Load("a", path)
	require.NoError(t, err)
	assert.True(t, l.Cached(path))

	second, err := l.Load("b", path)
	require.NoError(t, err)
	assert.NotSame(t, first.Root, second.Root)
	assert.Equal(t, "b", second.Root.Name())
}

func TestLoadResolvesAgainstAssetRoot(t *testing.T) {
	path := writeGLTF(t, testDocument(dataURI()))
	l := NewLoader(WithAssetRoot(filepath.Dir(path)))
	defer l.Close()

	m, err := l.Load("", "model.gltf")
	require.NoError(t, err)
	assert.Equal(t, "testScene", m.Name)
}

func TestLoadExternalBuffer(t *testing.T) {
	path := writeGLTF(t, testDocument("model.bin"))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "model.bin"), testBuffer(), 0o644))

	l := NewLoader()
	defer l.Close()
	_, err := l.Load("", path)
	require.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	_, err := l.Load("", "model.obj")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Load("", filepath.Join(t.TempDir(), "missing.gltf"))
	assert.Error(t, err)

	doc := testDocument(dataURI())
	doc["asset"] = map[string]any{"version": "1.0"}
	_, err = l.Load("", writeGLTF(t, doc))
	assert.ErrorIs(t, err, errInvalidGLTFVersion)

	doc = testDocument(dataURI())
	doc["extensionsRequired"] = []string{"EXT_unknown"}
	_, err = l.Load("", writeGLTF(t, doc))
	assert.Error(t, err)
}

func dracoDocument() map[string]any {
	doc := testDocument(dataURI())
	doc["extensionsUsed"] = []string{ExtensionDracoMeshCompression}
	doc["extensionsRequired"] = []string{ExtensionDracoMeshCompression}
	doc["meshes"] = []any{map[string]any{"primitives": []any{map[string]any{
		"attributes": map[string]int{"POSITION": 0},
		"extensions": map[string]any{
			ExtensionDracoMeshCompression: map[string]any{"bufferView": 0, "attributes": map[string]int{"POSITION": 7}},
		},
	}}}}
	return doc
}

func TestLoadDracoRequiresDecoder(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	_, err := l.Load("", writeGLTF(t, dracoDocument()))
	assert.ErrorIs(t, err, ErrDracoDecoderMissing)
}

func TestLoadDracoUsesDecoder(t *testing.T) {
	var gotLen int
	var gotAttrs map[string]int
	decoder := DracoDecoderFunc(func(data []byte, attributes map[string]int) (*DracoPrimitive, error) {
		gotLen = len(data)
		gotAttrs = attributes
		return &DracoPrimitive{
			Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
			Indices:   []uint32{0, 1, 2, 2, 1, 3},
		}, nil
	})

	l := NewLoader(WithDracoDecoder(decoder))
	defer l.Close()
	m, err := l.Load("", writeGLTF(t, dracoDocument()))
	require.NoError(t, err)

	assert.Equal(t, 36, gotLen)
	assert.Equal(t, map[string]int{"POSITION": 7}, gotAttrs)
	box := m.Root.Find("box").(mesh.Mesh)
	assert.Equal(t, 2, box.Geometry().TriangleCount())
}

func TestLoadReaderGLB(t *testing.T) {
	doc := testDocument("")
	doc["buffers"] = []any{map[string]any{"byteLength": 108}}
	jsonData, err := json.Marshal(doc)
	require.NoError(t, err)
	for len(jsonData)%4 != 0 {
		jsonData = append(jsonData, ' ')
	}
	bin := testBuffer()

	var glb bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&glb, binary.LittleEndian, v)) }
	w(gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(12 + 8 + len(jsonData) + 8 + len(bin))})
	w(gltfGLBChunkHeader{ChunkLength: uint32(len(jsonData)), ChunkType: gltfGLBChunkJSON})
	glb.Write(jsonData)
	w(gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN})
	glb.Write(bin)

	l := NewLoader()
	defer l.Close()
	m, err := l.LoadReader("streamed", &glb, true)
	require.NoError(t, err)
	assert.Equal(t, "streamed", m.Name)
	assert.NotNil(t, m.Root.Find("box"))

	_, err = l.LoadReader("bad", bytes.NewReader([]byte("nope-nope-nope")), true)
	assert.ErrorIs(t, err, errInvalidGLBMagic)
}

func TestLoadAsyncResolves(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	var hooked *Model
	f := l.LoadAsync(context.Background(), "async", writeGLTF(t, testDocument(dataURI())), func(m *Model) error {
		hooked = m
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := f.Wait(ctx)
	require.NoError(t, err)
	assert.Same(t, m, hooked)
	assert.Equal(t, "async", m.Name)
	assert.NoError(t, f.Err())
}

func TestLoadAsyncRejectsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := NewLoader(WithLogger(zap.New(core)))
	defer l.Close()

	called := false
	f := l.LoadAsync(context.Background(), "broken", filepath.Join(t.TempDir(), "missing.gltf"), func(*Model) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := f.Wait(ctx)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrModelLoad)
	assert.False(t, called)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "model load failed", entry.Message)
	assert.Equal(t, "broken", entry.ContextMap()["name"])
}

func TestLoadAsyncHookErrorRejects(t *testing.T) {
	l := NewLoader()
	defer l.Close()

	f := l.LoadAsync(context.Background(), "x", writeGLTF(t, testDocument(dataURI())), func(*Model) error {
		return errors.New("attach failed")
	})
	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, ErrModelLoad)
}

func TestLoadAsyncAfterClose(t *testing.T) {
	l := NewLoader()
	l.Close()
	l.Close()

	_, err := l.LoadAsync(context.Background(), "x", "model.gltf", nil).Wait(context.Background())
	assert.ErrorIs(t, err, ErrLoaderClosed)
}

func TestFutureWaitAbandonedByContext(t *testing.T) {
	f := newFuture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, f.Err())

	f.settle(nil, ErrModelLoad)
	f.settle(&Model{}, nil)
	_, err = f.Wait(context.Background())
	assert.ErrorIs(t, err, ErrModelLoad)

	select {
	case <-Resolved(&Model{Name: "m"}).Done():
	default:
		t.Fatal("resolved future not settled")
	}
}
