package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.x")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errInvalidBufferURI   = errors.New("invalid buffer URI")
	errBufferSizeMismatch = errors.New("buffer size mismatch")
)

// gltfParser decodes a glTF JSON or GLB document and reads typed accessor data from it.
type gltfParser struct {
	baseDir  string
	document *gltfDocument
	glbChunk []byte
}

// parseGLTFFile reads and parses the file at path. GLB is detected by extension or magic.
//
// Parameters:
//   - path: path to a .gltf or .glb file
//
// Returns:
//   - *gltfParser: the parser holding the loaded document
//   - error: error if the file cannot be read or parsed
func parseGLTFFile(path string) (*gltfParser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	isGLB := strings.EqualFold(filepath.Ext(path), ".glb") ||
		(len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == gltfGLBMagic)
	return parseGLTF(data, isGLB, filepath.Dir(path))
}

// parseGLTFReader parses a document from r. External buffer URIs are resolved against baseDir.
func parseGLTFReader(r io.Reader, isGLB bool, baseDir string) (*gltfParser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return parseGLTF(data, isGLB, baseDir)
}

func parseGLTF(data []byte, isGLB bool, baseDir string) (*gltfParser, error) {
	p := &gltfParser{baseDir: baseDir}
	jsonData := data
	if isGLB {
		var err error
		if jsonData, err = p.splitGLB(data); err != nil {
			return nil, err
		}
	}

	var doc gltfDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse glTF JSON: %w", err)
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, errInvalidGLTFVersion
	}
	if err := p.loadBuffers(&doc); err != nil {
		return nil, fmt.Errorf("failed to load buffers: %w", err)
	}
	p.document = &doc
	return p, nil
}

// splitGLB validates the GLB header, keeps the BIN chunk and returns the JSON chunk.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#glb-file-format-specification
func (p *gltfParser) splitGLB(data []byte) ([]byte, error) {
	if len(data) < 12 {
		return nil, errors.New("GLB file too small")
	}
	r := bytes.NewReader(data)

	var header gltfGLBHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read GLB header: %w", err)
	}
	if header.Magic != gltfGLBMagic {
		return nil, errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return nil, errInvalidGLBVersion
	}

	var jsonData []byte
	for {
		var chunk gltfGLBChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read chunk header: %w", err)
		}
		body := make([]byte, chunk.ChunkLength)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, fmt.Errorf("failed to read chunk data: %w", err)
		}
		switch chunk.ChunkType {
		case gltfGLBChunkJSON:
			jsonData = body
		case gltfGLBChunkBIN:
			p.glbChunk = body
		}
	}
	if jsonData == nil {
		return nil, errMissingJSONChunk
	}
	return jsonData, nil
}

func (p *gltfParser) loadBuffers(doc *gltfDocument) error {
	for i := range doc.Buffers {
		buf := &doc.Buffers[i]
		switch {
		case buf.URI == "" && i == 0 && p.glbChunk != nil:
			buf.Data = p.glbChunk
		case buf.URI == "":
			return fmt.Errorf("buffer %d has no URI and no GLB binary chunk", i)
		case strings.HasPrefix(buf.URI, "data:"):
			data, err := decodeDataURI(buf.URI)
			if err != nil {
				return fmt.Errorf("buffer %d: %w", i, err)
			}
			buf.Data = data
		default:
			data, err := os.ReadFile(filepath.Join(p.baseDir, buf.URI))
			if err != nil {
				return fmt.Errorf("buffer %d: failed to load %q: %w", i, buf.URI, err)
			}
			buf.Data = data
		}
		if len(buf.Data) < buf.ByteLength {
			return fmt.Errorf("buffer %d: %w", i, errBufferSizeMismatch)
		}
	}
	return nil
}

// decodeDataURI decodes data:[<mediatype>];base64,<data>.
func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, errInvalidBufferURI
	}
	if !strings.Contains(header, "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", header)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return data, nil
}

// bufferView returns the bytes covered by a buffer view.
func (p *gltfParser) bufferView(index int) ([]byte, error) {
	if index < 0 || index >= len(p.document.BufferViews) {
		return nil, fmt.Errorf("bufferView index %d out of range", index)
	}
	bv := &p.document.BufferViews[index]
	if bv.Buffer < 0 || bv.Buffer >= len(p.document.Buffers) {
		return nil, fmt.Errorf("bufferView %d: buffer index %d out of range", index, bv.Buffer)
	}
	data := p.document.Buffers[bv.Buffer].Data
	end := bv.ByteOffset + bv.ByteLength
	if bv.ByteOffset < 0 || end > len(data) {
		return nil, fmt.Errorf("bufferView %d: %w", index, errBufferSizeMismatch)
	}
	return data[bv.ByteOffset:end], nil
}

// readFloats reads an accessor as flattened float32 components. Integer components
// are converted, and normalized per the glTF rules when the accessor is normalized.
//
// Parameters:
//   - index: the accessor index
//
// Returns:
//   - []float32: count*components values
//   - int: the number of components per element
//   - error: error if the accessor cannot be read
func (p *gltfParser) readFloats(index int) ([]float32, int, error) {
	acc, raw, stride, err := p.accessorBytes(index)
	if err != nil {
		return nil, 0, err
	}
	n := componentCount(acc.Type)
	size := componentSize(acc.ComponentType)

	out := make([]float32, 0, acc.Count*n)
	for i := 0; i < acc.Count; i++ {
		elem := raw[i*stride:]
		for c := 0; c < n; c++ {
			out = append(out, readComponent(elem[c*size:], acc.ComponentType, acc.Normalized))
		}
	}
	return out, n, nil
}

// readIndices reads a SCALAR accessor of unsigned integers.
func (p *gltfParser) readIndices(index int) ([]uint32, error) {
	acc, raw, stride, err := p.accessorBytes(index)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltfAccessorTypeScalar {
		return nil, fmt.Errorf("index accessor is not SCALAR: type=%s", acc.Type)
	}

	out := make([]uint32, acc.Count)
	for i := range out {
		elem := raw[i*stride:]
		switch acc.ComponentType {
		case gltfComponentTypeUnsignedByte:
			out[i] = uint32(elem[0])
		case gltfComponentTypeUnsignedShort:
			out[i] = uint32(binary.LittleEndian.Uint16(elem))
		case gltfComponentTypeUnsignedInt:
			out[i] = binary.LittleEndian.Uint32(elem)
		default:
			return nil, fmt.Errorf("unsupported index component type: %d", acc.ComponentType)
		}
	}
	return out, nil
}

// accessorBytes returns the accessor, the bytes starting at its first element and the
// element stride, after checking the accessor fits in its buffer view.
func (p *gltfParser) accessorBytes(index int) (*gltfAccessor, []byte, int, error) {
	if index < 0 || index >= len(p.document.Accessors) {
		return nil, nil, 0, fmt.Errorf("accessor index %d out of range", index)
	}
	acc := &p.document.Accessors[index]
	if acc.Sparse != nil {
		return nil, nil, 0, errors.New("sparse accessors not supported")
	}
	if acc.BufferView == nil {
		return nil, nil, 0, fmt.Errorf("accessor %d has no bufferView", index)
	}

	size := componentSize(acc.ComponentType)
	n := componentCount(acc.Type)
	if size == 0 || n == 0 {
		return nil, nil, 0, fmt.Errorf("accessor %d: unsupported layout %s/%d", index, acc.Type, acc.ComponentType)
	}

	view, err := p.bufferView(*acc.BufferView)
	if err != nil {
		return nil, nil, 0, err
	}
	stride := size * n
	if bs := p.document.BufferViews[*acc.BufferView].ByteStride; bs != nil && *bs > 0 {
		stride = *bs
	}
	if acc.Count > 0 && acc.ByteOffset+(acc.Count-1)*stride+size*n > len(view) {
		return nil, nil, 0, fmt.Errorf("accessor %d: %w", index, errBufferSizeMismatch)
	}
	return acc, view[acc.ByteOffset:], stride, nil
}

func readComponent(b []byte, componentType int, normalized bool) float32 {
	switch componentType {
	case gltfComponentTypeFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case gltfComponentTypeByte:
		v := float32(int8(b[0]))
		if normalized {
			return max(v/127, -1)
		}
		return v
	case gltfComponentTypeUnsignedByte:
		v := float32(b[0])
		if normalized {
			return v / 255
		}
		return v
	case gltfComponentTypeShort:
		v := float32(int16(binary.LittleEndian.Uint16(b)))
		if normalized {
			return max(v/32767, -1)
		}
		return v
	case gltfComponentTypeUnsignedShort:
		v := float32(binary.LittleEndian.Uint16(b))
		if normalized {
			return v / 65535
		}
		return v
	case gltfComponentTypeUnsignedInt:
		return float32(binary.LittleEndian.Uint32(b))
	}
	return 0
}

func componentSize(componentType int) int {
	switch componentType {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte:
		return 1
	case gltfComponentTypeShort, gltfComponentTypeUnsignedShort:
		return 2
	case gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		return 4
	}
	return 0
}

func componentCount(accessorType string) int {
	switch accessorType {
	case gltfAccessorTypeScalar:
		return 1
	case gltfAccessorTypeVec2:
		return 2
	case gltfAccessorTypeVec3:
		return 3
	case gltfAccessorTypeVec4:
		return 4
	case gltfAccessorTypeMat4:
		return 16
	}
	return 0
}
