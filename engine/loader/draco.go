package loader

// ExtensionDracoMeshCompression is the glTF extension name for Draco-compressed primitives.
const ExtensionDracoMeshCompression = "KHR_draco_mesh_compression"

// DracoPrimitive is the decoded vertex data of one Draco-compressed primitive.
type DracoPrimitive struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32

	// Indices is nil for point clouds and non-indexed triangle lists.
	Indices []uint32
}

// DracoDecoder decodes Draco-compressed primitive data. The loader has no built-in
// Draco codec; register one with WithDracoDecoder to load compressed assets.
type DracoDecoder interface {
	// Decode decompresses a primitive.
	//
	// Parameters:
	//   - data: the compressed bytes referenced by the extension's bufferView
	//   - attributes: semantic name (POSITION, NORMAL, TEXCOORD_0) to Draco attribute id
	//
	// Returns:
	//   - *DracoPrimitive: the decoded vertex data
	//   - error: error if decoding fails
	Decode(data []byte, attributes map[string]int) (*DracoPrimitive, error)
}

// DracoDecoderFunc adapts a function to the DracoDecoder interface.
type DracoDecoderFunc func(data []byte, attributes map[string]int) (*DracoPrimitive, error)

func (f DracoDecoderFunc) Decode(data []byte, attributes map[string]int) (*DracoPrimitive, error) {
	return f(data, attributes)
}
