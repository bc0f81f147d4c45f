// gltf_types.go holds the subset of the glTF 2.0 JSON schema the loader reads.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

import "encoding/json"

// gltfDocument is the root of a glTF JSON document.
type gltfDocument struct {
	Asset gltfAsset `json:"asset"`

	// Scene is the index of the default scene.
	Scene  *int        `json:"scene,omitempty"`
	Scenes []gltfScene `json:"scenes,omitempty"`
	Nodes  []gltfNode  `json:"nodes,omitempty"`
	Meshes []gltfMesh  `json:"meshes,omitempty"`

	Accessors   []gltfAccessor   `json:"accessors,omitempty"`
	BufferViews []gltfBufferView `json:"bufferViews,omitempty"`
	Buffers     []gltfBuffer     `json:"buffers,omitempty"`

	Materials  []gltfMaterial  `json:"materials,omitempty"`
	Animations []gltfAnimation `json:"animations,omitempty"`

	ExtensionsUsed     []string `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string `json:"extensionsRequired,omitempty"`
}

type gltfAsset struct {
	// Version must start with "2.".
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

// gltfNode carries either Matrix or TRS; Matrix wins when both are present.
type gltfNode struct {
	Name        string       `json:"name,omitempty"`
	Children    []int        `json:"children,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"`
	Translation *[3]float32  `json:"translation,omitempty"`
	Rotation    *[4]float32  `json:"rotation,omitempty"`
	Scale       *[3]float32  `json:"scale,omitempty"`
}

type gltfMesh struct {
	Name       string          `json:"name,omitempty"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfPrimitive struct {
	// Attributes maps semantics (POSITION, NORMAL, TEXCOORD_0, ...) to accessor indices.
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`

	// Mode defaults to triangles (4).
	Mode       *int                       `json:"mode,omitempty"`
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

const gltfPrimitiveModeTriangles = 4

// gltfDracoExtension is the KHR_draco_mesh_compression primitive payload.
type gltfDracoExtension struct {
	BufferView int            `json:"bufferView"`
	Attributes map[string]int `json:"attributes"`
}

type gltfAccessor struct {
	BufferView    *int   `json:"bufferView,omitempty"`
	ByteOffset    int    `json:"byteOffset,omitempty"`
	ComponentType int    `json:"componentType"`
	Normalized    bool   `json:"normalized,omitempty"`
	Count         int    `json:"count"`
	Type          string `json:"type"`

	Sparse *struct {
		Count int `json:"count"`
	} `json:"sparse,omitempty"`
}

const (
	gltfComponentTypeByte          = 5120
	gltfComponentTypeUnsignedByte  = 5121
	gltfComponentTypeShort         = 5122
	gltfComponentTypeUnsignedShort = 5123
	gltfComponentTypeUnsignedInt   = 5125
	gltfComponentTypeFloat         = 5126
)

const (
	gltfAccessorTypeScalar = "SCALAR"
	gltfAccessorTypeVec2   = "VEC2"
	gltfAccessorTypeVec3   = "VEC3"
	gltfAccessorTypeVec4   = "VEC4"
	gltfAccessorTypeMat4   = "MAT4"
)

type gltfBufferView struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset,omitempty"`
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride,omitempty"`
}

type gltfBuffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`

	// Data is filled in after parsing.
	Data []byte `json:"-"`
}

type gltfMaterial struct {
	Name                 string                    `json:"name,omitempty"`
	PbrMetallicRoughness *gltfPbrMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	EmissiveFactor       *[3]float32               `json:"emissiveFactor,omitempty"`

	// AlphaMode is OPAQUE (default), MASK or BLEND.
	AlphaMode   string `json:"alphaMode,omitempty"`
	DoubleSided bool   `json:"doubleSided,omitempty"`
}

type gltfPbrMetallicRoughness struct {
	BaseColorFactor *[4]float32 `json:"baseColorFactor,omitempty"`
	MetallicFactor  *float32    `json:"metallicFactor,omitempty"`
	RoughnessFactor *float32    `json:"roughnessFactor,omitempty"`
}

type gltfAnimation struct {
	Name     string            `json:"name,omitempty"`
	Channels []gltfAnimChannel `json:"channels"`
	Samplers []gltfAnimSampler `json:"samplers"`
}

type gltfAnimChannel struct {
	Sampler int `json:"sampler"`
	Target  struct {
		Node *int   `json:"node,omitempty"`
		Path string `json:"path"`
	} `json:"target"`
}

type gltfAnimSampler struct {
	Input  int `json:"input"`
	Output int `json:"output"`

	// Interpolation is LINEAR (default), STEP or CUBICSPLINE.
	Interpolation string `json:"interpolation,omitempty"`
}

const (
	gltfAnimPathTranslation = "translation"
	gltfAnimPathRotation    = "rotation"
	gltfAnimPathScale       = "scale"
)

const (
	gltfInterpolationStep        = "STEP"
	gltfInterpolationCubicSpline = "CUBICSPLINE"
)

type gltfGLBHeader struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

type gltfGLBChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32
}

const (
	gltfGLBMagic     = 0x46546C67 // "glTF"
	gltfGLBVersion   = 2
	gltfGLBChunkJSON = 0x4E4F534A // "JSON"
	gltfGLBChunkBIN  = 0x004E4942 // "BIN\0"
)
