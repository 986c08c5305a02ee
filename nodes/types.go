// SPDX-License-Identifier: MIT

package nodes

// TypeID identifies a node type. IDs are dense, starting at 0.
type TypeID int

// The catalog. The order is stable and matches Registry indices.
const (
	TypeConstant TypeID = iota
	TypeInputX
	TypeInputY
	TypeInputZ
	TypeOutputSDF
	TypeAdd
	TypeSubtract
	TypeMultiply
	TypeDivide
	TypeSin
	TypeFloor
	TypeAbs
	TypeSqrt
	TypeFract
	TypeStepify
	TypeWrap
	TypeMin
	TypeMax
	TypeDistance2D
	TypeDistance3D
	TypeClamp
	TypeMix
	TypeRemap
	TypeSmoothstep
	TypeCurve
	TypeSelect
	TypeNormalize
	TypeImage
	TypeNoise2D
	TypeNoise3D
	TypeNoiseGradient2D
	TypeNoiseGradient3D
	TypeSdfPlane
	TypeSdfBox
	TypeSdfSphere
	TypeSdfTorus
	TypeSdfSphereHeightmap
	TypeSdfSmoothUnion
	TypeSdfSmoothSubtract
	TypeSdfPreview

	typeCount
)

// Category groups node types for display.
type Category uint8

// Categories.
const (
	CategoryInput Category = iota
	CategoryOutput
	CategoryMath
	CategoryConvert
	CategoryGenerate
	CategorySdf
	CategoryDebug
)

var categoryLabels = [...]string{
	CategoryInput:    "Input",
	CategoryOutput:   "Output",
	CategoryMath:     "Math",
	CategoryConvert:  "Convert",
	CategoryGenerate: "Generate",
	CategorySdf:      "Sdf",
	CategoryDebug:    "Debug",
}

// CategoryLabel returns the display label of c, or "" for an unknown value.
func CategoryLabel(c Category) string {
	if int(c) < len(categoryLabels) {
		return categoryLabels[c]
	}

	return ""
}

// String implements fmt.Stringer.
func (c Category) String() string { return CategoryLabel(c) }

// Port is a named input or output. Default is used for unconnected inputs.
type Port struct {
	Name    string
	Default float32
}

// ParamType is the semantic type of a Param.
type ParamType uint8

// Param types.
const (
	ParamReal ParamType = iota
	ParamResource
)

// String implements fmt.Stringer.
func (t ParamType) String() string {
	if t == ParamResource {
		return "resource"
	}

	return "real"
}

// Resource kinds accepted by resource params.
const (
	KindCurve         = "curve"
	KindImage         = "image"
	KindNoise         = "noise"
	KindNoiseGradient = "noise-gradient"
)

// Param is a compile-time node parameter. Default is float32 for real params
// and nil for resource params.
type Param struct {
	Name         string
	Type         ParamType
	ResourceKind string
	Default      any
	Index        int
}

// BakeFunc validates a node's params and returns the value the kernels read.
type BakeFunc func(ctx *BakeContext) (any, error)

// ProcessFunc evaluates one batch.
type ProcessFunc func(ctx *BufferContext)

// RangeFunc bounds ProcessFunc over input intervals.
type RangeFunc func(ctx *RangeContext)

// NodeType describes one kind of node. It is immutable once its Registry
// is built.
type NodeType struct {
	ID        TypeID
	Name      string
	Category  Category
	Inputs    []Port
	Outputs   []Port
	Params    []Param
	DebugOnly bool

	Bake    BakeFunc
	Process ProcessFunc
	Range   RangeFunc

	inputIndex  map[string]int
	outputIndex map[string]int
	paramIndex  map[string]int
}
