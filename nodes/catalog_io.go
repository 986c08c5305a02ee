// SPDX-License-Identifier: MIT

package nodes

// inputTypes defines the graph sources and sinks. Inputs and outputs carry no
// kernels: the compiler binds them to coordinate, constant and output slots.
func inputTypes() []NodeType {
	return []NodeType{
		{
			ID:       TypeConstant,
			Name:     "Constant",
			Category: CategoryInput,
			Outputs:  []Port{{Name: "value"}},
			Params:   []Param{{Name: "value", Type: ParamReal}},
			Bake: func(ctx *BakeContext) (any, error) {
				return ctx.Float(0)
			},
		},
		{ID: TypeInputX, Name: "InputX", Category: CategoryInput, Outputs: []Port{{Name: "x"}}},
		{ID: TypeInputY, Name: "InputY", Category: CategoryInput, Outputs: []Port{{Name: "y"}}},
		{ID: TypeInputZ, Name: "InputZ", Category: CategoryInput, Outputs: []Port{{Name: "z"}}},
		{ID: TypeOutputSDF, Name: "OutputSDF", Category: CategoryOutput, Inputs: []Port{{Name: "sdf"}}},
		{
			ID:        TypeSdfPreview,
			Name:      "SdfPreview",
			Category:  CategoryDebug,
			Inputs:    []Port{{Name: "value"}},
			DebugOnly: true,
			Params: []Param{
				{Name: "min_value", Type: ParamReal, Default: -1},
				{Name: "max_value", Type: ParamReal, Default: 1},
			},
		},
	}
}
