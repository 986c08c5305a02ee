// SPDX-License-Identifier: MIT

package nodes_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/nodes"
	"github.com/katalvlaran/voxgraph/resource"
)

const batch = 64

// run evaluates type id over the given inputs with baked params.
func run(t *testing.T, r *nodes.Registry, id nodes.TypeID, params any, in ...*nodes.Buffer) []*nodes.Buffer {
	t.Helper()
	nt := r.Get(id)
	require.Len(t, in, len(nt.Inputs))
	out := make([]*nodes.Buffer, len(nt.Outputs))
	for i := range out {
		out[i] = nodes.NewBuffer(in[0].Len())
	}
	nt.Process(&nodes.BufferContext{In: in, Out: out, Params: params})

	return out
}

// varying copies vs into a non-constant buffer.
func varying(vs []float32) *nodes.Buffer {
	b := nodes.NewBuffer(len(vs))
	copy(b.Data, vs)

	return b
}

func randomValues(rng *rand.Rand, n int, zeros bool) []float32 {
	vs := make([]float32, n)
	for i := range vs {
		vs[i] = rng.Float32()*20 - 10
		if zeros && i%5 == 0 {
			vs[i] = 0
		}
	}

	return vs
}

// TestBinop_ConstantPathsMatchGeneral checks that every binary kernel gives
// the same output whether an operand arrives as a constant buffer or as an
// array of the same repeated value.
func TestBinop_ConstantPathsMatchGeneral(t *testing.T) {
	r := nodes.NewRegistry()
	rng := rand.New(rand.NewSource(1))
	binaries := []nodes.TypeID{
		nodes.TypeAdd, nodes.TypeSubtract, nodes.TypeMultiply, nodes.TypeDivide,
		nodes.TypeMin, nodes.TypeMax, nodes.TypeStepify, nodes.TypeWrap, nodes.TypeSdfPlane,
	}
	for _, id := range binaries {
		name := r.Get(id).Name
		t.Run(name, func(t *testing.T) {
			for _, c := range []float32{0, 2.5, -3} {
				vs := randomValues(rng, batch, true)
				cs := make([]float32, batch)
				for i := range cs {
					cs[i] = c
				}

				general := run(t, r, id, nil, varying(cs), varying(vs))[0]
				left := run(t, r, id, nil, nodes.NewConstantBuffer(batch, c), varying(vs))[0]
				assert.Equal(t, general.Data, left.Data, "constant left operand %v", c)

				general = run(t, r, id, nil, varying(vs), varying(cs))[0]
				right := run(t, r, id, nil, varying(vs), nodes.NewConstantBuffer(batch, c))[0]
				assert.Equal(t, general.Data, right.Data, "constant right operand %v", c)

				halves := make([]float32, batch)
				for i := range halves {
					halves[i] = 1.5
				}
				general = run(t, r, id, nil, varying(cs), varying(halves))[0]
				both := run(t, r, id, nil, nodes.NewConstantBuffer(batch, c), nodes.NewConstantBuffer(batch, 1.5))[0]
				assert.True(t, both.Constant)
				assert.Equal(t, general.Data, both.Data, "both operands constant")
			}
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	r := nodes.NewRegistry()
	a := varying([]float32{1, -2, 0, 4})
	zeros := varying([]float32{0, 0, 0, 0})
	mixed := varying([]float32{0, 2, 0, -1})

	out := run(t, r, nodes.TypeDivide, nil, a, nodes.NewConstantBuffer(4, 0))[0]
	assert.Equal(t, []float32{0, 0, 0, 0}, out.Data)

	out = run(t, r, nodes.TypeDivide, nil, a, zeros)[0]
	assert.Equal(t, []float32{0, 0, 0, 0}, out.Data)

	out = run(t, r, nodes.TypeDivide, nil, a, mixed)[0]
	assert.Equal(t, []float32{0, -1, 0, -4}, out.Data)

	out = run(t, r, nodes.TypeDivide, nil, nodes.NewConstantBuffer(4, 3), mixed)[0]
	assert.Equal(t, []float32{0, 1.5, 0, -3}, out.Data)
}

func TestSelect_Paths(t *testing.T) {
	r := nodes.NewRegistry()
	a := varying([]float32{1, 2})
	b := varying([]float32{10, 20})
	th := nodes.NewConstantBuffer(2, 0.5)

	out := run(t, r, nodes.TypeSelect, nil, a, b, th, nodes.NewConstantBuffer(2, 0.2))[0]
	assert.Equal(t, a.Data, out.Data)

	out = run(t, r, nodes.TypeSelect, nil, a, b, th, nodes.NewConstantBuffer(2, 0.8))[0]
	assert.Equal(t, b.Data, out.Data)

	out = run(t, r, nodes.TypeSelect, nil, a, b, th, varying([]float32{0.1, 0.9}))[0]
	assert.Equal(t, []float32{1, 20}, out.Data)

	same := nodes.NewConstantBuffer(2, 7)
	out = run(t, r, nodes.TypeSelect, nil, same, nodes.NewConstantBuffer(2, 7), varying([]float32{0, 1}), varying([]float32{1, 0}))[0]
	assert.True(t, out.Constant)
	assert.Equal(t, []float32{7, 7}, out.Data)
}

func TestNormalize_ZeroVector(t *testing.T) {
	r := nodes.NewRegistry()
	out := run(t, r, nodes.TypeNormalize, nil,
		varying([]float32{0, 3}), varying([]float32{0, 0}), varying([]float32{0, 4}))
	assert.Equal(t, []float32{0, 0.6}, out[0].Data)
	assert.Equal(t, []float32{0, 0}, out[1].Data)
	assert.Equal(t, []float32{0, 0.8}, out[2].Data)
	assert.Equal(t, []float32{0, 5}, out[3].Data)
}

func TestSqrt_NegativeIsZero(t *testing.T) {
	r := nodes.NewRegistry()
	out := run(t, r, nodes.TypeSqrt, nil, varying([]float32{-4, 9}))[0]
	assert.Equal(t, []float32{0, 3}, out.Data)
}

func bake(t *testing.T, r *nodes.Registry, id nodes.TypeID, values ...any) (any, *nodes.BakeContext, error) {
	t.Helper()
	ctx := nodes.NewBakeContext(r.Get(id), values)
	p, err := r.Get(id).Bake(ctx)

	return p, ctx, err
}

func TestBake_ResourceErrors(t *testing.T) {
	r := nodes.NewRegistry()

	_, _, err := bake(t, r, nodes.TypeCurve)
	require.Error(t, err)
	assert.ErrorIs(t, err, nodes.ErrNilResource)
	var pe *nodes.ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "curve", pe.Param)

	_, _, err = bake(t, r, nodes.TypeImage, (*resource.Heightmap)(nil))
	assert.ErrorIs(t, err, nodes.ErrNilResource, "typed nil is still unset")

	_, _, err = bake(t, r, nodes.TypeNoise2D, resource.NewValueWarp(1, 1))
	assert.ErrorIs(t, err, nodes.ErrResourceKind)

	_, _, err = bake(t, r, nodes.TypeClamp, "low", 1)
	assert.ErrorIs(t, err, nodes.ErrParamType)
}

func TestBake_ImageOwnsGrid(t *testing.T) {
	r := nodes.NewRegistry()
	im, err := resource.NewHeightmap(2, 2, []float32{0, 1, 2, 3})
	require.NoError(t, err)

	p, ctx, err := bake(t, r, nodes.TypeImage, im, 1)
	require.NoError(t, err)
	require.Len(t, ctx.Owned(), 1)

	out := run(t, r, nodes.TypeImage, p, varying([]float32{0.5, 5}), varying([]float32{0, 1}))[0]
	assert.Equal(t, []float32{0.5, 3}, out.Data, "bilinear with wrap")

	for _, c := range ctx.Owned() {
		require.NoError(t, c.Close())
	}
}

func TestBake_RemapAndSmoothstep(t *testing.T) {
	r := nodes.NewRegistry()

	p, _, err := bake(t, r, nodes.TypeRemap, 0, 10, 100, 200)
	require.NoError(t, err)
	out := run(t, r, nodes.TypeRemap, p, varying([]float32{0, 5, 10}))[0]
	assert.Equal(t, []float32{100, 150, 200}, out.Data)

	p, _, err = bake(t, r, nodes.TypeSmoothstep, 2.0, 4.0)
	require.NoError(t, err)
	out = run(t, r, nodes.TypeSmoothstep, p, varying([]float32{1, 3, 5}))[0]
	assert.Equal(t, []float32{0, 0.5, 1}, out.Data, "edges are taken from params")

	p, _, err = bake(t, r, nodes.TypeRemap, 1, 1, 0, 1)
	require.NoError(t, err)
	out = run(t, r, nodes.TypeRemap, p, varying([]float32{1.5}))[0]
	assert.InDelta(t, 0.5*99999, out.Data[0], 1)
}
