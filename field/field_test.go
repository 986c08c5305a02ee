// SPDX-License-Identifier: MIT

package field_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/chewxy/math32"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/field"
	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/nodes"
	"github.com/katalvlaran/voxgraph/program"
)

// sphere compiles sdf = |p| - radius.
func sphere(t *testing.T, radius float32) *program.Program {
	t.Helper()
	g := graph.New()
	s := g.AddNode(nodes.TypeSdfSphere)
	for i, id := range []nodes.TypeID{nodes.TypeInputX, nodes.TypeInputY, nodes.TypeInputZ} {
		require.NoError(t, g.Connect(g.AddNode(id), 0, s, i))
	}
	require.NoError(t, g.SetDefault(s, 3, radius))
	out := g.AddNode(nodes.TypeOutputSDF)
	require.NoError(t, g.Connect(s, 0, out, 0))

	p, err := program.Compile(nodes.NewRegistry(), g)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	return p
}

func TestNewGenerator(t *testing.T) {
	_, err := field.NewGenerator(nil)
	assert.ErrorIs(t, err, field.ErrNoOutput)

	gen, err := field.NewGenerator(sphere(t, 1), field.WithClip(-2))
	require.NoError(t, err)
	assert.Equal(t, float32(field.DefaultClip), gen.Clip())
}

func TestEmergeBlock_FarBlocksAreUniform(t *testing.T) {
	gen, err := field.NewGenerator(sphere(t, 20), field.WithClip(2))
	require.NoError(t, err)
	ctx := context.Background()

	air, err := gen.EmergeBlock(ctx, [3]int{100, 100, 100}, 8, 0)
	require.NoError(t, err)
	assert.True(t, air.Uniform)
	assert.Equal(t, float32(2), air.Value)
	assert.Empty(t, air.SDF)
	assert.Equal(t, float32(2), air.At(3, 4, 5))

	solid, err := gen.EmergeBlock(ctx, [3]int{-4, -4, -4}, 8, 0)
	require.NoError(t, err)
	assert.True(t, solid.Uniform)
	assert.Equal(t, float32(-2), solid.Value)
}

func TestEmergeBlock_MatchesDirectEvaluation(t *testing.T) {
	p := sphere(t, 20)
	const clip = 1.5
	for _, batch := range []int{1, 64, field.DefaultBatchSize} {
		gen, err := field.NewGenerator(p, field.WithClip(clip), field.WithBatchSize(batch), field.WithWorkers(3))
		require.NoError(t, err)

		b, err := gen.EmergeBlock(context.Background(), [3]int{14, -6, -6}, 12, 0)
		require.NoError(t, err)
		require.False(t, b.Uniform)
		require.Len(t, b.SDF, 12*12*12)

		for k := 0; k < b.Size; k++ {
			for j := 0; j < b.Size; j++ {
				for i := 0; i < b.Size; i++ {
					pos := b.Position(i, j, k)
					x, y, z := float32(pos[0]), float32(pos[1]), float32(pos[2])
					want := math32.Sqrt(x*x+y*y+z*z) - 20
					want = math32.Max(-clip, math32.Min(clip, want))
					require.InDelta(t, want, b.At(i, j, k), 1e-4, "voxel %v batch %d", pos, batch)
				}
			}
		}
	}
}

func TestEmergeBlock_LOD(t *testing.T) {
	gen, err := field.NewGenerator(sphere(t, 10))
	require.NoError(t, err)

	b, err := gen.EmergeBlock(context.Background(), [3]int{-16, -16, -16}, 16, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Step())
	assert.Equal(t, [3]int{-16 + 2*3, -16 + 2*4, -16 + 2*5}, b.Position(3, 4, 5))
	assert.Equal(t, float32(-1.5), b.At(8, 8, 8))
	assert.Equal(t, float32(1.5), b.At(0, 0, 0))
}

func TestEmergeBlock_Errors(t *testing.T) {
	gen, err := field.NewGenerator(sphere(t, 10))
	require.NoError(t, err)

	_, err = gen.EmergeBlock(context.Background(), [3]int{}, 0, 0)
	assert.ErrorIs(t, err, field.ErrBlockSize)
	_, err = gen.EmergeBlock(context.Background(), [3]int{}, 4, -1)
	assert.ErrorIs(t, err, field.ErrBlockSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.EmergeBlock(ctx, [3]int{8, -2, -2}, 4, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmergeBlocks(t *testing.T) {
	gen, err := field.NewGenerator(sphere(t, 10), field.WithWorkers(2))
	require.NoError(t, err)

	reqs := []field.Request{
		{Origin: [3]int{100, 0, 0}, Size: 4},
		{Origin: [3]int{8, -2, -2}, Size: 4},
		{Origin: [3]int{-2, -2, -2}, Size: 4},
	}
	blocks, err := gen.EmergeBlocks(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i, b := range blocks {
		assert.Equal(t, reqs[i].Origin, b.Origin)
	}
	assert.True(t, blocks[0].Uniform)
	assert.False(t, blocks[1].Uniform)
	assert.True(t, blocks[2].Uniform)

	_, err = gen.EmergeBlocks(context.Background(), append(reqs, field.Request{Size: -1}))
	assert.ErrorIs(t, err, field.ErrBlockSize)
}

func TestBlockCodec(t *testing.T) {
	gen, err := field.NewGenerator(sphere(t, 10))
	require.NoError(t, err)
	b, err := gen.EmergeBlock(context.Background(), [3]int{8, -2, -2}, 4, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, field.EncodeBlock(&buf, b))
	first := append([]byte(nil), buf.Bytes()...)

	got, err := field.DecodeBlock(&buf)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	// canonical: re-encoding yields the same bytes
	var again bytes.Buffer
	require.NoError(t, field.EncodeBlock(&again, got))
	assert.Equal(t, first, again.Bytes())
}

func TestDecodeBlock_Corrupt(t *testing.T) {
	bad := []*field.Block{
		{Size: 0},
		{Size: 2, SDF: []float32{1, 2, 3}},
		{Size: 1, Uniform: true, SDF: []float32{1}},
		{Size: 1, LOD: 40, SDF: []float32{1}},
	}
	for _, b := range bad {
		data, err := cbor.Marshal(b)
		require.NoError(t, err)
		_, err = field.DecodeBlock(bytes.NewReader(data))
		assert.ErrorIs(t, err, field.ErrCorruptBlock, "%+v", b)
	}

	_, err := field.DecodeBlock(bytes.NewReader([]byte{0xff}))
	assert.Error(t, err)
}
