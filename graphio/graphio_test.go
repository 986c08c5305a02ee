// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/graphio"
	"github.com/katalvlaran/voxgraph/nodes"
	"github.com/katalvlaran/voxgraph/program"
	"github.com/katalvlaran/voxgraph/resource"
)

const terrain = `
outputs = ["out"]

[[nodes]]
name = "px"
type = "InputX"

[[nodes]]
name = "py"
type = "InputY"

[[nodes]]
name = "pz"
type = "InputZ"

[[nodes]]
name = "ball"
type = "SdfSphere"
inputs = { x = "px", y = "py", z = "pz", radius = 20 }

[[nodes]]
name = "hills"
type = "Noise2D"
inputs = { x = "px", y = "pz" }
params = { noise = "terrain" }

[[nodes]]
name = "sum"
type = "Add"
inputs = { a = "ball.sdf", b = "hills" }

[[nodes]]
name = "out"
type = "OutputSDF"
inputs = { sdf = "sum" }

[noises.terrain]
seed = 7
period = 32.0
`

var (
	xs = []float32{0, 3, -12, 25, 7.5}
	ys = []float32{0, 19, 4, -2, 11}
	zs = []float32{0, -1, 16, 8, -30}
)

// evaluate builds f, compiles it and samples the fixed points.
func evaluate(t *testing.T, f *graphio.File, opts ...graphio.BuildOption) []float32 {
	t.Helper()
	reg := nodes.NewRegistry()
	g, err := f.Build(reg, opts...)
	require.NoError(t, err)
	p, err := program.Compile(reg, g)
	require.NoError(t, err)
	defer p.Close()

	out, err := p.EvaluateBuffers(xs, ys, zs)
	require.NoError(t, err)
	require.Len(t, out, 1)

	return out[0]
}

func TestDecode_BuildEvaluate(t *testing.T) {
	f, err := graphio.Decode([]byte(terrain))
	require.NoError(t, err)
	require.Len(t, f.Nodes, 7)

	noise := resource.NewValueNoise(7, resource.WithPeriod(32))
	got := evaluate(t, f)
	for i := range xs {
		want := math32.Sqrt(xs[i]*xs[i]+ys[i]*ys[i]+zs[i]*zs[i]) - 20 + noise.Noise2D(xs[i], zs[i])
		assert.InDelta(t, want, got[i], 1e-4, "point %d", i)
	}
}

func TestBuild_NodeIDsFollowFileOrder(t *testing.T) {
	f, err := graphio.Decode([]byte(terrain))
	require.NoError(t, err)
	g, err := f.Build(nodes.NewRegistry())
	require.NoError(t, err)

	for i, spec := range f.Nodes {
		n, ok := g.Node(graph.NodeID(i))
		require.True(t, ok)
		assert.Equal(t, spec.Name, n.Name)
	}
	assert.Equal(t, []graph.NodeID{6}, g.Outputs())
}

func TestCBOR_RoundTrip(t *testing.T) {
	f, err := graphio.Decode([]byte(terrain))
	require.NoError(t, err)
	want := evaluate(t, f)

	data, err := graphio.EncodeCBOR(f)
	require.NoError(t, err)
	again, err := graphio.EncodeCBOR(f)
	require.NoError(t, err)
	assert.Equal(t, data, again)

	back, err := graphio.DecodeCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, f.Noises, back.Noises)
	assert.Equal(t, want, evaluate(t, back))

	_, err = graphio.DecodeCBOR([]byte{0xff})
	assert.Error(t, err)
}

func TestTOML_RoundTrip(t *testing.T) {
	f, err := graphio.Decode([]byte(terrain))
	require.NoError(t, err)
	want := evaluate(t, f)

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, f))
	back, err := graphio.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, evaluate(t, back))
}

func TestBuild_CurveAndWarp(t *testing.T) {
	f := &graphio.File{
		Nodes: []graphio.NodeSpec{
			{Name: "px", Type: "InputX"},
			{Name: "py", Type: "InputY"},
			{Name: "warp", Type: "NoiseGradient2D", Inputs: map[string]any{"x": "px", "y": "py"}, Params: map[string]any{"noise": "w"}},
			{Name: "shape", Type: "Curve", Inputs: map[string]any{"x": 0.25}, Params: map[string]any{"curve": "ramp"}},
			{Name: "sum", Type: "Add", Inputs: map[string]any{"a": "warp.1", "b": "shape"}},
			{Name: "out", Type: "OutputSDF", Inputs: map[string]any{"sdf": "sum"}},
		},
		Curves: map[string]graphio.CurveSpec{
			"ramp": {Points: []resource.CurvePoint{{X: 1, Y: 2}, {X: 0, Y: 0}}, Resolution: 257},
		},
		Warps: map[string]graphio.WarpSpec{
			"w": {NoiseSpec: graphio.NoiseSpec{Seed: 3, Octaves: 2}, Amplitude: 4},
		},
	}

	warp := resource.NewValueWarp(3, 4, resource.WithOctaves(2))
	got := evaluate(t, f)
	for i := range xs {
		_, wy := warp.Warp2D(xs[i], ys[i])
		assert.InDelta(t, wy+0.5, got[i], 1e-4, "point %d", i)
	}
}

func TestBuild_WithResource(t *testing.T) {
	hm, err := resource.NewHeightmap(2, 1, []float32{0.25, 0.75})
	require.NoError(t, err)
	f := imageGraph("height")

	got := evaluate(t, f, graphio.WithResource("height", hm))
	assert.Equal(t, float32(0.25), got[0])
	assert.Equal(t, float32(0.75), got[1])

	f.Images = map[string]graphio.ImageSpec{"height": {Width: 2, Height: 1, Pixels: []float32{0.5, 1}}}
	got = evaluate(t, f)
	assert.Equal(t, float32(0.5), got[0])
	assert.Equal(t, float32(1), got[1])
}

func TestLoad_ImageFormats(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 0})
	gray.SetGray(1, 0, color.Gray{Y: 0xff})

	encoders := map[string]func(io.Writer, image.Image) error{
		"h.png":  png.Encode,
		"h.bmp":  bmp.Encode,
		"h.tiff": func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			var buf bytes.Buffer
			require.NoError(t, encode(&buf, gray))
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o600))

			var doc bytes.Buffer
			f := imageGraph("height")
			f.Images = map[string]graphio.ImageSpec{"height": {Path: name}}
			require.NoError(t, graphio.Encode(&doc, f))
			path := filepath.Join(dir, "graph.toml")
			require.NoError(t, os.WriteFile(path, doc.Bytes(), 0o600))

			loaded, err := graphio.Load(path)
			require.NoError(t, err)
			got := evaluate(t, loaded)
			assert.Equal(t, float32(0), got[0])
			assert.Equal(t, float32(1), got[1])
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := graphio.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("nodes = ["), 0o600))
	_, err = graphio.Load(path)
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	node := func(name, typ string, inputs, params map[string]any) graphio.NodeSpec {
		return graphio.NodeSpec{Name: name, Type: typ, Inputs: inputs, Params: params}
	}
	px := node("px", "InputX", nil, nil)

	cases := []struct {
		name string
		file *graphio.File
		want error
	}{
		{"unknown type", &graphio.File{Nodes: []graphio.NodeSpec{node("a", "Teapot", nil, nil)}}, graphio.ErrUnknownNodeType},
		{"duplicate name", &graphio.File{Nodes: []graphio.NodeSpec{px, px}}, graphio.ErrDuplicateNode},
		{"dotted name", &graphio.File{Nodes: []graphio.NodeSpec{node("a.b", "InputX", nil, nil)}}, graphio.ErrBadValue},
		{"unknown source", &graphio.File{Nodes: []graphio.NodeSpec{
			node("s", "Sqrt", map[string]any{"x": "nope"}, nil),
		}}, graphio.ErrUnknownNode},
		{"unknown input port", &graphio.File{Nodes: []graphio.NodeSpec{
			px, node("s", "Sqrt", map[string]any{"y": "px"}, nil),
		}}, graphio.ErrUnknownPort},
		{"unknown output port", &graphio.File{Nodes: []graphio.NodeSpec{
			px, node("s", "Sqrt", map[string]any{"x": "px.bogus"}, nil),
		}}, graphio.ErrUnknownPort},
		{"output index out of range", &graphio.File{Nodes: []graphio.NodeSpec{
			px, node("s", "Sqrt", map[string]any{"x": "px.1"}, nil),
		}}, graphio.ErrUnknownPort},
		{"bad literal", &graphio.File{Nodes: []graphio.NodeSpec{
			node("s", "Sqrt", map[string]any{"x": []int{1}}, nil),
		}}, graphio.ErrBadValue},
		{"unknown param", &graphio.File{Nodes: []graphio.NodeSpec{
			node("c", "Clamp", nil, map[string]any{"maximum": 2}),
		}}, graphio.ErrUnknownParam},
		{"real param given a name", &graphio.File{Nodes: []graphio.NodeSpec{
			node("c", "Clamp", nil, map[string]any{"max": "two"}),
		}}, graphio.ErrBadValue},
		{"resource param given a number", &graphio.File{Nodes: []graphio.NodeSpec{
			node("n", "Noise2D", nil, map[string]any{"noise": 4}),
		}}, graphio.ErrBadValue},
		{"unknown resource", &graphio.File{Nodes: []graphio.NodeSpec{
			node("n", "Noise2D", nil, map[string]any{"noise": "hills"}),
		}}, graphio.ErrUnknownResource},
		{"image without source", &graphio.File{
			Nodes:  []graphio.NodeSpec{node("i", "Image", nil, map[string]any{"image": "h"})},
			Images: map[string]graphio.ImageSpec{"h": {}},
		}, graphio.ErrBadValue},
		{"bad curve", &graphio.File{
			Nodes:  []graphio.NodeSpec{node("c", "Curve", nil, map[string]any{"curve": "r"})},
			Curves: map[string]graphio.CurveSpec{"r": {}},
		}, resource.ErrCurvePoints},
		{"bad inline image", &graphio.File{
			Nodes:  []graphio.NodeSpec{node("i", "Image", nil, map[string]any{"image": "h"})},
			Images: map[string]graphio.ImageSpec{"h": {Width: 3, Height: 1, Pixels: []float32{1}}},
		}, resource.ErrImageSize},
		{"unknown output", &graphio.File{Nodes: []graphio.NodeSpec{px}, Outputs: []string{"out"}}, graphio.ErrUnknownNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.file.Build(nodes.NewRegistry())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// imageGraph samples image resource name at (x, y).
func imageGraph(name string) *graphio.File {
	return &graphio.File{
		Nodes: []graphio.NodeSpec{
			{Name: "px", Type: "InputX"},
			{Name: "py", Type: "InputY"},
			{Name: "img", Type: "Image", Inputs: map[string]any{"x": "px", "y": "py"}, Params: map[string]any{"image": name}},
			{Name: "out", Type: "OutputSDF", Inputs: map[string]any{"sdf": "img"}},
		},
	}
}

func TestBuild_WithBaseDir(t *testing.T) {
	dir := t.TempDir()
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gray))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "h.png"), buf.Bytes(), 0o600))

	f := imageGraph("height")
	f.Images = map[string]graphio.ImageSpec{"height": {Path: "h.png"}}
	_, err := f.Build(nodes.NewRegistry())
	assert.Error(t, err)

	got := evaluate(t, f, graphio.WithBaseDir(dir))
	assert.Equal(t, float32(0), got[0])
	assert.Equal(t, float32(1), got[1])
}
