// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxgraph/field"
	"github.com/katalvlaran/voxgraph/nodes"
)

const sphere = `
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
inputs = { x = "px", y = "py", z = "pz", radius = 6 }

[[nodes]]
name = "out"
type = "OutputSDF"
inputs = { sdf = "ball" }
`

func TestParseOrigin(t *testing.T) {
	o, err := parseOrigin("1, -2,3")
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, -2, 3}, o)

	for _, bad := range []string{"", "1,2", "1,2,x", "1,2,3,4"} {
		_, err := parseOrigin(bad)
		assert.Error(t, err, bad)
	}
}

func TestPrintCatalog(t *testing.T) {
	reg := nodes.NewRegistry()
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, reg))

	var doc struct {
		Types []nodes.TypeInfo `toml:"types"`
	}
	_, err := toml.Decode(buf.String(), &doc)
	require.NoError(t, err)
	require.Len(t, doc.Types, reg.Len())
	assert.Equal(t, "Constant", doc.Types[0].Name)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sphere.toml")
	require.NoError(t, os.WriteFile(path, []byte(sphere), 0o600))
	out := filepath.Join(dir, "block.cbor")

	cfg := config{graph: path, origin: [3]int{4, -2, -2}, size: 4, clip: 1.5, out: out}
	require.NoError(t, run(context.Background(), nodes.NewRegistry(), cfg))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	b, err := field.DecodeBlock(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, -2, -2}, b.Origin)
	assert.False(t, b.Uniform)

	cfg.graph = filepath.Join(dir, "missing.toml")
	assert.Error(t, run(context.Background(), nodes.NewRegistry(), cfg))
}
