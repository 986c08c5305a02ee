// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/voxgraph/resource"
)

// Sentinel errors reported by Build.
var (
	ErrUnknownNodeType = errors.New("graphio: unknown node type")
	ErrUnknownNode     = errors.New("graphio: unknown node")
	ErrDuplicateNode   = errors.New("graphio: duplicate node name")
	ErrUnknownPort     = errors.New("graphio: unknown port")
	ErrUnknownParam    = errors.New("graphio: unknown param")
	ErrUnknownResource = errors.New("graphio: unknown resource")
	ErrBadValue        = errors.New("graphio: bad value")
)

// File is a graph description.
type File struct {
	Nodes   []NodeSpec `toml:"nodes" cbor:"nodes"`
	Outputs []string   `toml:"outputs,omitempty" cbor:"outputs,omitempty"`

	Curves map[string]CurveSpec `toml:"curves,omitempty" cbor:"curves,omitempty"`
	Images map[string]ImageSpec `toml:"images,omitempty" cbor:"images,omitempty"`
	Noises map[string]NoiseSpec `toml:"noises,omitempty" cbor:"noises,omitempty"`
	Warps  map[string]WarpSpec  `toml:"warps,omitempty" cbor:"warps,omitempty"`

	// Dir is the directory image paths are resolved against (set by Load).
	Dir string `toml:"-" cbor:"-"`
}

// NodeSpec is one node. Inputs map port names to a reference string or a
// number; Params map param names to a number or a resource name.
type NodeSpec struct {
	Name   string         `toml:"name" cbor:"name"`
	Type   string         `toml:"type" cbor:"type"`
	Inputs map[string]any `toml:"inputs,omitempty" cbor:"inputs,omitempty"`
	Params map[string]any `toml:"params,omitempty" cbor:"params,omitempty"`
}

// CurveSpec is a piecewise linear curve through its control points.
type CurveSpec struct {
	Points     []resource.CurvePoint `toml:"points" cbor:"points"`
	Resolution int                   `toml:"resolution,omitempty" cbor:"resolution,omitempty"`
}

// ImageSpec is either a file (Path, optionally resampled to Width×Height)
// or inline row-major Pixels of size Width×Height.
type ImageSpec struct {
	Path   string    `toml:"path,omitempty" cbor:"path,omitempty"`
	Width  int       `toml:"width,omitempty" cbor:"width,omitempty"`
	Height int       `toml:"height,omitempty" cbor:"height,omitempty"`
	Pixels []float32 `toml:"pixels,omitempty" cbor:"pixels,omitempty"`
}

// NoiseSpec configures a value noise. Zero fields keep the defaults.
type NoiseSpec struct {
	Seed        int64   `toml:"seed" cbor:"seed"`
	Octaves     int     `toml:"octaves,omitempty" cbor:"octaves,omitempty"`
	Period      float64 `toml:"period,omitempty" cbor:"period,omitempty"`
	Persistence float64 `toml:"persistence,omitempty" cbor:"persistence,omitempty"`
	Lacunarity  float64 `toml:"lacunarity,omitempty" cbor:"lacunarity,omitempty"`
}

// WarpSpec configures a noise gradient displacing coordinates by up to
// Amplitude.
type WarpSpec struct {
	NoiseSpec
	Amplitude float32 `toml:"amplitude" cbor:"amplitude"`
}

// Load parses a TOML graph file and records its directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: cannot read %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("graphio: parse error in %s: %w", path, err)
	}
	f.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("graphio: cannot resolve path %s: %w", path, err)
	}

	return f, nil
}

// Decode parses a TOML graph description.
func Decode(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Encode writes f as TOML.
func Encode(w io.Writer, f *File) error {
	return toml.NewEncoder(w).Encode(f)
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("graphio: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// EncodeCBOR returns the canonical CBOR form of f.
func EncodeCBOR(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := encMode.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("graphio: encode: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeCBOR parses the output of EncodeCBOR.
func DecodeCBOR(data []byte) (*File, error) {
	var f File
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return &f, nil
}
