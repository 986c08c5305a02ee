// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Block is a cube of Size³ SDF samples. Voxel (i, j, k) sits at
// Origin + (i, j, k) << LOD. When Uniform is set every voxel reads Value
// and SDF is empty; otherwise SDF holds the samples with i varying
// fastest, then j, then k.
type Block struct {
	Origin  [3]int    `cbor:"1,keyasint"`
	Size    int       `cbor:"2,keyasint"`
	LOD     int       `cbor:"3,keyasint"`
	Uniform bool      `cbor:"4,keyasint"`
	Value   float32   `cbor:"5,keyasint"`
	SDF     []float32 `cbor:"6,keyasint,omitempty"`
}

// Step returns the distance between neighboring voxels.
func (b *Block) Step() int { return 1 << b.LOD }

// Len returns the number of voxels.
func (b *Block) Len() int { return b.Size * b.Size * b.Size }

// At returns the sample of voxel (i, j, k).
func (b *Block) At(i, j, k int) float32 {
	if b.Uniform {
		return b.Value
	}

	return b.SDF[(k*b.Size+j)*b.Size+i]
}

// Position returns the world position of voxel (i, j, k).
func (b *Block) Position(i, j, k int) [3]int {
	s := b.Step()

	return [3]int{b.Origin[0] + i*s, b.Origin[1] + j*s, b.Origin[2] + k*s}
}

// encMode is canonical so equal blocks encode to equal bytes.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("field: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// EncodeBlock writes b to w as canonical CBOR.
func EncodeBlock(w io.Writer, b *Block) error {
	if err := encMode.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("field: encode block: %w", err)
	}

	return nil
}

// DecodeBlock reads one block from r and checks its shape.
func DecodeBlock(r io.Reader) (*Block, error) {
	var b Block
	if err := cbor.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("field: decode block: %w", err)
	}
	if b.Size <= 0 || b.LOD < 0 || b.LOD > maxLOD {
		return nil, fmt.Errorf("%w: size %d lod %d", ErrCorruptBlock, b.Size, b.LOD)
	}
	if b.Uniform != (len(b.SDF) == 0) || (!b.Uniform && len(b.SDF) != b.Len()) {
		return nil, fmt.Errorf("%w: %d samples for size %d", ErrCorruptBlock, len(b.SDF), b.Size)
	}

	return &b, nil
}
