// SPDX-License-Identifier: MIT

package nodes

import "github.com/katalvlaran/voxgraph/interval"

// Buffer is one slot of a batch evaluation. Data always holds one value per
// sample; when Constant is set every element equals ConstantValue and
// kernels may read ConstantValue instead of the array.
type Buffer struct {
	Data          []float32
	Constant      bool
	ConstantValue float32
}

// NewBuffer returns a non-constant buffer of n zeros.
func NewBuffer(n int) *Buffer {
	return &Buffer{Data: make([]float32, n)}
}

// NewConstantBuffer returns a buffer of n copies of v flagged constant.
func NewConstantBuffer(n int, v float32) *Buffer {
	b := NewBuffer(n)
	b.Fill(v)

	return b
}

// Fill sets every element to v and flags the buffer constant.
func (b *Buffer) Fill(v float32) {
	for i := range b.Data {
		b.Data[i] = v
	}
	b.Constant = true
	b.ConstantValue = v
}

// CopyFrom copies src into b, carrying its constant flag.
func (b *Buffer) CopyFrom(src *Buffer) {
	copy(b.Data, src.Data)
	b.Constant = src.Constant
	b.ConstantValue = src.ConstantValue
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Data) }

// BufferContext is handed to a ProcessFunc. Output buffers arrive
// non-constant and sized to the batch; kernels overwrite every element.
type BufferContext struct {
	In     []*Buffer
	Out    []*Buffer
	Params any
}

// Input returns input buffer i.
func (c *BufferContext) Input(i int) *Buffer { return c.In[i] }

// Output returns output buffer i.
func (c *BufferContext) Output(i int) *Buffer { return c.Out[i] }

// Len returns the batch size.
func (c *BufferContext) Len() int { return c.Out[0].Len() }

// RangeContext is handed to a RangeFunc.
type RangeContext struct {
	In     []interval.Interval
	Out    []interval.Interval
	Params any
}

// Input returns input interval i.
func (c *RangeContext) Input(i int) interval.Interval { return c.In[i] }

// SetOutput stores output interval i.
func (c *RangeContext) SetOutput(i int, v interval.Interval) { c.Out[i] = v }
