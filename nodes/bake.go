// SPDX-License-Identifier: MIT

package nodes

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Sentinel errors reported by bake functions, wrapped in *ParamError.
var (
	// ErrNilResource indicates a resource param that was never set.
	ErrNilResource = errors.New("nodes: resource is nil")

	// ErrResourceKind indicates a resource param holding the wrong kind of object.
	ErrResourceKind = errors.New("nodes: wrong resource kind")

	// ErrParamType indicates a real param holding a non-numeric value.
	ErrParamType = errors.New("nodes: param is not a number")
)

// ParamError names the param a bake function rejected.
type ParamError struct {
	Param string
	Err   error
}

// Error implements error.
func (e *ParamError) Error() string {
	return fmt.Sprintf("nodes: param %q: %v", e.Param, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParamError) Unwrap() error { return e.Err }

// BakeContext gives a BakeFunc typed access to one node's raw param values
// and collects the byproducts the compiled program must release.
type BakeContext struct {
	typ    *NodeType
	values []any
	owned  []io.Closer
}

// NewBakeContext binds raw param values to t. Missing trailing values and
// nil real values fall back to the param defaults.
func NewBakeContext(t *NodeType, values []any) *BakeContext {
	v := make([]any, len(t.Params))
	for i, p := range t.Params {
		if i < len(values) && values[i] != nil {
			v[i] = values[i]
		} else {
			v[i] = p.Default
		}
	}

	return &BakeContext{typ: t, values: v}
}

// Type returns the node type being baked.
func (c *BakeContext) Type() *NodeType { return c.typ }

// Float returns real param i as float32.
func (c *BakeContext) Float(i int) (float32, error) {
	f, ok := ToFloat(c.values[i])
	if !ok {
		return 0, &ParamError{Param: c.typ.Params[i].Name, Err: fmt.Errorf("%w: %T", ErrParamType, c.values[i])}
	}

	return f, nil
}

// Resource returns resource param i, failing with ErrNilResource when it is
// unset.
func (c *BakeContext) Resource(i int) (any, error) {
	v := c.values[i]
	if isNil(v) {
		return nil, &ParamError{Param: c.typ.Params[i].Name, Err: ErrNilResource}
	}

	return v, nil
}

// isNil reports nil interfaces and typed nil pointers alike.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}

	return false
}

// Own registers a byproduct released when the compiled program closes.
func (c *BakeContext) Own(cl io.Closer) { c.owned = append(c.owned, cl) }

// Owned returns the byproducts registered so far.
func (c *BakeContext) Owned() []io.Closer { return c.owned }

// resourceAs fetches resource param i as T.
func resourceAs[T any](c *BakeContext, i int) (T, error) {
	var zero T
	v, err := c.Resource(i)
	if err != nil {
		return zero, err
	}
	r, ok := v.(T)
	if !ok {
		return zero, &ParamError{
			Param: c.typ.Params[i].Name,
			Err:   fmt.Errorf("%w: %T is not a %s", ErrResourceKind, v, c.typ.Params[i].ResourceKind),
		}
	}

	return r, nil
}

// ToFloat converts a numeric param value to float32.
func ToFloat(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	case uint64:
		return float32(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}

	return 0, false
}
