// SPDX-License-Identifier: MIT

package nodes

import "fmt"

// Registry is the immutable node catalog. Build one with NewRegistry and
// share it; every method is safe for concurrent use.
type Registry struct {
	types  []NodeType
	byName map[string]TypeID
}

// NewRegistry builds the catalog. It panics if a TypeID is defined twice or
// not at all, since that is a bug in this package.
func NewRegistry() *Registry {
	r := &Registry{
		types:  make([]NodeType, typeCount),
		byName: make(map[string]TypeID, typeCount),
	}
	seen := make([]bool, typeCount)

	var defs []NodeType
	defs = append(defs, inputTypes()...)
	defs = append(defs, mathTypes()...)
	defs = append(defs, convertTypes()...)
	defs = append(defs, generateTypes()...)
	defs = append(defs, sdfTypes()...)

	for _, t := range defs {
		// 1) Each ID exactly once.
		if t.ID < 0 || t.ID >= typeCount {
			panic(fmt.Sprintf("nodes: type %q has out-of-range id %d", t.Name, t.ID))
		}
		if seen[t.ID] {
			panic(fmt.Sprintf("nodes: type id %d defined twice (%q)", t.ID, t.Name))
		}
		seen[t.ID] = true

		// 2) Defaults and indices.
		t.inputIndex = indexPorts(t.Inputs)
		t.outputIndex = indexPorts(t.Outputs)
		t.paramIndex = make(map[string]int, len(t.Params))
		for i := range t.Params {
			p := &t.Params[i]
			p.Index = i
			if p.Type == ParamReal {
				if p.Default == nil {
					p.Default = float32(0)
				} else if f, ok := ToFloat(p.Default); ok {
					p.Default = f
				}
			}
			t.paramIndex[p.Name] = i
		}

		r.types[t.ID] = t
		r.byName[t.Name] = t.ID
	}

	for id, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("nodes: type id %d has no definition", id))
		}
	}

	return r
}

func indexPorts(ports []Port) map[string]int {
	m := make(map[string]int, len(ports))
	for i, p := range ports {
		m[p.Name] = i
	}

	return m
}

// Len returns the number of node types.
func (r *Registry) Len() int { return len(r.types) }

// Get returns the type with the given id. An out-of-range id is a
// programming error and panics.
func (r *Registry) Get(id TypeID) *NodeType {
	if !r.valid(id) {
		panic(fmt.Sprintf("nodes: type id %d out of range [0, %d)", id, len(r.types)))
	}

	return &r.types[id]
}

// Types returns every type in id order.
func (r *Registry) Types() []*NodeType {
	out := make([]*NodeType, len(r.types))
	for i := range r.types {
		out[i] = &r.types[i]
	}

	return out
}

// FindID looks up a type by name.
func (r *Registry) FindID(name string) (TypeID, bool) {
	id, ok := r.byName[name]

	return id, ok
}

// FindParamIndex looks up a param of type id by name.
func (r *Registry) FindParamIndex(id TypeID, name string) (int, bool) {
	if !r.valid(id) {
		return 0, false
	}
	i, ok := r.types[id].paramIndex[name]

	return i, ok
}

// FindInputIndex looks up an input port of type id by name.
func (r *Registry) FindInputIndex(id TypeID, name string) (int, bool) {
	if !r.valid(id) {
		return 0, false
	}
	i, ok := r.types[id].inputIndex[name]

	return i, ok
}

// FindOutputIndex looks up an output port of type id by name.
func (r *Registry) FindOutputIndex(id TypeID, name string) (int, bool) {
	if !r.valid(id) {
		return 0, false
	}
	i, ok := r.types[id].outputIndex[name]

	return i, ok
}

func (r *Registry) valid(id TypeID) bool { return id >= 0 && int(id) < len(r.types) }

// TypeInfo is a serializable description of a node type for tooling.
type TypeInfo struct {
	Name      string      `toml:"name"`
	Category  string      `toml:"category"`
	Inputs    []PortInfo  `toml:"inputs,omitempty"`
	Outputs   []PortInfo  `toml:"outputs,omitempty"`
	Params    []ParamInfo `toml:"params,omitempty"`
	DebugOnly bool        `toml:"debug_only,omitempty"`
}

// PortInfo describes one port.
type PortInfo struct {
	Name    string  `toml:"name"`
	Default float32 `toml:"default"`
}

// ParamInfo describes one param. Default is omitted for resource params.
type ParamInfo struct {
	Name    string   `toml:"name"`
	Type    string   `toml:"type"`
	Kind    string   `toml:"kind,omitempty"`
	Default *float32 `toml:"default,omitempty"`
}

// TypeInfo describes type id. It panics on an out-of-range id like Get.
func (r *Registry) TypeInfo(id TypeID) TypeInfo {
	t := r.Get(id)
	info := TypeInfo{Name: t.Name, Category: t.Category.String(), DebugOnly: t.DebugOnly}
	for _, p := range t.Inputs {
		info.Inputs = append(info.Inputs, PortInfo(p))
	}
	for _, p := range t.Outputs {
		info.Outputs = append(info.Outputs, PortInfo(p))
	}
	for _, p := range t.Params {
		pi := ParamInfo{Name: p.Name, Type: p.Type.String(), Kind: p.ResourceKind}
		if f, ok := p.Default.(float32); ok {
			pi.Default = &f
		}
		info.Params = append(info.Params, pi)
	}

	return info
}
