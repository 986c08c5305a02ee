// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/voxgraph/graph"
	"github.com/katalvlaran/voxgraph/nodes"
	"github.com/katalvlaran/voxgraph/resource"
)

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	resources map[string]any
	baseDir   string
}

// WithResource supplies a resource by name. It takes precedence over the
// file's own tables.
func WithResource(name string, v any) BuildOption {
	return func(o *buildOptions) {
		if o.resources == nil {
			o.resources = make(map[string]any)
		}
		o.resources[name] = v
	}
}

// WithBaseDir sets the directory relative image paths are resolved against,
// overriding File.Dir.
func WithBaseDir(dir string) BuildOption {
	return func(o *buildOptions) { o.baseDir = dir }
}

// builder carries the state of one Build call.
type builder struct {
	f     *File
	reg   *nodes.Registry
	g     *graph.Graph
	opts  buildOptions
	ids   map[string]graph.NodeID
	cache map[string]any // kind + "/" + name -> resource
}

// Build creates the graph f describes. Node ids follow the order of
// f.Nodes starting at 0.
func (f *File) Build(reg *nodes.Registry, opts ...BuildOption) (*graph.Graph, error) {
	b := &builder{
		f:     f,
		reg:   reg,
		g:     graph.New(),
		opts:  buildOptions{baseDir: f.Dir},
		ids:   make(map[string]graph.NodeID, len(f.Nodes)),
		cache: make(map[string]any),
	}
	for _, fn := range opts {
		fn(&b.opts)
	}

	// 1) Nodes first so references may point forward.
	for _, spec := range f.Nodes {
		if spec.Name == "" || strings.Contains(spec.Name, ".") {
			return nil, fmt.Errorf("%w: node name %q", ErrBadValue, spec.Name)
		}
		if _, dup := b.ids[spec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, spec.Name)
		}
		t, ok := reg.FindID(spec.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q (node %q)", ErrUnknownNodeType, spec.Type, spec.Name)
		}
		id := b.g.AddNode(t)
		if err := b.g.SetName(id, spec.Name); err != nil {
			return nil, err
		}
		b.ids[spec.Name] = id
	}

	// 2) Inputs and params.
	for _, spec := range f.Nodes {
		if err := b.inputs(spec); err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		if err := b.params(spec); err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
	}

	// 3) Designated outputs.
	if len(f.Outputs) > 0 {
		outs := make([]graph.NodeID, 0, len(f.Outputs))
		for _, name := range f.Outputs {
			id, ok := b.ids[name]
			if !ok {
				return nil, fmt.Errorf("%w: output %q", ErrUnknownNode, name)
			}
			outs = append(outs, id)
		}
		if err := b.g.SetOutputs(outs...); err != nil {
			return nil, err
		}
	}

	return b.g, nil
}

func (b *builder) inputs(spec NodeSpec) error {
	dst := b.ids[spec.Name]
	t, _ := b.reg.FindID(spec.Type)
	for _, port := range slices.Sorted(maps.Keys(spec.Inputs)) {
		dstPort, ok := b.reg.FindInputIndex(t, port)
		if !ok {
			return fmt.Errorf("%w: input %q of %s", ErrUnknownPort, port, spec.Type)
		}
		switch v := spec.Inputs[port].(type) {
		case string:
			src, srcPort, err := b.reference(v)
			if err != nil {
				return err
			}
			if err := b.g.Connect(src, srcPort, dst, dstPort); err != nil {
				return err
			}
		default:
			f, ok := nodes.ToFloat(v)
			if !ok {
				return fmt.Errorf("%w: input %q is %T", ErrBadValue, port, v)
			}
			if err := b.g.SetDefault(dst, dstPort, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// reference resolves "node" or "node.port"; port is a name or an index.
func (b *builder) reference(ref string) (graph.NodeID, int, error) {
	name, port, hasPort := strings.Cut(ref, ".")
	id, ok := b.ids[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	if !hasPort {
		return id, 0, nil
	}
	n, _ := b.g.Node(id)
	if i, ok := b.reg.FindOutputIndex(n.Type, port); ok {
		return id, i, nil
	}
	if i, err := strconv.Atoi(port); err == nil && i >= 0 && i < len(b.reg.Get(n.Type).Outputs) {
		return id, i, nil
	}

	return 0, 0, fmt.Errorf("%w: output %q of %q", ErrUnknownPort, port, name)
}

func (b *builder) params(spec NodeSpec) error {
	id := b.ids[spec.Name]
	t, _ := b.reg.FindID(spec.Type)
	nt := b.reg.Get(t)
	for _, name := range slices.Sorted(maps.Keys(spec.Params)) {
		i, ok := b.reg.FindParamIndex(t, name)
		if !ok {
			return fmt.Errorf("%w: %q of %s", ErrUnknownParam, name, spec.Type)
		}
		raw := spec.Params[name]
		p := nt.Params[i]

		var value any
		switch p.Type {
		case nodes.ParamResource:
			ref, ok := raw.(string)
			if !ok {
				return fmt.Errorf("%w: param %q wants a resource name, got %T", ErrBadValue, name, raw)
			}
			r, err := b.resource(p.ResourceKind, ref)
			if err != nil {
				return fmt.Errorf("param %q: %w", name, err)
			}
			value = r
		default:
			f, ok := nodes.ToFloat(raw)
			if !ok {
				return fmt.Errorf("%w: param %q wants a number, got %T", ErrBadValue, name, raw)
			}
			value = f
		}
		if err := b.g.SetParam(id, i, value); err != nil {
			return err
		}
	}

	return nil
}

// resource returns the named resource of kind, creating it once per Build.
func (b *builder) resource(kind, name string) (any, error) {
	if v, ok := b.opts.resources[name]; ok {
		return v, nil
	}
	key := kind + "/" + name
	if v, ok := b.cache[key]; ok {
		return v, nil
	}

	var (
		v   any
		err error
	)
	switch kind {
	case nodes.KindCurve:
		spec, ok := b.f.Curves[name]
		if !ok {
			return nil, fmt.Errorf("%w: curve %q", ErrUnknownResource, name)
		}
		v, err = newCurve(spec)
	case nodes.KindImage:
		spec, ok := b.f.Images[name]
		if !ok {
			return nil, fmt.Errorf("%w: image %q", ErrUnknownResource, name)
		}
		v, err = loadImage(spec, b.opts.baseDir)
	case nodes.KindNoise:
		spec, ok := b.f.Noises[name]
		if !ok {
			return nil, fmt.Errorf("%w: noise %q", ErrUnknownResource, name)
		}
		v = resource.NewValueNoise(spec.Seed, spec.options()...)
	case nodes.KindNoiseGradient:
		spec, ok := b.f.Warps[name]
		if !ok {
			return nil, fmt.Errorf("%w: warp %q", ErrUnknownResource, name)
		}
		v = resource.NewValueWarp(spec.Seed, spec.Amplitude, spec.options()...)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownResource, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	b.cache[key] = v

	return v, nil
}

func newCurve(spec CurveSpec) (*resource.PointCurve, error) {
	c, err := resource.NewPointCurve(spec.Points...)
	if err != nil {
		return nil, err
	}
	c.Resolution = spec.Resolution

	return c, nil
}

func (s NoiseSpec) options() []resource.NoiseOption {
	var opts []resource.NoiseOption
	if s.Octaves != 0 {
		opts = append(opts, resource.WithOctaves(s.Octaves))
	}
	if s.Period != 0 {
		opts = append(opts, resource.WithPeriod(s.Period))
	}
	if s.Persistence != 0 {
		opts = append(opts, resource.WithPersistence(s.Persistence))
	}
	if s.Lacunarity != 0 {
		opts = append(opts, resource.WithLacunarity(s.Lacunarity))
	}

	return opts
}
