package reader

import (
	_ "embed"
	"io"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/registry"
	"github.com/andaru/apixml/types"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

//go:embed tags.yaml
var tagsYAML []byte

// Tags returns the built-in tag table.
func Tags() (registry.Table, error) {
	return registry.ParseTable(tagsYAML)
}

// Register adds every decoder to r, bound to the built-in tag table.
func Register(r *registry.Registry) error {
	table, err := Tags()
	if err != nil {
		return err
	}
	return Bind(r, table)
}

// Bind adds the decoders of the types named in table to r, under the
// table's tags. It fails if table names a type without a decoder.
func Bind(r *registry.Registry, table registry.Table) error {
	for _, e := range table {
		b, ok := bindings[e.Type]
		if !ok {
			return errors.Errorf("no decoder for type %s", e.Type)
		}
		if e.One != "" {
			r.RegisterOne(e.One, b.one)
		}
		if e.Many != "" {
			r.RegisterMany(e.Many, b.many)
		}
	}
	glog.V(3).Infof("reader: bound %d types, %d functions", len(table), r.Len())
	return nil
}

// NewRegistry returns a registry holding every decoder.
func NewRegistry() (*registry.Registry, error) {
	r := registry.New()
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Read decodes the first element of src with the function r registers
// for its tag. The result is a pointer to a types value, or a
// *types.List for a collection tag. It returns nil, nil if src holds no
// element.
func Read(r *registry.Registry, src io.Reader, opts ...cursor.Option) (interface{}, error) {
	return r.Decode(cursor.New(src, opts...))
}

// ReadOne decodes the first element of src as a T. The element's tag must
// be registered as a singular tag.
func ReadOne[T any](r *registry.Registry, src io.Reader, opts ...cursor.Option) (*T, error) {
	c := cursor.New(src, opts...)
	ok, err := c.Forward()
	if err != nil || !ok {
		return nil, err
	}
	return one[T](&dec{c: c, r: r}, c.NodeName())
}

// ReadMany decodes the first element of src as a collection of T. The
// element's tag must be registered as a collection tag. An input without
// any element yields an empty list.
func ReadMany[T any](r *registry.Registry, src io.Reader, opts ...cursor.Option) (*types.List[T], error) {
	c := cursor.New(src, opts...)
	ok, err := c.Forward()
	if err != nil {
		return nil, err
	}
	if !ok {
		return &types.List[T]{}, nil
	}
	return many[T](&dec{c: c, r: r}, c.NodeName())
}
