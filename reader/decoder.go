package reader

import (
	"fmt"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/registry"
	"github.com/andaru/apixml/scalar"
	"github.com/andaru/apixml/types"
	"github.com/andaru/apixml/xmlerr"
	"github.com/golang/glog"
)

// dec carries the cursor and registry through one decode.
type dec struct {
	c *cursor.Cursor
	r *registry.Registry
}

// setter decodes the child element at the cursor into obj.
type setter[T any] func(d *dec, obj *T) error

// linker sets a collection field of obj to a placeholder for href. It
// returns false if the field was already populated.
type linker[T any] func(obj *T, href string) bool

// fields maps child tag names to setters.
type fields[T any] map[string]setter[T]

// links maps link relation names to collection fields.
type links[T any] map[string]linker[T]

type decoder[T any] struct {
	href   func(obj *T) *string
	id     func(obj *T, id string) error
	fields fields[T]
	links  links[T]
}

type link struct{ rel, href string }

func (x *decoder[T]) one(d *dec) (*T, error) {
	ok, err := d.c.Forward()
	if err != nil || !ok {
		return nil, err
	}
	tag := d.c.NodeName()
	obj := new(T)
	if href, ok := d.c.Attr("href"); ok && x.href != nil {
		*x.href(obj) = href
	}
	if id, ok := d.c.Attr("id"); ok && x.id != nil {
		if err := x.id(obj, id); err != nil {
			return nil, annotate(err, tag)
		}
	}

	empty, err := d.c.EmptyElement()
	if err != nil {
		return nil, err
	}
	// discard the start tag
	if err := d.c.Read(); err != nil {
		return nil, err
	}
	if empty {
		return obj, d.c.Read()
	}

	var pending []link
	for {
		ok, err := d.c.Forward()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		child := d.c.NodeName()
		if set, found := x.fields[child]; found {
			if err := set(d, obj); err != nil {
				return nil, err
			}
			continue
		}
		if child == "link" && x.links != nil {
			rel, _ := d.c.Attr("rel")
			href, _ := d.c.Attr("href")
			pending = append(pending, link{rel: rel, href: href})
		} else {
			glog.V(2).Infof("reader: skipping unknown element <%s> in <%s>", child, tag)
		}
		if err := d.c.Skip(); err != nil {
			return nil, err
		}
	}
	// discard the end tag
	if err := d.c.Read(); err != nil {
		return nil, err
	}

	for _, l := range pending {
		x.resolve(obj, tag, l)
	}
	return obj, nil
}

// resolve applies a <link> found in the body of obj's element.
func (x *decoder[T]) resolve(obj *T, tag string, l link) {
	if l.rel == "" || l.href == "" {
		return
	}
	set, ok := x.links[l.rel]
	if !ok {
		glog.V(2).Infof("reader: ignoring link rel=%q in <%s>", l.rel, tag)
		return
	}
	if !set(obj, l.href) {
		glog.V(2).Infof("reader: ignoring link rel=%q in <%s>, populated inline", l.rel, tag)
	}
}

func (x *decoder[T]) many(d *dec) (*types.List[T], error) {
	list := &types.List[T]{}
	ok, err := d.c.Forward()
	if err != nil || !ok {
		return list, err
	}
	list.Href, _ = d.c.Attr("href")

	empty, err := d.c.EmptyElement()
	if err != nil {
		return nil, err
	}
	if err := d.c.Read(); err != nil {
		return nil, err
	}
	if empty {
		return list, d.c.Read()
	}
	for {
		ok, err := d.c.Forward()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		item, err := x.one(d)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, d.c.Read()
}

// bind returns the registry functions for x.
func (x *decoder[T]) bind() binding {
	return binding{
		one: func(c *cursor.Cursor, r *registry.Registry) (interface{}, error) {
			obj, err := x.one(&dec{c: c, r: r})
			if err != nil || obj == nil {
				return nil, err
			}
			return obj, nil
		},
		many: func(c *cursor.Cursor, r *registry.Registry) (interface{}, error) {
			list, err := x.many(&dec{c: c, r: r})
			if err != nil {
				return nil, err
			}
			return list, nil
		},
	}
}

// annotate names the element on a decode error lacking one.
func annotate(err error, name string) error {
	if e, ok := xmlerr.As(err); ok && e.Element == "" {
		e.Element = name
	}
	return err
}

// one decodes the element at the cursor with the decode-one function
// registered for tag.
func one[T any](d *dec, tag string) (*T, error) {
	fn, err := d.r.ResolveOne(tag)
	if err != nil {
		return nil, err
	}
	v, err := fn(d.c, d.r)
	if err != nil || v == nil {
		return nil, err
	}
	obj, ok := v.(*T)
	if !ok {
		return nil, xmlerr.TypeMismatch(tag, fmt.Sprintf("%T", obj), v)
	}
	return obj, nil
}

// many decodes the element at the cursor with the decode-many function
// registered for tag.
func many[T any](d *dec, tag string) (*types.List[T], error) {
	fn, err := d.r.ResolveMany(tag)
	if err != nil {
		return nil, err
	}
	v, err := fn(d.c, d.r)
	if err != nil || v == nil {
		return nil, err
	}
	list, ok := v.(*types.List[T])
	if !ok {
		return nil, xmlerr.TypeMismatch(tag, fmt.Sprintf("%T", list), v)
	}
	return list, nil
}

// enum decodes the element at the cursor as a symbol of an enumeration.
func enum[E any](d *dec, parse func(string) (E, error)) (*E, error) {
	name := d.c.NodeName()
	s, err := scalar.String(d.c)
	if err != nil || s == nil {
		return nil, err
	}
	v, err := parse(*s)
	if err != nil {
		return nil, annotate(err, name)
	}
	return &v, nil
}

// enums decodes the element at the cursor as a list of enumeration symbols.
func enums[E any](d *dec, parse func(string) (E, error)) ([]E, error) {
	name := d.c.NodeName()
	items, err := scalar.Strings(d.c)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]E, 0, len(items))
	for _, item := range items {
		v, err := parse(item)
		if err != nil {
			return nil, annotate(err, name)
		}
		out = append(out, v)
	}
	return out, nil
}

// placeholder returns a linker for the collection field selected by field.
func placeholder[T, E any](field func(obj *T) **types.List[E]) linker[T] {
	return func(obj *T, href string) bool {
		p := field(obj)
		if *p != nil {
			return false
		}
		*p = &types.List[E]{Href: href}
		return true
	}
}

// identified returns a decoder for a type embedding types.Identified. The
// id attribute and the name, description and comment elements are added
// to fields.
func identified[T any, P interface {
	*T
	Base() *types.Identified
}](f fields[T], l links[T]) *decoder[T] {
	if f == nil {
		f = fields[T]{}
	}
	f["name"] = func(d *dec, obj *T) (err error) { P(obj).Base().Name, err = scalar.String(d.c); return }
	f["description"] = func(d *dec, obj *T) (err error) { P(obj).Base().Description, err = scalar.String(d.c); return }
	f["comment"] = func(d *dec, obj *T) (err error) { P(obj).Base().Comment, err = scalar.String(d.c); return }
	return &decoder[T]{
		href:   func(obj *T) *string { return &P(obj).Base().Href },
		id:     func(obj *T, id string) error { P(obj).Base().Id = id; return nil },
		fields: f,
		links:  l,
	}
}
