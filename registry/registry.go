package registry

import (
	"sort"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/xmlerr"
	"github.com/golang/glog"
)

// Func decodes the element at the cursor, resolving the decoders of nested
// types from r. A decode-one function returns nil if there was no element
// to decode; a decode-many function returns the decoded collection.
type Func func(c *cursor.Cursor, r *Registry) (interface{}, error)

// Registry is a tag name to decode function lookup table.
type Registry struct {
	one  map[string]Func
	many map[string]Func
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{one: map[string]Func{}, many: map[string]Func{}}
}

// RegisterOne sets fn as the decoder for the singular tag, replacing any
// previous registration.
func (r *Registry) RegisterOne(tag string, fn Func) {
	glog.V(3).Infof("registry: one <%s>", tag)
	r.one[tag] = fn
}

// RegisterMany sets fn as the decoder for the collection tag, replacing any
// previous registration.
func (r *Registry) RegisterMany(tag string, fn Func) {
	glog.V(3).Infof("registry: many <%s>", tag)
	r.many[tag] = fn
}

// ResolveOne returns the decode-one function registered for tag.
func (r *Registry) ResolveOne(tag string) (Func, error) {
	if fn, ok := r.one[tag]; ok {
		return fn, nil
	}
	return nil, xmlerr.UnregisteredTag(tag, xmlerr.WithMessage("no decode-one function"))
}

// ResolveMany returns the decode-many function registered for tag.
func (r *Registry) ResolveMany(tag string) (Func, error) {
	if fn, ok := r.many[tag]; ok {
		return fn, nil
	}
	return nil, xmlerr.UnregisteredTag(tag, xmlerr.WithMessage("no decode-many function"))
}

// Resolve returns the function registered for tag in either table,
// preferring the singular one. many is true for a collection decoder.
func (r *Registry) Resolve(tag string) (fn Func, many bool, err error) {
	if fn, ok := r.one[tag]; ok {
		return fn, false, nil
	}
	if fn, ok := r.many[tag]; ok {
		return fn, true, nil
	}
	return nil, false, xmlerr.UnregisteredTag(tag)
}

// Decode decodes the element at the cursor using the function registered
// for its tag. It returns nil if the input holds no further element.
func (r *Registry) Decode(c *cursor.Cursor) (interface{}, error) {
	ok, err := c.Forward()
	if err != nil || !ok {
		return nil, err
	}
	tag := c.NodeName()
	fn, many, err := r.Resolve(tag)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("registry: decode <%s> many=%v", tag, many)
	return fn(c, r)
}

// Tags returns every registered tag, singular and collection, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.one)+len(r.many))
	for tag := range r.one {
		tags = append(tags, tag)
	}
	for tag := range r.many {
		if _, ok := r.one[tag]; !ok {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of registered functions.
func (r *Registry) Len() int { return len(r.one) + len(r.many) }

// Reset removes every registration.
func (r *Registry) Reset() {
	r.one = map[string]Func{}
	r.many = map[string]Func{}
}
