package xmlutil

import (
	"encoding/xml"
	"sort"
)

// AttrMap is an attribute local name to value map
type AttrMap map[string]string

// NewAttrMap returns an AttrMap containing the passed XML attributes.
// Namespace declarations (xmlns and xmlns:<prefix>) are not included, and
// for repeated local names the first occurrence wins.
func NewAttrMap(attrs ...xml.Attr) AttrMap {
	m := AttrMap{}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if _, ok := m[attr.Name.Local]; !ok {
			m[attr.Name.Local] = attr.Value
		}
	}
	return m
}

// Get returns the value of the attribute with the given local name
func (m AttrMap) Get(local string) (string, bool) {
	v, ok := m[local]
	return v, ok
}

// Attr returns the map contents as a series of attributes,
// sorted lexically by name.
func (m AttrMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		a = append(a, Attr(k, v))
	}
	if len(a) > 0 {
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}
