package types

// List is an ordered collection of objects which may instead (or in
// addition to being empty) carry the URL it is retrievable from.
type List[T any] struct {
	Href  string
	Items []*T
}

// NewList returns a List holding items, in order.
func NewList[T any](items ...*T) *List[T] { return &List[T]{Items: items} }

// Len returns the number of items; zero for a nil List.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Placeholder returns true if l holds no items but names a retrieval URL,
// as decoded from a <link> or a self-closing container with an href.
func (l *List[T]) Placeholder() bool { return l != nil && len(l.Items) == 0 && l.Href != "" }
