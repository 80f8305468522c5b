// Package scalar converts the text of leaf elements and attributes into Go
// values, and formats those values back into wire text.
//
// Element forms take a cursor positioned on (or before) the leaf element and
// leave it on the token following the element's end tag. When the cursor is
// not on a start tag the element is absent and a nil value is returned.
// Boolean, numeric and date elements with blank text are absent as well;
// String returns a pointer to the empty string for an empty element.
//
// Malformed text fails with an xmlerr.KindFormat error naming the element.
package scalar
