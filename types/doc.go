// Package types holds the domain model decoded from and encoded to API
// documents.
//
// Optional scalar fields are pointers; nil means the element was absent.
// Collections are *List values: nil when absent, otherwise either populated
// inline or a placeholder carrying only the URL they can be fetched from.
package types
