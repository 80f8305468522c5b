// Package dispatch connects API responses to the reader package: it
// decodes a body by its root tag, turns fault documents into errors and
// fetches the collections a document only links to.
package dispatch
