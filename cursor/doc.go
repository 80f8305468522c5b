// Package cursor provides a forward-only pull cursor over an XML token
// stream.
//
// A Cursor is always positioned on a single token: a start tag, an end
// tag, character data, or nothing once the stream is exhausted. The
// primitives mirror what a streaming type decoder needs;
//
//	Forward       moves onto the next start or end tag, skipping text,
//	              comments and processing instructions. It reports true
//	              only when positioned on a start tag, and does not move
//	              when already positioned on a tag.
//	Read          discards the current token.
//	NodeName      returns the local name of the current tag.
//	Attr          returns an attribute of the current start tag.
//	EmptyElement  reports whether the current start tag has no content.
//	Skip          discards the current element and its whole subtree.
//	Text          returns the text content of the current element and
//	              moves past its end tag.
//
// Errors from the underlying tokenizer (and context cancellation, see
// WithContext) are returned with a stack attached; callers propagate
// them unchanged.
//
// A Cursor is not safe for concurrent use.
package cursor
