package cursor

import (
	"context"
	"io"
)

// Option is a constructor option function for the Cursor type.
type Option func(*Cursor)

// WithContext causes the Cursor to check ctx for cancellation before
// each token is read from the input.
func WithContext(ctx context.Context) Option { return func(c *Cursor) { c.ctx = ctx } }

// WithStrict sets the strictness of the underlying xml.Decoder (default true).
func WithStrict(strict bool) Option { return func(c *Cursor) { c.d.Strict = strict } }

// WithCharsetReader sets the charset reader used for non UTF-8 input.
func WithCharsetReader(fn func(charset string, input io.Reader) (io.Reader, error)) Option {
	return func(c *Cursor) { c.d.CharsetReader = fn }
}
