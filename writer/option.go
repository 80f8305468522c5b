package writer

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the encoder indentation; see xml.Encoder.Indent.
func WithIndent(prefix, indent string) Option {
	return func(w *Writer) { w.e.Indent(prefix, indent) }
}
