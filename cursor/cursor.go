package cursor

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/andaru/apixml/xmlutil"
	"github.com/pkg/errors"
)

// Cursor is a forward-only cursor over the XML document read from an
// io.Reader.
type Cursor struct {
	d   *xml.Decoder
	ctx context.Context

	tok     xml.Token // current token, nil before the first read and once exhausted
	peek    xml.Token // lookahead used by EmptyElement
	attrs   xmlutil.AttrMap
	started bool
	eof     bool
}

// New returns a Cursor reading the XML document from r. The cursor is
// positioned before the first token; the first call to Forward moves it.
func New(r io.Reader, opts ...Option) *Cursor {
	c := &Cursor{d: xml.NewDecoder(r)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// next returns the lookahead token, or reads a new one from the decoder.
func (c *Cursor) next() (xml.Token, error) {
	if t := c.peek; t != nil {
		c.peek = nil
		return t, nil
	}
	// check for context cancellation before d.Token() blocks.
	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			return nil, err
		}
	}
	t, err := c.d.Token()
	if err != nil {
		return nil, err
	}
	return xml.CopyToken(t), nil
}

// advance positions the cursor on the following token.
func (c *Cursor) advance() error {
	c.started = true
	if c.eof {
		return nil
	}
	t, err := c.next()
	switch {
	case err == io.EOF:
		c.tok, c.attrs, c.eof = nil, nil, true
		return nil
	case err != nil:
		return errors.WithStack(err)
	}
	c.tok, c.attrs = t, nil
	return nil
}

func (c *Cursor) start() error {
	if c.started {
		return nil
	}
	return c.advance()
}

// Forward moves the cursor onto the next start or end tag, returning true
// if the cursor is positioned on a start tag. It returns false on an end
// tag or when the input is exhausted.
func (c *Cursor) Forward() (bool, error) {
	if err := c.start(); err != nil {
		return false, err
	}
	for !c.eof {
		switch c.tok.(type) {
		case xml.StartElement:
			return true, nil
		case xml.EndElement:
			return false, nil
		}
		if err := c.advance(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Read discards the current token.
func (c *Cursor) Read() error {
	if err := c.start(); err != nil {
		return err
	}
	return c.advance()
}

// Token returns the current token, or nil when the input is exhausted.
func (c *Cursor) Token() xml.Token { return c.tok }

// Exhausted returns true once the end of input has been reached.
func (c *Cursor) Exhausted() bool { return c.eof }

// NodeName returns the local name of the current start or end tag,
// or the empty string if the cursor is not positioned on a tag.
func (c *Cursor) NodeName() string {
	switch t := c.tok.(type) {
	case xml.StartElement:
		return t.Name.Local
	case xml.EndElement:
		return t.Name.Local
	}
	return ""
}

// Attr returns the value of the named attribute of the current start tag.
func (c *Cursor) Attr(name string) (string, bool) {
	se, ok := c.tok.(xml.StartElement)
	if !ok {
		return "", false
	}
	if c.attrs == nil {
		c.attrs = xmlutil.NewAttrMap(se.Attr...)
	}
	return c.attrs.Get(name)
}

// EmptyElement returns true if the current start tag is immediately
// followed by its end tag, as with a self-closing element.
func (c *Cursor) EmptyElement() (bool, error) {
	if _, ok := c.tok.(xml.StartElement); !ok {
		return false, nil
	}
	if c.peek == nil {
		t, err := c.next()
		switch {
		case err == io.EOF:
			return false, nil
		case err != nil:
			return false, errors.WithStack(err)
		}
		c.peek = t
	}
	_, ok := c.peek.(xml.EndElement)
	return ok, nil
}

// Skip discards the current element including all of its children,
// leaving the cursor on the token following the element's end tag. If the
// cursor is not positioned on a start tag, only the current token is
// discarded.
func (c *Cursor) Skip() error {
	if _, ok := c.tok.(xml.StartElement); !ok {
		return c.Read()
	}
	for depth := 1; depth > 0; {
		if err := c.advance(); err != nil {
			return err
		}
		switch c.tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case nil:
			return errors.WithStack(io.ErrUnexpectedEOF)
		}
	}
	return c.advance()
}

// Text returns the character data found within the current element
// (including that of any children) and leaves the cursor on the token
// following the element's end tag.
func (c *Cursor) Text() (string, error) {
	if _, ok := c.tok.(xml.StartElement); !ok {
		return "", errors.Errorf("cursor: Text called on %T, want xml.StartElement", c.tok)
	}
	var b strings.Builder
	for depth := 1; depth > 0; {
		if err := c.advance(); err != nil {
			return "", err
		}
		switch t := c.tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case nil:
			return "", errors.WithStack(io.ErrUnexpectedEOF)
		}
	}
	return b.String(), c.advance()
}
