package scalar

import (
	"encoding/xml"
	"io"
	"strings"
	"time"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/xmlerr"
	"github.com/pkg/errors"
)

// text reads the text of the element at the cursor. ok is false if the
// cursor was not positioned on a start tag.
func text(c *cursor.Cursor) (name, s string, ok bool, err error) {
	if ok, err = c.Forward(); err != nil || !ok {
		return "", "", false, err
	}
	name = c.NodeName()
	s, err = c.Text()
	return name, s, err == nil, err
}

// annotate sets the element name on a format error.
func annotate(err error, name string) error {
	if e, ok := xmlerr.As(err); ok && e.Element == "" {
		e.Element = name
	}
	return err
}

func element[T any](c *cursor.Cursor, parse func(string) (T, error)) (*T, error) {
	name, s, ok, err := text(c)
	if err != nil || !ok || strings.TrimSpace(s) == "" {
		return nil, err
	}
	v, err := parse(s)
	if err != nil {
		return nil, annotate(err, name)
	}
	return &v, nil
}

// String returns the text of the element at the cursor, verbatim.
func String(c *cursor.Cursor) (*string, error) {
	_, s, ok, err := text(c)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// Boolean decodes the element at the cursor as a boolean.
func Boolean(c *cursor.Cursor) (*bool, error) { return element(c, ParseBoolean) }

// Integer decodes the element at the cursor as a 64-bit integer.
func Integer(c *cursor.Cursor) (*int64, error) { return element(c, ParseInteger) }

// Decimal decodes the element at the cursor as a decimal number.
func Decimal(c *cursor.Cursor) (*float64, error) { return element(c, ParseDecimal) }

// Date decodes the element at the cursor as a timestamp.
func Date(c *cursor.Cursor) (*time.Time, error) { return element(c, ParseDate) }

// Strings decodes the element at the cursor as a list of strings.
//
// If the element has child elements, each child's text is one item,
// in document order. Otherwise the element's text is split on white space.
// An empty element yields an empty, non-nil list.
func Strings(c *cursor.Cursor) ([]string, error) {
	ok, err := c.Forward()
	if err != nil || !ok {
		return nil, err
	}
	if err := c.Read(); err != nil {
		return nil, err
	}
	items := []string{}
	var direct strings.Builder
	var children bool
	for {
		switch t := c.Token().(type) {
		case xml.StartElement:
			s, err := c.Text()
			if err != nil {
				return nil, err
			}
			items = append(items, s)
			children = true
			continue
		case xml.EndElement:
			if !children {
				items = append(items, strings.Fields(direct.String())...)
			}
			return items, c.Read()
		case xml.CharData:
			direct.Write(t)
		case nil:
			return nil, errors.WithStack(io.ErrUnexpectedEOF)
		}
		if err := c.Read(); err != nil {
			return nil, err
		}
	}
}

func list[T any](c *cursor.Cursor, parse func(string) (T, error)) ([]T, error) {
	name := c.NodeName()
	items, err := Strings(c)
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := parse(item)
		if err != nil {
			return nil, annotate(err, name)
		}
		out = append(out, v)
	}
	return out, nil
}

// Booleans decodes the element at the cursor as a list of booleans.
func Booleans(c *cursor.Cursor) ([]bool, error) { return list(c, ParseBoolean) }

// Integers decodes the element at the cursor as a list of integers.
func Integers(c *cursor.Cursor) ([]int64, error) { return list(c, ParseInteger) }

// Decimals decodes the element at the cursor as a list of decimals.
func Decimals(c *cursor.Cursor) ([]float64, error) { return list(c, ParseDecimal) }

// Dates decodes the element at the cursor as a list of timestamps.
func Dates(c *cursor.Cursor) ([]time.Time, error) { return list(c, ParseDate) }
