package cursor

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  []string // node names seen, "/" prefix for end tags
	}{
		{name: "empty input"},
		{name: "prolog only", input: `<?xml version="1.0"?><!-- nothing -->`},
		{
			name:  "self-closing",
			input: `<?xml version="1.0"?><disks href="/api/disks"/>`,
			want:  []string{"disks", "/disks"},
		},
		{
			name:  "nested with text",
			input: "<vm>\n  <name>foo</name>\n  <memory>1024</memory>\n</vm>",
			want:  []string{"vm", "name", "/name", "memory", "/memory", "/vm"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			c := New(strings.NewReader(tc.input))
			var got []string
			for !c.Exhausted() {
				start, err := c.Forward()
				require.NoError(t, err)
				switch {
				case start:
					got = append(got, c.NodeName())
				case !c.Exhausted():
					got = append(got, "/"+c.NodeName())
				}
				require.NoError(t, c.Read())
			}
			a.Equal(tc.want, got)
		})
	}
}

func TestForwardIdempotent(t *testing.T) {
	a := assert.New(t)
	c := New(strings.NewReader(`<bios><boot_menu/></bios>`))
	for i := 0; i < 3; i++ {
		ok, err := c.Forward()
		a.NoError(err)
		a.True(ok)
		a.Equal("bios", c.NodeName())
	}
}

func TestAttr(t *testing.T) {
	a := assert.New(t)
	c := New(strings.NewReader(`<vm href="/api/vms/123" id="123"><name>x</name></vm>`))
	_, ok := c.Attr("href")
	a.False(ok, "no attributes before the first Forward")

	_, err := c.Forward()
	a.NoError(err)
	href, ok := c.Attr("href")
	a.True(ok)
	a.Equal("/api/vms/123", href)
	id, _ := c.Attr("id")
	a.Equal("123", id)
	_, ok = c.Attr("rel")
	a.False(ok)

	a.NoError(c.Read())
	_, err = c.Forward()
	a.NoError(err)
	_, ok = c.Attr("href")
	a.False(ok, "attributes belong to <vm>, not <name>")
}

func TestEmptyElement(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  bool
	}{
		{input: `<disks/>`, want: true},
		{input: `<disks></disks>`, want: true},
		{input: `<disks> </disks>`, want: false},
		{input: `<disks><disk/></disks>`, want: false},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := New(strings.NewReader(tc.input))
			_, err := c.Forward()
			a.NoError(err)
			empty, err := c.EmptyElement()
			a.NoError(err)
			a.Equal(tc.want, empty)
			// the lookahead must not disturb the position
			a.Equal("disks", c.NodeName())
			a.NoError(c.Skip())
			a.True(c.Exhausted())
		})
	}
}

func TestSkip(t *testing.T) {
	a := assert.New(t)
	c := New(strings.NewReader(`<vm><unknown><deep><deeper/></deep></unknown><name>foo</name></vm>`))
	_, err := c.Forward()
	a.NoError(err)
	a.NoError(c.Read())

	ok, err := c.Forward()
	a.NoError(err)
	a.True(ok)
	a.Equal("unknown", c.NodeName())
	a.NoError(c.Skip())

	ok, err = c.Forward()
	a.NoError(err)
	a.True(ok)
	a.Equal("name", c.NodeName())
	text, err := c.Text()
	a.NoError(err)
	a.Equal("foo", text)

	ok, err = c.Forward()
	a.NoError(err)
	a.False(ok)
	a.Equal("vm", c.NodeName())
	_, isEnd := c.Token().(xml.EndElement)
	a.True(isEnd)
}

func TestText(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
	}{
		{input: `<name>foo</name>`, want: "foo"},
		{input: `<name> foo bar </name>`, want: " foo bar "},
		{input: `<name/>`, want: ""},
		{input: `<name>a<b>b</b>c</name>`, want: "abc"},
		{input: `<name>&lt;x&gt;</name>`, want: "<x>"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := New(strings.NewReader(tc.input + `<next/>`))
			_, err := c.Forward()
			a.NoError(err)
			got, err := c.Text()
			a.NoError(err)
			a.Equal(tc.want, got)
			ok, err := c.Forward()
			a.NoError(err)
			a.True(ok)
			a.Equal("next", c.NodeName())
		})
	}
}

func TestTextNotOnStart(t *testing.T) {
	c := New(strings.NewReader(`<a/>`))
	_, err := c.Text()
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	a := assert.New(t)

	c := New(strings.NewReader(`<vm><name>foo</vm>`))
	_, err := c.Forward()
	a.NoError(err)
	a.NoError(c.Read())
	_, err = c.Forward()
	a.NoError(err)
	_, err = c.Text()
	var syntaxErr *xml.SyntaxError
	a.True(errors.As(err, &syntaxErr), "%v", err)

	c = New(strings.NewReader(`<vm><name>`))
	_, err = c.Forward()
	a.NoError(err)
	a.Error(c.Skip())
}

func TestContextCancelled(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	c := New(strings.NewReader(`<vms><vm/><vm/></vms>`), WithContext(ctx))
	ok, err := c.Forward()
	a.NoError(err)
	a.True(ok)
	empty, err := c.EmptyElement()
	a.NoError(err)
	a.False(empty)
	cancel()
	a.NoError(c.Read(), "the <vm> lookahead is already buffered")
	err = c.Skip()
	a.True(errors.Is(err, context.Canceled), "%v", err)
}

func TestNonStrict(t *testing.T) {
	a := assert.New(t)
	c := New(strings.NewReader(`<vm><name>a & b</name></vm>`), WithStrict(false))
	_, err := c.Forward()
	a.NoError(err)
	a.NoError(c.Read())
	_, err = c.Forward()
	a.NoError(err)
	text, err := c.Text()
	a.NoError(err)
	a.Equal("a & b", text)
}
