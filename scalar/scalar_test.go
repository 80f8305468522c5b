package scalar

import (
	"strings"
	"testing"
	"time"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/xmlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf returns a cursor over input followed by a <next/> sibling element.
func leaf(input string) *cursor.Cursor {
	return cursor.New(strings.NewReader("<root>" + input + "<next/></root>"))
}

// enter positions c inside the <root> element.
func enter(t *testing.T, c *cursor.Cursor) {
	_, err := c.Forward()
	require.NoError(t, err)
	require.NoError(t, c.Read())
}

// assertNext checks the cursor was left ready for the <next/> sibling.
func assertNext(a *assert.Assertions, c *cursor.Cursor) {
	ok, err := c.Forward()
	a.NoError(err)
	a.True(ok)
	a.Equal("next", c.NodeName())
}

func TestBoolean(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    *bool
		wantErr bool
	}{
		{input: "<enabled>true</enabled>", want: ptr(true)},
		{input: "<enabled>TRUE</enabled>", want: ptr(true)},
		{input: "<enabled>False</enabled>", want: ptr(false)},
		{input: "<enabled>1</enabled>", want: ptr(true)},
		{input: "<enabled>0</enabled>", want: ptr(false)},
		{input: "<enabled> true\n</enabled>", want: ptr(true)},
		{input: "<enabled/>"},
		{input: "<enabled>yes</enabled>", wantErr: true},
		{input: "<enabled>truth</enabled>", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := leaf(tc.input)
			enter(t, c)
			got, err := Boolean(c)
			if tc.wantErr {
				a.True(xmlerr.IsFormat(err), "%v", err)
				e, _ := xmlerr.As(err)
				a.Equal("enabled", e.Element)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
			assertNext(a, c)
		})
	}
}

func TestInteger(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    *int64
		wantErr bool
	}{
		{input: "<vlan>42</vlan>", want: ptr(int64(42))},
		{input: "<memory>-1</memory>", want: ptr(int64(-1))},
		{input: "<memory>1073741824000</memory>", want: ptr(int64(1073741824000))},
		{input: "<memory>9223372036854775807</memory>", want: ptr(int64(9223372036854775807))},
		{input: "<memory></memory>"},
		{input: "<memory>1.5</memory>", wantErr: true},
		{input: "<memory>12ab</memory>", wantErr: true},
		{input: "<memory>9223372036854775808</memory>", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := leaf(tc.input)
			enter(t, c)
			got, err := Integer(c)
			if tc.wantErr {
				a.True(xmlerr.IsFormat(err), "%v", err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
			assertNext(a, c)
		})
	}
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	c := leaf("<datum>0.25</datum><datum>1e3</datum><datum>x</datum>")
	enter(t, c)
	got, err := Decimal(c)
	a.NoError(err)
	a.Equal(0.25, *got)
	got, err = Decimal(c)
	a.NoError(err)
	a.Equal(1000.0, *got)
	_, err = Decimal(c)
	a.True(xmlerr.IsFormat(err))
}

func TestString(t *testing.T) {
	a := assert.New(t)
	c := leaf("<name> padded </name><comment/>")
	enter(t, c)
	got, err := String(c)
	a.NoError(err)
	a.Equal(" padded ", *got)
	got, err = String(c)
	a.NoError(err)
	if a.NotNil(got, "an empty element is present, not absent") {
		a.Equal("", *got)
	}
	assertNext(a, c)
}

func TestAbsent(t *testing.T) {
	a := assert.New(t)
	c := cursor.New(strings.NewReader("<root></root>"))
	enter(t, c)
	s, err := String(c)
	a.NoError(err)
	a.Nil(s)
	b, err := Boolean(c)
	a.NoError(err)
	a.Nil(b)
	l, err := Strings(c)
	a.NoError(err)
	a.Nil(l)
	// the parent's end tag is still there for the caller to consume
	a.Equal("root", c.NodeName())
}

func TestDate(t *testing.T) {
	cet := time.FixedZone("", 2*60*60)
	for _, tc := range []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2016-10-20T10:12:13.000+02:00", want: time.Date(2016, 10, 20, 10, 12, 13, 0, cet)},
		{input: "2016-10-20T10:12:13Z", want: time.Date(2016, 10, 20, 10, 12, 13, 0, time.UTC)},
		{input: "2016-10-20T10:12:13.5+0200", want: time.Date(2016, 10, 20, 10, 12, 13, 5e8, cet)},
		{input: "2016-10-20T10:12:13", want: time.Date(2016, 10, 20, 10, 12, 13, 0, time.UTC)},
		{input: "2016-10-20", want: time.Date(2016, 10, 20, 0, 0, 0, 0, time.UTC)},
		{input: "20/10/2016", wantErr: true},
		{input: "yesterday", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := leaf("<creation_time>" + tc.input + "</creation_time>")
			enter(t, c)
			got, err := Date(c)
			if tc.wantErr {
				a.True(xmlerr.IsFormat(err), "%v", err)
				return
			}
			a.NoError(err)
			if a.NotNil(got) {
				a.True(tc.want.Equal(*got), "want %v, got %v", tc.want, *got)
			}
			assertNext(a, c)
		})
	}
}

func TestStrings(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  []string
	}{
		{input: "<name_servers/>", want: []string{}},
		{input: "<name_servers></name_servers>", want: []string{}},
		{input: "<name_servers>  </name_servers>", want: []string{}},
		{input: "<name_servers>1.1.1.1 8.8.8.8\n9.9.9.9</name_servers>", want: []string{"1.1.1.1", "8.8.8.8", "9.9.9.9"}},
		{
			input: "<name_servers>\n <name_server>1.1.1.1</name_server>\n <name_server>a b</name_server>\n</name_servers>",
			want:  []string{"1.1.1.1", "a b"},
		},
		{input: "<name_servers><name_server/></name_servers>", want: []string{""}},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			c := leaf(tc.input)
			enter(t, c)
			got, err := Strings(c)
			a.NoError(err)
			a.Equal(tc.want, got)
			assertNext(a, c)
		})
	}
}

func TestLists(t *testing.T) {
	a := assert.New(t)
	c := leaf("<a>true 0</a><b><i>1</i><i>-2</i></b><d>1.5</d><t>2016-10-20</t><bad><i>x</i></bad>")
	enter(t, c)

	bools, err := Booleans(c)
	a.NoError(err)
	a.Equal([]bool{true, false}, bools)

	ints, err := Integers(c)
	a.NoError(err)
	a.Equal([]int64{1, -2}, ints)

	decs, err := Decimals(c)
	a.NoError(err)
	a.Equal([]float64{1.5}, decs)

	dates, err := Dates(c)
	a.NoError(err)
	a.Len(dates, 1)

	_, err = Integers(c)
	a.True(xmlerr.IsFormat(err))
	e, _ := xmlerr.As(err)
	a.Equal("bad", e.Element)
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	a.Equal("true", FormatBoolean(true))
	a.Equal("1073741824000", FormatInteger(1073741824000))
	a.Equal("0.25", FormatDecimal(0.25))
	a.Equal("2016-10-20T10:12:13+02:00", FormatDate(time.Date(2016, 10, 20, 10, 12, 13, 0, time.FixedZone("", 7200))))
}

func ptr[T any](v T) *T { return &v }
