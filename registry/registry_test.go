package registry

import (
	"strings"
	"testing"

	"github.com/andaru/apixml/cursor"
	"github.com/andaru/apixml/xmlerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// named returns a Func which consumes the element and returns label.
func named(label string) Func {
	return func(c *cursor.Cursor, r *Registry) (interface{}, error) {
		if ok, err := c.Forward(); err != nil || !ok {
			return nil, err
		}
		return label, c.Skip()
	}
}

func TestResolve(t *testing.T) {
	a := assert.New(t)
	r := New()
	r.RegisterOne("vm", named("vm/one"))
	r.RegisterMany("vms", named("vm/many"))

	fn, err := r.ResolveOne("vm")
	a.NoError(err)
	a.NotNil(fn)
	fn, err = r.ResolveMany("vms")
	a.NoError(err)
	a.NotNil(fn)

	// the two tables are separate
	_, err = r.ResolveMany("vm")
	a.True(xmlerr.IsUnregisteredTag(err))
	_, err = r.ResolveOne("vms")
	a.True(xmlerr.IsUnregisteredTag(err))

	_, many, err := r.Resolve("vms")
	a.NoError(err)
	a.True(many)
	_, many, err = r.Resolve("vm")
	a.NoError(err)
	a.False(many)

	a.Equal([]string{"vm", "vms"}, r.Tags())
	a.Equal(2, r.Len())
}

func TestUnregistered(t *testing.T) {
	r := New()
	r.RegisterOne("vm", named("vm"))
	for _, tag := range []string{"", "host", "VM", "vms", "link"} {
		t.Run(tag, func(t *testing.T) {
			a := assert.New(t)
			_, err := r.ResolveOne(tag)
			a.True(xmlerr.IsUnregisteredTag(err), "%v", err)
			_, _, err = r.Resolve(tag)
			e, ok := xmlerr.As(err)
			if a.True(ok) {
				a.Equal(xmlerr.KindUnregisteredTag, e.Kind)
				a.Equal(tag, e.Element)
			}
		})
	}
}

func TestReRegister(t *testing.T) {
	a := assert.New(t)
	r := New()
	r.RegisterOne("vm", named("first"))
	r.RegisterOne("vm", named("second"))
	a.Equal(1, r.Len())

	got, err := r.Decode(cursor.New(strings.NewReader(`<vm/>`)))
	a.NoError(err)
	a.Equal("second", got)

	r.Reset()
	a.Equal(0, r.Len())
	a.Empty(r.Tags())
}

func TestDecode(t *testing.T) {
	r := New()
	r.RegisterOne("vm", named("vm"))
	r.RegisterMany("vms", named("vms"))

	for _, tc := range []struct {
		input   string
		want    interface{}
		wantErr bool
	}{
		{input: `<?xml version="1.0"?><vm id="1"><name>a</name></vm>`, want: "vm"},
		{input: `<vms/>`, want: "vms"},
		{input: ``},
		{input: `<!-- only a comment -->`},
		{input: `<widget/>`, wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := r.Decode(cursor.New(strings.NewReader(tc.input)))
			if tc.wantErr {
				a.True(xmlerr.IsUnregisteredTag(err))
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestParseTable(t *testing.T) {
	a := assert.New(t)
	table, err := ParseTable([]byte(`
- type: Vm
  one: vm
  many: vms
- {type: CustomProperty, one: custom_property, many: custom_properties}
- type: Fault
  one: fault
`))
	require.NoError(t, err)
	a.Equal(Table{
		{Type: "Vm", One: "vm", Many: "vms"},
		{Type: "CustomProperty", One: "custom_property", Many: "custom_properties"},
		{Type: "Fault", One: "fault"},
	}, table)

	e, ok := table.Lookup("CustomProperty")
	a.True(ok)
	a.Equal("custom_properties", e.Many)
	_, ok = table.Lookup("Widget")
	a.False(ok)

	out, err := table.Marshal()
	a.NoError(err)
	again, err := ParseTable(out)
	a.NoError(err)
	a.Equal(table, again)
}

func TestParseTableErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{name: "not yaml", input: "- {type: Vm", want: "failed to parse tag table"},
		{name: "not a list", input: "type: Vm", want: "failed to parse tag table"},
		{name: "missing type", input: "- one: vm", want: "missing type"},
		{name: "no tags", input: "- type: Vm", want: "no tags"},
		{name: "duplicate", input: "- {type: Vm, one: vm}\n- {type: Host, many: vm}", want: `tag "vm" already used by Vm`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tc.input))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.want)
			}
		})
	}
}
