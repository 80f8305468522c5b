package xmlerr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		json  string
	}{
		{
			err:   Format("maybe", WithElement("enabled"), WithMessage("invalid boolean")),
			error: `format error element:enabled value:"maybe" invalid boolean`,
			json:  `{"kind":"format","element":"enabled","value":"maybe","message":"invalid boolean"}`,
		},

		{
			err:   UnknownEnumValue("vm_status", "bogus", WithElement("status")),
			error: `unknown-enum-value error element:status value:"bogus" no symbol in enum vm_status`,
			json:  `{"kind":"unknown-enum-value","element":"status","value":"bogus","message":"no symbol in enum vm_status"}`,
		},

		{
			err:   UnregisteredTag("widget"),
			error: "unregistered-tag error element:widget",
			json:  `{"kind":"unregistered-tag","element":"widget"}`,
		},

		{
			err:   TypeMismatch("vm", "*types.Vm", 42),
			error: "type-mismatch error element:vm want *types.Vm, got int",
			json:  `{"kind":"type-mismatch","element":"vm","message":"want *types.Vm, got int"}`,
		},

		{
			err:   Fault(404, "Operation Failed", "Entity not found: 123"),
			error: "fault error code:404 reason:Operation Failed detail:Entity not found: 123",
			json:  `{"kind":"fault","code":404,"reason":"Operation Failed","detail":"Entity not found: 123"}`,
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())
			bJSON, err := json.Marshal(tc.err)
			check.NoError(err)
			check.Equal(tc.json, string(bJSON))

			ev := Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(&ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestCause(t *testing.T) {
	a := assert.New(t)
	_, cause := strconv.ParseInt("x", 10, 64)
	err := Format("x", WithElement("memory"), WithCause(cause))
	a.Equal(`format error element:memory value:"x": `+cause.Error(), err.Error())
	a.True(errors.Is(err, cause))

	wrapped := errors.Wrap(err, "decoding <vm>")
	a.True(IsFormat(wrapped))
	a.False(IsFault(wrapped))
	got, ok := As(wrapped)
	a.True(ok)
	a.Equal("memory", got.Element)

	_, ok = As(errors.New("plain"))
	a.False(ok)
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindFormat, KindUnknownEnumValue, KindUnregisteredTag, KindTypeMismatch, KindFault} {
		t.Run(k.String(), func(t *testing.T) {
			a := assert.New(t)
			b, err := k.MarshalText()
			a.NoError(err)
			var got Kind
			a.NoError(got.UnmarshalText(b))
			a.Equal(k, got)
		})
	}
	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("nope")))
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
