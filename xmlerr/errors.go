package xmlerr

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Kind represents the decode error kind enumerate
type Kind int

const (
	// KindFormat is malformed scalar text (boolean, number or date)
	KindFormat Kind = iota
	// KindUnknownEnumValue is enum wire text matching no symbol
	KindUnknownEnumValue
	// KindUnregisteredTag is a registry lookup for a tag with no decoder
	KindUnregisteredTag
	// KindTypeMismatch is a registered decoder returning an unexpected type
	KindTypeMismatch
	// KindFault is an API fault reported by the server
	KindFault
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindUnknownEnumValue:
		return "unknown-enum-value"
	case KindUnregisteredTag:
		return "unregistered-tag"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindFault:
		return "fault"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "format":
		*k = KindFormat
	case "unknown-enum-value":
		*k = KindUnknownEnumValue
	case "unregistered-tag":
		*k = KindUnregisteredTag
	case "type-mismatch":
		*k = KindTypeMismatch
	case "fault":
		*k = KindFault
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error is a decode (or API fault) error.
//
// Element names the XML element being decoded, if known. Value holds the
// offending wire text. For KindFault errors Code is the HTTP status code and
// Reason/Detail carry the server's fault text.
type Error struct {
	Kind    Kind   `json:"kind"`
	Element string `json:"element,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Detail  string `json:"detail,omitempty"`

	cause error
}

func (e *Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Code != 0 {
		s += fmt.Sprintf(" code:%d", e.Code)
	}
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Value != "" {
		s += fmt.Sprintf(" value:%q", e.Value)
	}
	if e.Reason != "" {
		s += " reason:" + e.Reason
	}
	if e.Detail != "" {
		s += " detail:" + e.Detail
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

func build(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format returns a malformed scalar error for the text value.
func Format(value string, opts ...Option) *Error {
	return build(&Error{Kind: KindFormat, Value: value}, opts)
}

// UnknownEnumValue returns an error for wire text which matches no symbol
// of the named enumeration.
func UnknownEnumValue(enum, value string, opts ...Option) *Error {
	return build(&Error{
		Kind:    KindUnknownEnumValue,
		Value:   value,
		Message: "no symbol in enum " + enum,
	}, opts)
}

// UnregisteredTag returns an error for a tag with no registered decoder.
func UnregisteredTag(tag string, opts ...Option) *Error {
	return build(&Error{Kind: KindUnregisteredTag, Element: tag}, opts)
}

// TypeMismatch returns an error for a decoder registered for tag that
// produced a value of type got where want was expected.
func TypeMismatch(tag, want string, got interface{}, opts ...Option) *Error {
	return build(&Error{
		Kind:    KindTypeMismatch,
		Element: tag,
		Message: fmt.Sprintf("want %s, got %T", want, got),
	}, opts)
}

// Fault returns an API fault error.
func Fault(code int, reason, detail string, opts ...Option) *Error {
	return build(&Error{Kind: KindFault, Code: code, Reason: reason, Detail: detail}, opts)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err's chain holds an *Error of kind k.
func Is(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}

func IsFormat(err error) bool           { return Is(err, KindFormat) }
func IsUnknownEnumValue(err error) bool { return Is(err, KindUnknownEnumValue) }
func IsUnregisteredTag(err error) bool  { return Is(err, KindUnregisteredTag) }
func IsTypeMismatch(err error) bool     { return Is(err, KindTypeMismatch) }
func IsFault(err error) bool            { return Is(err, KindFault) }
