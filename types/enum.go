package types

import (
	"fmt"

	"github.com/andaru/apixml/xmlerr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// enum is the closed symbol table of one enumerated type. Symbol i is the
// wire text of value i.
type enum[T ~int] struct {
	name    string
	symbols []string
}

// parse lower-cases s and maps it to its symbol.
func (e enum[T]) parse(s string) (T, error) {
	folded := cases.Lower(language.Und).String(s)
	for i, sym := range e.symbols {
		if sym == folded {
			return T(i), nil
		}
	}
	return 0, xmlerr.UnknownEnumValue(e.name, s)
}

func (e enum[T]) text(v T) string {
	if i := int(v); i >= 0 && i < len(e.symbols) {
		return e.symbols[i]
	}
	return fmt.Sprintf("%s(%d)", e.name, int(v))
}

func (e enum[T]) unmarshal(v *T, b []byte) error {
	parsed, err := e.parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
