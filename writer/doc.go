/*
Package writer serializes types package values to XML, in the form the
reader package decodes.

The href and id fields become attributes. Nil fields are omitted. A
types.List becomes a container element carrying the list's href, with one
child element per item. Enumerations are written as their lower-case
symbols, dates as RFC 3339 and booleans as true or false.

	var b bytes.Buffer
	if err := writer.New(&b, writer.WithIndent("", "  ")).Write(vm, ""); err != nil {
		return err
	}
*/
package writer
