/*
Package apixml maps the XML documents of a REST API onto typed Go values.

Documents use lower_snake_case element names, carry identity in href and
id attributes, and may replace a sub-collection with a
<link rel="..." href="..."/> pointing at where it can be retrieved.

The cursor package walks the token stream. The scalar package decodes
leaf elements. The reader package holds one decoder per type in the types
package, found through a registry keyed by tag name so that types may
refer to each other, and to themselves, recursively. The writer package
encodes the same values back to XML, and the dispatch package decodes API
responses, turns fault documents into errors and follows links.

	r, err := reader.NewRegistry()
	if err != nil {
		return err
	}
	vm, err := reader.ReadOne[types.Vm](r, body)
*/
package apixml
