/*
Package reader decodes API documents into the types package model.

Every type has a decoder built from a field table: a map from child tag
name to a setter that decodes that child into the object. Decoding an
element follows the same protocol for every type;

 1. Move onto the next start tag; if there is none the object is absent.
 2. Read the href attribute, and the id attribute for identified types.
 3. A self-closing element yields the object as is.
 4. For each child: run its setter if the tag is in the field table,
    remember it if it is a <link>, otherwise skip the whole subtree.
 5. Consume the end tag, then apply the remembered links.

Collections are decoded the same way: the container's href attribute is
kept, and every child is decoded as one object, in document order.

A <link rel="..." href="..."/> child stands in for a collection the
document did not inline. If rel names one of the type's link relations and
that field was not populated inline, the field is set to an empty
types.List carrying only the href. Unknown relations are ignored.

Nested objects are decoded through the registry by tag, so the decoders do
not reference each other directly. NewRegistry returns a registry holding
every decoder, bound to tags by the embedded tags.yaml table.

Unknown elements are skipped, never an error. Malformed scalars and
unknown enum text are errors and abort the decode.
*/
package reader
