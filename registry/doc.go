// Package registry maps XML tag names to decode functions.
//
// A Registry holds two tables: singular tags, whose functions decode one
// object, and collection tags, whose functions decode an ordered list. Type
// decoders look up the decoders of the types they contain at call time,
// so types may refer to each other (or to themselves) in any order.
//
// Registration is not synchronized. Populate a Registry during a single
// threaded initialization phase; afterwards it may be shared by any number
// of concurrent decodes, each on its own cursor.
//
// Which tags belong to which type is data, not a naming rule. A Table
// lists those associations and is usually loaded from YAML with ParseTable:
//
//	[{type: CustomProperty, one: custom_property, many: custom_properties}]
package registry
