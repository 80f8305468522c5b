package xmlutil

import "encoding/xml"

// XMLName returns an xml.Name holding only a local name. Documents handled
// by this module carry no namespaces.
func XMLName(local string) xml.Name { return xml.Name{Local: local} }

// StartElement returns a start element named local, carrying attrs in the
// order given. Attributes with an empty value are dropped.
func StartElement(local string, attrs ...xml.Attr) xml.StartElement {
	se := xml.StartElement{Name: XMLName(local)}
	for _, attr := range attrs {
		if attr.Value != "" {
			se.Attr = append(se.Attr, attr)
		}
	}
	return se
}

// Attr is a shortcut for an unqualified xml.Attr.
func Attr(local, value string) xml.Attr { return xml.Attr{Name: XMLName(local), Value: value} }
