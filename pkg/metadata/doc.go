// Package metadata wraps a harvested record's XML metadata in a mutable
// document with field-oriented accessors.
//
// Documents follow the XOAI layout: nested <element name="..."> nodes with
// terminal <field> nodes holding the actual values. Field names use dotted
// notation ("dc.title", "dc.identifier.uri") that maps onto the element
// hierarchy; XPath expressions are supported for rules that need to address
// arbitrary node sets.
//
// Built on github.com/antchfx/xmlquery, which provides XPath evaluation and
// in-place tree mutation.
package metadata
