package metadata

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
)

// Document is one record's parsed metadata. It is mutable: transformer rules
// add, rewrite and remove field occurrences in place. A Document is owned by
// a single worker run and is not safe for concurrent use.
type Document struct {
	identifier string
	root       *xmlquery.Node
	datestamp  time.Time
}

// Parse builds a Document from raw XML. The identifier is the record's OAI
// identifier and is carried alongside the tree for diagnostics.
func Parse(identifier, raw string) (*Document, error) {
	node, err := xmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, errors.Join(ErrParse, fmt.Errorf("record %s: %w", identifier, err))
	}
	return &Document{identifier: identifier, root: node}, nil
}

// Identifier returns the record identifier this document belongs to.
func (d *Document) Identifier() string { return d.identifier }

// Datestamp returns the document's modification timestamp. The zero value
// means the document was never modified in this run.
func (d *Document) Datestamp() time.Time { return d.datestamp }

// SetDatestamp stamps the document as modified. The transformer aggregate
// calls this exactly once after a pass that mutated the document.
func (d *Document) SetDatestamp(t time.Time) { d.datestamp = t }

// fieldXPath translates a dotted field name into the XOAI element hierarchy.
// "dc.title" becomes //element[@name='dc']/element[@name='title']//field.
func fieldXPath(field string) string {
	parts := strings.Split(field, ".")
	var sb strings.Builder
	sb.WriteString("/")
	for _, p := range parts {
		sb.WriteString(fmt.Sprintf("/element[@name='%s']", p))
	}
	sb.WriteString("//field")
	return sb.String()
}

// FieldNodes returns the field nodes for all occurrences of the named field,
// in document order.
func (d *Document) FieldNodes(field string) []*xmlquery.Node {
	nodes, err := xmlquery.QueryAll(d.root, fieldXPath(field))
	if err != nil {
		// A dotted field name always yields a valid expression; an error
		// here means the name itself was empty or malformed.
		return nil
	}
	return nodes
}

// FieldOccurrences returns the text content of every occurrence of the named
// field, in document order. Occurrences without a text child yield nil.
func (d *Document) FieldOccurrences(field string) []*string {
	nodes := d.FieldNodes(field)
	out := make([]*string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeText(n))
	}
	return out
}

// NodesByXPath evaluates an arbitrary XPath expression against the document.
func (d *Document) NodesByXPath(expr string) ([]*xmlquery.Node, error) {
	nodes, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidXPath, err)
	}
	return nodes, nil
}

// AddFieldOccurrence appends a new occurrence of the named field, creating
// the element hierarchy as needed, and returns the created field node.
func (d *Document) AddFieldOccurrence(field, value string) *xmlquery.Node {
	parent := d.metadataRoot()
	for _, part := range strings.Split(field, ".") {
		parent = d.childElement(parent, part)
	}
	fieldNode := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "field"}
	text := &xmlquery.Node{Type: xmlquery.TextNode, Data: value}
	xmlquery.AddChild(fieldNode, text)
	xmlquery.AddChild(parent, fieldNode)
	return fieldNode
}

// RemoveNode detaches a node previously obtained from this document.
func (d *Document) RemoveNode(n *xmlquery.Node) {
	xmlquery.RemoveFromTree(n)
}

// SetNodeValue replaces the text content of a field node.
func (d *Document) SetNodeValue(n *xmlquery.Node, value string) {
	// Drop existing children, then attach a single text node.
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		xmlquery.RemoveFromTree(c)
	}
	xmlquery.AddChild(n, &xmlquery.Node{Type: xmlquery.TextNode, Data: value})
}

// String serializes the document back to XML.
func (d *Document) String() string {
	return d.root.OutputXML(false)
}

// metadataRoot returns the first element node under the document node, the
// container all element hierarchies hang from.
func (d *Document) metadataRoot() *xmlquery.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	// Empty document: create a metadata container so additions still work.
	container := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "metadata"}
	xmlquery.AddChild(d.root, container)
	return container
}

// childElement finds a direct <element name="..."> child, creating it when
// missing.
func (d *Document) childElement(parent *xmlquery.Node, name string) *xmlquery.Node {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == "element" && c.SelectAttr("name") == name {
			return c
		}
	}
	el := &xmlquery.Node{Type: xmlquery.ElementNode, Data: "element"}
	xmlquery.AddAttr(el, "name", name)
	xmlquery.AddChild(parent, el)
	return el
}

// NodeText returns the text content of a field node, or nil when the node
// has no text child. The distinction matters: rules must report a missing
// value ("NULL") differently from an empty string.
func NodeText(n *xmlquery.Node) *string {
	if n == nil || n.FirstChild == nil {
		return nil
	}
	text := n.InnerText()
	return &text
}
