package svg2vd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
)

// Attr is one attribute of a source element. Names are local except for
// xlink:href which keeps its prefix.
type Attr struct {
	Name, Value string
}

// Attrs keeps attributes in document order.
type Attrs []Attr

// Lookup returns the value of the named attribute.
func (a Attrs) Lookup(name string) (string, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return "", false
}

// Get returns the value of the named attribute or def.
func (a Attrs) Get(name, def string) string {
	if v, ok := a.Lookup(name); ok {
		return v
	}
	return def
}

// SourceNode is an element of the parsed input document. It is never
// modified after parsing.
type SourceNode struct {
	Tag      string
	Foreign  bool // element is outside the SVG namespace
	Attrs    Attrs
	Children []*SourceNode
	Text     string // character data, kept for style elements
}

// ID returns the id attribute.
func (n *SourceNode) ID() string {
	return strings.TrimSpace(n.Attrs.Get("id", ""))
}

// Href returns the referenced id of an href or xlink:href attribute
// without its leading '#'.
func (n *SourceNode) Href() string {
	v, ok := n.Attrs.Lookup("href")
	if !ok {
		v = n.Attrs.Get("xlink:href", "")
	}
	return strings.TrimPrefix(strings.TrimSpace(v), "#")
}

// Walk calls fn for n and every descendant in document order.
func (n *SourceNode) Walk(fn func(*SourceNode)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

func attrName(a xml.Name) (string, bool) {
	switch a.Space {
	case "":
		return a.Local, a.Local != "xmlns"
	case xlinkNS, "xlink":
		return "xlink:" + a.Local, true
	case svgNS:
		return a.Local, true
	}
	// namespace declarations and editor specific attributes
	return "", false
}

// ParseSource reads an XML document into a tree of SourceNodes and returns
// its root element.
func ParseSource(r io.Reader) (*SourceNode, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *SourceNode
		stack []*SourceNode
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Msg: "malformed document", Err: err}
		}
		switch se := t.(type) {
		case xml.StartElement:
			n := &SourceNode{
				Tag:     se.Name.Local,
				Foreign: se.Name.Space != "" && se.Name.Space != svgNS,
			}
			for _, attr := range se.Attr {
				if name, ok := attrName(attr.Name); ok {
					n.Attrs = append(n.Attrs, Attr{Name: name, Value: attr.Value})
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Msg: "more than one root element"}
				}
				root = n
			} else {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(se)
			}
		}
	}
	if root == nil {
		return nil, &ParseError{Msg: "no element found", Err: ErrEmptyDocument}
	}
	if root.Tag != "svg" || root.Foreign {
		return nil, &ParseError{Msg: fmt.Sprintf("root element is <%s>", root.Tag), Err: ErrNoRoot}
	}
	return root, nil
}
