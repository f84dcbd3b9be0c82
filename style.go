// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"strings"

	"golang.org/x/exp/slices"
)

// StyleSet maps lower case property names to their raw values.
type StyleSet map[string]string

// Get returns the value for key or def when it is not set.
func (s StyleSet) Get(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

// Fraction reads key as a number or a percentage.
func (s StyleSet) Fraction(key string, def float64) float64 {
	if f, ok, err := s.readNumber(key, true); ok && err == nil {
		return f
	}
	return def
}

// readNumber reads key as a length, or as a fraction when frac is set.
// ok is false when key is not set.
func (s StyleSet) readNumber(key string, frac bool) (f float64, ok bool, err error) {
	v, ok := s[key]
	if !ok {
		return 0, false, nil
	}
	if frac {
		f, err = readFraction(v)
	} else {
		f, err = parseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	}
	return f, true, err
}

// inheritable lists the properties a child takes from its parent when it
// does not set them itself.
var inheritable = []string{
	"fill", "fill-opacity", "fill-rule",
	"stroke", "stroke-width", "stroke-opacity",
	"stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
	"color", "visibility",
}

// Inherit returns the properties of s a child element starts from.
func (s StyleSet) Inherit() StyleSet {
	out := make(StyleSet, len(inheritable))
	for k, v := range s {
		if slices.Contains(inheritable, k) {
			out[k] = v
		}
	}
	return out
}

// Cascade merges own over the inherited part of parent. An "inherit" value
// keeps what the parent has.
func Cascade(parent, own StyleSet) StyleSet {
	out := parent.Inherit()
	for k, v := range own {
		if v == "inherit" {
			if pv, ok := parent[k]; ok {
				out[k] = pv
			}
			continue
		}
		out[k] = v
	}
	return out
}

// mergeDeclarations adds "k:v;k:v" declarations to s.
func mergeDeclarations(s StyleSet, decl string) {
	for _, pair := range strings.Split(decl, ";") {
		i := strings.IndexByte(pair, ':')
		if i < 0 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(pair[:i]))
		v := strings.TrimSpace(pair[i+1:])
		v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
		if k != "" {
			s[k] = v
		}
	}
}

// StyleSheet maps class names to their declarations.
type StyleSheet map[string]StyleSet

// ParseStyleSheet reads the class rules of a style block. Only simple
// selectors are understood; a leading '.' is dropped to get the class name.
// Later rules for the same selector merge over earlier ones.
func ParseStyleSheet(css string) StyleSheet {
	sheet := make(StyleSheet)
	css = stripComments(css)
	for _, rule := range strings.Split(css, "}") {
		i := strings.IndexByte(rule, '{')
		if i < 0 {
			continue
		}
		for _, sel := range strings.Split(rule[:i], ",") {
			sel = strings.TrimPrefix(strings.TrimSpace(sel), ".")
			if sel == "" {
				continue
			}
			set, ok := sheet[sel]
			if !ok {
				set = make(StyleSet)
				sheet[sel] = set
			}
			mergeDeclarations(set, rule[i+1:])
		}
	}
	return sheet
}

func stripComments(css string) string {
	var sb strings.Builder
	for {
		i := strings.Index(css, "/*")
		if i < 0 {
			break
		}
		sb.WriteString(css[:i])
		j := strings.Index(css[i+2:], "*/")
		if j < 0 {
			return sb.String()
		}
		css = css[i+2+j+2:]
	}
	sb.WriteString(css)
	return sb.String()
}

// Resolve computes the element's own style: matching class rules, then every
// attribute as a presentation property, then the inline style attribute.
// Later sources win.
func (sh StyleSheet) Resolve(n *SourceNode) StyleSet {
	s := make(StyleSet)
	for _, class := range strings.Fields(n.Attrs.Get("class", "")) {
		for k, v := range sh[class] {
			s[k] = v
		}
	}
	for _, at := range n.Attrs {
		switch at.Name {
		case "style", "class":
			continue
		}
		s[strings.ToLower(at.Name)] = strings.TrimSpace(at.Value)
	}
	mergeDeclarations(s, n.Attrs.Get("style", ""))
	return s
}

// hidden reports whether the element and its subtree produce no output.
func (s StyleSet) hidden() bool {
	if strings.TrimSpace(s.Get("display", "")) == "none" {
		return true
	}
	return s.Fraction("opacity", 1) <= 0
}

// invisible reports whether a leaf is drawn at all.
func (s StyleSet) invisible() bool {
	switch s.Get("visibility", "visible") {
	case "hidden", "collapse":
		return true
	}
	return false
}
