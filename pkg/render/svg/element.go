// Package svg is a small declarative SVG element tree.
//
// Renderers build trees of [Element] values instead of writing markup
// directly, which lets tests count cells and axes and lets several sinks
// (SVG text, PNG raster) consume the same tree. [Encode] serializes a tree
// deterministically: attributes keep insertion order and numbers are
// formatted with at most two decimals.
package svg

import (
	"strconv"
	"strings"
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the visual tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New returns an element with the given name and attributes, given as
// alternating name/value pairs.
func New(name string, attrs ...string) *Element {
	e := &Element{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Set(attrs[i], attrs[i+1])
	}
	return e
}

// Set sets an attribute, replacing an existing one of the same name.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetNum sets a numeric attribute.
func (e *Element) SetNum(name string, v float64) *Element {
	return e.Set(name, Num(v))
}

// Get returns the value of an attribute.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Float returns a numeric attribute, or 0 when it is missing or malformed.
func (e *Element) Float(name string) float64 {
	v, _ := e.Get(name)
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

// Append adds children, skipping nil elements.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// HasClass reports whether the element's class list contains class.
func (e *Element) HasClass(class string) bool {
	v, _ := e.Get("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk calls fn for e and every descendant in document order.
// Returning false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// FindAll returns every element in the tree carrying class.
func (e *Element) FindAll(class string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.HasClass(class) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Find returns the first element carrying class, or nil.
func (e *Element) Find(class string) *Element {
	if all := e.FindAll(class); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Count returns the number of elements carrying class.
func (e *Element) Count(class string) int {
	return len(e.FindAll(class))
}

// Num formats a coordinate with at most two decimals and no trailing zeros.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// Translate returns a transform attribute value.
func Translate(x, y float64) string {
	return "translate(" + Num(x) + "," + Num(y) + ")"
}

// ParseTranslate extracts the offsets of a translate(x,y) transform.
func ParseTranslate(transform string) (x, y float64, ok bool) {
	s := strings.TrimSpace(transform)
	if !strings.HasPrefix(s, "translate(") || !strings.HasSuffix(s, ")") {
		return 0, 0, false
	}
	parts := strings.FieldsFunc(s[len("translate("):len(s)-1], func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) == 0 || len(parts) > 2 {
		return 0, 0, false
	}
	var err error
	if x, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, false
	}
	if len(parts) == 2 {
		if y, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return 0, 0, false
		}
	}
	return x, y, true
}
