// Package style turns spreadsheet cell formatting into inline CSS declarations.
package style

import "strings"

// Property is a single CSS property/value pair.
type Property struct {
	Name  string
	Value string
}

// Declaration is an ordered list of CSS properties. Order only matters for
// reproducible output; rules never emit the same property twice.
type Declaration []Property

// Empty reports whether the declaration has no properties.
func (d Declaration) Empty() bool {
	return len(d) == 0
}

// Has reports whether the declaration contains the named property.
func (d Declaration) Has(name string) bool {
	for _, p := range d {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Get returns the value of the named property.
func (d Declaration) Get(name string) (string, bool) {
	for _, p := range d {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the declaration as the content of a style attribute.
func (d Declaration) String() string {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range d {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
	}
	return b.String()
}

func (d *Declaration) add(name, value string) {
	*d = append(*d, Property{Name: name, Value: value})
}
