package sgml

// Element is a node of a parsed OFX document. Leaf elements carry Text, aggregates carry
// Children in document order. Sibling names may repeat.
type Element struct {
	Name     string
	Text     string
	Children []*Element
}

// IsLeaf returns true if the element has no children.
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}

// First returns the first child with the given name, or nil.
func (e *Element) First(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// All returns every child with the given name in document order.
func (e *Element) All(name string) []*Element {
	if e == nil {
		return nil
	}
	var result []*Element
	for _, c := range e.Children {
		if c.Name == name {
			result = append(result, c)
		}
	}
	return result
}

// Value returns the text of the first child with the given name and whether that child exists.
func (e *Element) Value(name string) (string, bool) {
	c := e.First(name)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

// Names returns the names of the direct children in document order.
func (e *Element) Names() []string {
	names := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		names = append(names, c.Name)
	}
	return names
}
