// Package document reads the tagged-block project format into a generic node tree
// and provides the attribute codecs shared by every exported fragment.
package document

// Node represents a parsed document element
type Node interface {
	// Name returns element tag name
	Name() string
	// Attr returns attribute value or empty string
	Attr(name string) string
	// HasAttr reports whether attribute was present
	HasAttr(name string) bool
	// Children returns child elements in document order
	Children() []Node
	// Text returns character data directly enclosed by the element
	Text() string
}

// Element is the default Node implementation
type Element struct {
	Tag     string
	Attrs   map[string]string
	Nodes   []*Element
	Content string
}

// NewElement creates an element with the given tag and attribute pairs
func NewElement(tag string, pairs ...string) *Element {
	ret := &Element{Tag: tag, Attrs: map[string]string{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		ret.Attrs[pairs[i]] = pairs[i+1]
	}
	return ret
}

func (e *Element) Name() string {
	return e.Tag
}

func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

func (e *Element) Children() []Node {
	ret := make([]Node, 0, len(e.Nodes))
	for _, child := range e.Nodes {
		ret = append(ret, child)
	}
	return ret
}

func (e *Element) Text() string {
	return e.Content
}

// Append adds a child element
func (e *Element) Append(child *Element) *Element {
	e.Nodes = append(e.Nodes, child)
	return e
}

// Child returns the first child with the given name
func Child(node Node, name string) Node {
	for _, child := range node.Children() {
		if child.Name() == name {
			return child
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name
func ChildrenNamed(node Node, name string) []Node {
	var ret []Node
	for _, child := range node.Children() {
		if child.Name() == name {
			ret = append(ret, child)
		}
	}
	return ret
}
