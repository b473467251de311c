package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Diagram represents typed container of elements and associations; it keeps ids only,
// the objects live in the project namespace
type Diagram struct {
	id           string
	name         string
	Kind         Kind
	Elements     *IDSet
	Associations *IDSet
}

// New creates a diagram of the given kind
func New(kind Kind, name string) *Diagram {
	ret := &Diagram{Kind: kind, Elements: NewIDSet(), Associations: NewIDSet()}
	ret.SetName(name)
	return ret
}

// FromNode creates an empty diagram from document node, elements are restored by the project
func FromNode(node document.Node) *Diagram {
	ret := New(ParseKind(node.Attr("type")), node.Attr("name"))
	ret.id = node.Attr("id")
	return ret
}

func (d *Diagram) ID() string {
	return d.id
}

func (d *Diagram) SetID(id string) {
	d.id = id
}

func (d *Diagram) Name() string {
	return d.name
}

// SetName sets name, blank names default to the kind name
func (d *Diagram) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = string(d.Kind) + " Diagram"
	}
	d.name = name
}

func (d *Diagram) Prefix() string {
	return "DIAGRAM#"
}

func (d *Diagram) AllowsTag() bool {
	return false
}

// IsFeature returns true for feature diagrams
func (d *Diagram) IsFeature() bool {
	return d.Kind.IsFeature()
}

// Less returns diagram ordering: kind order, name, id
func (d *Diagram) Less(other *Diagram) bool {
	if d.Kind.Order() != other.Kind.Order() {
		return d.Kind.Order() < other.Kind.Order()
	}
	if d.name != other.name {
		return d.name < other.name
	}
	return d.id < other.id
}

// Export returns diagram header only
func (d *Diagram) Export() string {
	return d.Open() + d.Close()
}

// Open returns diagram opening tag
func (d *Diagram) Open() string {
	builder := &strings.Builder{}
	builder.WriteString("  <diagram")
	document.WriteAttr(builder, "id", d.id)
	document.WriteAttr(builder, "name", d.name)
	document.WriteAttr(builder, "type", string(d.Kind))
	builder.WriteString(">\n")
	return builder.String()
}

// Close returns diagram closing tag
func (d *Diagram) Close() string {
	return "  </diagram>\n"
}
