// Package diagram defines diagram containers, the capability contract every
// diagram element satisfies, and the element and association variants the
// project repository works with.
package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Object represents anything addressable in the project namespace that can be tagged and exported
type Object interface {
	ID() string
	Name() string
	AllowsTag() bool
	Export() string
}

// Element represents a diagram node
type Element interface {
	Object
	SetID(id string)
	SetName(name string)
	// Type returns element tag used in exported document
	Type() string
	// Prefix returns identifier category prefix
	Prefix() string
	DiagramID() string
	SetDiagramID(id string)
	IsDefault() bool
	IsMandatory() bool
}

// TypeHolder is implemented by elements referencing type descriptors
type TypeHolder interface {
	TypeIDs() []string
	// ChangeType rewrites every reference to oldID, returns true if anything changed
	ChangeType(oldID, newID string) bool
}

// Member is implemented by elements owned by an entity
type Member interface {
	EntityID() string
}

// Base holds state shared by element variants
type Base struct {
	id        string
	name      string
	diagramID string
	Default   bool
	Mandatory bool
	X         int
	Y         int
}

func (b *Base) ID() string {
	return b.id
}

func (b *Base) SetID(id string) {
	b.id = id
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) SetName(name string) {
	b.name = strings.TrimSpace(name)
}

func (b *Base) DiagramID() string {
	return b.diagramID
}

func (b *Base) SetDiagramID(id string) {
	b.diagramID = id
}

func (b *Base) IsDefault() bool {
	return b.Default
}

func (b *Base) IsMandatory() bool {
	return b.Mandatory
}

func (b *Base) writeAttrs(builder *strings.Builder) {
	document.WriteAttr(builder, "id", b.id)
	document.WriteAttr(builder, "name", b.name)
	document.WriteBool(builder, "default", b.Default)
	document.WriteBool(builder, "mandatory", b.Mandatory)
	document.WriteInt(builder, "x", b.X)
	document.WriteInt(builder, "y", b.Y)
}

func (b *Base) readAttrs(node document.Node) {
	b.id = node.Attr("id")
	b.name = node.Attr("name")
	b.Default = document.Bool(node, "default")
	b.Mandatory = document.Bool(node, "mandatory")
	b.X = document.Int(node, "x", 0)
	b.Y = document.Int(node, "y", 0)
}

func openTag(builder *strings.Builder, tag string) {
	builder.WriteString("    <")
	builder.WriteString(tag)
}

// IsElementType returns true if elements exported with the type can be restored from a document
func IsElementType(elementType string) bool {
	switch elementType {
	case TypeFeature, TypeClass, TypeInterface, TypeAttribute, TypeMethod:
		return true
	}
	return IsBasicType(elementType)
}

// NewElementFromNode creates element variant from document node, returns nil for unknown tags
func NewElementFromNode(node document.Node) Element {
	var ret Element
	switch node.Name() {
	case TypeFeature:
		ret = FeatureFromNode(node)
	case TypeClass, TypeInterface:
		ret = EntityFromNode(node)
	case TypeAttribute:
		ret = AttributeFromNode(node)
	case TypeMethod:
		ret = MethodFromNode(node)
	default:
		if IsBasicType(node.Name()) {
			ret = BasicFromNode(node)
		}
	}
	return ret
}
