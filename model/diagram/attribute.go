package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Attribute represents entity field
type Attribute struct {
	Base
	entityID   string
	TypeID     string
	Visibility string
	Static     bool
	Final      bool
}

// NewAttribute creates an attribute owned by the entity
func NewAttribute(entityID, name, typeID string) *Attribute {
	ret := &Attribute{entityID: entityID, TypeID: typeID, Visibility: "private"}
	ret.SetName(name)
	return ret
}

// AttributeFromNode creates an attribute from document node
func AttributeFromNode(node document.Node) *Attribute {
	ret := &Attribute{
		entityID:   node.Attr("entity"),
		TypeID:     node.Attr("type"),
		Visibility: node.Attr("visibility"),
		Static:     document.Bool(node, "static"),
		Final:      document.Bool(node, "final"),
	}
	ret.readAttrs(node)
	return ret
}

func (a *Attribute) EntityID() string {
	return a.entityID
}

func (a *Attribute) Type() string {
	return TypeAttribute
}

func (a *Attribute) Prefix() string {
	return "ATTRIBUTE#"
}

func (a *Attribute) AllowsTag() bool {
	return true
}

func (a *Attribute) TypeIDs() []string {
	return []string{a.TypeID}
}

func (a *Attribute) ChangeType(oldID, newID string) bool {
	if a.TypeID != oldID {
		return false
	}
	a.TypeID = newID
	return true
}

func (a *Attribute) Export() string {
	builder := &strings.Builder{}
	openTag(builder, TypeAttribute)
	a.writeAttrs(builder)
	document.WriteAttr(builder, "entity", a.entityID)
	document.WriteAttr(builder, "type", a.TypeID)
	document.WriteAttr(builder, "visibility", a.Visibility)
	document.WriteBool(builder, "static", a.Static)
	document.WriteBool(builder, "final", a.Final)
	builder.WriteString("/>\n")
	return builder.String()
}
