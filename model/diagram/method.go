package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Parameter represents method parameter
type Parameter struct {
	Name   string
	TypeID string
}

// Method represents entity operation
type Method struct {
	Base
	entityID    string
	ReturnID    string // empty for constructors
	Visibility  string
	Constructor bool
	Static      bool
	Final       bool
	Abstract    bool
	Parameters  []*Parameter
}

// NewMethod creates a method owned by the entity
func NewMethod(entityID, name, returnID string) *Method {
	ret := &Method{entityID: entityID, ReturnID: returnID, Visibility: "public"}
	ret.SetName(name)
	return ret
}

// MethodFromNode creates a method from document node
func MethodFromNode(node document.Node) *Method {
	ret := &Method{
		entityID:    node.Attr("entity"),
		ReturnID:    node.Attr("return"),
		Visibility:  node.Attr("visibility"),
		Constructor: document.Bool(node, "constructor"),
		Static:      document.Bool(node, "static"),
		Final:       document.Bool(node, "final"),
		Abstract:    document.Bool(node, "abstract"),
	}
	ret.readAttrs(node)
	for _, child := range document.ChildrenNamed(node, "parameter") {
		ret.AddParameter(&Parameter{Name: child.Attr("name"), TypeID: child.Attr("type")})
	}
	return ret
}

// AddParameter adds parameter unless one with the same name exists
func (m *Method) AddParameter(parameter *Parameter) bool {
	for _, candidate := range m.Parameters {
		if candidate.Name == parameter.Name {
			return false
		}
	}
	m.Parameters = append(m.Parameters, parameter)
	return true
}

func (m *Method) EntityID() string {
	return m.entityID
}

func (m *Method) Type() string {
	return TypeMethod
}

func (m *Method) Prefix() string {
	return "METHOD#"
}

func (m *Method) AllowsTag() bool {
	return true
}

func (m *Method) TypeIDs() []string {
	var ret []string
	if m.ReturnID != "" {
		ret = append(ret, m.ReturnID)
	}
	for _, parameter := range m.Parameters {
		ret = append(ret, parameter.TypeID)
	}
	return ret
}

func (m *Method) ChangeType(oldID, newID string) bool {
	changed := false
	if m.ReturnID != "" && m.ReturnID == oldID {
		m.ReturnID = newID
		changed = true
	}
	for _, parameter := range m.Parameters {
		if parameter.TypeID == oldID {
			parameter.TypeID = newID
			changed = true
		}
	}
	return changed
}

func (m *Method) Export() string {
	builder := &strings.Builder{}
	openTag(builder, TypeMethod)
	m.writeAttrs(builder)
	document.WriteAttr(builder, "entity", m.entityID)
	document.WriteAttr(builder, "return", m.ReturnID)
	document.WriteAttr(builder, "visibility", m.Visibility)
	document.WriteBool(builder, "constructor", m.Constructor)
	document.WriteBool(builder, "static", m.Static)
	document.WriteBool(builder, "final", m.Final)
	document.WriteBool(builder, "abstract", m.Abstract)
	if len(m.Parameters) == 0 {
		builder.WriteString("/>\n")
		return builder.String()
	}
	builder.WriteString(">\n")
	for _, parameter := range m.Parameters {
		builder.WriteString("      <parameter")
		document.WriteAttr(builder, "name", parameter.Name)
		document.WriteAttr(builder, "type", parameter.TypeID)
		builder.WriteString("/>\n")
	}
	builder.WriteString("    </method>\n")
	return builder.String()
}
