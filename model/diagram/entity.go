package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Entity represents class or interface of a class diagram
type Entity struct {
	Base
	Path      string // package path, e.g. com.example.domain
	Interface bool
	Abstract  bool
	Final     bool
}

// NewClass creates a class entity
func NewClass(name, path string) *Entity {
	ret := &Entity{Path: path}
	ret.SetName(name)
	return ret
}

// NewInterface creates an interface entity
func NewInterface(name, path string) *Entity {
	ret := NewClass(name, path)
	ret.Interface = true
	return ret
}

// EntityFromNode creates an entity from document node
func EntityFromNode(node document.Node) *Entity {
	ret := &Entity{
		Path:      node.Attr("path"),
		Interface: node.Name() == TypeInterface,
		Abstract:  document.Bool(node, "abstract"),
		Final:     document.Bool(node, "final"),
	}
	ret.readAttrs(node)
	return ret
}

func (e *Entity) Type() string {
	if e.Interface {
		return TypeInterface
	}
	return TypeClass
}

func (e *Entity) Prefix() string {
	if e.Interface {
		return "INTERFACE#"
	}
	return "CLASS#"
}

func (e *Entity) AllowsTag() bool {
	return true
}

// FullPath returns qualified entity name
func (e *Entity) FullPath() string {
	if e.Path == "" {
		return e.Name()
	}
	return e.Path + "." + e.Name()
}

func (e *Entity) Export() string {
	builder := &strings.Builder{}
	openTag(builder, e.Type())
	e.writeAttrs(builder)
	document.WriteAttr(builder, "path", e.Path)
	document.WriteBool(builder, "abstract", e.Abstract)
	document.WriteBool(builder, "final", e.Final)
	builder.WriteString("/>\n")
	return builder.String()
}
