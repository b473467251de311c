package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// basic element kinds and their tagging capability
var basicTypes = map[string]bool{
	"actor":     true,
	"usecase":   true,
	"component": true,
	"activity":  true,
	"decision":  true,
	"lifeline":  false,
	"initial":   false,
	"final":     false,
	"note":      false,
}

// IsBasicType returns true if kind is a known basic element kind
func IsBasicType(kind string) bool {
	_, ok := basicTypes[kind]
	return ok
}

// BasicTypes returns known basic element kinds sorted by name
func BasicTypes() []string {
	return []string{"activity", "actor", "component", "decision", "final", "initial", "lifeline", "note", "usecase"}
}

// Basic represents simple, attribute only diagram element: actor, use case, lifeline, component, activity node, note
type Basic struct {
	Base
	kind string
	Text string
}

// NewBasic creates basic element of the given kind
func NewBasic(kind, name string) *Basic {
	ret := &Basic{kind: strings.ToLower(strings.TrimSpace(kind))}
	ret.SetName(name)
	return ret
}

// BasicFromNode creates basic element from document node
func BasicFromNode(node document.Node) *Basic {
	ret := &Basic{kind: node.Name(), Text: node.Attr("text")}
	ret.readAttrs(node)
	return ret
}

func (b *Basic) Type() string {
	return b.kind
}

func (b *Basic) Prefix() string {
	return strings.ToUpper(b.kind) + "#"
}

func (b *Basic) AllowsTag() bool {
	return basicTypes[b.kind]
}

func (b *Basic) Export() string {
	builder := &strings.Builder{}
	openTag(builder, b.kind)
	b.writeAttrs(builder)
	if b.Text != "" {
		document.WriteAttr(builder, "text", b.Text)
	}
	builder.WriteString("/>\n")
	return builder.String()
}
