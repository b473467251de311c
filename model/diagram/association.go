package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

// Category represents association category
type Category string

const (
	CategoryNormal         = Category("normal")
	CategoryAggregation    = Category("aggregation")
	CategoryComposition    = Category("composition")
	CategoryGeneralization = Category("generalization")
	CategoryRealization    = Category("realization")
	CategoryDependency     = Category("dependency")
	CategoryRequires       = Category("requires")
	CategoryMutex          = Category("mutex")
	CategoryCommunication  = Category("communication")
)

// Categories lists every association category
var Categories = []Category{
	CategoryNormal, CategoryAggregation, CategoryComposition, CategoryGeneralization,
	CategoryRealization, CategoryDependency, CategoryRequires, CategoryMutex, CategoryCommunication,
}

// ParseCategory returns category for the supplied name, unknown names map to normal
func ParseCategory(name string) Category {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range Categories {
		if string(candidate) == name {
			return candidate
		}
	}
	return CategoryNormal
}

// Association represents a directed relation between two diagram elements
type Association struct {
	id         string
	diagramID  string
	name       string
	Category   Category
	SourceID   string
	TargetID   string
	Direction  bool
	SourceName string
	SourceMin  int
	SourceMax  int
	TargetName string
	TargetMin  int
	TargetMax  int
}

// NewAssociation creates association between source and target
func NewAssociation(category Category, sourceID, targetID string) *Association {
	return &Association{
		Category:  category,
		SourceID:  sourceID,
		TargetID:  targetID,
		SourceMin: 1,
		SourceMax: 1,
		TargetMin: 1,
		TargetMax: 1,
	}
}

// AssociationFromNode creates association from document node
func AssociationFromNode(node document.Node) *Association {
	return &Association{
		id:         node.Attr("id"),
		name:       node.Attr("name"),
		Category:   ParseCategory(node.Attr("category")),
		SourceID:   node.Attr("source"),
		TargetID:   node.Attr("target"),
		Direction:  document.Bool(node, "direction"),
		SourceName: node.Attr("sourceName"),
		SourceMin:  document.Cardinality(node, "sourceMin", false, 1),
		SourceMax:  document.Cardinality(node, "sourceMax", true, 1),
		TargetName: node.Attr("targetName"),
		TargetMin:  document.Cardinality(node, "targetMin", false, 1),
		TargetMax:  document.Cardinality(node, "targetMax", true, 1),
	}
}

func (a *Association) ID() string {
	return a.id
}

func (a *Association) SetID(id string) {
	a.id = id
}

func (a *Association) Name() string {
	return a.name
}

func (a *Association) SetName(name string) {
	a.name = strings.TrimSpace(name)
}

func (a *Association) DiagramID() string {
	return a.diagramID
}

func (a *Association) SetDiagramID(id string) {
	a.diagramID = id
}

func (a *Association) Prefix() string {
	return "ASSOCIATION#"
}

// Touches returns true if association references the element
func (a *Association) Touches(elementID string) bool {
	return a.SourceID == elementID || a.TargetID == elementID
}

// AllowsTag returns true only for dependency style associations
func (a *Association) AllowsTag() bool {
	switch a.Category {
	case CategoryDependency, CategoryRequires, CategoryMutex:
		return true
	}
	return false
}

func (a *Association) Export() string {
	builder := &strings.Builder{}
	openTag(builder, "association")
	document.WriteAttr(builder, "id", a.id)
	document.WriteAttr(builder, "name", a.name)
	document.WriteAttr(builder, "category", string(a.Category))
	document.WriteAttr(builder, "source", a.SourceID)
	document.WriteAttr(builder, "target", a.TargetID)
	document.WriteBool(builder, "direction", a.Direction)
	document.WriteAttr(builder, "sourceName", a.SourceName)
	document.WriteAttr(builder, "sourceMin", document.FormatCardinality(a.SourceMin))
	document.WriteAttr(builder, "sourceMax", document.FormatCardinality(a.SourceMax))
	document.WriteAttr(builder, "targetName", a.TargetName)
	document.WriteAttr(builder, "targetMin", document.FormatCardinality(a.TargetMin))
	document.WriteAttr(builder, "targetMax", document.FormatCardinality(a.TargetMax))
	builder.WriteString("/>\n")
	return builder.String()
}
