package project

import (
	"fmt"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

// RequirementType represents requirement classification
type RequirementType string

const (
	RequirementFunctional    = RequirementType("Functional")
	RequirementNonFunctional = RequirementType("NonFunctional")
	RequirementDomain        = RequirementType("Domain")
	RequirementBusiness      = RequirementType("Business")
)

// RequirementTypes lists every requirement classification
var RequirementTypes = []RequirementType{RequirementFunctional, RequirementNonFunctional, RequirementDomain, RequirementBusiness}

// ParseRequirementType matches classification case-insensitively, unknown values are functional
func ParseRequirementType(value string) RequirementType {
	value = strings.TrimSpace(value)
	for _, candidate := range RequirementTypes {
		if strings.EqualFold(string(candidate), value) {
			return candidate
		}
	}
	return RequirementFunctional
}

// Requirement represents requirement record with linked elements
type Requirement struct {
	ID          string
	Code        string
	Type        RequirementType
	Name        string
	Description string
	Elements    *diagram.IDSet
}

// NewRequirement creates functional requirement
func NewRequirement(code, name string) *Requirement {
	return &Requirement{Code: strings.TrimSpace(code), Type: RequirementFunctional, Name: strings.TrimSpace(name), Elements: diagram.NewIDSet()}
}

// RequirementFromNode creates requirement from document node
func RequirementFromNode(node document.Node) *Requirement {
	ret := &Requirement{
		ID:       node.Attr("id"),
		Code:     node.Attr("code"),
		Type:     ParseRequirementType(node.Attr("type")),
		Name:     node.Attr("name"),
		Elements: diagram.NewIDSet(),
	}
	if description := document.Child(node, "description"); description != nil {
		ret.Description = description.Text()
	}
	for _, child := range document.ChildrenNamed(node, "element") {
		ret.Elements.Add(child.Attr("id"))
	}
	return ret
}

// Contains returns true if element is linked to the requirement
func (r *Requirement) Contains(elementID string) bool {
	return r.Elements.Contains(elementID)
}

func (r *Requirement) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <requirement")
	document.WriteAttr(builder, "id", r.ID)
	document.WriteAttr(builder, "code", r.Code)
	document.WriteAttr(builder, "type", string(r.Type))
	document.WriteAttr(builder, "name", r.Name)
	builder.WriteString(">\n")
	builder.WriteString("      <description>")
	builder.WriteString(document.Escape(r.Description))
	builder.WriteString("</description>\n")
	writeElementRefs(builder, r.Elements)
	builder.WriteString("    </requirement>\n")
	return builder.String()
}

func writeElementRefs(builder *strings.Builder, ids *diagram.IDSet) {
	for _, id := range ids.IDs {
		builder.WriteString("      <element")
		document.WriteAttr(builder, "id", id)
		builder.WriteString("/>\n")
	}
}

// AddRequirement mints id and adds requirement
func (p *Project) AddRequirement(requirement *Requirement) string {
	if requirement.Elements == nil {
		requirement.Elements = diagram.NewIDSet()
	}
	requirement.ID = p.NextID(RequirementPrefix)
	p.requirements.put(requirement.ID, requirement)
	p.register(requirement.ID, requirement)
	return requirement.ID
}

func (p *Project) Requirement(id string) (*Requirement, bool) {
	return p.requirements.get(id)
}

// Requirements returns requirements in insertion order
func (p *Project) Requirements() []*Requirement {
	return p.requirements.values()
}

// LinkRequirement links an element or association to the requirement, repeated links are no-ops
func (p *Project) LinkRequirement(requirementID, elementID string) (bool, error) {
	requirement, ok := p.requirements.get(requirementID)
	if !ok {
		return false, fmt.Errorf("requirement %s: %w", requirementID, ErrUnknownReference)
	}
	if !p.isDiagramObject(elementID) {
		return false, fmt.Errorf("requirement %s element %s: %w", requirementID, elementID, ErrUnknownReference)
	}
	return requirement.Elements.Add(elementID), nil
}

// RemoveRequirement removes requirement record
func (p *Project) RemoveRequirement(id string) bool {
	if !p.requirements.remove(id) {
		return false
	}
	p.RemoveTraceabilityElement(id)
	p.unregister(id)
	return true
}

// RemoveRequirementElement removes element from every requirement
func (p *Project) RemoveRequirementElement(elementID string) {
	for _, requirement := range p.requirements.values() {
		requirement.Elements.Remove(elementID)
	}
}

// Traceability represents many-to-many trace between requirements and elements
type Traceability struct {
	ID          string
	Name        string
	Description string
	Elements    *diagram.IDSet
}

// NewTraceability creates traceability over the supplied element ids
func NewTraceability(name string, elementIDs ...string) *Traceability {
	return &Traceability{Name: strings.TrimSpace(name), Elements: diagram.NewIDSet(elementIDs...)}
}

// TraceabilityFromNode creates traceability from document node
func TraceabilityFromNode(node document.Node) *Traceability {
	ret := &Traceability{ID: node.Attr("id"), Name: node.Attr("name"), Description: node.Attr("description"), Elements: diagram.NewIDSet()}
	for _, child := range document.ChildrenNamed(node, "element") {
		ret.Elements.Add(child.Attr("id"))
	}
	return ret
}

// Contains returns true if element takes part in the traceability
func (t *Traceability) Contains(elementID string) bool {
	return t.Elements.Contains(elementID)
}

func (t *Traceability) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <traceability")
	document.WriteAttr(builder, "id", t.ID)
	document.WriteAttr(builder, "name", t.Name)
	document.WriteAttr(builder, "description", t.Description)
	builder.WriteString(">\n")
	writeElementRefs(builder, t.Elements)
	builder.WriteString("    </traceability>\n")
	return builder.String()
}

// AddTraceability mints id and adds traceability; every element must exist
func (p *Project) AddTraceability(traceability *Traceability) (string, error) {
	if traceability.Elements == nil {
		traceability.Elements = diagram.NewIDSet()
	}
	for _, id := range traceability.Elements.IDs {
		if !p.isDiagramObject(id) && !p.requirements.has(id) {
			return "", fmt.Errorf("traceability %q element %s: %w", traceability.Name, id, ErrUnknownReference)
		}
	}
	traceability.ID = p.NextID(TraceabilityPrefix)
	p.traceabilities.put(traceability.ID, traceability)
	p.register(traceability.ID, traceability)
	return traceability.ID, nil
}

func (p *Project) Traceability(id string) (*Traceability, bool) {
	return p.traceabilities.get(id)
}

// Traceabilities returns traceabilities in insertion order
func (p *Project) Traceabilities() []*Traceability {
	return p.traceabilities.values()
}

// TraceabilitiesFor returns traceabilities containing the element
func (p *Project) TraceabilitiesFor(elementID string) []*Traceability {
	var ret []*Traceability
	for _, traceability := range p.traceabilities.values() {
		if traceability.Contains(elementID) {
			ret = append(ret, traceability)
		}
	}
	return ret
}

// RemoveTraceability removes traceability record
func (p *Project) RemoveTraceability(id string) bool {
	if !p.traceabilities.remove(id) {
		return false
	}
	p.unregister(id)
	return true
}

// RemoveTraceabilityElement removes element from every traceability, emptied records are kept
func (p *Project) RemoveTraceabilityElement(elementID string) {
	for _, traceability := range p.TraceabilitiesFor(elementID) {
		traceability.Elements.Remove(elementID)
	}
}

func (p *Project) isDiagramObject(id string) bool {
	if p.element(id) != nil {
		return true
	}
	_, ok := p.Association(id)
	return ok
}
