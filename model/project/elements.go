package project

import (
	"fmt"
	"strings"

	"github.com/viant/smarty/model/diagram"
)

// AddElement mints id and adds element to the diagram. Entities get a type descriptor,
// default taggable elements get their profile tag.
func (p *Project) AddElement(diagramID string, element diagram.Element) (string, error) {
	if !diagram.IsElementType(element.Type()) {
		return "", fmt.Errorf("failed to add %q: element type %q: %w", element.Name(), element.Type(), ErrUnsupportedKind)
	}
	aDiagram, ok := p.diagrams.get(diagramID)
	if !ok {
		return "", fmt.Errorf("failed to add %s %q: diagram %s: %w", element.Type(), element.Name(), diagramID, ErrUnknownReference)
	}
	if member, ok := element.(diagram.Member); ok {
		if _, isEntity := p.element(member.EntityID()).(*diagram.Entity); !isEntity {
			return "", fmt.Errorf("failed to add %s %q: entity %s: %w", element.Type(), element.Name(), member.EntityID(), ErrUnknownReference)
		}
	}
	element.SetID(p.NextID(element.Prefix()))
	p.putElement(aDiagram, element)
	if entity, ok := element.(*diagram.Entity); ok {
		p.AddEntityType(entity)
	}
	if tagID := DefaultTagFor(p.Profile, element); tagID != "" {
		p.AddLink(element, tagID)
	}
	return element.ID(), nil
}

func (p *Project) putElement(aDiagram *diagram.Diagram, element diagram.Element) {
	element.SetDiagramID(aDiagram.ID())
	p.register(element.ID(), element)
	aDiagram.Elements.Add(element.ID())
}

// element returns diagram element registered under id or nil
func (p *Project) element(id string) diagram.Element {
	object, ok := p.objects.get(id)
	if !ok {
		return nil
	}
	element, _ := object.(diagram.Element)
	return element
}

// Element returns diagram element by id
func (p *Project) Element(id string) (diagram.Element, bool) {
	element := p.element(id)
	return element, element != nil
}

// Elements returns elements of every diagram in diagram and element insertion order
func (p *Project) Elements() []diagram.Element {
	return p.filterElements(func(diagram.Element) bool { return true })
}

// ElementsOfType returns elements with the export type, e.g. feature, class, actor
func (p *Project) ElementsOfType(elementType string) []diagram.Element {
	return p.filterElements(func(e diagram.Element) bool { return e.Type() == elementType })
}

// ElementByName returns the first element of the type with the name
func (p *Project) ElementByName(elementType, name string) (diagram.Element, bool) {
	for _, candidate := range p.ElementsOfType(elementType) {
		if candidate.Name() == name {
			return candidate, true
		}
	}
	return nil, false
}

// DefaultElements returns elements flagged as default
func (p *Project) DefaultElements() []diagram.Element {
	return p.filterElements(func(e diagram.Element) bool { return e.IsDefault() })
}

// EntityByName returns class or interface matching name or qualified name
func (p *Project) EntityByName(name string) (*diagram.Entity, bool) {
	name = strings.TrimSpace(name)
	for _, candidate := range p.Elements() {
		if entity, ok := candidate.(*diagram.Entity); ok && (entity.Name() == name || entity.FullPath() == name) {
			return entity, true
		}
	}
	return nil, false
}

// Members returns attributes and methods of the entity in insertion order
func (p *Project) Members(entityID string) []diagram.Element {
	return p.filterElements(func(e diagram.Element) bool {
		member, ok := e.(diagram.Member)
		return ok && member.EntityID() == entityID
	})
}

func (p *Project) filterElements(match func(e diagram.Element) bool) []diagram.Element {
	var ret []diagram.Element
	for _, aDiagram := range p.diagrams.values() {
		for _, id := range aDiagram.Elements.IDs {
			if element := p.element(id); element != nil && match(element) {
				ret = append(ret, element)
			}
		}
	}
	return ret
}

// RemoveElement removes element with its cascade: entity members and type, associations,
// variability references, tag links, requirement and traceability references, product
// instances and measures
func (p *Project) RemoveElement(id string) bool {
	element := p.element(id)
	if element == nil {
		return false
	}
	if entity, ok := element.(*diagram.Entity); ok {
		members := p.Members(id)
		for i := len(members) - 1; i >= 0; i-- {
			p.RemoveElement(members[i].ID())
		}
		if _, ok := p.EntityType(entity); ok {
			p.RemoveEntityType(entity)
		}
	}
	for _, association := range p.AssociationsFor(id) {
		p.RemoveAssociation(association.ID())
	}
	p.removeVariant(id)
	p.RemoveLinksFor(id)
	p.RemoveRequirementElement(id)
	p.RemoveTraceabilityElement(id)
	p.removeProductElement(id)
	if aDiagram, ok := p.diagrams.get(element.DiagramID()); ok {
		aDiagram.Elements.Remove(id)
	}
	p.unregister(id)
	return true
}

// AddAssociation mints id and adds association between two existing elements;
// requires and mutex associations receive their profile tag
func (p *Project) AddAssociation(diagramID string, association *diagram.Association) (string, error) {
	aDiagram, ok := p.diagrams.get(diagramID)
	if !ok {
		return "", fmt.Errorf("failed to add association: diagram %s: %w", diagramID, ErrUnknownReference)
	}
	for _, endID := range []string{association.SourceID, association.TargetID} {
		if p.element(endID) == nil {
			return "", fmt.Errorf("failed to add %s association: element %s: %w", association.Category, endID, ErrUnknownReference)
		}
	}
	association.SetID(p.NextID(association.Prefix()))
	p.putAssociation(aDiagram, association)
	if tagID := AssociationTag(p.Profile, association.Category); tagID != "" {
		p.AddLink(association, tagID)
	}
	return association.ID(), nil
}

func (p *Project) putAssociation(aDiagram *diagram.Diagram, association *diagram.Association) {
	association.SetDiagramID(aDiagram.ID())
	p.register(association.ID(), association)
	aDiagram.Associations.Add(association.ID())
}

// Association returns association by id
func (p *Project) Association(id string) (*diagram.Association, bool) {
	object, ok := p.objects.get(id)
	if !ok {
		return nil, false
	}
	association, ok := object.(*diagram.Association)
	return association, ok
}

// Associations returns associations of every diagram in insertion order
func (p *Project) Associations() []*diagram.Association {
	var ret []*diagram.Association
	for _, aDiagram := range p.diagrams.values() {
		for _, id := range aDiagram.Associations.IDs {
			if association, ok := p.Association(id); ok {
				ret = append(ret, association)
			}
		}
	}
	return ret
}

// AssociationsFor returns associations with the element as source or target
func (p *Project) AssociationsFor(elementID string) []*diagram.Association {
	var ret []*diagram.Association
	for _, association := range p.Associations() {
		if association.Touches(elementID) {
			ret = append(ret, association)
		}
	}
	return ret
}

// RemoveAssociation removes association with its tag links
func (p *Project) RemoveAssociation(id string) bool {
	association, ok := p.Association(id)
	if !ok {
		return false
	}
	p.RemoveLinksFor(id)
	p.RemoveRequirementElement(id)
	p.RemoveTraceabilityElement(id)
	if aDiagram, ok := p.diagrams.get(association.DiagramID()); ok {
		aDiagram.Associations.Remove(id)
	}
	p.unregister(id)
	return true
}
