package project

import (
	"fmt"
	"sort"

	"github.com/viant/smarty/model/diagram"
)

// AddDiagram mints id and adds the diagram
func (p *Project) AddDiagram(aDiagram *diagram.Diagram) (string, error) {
	if !aDiagram.Kind.IsValid() {
		return "", fmt.Errorf("failed to add diagram %q: kind %q: %w", aDiagram.Name(), aDiagram.Kind, ErrUnsupportedKind)
	}
	if aDiagram.Elements == nil {
		aDiagram.Elements = diagram.NewIDSet()
	}
	if aDiagram.Associations == nil {
		aDiagram.Associations = diagram.NewIDSet()
	}
	aDiagram.SetID(p.NextID(DiagramPrefix))
	p.diagrams.put(aDiagram.ID(), aDiagram)
	p.register(aDiagram.ID(), aDiagram)
	return aDiagram.ID(), nil
}

func (p *Project) Diagram(id string) (*diagram.Diagram, bool) {
	return p.diagrams.get(id)
}

// Diagrams returns diagrams ordered by kind, name and id
func (p *Project) Diagrams() []*diagram.Diagram {
	return p.sortedDiagrams(func(*diagram.Diagram) bool { return true })
}

// DiagramsOfKind returns ordered diagrams of the kind
func (p *Project) DiagramsOfKind(kind diagram.Kind) []*diagram.Diagram {
	return p.sortedDiagrams(func(d *diagram.Diagram) bool { return d.Kind == kind })
}

// FeatureDiagrams returns ordered feature diagrams
func (p *Project) FeatureDiagrams() []*diagram.Diagram {
	return p.sortedDiagrams(func(d *diagram.Diagram) bool { return d.IsFeature() })
}

// UMLDiagrams returns ordered non feature diagrams
func (p *Project) UMLDiagrams() []*diagram.Diagram {
	return p.sortedDiagrams(func(d *diagram.Diagram) bool { return !d.IsFeature() })
}

// VariabilityDiagrams returns ordered diagrams with at least one variability
func (p *Project) VariabilityDiagrams() []*diagram.Diagram {
	return p.sortedDiagrams(func(d *diagram.Diagram) bool { return len(p.VariabilitiesOf(d.ID())) > 0 })
}

func (p *Project) sortedDiagrams(match func(d *diagram.Diagram) bool) []*diagram.Diagram {
	var ret []*diagram.Diagram
	for _, candidate := range p.diagrams.values() {
		if match(candidate) {
			ret = append(ret, candidate)
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Less(ret[j])
	})
	return ret
}

// RemoveDiagram removes diagram elements in reverse insertion order, each with its own cascade,
// then remaining associations, instances of the diagram and measures targeting it
func (p *Project) RemoveDiagram(id string) bool {
	aDiagram, ok := p.diagrams.get(id)
	if !ok {
		return false
	}
	for _, elementID := range aDiagram.Elements.Reversed() {
		p.RemoveElement(elementID)
	}
	for _, associationID := range aDiagram.Associations.Reversed() {
		p.RemoveAssociation(associationID)
	}
	p.removeInstancesOf(id)
	p.RemoveLinksFor(id)
	p.diagrams.remove(id)
	p.unregister(id)
	return true
}
