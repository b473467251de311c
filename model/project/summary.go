package project

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Summary represents project statistics report
type Summary struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Version        string            `yaml:"version"`
	Checksum       string            `yaml:"checksum,omitempty"`
	Types          int               `yaml:"types"`
	UserTypes      int               `yaml:"userTypes"`
	Stereotypes    int               `yaml:"stereotypes"`
	Links          int               `yaml:"links"`
	Diagrams       []*DiagramSummary `yaml:"diagrams,omitempty"`
	Variabilities  int               `yaml:"variabilities"`
	Requirements   int               `yaml:"requirements"`
	Traceabilities int               `yaml:"traceabilities"`
	Products       int               `yaml:"products"`
	Metrics        int               `yaml:"metrics"`
	Measures       int               `yaml:"measures"`
}

// DiagramSummary represents per diagram statistics
type DiagramSummary struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Kind          string `yaml:"kind"`
	Elements      int    `yaml:"elements"`
	Associations  int    `yaml:"associations"`
	Variabilities int    `yaml:"variabilities,omitempty"`
}

// Summary returns project statistics
func (p *Project) Summary() *Summary {
	ret := &Summary{
		ID:             p.id,
		Name:           p.name,
		Version:        p.Version,
		Types:          p.types.len(),
		Stereotypes:    p.tags.len(),
		Links:          p.links.len(),
		Variabilities:  p.variabilities.len(),
		Requirements:   p.requirements.len(),
		Traceabilities: p.traceabilities.len(),
		Products:       p.products.len(),
		Metrics:        p.metrics.len(),
		Measures:       p.measures.len(),
	}
	for _, aType := range p.types.values() {
		if !aType.Primitive && !aType.Standard {
			ret.UserTypes++
		}
	}
	if checksum, err := p.Checksum(); err == nil {
		ret.Checksum = fmt.Sprintf("%016x", checksum)
	}
	for _, aDiagram := range p.Diagrams() {
		ret.Diagrams = append(ret.Diagrams, &DiagramSummary{
			ID:            aDiagram.ID(),
			Name:          aDiagram.Name(),
			Kind:          string(aDiagram.Kind),
			Elements:      aDiagram.Elements.Len(),
			Associations:  aDiagram.Associations.Len(),
			Variabilities: len(p.VariabilitiesOf(aDiagram.ID())),
		})
	}
	return ret
}

// YAML returns summary encoded as YAML
func (s *Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
