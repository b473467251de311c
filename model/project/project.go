// Package project implements the project model repository: the aggregate that owns
// every diagram, type, tag, variability, requirement, traceability, metric and product,
// allocates identifiers from one shared namespace, runs removal cascades and exports
// the whole graph as a canonical document.
//
// A Project is a single-writer structure; callers serialize access.
package project

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/smarty/model/diagram"
)

// Category prefixes of repository minted identifiers
const (
	TypePrefix         = "TYPE#"
	TagPrefix          = "STEREOTYPE#"
	DiagramPrefix      = "DIAGRAM#"
	VariabilityPrefix  = "VARIABILITY#"
	RequirementPrefix  = "REQUIREMENT#"
	TraceabilityPrefix = "TRACEABILITY#"
	MetricPrefix       = "METRIC#"
	MeasurePrefix      = "MEASURE#"
	ProductPrefix      = "PRODUCT#"
	InstancePrefix     = "INSTANCE#"
	LinkPrefix         = "LINK#"
)

// Project represents modeling project repository
type Project struct {
	id      string
	name    string
	Version string
	Path    string
	Profile *Profile
	logger  *slog.Logger
	saved   uint64 // checksum of the last saved export

	objects        *collection[any] // flat namespace of every addressable object
	sizes          map[string]int   // namespace entries per id prefix
	diagrams       *collection[*diagram.Diagram]
	types          *collection[*Type]
	tags           *collection[*Tag]
	links          *collection[*Link]
	variabilities  *collection[*Variability]
	requirements   *collection[*Requirement]
	traceabilities *collection[*Traceability]
	metrics        *collection[*Metric]
	measures       *collection[*Measure]
	products       *collection[*Product]
}

// New creates a project with bootstrap types, tags and the default profile
func New(options ...Option) *Project {
	ret := newProject()
	ret.id = uuid.NewString()
	ret.name = "New Project"
	ret.Version = "1.0"
	for _, option := range options {
		option(ret)
	}
	ret.loadTypes()
	ret.loadTags()
	ret.Profile = DefaultProfile()
	return ret
}

func newProject() *Project {
	return &Project{
		logger:         slog.Default(),
		objects:        newCollection[any](),
		sizes:          make(map[string]int),
		diagrams:       newCollection[*diagram.Diagram](),
		types:          newCollection[*Type](),
		tags:           newCollection[*Tag](),
		links:          newCollection[*Link](),
		variabilities:  newCollection[*Variability](),
		requirements:   newCollection[*Requirement](),
		traceabilities: newCollection[*Traceability](),
		metrics:        newCollection[*Metric](),
		measures:       newCollection[*Measure](),
		products:       newCollection[*Product](),
	}
}

func (p *Project) ID() string {
	return p.id
}

// SetID assigns id only to a project without one
func (p *Project) SetID(id string) bool {
	if p.id != "" || strings.TrimSpace(id) == "" {
		return false
	}
	p.id = strings.TrimSpace(id)
	return true
}

func (p *Project) Name() string {
	return p.name
}

// SetName renames the project, blank names are ignored
func (p *Project) SetName(name string) {
	if name = strings.TrimSpace(name); name != "" {
		p.name = name
	}
}

// Logger returns project logger
func (p *Project) Logger() *slog.Logger {
	return p.logger
}

// Contains returns true if id exists in the namespace
func (p *Project) Contains(id string) bool {
	return p.objects.has(id)
}

// Object returns namespace entry for the id
func (p *Project) Object(id string) (any, bool) {
	return p.objects.get(id)
}

// NextID returns the first id, probing forward from the category size, free in the namespace
func (p *Project) NextID(prefix string) string {
	index := p.sizes[prefix] + 1
	for {
		id := prefix + strconv.Itoa(index)
		if !p.objects.has(id) {
			return id
		}
		index++
	}
}

func (p *Project) register(id string, object any) {
	if !p.objects.has(id) {
		p.sizes[prefixOf(id)]++
	}
	p.objects.put(id, object)
}

// unregister drops id from the namespace together with measures targeting it
func (p *Project) unregister(id string) {
	if !p.objects.remove(id) {
		return
	}
	prefix := prefixOf(id)
	if p.sizes[prefix]--; p.sizes[prefix] <= 0 {
		delete(p.sizes, prefix)
	}
	if prefix != MeasurePrefix {
		p.removeMeasuresFor(id)
	}
}

func prefixOf(id string) string {
	if idx := strings.Index(id, "#"); idx != -1 {
		return id[:idx+1]
	}
	return ""
}
