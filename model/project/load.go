package project

import (
	"fmt"
	"io"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
	"golang.org/x/mod/semver"
)

// Load parses project document
func Load(reader io.Reader, options ...Option) (*Project, error) {
	node, err := document.Parse(reader)
	if err != nil {
		return nil, err
	}
	return FromNode(node, options...)
}

// FromNode restores project from document node keeping every id; no tagging side effects run.
// Bootstrap types and tags are loaded only when the document has none.
func FromNode(node document.Node, options ...Option) (*Project, error) {
	if node == nil || node.Name() != "project" {
		return nil, ErrNotProjectDocument
	}
	if err := checkFormat(node.Attr("format")); err != nil {
		return nil, err
	}
	ret := newProject()
	ret.id = node.Attr("id")
	ret.name = node.Attr("name")
	ret.Version = node.Attr("version")
	for _, option := range options {
		option(ret)
	}
	if block := document.Child(node, "types"); block != nil {
		for _, child := range document.ChildrenNamed(block, "type") {
			ret.putType(TypeFromNode(child))
		}
	}
	if ret.types.len() == 0 {
		ret.loadTypes()
	}
	if block := document.Child(node, "stereotypes"); block != nil {
		for _, child := range document.ChildrenNamed(block, "stereotype") {
			tag := TagFromNode(child)
			ret.tags.put(tag.ID, tag)
			ret.register(tag.ID, tag)
		}
	}
	if ret.tags.len() == 0 {
		ret.loadTags()
	}
	ret.Profile = DefaultProfile()
	if child := document.Child(node, "profile"); child != nil {
		ret.Profile = ProfileFromNode(child)
	}
	var variabilities []*Variability
	for _, child := range document.ChildrenNamed(node, "diagram") {
		variabilities = append(variabilities, ret.loadDiagram(child)...)
	}
	for _, variability := range variabilities {
		ret.putVariability(variability)
	}
	ret.loadRecords(node)
	if err := ret.MarkSaved(); err != nil {
		return nil, err
	}
	return ret, nil
}

func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("format %q: %w", format, ErrUnsupportedVersion)
	}
	if semver.Compare(semver.Major(format), semver.Major(FormatVersion)) > 0 {
		return fmt.Errorf("format %s newer than %s: %w", format, FormatVersion, ErrUnsupportedVersion)
	}
	return nil
}

// loadDiagram restores diagram with its elements and associations, variabilities are returned
// for restoring once every diagram element exists
func (p *Project) loadDiagram(node document.Node) []*Variability {
	aDiagram := diagram.FromNode(node)
	p.diagrams.put(aDiagram.ID(), aDiagram)
	p.register(aDiagram.ID(), aDiagram)
	var ret []*Variability
	for _, child := range node.Children() {
		switch child.Name() {
		case "association":
			p.putAssociation(aDiagram, diagram.AssociationFromNode(child))
		case "variability":
			ret = append(ret, VariabilityFromNode(child))
		default:
			element := diagram.NewElementFromNode(child)
			if element == nil {
				p.logger.Debug("skipping unknown diagram element", "diagram", aDiagram.ID(), "element", child.Name())
				continue
			}
			p.putElement(aDiagram, element)
		}
	}
	return ret
}

// loadRecords restores requirements, traceabilities, links, products, metrics and measures
func (p *Project) loadRecords(node document.Node) {
	for _, child := range blockItems(node, "requirements", "requirement") {
		requirement := RequirementFromNode(child)
		p.requirements.put(requirement.ID, requirement)
		p.register(requirement.ID, requirement)
	}
	for _, child := range blockItems(node, "traceabilities", "traceability") {
		traceability := TraceabilityFromNode(child)
		p.traceabilities.put(traceability.ID, traceability)
		p.register(traceability.ID, traceability)
	}
	for _, child := range blockItems(node, "links", "link") {
		objectID, tagID := child.Attr("object"), child.Attr("stereotype")
		entry, _ := p.objects.get(objectID)
		object, ok := entry.(diagram.Object)
		if !ok || !p.AddLink(object, tagID) {
			p.logger.Debug("skipping unresolved link", "object", objectID, "stereotype", tagID)
		}
	}
	for _, child := range blockItems(node, "products", "product") {
		product := ProductFromNode(child)
		p.products.put(product.ID, product)
		p.register(product.ID, product)
		for _, instance := range product.Instances {
			p.register(instance.ID, instance)
		}
	}
	for _, child := range blockItems(node, "metrics", "metric") {
		metric := MetricFromNode(child)
		p.metrics.put(metric.ID, metric)
		p.register(metric.ID, metric)
	}
	for _, child := range blockItems(node, "measures", "measure") {
		measure := MeasureFromNode(child)
		if !p.metrics.has(measure.MetricID) {
			p.logger.Debug("skipping measure of unknown metric", "measure", measure.ID, "metric", measure.MetricID)
			continue
		}
		p.measures.put(measure.ID, measure)
		p.register(measure.ID, measure)
	}
}

func blockItems(node document.Node, block, item string) []document.Node {
	if child := document.Child(node, block); child != nil {
		return document.ChildrenNamed(child, item)
	}
	return nil
}
