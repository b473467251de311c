package project

import (
	"fmt"
	"strings"

	"github.com/viant/smarty/model/document"
)

// Metric represents measurement definition
type Metric struct {
	ID          string
	Name        string
	Label       string
	Operation   string // expression evaluated by external tooling
	Description string
}

// NewMetric creates metric definition
func NewMetric(name, label string) *Metric {
	return &Metric{Name: strings.TrimSpace(name), Label: strings.TrimSpace(label)}
}

// MetricFromNode creates metric from document node
func MetricFromNode(node document.Node) *Metric {
	return &Metric{
		ID:          node.Attr("id"),
		Name:        node.Attr("name"),
		Label:       node.Attr("label"),
		Operation:   node.Attr("operation"),
		Description: node.Attr("description"),
	}
}

func (m *Metric) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <metric")
	document.WriteAttr(builder, "id", m.ID)
	document.WriteAttr(builder, "name", m.Name)
	document.WriteAttr(builder, "label", m.Label)
	document.WriteAttr(builder, "operation", m.Operation)
	document.WriteAttr(builder, "description", m.Description)
	builder.WriteString("/>\n")
	return builder.String()
}

// Measure represents metric value taken for a target
type Measure struct {
	ID       string
	Name     string
	MetricID string
	TargetID string // project, diagram, element or requirement id
	Value    float64
}

// NewMeasure creates a measure of the metric for the target
func NewMeasure(metricID, targetID string, value float64) *Measure {
	return &Measure{MetricID: metricID, TargetID: targetID, Value: value}
}

// MeasureFromNode creates measure from document node
func MeasureFromNode(node document.Node) *Measure {
	return &Measure{
		ID:       node.Attr("id"),
		Name:     node.Attr("name"),
		MetricID: node.Attr("metric"),
		TargetID: node.Attr("target"),
		Value:    document.Float(node, "value", 0),
	}
}

func (m *Measure) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <measure")
	document.WriteAttr(builder, "id", m.ID)
	document.WriteAttr(builder, "name", m.Name)
	document.WriteAttr(builder, "metric", m.MetricID)
	document.WriteAttr(builder, "target", m.TargetID)
	document.WriteAttr(builder, "value", document.FormatFloat(m.Value))
	builder.WriteString("/>\n")
	return builder.String()
}

// AddMetric mints id and adds metric
func (p *Project) AddMetric(metric *Metric) string {
	metric.ID = p.NextID(MetricPrefix)
	p.metrics.put(metric.ID, metric)
	p.register(metric.ID, metric)
	return metric.ID
}

func (p *Project) Metric(id string) (*Metric, bool) {
	return p.metrics.get(id)
}

// Metrics returns metrics in insertion order
func (p *Project) Metrics() []*Metric {
	return p.metrics.values()
}

// RemoveMetric removes metric with all its measures
func (p *Project) RemoveMetric(id string) bool {
	if !p.metrics.has(id) {
		return false
	}
	for _, measure := range p.MeasuresByMetric(id) {
		p.RemoveMeasure(measure.ID)
	}
	p.metrics.remove(id)
	p.unregister(id)
	return true
}

// AddMeasure mints id and adds measure of an existing metric for the project or a namespace object
func (p *Project) AddMeasure(measure *Measure) (string, error) {
	if !p.metrics.has(measure.MetricID) {
		return "", fmt.Errorf("measure metric %s: %w", measure.MetricID, ErrUnknownReference)
	}
	if measure.TargetID != p.id && !p.objects.has(measure.TargetID) {
		return "", fmt.Errorf("measure target %s: %w", measure.TargetID, ErrUnknownReference)
	}
	measure.ID = p.NextID(MeasurePrefix)
	p.measures.put(measure.ID, measure)
	p.register(measure.ID, measure)
	return measure.ID, nil
}

func (p *Project) Measure(id string) (*Measure, bool) {
	return p.measures.get(id)
}

// Measures returns measures in insertion order
func (p *Project) Measures() []*Measure {
	return p.measures.values()
}

// MeasuresByMetric returns measures of the metric
func (p *Project) MeasuresByMetric(metricID string) []*Measure {
	return p.filterMeasures(func(m *Measure) bool { return m.MetricID == metricID })
}

// MeasuresFor returns measures taken for the target
func (p *Project) MeasuresFor(targetID string) []*Measure {
	return p.filterMeasures(func(m *Measure) bool { return m.TargetID == targetID })
}

func (p *Project) filterMeasures(match func(m *Measure) bool) []*Measure {
	var ret []*Measure
	for _, measure := range p.measures.values() {
		if match(measure) {
			ret = append(ret, measure)
		}
	}
	return ret
}

// RemoveMeasure removes a single measure
func (p *Project) RemoveMeasure(id string) bool {
	if !p.measures.remove(id) {
		return false
	}
	p.unregister(id)
	return true
}

func (p *Project) removeMeasuresFor(targetID string) {
	for _, measure := range p.MeasuresFor(targetID) {
		p.RemoveMeasure(measure.ID)
	}
}
