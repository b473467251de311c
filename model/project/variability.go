package project

import (
	"fmt"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

// Constraint represents variant selection constraint
type Constraint string

const (
	ConstraintInclusive = Constraint("Inclusive")
	ConstraintExclusive = Constraint("Exclusive")
)

// ParseConstraint matches constraint case-insensitively, anything else is exclusive
func ParseConstraint(value string) Constraint {
	if strings.EqualFold(strings.TrimSpace(value), string(ConstraintInclusive)) {
		return ConstraintInclusive
	}
	return ConstraintExclusive
}

// BindingTime represents variability resolution time
type BindingTime string

const (
	BindingDesignTime         = BindingTime("DESIGN_TIME")
	BindingImplementationTime = BindingTime("IMPLEMENTATION_TIME")
	BindingCompileTime        = BindingTime("COMPILE_TIME")
	BindingLinkingTime        = BindingTime("LINKING_TIME")
	BindingRuntime            = BindingTime("RUNTIME")
)

// BindingTimes lists every binding time
var BindingTimes = []BindingTime{BindingDesignTime, BindingImplementationTime, BindingCompileTime, BindingLinkingTime, BindingRuntime}

// ParseBindingTime matches binding time case-insensitively, unknown values are design time
func ParseBindingTime(value string) BindingTime {
	value = strings.ToUpper(strings.TrimSpace(value))
	for _, candidate := range BindingTimes {
		if string(candidate) == value {
			return candidate
		}
	}
	return BindingDesignTime
}

// Variability represents variation point with its variants
type Variability struct {
	ID               string
	Name             string
	VariationPointID string
	Constraint       Constraint
	BindingTime      BindingTime
	Min              int
	Max              int // document.Unbounded for no limit
	Variants         *diagram.IDSet
}

// NewVariability creates exclusive, design time variability selecting exactly one variant
func NewVariability(name, variationPointID string, variants ...string) *Variability {
	return &Variability{
		Name:             strings.TrimSpace(name),
		VariationPointID: variationPointID,
		Constraint:       ConstraintExclusive,
		BindingTime:      BindingDesignTime,
		Min:              1,
		Max:              1,
		Variants:         diagram.NewIDSet(variants...),
	}
}

// VariabilityFromNode creates variability from document node
func VariabilityFromNode(node document.Node) *Variability {
	ret := &Variability{
		ID:               node.Attr("id"),
		Name:             node.Attr("name"),
		VariationPointID: node.Attr("variationPoint"),
		Constraint:       ParseConstraint(node.Attr("constraint")),
		BindingTime:      ParseBindingTime(node.Attr("bindingTime")),
		Min:              document.Cardinality(node, "min", false, 1),
		Max:              document.Cardinality(node, "max", true, 1),
		Variants:         diagram.NewIDSet(),
	}
	for _, child := range document.ChildrenNamed(node, "variant") {
		ret.Variants.Add(child.Attr("id"))
	}
	return ret
}

// Validate checks selection bounds
func (v *Variability) Validate() error {
	if v.Min < 0 {
		return fmt.Errorf("variability %q min %d: %w", v.Name, v.Min, ErrInvalidBounds)
	}
	if v.Max != document.Unbounded && v.Min > v.Max {
		return fmt.Errorf("variability %q min %d > max %d: %w", v.Name, v.Min, v.Max, ErrInvalidBounds)
	}
	return nil
}

func (v *Variability) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <variability")
	document.WriteAttr(builder, "id", v.ID)
	document.WriteAttr(builder, "name", v.Name)
	document.WriteAttr(builder, "variationPoint", v.VariationPointID)
	document.WriteAttr(builder, "constraint", string(v.Constraint))
	document.WriteAttr(builder, "bindingTime", string(v.BindingTime))
	document.WriteAttr(builder, "min", document.FormatCardinality(v.Min))
	document.WriteAttr(builder, "max", document.FormatCardinality(v.Max))
	builder.WriteString(">\n")
	for _, id := range v.Variants.IDs {
		builder.WriteString("      <variant")
		document.WriteAttr(builder, "id", id)
		builder.WriteString("/>\n")
	}
	builder.WriteString("    </variability>\n")
	return builder.String()
}

// AddVariability validates and adds variability, then links the variation point and variants
// to their profile tags
func (p *Project) AddVariability(variability *Variability) (string, error) {
	if err := p.checkVariability(variability); err != nil {
		return "", err
	}
	variability.ID = p.NextID(VariabilityPrefix)
	p.putVariability(variability)
	p.AddLink(p.element(variability.VariationPointID), p.Profile.Tag(RoleVariationPoint))
	tagID := VariantTag(p.Profile, variability.Constraint)
	for _, id := range variability.Variants.IDs {
		p.AddLink(p.element(id), tagID)
	}
	return variability.ID, nil
}

func (p *Project) checkVariability(variability *Variability) error {
	if variability.Variants == nil {
		variability.Variants = diagram.NewIDSet()
	}
	if p.element(variability.VariationPointID) == nil {
		return fmt.Errorf("variability %q variation point %s: %w", variability.Name, variability.VariationPointID, ErrUnknownReference)
	}
	if err := variability.Validate(); err != nil {
		return err
	}
	for _, id := range variability.Variants.IDs {
		if p.element(id) == nil {
			return fmt.Errorf("variability %q variant %s: %w", variability.Name, id, ErrUnknownReference)
		}
		if id == variability.VariationPointID {
			return fmt.Errorf("variability %q variant %s is its variation point: %w", variability.Name, id, ErrDuplicateVariant)
		}
	}
	return nil
}

func (p *Project) putVariability(variability *Variability) {
	p.variabilities.put(variability.ID, variability)
	p.register(variability.ID, variability)
}

// AddVariant adds element to variability variants and links it to the variant tag
func (p *Project) AddVariant(variabilityID, elementID string) error {
	variability, ok := p.variabilities.get(variabilityID)
	if !ok {
		return fmt.Errorf("variability %s: %w", variabilityID, ErrUnknownReference)
	}
	element := p.element(elementID)
	if element == nil {
		return fmt.Errorf("variant %s: %w", elementID, ErrUnknownReference)
	}
	if elementID == variability.VariationPointID || !variability.Variants.Add(elementID) {
		return fmt.Errorf("variability %q variant %s: %w", variability.Name, elementID, ErrDuplicateVariant)
	}
	p.AddLink(element, VariantTag(p.Profile, variability.Constraint))
	return nil
}

func (p *Project) Variability(id string) (*Variability, bool) {
	return p.variabilities.get(id)
}

// Variabilities returns variabilities in insertion order
func (p *Project) Variabilities() []*Variability {
	return p.variabilities.values()
}

// VariabilitiesOf returns variabilities whose variation point belongs to the diagram
func (p *Project) VariabilitiesOf(diagramID string) []*Variability {
	var ret []*Variability
	for _, variability := range p.variabilities.values() {
		if element := p.element(variability.VariationPointID); element != nil && element.DiagramID() == diagramID {
			ret = append(ret, variability)
		}
	}
	return ret
}

// VariabilitiesFor returns variabilities with the element as variation point or variant
func (p *Project) VariabilitiesFor(elementID string) []*Variability {
	var ret []*Variability
	for _, variability := range p.variabilities.values() {
		if variability.VariationPointID == elementID || variability.Variants.Contains(elementID) {
			ret = append(ret, variability)
		}
	}
	return ret
}

// RemoveVariability removes the variability; tag links applied on add are kept
func (p *Project) RemoveVariability(id string) bool {
	if !p.variabilities.remove(id) {
		return false
	}
	p.unregister(id)
	return true
}

// removeVariant drops element from variants; variabilities losing their variation point are removed
func (p *Project) removeVariant(elementID string) {
	for _, variability := range p.VariabilitiesFor(elementID) {
		if variability.VariationPointID == elementID {
			p.RemoveVariability(variability.ID)
			continue
		}
		variability.Variants.Remove(elementID)
	}
}
