package project

import (
	"fmt"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

// Product represents derived product configuration
type Product struct {
	ID          string
	Name        string
	Version     string
	Description string
	Instances   []*Instance
}

// Instance represents product view of a diagram, its artifacts are the selected element ids
type Instance struct {
	ID        string
	Name      string
	DiagramID string
	Artifacts *diagram.IDSet
}

// NewProduct creates an empty product
func NewProduct(name, version string) *Product {
	return &Product{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}
}

// NewInstance creates instance of the diagram selecting the supplied elements
func NewInstance(name, diagramID string, artifacts ...string) *Instance {
	return &Instance{Name: strings.TrimSpace(name), DiagramID: diagramID, Artifacts: diagram.NewIDSet(artifacts...)}
}

// ProductFromNode creates product with its instances from document node
func ProductFromNode(node document.Node) *Product {
	ret := &Product{ID: node.Attr("id"), Name: node.Attr("name"), Version: node.Attr("version"), Description: node.Attr("description")}
	for _, child := range document.ChildrenNamed(node, "instance") {
		instance := &Instance{ID: child.Attr("id"), Name: child.Attr("name"), DiagramID: child.Attr("diagram"), Artifacts: diagram.NewIDSet()}
		for _, artifact := range document.ChildrenNamed(child, "artifact") {
			instance.Artifacts.Add(artifact.Attr("element"))
		}
		ret.Instances = append(ret.Instances, instance)
	}
	return ret
}

// IsEmpty returns true for product without instances
func (p *Product) IsEmpty() bool {
	return len(p.Instances) == 0
}

// Contains returns true if any instance selects the element
func (p *Product) Contains(elementID string) bool {
	for _, instance := range p.Instances {
		if instance.Artifacts.Contains(elementID) {
			return true
		}
	}
	return false
}

func (p *Product) removeInstance(id string) bool {
	for i, instance := range p.Instances {
		if instance.ID == id {
			p.Instances = append(p.Instances[:i], p.Instances[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Product) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <product")
	document.WriteAttr(builder, "id", p.ID)
	document.WriteAttr(builder, "name", p.Name)
	document.WriteAttr(builder, "version", p.Version)
	document.WriteAttr(builder, "description", p.Description)
	builder.WriteString(">\n")
	for _, instance := range p.Instances {
		builder.WriteString("      <instance")
		document.WriteAttr(builder, "id", instance.ID)
		document.WriteAttr(builder, "name", instance.Name)
		document.WriteAttr(builder, "diagram", instance.DiagramID)
		builder.WriteString(">\n")
		for _, id := range instance.Artifacts.IDs {
			builder.WriteString("        <artifact")
			document.WriteAttr(builder, "element", id)
			builder.WriteString("/>\n")
		}
		builder.WriteString("      </instance>\n")
	}
	builder.WriteString("    </product>\n")
	return builder.String()
}

// AddProduct mints id and adds product; instances supplied with the product are added too
func (p *Project) AddProduct(product *Product) (string, error) {
	for _, instance := range product.Instances {
		if err := p.checkInstance(instance); err != nil {
			return "", err
		}
	}
	instances := product.Instances
	product.Instances = nil
	product.ID = p.NextID(ProductPrefix)
	p.products.put(product.ID, product)
	p.register(product.ID, product)
	for _, instance := range instances {
		p.putInstance(product, instance)
	}
	return product.ID, nil
}

// AddInstance mints id and adds instance to the product; artifacts must belong to the instance diagram
func (p *Project) AddInstance(productID string, instance *Instance) (string, error) {
	product, ok := p.products.get(productID)
	if !ok {
		return "", fmt.Errorf("product %s: %w", productID, ErrUnknownReference)
	}
	if err := p.checkInstance(instance); err != nil {
		return "", err
	}
	p.putInstance(product, instance)
	return instance.ID, nil
}

func (p *Project) checkInstance(instance *Instance) error {
	if instance.Artifacts == nil {
		instance.Artifacts = diagram.NewIDSet()
	}
	aDiagram, ok := p.diagrams.get(instance.DiagramID)
	if !ok {
		return fmt.Errorf("instance %q diagram %s: %w", instance.Name, instance.DiagramID, ErrUnknownReference)
	}
	for _, id := range instance.Artifacts.IDs {
		if !aDiagram.Elements.Contains(id) {
			return fmt.Errorf("instance %q artifact %s: %w", instance.Name, id, ErrUnknownReference)
		}
	}
	return nil
}

func (p *Project) putInstance(product *Product, instance *Instance) {
	instance.ID = p.NextID(InstancePrefix)
	product.Instances = append(product.Instances, instance)
	p.register(instance.ID, instance)
}

func (p *Project) Product(id string) (*Product, bool) {
	return p.products.get(id)
}

// Products returns products in insertion order
func (p *Project) Products() []*Product {
	return p.products.values()
}

// Instances returns instances of every product
func (p *Project) Instances() []*Instance {
	var ret []*Instance
	for _, product := range p.products.values() {
		ret = append(ret, product.Instances...)
	}
	return ret
}

// InstancesByKind returns instances of diagrams with the kind
func (p *Project) InstancesByKind(kind diagram.Kind) []*Instance {
	var ret []*Instance
	for _, instance := range p.Instances() {
		if aDiagram, ok := p.diagrams.get(instance.DiagramID); ok && aDiagram.Kind == kind {
			ret = append(ret, instance)
		}
	}
	return ret
}

// Artifacts returns element ids selected by every instance
func (p *Project) Artifacts() []string {
	var ret []string
	for _, instance := range p.Instances() {
		ret = append(ret, instance.Artifacts.IDs...)
	}
	return ret
}

// RemoveInstance removes instance from its product; a product left empty is removed
func (p *Project) RemoveInstance(id string) bool {
	for _, product := range p.products.values() {
		if product.removeInstance(id) {
			p.unregister(id)
			if product.IsEmpty() {
				p.RemoveProduct(product.ID)
			}
			return true
		}
	}
	return false
}

// RemoveProduct removes product with its instances
func (p *Project) RemoveProduct(id string) bool {
	product, ok := p.products.get(id)
	if !ok {
		return false
	}
	for i := len(product.Instances) - 1; i >= 0; i-- {
		p.unregister(product.Instances[i].ID)
	}
	product.Instances = nil
	p.products.remove(id)
	p.unregister(id)
	return true
}

// removeInstancesOf removes every instance of the diagram
func (p *Project) removeInstancesOf(diagramID string) {
	p.removeInstances(func(instance *Instance) bool { return instance.DiagramID == diagramID })
}

// removeProductElement removes every instance selecting the element
func (p *Project) removeProductElement(elementID string) {
	p.removeInstances(func(instance *Instance) bool { return instance.Artifacts.Contains(elementID) })
}

func (p *Project) removeInstances(match func(instance *Instance) bool) {
	for _, product := range p.products.values() {
		for i := len(product.Instances) - 1; i >= 0; i-- {
			if match(product.Instances[i]) {
				p.RemoveInstance(product.Instances[i].ID)
			}
		}
	}
}
