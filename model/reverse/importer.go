// Package reverse imports Java source into class diagrams
package reverse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/smarty/model/codegen"
	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
)

var primitives = map[string]bool{
	"boolean": true, "byte": true, "char": true, "double": true, "float": true,
	"int": true, "long": true, "short": true, "void": true,
}

// Importer creates class diagram entities from Java compilation units
type Importer struct {
	project *project.Project
	logger  *slog.Logger
}

// unit holds per compilation unit resolution state
type unit struct {
	source      []byte
	packagePath string
	imports     map[string]string
	declared    []*declaration
}

type declaration struct {
	node   *sitter.Node
	entity *diagram.Entity
	added  bool
}

// New creates Java importer for the project
func New(aProject *project.Project) *Importer {
	return &Importer{project: aProject, logger: aProject.Logger()}
}

// Import parses source and adds its classes and interfaces with their members to the class diagram.
// Entities already present by qualified name are kept untouched. Returns ids of added entities.
func (i *Importer) Import(ctx context.Context, diagramID string, source []byte) ([]string, error) {
	aDiagram, ok := i.project.Diagram(diagramID)
	if !ok {
		return nil, fmt.Errorf("diagram %v: %w", diagramID, project.ErrUnknownReference)
	}
	if aDiagram.Kind != diagram.KindClass {
		return nil, fmt.Errorf("diagram %v is %v, not a class diagram", diagramID, aDiagram.Kind)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("failed to import: %w", codegen.ErrInvalidSource)
	}

	aUnit := &unit{source: source, imports: map[string]string{}}
	for j := 0; j < int(root.NamedChildCount()); j++ {
		child := root.NamedChild(j)
		switch child.Type() {
		case "package_declaration":
			aUnit.packagePath = parsePackageDeclaration(child, source)
		case "import_declaration":
			parseImportDeclaration(child, source, aUnit.imports)
		case "class_declaration", "interface_declaration":
			aUnit.declared = append(aUnit.declared, &declaration{node: child})
		default:
			i.logger.Debug("skipping java declaration", "kind", child.Type())
		}
	}

	var ret []string
	for _, decl := range aUnit.declared {
		if err := i.addEntity(diagramID, aUnit, decl); err != nil {
			return ret, err
		}
		if decl.added {
			ret = append(ret, decl.entity.ID())
		}
	}
	for _, decl := range aUnit.declared {
		if !decl.added {
			continue
		}
		if err := i.addMembers(diagramID, aUnit, decl); err != nil {
			return ret, err
		}
		if err := i.addSuperTypes(diagramID, aUnit, decl); err != nil {
			return ret, err
		}
	}
	i.logger.Info("imported java source", "diagram", diagramID, "package", aUnit.packagePath, "entities", len(ret))
	return ret, nil
}

func (i *Importer) addEntity(diagramID string, aUnit *unit, decl *declaration) error {
	nameNode := decl.node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(aUnit.source)
	qualified := name
	if aUnit.packagePath != "" {
		qualified = aUnit.packagePath + "." + name
	}
	if existing, ok := i.project.EntityByName(qualified); ok && existing.FullPath() == qualified {
		i.logger.Info("entity already exists, skipping", "entity", qualified, "id", existing.ID())
		decl.entity = existing
		return nil
	}
	var entity *diagram.Entity
	if decl.node.Type() == "interface_declaration" {
		entity = diagram.NewInterface(name, aUnit.packagePath)
	} else {
		entity = diagram.NewClass(name, aUnit.packagePath)
		mods := parseModifiers(decl.node)
		entity.Abstract, entity.Final = mods.abstract, mods.final
	}
	if _, err := i.project.AddElement(diagramID, entity); err != nil {
		return fmt.Errorf("failed to add %v: %w", qualified, err)
	}
	decl.entity, decl.added = entity, true
	return nil
}

func (i *Importer) addMembers(diagramID string, aUnit *unit, decl *declaration) error {
	body := decl.node.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	for j := 0; j < int(body.NamedChildCount()); j++ {
		child := body.NamedChild(j)
		var members []diagram.Element
		switch child.Type() {
		case "field_declaration", "constant_declaration":
			members = i.attributes(aUnit, decl.entity, child)
		case "method_declaration":
			members = append(members, i.method(aUnit, decl.entity, child))
		case "constructor_declaration":
			members = append(members, i.constructor(aUnit, decl.entity, child))
		}
		for _, member := range members {
			if _, err := i.project.AddElement(diagramID, member); err != nil {
				return fmt.Errorf("failed to add member %v of %v: %w", member.Name(), decl.entity.FullPath(), err)
			}
		}
	}
	return nil
}

func (i *Importer) attributes(aUnit *unit, entity *diagram.Entity, node *sitter.Node) []diagram.Element {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	typeID := i.resolve(aUnit, typeName(typeNode, aUnit.source))
	mods := parseModifiers(node)
	var ret []diagram.Element
	for _, name := range declaratorNames(node, aUnit.source) {
		attribute := diagram.NewAttribute(entity.ID(), name, typeID)
		attribute.Visibility = mods.visibility
		attribute.Static, attribute.Final = mods.static, mods.final
		if entity.Interface {
			// interface fields are implicitly public static final
			attribute.Visibility, attribute.Static, attribute.Final = "public", true, true
		}
		ret = append(ret, attribute)
	}
	return ret
}

func (i *Importer) method(aUnit *unit, entity *diagram.Entity, node *sitter.Node) *diagram.Method {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(aUnit.source)
	}
	returnID := ""
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		returnID = i.resolve(aUnit, typeName(typeNode, aUnit.source))
	}
	method := diagram.NewMethod(entity.ID(), name, returnID)
	mods := parseModifiers(node)
	method.Visibility = mods.visibility
	method.Static, method.Final, method.Abstract = mods.static, mods.final, mods.abstract
	if entity.Interface {
		method.Visibility = "public"
		method.Abstract = node.ChildByFieldName("body") == nil
	}
	i.addParameters(aUnit, method, node)
	return method
}

func (i *Importer) constructor(aUnit *unit, entity *diagram.Entity, node *sitter.Node) *diagram.Method {
	method := diagram.NewMethod(entity.ID(), entity.Name(), "")
	method.Constructor = true
	method.Visibility = parseModifiers(node).visibility
	i.addParameters(aUnit, method, node)
	return method
}

func (i *Importer) addParameters(aUnit *unit, method *diagram.Method, node *sitter.Node) {
	for _, param := range parseParameters(node, aUnit.source) {
		typeID := i.resolve(aUnit, typeName(param.typeNode, aUnit.source))
		if !method.AddParameter(&diagram.Parameter{Name: param.name, TypeID: typeID}) {
			i.logger.Debug("skipping duplicate parameter", "method", method.Name(), "parameter", param.name)
		}
	}
}

// addSuperTypes links declared supertypes present in the project with generalization or realization
func (i *Importer) addSuperTypes(diagramID string, aUnit *unit, decl *declaration) error {
	relations := map[diagram.Category][]string{}
	if decl.entity.Interface {
		relations[diagram.CategoryGeneralization] = superTypes(decl.node, aUnit.source, "extends_interfaces")
	} else {
		relations[diagram.CategoryGeneralization] = superTypes(decl.node, aUnit.source, "superclass")
		relations[diagram.CategoryRealization] = superTypes(decl.node, aUnit.source, "super_interfaces")
	}
	for _, category := range []diagram.Category{diagram.CategoryGeneralization, diagram.CategoryRealization} {
		for _, name := range relations[category] {
			target, ok := i.entity(aUnit, name)
			if !ok {
				i.logger.Debug("supertype outside the project", "entity", decl.entity.FullPath(), "supertype", name)
				continue
			}
			association := diagram.NewAssociation(category, decl.entity.ID(), target.ID())
			if _, err := i.project.AddAssociation(diagramID, association); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i *Importer) entity(aUnit *unit, name string) (*diagram.Entity, bool) {
	for _, candidate := range i.candidates(aUnit, name) {
		if entity, ok := i.project.EntityByName(candidate); ok && entity.FullPath() == candidate {
			return entity, true
		}
	}
	return nil, false
}

// candidates returns qualified names a simple type name may refer to, in Java resolution order
func (i *Importer) candidates(aUnit *unit, name string) []string {
	if strings.Contains(name, ".") {
		return []string{name}
	}
	var ret []string
	if path, ok := aUnit.imports[name]; ok {
		ret = append(ret, path+"."+name)
	}
	if aUnit.packagePath != "" {
		ret = append(ret, aUnit.packagePath+"."+name)
	}
	return append(ret, "java.lang."+name, name)
}

// resolve returns type id for a Java type name, unknown types resolve to the root type
func (i *Importer) resolve(aUnit *unit, name string) string {
	if primitives[name] {
		for _, candidate := range i.project.Types() {
			if candidate.Primitive && candidate.Name == name {
				return candidate.ID
			}
		}
	}
	types := i.project.Types()
	for _, signature := range i.candidates(aUnit, name) {
		for _, candidate := range types {
			if candidate.Primitive {
				continue
			}
			if candidate.Signature() == signature || (candidate.Path == "" && candidate.Name == signature) {
				return candidate.ID
			}
		}
	}
	i.logger.Debug("unresolved java type, using root type", "type", name)
	return i.project.ObjectType().ID
}
