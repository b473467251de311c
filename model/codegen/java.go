package codegen

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/project"
)

const indent = "    "

// defaultValues holds Java zero literals of primitive return types
var defaultValues = map[string]string{
	"boolean": "false",
	"byte":    "0",
	"char":    "' '",
	"double":  "0.0d",
	"float":   "0.0f",
	"int":     "0",
	"long":    "0L",
	"short":   "0",
}

// Java emits Java source of class diagram entities
type Java struct {
	project *project.Project
}

// NewJava creates Java emitter resolving types against the project
func NewJava(aProject *project.Project) *Java {
	return &Java{project: aProject}
}

// Emit returns compilation unit of the entity with its members
func (j *Java) Emit(entity *diagram.Entity) ([]byte, error) {
	if entity == nil || entity.Name() == "" {
		return nil, fmt.Errorf("failed to emit: entity without name")
	}
	members := j.project.Members(entity.ID())
	builder := &strings.Builder{}
	if entity.Path != "" {
		builder.WriteString(fmt.Sprintf("package %s;\n\n", entity.Path))
	}
	if imports := j.imports(entity, members); len(imports) > 0 {
		for _, imp := range imports {
			builder.WriteString(fmt.Sprintf("import %s;\n", imp))
		}
		builder.WriteString("\n")
	}
	builder.WriteString(j.header(entity))
	builder.WriteString(" {\n")
	for _, member := range members {
		if attribute, ok := member.(*diagram.Attribute); ok {
			builder.WriteString("\n" + indent)
			builder.WriteString(j.attribute(attribute))
			builder.WriteString("\n")
		}
	}
	for _, member := range members {
		if method, ok := member.(*diagram.Method); ok {
			builder.WriteString("\n" + indent)
			builder.WriteString(strings.ReplaceAll(j.method(entity, method), "\n", "\n"+indent))
			builder.WriteString("\n")
		}
	}
	builder.WriteString("}\n")
	return []byte(builder.String()), nil
}

// Fragment returns Java declaration of a single entity, attribute or method; other elements have none
func (j *Java) Fragment(element diagram.Element) string {
	switch actual := element.(type) {
	case *diagram.Entity:
		return j.header(actual) + " {\n}"
	case *diagram.Attribute:
		return j.attribute(actual)
	case *diagram.Method:
		owner, _ := j.project.Element(actual.EntityID())
		entity, _ := owner.(*diagram.Entity)
		return j.method(entity, actual)
	}
	return ""
}

// Files emits every entity of the project's class diagrams, paths follow the package layout.
// With validate set every emitted unit must parse.
func (j *Java) Files(ctx context.Context, validate bool) ([]*File, error) {
	var ret []*File
	for _, aDiagram := range j.project.DiagramsOfKind(diagram.KindClass) {
		for _, id := range aDiagram.Elements.Values() {
			element, _ := j.project.Element(id)
			entity, ok := element.(*diagram.Entity)
			if !ok {
				continue
			}
			content, err := j.Emit(entity)
			if err != nil {
				return nil, err
			}
			if validate {
				if err = Validate(ctx, content); err != nil {
					return nil, fmt.Errorf("failed to emit %v: %w", entity.FullPath(), err)
				}
			}
			ret = append(ret, &File{Path: FilePath(entity), Content: content})
		}
	}
	return ret, nil
}

// FilePath returns source path of the entity relative to the source root
func FilePath(entity *diagram.Entity) string {
	name := entity.Name() + ".java"
	if entity.Path == "" {
		return name
	}
	return strings.ReplaceAll(entity.Path, ".", "/") + "/" + name
}

func (j *Java) header(entity *diagram.Entity) string {
	builder := &strings.Builder{}
	builder.WriteString("public ")
	var extends, implements []string
	for _, association := range j.project.AssociationsFor(entity.ID()) {
		if association.SourceID != entity.ID() {
			continue
		}
		switch association.Category {
		case diagram.CategoryGeneralization:
			extends = append(extends, j.typeName(association.TargetID))
		case diagram.CategoryRealization:
			implements = append(implements, j.typeName(association.TargetID))
		}
	}
	if entity.Interface {
		builder.WriteString("interface ")
		builder.WriteString(entity.Name())
		extends = append(extends, implements...)
		if len(extends) > 0 {
			builder.WriteString(" extends " + strings.Join(extends, ", "))
		}
		return builder.String()
	}
	if entity.Abstract {
		builder.WriteString("abstract ")
	} else if entity.Final {
		builder.WriteString("final ")
	}
	builder.WriteString("class ")
	builder.WriteString(entity.Name())
	if len(extends) > 0 {
		// single inheritance
		builder.WriteString(" extends " + extends[0])
	}
	if len(implements) > 0 {
		builder.WriteString(" implements " + strings.Join(implements, ", "))
	}
	return builder.String()
}

func (j *Java) attribute(attribute *diagram.Attribute) string {
	builder := &strings.Builder{}
	writeModifiers(builder, attribute.Visibility, attribute.Static, attribute.Final, false)
	builder.WriteString(j.typeName(attribute.TypeID))
	builder.WriteString(" ")
	builder.WriteString(attribute.Name())
	builder.WriteString(";")
	return builder.String()
}

func (j *Java) method(entity *diagram.Entity, method *diagram.Method) string {
	isInterface := entity != nil && entity.Interface
	abstract := method.Abstract && !isInterface
	builder := &strings.Builder{}
	if isInterface {
		writeModifiers(builder, "", method.Static, false, false)
	} else {
		writeModifiers(builder, method.Visibility, method.Static, method.Final && !abstract, abstract)
	}
	if method.Constructor {
		if entity != nil {
			builder.WriteString(entity.Name())
		} else {
			builder.WriteString(method.Name())
		}
	} else {
		builder.WriteString(j.returnType(method.ReturnID))
		builder.WriteString(" ")
		builder.WriteString(method.Name())
	}
	builder.WriteString("(")
	for i, parameter := range method.Parameters {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(j.typeName(parameter.TypeID))
		builder.WriteString(" ")
		builder.WriteString(parameter.Name)
	}
	builder.WriteString(")")
	if abstract || (isInterface && !method.Static) {
		builder.WriteString(";")
		return builder.String()
	}
	builder.WriteString(" {\n")
	if !method.Constructor {
		if value := j.returnValue(method.ReturnID); value != "" {
			builder.WriteString(indent + "return " + value + ";\n")
		}
	}
	builder.WriteString("}")
	return builder.String()
}

func writeModifiers(builder *strings.Builder, visibility string, static, final, abstract bool) {
	switch visibility {
	case "public", "protected", "private":
		builder.WriteString(visibility + " ")
	}
	if abstract {
		builder.WriteString("abstract ")
	}
	if static {
		builder.WriteString("static ")
	}
	if final {
		builder.WriteString("final ")
	}
}

func (j *Java) typeName(id string) string {
	if aType, ok := j.project.Type(id); ok && aType.Name != "" {
		return aType.Name
	}
	return j.project.ObjectType().Name
}

func (j *Java) returnType(id string) string {
	if id == "" {
		return j.project.VoidType().Name
	}
	return j.typeName(id)
}

func (j *Java) returnValue(id string) string {
	name := j.returnType(id)
	if name == j.project.VoidType().Name {
		return ""
	}
	if value, ok := defaultValues[name]; ok {
		if aType, _ := j.project.Type(id); aType != nil && aType.Primitive {
			return value
		}
	}
	return "null"
}

// imports returns sorted qualified names of referenced types outside java.lang and the entity package
func (j *Java) imports(entity *diagram.Entity, members []diagram.Element) []string {
	seen := diagram.NewIDSet()
	for _, member := range members {
		holder, ok := member.(diagram.TypeHolder)
		if !ok {
			continue
		}
		for _, id := range holder.TypeIDs() {
			aType, ok := j.project.Type(id)
			if !ok || aType.Primitive || aType.Path == "" || aType.Path == "java.lang" || aType.Path == entity.Path {
				continue
			}
			seen.Add(aType.Signature())
		}
	}
	ret := seen.Values()
	sort.Strings(ret)
	return ret
}
