package project

import (
	"sort"
	"strconv"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

const (
	objectTypeID = "TYPE#21"
	voidTypeID   = "TYPE#9"
)

// Type represents reusable type descriptor
type Type struct {
	ID        string
	Path      string // namespace path, empty for project types
	Name      string
	Value     string // default value literal
	Primitive bool
	Standard  bool
	Entity    bool // shares id with a class diagram entity
}

// NewType creates user type descriptor
func NewType(path, name string) *Type {
	return &Type{Path: strings.TrimSpace(path), Name: strings.TrimSpace(name), Value: "null"}
}

// TypeFromNode creates type descriptor from document node
func TypeFromNode(node document.Node) *Type {
	return &Type{
		ID:        node.Attr("id"),
		Path:      node.Attr("path"),
		Name:      node.Attr("name"),
		Value:     node.Attr("value"),
		Primitive: document.Bool(node, "primitive"),
		Standard:  document.Bool(node, "standard"),
		Entity:    document.Bool(node, "entity"),
	}
}

// Signature returns qualified type name, primitives and path-less types have none
func (t *Type) Signature() string {
	if t.Primitive || t.Path == "" {
		return ""
	}
	return t.Path + "." + t.Name
}

func (t *Type) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <type")
	document.WriteAttr(builder, "id", t.ID)
	document.WriteAttr(builder, "path", t.Path)
	document.WriteAttr(builder, "name", t.Name)
	document.WriteAttr(builder, "value", t.Value)
	document.WriteBool(builder, "primitive", t.Primitive)
	document.WriteBool(builder, "standard", t.Standard)
	document.WriteBool(builder, "entity", t.Entity)
	builder.WriteString("/>\n")
	return builder.String()
}

var primitiveTypes = []*Type{
	{ID: "TYPE#1", Name: "boolean", Value: "false"},
	{ID: "TYPE#2", Name: "byte", Value: "'0'"},
	{ID: "TYPE#3", Name: "char", Value: "' '"},
	{ID: "TYPE#4", Name: "double", Value: "0.0d"},
	{ID: "TYPE#5", Name: "float", Value: "0.0f"},
	{ID: "TYPE#6", Name: "int", Value: "0"},
	{ID: "TYPE#7", Name: "long", Value: "0.0l"},
	{ID: "TYPE#8", Name: "short", Value: "0"},
	{ID: "TYPE#9", Name: "void", Value: ""},
}

var standardTypes = map[string][]string{
	"java.lang": {"Boolean", "Byte", "Character", "Double", "Enum", "Exception", "Float", "Integer", "Long",
		"Math", "Number", "Object", "Package", "Short", "String", "StringBuffer", "StringBuilder", "Thread", "Void"},
	"java.util": {"Arrays", "Collections", "Date", "EnumMap", "EnumSet", "EventListener", "HashMap", "HashSet",
		"HashTable", "LinkedHashMap", "LinkedHashSet", "LinkedList", "List", "Map", "Queue", "Random", "Scanner",
		"Set", "Stack", "Timer", "TreeMap", "TreeSet", "Vector"},
}

// loadTypes registers primitive and standard library types with their well-known ids
func (p *Project) loadTypes() {
	for _, primitive := range primitiveTypes {
		aType := *primitive
		aType.Primitive = true
		p.putType(&aType)
	}
	index := len(primitiveTypes) + 1
	for _, path := range []string{"java.lang", "java.util"} {
		for _, name := range standardTypes[path] {
			p.putType(&Type{ID: TypePrefix + strconv.Itoa(index), Path: path, Name: name, Value: "null", Standard: true})
			index++
		}
	}
}

func (p *Project) putType(aType *Type) {
	p.types.put(aType.ID, aType)
	if !aType.Entity {
		p.register(aType.ID, aType)
	}
}

// AddType mints id and adds user type descriptor
func (p *Project) AddType(aType *Type) string {
	aType.ID = p.NextID(TypePrefix)
	aType.Primitive, aType.Standard, aType.Entity = false, false, false
	if aType.Value == "" {
		aType.Value = "null"
	}
	p.putType(aType)
	return aType.ID
}

// AddEntityType adds type descriptor sharing id with the class diagram entity
func (p *Project) AddEntityType(entity *diagram.Entity) *Type {
	aType := &Type{ID: entity.ID(), Path: entity.Path, Name: entity.Name(), Value: "null", Entity: true}
	p.putType(aType)
	return aType
}

// EntityType returns type descriptor of the entity
func (p *Project) EntityType(entity *diagram.Entity) (*Type, bool) {
	aType, ok := p.types.get(entity.ID())
	if !ok || !aType.Entity {
		return nil, false
	}
	return p.syncEntityType(aType), true
}

func (p *Project) Type(id string) (*Type, bool) {
	aType, ok := p.types.get(id)
	if !ok {
		return nil, false
	}
	return p.syncEntityType(aType), true
}

// syncEntityType copies the current entity name and path into its type descriptor
func (p *Project) syncEntityType(aType *Type) *Type {
	if !aType.Entity {
		return aType
	}
	if entity, ok := p.element(aType.ID).(*diagram.Entity); ok {
		aType.Name, aType.Path = entity.Name(), entity.Path
	}
	return aType
}

// Types returns type descriptors sorted by name, then id
func (p *Project) Types() []*Type {
	ret := p.types.values()
	for _, aType := range ret {
		p.syncEntityType(aType)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].Name != ret[j].Name {
			return ret[i].Name < ret[j].Name
		}
		return ret[i].ID < ret[j].ID
	})
	return ret
}

// ObjectType returns the root type, reloading bootstrap types into an empty catalog
func (p *Project) ObjectType() *Type {
	return p.defaultType(objectTypeID)
}

// VoidType returns the void type, reloading bootstrap types into an empty catalog
func (p *Project) VoidType() *Type {
	return p.defaultType(voidTypeID)
}

func (p *Project) defaultType(id string) *Type {
	if aType, ok := p.types.get(id); ok {
		return aType
	}
	p.logger.Debug("reloading bootstrap types", "project", p.id, "missing", id)
	p.loadTypes()
	aType, _ := p.types.get(id)
	return aType
}

// TypeByName returns the first type matching name case-insensitively, or the root type
func (p *Project) TypeByName(name string) *Type {
	name = strings.TrimSpace(name)
	for _, candidate := range p.Types() {
		if strings.EqualFold(candidate.Name, name) {
			return candidate
		}
	}
	p.logger.Debug("type not found, using root type", "name", name)
	return p.ObjectType()
}

// TypeBySignature returns the first non-primitive type with the signature, or the root type
func (p *Project) TypeBySignature(signature string) *Type {
	signature = strings.TrimSpace(signature)
	for _, candidate := range p.Types() {
		if !candidate.Primitive && candidate.Signature() == signature {
			return candidate
		}
	}
	p.logger.Debug("type signature not found, using root type", "signature", signature)
	return p.ObjectType()
}

// RemoveEntityType removes the entity type after substituting its references
func (p *Project) RemoveEntityType(entity *diagram.Entity) bool {
	return p.RemoveType(entity.ID())
}

// RemoveType rewrites every reference to the type to the root type, then removes the descriptor;
// bootstrap types are never removed
func (p *Project) RemoveType(id string) bool {
	aType, ok := p.types.get(id)
	if !ok || aType.Primitive || aType.Standard {
		return false
	}
	rootID := p.ObjectType().ID
	for _, holder := range p.typeHolders() {
		holder.ChangeType(id, rootID)
	}
	p.types.remove(id)
	if object, ok := p.objects.get(id); ok && object == any(aType) {
		p.unregister(id)
	}
	return true
}

// typeHolders returns every element carrying type references across all diagrams
func (p *Project) typeHolders() []diagram.TypeHolder {
	var ret []diagram.TypeHolder
	for _, aDiagram := range p.diagrams.values() {
		for _, id := range aDiagram.Elements.IDs {
			if holder, ok := p.element(id).(diagram.TypeHolder); ok {
				ret = append(ret, holder)
			}
		}
	}
	return ret
}

// ReferencedTypes returns type ids referenced by elements, used to detect dangling references
func (p *Project) ReferencedTypes() []string {
	seen := diagram.NewIDSet()
	for _, holder := range p.typeHolders() {
		for _, id := range holder.TypeIDs() {
			seen.Add(id)
		}
	}
	return seen.Values()
}
