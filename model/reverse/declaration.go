package reverse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// modifiers represents Java declaration modifiers
type modifiers struct {
	visibility string
	static     bool
	final      bool
	abstract   bool
	isDefault  bool
}

// parseModifiers reads the modifiers child of a declaration, keywords are anonymous nodes
func parseModifiers(node *sitter.Node) modifiers {
	var ret modifiers
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			switch keyword := child.Child(j).Type(); keyword {
			case "public", "protected", "private":
				ret.visibility = keyword
			case "static":
				ret.static = true
			case "final":
				ret.final = true
			case "abstract":
				ret.abstract = true
			case "default":
				ret.isDefault = true
			}
		}
	}
	return ret
}

// parsePackageDeclaration extracts the package name
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return child.Content(source)
		}
	}
	return ""
}

// parseImportDeclaration maps simple name to package path, wildcard and static imports are ignored
func parseImportDeclaration(node *sitter.Node, source []byte, imports map[string]string) {
	for i := 0; i < int(node.ChildCount()); i++ {
		switch node.Child(i).Type() {
		case "static", "asterisk":
			return
		}
	}
	importNode := node.NamedChild(0)
	if importNode == nil || importNode.Type() != "scoped_identifier" {
		return
	}
	scopeNode := importNode.ChildByFieldName("scope")
	nameNode := importNode.ChildByFieldName("name")
	if scopeNode != nil && nameNode != nil {
		imports[nameNode.Content(source)] = scopeNode.Content(source)
	}
}

// typeName returns the erased name of a type node: generics and array dimensions are dropped
func typeName(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case "generic_type":
		if node.NamedChildCount() > 0 {
			return typeName(node.NamedChild(0), source)
		}
	case "array_type":
		if element := node.ChildByFieldName("element"); element != nil {
			return typeName(element, source)
		}
	case "annotated_type":
		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			if child := node.NamedChild(i); !strings.HasSuffix(child.Type(), "annotation") {
				return typeName(child, source)
			}
		}
	}
	return strings.TrimSpace(node.Content(source))
}

// superTypes returns erased names of types listed by superclass, super_interfaces or extends_interfaces children
func superTypes(node *sitter.Node, source []byte, kind string) []string {
	var ret []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == kind {
			ret = append(ret, collectTypes(child, source)...)
		}
	}
	return ret
}

func collectTypes(node *sitter.Node, source []byte) []string {
	var ret []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "type_identifier", "scoped_type_identifier", "generic_type":
			ret = append(ret, typeName(child, source))
		default:
			ret = append(ret, collectTypes(child, source)...)
		}
	}
	return ret
}

// parameter represents formal parameter before type resolution
type parameter struct {
	name     string
	typeNode *sitter.Node
}

func parseParameters(node *sitter.Node, source []byte) []parameter {
	parametersNode := node.ChildByFieldName("parameters")
	if parametersNode == nil {
		return nil
	}
	var ret []parameter
	for i := 0; i < int(parametersNode.NamedChildCount()); i++ {
		paramNode := parametersNode.NamedChild(i)
		switch paramNode.Type() {
		case "formal_parameter":
			typeNode, nameNode := paramNode.ChildByFieldName("type"), paramNode.ChildByFieldName("name")
			if typeNode != nil && nameNode != nil {
				ret = append(ret, parameter{name: nameNode.Content(source), typeNode: typeNode})
			}
		case "spread_parameter":
			var typeNode, nameNode *sitter.Node
			for j := 0; j < int(paramNode.NamedChildCount()); j++ {
				child := paramNode.NamedChild(j)
				switch child.Type() {
				case "variable_declarator":
					nameNode = child.ChildByFieldName("name")
				case "modifiers":
				default:
					if typeNode == nil {
						typeNode = child
					}
				}
			}
			if typeNode != nil && nameNode != nil {
				ret = append(ret, parameter{name: nameNode.Content(source), typeNode: typeNode})
			}
		}
	}
	return ret
}

// declaratorNames returns variable names of a field declaration, e.g. `int a, b;`
func declaratorNames(node *sitter.Node, source []byte) []string {
	var ret []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			ret = append(ret, nameNode.Content(source))
		}
	}
	return ret
}
