package diagram

import (
	"strings"

	"github.com/viant/smarty/model/document"
)

const (
	TypeFeature   = "feature"
	TypeClass     = "class"
	TypeInterface = "interface"
	TypeAttribute = "attribute"
	TypeMethod    = "method"
)

// Feature represents a feature diagram node
type Feature struct {
	Base
}

// NewFeature creates a feature
func NewFeature(name string, mandatory bool) *Feature {
	ret := &Feature{}
	ret.SetName(name)
	ret.Mandatory = mandatory
	return ret
}

// FeatureFromNode creates a feature from document node
func FeatureFromNode(node document.Node) *Feature {
	ret := &Feature{}
	ret.readAttrs(node)
	return ret
}

func (f *Feature) Type() string {
	return TypeFeature
}

func (f *Feature) Prefix() string {
	return "FEATURE#"
}

func (f *Feature) AllowsTag() bool {
	return true
}

func (f *Feature) Export() string {
	builder := &strings.Builder{}
	openTag(builder, TypeFeature)
	f.writeAttrs(builder)
	builder.WriteString("/>\n")
	return builder.String()
}
