package project

import (
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

// Role represents semantic profile role
type Role string

const (
	RoleMandatory      = Role("mandatory")
	RoleOptional       = Role("optional")
	RoleVariationPoint = Role("variationPoint")
	RoleInclusive      = Role("inclusive")
	RoleExclusive      = Role("exclusive")
	RoleRequires       = Role("requires")
	RoleMutex          = Role("mutex")
)

// Roles lists profile roles in export order
var Roles = []Role{RoleMandatory, RoleOptional, RoleVariationPoint, RoleInclusive, RoleExclusive, RoleRequires, RoleMutex}

// Profile binds semantic roles to tag ids
type Profile struct {
	ID       string
	Name     string
	bindings map[Role]string
}

// defaultBindings binds roles to bootstrap tags STEREOTYPE#1..7
func defaultBindings() map[Role]string {
	ret := make(map[Role]string, len(Roles))
	for i, role := range Roles {
		ret[role] = bootstrapTags[i].ID
	}
	return ret
}

// DefaultProfile creates the default SMarty profile
func DefaultProfile() *Profile {
	return &Profile{ID: "PROFILE#1", Name: "SMartyProfile", bindings: defaultBindings()}
}

// ProfileFromNode creates profile from document node, missing roles keep default bindings
func ProfileFromNode(node document.Node) *Profile {
	ret := &Profile{ID: node.Attr("id"), Name: node.Attr("name"), bindings: defaultBindings()}
	for _, role := range Roles {
		if value := node.Attr(string(role)); value != "" {
			ret.bindings[role] = value
		}
	}
	return ret
}

// Tag returns tag id bound to the role
func (p *Profile) Tag(role Role) string {
	return p.bindings[role]
}

// Bind binds role to tag id
func (p *Profile) Bind(role Role, tagID string) {
	p.bindings[role] = tagID
}

// unbind restores default binding of every role bound to the tag
func (p *Profile) unbind(tagID string) {
	defaults := defaultBindings()
	for role, bound := range p.bindings {
		if bound == tagID {
			p.bindings[role] = defaults[role]
		}
	}
}

func (p *Profile) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("  <profile")
	document.WriteAttr(builder, "id", p.ID)
	document.WriteAttr(builder, "name", p.Name)
	for _, role := range Roles {
		document.WriteAttr(builder, string(role), p.bindings[role])
	}
	builder.WriteString("/>\n")
	return builder.String()
}

// VariantTag returns tag id variants of a variability with the constraint receive
func VariantTag(profile *Profile, constraint Constraint) string {
	if constraint == ConstraintInclusive {
		return profile.Tag(RoleInclusive)
	}
	return profile.Tag(RoleExclusive)
}

// DefaultTagFor returns mandatory or optional tag id for a default taggable element, empty otherwise
func DefaultTagFor(profile *Profile, element diagram.Element) string {
	if !element.IsDefault() || !element.AllowsTag() {
		return ""
	}
	if element.IsMandatory() {
		return profile.Tag(RoleMandatory)
	}
	return profile.Tag(RoleOptional)
}

// AssociationTag returns requires or mutex tag id for the association category, empty otherwise
func AssociationTag(profile *Profile, category diagram.Category) string {
	switch category {
	case diagram.CategoryRequires:
		return profile.Tag(RoleRequires)
	case diagram.CategoryMutex:
		return profile.Tag(RoleMutex)
	}
	return ""
}
