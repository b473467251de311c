package project

import (
	"sort"
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
)

// Tag represents stereotype
type Tag struct {
	ID      string
	Name    string
	BuiltIn bool
}

// TagFromNode creates tag from document node
func TagFromNode(node document.Node) *Tag {
	return &Tag{ID: node.Attr("id"), Name: node.Attr("name"), BuiltIn: document.Bool(node, "primitive")}
}

func (t *Tag) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <stereotype")
	document.WriteAttr(builder, "id", t.ID)
	document.WriteAttr(builder, "name", t.Name)
	document.WriteBool(builder, "primitive", t.BuiltIn)
	builder.WriteString("/>\n")
	return builder.String()
}

// Link represents tag applied to an object
type Link struct {
	ID       string
	ObjectID string
	TagID    string
}

// LinkID returns deterministic link id for object and tag
func LinkID(objectID, tagID string) string {
	return LinkPrefix + objectID + "-" + tagID
}

func (l *Link) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("    <link")
	document.WriteAttr(builder, "id", l.ID)
	document.WriteAttr(builder, "object", l.ObjectID)
	document.WriteAttr(builder, "stereotype", l.TagID)
	builder.WriteString("/>\n")
	return builder.String()
}

var bootstrapTags = []*Tag{
	{ID: "STEREOTYPE#1", Name: "mandatory", BuiltIn: true},
	{ID: "STEREOTYPE#2", Name: "optional", BuiltIn: true},
	{ID: "STEREOTYPE#3", Name: "variationPoint", BuiltIn: true},
	{ID: "STEREOTYPE#4", Name: "alternative_OR", BuiltIn: true},
	{ID: "STEREOTYPE#5", Name: "alternative_XOR", BuiltIn: true},
	{ID: "STEREOTYPE#6", Name: "requires", BuiltIn: true},
	{ID: "STEREOTYPE#7", Name: "mutex", BuiltIn: true},
	{ID: "STEREOTYPE#8", Name: "stereotype"},
}

func (p *Project) loadTags() {
	for _, tag := range bootstrapTags {
		aTag := *tag
		p.tags.put(aTag.ID, &aTag)
		p.register(aTag.ID, &aTag)
	}
}

// AddTag mints id and adds a user tag
func (p *Project) AddTag(tag *Tag) string {
	tag.ID = p.NextID(TagPrefix)
	tag.Name = strings.TrimSpace(tag.Name)
	tag.BuiltIn = false
	p.tags.put(tag.ID, tag)
	p.register(tag.ID, tag)
	return tag.ID
}

func (p *Project) Tag(id string) (*Tag, bool) {
	return p.tags.get(id)
}

// TagByName returns the first tag with the name
func (p *Project) TagByName(name string) (*Tag, bool) {
	for _, tag := range p.tags.values() {
		if tag.Name == name {
			return tag, true
		}
	}
	return nil, false
}

// AllTags returns tags sorted by name, then id
func (p *Project) AllTags() []*Tag {
	ret := p.tags.values()
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].Name != ret[j].Name {
			return ret[i].Name < ret[j].Name
		}
		return ret[i].ID < ret[j].ID
	})
	return ret
}

// Tags returns built-in or user tags sorted by name
func (p *Project) Tags(builtIn bool) []*Tag {
	var ret []*Tag
	for _, tag := range p.AllTags() {
		if tag.BuiltIn == builtIn {
			ret = append(ret, tag)
		}
	}
	return ret
}

// RemoveTag removes a user tag with its links; built-in tags are kept
func (p *Project) RemoveTag(id string) bool {
	tag, ok := p.tags.get(id)
	if !ok || tag.BuiltIn {
		return false
	}
	p.RemoveLinksForTag(id)
	p.Profile.unbind(id)
	p.tags.remove(id)
	p.unregister(id)
	return true
}

// AddLink links tag to the object; objects not allowing tags and repeated links are no-ops
func (p *Project) AddLink(object diagram.Object, tagID string) bool {
	if object == nil || !object.AllowsTag() {
		return false
	}
	if !p.tags.has(tagID) || !p.objects.has(object.ID()) {
		return false
	}
	id := LinkID(object.ID(), tagID)
	if p.links.has(id) {
		return false
	}
	link := &Link{ID: id, ObjectID: object.ID(), TagID: tagID}
	p.links.put(id, link)
	p.register(id, link)
	return true
}

// Link returns link between object and tag
func (p *Project) Link(objectID, tagID string) (*Link, bool) {
	return p.links.get(LinkID(objectID, tagID))
}

// RemoveLink removes a single link
func (p *Project) RemoveLink(objectID, tagID string) bool {
	id := LinkID(objectID, tagID)
	if !p.links.remove(id) {
		return false
	}
	p.unregister(id)
	return true
}

// Links returns links sorted by object, then tag
func (p *Project) Links() []*Link {
	ret := p.links.values()
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].ObjectID != ret[j].ObjectID {
			return ret[i].ObjectID < ret[j].ObjectID
		}
		return ret[i].TagID < ret[j].TagID
	})
	return ret
}

// LinksFor returns links of the object
func (p *Project) LinksFor(objectID string) []*Link {
	return p.filterLinks(func(link *Link) bool { return link.ObjectID == objectID })
}

// LinksForTag returns links of the tag
func (p *Project) LinksForTag(tagID string) []*Link {
	return p.filterLinks(func(link *Link) bool { return link.TagID == tagID })
}

func (p *Project) filterLinks(match func(link *Link) bool) []*Link {
	var ret []*Link
	for _, link := range p.Links() {
		if match(link) {
			ret = append(ret, link)
		}
	}
	return ret
}

// RemoveLinksFor removes every link of the object
func (p *Project) RemoveLinksFor(objectID string) int {
	return p.removeLinks(p.LinksFor(objectID))
}

// RemoveLinksForTag removes every link of the tag
func (p *Project) RemoveLinksForTag(tagID string) int {
	return p.removeLinks(p.LinksForTag(tagID))
}

func (p *Project) removeLinks(links []*Link) int {
	for _, link := range links {
		p.links.remove(link.ID)
		p.unregister(link.ID)
	}
	return len(links)
}

// StereotypesString returns space separated names of tags linked to the object
func (p *Project) StereotypesString(objectID string) string {
	var names []string
	for _, link := range p.LinksFor(objectID) {
		if tag, ok := p.tags.get(link.TagID); ok {
			names = append(names, tag.Name)
		}
	}
	return strings.Join(names, " ")
}

// UpdateTags links every default element to its profile tag
func (p *Project) UpdateTags() int {
	count := 0
	for _, element := range p.DefaultElements() {
		if tagID := DefaultTagFor(p.Profile, element); tagID != "" && p.AddLink(element, tagID) {
			count++
		}
	}
	return count
}
