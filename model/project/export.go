package project

import (
	"strings"

	"github.com/viant/smarty/model/diagram"
	"github.com/viant/smarty/model/document"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FormatVersion is the document format version written by Export
const FormatVersion = "v1.0.0"

type exporter interface {
	Export() string
}

// Export returns canonical project document; two exports of an unchanged project are identical
func (p *Project) Export() string {
	builder := &strings.Builder{}
	builder.WriteString("<project")
	document.WriteAttr(builder, "id", p.id)
	document.WriteAttr(builder, "name", p.name)
	document.WriteAttr(builder, "version", p.Version)
	document.WriteAttr(builder, "format", FormatVersion)
	builder.WriteString(">\n")
	writeBlock(builder, "types", p.Types())
	writeBlock(builder, "stereotypes", p.AllTags())
	builder.WriteString(p.Profile.Export())
	for _, aDiagram := range p.FeatureDiagrams() {
		p.exportDiagram(builder, aDiagram)
	}
	for _, aDiagram := range p.UMLDiagrams() {
		p.exportDiagram(builder, aDiagram)
	}
	writeBlock(builder, "requirements", p.Requirements())
	writeBlock(builder, "traceabilities", p.Traceabilities())
	writeBlock(builder, "links", p.Links())
	writeBlock(builder, "products", p.Products())
	writeBlock(builder, "metrics", p.Metrics())
	writeBlock(builder, "measures", p.Measures())
	builder.WriteString("</project>\n")
	return p.checkEncoding(builder.String())
}

func writeBlock[T exporter](builder *strings.Builder, name string, items []T) {
	builder.WriteString("  <" + name + ">\n")
	for _, item := range items {
		builder.WriteString(item.Export())
	}
	builder.WriteString("  </" + name + ">\n")
}

// exportDiagram writes diagram with its elements, associations and variabilities
func (p *Project) exportDiagram(builder *strings.Builder, aDiagram *diagram.Diagram) {
	builder.WriteString(aDiagram.Open())
	for _, id := range aDiagram.Elements.IDs {
		if element := p.element(id); element != nil {
			builder.WriteString(element.Export())
		}
	}
	for _, id := range aDiagram.Associations.IDs {
		if association, ok := p.Association(id); ok {
			builder.WriteString(association.Export())
		}
	}
	for _, variability := range p.VariabilitiesOf(aDiagram.ID()) {
		builder.WriteString(variability.Export())
	}
	builder.WriteString(aDiagram.Close())
}

var utf16 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// checkEncoding validates text as UTF-8 and round trips it through UTF-16;
// any failure falls back to the untranscoded text
func (p *Project) checkEncoding(text string) string {
	if _, _, err := transform.String(encoding.UTF8Validator, text); err != nil {
		p.logger.Warn("export is not valid UTF-8, emitting raw document", "project", p.id, "error", err)
		return text
	}
	encoded, err := utf16.NewEncoder().String(text)
	if err != nil {
		p.logger.Warn("failed to encode export", "project", p.id, "error", err)
		return text
	}
	decoded, err := utf16.NewDecoder().String(encoded)
	if err != nil || decoded != text {
		p.logger.Warn("export encoding round trip mismatch, emitting raw document", "project", p.id, "error", err)
		return text
	}
	return decoded
}
