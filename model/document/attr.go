package document

import (
	"strconv"
	"strings"
)

// Unbounded represents "*" upper cardinality
const Unbounded = -1

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"\n", "&#xA;",
	"\r", "&#xD;",
	"\t", "&#x9;",
)

// Escape escapes attribute and text values
func Escape(value string) string {
	return escaper.Replace(value)
}

// WriteAttr writes ` name="value"`
func WriteAttr(builder *strings.Builder, name, value string) {
	builder.WriteString(" ")
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(Escape(value))
	builder.WriteString(`"`)
}

// WriteBool writes boolean attribute as literal true/false
func WriteBool(builder *strings.Builder, name string, value bool) {
	WriteAttr(builder, name, strconv.FormatBool(value))
}

// WriteInt writes integer attribute
func WriteInt(builder *strings.Builder, name string, value int) {
	WriteAttr(builder, name, strconv.Itoa(value))
}

// Bool decodes "true" (case-insensitive, trimmed); anything else is false
func Bool(node Node, name string) bool {
	return strings.EqualFold(strings.TrimSpace(node.Attr(name)), "true")
}

// Int decodes integer attribute, malformed or missing values yield fallback
func Int(node Node, name string, fallback int) int {
	value := strings.TrimSpace(node.Attr(name))
	if value == "" {
		return fallback
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	// positions are occasionally written as decimals
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return fallback
}

// Float decodes float attribute, malformed or missing values yield fallback
func Float(node Node, name string, fallback float64) float64 {
	value := strings.TrimSpace(node.Attr(name))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

// FormatFloat encodes float in the shortest lossless form
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Cardinality decodes a cardinality bound: "*" maps to 0 for lower bounds and
// Unbounded for upper bounds; malformed values yield the given fallback
func Cardinality(node Node, name string, upper bool, fallback int) int {
	value := strings.TrimSpace(node.Attr(name))
	if value == "*" {
		if upper {
			return Unbounded
		}
		return 0
	}
	return Int(node, name, fallback)
}

// FormatCardinality encodes a cardinality bound
func FormatCardinality(value int) string {
	if value == Unbounded {
		return "*"
	}
	return strconv.Itoa(value)
}
