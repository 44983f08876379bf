package engine

import (
	"html"
	"sort"
	"strings"
)

// voidTags are elements serialized without a closing tag.
var voidTags = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// SerializeHTML flattens a markup tree into an HTML string with inline
// style attributes and data-node-id markers. Purely mechanical: all
// decisions were made during translation.
func SerializeHTML(root *MarkupNode) string {
	var b strings.Builder
	writeHTML(&b, root, 0)
	return b.String()
}

func writeHTML(b *strings.Builder, m *MarkupNode, depth int) {
	indent := strings.Repeat("  ", depth)

	if m.Binding != nil {
		// The HTML target has no component runtime; bound nodes render
		// as annotated placeholders a hydration layer can claim.
		b.WriteString(indent)
		b.WriteString("<div data-component=\"")
		b.WriteString(html.EscapeString(m.Binding.Component))
		b.WriteString("\"")
		for _, key := range sortedKeys(m.Binding.Props) {
			writeAttr(b, key, m.Binding.Props[key])
		}
		if len(m.Binding.StyleOverrides) > 0 {
			writeAttr(b, "style", styleAttr(m.Binding.StyleOverrides))
		}
		writeAttr(b, "data-node-id", m.Binding.SourceNodeID)
		b.WriteString("></div>\n")
		return
	}

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(m.Tag)
	if len(m.Styles) > 0 {
		writeAttr(b, "style", styleAttr(m.Styles))
	}
	for _, key := range sortedKeys(m.Attrs) {
		value := m.Attrs[key]
		if value == "" && isBooleanAttr(key) {
			b.WriteString(" ")
			b.WriteString(key)
			continue
		}
		writeAttr(b, key, value)
	}

	if voidTags[m.Tag] {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">")

	switch {
	case m.RawSVG != "":
		b.WriteString(m.RawSVG)
	case m.Text != "":
		b.WriteString(html.EscapeString(m.Text))
	case len(m.Children) > 0:
		b.WriteString("\n")
		for _, child := range m.Children {
			writeHTML(b, child, depth+1)
		}
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(m.Tag)
	b.WriteString(">\n")
}

// styleAttr joins declarations in order. Order matters: a later
// declaration for the same property wins in the attribute cascade.
func styleAttr(decls []StyleDecl) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=\"")
	b.WriteString(html.EscapeString(value))
	b.WriteString("\"")
}

func isBooleanAttr(key string) bool {
	switch key {
	case "autoplay", "loop", "muted", "playsinline", "controls":
		return true
	}
	return false
}

// sortedKeys gives attributes a deterministic emission order, which the
// idempotence guarantee depends on.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
