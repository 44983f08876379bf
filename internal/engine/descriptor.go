package engine

import (
	"html"
	"strings"
)

// SerializeDescriptor flattens a markup tree into a component-tree
// descriptor: bound nodes become <ComponentName prop="..."/> elements,
// unbound nodes become plain tag+style entries. It walks the same tree
// as the HTML serializer; the two targets never diverge structurally.
func SerializeDescriptor(root *MarkupNode) string {
	var b strings.Builder
	writeDescriptor(&b, root, 0)
	return b.String()
}

func writeDescriptor(b *strings.Builder, m *MarkupNode, depth int) {
	indent := strings.Repeat("  ", depth)

	if m.Binding != nil {
		b.WriteString(indent)
		b.WriteString("<")
		b.WriteString(m.Binding.Component)
		for _, key := range sortedKeys(m.Binding.Props) {
			writeAttr(b, key, m.Binding.Props[key])
		}
		if len(m.Binding.StyleOverrides) > 0 {
			writeAttr(b, "style", styleAttr(m.Binding.StyleOverrides))
		}
		b.WriteString(" />\n")
		return
	}

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(m.Tag)
	if len(m.Styles) > 0 {
		writeAttr(b, "style", styleAttr(m.Styles))
	}
	for _, key := range sortedKeys(m.Attrs) {
		writeAttr(b, key, m.Attrs[key])
	}

	if m.RawSVG == "" && m.Text == "" && len(m.Children) == 0 {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">")

	switch {
	case m.RawSVG != "":
		b.WriteString(m.RawSVG)
	case m.Text != "":
		b.WriteString(html.EscapeString(m.Text))
	default:
		b.WriteString("\n")
		for _, child := range m.Children {
			writeDescriptor(b, child, depth+1)
		}
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(m.Tag)
	b.WriteString(">\n")
}
