package engine

import (
	"fmt"
	"strings"

	"github.com/figmark/figmark/internal/figma"
)

// sizeVocab remaps the source tool's size enum onto the target
// component library's scale.
var sizeVocab = map[string]string{
	"xxlarge": "2xl",
	"xlarge":  "xl",
	"large":   "lg",
	"medium":  "md",
	"small":   "sm",
	"xsmall":  "xs",
	"xxsmall": "2xs",
}

// colorVocab remaps color enum values; unknown values pass through.
var colorVocab = map[string]string{
	"main": "accent",
}

// droppedProps are cosmetic props the target component expresses via
// CSS rather than as a prop.
var droppedProps = map[string]bool{
	"weight": true,
	"state":  true,
}

// ResolveBinding returns the component binding for a node, or nil when
// the node is unbound or the bound name is not a known export — in
// which case the walker falls through to ordinary structural
// translation, never to a dangling component reference.
func ResolveBinding(n *figma.Node, ctx Context) *ComponentBinding {
	if ctx.Bindings == nil {
		return nil
	}
	entry, ok := ctx.Bindings.Lookup(n.ID)
	if !ok {
		return nil
	}

	name := NormalizeComponentName(entry.Component)
	if name == "" || !ctx.Bindings.KnownComponent(name) {
		return nil
	}

	binding := &ComponentBinding{
		SourceNodeID: n.ID,
		Component:    name,
		Props:        map[string]string{},
	}

	for key, value := range entry.Props {
		addProp(binding.Props, key, value)
	}
	for key, prop := range n.ComponentProperties {
		addProp(binding.Props, stripPropHash(key), propValueString(prop))
	}

	// Text overrides: surface the nested text run's characters.
	if text := firstTextDescendant(n); text != nil && text.Characters != "" {
		binding.Props["data-text"] = text.Characters
	}

	if strings.HasPrefix(name, "Heading") {
		applyHeadingBinding(binding, n)
	}

	return binding
}

// addProp lowercases the key, remaps the value through the vocabulary
// tables, drops cosmetic props, and prefixes the target attribute name.
func addProp(props map[string]string, key, value string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || droppedProps[key] {
		return
	}

	lower := strings.ToLower(value)
	switch key {
	case "size":
		if mapped, ok := sizeVocab[lower]; ok {
			value = mapped
		}
	case "color":
		if mapped, ok := colorVocab[lower]; ok {
			value = mapped
		}
	}

	props["data-"+key] = value
}

// applyHeadingBinding derives the heading level from the resolved
// output tag — not from any design-tool field — and surfaces the text
// run's font weight as an inline style override.
func applyHeadingBinding(binding *ComponentBinding, n *figma.Node) {
	text := firstTextDescendant(n)
	if text == nil || text.Style == nil {
		return
	}

	tag := InferTag(text.Style.FontSize, text.Style.FontWeight)
	if level, ok := strings.CutPrefix(tag, "h"); ok {
		binding.Props["data-level"] = level
	}
	if text.Style.FontWeight > 0 {
		binding.StyleOverrides = append(binding.StyleOverrides,
			StyleDecl{"font-weight", fmtNum(text.Style.FontWeight)})
	}
}

// NormalizeComponentName strips trailing variant descriptors after a
// separator, drops non-alphanumerics, and PascalCases the remainder:
// "button / primary, Size=lg" becomes "Button".
func NormalizeComponentName(name string) string {
	if i := strings.IndexAny(name, "/,="); i >= 0 {
		name = name[:i]
	}

	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			if upperNext && r >= 'a' && r <= 'z' {
				r = r - 'a' + 'A'
			}
			b.WriteRune(r)
			upperNext = false
		default:
			upperNext = true
		}
	}
	return b.String()
}

// stripPropHash removes the #hash suffix the design tool appends to
// variant property keys ("Size#123:0" → "Size").
func stripPropHash(key string) string {
	if i := strings.Index(key, "#"); i >= 0 {
		return key[:i]
	}
	return key
}

func propValueString(prop figma.ComponentProperty) string {
	switch v := prop.Value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return fmtNum(v)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", prop.Value)
}

// firstTextDescendant finds the first visible TEXT node in pre-order.
func firstTextDescendant(n *figma.Node) *figma.Node {
	for i := range n.Children {
		child := &n.Children[i]
		if !child.IsVisible() {
			continue
		}
		if child.Kind() == figma.KindText {
			return child
		}
		if found := firstTextDescendant(child); found != nil {
			return found
		}
	}
	return nil
}
