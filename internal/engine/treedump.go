package engine

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// DumpTree renders a markup tree for terminal inspection.
func DumpTree(root *MarkupNode) string {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(root))
	addBranches(tree, root)
	return tree.String()
}

func addBranches(tree treeprint.Tree, m *MarkupNode) {
	for _, child := range m.Children {
		if len(child.Children) == 0 && child.Binding == nil {
			tree.AddNode(nodeLabel(child))
			continue
		}
		branch := tree.AddBranch(nodeLabel(child))
		addBranches(branch, child)
	}
}

func nodeLabel(m *MarkupNode) string {
	if m.Binding != nil {
		return fmt.Sprintf("<%s/> (%d props) #%s",
			m.Binding.Component, len(m.Binding.Props), m.Binding.SourceNodeID)
	}
	label := fmt.Sprintf("<%s> %d decls #%s", m.Tag, len(m.Styles), m.Attrs["data-node-id"])
	if m.Text != "" {
		text := m.Text
		if len(text) > 24 {
			text = text[:21] + "..."
		}
		label += fmt.Sprintf(" %q", text)
	}
	if m.RawSVG != "" {
		label += " [svg]"
	}
	return label
}
