package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpTree(t *testing.T) {
	tree := &MarkupNode{
		Tag:    "div",
		Styles: []StyleDecl{{"display", "flex"}},
		Attrs:  map[string]string{"data-node-id": "0:0"},
		Children: []*MarkupNode{
			{
				Tag:   "h1",
				Attrs: map[string]string{"data-node-id": "1:1"},
				Text:  "A very long headline that gets truncated",
			},
			{
				Binding: &ComponentBinding{
					SourceNodeID: "1:2",
					Component:    "Button",
					Props:        map[string]string{"data-size": "lg"},
				},
			},
		},
	}

	out := DumpTree(tree)

	assert.Contains(t, out, "<div> 1 decls #0:0")
	assert.Contains(t, out, `<h1> 0 decls #1:1 "A very long headline ..."`)
	assert.Contains(t, out, "<Button/> (1 props) #1:2")
}
