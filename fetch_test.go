package figmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmark/figmark/internal/figma"
)

func TestDocumentSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Landing", "landing"},
		{"spaces", "Landing Page", "landing-page"},
		{"punctuation", "Marketing / Q3!", "marketing-q3"},
		{"empty falls back", "", "document"},
		{"only punctuation falls back", "!!!", "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, documentSlug(tt.input))
		})
	}
}

func TestSaveSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := &figma.Snapshot{
		Name: "Landing Page",
		Document: figma.Node{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{ID: "1:1", Type: "TEXT", Characters: "Hi"},
			},
		},
		Images: map[string]string{"1:2": "https://cdn.example.com/a.png"},
		SVGs:   map[string]string{},
		Videos: map[string]string{},
		GIFs:   map[string]string{},
		Tokens: map[string]figma.TokenEntry{
			"VariableID:1": {Name: "--surface", Literal: "#FFFFFF"},
		},
	}

	written, err := SaveSnapshot(snap, dir)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	// The saved layout round-trips through the file-based loaders.
	docPath := filepath.Join(dir, "landing-page.json")
	root, err := loadDocument(docPath)
	require.NoError(t, err)
	assert.Equal(t, "0:0", root.ID)

	ctx, warnings := loadContext(docPath)
	assert.Empty(t, warnings)
	require.NotNil(t, ctx.Assets)
	assert.Equal(t, "https://cdn.example.com/a.png", ctx.Assets.ImageURL("1:2"))
	tok, ok := ctx.Tokens.Resolve("VariableID:1")
	require.True(t, ok)
	assert.Equal(t, "--surface", tok.Name)
}

func TestSaveSnapshotSkipsEmptySidecars(t *testing.T) {
	dir := t.TempDir()
	snap := &figma.Snapshot{
		Name:     "Empty",
		Document: figma.Node{ID: "0:0", Type: "DOCUMENT"},
	}

	written, err := SaveSnapshot(snap, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "empty.json")}, written)

	_, err = os.Stat(filepath.Join(dir, "empty.assets.json"))
	assert.True(t, os.IsNotExist(err))
}
