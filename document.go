package figmark

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/figmark/figmark/internal/engine"
	"github.com/figmark/figmark/internal/figma"
)

// loadDocument reads a document JSON file. Both the raw file-API
// response shape ({"document": {...}}) and a bare node tree are
// accepted.
func loadDocument(path string) (*figma.Node, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var wrapped struct {
		Document *figma.Node `json:"document"`
	}
	if err := json.Unmarshal(content, &wrapped); err == nil && wrapped.Document != nil {
		return wrapped.Document, nil
	}

	var root figma.Node
	if err := json.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if root.ID == "" && root.Type == "" && len(root.Children) == 0 {
		return nil, fmt.Errorf("decode document: no node tree found")
	}
	return &root, nil
}

// assetSidecar is the on-disk shape of <name>.assets.json.
type assetSidecar struct {
	Images map[string]string `json:"images,omitempty"`
	SVGs   map[string]string `json:"svgs,omitempty"`
	Videos map[string]string `json:"videos,omitempty"`
	GIFs   map[string]string `json:"gifs,omitempty"`
}

// tokenSidecar entries are keyed by variable id in <name>.tokens.json.
type tokenSidecar map[string]struct {
	Name    string `json:"name"`
	Literal string `json:"literal,omitempty"`
}

// bindingSidecar is the on-disk shape of <name>.bindings.json.
type bindingSidecar struct {
	Exports []string `json:"exports,omitempty"`
	Nodes   map[string]struct {
		Component string            `json:"component"`
		Props     map[string]string `json:"props,omitempty"`
	} `json:"nodes,omitempty"`
}

// loadContext assembles the engine's read-only lookup tables from the
// document's sidecar files. Missing sidecars yield empty tables; a
// sidecar that exists but fails to decode is reported as a warning so
// a typo does not silently drop every asset.
func loadContext(documentPath string) (engine.Context, []string) {
	base := strings.TrimSuffix(documentPath, ".json")
	var warnings []string

	ctx := engine.Context{}

	var assets assetSidecar
	if ok := loadSidecar(base+".assets.json", &assets, &warnings); ok {
		ctx.Assets = &engine.AssetTable{
			Images: assets.Images,
			SVGs:   assets.SVGs,
			Videos: assets.Videos,
			GIFs:   assets.GIFs,
		}
	}

	var tokens tokenSidecar
	if ok := loadSidecar(base+".tokens.json", &tokens, &warnings); ok {
		table := engine.TokenMap{}
		for id, entry := range tokens {
			table[id] = engine.Token{Name: entry.Name, Literal: entry.Literal}
		}
		ctx.Tokens = table
	}

	var bindings bindingSidecar
	if ok := loadSidecar(base+".bindings.json", &bindings, &warnings); ok {
		table := &engine.BindingMap{Entries: map[string]engine.BindingEntry{}}
		if len(bindings.Exports) > 0 {
			table.Exports = map[string]bool{}
			for _, name := range bindings.Exports {
				table.Exports[name] = true
			}
		}
		for nodeID, entry := range bindings.Nodes {
			table.Entries[nodeID] = engine.BindingEntry{
				Component: entry.Component,
				Props:     entry.Props,
			}
		}
		ctx.Bindings = table
	}

	return ctx, warnings
}

// loadSidecar decodes one sidecar file into out. Returns false when the
// file does not exist.
func loadSidecar(path string, out any, warnings *[]string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(content, out); err != nil {
		*warnings = append(*warnings, fmt.Sprintf("Failed to parse %s: %v", path, err))
		return false
	}
	return true
}

// snapshotContext converts a prefetched API snapshot into engine tables.
func snapshotContext(snap *figma.Snapshot) engine.Context {
	tokens := engine.TokenMap{}
	for id, entry := range snap.Tokens {
		tokens[id] = engine.Token{Name: entry.Name, Literal: entry.Literal}
	}
	return engine.Context{
		Assets: &engine.AssetTable{
			Images: snap.Images,
			SVGs:   snap.SVGs,
			Videos: snap.Videos,
			GIFs:   snap.GIFs,
		},
		Tokens: tokens,
	}
}
