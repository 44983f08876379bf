package figmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/figmark/figmark/internal/figma"
)

// SaveSnapshot writes a prefetched API snapshot into dir as a document
// JSON plus its sidecar tables, in the same layout Compile expects. The
// returned paths list every file written.
func SaveSnapshot(snap *figma.Snapshot, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create source dir: %w", err)
	}

	base := filepath.Join(dir, documentSlug(snap.Name))
	var written []string

	doc := map[string]any{"name": snap.Name, "document": snap.Document}
	if err := writeJSON(base+".json", doc); err != nil {
		return nil, err
	}
	written = append(written, base+".json")

	assets := assetSidecar{
		Images: snap.Images,
		SVGs:   snap.SVGs,
		Videos: snap.Videos,
		GIFs:   snap.GIFs,
	}
	if len(assets.Images)+len(assets.SVGs)+len(assets.Videos)+len(assets.GIFs) > 0 {
		if err := writeJSON(base+".assets.json", assets); err != nil {
			return nil, err
		}
		written = append(written, base+".assets.json")
	}

	if len(snap.Tokens) > 0 {
		tokens := tokenSidecar{}
		for id, entry := range snap.Tokens {
			tokens[id] = struct {
				Name    string `json:"name"`
				Literal string `json:"literal,omitempty"`
			}{Name: entry.Name, Literal: entry.Literal}
		}
		if err := writeJSON(base+".tokens.json", tokens); err != nil {
			return nil, err
		}
		written = append(written, base+".tokens.json")
	}

	return written, nil
}

func writeJSON(path string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// documentSlug derives a filesystem-safe base name from a document name.
func documentSlug(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "document"
	}
	return slug
}
