package figma

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Snapshot is the immutable result of the prefetch phase: everything
// the translation engine needs, resolved into plain lookup maps before
// a compile pass begins.
type Snapshot struct {
	Name     string
	Document Node

	// Asset URLs keyed by node id.
	Images map[string]string
	SVGs   map[string]string
	Videos map[string]string
	GIFs   map[string]string

	// Token entries keyed by variable id.
	Tokens map[string]TokenEntry
}

// TokenEntry is one prefetched design variable: the symbolic CSS custom
// property name derived from the variable name, plus a literal value.
type TokenEntry struct {
	Name    string
	Literal string
}

// Prefetch pulls the document tree, renderable assets, and local
// variables for a file and assembles them into a Snapshot. Individual
// asset failures degrade to missing entries rather than aborting; the
// engine later renders those nodes as empty boxes.
func Prefetch(ctx context.Context, c *Client, key string) (*Snapshot, error) {
	file, err := c.GetFile(ctx, key)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Name:     file.Name,
		Document: file.Document,
		Images:   map[string]string{},
		SVGs:     map[string]string{},
		Videos:   map[string]string{},
		GIFs:     map[string]string{},
		Tokens:   map[string]TokenEntry{},
	}

	var imageIDs, vectorIDs, videoIDs, gifIDs []string
	collectAssetIDs(&snap.Document, &imageIDs, &vectorIDs, &videoIDs, &gifIDs)

	if len(imageIDs) > 0 {
		if resp, err := c.GetImages(ctx, key, imageIDs, "png", 2); err == nil {
			snap.Images = resp.Images
		}
	}
	if len(videoIDs) > 0 {
		if resp, err := c.GetImages(ctx, key, videoIDs, "mp4", 0); err == nil {
			snap.Videos = resp.Images
		}
	}
	if len(gifIDs) > 0 {
		if resp, err := c.GetImages(ctx, key, gifIDs, "gif", 0); err == nil {
			snap.GIFs = resp.Images
		}
	}
	if len(vectorIDs) > 0 {
		if resp, err := c.GetImages(ctx, key, vectorIDs, "svg", 0); err == nil {
			for id, u := range resp.Images {
				if u == "" {
					continue
				}
				body, err := c.Download(ctx, u)
				if err != nil {
					continue
				}
				snap.SVGs[id] = string(body)
			}
		}
	}

	if vars, err := c.GetLocalVariables(ctx, key); err == nil {
		for id, v := range vars.Meta.Variables {
			snap.Tokens[id] = TokenEntry{
				Name:    CSSVarName(v.Name),
				Literal: variableLiteral(v),
			}
		}
	}

	return snap, nil
}

// collectAssetIDs walks the tree once and buckets node ids by the kind
// of asset they will need during translation.
func collectAssetIDs(n *Node, images, vectors, videos, gifs *[]string) {
	if !n.IsVisible() {
		return
	}

	if n.Kind().IsVectorKind() {
		*vectors = append(*vectors, n.ID)
	}

	hasVideoFill := false
	for _, fill := range n.Fills {
		if !fill.IsVisible() {
			continue
		}
		switch fill.Type {
		case PaintImage:
			*images = append(*images, n.ID)
		case PaintVideo:
			hasVideoFill = true
		}
	}

	lname := strings.ToLower(n.Name)
	switch {
	case strings.Contains(lname, "gif") || strings.Contains(lname, ".gif"):
		if hasVideoFill {
			*gifs = append(*gifs, n.ID)
		}
	case hasVideoFill:
		*videos = append(*videos, n.ID)
	}

	for i := range n.Children {
		collectAssetIDs(&n.Children[i], images, vectors, videos, gifs)
	}
}

// CSSVarName converts a variable name like "Color/Primary Dark" into a
// CSS custom property name: "--color-primary-dark".
func CSSVarName(name string) string {
	var b strings.Builder
	b.WriteString("--")
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 2 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// variableLiteral renders one mode value of a variable as a CSS
// literal. Multi-mode variables always resolve to the lowest mode id,
// so repeated fetches produce the same token table. Colors become
// rgba()/hex, numbers become px, everything else passes through as
// text.
func variableLiteral(v Variable) string {
	if len(v.ValuesByMode) == 0 {
		return ""
	}

	modes := make([]string, 0, len(v.ValuesByMode))
	for mode := range v.ValuesByMode {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	switch val := v.ValuesByMode[modes[0]].(type) {
	case map[string]any:
		r, rok := val["r"].(float64)
		g, gok := val["g"].(float64)
		b, bok := val["b"].(float64)
		if rok && gok && bok {
			a := 1.0
			if av, ok := val["a"].(float64); ok {
				a = av
			}
			if a >= 1 {
				return fmt.Sprintf("#%02X%02X%02X", int(r*255+0.5), int(g*255+0.5), int(b*255+0.5))
			}
			return fmt.Sprintf("rgba(%d, %d, %d, %g)", int(r*255+0.5), int(g*255+0.5), int(b*255+0.5), a)
		}
	case float64:
		return fmt.Sprintf("%gpx", val)
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	}
	return ""
}
