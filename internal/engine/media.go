package engine

import (
	"regexp"
	"strings"

	"github.com/figmark/figmark/internal/figma"
)

// MediaKind classifies what a node renders as beyond plain markup.
type MediaKind int

const (
	MediaNone MediaKind = iota
	MediaVector
	MediaImage
	MediaVideo
	MediaGIF
	MediaLottie
)

// Media is the classification result plus the resolved asset.
type Media struct {
	Kind MediaKind
	URL  string
	SVG  string

	// Playable is false for lottie URLs from the app host family,
	// which cannot be embedded directly and take the placeholder path.
	Playable bool
}

var (
	// Two playable lottie host families, and the app family that is
	// recognized but routed to a placeholder.
	lottieDirectRe = regexp.MustCompile(`https?://(?:assets\d*\.lottiefiles\.com|lottie\.host)/\S+`)
	lottieAppRe    = regexp.MustCompile(`https?://app\.lottiefiles\.com/\S+`)
)

// mediaRule is one ordered classification predicate. Keeping the
// heuristics as a rule table lets new naming conventions be added
// without touching the walker's control flow.
type mediaRule struct {
	name  string
	match func(n *figma.Node, ctx Context) (Media, bool)
}

var mediaRules = []mediaRule{
	{"lottie-url", matchLottie},
	{"video-or-gif", matchVideoOrGIF},
	{"image-fill", matchImage},
	{"vector-kind", matchVector},
}

// Classify runs the ordered rule table and returns the first match.
func Classify(n *figma.Node, ctx Context) Media {
	for _, rule := range mediaRules {
		if media, ok := rule.match(n, ctx); ok {
			return media
		}
	}
	return Media{Kind: MediaNone}
}

// matchLottie classifies nodes whose layer name embeds a lottie URL.
func matchLottie(n *figma.Node, _ Context) (Media, bool) {
	if url := lottieDirectRe.FindString(n.Name); url != "" {
		return Media{Kind: MediaLottie, URL: url, Playable: true}, true
	}
	if url := lottieAppRe.FindString(n.Name); url != "" {
		return Media{Kind: MediaLottie, URL: url, Playable: false}, true
	}
	return Media{}, false
}

// matchVideoOrGIF fires when the node has a video fill or a pre-resolved
// gif/video asset. Video and animated GIF are indistinguishable in the
// fill data, so the split is purely a substring heuristic on the layer
// name.
func matchVideoOrGIF(n *figma.Node, ctx Context) (Media, bool) {
	hasVideoFill := false
	for _, fill := range n.Fills {
		if fill.IsVisible() && fill.Type == figma.PaintVideo {
			hasVideoFill = true
			break
		}
	}
	gifURL := ctx.gifURL(n.ID)
	videoURL := ctx.videoURL(n.ID)
	if !hasVideoFill && gifURL == "" && videoURL == "" {
		return Media{}, false
	}

	lname := strings.ToLower(n.Name)
	switch {
	case strings.Contains(lname, ".gif") || strings.Contains(lname, "gif"):
		return Media{Kind: MediaGIF, URL: gifURL}, true
	case strings.Contains(lname, ".mp4") || strings.Contains(lname, ".webm") ||
		strings.Contains(lname, ".mov") || strings.Contains(lname, "video"):
		return Media{Kind: MediaVideo, URL: videoURL}, true
	case gifURL != "" && videoURL == "":
		return Media{Kind: MediaGIF, URL: gifURL}, true
	}
	return Media{Kind: MediaVideo, URL: videoURL}, true
}

// matchImage classifies nodes with a visible image fill. The walker
// leaves these to background composition rather than replacing the
// subtree.
func matchImage(n *figma.Node, ctx Context) (Media, bool) {
	for _, fill := range n.Fills {
		if fill.IsVisible() && fill.Type == figma.PaintImage {
			return Media{Kind: MediaImage, URL: ctx.imageURL(n.ID)}, true
		}
	}
	return Media{}, false
}

// matchVector classifies the structural vector family and attaches the
// pre-fetched SVG text.
func matchVector(n *figma.Node, ctx Context) (Media, bool) {
	if !n.Kind().IsVectorKind() {
		return Media{}, false
	}
	return Media{Kind: MediaVector, SVG: ctx.svgContent(n.ID)}, true
}

var (
	svgWidthRe  = regexp.MustCompile(`width="[^"]*"`)
	svgHeightRe = regexp.MustCompile(`height="[^"]*"`)
)

// RewriteSVGSize rewrites the width and height attributes of raw SVG
// text to match the node's resolved sizing mode. This is best-effort
// literal substitution on opaque text, not SVG-model editing: only the
// first occurrence of each attribute is touched, and documents sized
// via viewBox alone are left as-is.
func RewriteSVGSize(svg string, n *figma.Node, parentAutoLayout bool) string {
	horizontal := n.LayoutSizingHorizontal
	vertical := n.LayoutSizingVertical
	if !parentAutoLayout {
		if horizontal == sizingFill {
			horizontal = sizingFixed
		}
		if vertical == sizingFill {
			vertical = sizingFixed
		}
	}

	switch horizontal {
	case sizingFill:
		svg = replaceFirst(svg, svgWidthRe, `width="100%"`)
	case sizingHug:
		// Left untouched.
	default:
		if n.AbsoluteBoundingBox != nil && n.AbsoluteBoundingBox.Width > 0 {
			svg = replaceFirst(svg, svgWidthRe, `width="`+fmtNum(round1(n.AbsoluteBoundingBox.Width))+`"`)
		}
	}

	switch vertical {
	case sizingFill:
		svg = replaceFirst(svg, svgHeightRe, `height="100%"`)
	case sizingHug:
		// Left untouched.
	default:
		if n.AbsoluteBoundingBox != nil && n.AbsoluteBoundingBox.Height > 0 {
			svg = replaceFirst(svg, svgHeightRe, `height="`+fmtNum(round1(n.AbsoluteBoundingBox.Height))+`"`)
		}
	}

	return svg
}

// replaceFirst substitutes only the first regexp match, leaving nested
// elements' attributes alone.
func replaceFirst(s string, re *regexp.Regexp, replacement string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}
