package figma

import "encoding/json"

// Color is an RGBA color as the Figma file API encodes it: each channel
// is a 0-1 float.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Vec is a 2D point in unit design space (gradient handles, offsets).
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an absolute bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Paint types as they appear in the fills and strokes arrays.
const (
	PaintSolid           = "SOLID"
	PaintGradientLinear  = "GRADIENT_LINEAR"
	PaintGradientRadial  = "GRADIENT_RADIAL"
	PaintGradientAngular = "GRADIENT_ANGULAR"
	PaintGradientDiamond = "GRADIENT_DIAMOND"
	PaintImage           = "IMAGE"
	PaintVideo           = "VIDEO"
)

// ColorStop is a single gradient stop with a 0-1 position.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint is a fill or stroke entry. Visible defaults to true and is
// omitted from the JSON when unset, hence the pointer.
type Paint struct {
	Type                    string      `json:"type"`
	Visible                 *bool       `json:"visible,omitempty"`
	Opacity                 *float64    `json:"opacity,omitempty"`
	Color                   *Color      `json:"color,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
	GradientHandlePositions []Vec       `json:"gradientHandlePositions,omitempty"`
	ScaleMode               string      `json:"scaleMode,omitempty"`
	ImageRef                string      `json:"imageRef,omitempty"`
}

// IsVisible reports the paint visibility, honoring the default-true rule.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// PaintOpacity returns the paint opacity, defaulting to 1.
func (p Paint) PaintOpacity() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Effect types.
const (
	EffectDropShadow     = "DROP_SHADOW"
	EffectInnerShadow    = "INNER_SHADOW"
	EffectLayerBlur      = "LAYER_BLUR"
	EffectBackgroundBlur = "BACKGROUND_BLUR"
)

// Effect is a visual effect entry (shadow or blur).
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  Vec     `json:"offset"`
	Radius  float64 `json:"radius"`
	Spread  float64 `json:"spread,omitempty"`
}

// IsVisible reports the effect visibility, honoring the default-true rule.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// TypeStyle carries the font and paragraph properties of a TEXT node.
type TypeStyle struct {
	FontFamily                string  `json:"fontFamily,omitempty"`
	FontWeight                float64 `json:"fontWeight,omitempty"`
	FontSize                  float64 `json:"fontSize,omitempty"`
	LetterSpacing             float64 `json:"letterSpacing,omitempty"`
	LineHeightPx              float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent         float64 `json:"lineHeightPercent,omitempty"`
	LineHeightPercentFontSize float64 `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            string  `json:"lineHeightUnit,omitempty"`
	TextAlignHorizontal       string  `json:"textAlignHorizontal,omitempty"`
	TextAutoResize            string  `json:"textAutoResize,omitempty"`
}

// VariableRef is a reference to a design variable.
type VariableRef struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id"`
}

// BoundVariable is the value side of a boundVariables entry. The API
// encodes it as either a single alias object or an array of aliases, so
// both shapes decode into the same slice.
type BoundVariable []VariableRef

// UnmarshalJSON accepts both the scalar and the array encoding.
func (b *BoundVariable) UnmarshalJSON(data []byte) error {
	var one VariableRef
	if err := json.Unmarshal(data, &one); err == nil && one.ID != "" {
		*b = BoundVariable{one}
		return nil
	}
	var many []VariableRef
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*b = many
	return nil
}

// ComponentProperty is one entry of an instance's componentProperties
// map. Value is a string for VARIANT/TEXT properties and a bool for
// BOOLEAN ones.
type ComponentProperty struct {
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// Node is a single node of the document tree. The tree is acyclic and
// each node is exclusively owned by its parent; the engine treats it as
// immutable for the duration of a compile pass.
type Node struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Visible *bool  `json:"visible,omitempty"`

	AbsoluteBoundingBox *Rect `json:"absoluteBoundingBox,omitempty"`

	Fills                []Paint   `json:"fills,omitempty"`
	Strokes              []Paint   `json:"strokes,omitempty"`
	StrokeWeight         float64   `json:"strokeWeight,omitempty"`
	Effects              []Effect  `json:"effects,omitempty"`
	BackgroundColor      *Color    `json:"backgroundColor,omitempty"`
	CornerRadius         float64   `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`
	Opacity              *float64  `json:"opacity,omitempty"`

	LayoutMode             string  `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems  string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string  `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing            float64 `json:"itemSpacing,omitempty"`
	PaddingLeft            float64 `json:"paddingLeft,omitempty"`
	PaddingRight           float64 `json:"paddingRight,omitempty"`
	PaddingTop             float64 `json:"paddingTop,omitempty"`
	PaddingBottom          float64 `json:"paddingBottom,omitempty"`
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string  `json:"layoutSizingVertical,omitempty"`
	MinWidth               float64 `json:"minWidth,omitempty"`
	MaxWidth               float64 `json:"maxWidth,omitempty"`
	MinHeight              float64 `json:"minHeight,omitempty"`
	MaxHeight              float64 `json:"maxHeight,omitempty"`

	Style      *TypeStyle `json:"style,omitempty"`
	Characters string     `json:"characters,omitempty"`

	BoundVariables      map[string]BoundVariable     `json:"boundVariables,omitempty"`
	ComponentProperties map[string]ComponentProperty `json:"componentProperties,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// IsVisible reports the node visibility, honoring the default-true rule.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Kind is the closed set of node variants the engine dispatches on.
// Unknown type strings map to KindUnknown, which translates as a
// generic container so schema additions stay forward-compatible.
type Kind int

const (
	KindUnknown Kind = iota
	KindDocument
	KindCanvas
	KindFrame
	KindGroup
	KindRectangle
	KindEllipse
	KindLine
	KindText
	KindVector
	KindBooleanOperation
	KindStar
	KindRegularPolygon
	KindSlice
	KindComponent
	KindComponentSet
	KindInstance
)

var kindNames = map[string]Kind{
	"DOCUMENT":          KindDocument,
	"CANVAS":            KindCanvas,
	"FRAME":             KindFrame,
	"GROUP":             KindGroup,
	"RECTANGLE":         KindRectangle,
	"ELLIPSE":           KindEllipse,
	"LINE":              KindLine,
	"TEXT":              KindText,
	"VECTOR":            KindVector,
	"BOOLEAN_OPERATION": KindBooleanOperation,
	"STAR":              KindStar,
	"REGULAR_POLYGON":   KindRegularPolygon,
	"SLICE":             KindSlice,
	"COMPONENT":         KindComponent,
	"COMPONENT_SET":     KindComponentSet,
	"INSTANCE":          KindInstance,
}

// Kind maps the API type string onto the node variant.
func (n *Node) Kind() Kind {
	return kindNames[n.Type]
}

// IsVectorKind reports whether the node belongs to the vector family
// that renders as inline SVG.
func (k Kind) IsVectorKind() bool {
	switch k {
	case KindVector, KindBooleanOperation, KindStar, KindRegularPolygon, KindSlice:
		return true
	}
	return false
}

// IsComposite reports whether the node is a container variant that may
// carry an external component binding.
func (k Kind) IsComposite() bool {
	switch k {
	case KindFrame, KindGroup, KindComponent, KindComponentSet, KindInstance:
		return true
	}
	return false
}
