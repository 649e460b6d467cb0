package render

// FontStretch describes the horizontal compression of a typeface.
type FontStretch int

const (
	StretchNormal FontStretch = iota
	StretchCondensed
	StretchExpanded
)

// FontStyle selects upright or slanted glyphs.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique
)

// FontWeight is a CSS-style weight, 100 to 900.
type FontWeight int

const (
	WeightLight  FontWeight = 300
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// Font describes how a text collaborator should draw the caption. The
// renderer itself only carries it.
type Font struct {
	Family  string
	Size    float64
	Stretch FontStretch
	Style   FontStyle
	Weight  FontWeight
}

// DefaultFont is 10pt Arial, normal in every respect.
var DefaultFont = Font{
	Family:  "Arial",
	Size:    10,
	Stretch: StretchNormal,
	Style:   StyleNormal,
	Weight:  WeightNormal,
}
