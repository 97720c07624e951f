package render

// Canvas dimensions and the default map placement, in logical pixels.
const (
	CanvasWidth  = 800
	CanvasHeight = 800

	MapOriginX = 190
	MapOriginY = 240
)

// Theme bundles the palette and fonts used across the viewer. It is built once
// at startup and passed explicitly so no package carries mutable color state.
type Theme struct {
	White       Color
	Black       Color
	Red         Color
	LightRed    Color
	Orange      Color
	LightOrange Color
	Yellow      Color
	LightBlue   Color

	// Small is used for circle captions, bars, and the hover panel;
	// Label for the centered season headings.
	Small Font
	Label Font
}

// DefaultPalette returns the standard viewer colors. Fonts must be attached by
// the backend since glyph metrics are backend-specific.
func DefaultPalette() Theme {
	return Theme{
		White:       Color{255, 255, 255},
		Black:       Color{0, 0, 0},
		Red:         Color{255, 0, 0},
		LightRed:    Color{255, 125, 125},
		Orange:      Color{255, 127, 0},
		LightOrange: Color{255, 190, 125},
		Yellow:      Color{245, 206, 66},
		LightBlue:   Color{200, 234, 247},
	}
}
