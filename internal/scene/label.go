package scene

import "github.com/firesight/fireviz/internal/render"

// TextLabel is a scrollable line of text, anchored at its top-left corner.
type TextLabel struct {
	anchor
	Text  string
	font  render.Font
	color render.Color
}

// NewTextLabel places text at (x, y) with the given font and color.
func NewTextLabel(x, y int, text string, font render.Font, color render.Color) *TextLabel {
	return &TextLabel{anchor: anchor{x: x, y: y}, Text: text, font: font, color: color}
}

// Draw renders the label's text at its position.
func (l *TextLabel) Draw(s render.Surface) {
	s.DrawText(l.Text, l.font, l.color, l.x, l.y)
}

// CenterWidth centers the label horizontally within a canvas of the given
// width, leaving the vertical position unchanged.
func (l *TextLabel) CenterWidth(canvasW int) {
	textW, _ := l.font.Size(l.Text)
	l.x = canvasW/2 - textW/2
}
