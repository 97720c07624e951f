package scene

import (
	"fmt"

	"github.com/firesight/fireviz/internal/render"
)

// --- test doubles for the rendering surface ---

// fakeFont is a fixed-advance font: 7px per rune, 14px tall.
type fakeFont struct{}

func (fakeFont) Size(text string) (int, int) {
	return 7 * len([]rune(text)), 14
}

type fakeBitmap struct {
	w, h int
}

func (b fakeBitmap) Size() (int, int) { return b.w, b.h }

// recordSurface records every draw call as a formatted op string so tests can
// assert on order and arguments.
type recordSurface struct {
	ops []string
}

func (r *recordSurface) Fill(c render.Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %v", c))
}

func (r *recordSurface) Blit(b render.Bitmap, x, y int) {
	w, h := b.Size()
	r.ops = append(r.ops, fmt.Sprintf("blit %dx%d at (%d,%d)", w, h, x, y))
}

func (r *recordSurface) FillRect(x, y, w, h int, c render.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect (%d,%d) %dx%d %v", x, y, w, h, c))
}

func (r *recordSurface) DrawLine(x1, y1, x2, y2, thickness int, c render.Color) {
	r.ops = append(r.ops, fmt.Sprintf("line (%d,%d)-(%d,%d) t%d %v", x1, y1, x2, y2, thickness, c))
}

func (r *recordSurface) DrawCircle(x, y, radius int, c render.Color) {
	r.ops = append(r.ops, fmt.Sprintf("circle (%d,%d) r%d %v", x, y, radius, c))
}

func (r *recordSurface) DrawText(text string, _ render.Font, c render.Color, x, y int) {
	r.ops = append(r.ops, fmt.Sprintf("text %q at (%d,%d) %v", text, x, y, c))
}

func (r *recordSurface) LoadBitmap(string) (render.Bitmap, error) {
	return fakeBitmap{w: 400, h: 480}, nil
}

func (r *recordSurface) Present() error {
	r.ops = append(r.ops, "present")
	return nil
}

// testTheme returns the default palette with fake fonts attached.
func testTheme() render.Theme {
	theme := render.DefaultPalette()
	theme.Small = fakeFont{}
	theme.Label = fakeFont{}
	return theme
}
