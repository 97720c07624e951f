package scene

import "github.com/firesight/fireviz/internal/render"

// Image is a scrollable bitmap, anchored at its top-left corner.
type Image struct {
	anchor
	bitmap render.Bitmap
}

// NewImage places a bitmap at (x, y).
func NewImage(x, y int, b render.Bitmap) *Image {
	return &Image{anchor: anchor{x: x, y: y}, bitmap: b}
}

// Draw blits the bitmap at the image's position.
func (i *Image) Draw(s render.Surface) {
	s.Blit(i.bitmap, i.x, i.y)
}

// Width returns the bitmap width in pixels.
func (i *Image) Width() int {
	w, _ := i.bitmap.Size()
	return w
}

// Height returns the bitmap height in pixels.
func (i *Image) Height() int {
	_, h := i.bitmap.Size()
	return h
}
