package render

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Font renders and measures text. Implementations own the actual glyph data;
// the scene layer only needs metrics for centering and panel layout.
type Font interface {
	// Size returns the pixel width and height the given text occupies.
	Size(text string) (w, h int)
}

// Bitmap is a loaded image resource.
type Bitmap interface {
	// Size returns the bitmap's width and height in pixels.
	Size() (w, h int)
}

// Surface is the drawing target for one frame. The windowing backend owns the
// surface; scene objects only call draw primitives on it.
type Surface interface {
	// Fill floods the whole surface with a color.
	Fill(c Color)
	// Blit draws a bitmap with its top-left corner at (x, y).
	Blit(b Bitmap, x, y int)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h int, c Color)
	// DrawLine draws a line segment of the given thickness.
	DrawLine(x1, y1, x2, y2, thickness int, c Color)
	// DrawCircle draws a filled circle centered at (x, y).
	DrawCircle(x, y, radius int, c Color)
	// DrawText renders text with its top-left corner at (x, y).
	DrawText(text string, f Font, c Color, x, y int)
	// LoadBitmap loads an image resource by path.
	LoadBitmap(path string) (Bitmap, error)
	// Present pushes the completed frame to the display.
	Present() error
}
