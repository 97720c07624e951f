// Package scene holds the scrollable object hierarchy and scene assembly for
// the season view: the background map, centered headings, and one marker
// circle per county in the season's top five. A scene is an ordered object
// slice drawn back to front; it is rebuilt wholesale whenever the user
// navigates to a different season.
package scene

import "github.com/firesight/fireviz/internal/render"

// Object is anything placed on the canvas that scrolls with the scene.
// Depending on the variant, the coordinates are the top-left corner (Image,
// TextLabel) or the center (FireCircle).
type Object interface {
	// Coords returns the object's current position.
	Coords() (x, y int)
	// Translate shifts the position additively.
	Translate(dx, dy int)
	// MoveTo sets the position absolutely.
	MoveTo(x, y int)
	// Draw renders the object onto the surface. Drawing touches no other
	// state, so a scene can be redrawn every frame.
	Draw(s render.Surface)
}

// anchor carries the shared position state. Embedding it gives a variant the
// coordinate operations; the variant must still provide its own Draw.
type anchor struct {
	x, y int
}

func (a *anchor) Coords() (int, int) { return a.x, a.y }

func (a *anchor) Translate(dx, dy int) {
	a.x += dx
	a.y += dy
}

func (a *anchor) MoveTo(x, y int) {
	a.x, a.y = x, y
}

// Draw on a bare anchor is a programming error: every drawable variant must
// shadow it. Panicking here surfaces the bug immediately instead of silently
// skipping the object.
func (a *anchor) Draw(render.Surface) {
	panic("scene: Draw called on an abstract scrollable object")
}

// DrawAll draws every object in order, back to front.
func DrawAll(s render.Surface, objects []Object) {
	for _, o := range objects {
		o.Draw(s)
	}
}

// ScrollAll translates every object in the scene vertically. Positive amounts
// move content down the canvas, negative amounts move it up.
func ScrollAll(objects []Object, amount int) {
	for _, o := range objects {
		o.Translate(0, amount)
	}
}
