// Package interaction implements pointer hit testing and clamped scrolling
// over a scene's object list.
package interaction

import "github.com/firesight/fireviz/internal/scene"

// Default scroll behavior: 15 pixels per wheel click, at most 600 pixels of
// downward scroll.
const (
	DefaultStep = 15
	DefaultMax  = 600
)

// Scroller tracks cumulative vertical scroll and clamps it to [0, max].
// Offset grows as the user scrolls down into the content and returns to zero
// as they scroll back up.
type Scroller struct {
	step   int
	max    int
	offset int
}

// NewScroller creates a Scroller with the given step and bound.
func NewScroller(step, max int) *Scroller {
	return &Scroller{step: step, max: max}
}

// Offset returns the current cumulative scroll in pixels.
func (s *Scroller) Offset() int { return s.offset }

// Reset clears the scroll back to the top, used when a new scene is built.
func (s *Scroller) Reset() { s.offset = 0 }

// Scroll translates every object vertically by amount pixels (positive moves
// content down, i.e. the user scrolled up). The request is refused outright
// when it would push the cumulative offset outside [0, max]; the scene is
// left untouched and false is returned.
func (s *Scroller) Scroll(objects []scene.Object, amount int) bool {
	next := s.offset - amount
	if next < 0 || next > s.max {
		return false
	}
	scene.ScrollAll(objects, amount)
	s.offset = next
	return true
}

// ScrollDown moves the content up one step, revealing lower content.
func (s *Scroller) ScrollDown(objects []scene.Object) bool {
	return s.Scroll(objects, -s.step)
}

// ScrollUp moves the content down one step, back toward the top.
func (s *Scroller) ScrollUp(objects []scene.Object) bool {
	return s.Scroll(objects, s.step)
}

// HitTest returns the first FireCircle in draw order whose bounding box
// strictly contains (x, y), or nil when the pointer is over none. Points on
// the box boundary do not count as hits.
func HitTest(x, y int, objects []scene.Object) *scene.FireCircle {
	for _, o := range objects {
		circle, ok := o.(*scene.FireCircle)
		if !ok {
			continue
		}
		cx, cy, w, h := circle.Bounds()
		if cx < x && x < cx+w && cy < y && y < cy+h {
			return circle
		}
	}
	return nil
}
