package scene

import (
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/render"
)

// forecastRadius is the fixed marker size for forecast seasons, where
// per-county acreage is a placeholder and must not drive the styling.
const forecastRadius = 25

// severityStep maps an acreage lower bound to a marker style. Steps are
// ordered by ascending bound; the highest satisfied bound wins.
type severityStep struct {
	bound  int
	color  func(render.Theme) render.Color
	radius int
}

var severitySteps = []severityStep{
	{0, func(t render.Theme) render.Color { return t.Yellow }, 10},
	{10000, func(t render.Theme) render.Color { return t.Yellow }, 12},
	{20000, func(t render.Theme) render.Color { return t.Yellow }, 15},
	{40000, func(t render.Theme) render.Color { return t.Orange }, 18},
	{60000, func(t render.Theme) render.Color { return t.Orange }, 20},
	{80000, func(t render.Theme) render.Color { return t.Red }, 22},
	{100000, func(t render.Theme) render.Color { return t.Red }, 25},
}

// severityFor picks the color and radius for an accumulated county acreage.
func severityFor(acreage int, theme render.Theme) (render.Color, int) {
	color, radius := severitySteps[0].color(theme), severitySteps[0].radius
	for _, step := range severitySteps {
		if acreage >= step.bound {
			color, radius = step.color(theme), step.radius
		}
	}
	return color, radius
}

// FireCircle marks one county's share of a season's top five fires on the
// map. It is anchored at its center. The circle does not own county metadata;
// it only references the fires it aggregates.
type FireCircle struct {
	anchor
	county  string
	acreage int
	fires   []domain.Fire
	radius  int
	color   render.Color
	font    render.Font
	caption render.Color
}

// NewFireCircle builds a marker at (x, y) for all of a county's fires within
// the active season's top five. For historical seasons the style follows the
// county's accumulated acreage; forecast seasons get a fixed light-red style
// because their per-county acreage is not meaningful.
func NewFireCircle(x, y int, fires []domain.Fire, theme render.Theme) *FireCircle {
	c := &FireCircle{
		anchor:  anchor{x: x, y: y},
		county:  fires[0].County,
		fires:   fires,
		font:    theme.Small,
		caption: theme.Black,
	}

	if domain.IsForecast(fires[0].Year) {
		c.color = theme.LightRed
		c.radius = forecastRadius
		return c
	}

	for _, f := range fires {
		c.acreage += f.Acreage
	}
	c.color, c.radius = severityFor(c.acreage, theme)
	return c
}

// Draw renders the circle with the county name centered inside it.
func (c *FireCircle) Draw(s render.Surface) {
	s.DrawCircle(c.x, c.y, c.radius, c.color)

	w, h := c.font.Size(c.county)
	s.DrawText(c.county, c.font, c.caption, c.x-w/2, c.y-h/2)
}

// Bounds returns the top-left corner and dimensions of the square the circle
// occupies, used for pointer hit testing.
func (c *FireCircle) Bounds() (x, y, w, h int) {
	return c.x - c.radius, c.y - c.radius, c.radius * 2, c.radius * 2
}

// County returns the county this marker represents.
func (c *FireCircle) County() string { return c.county }

// Radius returns the marker's radius in pixels.
func (c *FireCircle) Radius() int { return c.radius }

// Fires returns the fires aggregated under this marker, ordered from most to
// least acreage as in the season's top five.
func (c *FireCircle) Fires() []domain.Fire { return c.fires }
