package scene

import (
	"fmt"
	"strconv"

	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/render"
)

// Chart layout, in pixels.
const (
	chartHorizEdge     = 20  // distance from the canvas's left/right edges
	chartVertEdge      = 10  // distance from the top of the canvas
	chartSectionHeight = 100 // height of one season's section
	chartSectionGap    = 5   // gap between a bar pair and its section edge
)

// SeasonChart is the fixed header band showing paired severity bars for every
// season, with the focused season highlighted. It does not scroll.
type SeasonChart struct {
	seasons domain.SeasonSet
	years   []int
	theme   render.Theme
	width   int
}

// NewSeasonChart builds the chart over every season in the set.
func NewSeasonChart(set domain.SeasonSet, theme render.Theme, canvasW int) *SeasonChart {
	return &SeasonChart{
		seasons: set,
		years:   set.Years(),
		theme:   theme,
		width:   canvasW,
	}
}

// Draw renders the chart with the season at currentIndex highlighted. Red
// bars are fire counts, orange bars acreage, each scaled against the set-wide
// maximum; forecast years use the light palette variants and the tallest bar
// of each kind gets a black outline.
func (c *SeasonChart) Draw(s render.Surface, currentIndex int) {
	totalWidth := c.width - 2*chartHorizEdge
	sectionWidth := float64(totalWidth) / float64(len(c.years))
	barWidth := (sectionWidth - 2*chartSectionGap) / 2

	maxFires, maxAcreage := 1, 1
	for _, y := range c.years {
		if f := c.seasons[y].FireCount; f > maxFires {
			maxFires = f
		}
		if a := c.seasons[y].Acreage; a > maxAcreage {
			maxAcreage = a
		}
	}

	// Blank the band so scrolled scene content never shows through it.
	s.FillRect(0, 0, totalWidth, chartSectionHeight+3*chartVertEdge, c.theme.White)

	fw, _ := c.theme.Small.Size("# of Fires")
	s.DrawText("# of Fires", c.theme.Small, c.theme.Red, chartHorizEdge/4, chartVertEdge/2)
	s.DrawText("Acreage", c.theme.Small, c.theme.Orange, c.width-chartHorizEdge-fw, chartVertEdge/2)

	for i, year := range c.years {
		season := c.seasons[year]
		sectionX := float64(chartHorizEdge) + float64(i)*sectionWidth

		if i == currentIndex {
			s.FillRect(int(sectionX), 0, int(sectionWidth),
				chartSectionHeight+3*chartVertEdge, c.theme.LightBlue)
		}

		fireH := int(float64(season.FireCount) / float64(maxFires) * float64(chartSectionHeight-chartVertEdge))
		acreH := int(float64(season.Acreage) / float64(maxAcreage) * float64(chartSectionHeight-chartVertEdge))

		fireX := int(sectionX + chartSectionGap)
		acreX := int(sectionX + chartSectionGap + barWidth)
		fireY := chartSectionHeight - fireH + chartVertEdge
		acreY := chartSectionHeight - acreH + chartVertEdge

		fireColor, acreColor := c.theme.Red, c.theme.Orange
		if domain.IsForecast(year) {
			fireColor, acreColor = c.theme.LightRed, c.theme.LightOrange
		}

		s.FillRect(fireX, fireY, int(barWidth), fireH, fireColor)
		s.FillRect(acreX, acreY, int(barWidth), acreH, acreColor)

		caption := strconv.Itoa(year)
		cw, _ := c.theme.Small.Size(caption)
		s.DrawText(caption, c.theme.Small, c.theme.Black,
			int(sectionX+sectionWidth/2)-cw/2, fireY+fireH+chartSectionGap/2)

		if season.FireCount == maxFires {
			drawRectOutline(s, fireX, fireY, int(barWidth), fireH, c.theme.Black, 3)
		}
		if season.Acreage == maxAcreage {
			drawRectOutline(s, acreX, acreY, int(barWidth), acreH, c.theme.Black, 3)
		}
	}
}

// Info panel layout, in pixels.
const (
	panelWidth          = 200
	panelHeightPerFire  = 90 // per fire, four text lines
	panelForecastHeight = 45 // forecast fires only show county and cause
	panelTextGap        = 20
)

// DrawFireInfo renders the hover panel for a marker: one block per fire in
// the county's share of the top five, separated by rules. Forecast fires show
// only the county and most likely cause, since their acreage and structure
// figures are placeholders.
func DrawFireInfo(s render.Surface, circle *FireCircle, theme render.Theme) {
	fires := circle.Fires()
	forecast := domain.IsForecast(fires[0].Year)

	heightPerFire := panelHeightPerFire
	if forecast {
		heightPerFire = panelForecastHeight
	}

	x, y := circle.Coords()
	edge := panelWidth / 25
	height := heightPerFire * len(fires)

	s.FillRect(x, y, panelWidth, height, theme.White)

	for i, fire := range fires {
		blockY := y + i*heightPerFire
		if i >= 1 {
			s.DrawLine(x, blockY, x+panelWidth, blockY, 1, theme.Black)
		}

		lineY := blockY + edge
		if forecast {
			s.DrawText(fmt.Sprintf("County: %s", fire.County), theme.Small, theme.Black, x+edge, lineY)
			s.DrawText(fmt.Sprintf("Most Likely Cause: %s", fire.Cause), theme.Small, theme.Black, x+edge, lineY+panelTextGap)
			continue
		}
		s.DrawText(fmt.Sprintf("County: %s", fire.County), theme.Small, theme.Black, x+edge, lineY)
		s.DrawText(fmt.Sprintf("Acreage: %d", fire.Acreage), theme.Small, theme.Black, x+edge, lineY+panelTextGap)
		s.DrawText(fmt.Sprintf("Cause: %s", fire.Cause), theme.Small, theme.Black, x+edge, lineY+2*panelTextGap)
		s.DrawText(fmt.Sprintf("Structures destroyed: %d", fire.StructuresDestroyed), theme.Small, theme.Black, x+edge, lineY+3*panelTextGap)
	}

	drawRectOutline(s, x, y, panelWidth, height, theme.Black, 1)
}

// drawRectOutline draws the four border lines of a rectangle.
func drawRectOutline(s render.Surface, x, y, w, h int, c render.Color, thickness int) {
	s.DrawLine(x, y, x+w, y, thickness, c)
	s.DrawLine(x, y+h, x+w, y+h, thickness, c)
	s.DrawLine(x, y, x, y+h, thickness, c)
	s.DrawLine(x+w, y, x+w, y+h, thickness, c)
}
