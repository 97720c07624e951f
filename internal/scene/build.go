package scene

import (
	"fmt"

	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/render"
)

// Vertical positions of the two centered headings above the map.
const (
	summaryLabelY = 160
	sectionLabelY = 200
)

// Build assembles the ordered object list for one season's display:
// a centered season summary, a centered section title, the background map at
// mapImage's current position, and one FireCircle per distinct county in the
// season's top five. Forecast seasons get approximation-prefixed figures and
// "vulnerable counties" phrasing. Counties missing from the table fail the
// whole build; a partial scene would misrepresent the data.
func Build(season domain.Season, mapImage *Image, table countymap.Table, theme render.Theme, canvasW int) ([]Object, error) {
	summaryText := fmt.Sprintf("Total # of fires: %d    Total acreage burned: %d",
		season.FireCount, season.Acreage)
	sectionText := "Top Five Fires:"
	if domain.IsForecast(season.Year) {
		summaryText = fmt.Sprintf("Total # of fires: ~%d    Total acreage burned: ~%d",
			season.FireCount, season.Acreage)
		sectionText = "Five Vulnerable Counties:"
	}

	summary := NewTextLabel(0, summaryLabelY, summaryText, theme.Label, theme.Black)
	summary.CenterWidth(canvasW)

	section := NewTextLabel(0, sectionLabelY, sectionText, theme.Label, theme.Black)
	section.CenterWidth(canvasW)

	objects := []Object{summary, section, mapImage}

	circles, err := countyCircles(season, mapImage, table, theme)
	if err != nil {
		return nil, fmt.Errorf("build scene for season %d: %w", season.Year, err)
	}
	for _, c := range circles {
		objects = append(objects, c)
	}
	return objects, nil
}

// countyCircles groups the season's top five by county, preserving
// first-appearance order, and positions one marker per county relative to the
// map image's origin.
func countyCircles(season domain.Season, mapImage *Image, table countymap.Table, theme render.Theme) ([]*FireCircle, error) {
	var order []string
	byCounty := make(map[string][]domain.Fire)
	for _, fire := range season.TopFive {
		if _, seen := byCounty[fire.County]; !seen {
			order = append(order, fire.County)
		}
		byCounty[fire.County] = append(byCounty[fire.County], fire)
	}

	mapX, mapY := mapImage.Coords()

	circles := make([]*FireCircle, 0, len(order))
	for _, county := range order {
		off, err := table.Lookup(county)
		if err != nil {
			return nil, err
		}
		circles = append(circles, NewFireCircle(mapX+off.X, mapY+off.Y, byCounty[county], theme))
	}
	return circles, nil
}
