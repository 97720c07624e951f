package app_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesight/fireviz/internal/app"
	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/observability"
	"github.com/firesight/fireviz/internal/render"
)

// --- fakes ---

type fakeFont struct{}

func (fakeFont) Size(text string) (int, int) { return 7 * len(text), 14 }

type fakeBitmap struct{}

func (fakeBitmap) Size() (int, int) { return 400, 480 }

type fakeSurface struct {
	ops      []string
	presents int
}

func (f *fakeSurface) Fill(render.Color) { f.ops = append(f.ops, "fill") }

func (f *fakeSurface) Blit(render.Bitmap, int, int) { f.ops = append(f.ops, "blit") }

func (f *fakeSurface) FillRect(int, int, int, int, render.Color) {
	f.ops = append(f.ops, "rect")
}

func (f *fakeSurface) DrawLine(int, int, int, int, int, render.Color) {
	f.ops = append(f.ops, "line")
}

func (f *fakeSurface) DrawCircle(int, int, int, render.Color) {
	f.ops = append(f.ops, "circle")
}

func (f *fakeSurface) DrawText(text string, _ render.Font, _ render.Color, _, _ int) {
	f.ops = append(f.ops, fmt.Sprintf("text %s", text))
}

func (f *fakeSurface) LoadBitmap(string) (render.Bitmap, error) { return fakeBitmap{}, nil }

func (f *fakeSurface) Present() error {
	f.presents++
	return nil
}

func (f *fakeSurface) textDrawn(substr string) bool {
	for _, op := range f.ops {
		if strings.HasPrefix(op, "text ") && strings.Contains(op, substr) {
			return true
		}
	}
	return false
}

type fakeInput struct {
	queued   [][]app.Event
	pointerX int
	pointerY int
}

func (f *fakeInput) Poll() []app.Event {
	if len(f.queued) == 0 {
		return nil
	}
	events := f.queued[0]
	f.queued = f.queued[1:]
	return events
}

func (f *fakeInput) Pointer() (int, int) { return f.pointerX, f.pointerY }

// --- fixtures ---

func topFive(year int) []domain.Fire {
	return []domain.Fire{
		{Year: year, County: "Butte", Acreage: 47647, Cause: "Lightning", StructuresDestroyed: 117},
		{Year: year, County: "Mariposa", Acreage: 34091, Cause: "Other", StructuresDestroyed: 133},
		{Year: year, County: "Riverside", Acreage: 30305, Cause: "Structure", StructuresDestroyed: 245},
		{Year: year, County: "Shasta", Acreage: 27936, Cause: "Lightning", StructuresDestroyed: 12},
		{Year: year, County: "Butte", Acreage: 23344, Cause: "Arson", StructuresDestroyed: 351},
	}
}

func testSeasons() domain.SeasonSet {
	return domain.SeasonSet{
		2019: {Year: 2019, FireCount: 5000, Acreage: 1000000, TopFive: topFive(2019)},
		2020: {Year: 2020, FireCount: 6000, Acreage: 1500000, TopFive: topFive(2020)},
		2021: {Year: 2021, FireCount: 7000, Acreage: 2000000, TopFive: topFive(2021)},
	}
}

func newTestApp(t *testing.T, input *fakeInput) (*app.App, *fakeSurface) {
	t.Helper()
	surface := &fakeSurface{}
	theme := render.DefaultPalette()
	theme.Small = fakeFont{}
	theme.Label = fakeFont{}

	a, err := app.New(app.Options{
		Seasons:      testSeasons(),
		Surface:      surface,
		Input:        input,
		Theme:        theme,
		Table:        countymap.Default(),
		MapImagePath: "county_map.jpg",
		ScrollStep:   15,
		ScrollMax:    600,
		FPS:          30,
		Logger:       observability.NewLogger(io.Discard, "error", "text"),
		Metrics:      observability.NewMetricsForTesting(),
		Clock:        clockwork.NewFakeClock(),
	})
	require.NoError(t, err)
	return a, surface
}

// --- tests ---

func TestNewStartsAtOldestSeason(t *testing.T) {
	a, _ := newTestApp(t, &fakeInput{})

	assert.Equal(t, 2019, a.CurrentSeason().Year)
	assert.Equal(t, 0, a.State().SeasonIndex)
	// Two labels, the map, and four distinct-county circles.
	assert.Len(t, a.Objects(), 7)
}

func TestNavigationWraps(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		input := &fakeInput{queued: [][]app.Event{
			{app.EventNextSeason}, {app.EventNextSeason}, {app.EventNextSeason},
		}}
		a, _ := newTestApp(t, input)

		require.NoError(t, a.Frame())
		assert.Equal(t, 2020, a.CurrentSeason().Year)
		require.NoError(t, a.Frame())
		assert.Equal(t, 2021, a.CurrentSeason().Year)
		require.NoError(t, a.Frame())
		assert.Equal(t, 2019, a.CurrentSeason().Year)
	})

	t.Run("backward from the first season", func(t *testing.T) {
		input := &fakeInput{queued: [][]app.Event{{app.EventPrevSeason}}}
		a, _ := newTestApp(t, input)

		require.NoError(t, a.Frame())
		assert.Equal(t, 2021, a.CurrentSeason().Year)
	})
}

func TestNavigationResetsScroll(t *testing.T) {
	input := &fakeInput{queued: [][]app.Event{
		{app.EventScrollDown, app.EventScrollDown},
		{app.EventNextSeason},
	}}
	a, _ := newTestApp(t, input)

	require.NoError(t, a.Frame())
	assert.Equal(t, 30, a.ScrollOffset())

	require.NoError(t, a.Frame())
	assert.Equal(t, 0, a.ScrollOffset())
}

func TestScrollClampedAtTop(t *testing.T) {
	input := &fakeInput{queued: [][]app.Event{{app.EventScrollUp}}}
	a, _ := newTestApp(t, input)

	require.NoError(t, a.Frame())
	assert.Equal(t, 0, a.ScrollOffset())
}

func TestFrameDrawsSceneAndChart(t *testing.T) {
	a, surface := newTestApp(t, &fakeInput{})

	require.NoError(t, a.Frame())

	assert.Equal(t, 1, surface.presents)
	assert.True(t, surface.textDrawn("Total # of fires: 5000"))
	assert.True(t, surface.textDrawn("Top Five Fires:"))
	// Chart year captions are drawn every frame.
	assert.True(t, surface.textDrawn("2021"))
}

func TestFrameShowsHoverPanel(t *testing.T) {
	// Butte's marker sits at map origin + (112, 127).
	input := &fakeInput{
		pointerX: render.MapOriginX + 112,
		pointerY: render.MapOriginY + 127,
	}
	a, surface := newTestApp(t, input)

	require.NoError(t, a.Frame())

	assert.True(t, surface.textDrawn("County: Butte"))
	assert.True(t, surface.textDrawn("Acreage: 47647"))
}

func TestFrameNoPanelWithoutHover(t *testing.T) {
	a, surface := newTestApp(t, &fakeInput{pointerX: 5, pointerY: 5})

	require.NoError(t, a.Frame())

	assert.False(t, surface.textDrawn("Acreage: 47647"))
}

func TestForecastSeasonScene(t *testing.T) {
	input := &fakeInput{queued: [][]app.Event{{app.EventNextSeason, app.EventNextSeason}}}
	a, surface := newTestApp(t, input)

	require.NoError(t, a.Frame())

	require.Equal(t, 2021, a.CurrentSeason().Year)
	assert.True(t, surface.textDrawn("Total # of fires: ~7000"))
	assert.True(t, surface.textDrawn("Five Vulnerable Counties:"))
}

func TestQuitStopsRun(t *testing.T) {
	input := &fakeInput{queued: [][]app.Event{{app.EventQuit}}}
	surface := &fakeSurface{}
	theme := render.DefaultPalette()
	theme.Small = fakeFont{}
	theme.Label = fakeFont{}

	a, err := app.New(app.Options{
		Seasons:      testSeasons(),
		Surface:      surface,
		Input:        input,
		Theme:        theme,
		Table:        countymap.Default(),
		MapImagePath: "county_map.jpg",
		ScrollStep:   15,
		ScrollMax:    600,
		FPS:          200,
		Logger:       observability.NewLogger(io.Discard, "error", "text"),
		Metrics:      observability.NewMetricsForTesting(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	assert.True(t, a.State().Quitting)
	// The quit frame does not draw.
	assert.Zero(t, surface.presents)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	a, _ := newTestApp(t, &fakeInput{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
}

func TestNavigationFailsOnUnknownCounty(t *testing.T) {
	seasons := testSeasons()
	s := seasons[2020]
	five := topFive(2020)
	five[2].County = "Atlantis"
	s.TopFive = five
	seasons[2020] = s

	surface := &fakeSurface{}
	theme := render.DefaultPalette()
	theme.Small = fakeFont{}
	theme.Label = fakeFont{}
	input := &fakeInput{queued: [][]app.Event{{app.EventNextSeason}}}

	a, err := app.New(app.Options{
		Seasons:      seasons,
		Surface:      surface,
		Input:        input,
		Theme:        theme,
		Table:        countymap.Default(),
		MapImagePath: "county_map.jpg",
		ScrollStep:   15,
		ScrollMax:    600,
		FPS:          30,
		Logger:       observability.NewLogger(io.Discard, "error", "text"),
		Metrics:      observability.NewMetricsForTesting(),
		Clock:        clockwork.NewFakeClock(),
	})
	require.NoError(t, err)

	assert.Error(t, a.Frame())
}
