// Package app runs the frame-driven viewer loop: poll input, update the
// explicit application state, hit-test the pointer, and redraw. Forecasting
// happens once before the loop starts; scenes are rebuilt wholesale on season
// navigation and never mutated while drawn.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/interaction"
	"github.com/firesight/fireviz/internal/observability"
	"github.com/firesight/fireviz/internal/render"
	"github.com/firesight/fireviz/internal/scene"
)

// Event is one user input occurrence, polled at the start of a frame.
type Event int

const (
	// EventQuit asks the loop to exit (escape key or window close).
	EventQuit Event = iota
	// EventNextSeason navigates forward, wrapping at the newest season.
	EventNextSeason
	// EventPrevSeason navigates backward, wrapping at the oldest season.
	EventPrevSeason
	// EventScrollUp is a wheel-up click: content moves back toward the top.
	EventScrollUp
	// EventScrollDown is a wheel-down click: content moves up, revealing
	// lower parts of the scene.
	EventScrollDown
)

// Input is the per-frame input snapshot from the windowing backend.
type Input interface {
	// Poll drains the events that occurred since the previous frame.
	Poll() []Event
	// Pointer returns the current pointer position in canvas coordinates.
	Pointer() (x, y int)
}

// State is the loop's explicit mutable record: everything a frame update may
// change lives here rather than in captured closure variables.
type State struct {
	Quitting    bool
	SeasonIndex int
}

// Options wires an App together.
type Options struct {
	Seasons domain.SeasonSet
	Surface render.Surface
	Input   Input
	Theme   render.Theme
	Table   countymap.Table

	MapImagePath string
	ScrollStep   int
	ScrollMax    int
	FPS          int

	Logger  *slog.Logger
	Metrics *observability.Metrics
	Clock   clockwork.Clock
}

// App owns the season data and the active scene for the current season.
type App struct {
	seasons domain.SeasonSet
	years   []int

	surface   render.Surface
	input     Input
	theme     render.Theme
	table     countymap.Table
	mapBitmap render.Bitmap
	chart     *scene.SeasonChart

	state    State
	scroller *interaction.Scroller
	objects  []scene.Object

	fps     int
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New builds an App and the scene for the oldest season. The map bitmap is
// loaded once; navigation reuses it at the default origin.
func New(opts Options) (*App, error) {
	if len(opts.Seasons) == 0 {
		return nil, errors.New("app: season set is empty")
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	bitmap, err := opts.Surface.LoadBitmap(opts.MapImagePath)
	if err != nil {
		return nil, fmt.Errorf("load map image: %w", err)
	}

	a := &App{
		seasons:   opts.Seasons,
		years:     opts.Seasons.Years(),
		surface:   opts.Surface,
		input:     opts.Input,
		theme:     opts.Theme,
		table:     opts.Table,
		mapBitmap: bitmap,
		chart:     scene.NewSeasonChart(opts.Seasons, opts.Theme, render.CanvasWidth),
		scroller:  interaction.NewScroller(opts.ScrollStep, opts.ScrollMax),
		fps:       opts.FPS,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		clock:     opts.Clock,
	}

	if err := a.rebuildScene(); err != nil {
		return nil, err
	}
	return a, nil
}

// State returns a copy of the loop state, for inspection.
func (a *App) State() State { return a.state }

// ScrollOffset returns the current cumulative scroll in pixels.
func (a *App) ScrollOffset() int { return a.scroller.Offset() }

// CurrentSeason returns the season the user is focused on.
func (a *App) CurrentSeason() domain.Season {
	return a.seasons[a.years[a.state.SeasonIndex]]
}

// Objects returns the active scene's object list.
func (a *App) Objects() []scene.Object { return a.objects }

// rebuildScene discards the active scene and builds one for the current
// season, with the map back at its default origin and the scroll reset.
func (a *App) rebuildScene() error {
	mapImage := scene.NewImage(render.MapOriginX, render.MapOriginY, a.mapBitmap)
	objects, err := scene.Build(a.CurrentSeason(), mapImage, a.table, a.theme, render.CanvasWidth)
	if err != nil {
		return err
	}
	a.objects = objects
	a.scroller.Reset()
	a.metrics.ScenesBuilt.Inc()
	a.metrics.SceneObjects.Observe(float64(len(objects)))
	a.logger.Debug("scene rebuilt", "year", a.CurrentSeason().Year, "objects", len(objects))
	return nil
}

// handle applies one input event to the state.
func (a *App) handle(ev Event) error {
	switch ev {
	case EventQuit:
		a.state.Quitting = true
	case EventNextSeason:
		a.state.SeasonIndex = (a.state.SeasonIndex + 1) % len(a.years)
		return a.rebuildScene()
	case EventPrevSeason:
		a.state.SeasonIndex = (a.state.SeasonIndex - 1 + len(a.years)) % len(a.years)
		return a.rebuildScene()
	case EventScrollUp:
		a.observeScroll(a.scroller.ScrollUp(a.objects))
	case EventScrollDown:
		a.observeScroll(a.scroller.ScrollDown(a.objects))
	}
	return nil
}

func (a *App) observeScroll(applied bool) {
	result := "applied"
	if !applied {
		result = "clamped"
	}
	a.metrics.ScrollEvents.WithLabelValues(result).Inc()
}

// Frame runs one update-and-draw cycle.
func (a *App) Frame() error {
	start := a.clock.Now()

	for _, ev := range a.input.Poll() {
		if err := a.handle(ev); err != nil {
			return err
		}
	}
	if a.state.Quitting {
		return nil
	}

	px, py := a.input.Pointer()
	hovered := interaction.HitTest(px, py, a.objects)
	if hovered != nil {
		a.metrics.HitTests.WithLabelValues("hit").Inc()
	} else {
		a.metrics.HitTests.WithLabelValues("miss").Inc()
	}

	a.surface.Fill(a.theme.White)
	scene.DrawAll(a.surface, a.objects)
	if hovered != nil {
		scene.DrawFireInfo(a.surface, hovered, a.theme)
	}
	a.chart.Draw(a.surface, a.state.SeasonIndex)

	if err := a.surface.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}

	a.metrics.FramesRendered.Inc()
	a.metrics.FrameDuration.Observe(a.clock.Since(start).Seconds())
	return nil
}

// Run drives frames at the configured rate until the context is cancelled,
// the user quits, or a frame fails.
func (a *App) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(a.fps)
	ticker := a.clock.NewTicker(interval)
	defer ticker.Stop()

	a.logger.Info("viewer started", "seasons", len(a.years), "fps", a.fps)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("viewer stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
			if err := a.Frame(); err != nil {
				return err
			}
			if a.state.Quitting {
				a.logger.Info("viewer quit by user")
				return nil
			}
		}
	}
}
