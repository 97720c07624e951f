// Package forecast extends a historical season set with linearly extrapolated
// future seasons.
//
// Fire counts are fit against year; acreage is fit against fire count and
// evaluated at each season's predicted count, so the two extrapolations chain.
// The five headline counties for a future season are drawn at random, weighted
// by how often each county appeared in historical top fives, and each drawn
// county gets a cause weighted by its own historical cause frequencies.
package forecast

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/observability"
)

// Per-fire figures for synthetic records. County-level acreage and structure
// losses cannot be meaningfully extrapolated from five data points per year,
// so these placeholders stand in and are never shown to the user.
const (
	placeholderAcreage    = 90000
	placeholderStructures = 32
)

// Forecaster produces synthetic future seasons from historical data.
type Forecaster struct {
	rng     *rand.Rand
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Forecaster. The rng drives the weighted county and cause
// draws; seed it for reproducible forecasts.
func New(rng *rand.Rand, logger *slog.Logger, metrics *observability.Metrics) *Forecaster {
	return &Forecaster{rng: rng, logger: logger, metrics: metrics}
}

// Extend registers seasons for the n years after domain.ReferenceYear.
// Existing entries are never overwritten; historical seasons stay untouched.
// The call fails with a DegenerateInputError (wrapped) when either regression
// input has zero variance, which requires at least two distinct years and two
// distinct fire counts in the historical data.
func (f *Forecaster) Extend(set domain.SeasonSet, n int) error {
	if n <= 0 {
		return fmt.Errorf("forecast horizon must be positive, got %d", n)
	}
	if len(set) == 0 {
		return errors.New("cannot forecast from an empty season set")
	}

	years := set.Years()
	xs := make([]float64, 0, len(years))
	counts := make([]float64, 0, len(years))
	acres := make([]float64, 0, len(years))
	for _, y := range years {
		s := set[y]
		xs = append(xs, float64(s.Year))
		counts = append(counts, float64(s.FireCount))
		acres = append(acres, float64(s.Acreage))
	}

	countFit, err := FitOLS(xs, counts)
	if err != nil {
		return fmt.Errorf("fit fire count against year: %w", err)
	}
	acreageFit, err := FitOLS(counts, acres)
	if err != nil {
		return fmt.Errorf("fit acreage against fire count: %w", err)
	}

	countyPool, countyCauses := historicalCountyPools(set)

	registered := 0
	for i := 1; i <= n; i++ {
		year := domain.ReferenceYear + i
		if _, exists := set[year]; exists {
			continue
		}

		count := countFit.At(float64(year))
		acreage := acreageFit.At(float64(count))
		set[year] = domain.Season{
			Year:      year,
			FireCount: count,
			Acreage:   acreage,
			TopFive:   f.sampleTopFive(year, countyPool, countyCauses),
		}
		registered++
	}

	f.logger.Info("forecast registered",
		"horizon", n,
		"seasons", registered,
		"count_slope", countFit.Slope,
		"acreage_slope", acreageFit.Slope,
	)
	f.metrics.ForecastRuns.Inc()
	f.metrics.SeasonsForecast.Add(float64(registered))
	return nil
}

// historicalCountyPools collects, in chronological then top-five order, every
// county appearance across historical top fives plus each county's cause
// history. A county appearing k times carries weight k in the pool.
func historicalCountyPools(set domain.SeasonSet) ([]string, map[string][]string) {
	var pool []string
	causes := make(map[string][]string)
	for _, y := range set.Years() {
		for _, fire := range set[y].TopFive {
			pool = append(pool, fire.County)
			causes[fire.County] = append(causes[fire.County], fire.Cause)
		}
	}
	return pool, causes
}

// sampleTopFive draws five synthetic fires for a future year. Draws are
// independent and with replacement, so a county can repeat; repeated counties
// simply aggregate under one marker when the scene is built.
func (f *Forecaster) sampleTopFive(year int, pool []string, causes map[string][]string) []domain.Fire {
	fires := make([]domain.Fire, 0, domain.TopFiveLen)
	for range domain.TopFiveLen {
		county := pool[f.rng.Intn(len(pool))]
		countyCauses := causes[county]
		cause := countyCauses[f.rng.Intn(len(countyCauses))]
		fires = append(fires, domain.Fire{
			Year:                year,
			County:              county,
			Acreage:             placeholderAcreage,
			Cause:               cause,
			StructuresDestroyed: placeholderStructures,
		})
	}
	return fires
}
