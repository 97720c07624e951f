// Command validate performs integrity checks on a fire season dataset before
// it is handed to the viewer: structural parsing, per-season invariants,
// county map coverage, and forecast readiness. It exits non-zero when any
// phase reports errors.
//
// Usage:
//
//	go run ./cmd/validate -data cali_fire_data.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/firesight/fireviz/internal/countymap"
	"github.com/firesight/fireviz/internal/domain"
	"github.com/firesight/fireviz/internal/forecast"
	"github.com/firesight/fireviz/internal/loader"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "", "path to the fire season dataset")
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dataPath); code != 0 {
		os.Exit(code)
	}
}

func run(dataPath string) int {
	fmt.Println("=== Fire Season Dataset Validation ===")
	fmt.Println()

	set, err := loader.Load(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSeasonInvariants(set),
		validateYearCoverage(set),
		validateCountyCoverage(set),
		validateForecastReadiness(set),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	years := set.Years()
	fmt.Println()
	fmt.Printf("Seasons: %d (%d-%d), %d top-five fire records\n",
		len(years), years[0], years[len(years)-1], len(years)*domain.TopFiveLen)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Season Invariants ──
// Re-checks every season beyond what the loader enforces at parse time.

func validateSeasonInvariants(set domain.SeasonSet) *phase {
	p := &phase{name: "Phase 1: Season Invariants"}

	for _, year := range set.Years() {
		season := set[year]
		if err := season.Validate(); err != nil {
			p.errorf("season %d: %v", year, err)
			continue
		}

		topFiveAcres := 0
		for _, fire := range season.TopFive {
			topFiveAcres += fire.Acreage
		}
		if topFiveAcres > season.Acreage {
			p.errorf("season %d: top five sum to %d acres but season total is %d",
				year, topFiveAcres, season.Acreage)
		}
		if season.FireCount < domain.TopFiveLen {
			p.errorf("season %d: fire count %d is below the %d named fires",
				year, season.FireCount, domain.TopFiveLen)
		}
	}
	return p
}

// ── Phase 2: Year Coverage ──
// The viewer and chart assume consecutive seasons with no forecast years
// baked into the source file.

func validateYearCoverage(set domain.SeasonSet) *phase {
	p := &phase{name: "Phase 2: Year Coverage"}

	years := set.Years()
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			p.errorf("gap between seasons %d and %d", years[i-1], years[i])
		}
	}
	for _, year := range years {
		if domain.IsForecast(year) {
			p.errorf("season %d is after the %d reference year; forecasts belong to the viewer, not the dataset",
				year, domain.ReferenceYear)
		}
	}
	return p
}

// ── Phase 3: County Coverage ──
// Every county named in a top-five record needs a map placement, or scene
// construction will fail at runtime.

func validateCountyCoverage(set domain.SeasonSet) *phase {
	p := &phase{name: "Phase 3: County Coverage"}

	table := countymap.Default()
	reported := map[string]bool{}
	for _, year := range set.Years() {
		for _, fire := range set[year].TopFive {
			if reported[fire.County] {
				continue
			}
			if _, err := table.Lookup(fire.County); err != nil {
				p.errorf("season %d: %v", year, err)
				reported[fire.County] = true
			}
		}
	}
	return p
}

// ── Phase 4: Forecast Readiness ──
// Both regressions the viewer fits at startup need non-zero variance in
// their inputs.

func validateForecastReadiness(set domain.SeasonSet) *phase {
	p := &phase{name: "Phase 4: Forecast Readiness"}

	years := set.Years()
	if len(years) < 2 {
		p.errorf("need at least 2 seasons to fit a trend, have %d", len(years))
		return p
	}

	xs := make([]float64, len(years))
	counts := make([]float64, len(years))
	acres := make([]float64, len(years))
	for i, year := range years {
		xs[i] = float64(year)
		counts[i] = float64(set[year].FireCount)
		acres[i] = float64(set[year].Acreage)
	}

	if _, err := forecast.FitOLS(xs, counts); err != nil {
		p.errorf("fire count trend: %v", err)
	}
	if _, err := forecast.FitOLS(counts, acres); err != nil {
		p.errorf("acreage trend: %v", err)
	}
	return p
}
