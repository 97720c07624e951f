package domain

import (
	"errors"
	"fmt"
)

// ReferenceYear is the last year covered by the historical dataset. Seasons
// for later years are synthetic forecasts.
const ReferenceYear = 2020

// TopFiveLen is the fixed number of headline fires tracked per season.
const TopFiveLen = 5

// Fire is a single wildfire event. Values are immutable once constructed.
type Fire struct {
	Year                int
	County              string
	Acreage             int
	Cause               string
	StructuresDestroyed int
}

// Validate checks the Fire's representation invariants.
func (f Fire) Validate() error {
	if f.Year == 0 {
		return errors.New("fire: year must be nonzero")
	}
	if f.County == "" {
		return errors.New("fire: county must not be empty")
	}
	if f.Acreage <= 0 {
		return fmt.Errorf("fire: acreage must be positive, got %d", f.Acreage)
	}
	if f.Cause == "" {
		return errors.New("fire: cause must not be empty")
	}
	if f.StructuresDestroyed < 0 {
		return fmt.Errorf("fire: structures destroyed must not be negative, got %d", f.StructuresDestroyed)
	}
	return nil
}

// Season aggregates one year's fire statistics. Seasons are immutable;
// the forecaster adds new entries to a SeasonSet rather than editing any.
type Season struct {
	Year      int
	FireCount int
	Acreage   int
	TopFive   []Fire
}

// Validate checks the Season's representation invariants, including that the
// top five are ordered from most to least acreage.
func (s Season) Validate() error {
	if s.Year == 0 {
		return errors.New("season: year must be nonzero")
	}
	if s.FireCount <= 0 {
		return fmt.Errorf("season %d: fire count must be positive, got %d", s.Year, s.FireCount)
	}
	if s.Acreage <= 0 {
		return fmt.Errorf("season %d: acreage must be positive, got %d", s.Year, s.Acreage)
	}
	if len(s.TopFive) != TopFiveLen {
		return fmt.Errorf("season %d: expected %d top fires, got %d", s.Year, TopFiveLen, len(s.TopFive))
	}
	for i, f := range s.TopFive {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("season %d: top five entry %d: %w", s.Year, i, err)
		}
		if i > 0 && f.Acreage > s.TopFive[i-1].Acreage {
			return fmt.Errorf("season %d: top five not ordered by descending acreage at entry %d", s.Year, i)
		}
	}
	return nil
}

// IsForecast reports whether a year lies beyond the historical dataset.
func IsForecast(year int) bool {
	return year > ReferenceYear
}
