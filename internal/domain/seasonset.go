package domain

import "sort"

// SeasonSet is the year-keyed collection of seasons the viewer runs on. It is
// filled by the loader, extended once by the forecaster, and fixed afterwards.
type SeasonSet map[int]Season

// Years returns all season years in ascending order.
func (s SeasonSet) Years() []int {
	years := make([]int, 0, len(s))
	for y := range s {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Latest returns the most recent season and false if the set is empty.
func (s SeasonSet) Latest() (Season, bool) {
	years := s.Years()
	if len(years) == 0 {
		return Season{}, false
	}
	return s[years[len(years)-1]], true
}

// Validate checks every season in the set.
func (s SeasonSet) Validate() error {
	for _, y := range s.Years() {
		if err := s[y].Validate(); err != nil {
			return err
		}
	}
	return nil
}
