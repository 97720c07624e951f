// Package loader parses the line-oriented fire season dataset.
//
// The format repeats one block per season:
//
//	2008                               a bare integer opens a year
//	Butte,47647,Lightning,117          five lines describe the top five fires,
//	...                                ordered from most to least acreage
//	6255,1593690                       fire_count,acreage closes the season
//
// Structural problems (wrong field counts, non-numeric values, a season
// closing without exactly five fires) are fatal: a partially loaded dataset
// would misrepresent the data, so the whole load fails instead.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/firesight/fireviz/internal/domain"
)

// Load reads and parses the dataset at path.
func Load(path string) (domain.SeasonSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return set, nil
}

// Parse reads the dataset format from r into a SeasonSet.
func Parse(r io.Reader) (domain.SeasonSet, error) {
	set := domain.SeasonSet{}
	scanner := bufio.NewScanner(r)

	currYear := 0
	var topFive []domain.Fire
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		switch {
		case len(fields) == 1:
			year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
			if err != nil {
				return nil, fmt.Errorf("line %d: expected a year, got %q", lineNo, fields[0])
			}
			if len(topFive) != 0 {
				return nil, fmt.Errorf("line %d: year %d opened before season %d was closed", lineNo, year, currYear)
			}
			currYear = year

		case !numeric(fields[0]):
			if currYear == 0 {
				return nil, fmt.Errorf("line %d: fire record before any year line", lineNo)
			}
			fire, err := parseFire(currYear, fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			topFive = append(topFive, fire)

		default:
			if currYear == 0 {
				return nil, fmt.Errorf("line %d: season totals before any year line", lineNo)
			}
			season, err := parseSeason(currYear, fields, topFive)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			set[currYear] = season
			topFive = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(topFive) != 0 {
		return nil, fmt.Errorf("dataset ended with season %d still open", currYear)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("dataset contains no seasons")
	}
	return set, nil
}

// parseFire reads a county,acreage,cause,structures_destroyed record.
func parseFire(year int, fields []string) (domain.Fire, error) {
	if len(fields) != 4 {
		return domain.Fire{}, fmt.Errorf("expected 4 fire fields, got %d", len(fields))
	}
	acreage, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return domain.Fire{}, fmt.Errorf("bad acreage %q", fields[1])
	}
	destroyed, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Fire{}, fmt.Errorf("bad structures destroyed %q", fields[3])
	}

	fire := domain.Fire{
		Year:                year,
		County:              strings.TrimSpace(fields[0]),
		Acreage:             acreage,
		Cause:               strings.TrimSpace(fields[2]),
		StructuresDestroyed: destroyed,
	}
	if err := fire.Validate(); err != nil {
		return domain.Fire{}, err
	}
	return fire, nil
}

// parseSeason reads the fire_count,acreage closer and assembles the season
// from the five fires parsed since the year line.
func parseSeason(year int, fields []string, topFive []domain.Fire) (domain.Season, error) {
	if len(fields) != 2 {
		return domain.Season{}, fmt.Errorf("expected 2 season fields, got %d", len(fields))
	}
	count, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return domain.Season{}, fmt.Errorf("bad fire count %q", fields[0])
	}
	acreage, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return domain.Season{}, fmt.Errorf("bad acreage %q", fields[1])
	}

	season := domain.Season{Year: year, FireCount: count, Acreage: acreage, TopFive: topFive}
	if err := season.Validate(); err != nil {
		return domain.Season{}, err
	}
	return season, nil
}

// numeric reports whether s parses as a bare integer, which distinguishes a
// season-totals line from a fire record starting with a county name.
func numeric(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
