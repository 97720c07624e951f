package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTopFive(year int) []Fire {
	return []Fire{
		{Year: year, County: "Butte", Acreage: 47647, Cause: "Lightning", StructuresDestroyed: 117},
		{Year: year, County: "Mariposa", Acreage: 34091, Cause: "Other", StructuresDestroyed: 133},
		{Year: year, County: "Riverside", Acreage: 30305, Cause: "Structure", StructuresDestroyed: 245},
		{Year: year, County: "Shasta", Acreage: 27936, Cause: "Lightning", StructuresDestroyed: 12},
		{Year: year, County: "Butte", Acreage: 23344, Cause: "Arson", StructuresDestroyed: 351},
	}
}

func TestFireValidate(t *testing.T) {
	base := Fire{Year: 2008, County: "Butte", Acreage: 47647, Cause: "Lightning", StructuresDestroyed: 117}
	require.NoError(t, base.Validate())

	t.Run("zero year", func(t *testing.T) {
		f := base
		f.Year = 0
		assert.Error(t, f.Validate())
	})

	t.Run("empty county", func(t *testing.T) {
		f := base
		f.County = ""
		assert.Error(t, f.Validate())
	})

	t.Run("nonpositive acreage", func(t *testing.T) {
		f := base
		f.Acreage = 0
		assert.Error(t, f.Validate())
	})

	t.Run("negative structures", func(t *testing.T) {
		f := base
		f.StructuresDestroyed = -1
		assert.Error(t, f.Validate())
	})
}

func TestSeasonValidate(t *testing.T) {
	season := Season{Year: 2008, FireCount: 6255, Acreage: 1593690, TopFive: validTopFive(2008)}
	require.NoError(t, season.Validate())

	t.Run("wrong top five length", func(t *testing.T) {
		s := season
		s.TopFive = s.TopFive[:4]
		assert.Error(t, s.Validate())
	})

	t.Run("unsorted top five", func(t *testing.T) {
		s := season
		five := validTopFive(2008)
		five[0], five[4] = five[4], five[0]
		s.TopFive = five
		assert.Error(t, s.Validate())
	})

	t.Run("ties allowed", func(t *testing.T) {
		s := season
		five := validTopFive(2008)
		five[1].Acreage = five[0].Acreage
		s.TopFive = five
		assert.NoError(t, s.Validate())
	})
}

func TestSeasonSet(t *testing.T) {
	set := SeasonSet{
		2010: {Year: 2010, FireCount: 100, Acreage: 1000, TopFive: validTopFive(2010)},
		2008: {Year: 2008, FireCount: 120, Acreage: 1200, TopFive: validTopFive(2008)},
		2009: {Year: 2009, FireCount: 110, Acreage: 1100, TopFive: validTopFive(2009)},
	}

	assert.Equal(t, []int{2008, 2009, 2010}, set.Years())

	latest, ok := set.Latest()
	require.True(t, ok)
	assert.Equal(t, 2010, latest.Year)

	assert.NoError(t, set.Validate())

	_, ok = SeasonSet{}.Latest()
	assert.False(t, ok)
}

func TestIsForecast(t *testing.T) {
	assert.False(t, IsForecast(2020))
	assert.True(t, IsForecast(2021))
	assert.False(t, IsForecast(2008))
}
