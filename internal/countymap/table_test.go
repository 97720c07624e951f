package countymap

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	// Spot-check a few known counties against the map image.
	off, err := table.Lookup("Butte")
	require.NoError(t, err)
	assert.Equal(t, Offset{X: 112, Y: 127}, off)

	off, err = table.Lookup("San Diego")
	require.NoError(t, err)
	assert.Equal(t, Offset{X: 314, Y: 469}, off)

	assert.Len(t, table, 29)
}

func TestLookupUnknownCounty(t *testing.T) {
	table := Default()

	_, err := table.Lookup("Atlantis")
	require.Error(t, err)

	var unknown *UnknownCountyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Atlantis", unknown.County)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestLoadTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table, err := LoadTable(strings.NewReader("Kern: {x: 228, y: 352}\n"))
		require.NoError(t, err)
		off, err := table.Lookup("Kern")
		require.NoError(t, err)
		assert.Equal(t, Offset{X: 228, Y: 352}, off)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("{{nope"))
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("{}\n"))
		assert.Error(t, err)
	})
}
