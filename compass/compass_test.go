package compass_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kata/compass"
)

var wantNames = []string{
	"N", "NbE", "NNE", "NEbN", "NE", "NEbE", "ENE", "EbN",
	"E", "EbS", "ESE", "SEbE", "SE", "SEbS", "SSE", "SbE",
	"S", "SbW", "SSW", "SWbS", "SW", "SWbW", "WSW", "WbS",
	"W", "WbN", "WNW", "NWbW", "NW", "NWbN", "NNW", "NbW",
}

func TestPoints_Table(t *testing.T) {
	points := compass.Points()
	require.Len(t, points, compass.Count)

	for i, p := range points {
		assert.Equal(t, wantNames[i], p.Abbreviation, "index %d", i)
		assert.Equal(t, float64(i)*11.25, p.Azimuth, "index %d", i)
	}
	assert.Equal(t, compass.Point{Abbreviation: "N", Azimuth: 0}, points[0])
	assert.Equal(t, compass.Point{Abbreviation: "S", Azimuth: 180}, points[16])
	assert.Equal(t, 348.75, points[31].Azimuth)
}

func TestPoints_FreshSlice(t *testing.T) {
	a := compass.Points()
	a[0].Abbreviation = "changed"
	b := compass.Points()
	assert.Equal(t, "N", b[0].Abbreviation)
}

func TestAbbreviations(t *testing.T) {
	assert.Equal(t, wantNames, compass.Abbreviations())
}

func TestNearest(t *testing.T) {
	for _, p := range compass.Points() {
		got, err := compass.Nearest(p.Azimuth)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	cases := []struct {
		azimuth float64
		want    string
	}{
		{5, "N"},
		{6, "NbE"},
		{355, "N"},
		{360, "N"},
		{-11.25, "NbW"},
		{-90, "W"},
		{450, "E"},
		{179.9, "S"},
	}
	for _, tc := range cases {
		got, err := compass.Nearest(tc.azimuth)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Abbreviation, "azimuth %v", tc.azimuth)
	}
}

func TestNearest_NonFinite(t *testing.T) {
	for _, az := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := compass.Nearest(az)
		assert.ErrorIs(t, err, compass.ErrNonFinite, "azimuth %v", az)
		assert.Equal(t, compass.Point{}, got)
	}
}

func TestLookup(t *testing.T) {
	p, err := compass.Lookup("NEbE")
	require.NoError(t, err)
	assert.Equal(t, 56.25, p.Azimuth)

	_, err = compass.Lookup("nebe")
	assert.ErrorIs(t, err, compass.ErrUnknownPoint)

	_, err = compass.Lookup("")
	assert.ErrorIs(t, err, compass.ErrUnknownPoint)
}
