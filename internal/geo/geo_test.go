package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		long     float64
		expected bool
	}{
		{name: "origin", lat: 0, long: 0, expected: true},
		{name: "buenos aires", lat: -34.5803362, long: -58.4245236, expected: true},
		{name: "latitude upper bound", lat: 90, long: 0, expected: true},
		{name: "latitude out of range", lat: 90.0001, long: 0, expected: false},
		{name: "latitude below range", lat: -91, long: 0, expected: false},
		{name: "longitude upper bound", lat: 0, long: 180, expected: true},
		{name: "longitude out of range", lat: 0, long: 180.5, expected: false},
		{name: "longitude below range", lat: 0, long: -181, expected: false},
		{name: "NaN latitude", lat: math.NaN(), long: 0, expected: false},
		{name: "NaN longitude", lat: 0, long: math.NaN(), expected: false},
		{name: "positive infinity", lat: math.Inf(1), long: 0, expected: false},
		{name: "negative infinity", lat: 0, long: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidCoordinate(tt.lat, tt.long))
		})
	}
}

func TestBoundsFromCenter(t *testing.T) {
	center := Point{Long: -58.4245236, Lat: -34.5803362}

	t.Run("box encloses center for positive radius", func(t *testing.T) {
		for _, radius := range []float64{0.5, 1, 2, 5, 10, 20, 50} {
			bounds := BoundsFromCenter(center, radius)
			assert.True(t, bounds.Valid(), "radius %f", radius)
			assert.Greater(t, bounds.North, center.Lat)
			assert.Less(t, bounds.South, center.Lat)
			assert.Greater(t, bounds.East, center.Long)
			assert.Less(t, bounds.West, center.Long)
		}
	})

	t.Run("box collapses toward center as radius approaches zero", func(t *testing.T) {
		bounds := BoundsFromCenter(center, 1e-9)
		assert.InDelta(t, center.Lat, bounds.North, 1e-9)
		assert.InDelta(t, center.Lat, bounds.South, 1e-9)
		assert.InDelta(t, center.Long, bounds.East, 1e-9)
		assert.InDelta(t, center.Long, bounds.West, 1e-9)
	})

	t.Run("latitude delta matches 111km per degree", func(t *testing.T) {
		bounds := BoundsFromCenter(center, 111)
		assert.InDelta(t, center.Lat+1, bounds.North, 1e-9)
		assert.InDelta(t, center.Lat-1, bounds.South, 1e-9)
	})

	t.Run("longitude delta widens away from the equator", func(t *testing.T) {
		atEquator := BoundsFromCenter(Point{Long: 0, Lat: 0}, 10)
		atService := BoundsFromCenter(center, 10)
		equatorWidth := atEquator.East - atEquator.West
		serviceWidth := atService.East - atService.West
		assert.Greater(t, serviceWidth, equatorWidth)
	})
}

func TestZoomForRadius(t *testing.T) {
	tests := []struct {
		distanceKm float64
		expected   int
	}{
		{0.5, 16},
		{1, 16},
		{1.0001, 15},
		{2, 15},
		{5, 14},
		{5.0001, 13},
		{10, 13},
		{20, 12},
		{20.1, 11},
		{50, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ZoomForRadius(tt.distanceKm), "distance %f", tt.distanceKm)
	}
}

func TestZoomForRadiusMonotonic(t *testing.T) {
	previous := ZoomForRadius(0.1)
	for d := 0.2; d <= 60; d += 0.1 {
		zoom := ZoomForRadius(d)
		assert.LessOrEqual(t, zoom, previous, "zoom must not increase with distance (at %f)", d)
		previous = zoom
	}
}
