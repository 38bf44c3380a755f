package geo

import "math"

// kmPerDegreeLat is the flat-earth approximation of one degree of latitude.
const kmPerDegreeLat = 111.0

// Point is a coordinate pair in [longitude, latitude] order, matching the
// ordering used by the map stack and the upstream bounds endpoint.
type Point struct {
	Long float64
	Lat  float64
}

// BoundingBox is a north/south/east/west rectangle in decimal degrees.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Valid reports whether the box encloses a non-empty area.
func (b BoundingBox) Valid() bool {
	return b.North > b.South && b.East > b.West
}

// ValidCoordinate reports whether lat and long are finite numbers within the
// valid coordinate ranges. It guards every geo computation and map query so
// NaN or out-of-range values never reach downstream math.
func ValidCoordinate(lat, long float64) bool {
	if math.IsNaN(lat) || math.IsNaN(long) {
		return false
	}
	if math.IsInf(lat, 0) || math.IsInf(long, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}

// BoundsFromCenter converts a center point and radius in kilometers into a
// bounding box. One degree of latitude is taken as 111 km; the longitude
// delta is widened by the cosine of the latitude to compensate for meridian
// convergence. The approximation degenerates near the poles (cos -> 0), which
// is accepted: the service region sits around -35 degrees latitude.
func BoundsFromCenter(center Point, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegreeLat
	longDelta := radiusKm / (kmPerDegreeLat * math.Cos(center.Lat*math.Pi/180))

	return BoundingBox{
		North: center.Lat + latDelta,
		South: center.Lat - latDelta,
		East:  center.Long + longDelta,
		West:  center.Long - longDelta,
	}
}

// ZoomForRadius maps a search radius in kilometers to a map zoom level, so
// the visible viewport roughly matches the searched area.
func ZoomForRadius(distanceKm float64) int {
	switch {
	case distanceKm <= 1:
		return 16
	case distanceKm <= 2:
		return 15
	case distanceKm <= 5:
		return 14
	case distanceKm <= 10:
		return 13
	case distanceKm <= 20:
		return 12
	default:
		return 11
	}
}
