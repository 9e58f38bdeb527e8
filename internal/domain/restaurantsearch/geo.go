package restaurantsearch

import (
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/umahmood/haversine"
)

// DistanceKm computes the great-circle distance between two coordinates on
// a spherical Earth approximation.
func DistanceKm(a, b Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return km
}

// cellKey derives the cache key for a coordinate and serving radius. The
// geohash precision is chosen so a single cell is smaller than any serving
// radius; the radius is baked into the key because the peak-hour policy
// switches radii during the day and a bare geohash would alias the 3km and
// 5km result sets.
func cellKey(c Coordinate, precision uint, radiusKm float64) string {
	return fmt.Sprintf("nearby:%s:r%g", geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision), radiusKm)
}
