package restaurantsearch

// Coordinate is an immutable geographic point (WGS 84).
// Callers validate ranges before it reaches the domain:
// latitude in [-90, 90], longitude in [-180, 180].
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Restaurant is the catalog record served to clients and stored in the
// proximity cache. Identity, equality and dedup are keyed solely on
// RestaurantID; the rest is display data.
type Restaurant struct {
	RestaurantID string   `json:"restaurantId"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	ImageURL     string   `json:"imageUrl"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	OpensAt      string   `json:"opensAt"`
	ClosesAt     string   `json:"closesAt"`
	Attributes   []string `json:"attributes"`
}

// Location returns the restaurant position as a Coordinate.
func (r Restaurant) Location() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Hours decodes the opening-hours strings. Missing or malformed bounds
// degrade to AlwaysOpen rather than hiding the restaurant.
func (r Restaurant) Hours() OpeningHours {
	return ParseOpeningHours(r.OpensAt, r.ClosesAt)
}

// NearbyRequest asks for all open restaurants around a coordinate.
// Now is the caller's clock; the domain performs no clock reads of its own.
type NearbyRequest struct {
	Coordinate Coordinate
	Now        TimeOfDay
}

// SearchRequest adds an optional free-text query. An empty query degrades
// to plain proximity listing.
type SearchRequest struct {
	Coordinate Coordinate
	Query      string
	Now        TimeOfDay
}
