package restaurantsearch

// closeByAndOpen reports whether the restaurant is open at now and strictly
// inside the serving radius. A restaurant sitting exactly at the radius is
// excluded.
func closeByAndOpen(r Restaurant, now TimeOfDay, user Coordinate, radiusKm float64) bool {
	if !r.Hours().OpenAt(now) {
		return false
	}
	return DistanceKm(user, r.Location()) < radiusKm
}

// withinRadius keeps only restaurants strictly inside radiusKm of user,
// regardless of opening hours.
func withinRadius(candidates []Restaurant, user Coordinate, radiusKm float64) []Restaurant {
	out := make([]Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if DistanceKm(user, r.Location()) < radiusKm {
			out = append(out, r)
		}
	}
	return out
}

// openNow keeps only restaurants whose hours contain now.
func openNow(candidates []Restaurant, now TimeOfDay) []Restaurant {
	out := make([]Restaurant, 0, len(candidates))
	for _, r := range candidates {
		if r.Hours().OpenAt(now) {
			out = append(out, r)
		}
	}
	return out
}
