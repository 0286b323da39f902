package recommend

import "math"

const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers between two
// latitude/longitude pairs in degrees.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// WithinRadius reports whether the cafe lies within radiusKm of the given
// point. Cafes without coordinates (0,0 in the source data) never qualify.
func WithinRadius(cafe Cafe, lat, lng, radiusKm float64) bool {
	if cafe.Latitude == 0 && cafe.Longitude == 0 {
		return false
	}
	return Distance(cafe.Latitude, cafe.Longitude, lat, lng) <= radiusKm
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
