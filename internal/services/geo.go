package services

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle
// distances.
const earthRadiusMeters = 6371000

// DefaultSearchRadius is the radius in meters applied when a proximity
// query omits one.
const DefaultSearchRadius = 500

// HaversineDistance returns the great-circle distance in meters between
// two points given in degrees.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLng1 := lng1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	rLng2 := lng2 * math.Pi / 180

	dLat := rLat2 - rLat1
	dLng := rLng2 - rLng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
