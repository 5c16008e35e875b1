package geo

import "math"

// earthRadiusMiles is the mean Earth radius used for all distance math.
const earthRadiusMiles = 3958.8

// Distance returns the great-circle distance in miles between two
// coordinates using the haversine formula. The intermediate term is
// clamped to [0,1] so near-antipodal inputs cannot push it outside the
// domain of Sqrt/Atan2 through floating-point drift.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// Round1 rounds a distance to one decimal place for display.
func Round1(miles float64) float64 {
	return math.Round(miles*10) / 10
}
