package geo

import "math"

// GridToLonLat converts grid coordinates (0..extent) to World WGS84
// (Lon/Lat) using a Mercator projection adapted for the grid extent.
//
// It maps the grid (0 to extent) to the longitude range [-180, 180]
// and applies an inverse Mercator projection for latitude. The y axis
// points up: y = 0 is the southern edge.
func GridToLonLat(x, y, extent float64) (lon, lat float64) {
	// x: [0..extent] -> lon: [-180..180]
	longitudeScale := 360.0 / extent
	lon = x*longitudeScale - 180.0

	// y: [0..extent] -> mercatorY: [-PI..PI]
	mercatorScale := (2.0 * math.Pi) / extent
	mercatorY := y*mercatorScale - math.Pi

	// Inverse Mercator projection
	latRad := (2.0 * math.Atan(math.Exp(mercatorY))) - (math.Pi * 0.5)

	const MaxLat = 85.05112878
	lat = latRad * (180.0 / math.Pi)

	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}

	return lon, lat
}
