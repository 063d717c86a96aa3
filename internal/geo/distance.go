package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// metersPerDegreeLat is the mean meridian length of one degree of latitude.
const metersPerDegreeLat = 111320.0

// DistanceToRing returns the great-circle distance in meters from p to the
// nearest point on the ring boundary (edge or vertex). A point inside the
// ring is at distance 0, matching the semantics of a geospatial near-sphere
// query against a polygon.
func DistanceToRing(ring orb.Ring, p orb.Point) float64 {
	if RingContains(ring, p) {
		return 0
	}

	minDist := math.MaxFloat64
	for i := 0; i+1 < len(ring); i++ {
		if d := distanceToSegment(p, ring[i], ring[i+1]); d < minDist {
			minDist = d
		}
	}

	return minDist
}

// distanceToSegment measures from p to the closest point on segment ab.
// The segment is projected into a local equirectangular plane centred on p,
// the closest point is found there, then the distance to it is taken on the
// sphere. The planar step introduces well under 1% error at region scale.
func distanceToSegment(p, a, b orb.Point) float64 {
	cosLat := math.Cos(p[1] * math.Pi / 180)
	if cosLat < 1e-6 {
		cosLat = 1e-6 // degenerate only at the poles
	}

	ax := (a[0] - p[0]) * cosLat
	ay := a[1] - p[1]
	bx := (b[0] - p[0]) * cosLat
	by := b[1] - p[1]

	dx := bx - ax
	dy := by - ay

	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = -(ax*dx + ay*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}

	closest := orb.Point{
		p[0] + (ax+t*dx)/cosLat,
		p[1] + (ay + t*dy),
	}

	return orbgeo.Distance(p, closest)
}

// PadBound expands a point into a bound padded by meters on every side.
// It deliberately over-estimates so it stays a safe prefilter ahead of the
// exact DistanceToRing test.
func PadBound(center orb.Point, meters float64) orb.Bound {
	dLat := meters / metersPerDegreeLat

	cosLat := math.Cos(center[1] * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLng := meters / (metersPerDegreeLat * cosLat)

	return orb.Bound{
		Min: orb.Point{center[0] - dLng, center[1] - dLat},
		Max: orb.Point{center[0] + dLng, center[1] + dLat},
	}
}
