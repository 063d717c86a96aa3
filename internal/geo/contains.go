package geo

import "github.com/paulmach/orb"

// RingContains reports whether p lies inside ring or on its boundary.
// The test is boundary-inclusive: a point on an edge or vertex is contained.
// The ring is assumed valid per ValidateRing; malformed rings return false.
func RingContains(ring orb.Ring, p orb.Point) bool {
	if len(ring) < 4 {
		return false
	}

	n := len(ring) - 1 // last vertex repeats the first

	for i := 0; i < n; i++ {
		if crossProduct(ring[i], ring[i+1], p) == 0 && inBox(ring[i], ring[i+1], p) {
			return true
		}
	}

	// Even-odd ray cast along +longitude over the n distinct vertices.
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi[1] > p[1]) != (pj[1] > p[1]) {
			x := pi[0] + (p[1]-pi[1])/(pj[1]-pi[1])*(pj[0]-pi[0])
			if p[0] < x {
				inside = !inside
			}
		}
	}

	return inside
}
