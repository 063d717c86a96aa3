// Package geo implements the polygon predicates behind region queries:
// boundary validation, boundary-inclusive containment and great-circle
// distance from a point to a ring.
//
// Rings follow the GeoJSON convention: an ordered sequence of
// [longitude, latitude] vertices with the first vertex repeated as the last.
package geo

import (
	"math"

	"atlas/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Validation failures for submitted boundaries. Callers usually only care
// that validation failed; the distinct errors feed the error details.
var (
	ErrRingTooShort       = errors.New("ring needs at least four vertices with three distinct")
	ErrRingNotClosed      = errors.New("ring is not closed")
	ErrCoordinateRange    = errors.New("vertex outside valid longitude/latitude range")
	ErrRingSelfIntersects = errors.New("ring self-intersects")
	ErrRingDegenerate     = errors.New("ring encloses no area")
)

// ValidateRing checks that ring is a well-formed simple polygon boundary:
// closed, at least three distinct vertices, all coordinates within
// geographic range, no zero-length edges, no self-intersection and non-zero
// enclosed area. It never panics on malformed input.
func ValidateRing(ring orb.Ring) error {
	if len(ring) < 4 {
		return ErrRingTooShort
	}
	if !ring.Closed() {
		return ErrRingNotClosed
	}

	distinct := make(map[orb.Point]struct{}, len(ring)-1)
	for i, p := range ring {
		if p[0] < -180 || p[0] > 180 || p[1] < -90 || p[1] > 90 {
			return ErrCoordinateRange
		}
		if i < len(ring)-1 {
			distinct[p] = struct{}{}
		}
	}
	if len(distinct) < 3 {
		return ErrRingTooShort
	}

	if err := checkSimple(ring); err != nil {
		return err
	}

	if planar.Area(ring) == 0 {
		return ErrRingDegenerate
	}

	return nil
}

// checkSimple rejects rings whose edges cross, touch a non-neighbouring
// edge, or fold back over a neighbouring edge (spikes). The O(n²) pairwise
// scan is fine at boundary sizes seen in practice.
func checkSimple(ring orb.Ring) error {
	n := len(ring) - 1 // edge count, ring is closed

	for i := 0; i < n; i++ {
		if ring[i] == ring[i+1] {
			return ErrRingDegenerate // zero-length edge
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				// Neighbouring edges share one endpoint; only a
				// collinear fold-back is illegal.
				shared, u, v := sharedEndpoint(ring, i, j, n)
				if isSpike(shared, u, v) {
					return ErrRingSelfIntersects
				}

				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return ErrRingSelfIntersects
			}
		}
	}

	return nil
}

// sharedEndpoint resolves the common vertex of neighbouring edges i and j
// plus their two far endpoints.
func sharedEndpoint(ring orb.Ring, i, j, n int) (shared, u, v orb.Point) {
	if j == i+1 {
		return ring[j], ring[i], ring[j+1]
	}
	// wrap pair: edge 0 and edge n-1 share ring[0]
	return ring[0], ring[1], ring[n-1]
}

// isSpike reports whether u and v lie on the same ray out of shared, which
// means the two edges overlap instead of forming a corner.
func isSpike(shared, u, v orb.Point) bool {
	if crossProduct(shared, u, v) != 0 {
		return false
	}
	dot := (u[0]-shared[0])*(v[0]-shared[0]) + (u[1]-shared[1])*(v[1]-shared[1])

	return dot > 0
}

// crossProduct returns the z component of (a-o) x (b-o). Zero means the
// three points are collinear; the sign gives the turn direction.
func crossProduct(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// inBox reports whether p lies within the axis-aligned box spanned by a and
// b. Combined with a zero cross product this is the on-segment test.
func inBox(a, b, p orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}

// segmentsIntersect reports whether segments ab and cd share any point,
// including endpoint touches and collinear overlap.
func segmentsIntersect(a, b, c, d orb.Point) bool {
	d1 := crossProduct(c, d, a)
	d2 := crossProduct(c, d, b)
	d3 := crossProduct(a, b, c)
	d4 := crossProduct(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && inBox(c, d, a) {
		return true
	}
	if d2 == 0 && inBox(c, d, b) {
		return true
	}
	if d3 == 0 && inBox(a, b, c) {
		return true
	}
	if d4 == 0 && inBox(a, b, d) {
		return true
	}

	return false
}
