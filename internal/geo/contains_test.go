package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestRingContains(t *testing.T) {
	square := squareRing()

	tests := []struct {
		name  string
		point orb.Point
		want  bool
	}{
		{"center", orb.Point{-48.51, -27.57}, true},
		{"strictly outside west", orb.Point{-48.53, -27.57}, false},
		{"strictly outside north", orb.Point{-48.51, -27.55}, false},
		{"on vertex", orb.Point{-48.52, -27.58}, true},
		{"on edge", orb.Point{-48.51, -27.58}, true},
		{"just inside edge", orb.Point{-48.5101, -27.5799}, true},
		{"far away", orb.Point{10, 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RingContains(square, tt.point))
		})
	}
}

func TestRingContains_Concave(t *testing.T) {
	// L-shape: the notch around (2, 2) is outside the ring.
	ring := orb.Ring{{0, 0}, {3, 0}, {3, 1}, {1, 1}, {1, 3}, {0, 3}, {0, 0}}

	assert.True(t, RingContains(ring, orb.Point{0.5, 0.5}))
	assert.True(t, RingContains(ring, orb.Point{2, 0.5}))
	assert.True(t, RingContains(ring, orb.Point{0.5, 2.5}))
	assert.False(t, RingContains(ring, orb.Point{2, 2}))
	assert.False(t, RingContains(ring, orb.Point{1.5, 1.5}))
}

func TestRingContains_MalformedRing(t *testing.T) {
	assert.False(t, RingContains(nil, orb.Point{0, 0}))
	assert.False(t, RingContains(orb.Ring{{0, 0}, {1, 1}}, orb.Point{0, 0}))
}
