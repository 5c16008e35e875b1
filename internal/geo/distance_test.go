package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetry(t *testing.T) {
	d1 := Distance(40.94, -123.63, 37.77, -122.42)
	d2 := Distance(37.77, -122.42, 40.94, -123.63)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, Distance(40.94, -123.63, 40.94, -123.63), 1e-9)
}

func TestDistance_KnownPair(t *testing.T) {
	// Two points a couple of blocks apart in Willow Creek.
	d := Distance(40.94, -123.63, 40.9401, -123.6305)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 0.1)
}

func TestDistance_Antipodal(t *testing.T) {
	// Half the Earth's circumference, and numerically stable.
	d := Distance(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*3958.8, d, 1.0)
}

func TestDistance_Poles(t *testing.T) {
	d := Distance(90, 0, -90, 0)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*3958.8, d, 1.0)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, Round1(1.24))
	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, 0.0, Round1(0.04))
}
