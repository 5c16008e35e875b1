package pickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExplicitWindowsKeptVerbatim(t *testing.T) {
	windows := []Window{{
		Days:      "Mon-Fri",
		StartTime: "17:00",
		EndTime:   "19:00",
		Formatted: "Mon-Fri 5:00 PM - 7:00 PM",
	}}

	info := Resolve(windows, nil, Schedule{Days: "Sat-Sun", StartTime: "10:00", EndTime: "16:00"}, 40.94, -123.63, 40.94, -123.63)

	assert.Equal(t, windows, info.Windows)
}

func TestResolve_SynthesizesWindowFromSellerSchedule(t *testing.T) {
	sched := Schedule{Days: "Sat-Sun", StartTime: "10:00", EndTime: "16:00"}

	info := Resolve(nil, nil, sched, 40.94, -123.63, 40.94, -123.63)

	require.Len(t, info.Windows, 1)
	w := info.Windows[0]
	assert.Equal(t, "Sat-Sun", w.Days)
	assert.Equal(t, "10:00", w.StartTime)
	assert.Equal(t, "16:00", w.EndTime)
	assert.Equal(t, "Sat-Sun 10:00 - 16:00", w.Formatted)
}

func TestResolve_NoWindowsWithoutSchedule(t *testing.T) {
	info := Resolve(nil, nil, Schedule{}, 40.94, -123.63, 40.94, -123.63)
	assert.Empty(t, info.Windows)
}

func TestResolve_ExplicitLocationKept(t *testing.T) {
	loc := &Location{Address: "88 Oak Ave, Willow Creek", Latitude: 40.9382, Longitude: -123.6321, DistanceMiles: 1.2, IsExact: false}

	info := Resolve(nil, loc, Schedule{}, 40.94, -123.63, 40.94, -123.63)

	assert.Same(t, loc, info.Location)
}

func TestResolve_SynthesizedLocationFromSeller(t *testing.T) {
	info := Resolve(nil, nil, Schedule{}, 40.9401, -123.6305, 40.94, -123.63)

	require.NotNil(t, info.Location)
	assert.Equal(t, "88 Oak Ave, Willow Creek", info.Location.Address)
	assert.Equal(t, 40.9401, info.Location.Latitude)
	assert.Equal(t, -123.6305, info.Location.Longitude)
	assert.False(t, info.Location.IsExact)
	assert.Less(t, info.Location.DistanceMiles, 0.1)
}
