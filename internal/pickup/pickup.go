package pickup

import (
	"fmt"

	"loopa-be/internal/geo"
)

// fallbackAddress stands in for real address data when a seller has no
// structured pickup location on file.
const fallbackAddress = "88 Oak Ave, Willow Creek"

// Window is a recurring pickup slot as stored on a product.
type Window struct {
	Days      string `json:"days"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Formatted string `json:"formatted"`
}

// Location is the structured pickup location attached to a product.
type Location struct {
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	DistanceMiles float64 `json:"distanceMiles"`
	IsExact       bool    `json:"isExact"`
}

// Schedule is a seller's recurring pickup availability.
type Schedule struct {
	Days      string
	StartTime string
	EndTime   string
}

// Info is the normalized pickup sub-document for a product.
type Info struct {
	Windows  []Window
	Location *Location
}

// Resolve builds pickup info for a product, falling back through the
// chain: explicit product data, then the seller's recurring schedule,
// then nothing (windows) / a synthesized location at the seller's
// coordinate. Distance on a synthesized location is measured from the
// caller's reference point and rounded for display.
func Resolve(
	windows []Window,
	location *Location,
	sched Schedule,
	sellerLat, sellerLng float64,
	refLat, refLng float64,
) Info {
	info := Info{Windows: windows}

	if len(info.Windows) == 0 && sched.Days != "" {
		info.Windows = []Window{{
			Days:      sched.Days,
			StartTime: sched.StartTime,
			EndTime:   sched.EndTime,
			Formatted: fmt.Sprintf("%s %s - %s", sched.Days, sched.StartTime, sched.EndTime),
		}}
	}

	if location != nil {
		info.Location = location
		return info
	}

	info.Location = &Location{
		Address:       fallbackAddress,
		Latitude:      sellerLat,
		Longitude:     sellerLng,
		DistanceMiles: geo.Round1(geo.Distance(refLat, refLng, sellerLat, sellerLng)),
		IsExact:       false,
	}
	return info
}
