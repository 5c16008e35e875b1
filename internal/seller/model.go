package seller

import (
	"time"

	"loopa-be/internal/pickup"
)

// Seller is a local maker with a fixed location and a recurring pickup
// schedule used as the fallback for products without explicit pickup data.
type Seller struct {
	ID              string
	UserID          string
	Name            string
	Description     string
	Latitude        float64
	Longitude       float64
	PickupDays      string
	PickupStartTime string
	PickupEndTime   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Schedule returns the seller's recurring pickup availability.
func (s Seller) Schedule() pickup.Schedule {
	return pickup.Schedule{
		Days:      s.PickupDays,
		StartTime: s.PickupStartTime,
		EndTime:   s.PickupEndTime,
	}
}
