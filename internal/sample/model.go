package sample

import (
	"time"

	"loopa-be/internal/seller"
)

type Status string

const (
	// StatusAvailable is the initial state.
	StatusAvailable Status = "available"
	// StatusClaimed is terminal; no transition leads out of it.
	StatusClaimed Status = "claimed"
)

// Window is a claimable pickup slot offered with a sample.
type Window struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Formatted string `json:"formatted"`
	Available bool   `json:"available"`
}

// DefaultWindows is substituted when a sample carries no structured
// pickup windows. The ids and labels are part of the client contract.
var DefaultWindows = []Window{
	{ID: "win_1", Day: "Tomorrow", StartTime: "15:00", EndTime: "17:00", Formatted: "Tomorrow 3:00–5:00 PM", Available: true},
	{ID: "win_2", Day: "Sat", StartTime: "10:00", EndTime: "12:00", Formatted: "Sat 10:00 AM–12:00 PM", Available: true},
	{ID: "win_3", Day: "Sun", StartTime: "16:00", EndTime: "18:00", Formatted: "Sun 4:00–6:00 PM", Available: true},
}

type Sample struct {
	ID              string
	SellerID        string
	ProductID       string
	Status          Status
	Windows         []Window
	ClaimedByUserID *string
	ClaimedAt       *time.Time
	ExpiresAt       *time.Time

	Seller seller.Seller
}

// WindowsOrDefault returns the sample's structured windows, or the
// fixed placeholder set when it has none.
func (s *Sample) WindowsOrDefault() []Window {
	if len(s.Windows) > 0 {
		return s.Windows
	}
	return DefaultWindows
}

// ClaimInput identifies one claim attempt.
type ClaimInput struct {
	OrderID        string
	SampleID       string
	SellerID       string
	PickupWindowID string
}

// Offer is the eligible-samples document returned for an order.
type Offer struct {
	Status      string
	Eligibility Eligibility
	Sellers     []OfferSeller
}

type Eligibility struct {
	OrderID    string
	ClaimLimit int
	ExpiresIn  string
}

type OfferSeller struct {
	ID            string
	Name          string
	AvatarURL     string
	Rating        float64
	ReviewCount   int
	DistanceMiles float64
	Disclaimer    string
	Windows       []Window
}
