package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
)

// Fallback pickup data used when an order line has no resolvable
// structured pickup information. The strings are part of the client
// contract.
const (
	FallbackAddress         = "124 Maple St, Willow Creek"
	FallbackCity            = "Willow Creek"
	FallbackDistanceMiles   = 0.7
	FallbackWindowDay       = "Sat"
	FallbackWindowStart     = "14:00"
	FallbackWindowEnd       = "16:00"
	FallbackWindowFormatted = "Sat 2:00 PM - 4:00 PM"
)

type Order struct {
	ID          string
	OrderNumber string
	Status      Status
	CustomerID  string
	TotalAmount decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	Items       []Item

	// joined for presentation
	CustomerName string
}

// Item is an order line. Price and Pickup are frozen at order-creation
// time and never re-derived from the product.
type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Pickup    *Snapshot

	// joined for presentation; zero values when the product reference
	// no longer resolves
	ProductTitle string
	SellerID     string
	SellerName   string
	SellerLat    float64
	SellerLng    float64
}

// Snapshot is the pickup data captured for one order line. Stored as
// JSONB; immutable history once the order exists.
type Snapshot struct {
	Location SnapshotLocation `json:"location"`
	Window   SnapshotWindow   `json:"window"`
}

type SnapshotLocation struct {
	Address       string      `json:"address"`
	City          string      `json:"city"`
	DistanceMiles float64     `json:"distanceMiles"`
	Coordinates   Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SnapshotWindow struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Formatted string `json:"formatted"`
}

// ItemInput is one requested order line.
type ItemInput struct {
	ProductID string
	Quantity  int
}
