package product

import (
	"time"

	"loopa-be/internal/pickup"
	"loopa-be/internal/seller"

	"github.com/shopspring/decimal"
)

// Product is a catalog listing. The pickup fields are optional overrides
// of the seller's recurring schedule and location.
type Product struct {
	ID                string
	SellerID          string
	Title             string
	Description       string
	Price             decimal.Decimal
	Currency          string
	QuantityAvailable int
	QuantityLeft      int
	Images            []string
	PrimaryImage      *string
	ImageURL          *string // legacy single-image field
	Category          *string
	Tags              []string
	Badges            []string
	PickupWindows     []pickup.Window
	PickupLocation    *pickup.Location
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Seller seller.Seller
}

// UpdateInput carries the mutable display/catalog fields. Nil pointers
// and nil slices mean "leave unchanged".
type UpdateInput struct {
	ID                string
	Title             *string
	Description       *string
	Price             *decimal.Decimal
	Currency          *string
	QuantityAvailable *int32
	Category          *string
	PrimaryImage      *string
	Images            []string
	Tags              []string
	IsActive          *bool
}

// HasAnyField reports whether the input updates at least one column.
func (in UpdateInput) HasAnyField() bool {
	return in.Title != nil ||
		in.Description != nil ||
		in.Price != nil ||
		in.Currency != nil ||
		in.QuantityAvailable != nil ||
		in.Category != nil ||
		in.PrimaryImage != nil ||
		in.Images != nil ||
		in.Tags != nil ||
		in.IsActive != nil
}
