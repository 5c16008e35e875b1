package graph

import (
	"testing"
	"time"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/pickup"
	"loopa-be/internal/product"
	"loopa-be/internal/seller"
	"loopa-be/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeller() seller.Seller {
	return seller.Seller{
		ID:              "seller-1",
		Name:            "The Candle Nook",
		Description:     "Hand-poured soy candles",
		Latitude:        40.9401,
		Longitude:       -123.6305,
		PickupDays:      "Sat",
		PickupStartTime: "10:00",
		PickupEndTime:   "12:00",
	}
}

func TestMapProductToGraphQL(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("FullProduct", func(t *testing.T) {
		p := &product.Product{
			ID:                "prod-1",
			SellerID:          "seller-1",
			Title:             "Lavender Candle",
			Description:       "Soy wax",
			Price:             decimal.RequireFromString("15.00"),
			Currency:          "USD",
			QuantityAvailable: 10,
			QuantityLeft:      7,
			Images:            []string{"a.jpg", "b.jpg"},
			PrimaryImage:      utils.StrPtr("main.jpg"),
			Category:          utils.StrPtr("candles"),
			PickupWindows: []pickup.Window{
				{Days: "Sun", StartTime: "16:00", EndTime: "18:00", Formatted: "Sun 4:00 PM - 6:00 PM"},
			},
			PickupLocation: &pickup.Location{
				Address:  "12 Main St, Willow Creek",
				Latitude: 40.94, Longitude: -123.63,
				DistanceMiles: 0.3, IsExact: true,
			},
			CreatedAt: created,
			UpdatedAt: created,
			Seller:    testSeller(),
		}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		assert.Equal(t, "prod-1", got.ID)
		assert.Equal(t, 15.0, got.Price)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
		require.NotNil(t, got.PrimaryImage)
		assert.Equal(t, "main.jpg", *got.PrimaryImage)
		require.NotNil(t, got.IsFavorite)
		assert.False(t, *got.IsFavorite)
		require.NotNil(t, got.MakerID)
		assert.Equal(t, "seller-1", *got.MakerID)
		require.NotNil(t, got.CreatedAt)
		assert.Equal(t, "2025-03-01T10:00:00Z", *got.CreatedAt)

		// Explicit pickup data passes through untouched.
		require.Len(t, got.PickupWindows, 1)
		assert.Equal(t, "Sun", *got.PickupWindows[0].Days)
		require.NotNil(t, got.PickupLocation)
		assert.Equal(t, "12 Main St, Willow Creek", *got.PickupLocation.Address)
		require.NotNil(t, got.PickupLocation.IsExact)
		assert.True(t, *got.PickupLocation.IsExact)

		require.NotNil(t, got.Seller.DistanceMiles)
		assert.InDelta(t, 0.0, *got.Seller.DistanceMiles, 0.11)
	})

	t.Run("LegacyImageURL", func(t *testing.T) {
		p := &product.Product{
			ID:       "prod-2",
			ImageURL: utils.StrPtr("legacy.jpg"),
			Seller:   testSeller(),
		}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		assert.Equal(t, []string{"legacy.jpg"}, got.Images)
		require.NotNil(t, got.PrimaryImage)
		assert.Equal(t, "legacy.jpg", *got.PrimaryImage)
	})

	t.Run("PrimaryImageDefaultsToLegacyURL", func(t *testing.T) {
		p := &product.Product{
			ID:       "prod-5",
			Images:   []string{"a.jpg", "b.jpg"},
			ImageURL: utils.StrPtr("legacy.jpg"),
			Seller:   testSeller(),
		}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		// Gallery images never stand in for the primary image.
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
		require.NotNil(t, got.PrimaryImage)
		assert.Equal(t, "legacy.jpg", *got.PrimaryImage)
	})

	t.Run("NoPrimaryOrLegacyStaysNull", func(t *testing.T) {
		p := &product.Product{
			ID:     "prod-6",
			Images: []string{"a.jpg"},
			Seller: testSeller(),
		}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		assert.Nil(t, got.PrimaryImage)
	})

	t.Run("PickupFallsBackToSellerSchedule", func(t *testing.T) {
		p := &product.Product{ID: "prod-3", Seller: testSeller()}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		require.Len(t, got.PickupWindows, 1)
		assert.Equal(t, "Sat", *got.PickupWindows[0].Days)
		assert.Equal(t, "Sat 10:00 - 12:00", *got.PickupWindows[0].Formatted)

		// Synthesized location sits at the seller coordinate and is
		// flagged inexact.
		require.NotNil(t, got.PickupLocation)
		assert.Equal(t, "88 Oak Ave, Willow Creek", *got.PickupLocation.Address)
		require.NotNil(t, got.PickupLocation.IsExact)
		assert.False(t, *got.PickupLocation.IsExact)
	})

	t.Run("NoImages", func(t *testing.T) {
		p := &product.Product{ID: "prod-4", Seller: testSeller()}

		got := MapProductToGraphQL(p, 40.94, -123.63)

		assert.Empty(t, got.Images)
		assert.Nil(t, got.PrimaryImage)
	})
}

func TestMapUpdateProductInput(t *testing.T) {
	price := 12.5
	in := MapUpdateProductInput("prod-1", model.UpdateProductInput{
		Title: utils.StrPtr("New title"),
		Price: &price,
	})

	assert.Equal(t, "prod-1", in.ID)
	require.NotNil(t, in.Price)
	assert.True(t, in.Price.Equal(decimal.NewFromFloat(12.5)))
	require.NotNil(t, in.Title)
	assert.Equal(t, "New title", *in.Title)
	assert.Nil(t, in.QuantityAvailable)
}
