package graph

import (
	"testing"
	"time"

	"loopa-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrderToGraphQL(t *testing.T) {
	created := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("FullOrder", func(t *testing.T) {
		o := &order.Order{
			ID:           "order-1",
			OrderNumber:  "LPA-4821",
			Status:       order.StatusPending,
			CustomerID:   "user-1",
			CustomerName: "Maya Chen",
			TotalAmount:  decimal.RequireFromString("38.50"),
			Currency:     "USD",
			CreatedAt:    created,
			Items: []order.Item{
				{
					ProductID:    "prod-1",
					Quantity:     2,
					Price:        decimal.RequireFromString("15.00"),
					ProductTitle: "Lavender Candle",
					SellerID:     "seller-1",
					SellerName:   "Sarah Miller",
					SellerLat:    40.9401,
					SellerLng:    -123.6305,
					Pickup: &order.Snapshot{
						Location: order.SnapshotLocation{
							Address:       "12 Main St, Willow Creek",
							City:          "Willow Creek",
							DistanceMiles: 0.3,
							Coordinates:   order.Coordinates{Lat: 40.9401, Lng: -123.6305},
						},
						Window: order.SnapshotWindow{
							Day: "Sun", StartTime: "16:00", EndTime: "18:00",
							Formatted: "Sun 4:00 PM - 6:00 PM",
						},
					},
				},
			},
		}

		got := MapOrderToGraphQL(o)

		assert.Equal(t, "LPA-4821", got.OrderNumber)
		assert.Equal(t, 38.5, got.TotalAmount)
		assert.Equal(t, "2025-03-02T09:30:00Z", got.CreatedAt)
		assert.Equal(t, "Maya", got.Customer.FirstName)
		assert.Equal(t, "Maya", got.Customer.GreetingName)

		require.Len(t, got.Items, 1)
		it := got.Items[0]
		assert.Equal(t, "Sarah", it.Seller.FirstName)
		require.NotNil(t, it.Seller.PersonalMessage)
		assert.Equal(t, "Sarah is already preparing your Lavender Candle.", *it.Seller.PersonalMessage)
		assert.Equal(t, "12 Main St, Willow Creek", it.Pickup.Location.Address)
		assert.Equal(t, "Sun 4:00 PM - 6:00 PM", it.Pickup.Window.Formatted)

		assert.Equal(t, "12 Main St, Willow Creek", got.PickupSummary.Location)
		assert.Equal(t, "Sun 4:00 PM - 6:00 PM", got.PickupSummary.Time)
	})

	t.Run("BlankCustomerName", func(t *testing.T) {
		o := &order.Order{ID: "order-2", CreatedAt: created}

		got := MapOrderToGraphQL(o)

		assert.Equal(t, "Customer", got.Customer.FirstName)
		assert.Equal(t, order.FallbackAddress, got.PickupSummary.Location)
		assert.Equal(t, order.FallbackWindowFormatted, got.PickupSummary.Time)
	})

	t.Run("MissingSnapshotUsesFallbackPickup", func(t *testing.T) {
		o := &order.Order{
			ID:           "order-3",
			CustomerName: "Maya Chen",
			CreatedAt:    created,
			Items: []order.Item{
				{ProductID: "prod-gone", Quantity: 1, Price: decimal.Zero},
			},
		}

		got := MapOrderToGraphQL(o)

		require.Len(t, got.Items, 1)
		it := got.Items[0]
		assert.Equal(t, order.FallbackAddress, it.Pickup.Location.Address)
		assert.Equal(t, order.FallbackCity, it.Pickup.Location.City)
		assert.Equal(t, order.FallbackDistanceMiles, it.Pickup.Location.DistanceMiles)
		assert.Equal(t, order.FallbackWindowFormatted, it.Pickup.Window.Formatted)

		// Unresolvable product leaves no title, so no personal message.
		assert.Nil(t, it.Seller.PersonalMessage)
		assert.Equal(t, "Seller", it.Seller.FirstName)
	})
}
