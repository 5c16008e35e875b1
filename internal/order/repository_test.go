package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	newOrder := func() *Order {
		return &Order{
			OrderNumber: "LPA-1234",
			Status:      StatusPending,
			CustomerID:  "user-1",
			TotalAmount: decimal.RequireFromString("15.00"),
			Currency:    "USD",
			Items: []Item{{
				ProductID: "prod-1",
				Quantity:  1,
				Price:     decimal.RequireFromString("15.00"),
				Pickup: &Snapshot{
					Location: SnapshotLocation{Address: FallbackAddress, City: FallbackCity},
					Window:   SnapshotWindow{Formatted: FallbackWindowFormatted},
				},
			}},
		}
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(sqlmock.AnyArg(), "LPA-1234", StatusPending, "user-1", "15", "USD").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE products").
			WithArgs(1, "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		o := newOrder()
		err := repo.Create(context.Background(), o)
		assert.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.NotEmpty(t, o.Items[0].ID)
	})

	t.Run("OrderNumberCollision", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newOrder())
		assert.ErrorIs(t, err, ErrOrderNumberTaken)
	})

	t.Run("ItemInsertFails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newOrder())
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		orderRows := sqlmock.NewRows([]string{
			"id", "order_number", "status", "customer_id", "total_amount", "currency", "created_at", "name",
		}).AddRow("order-1", "LPA-1234", "pending", "user-1", "15.00", "USD", time.Now(), "Jamie Rivera")

		mock.ExpectQuery("SELECT o.id, o.order_number").
			WithArgs("order-1").
			WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows([]string{
			"id", "product_id", "quantity", "price", "pickup_data",
			"title", "s_id", "s_name", "s_lat", "s_lng",
		}).AddRow(
			"item-1", "prod-1", 1, "15.00",
			[]byte(`{"location":{"address":"88 Oak Ave, Willow Creek","city":"Willow Creek","distanceMiles":1.2,"coordinates":{"lat":40.9382,"lng":-123.6321}},"window":{"day":"Mon-Fri","startTime":"17:00","endTime":"19:00","formatted":"Mon-Fri 5:00 PM - 7:00 PM"}}`),
			"Lavender & Sage Candle", "seller-1", "The Candle Nook", 40.94, -123.63,
		).AddRow(
			// dangling product reference: joined columns coalesce to zero values
			"item-2", "ghost", 2, "0", nil,
			"", "", "", 0.0, 0.0,
		)

		mock.ExpectQuery("SELECT i.id, i.product_id").
			WithArgs("order-1").
			WillReturnRows(itemRows)

		o, err := repo.GetByID(context.Background(), "order-1")
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, "LPA-1234", o.OrderNumber)
		assert.Equal(t, "Jamie Rivera", o.CustomerName)
		require.Len(t, o.Items, 2)

		require.NotNil(t, o.Items[0].Pickup)
		assert.Equal(t, "Mon-Fri 5:00 PM - 7:00 PM", o.Items[0].Pickup.Window.Formatted)
		assert.Equal(t, "The Candle Nook", o.Items[0].SellerName)

		assert.Nil(t, o.Items[1].Pickup)
		assert.Equal(t, "", o.Items[1].ProductTitle)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT o.id, o.order_number").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "order_number", "status", "customer_id", "total_amount", "currency", "created_at", "name",
			}))

		o, err := repo.GetByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}
