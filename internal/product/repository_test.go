package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRows = []string{
	"id", "seller_id", "title", "description", "price", "currency",
	"quantity_available", "quantity_left", "images", "primary_image",
	"image_url", "category", "tags", "badges", "pickup_windows",
	"pickup_location", "is_active", "created_at", "updated_at",
	"s_id", "s_user_id", "s_name", "s_description", "s_latitude", "s_longitude",
	"s_pickup_days", "s_pickup_start_time", "s_pickup_end_time",
}

func candleRow(rows *sqlmock.Rows) *sqlmock.Rows {
	return rows.AddRow(
		"prod-1", "seller-1", "Lavender & Sage Candle", "Calming scent.", "15.00", "USD",
		12, 12, pq.StringArray{"https://cdn.loopa.app/products/candle-1.jpg"}, "https://cdn.loopa.app/products/candle-main.jpg",
		"https://cdn.loopa.app/products/candle-main.jpg", "body", pq.StringArray{"soy", "handmade"}, pq.StringArray{"Handmade"},
		[]byte(`[{"days":"Mon-Fri","startTime":"17:00","endTime":"19:00","formatted":"Mon-Fri 5:00 PM - 7:00 PM"}]`),
		[]byte(`{"address":"88 Oak Ave, Willow Creek","latitude":40.9382,"longitude":-123.6321,"distanceMiles":1.2,"isExact":false}`),
		true, time.Now(), time.Now(),
		"seller-1", "user-1", "The Candle Nook", "Handcrafted candles.", 40.94, -123.63,
		"Mon-Fri", "17:00", "19:00",
	)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products p").
			WithArgs("prod-1").
			WillReturnRows(candleRow(sqlmock.NewRows(productRows)))

		p, err := repo.GetByID(context.Background(), "prod-1")
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, "Lavender & Sage Candle", p.Title)
		assert.Equal(t, "15", p.Price.String())
		assert.Equal(t, "The Candle Nook", p.Seller.Name)
		require.Len(t, p.PickupWindows, 1)
		assert.Equal(t, "Mon-Fri 5:00 PM - 7:00 PM", p.PickupWindows[0].Formatted)
		require.NotNil(t, p.PickupLocation)
		assert.Equal(t, "88 Oak Ave, Willow Creek", p.PickupLocation.Address)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products p").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(productRows))

		p, err := repo.GetByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_ListByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("WithCategory", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products p.*WHERE p\.is_active AND LOWER\(p\.category\) = LOWER\(\$1\)`).
			WithArgs("body").
			WillReturnRows(candleRow(sqlmock.NewRows(productRows)))

		res, err := repo.ListByCategory(context.Background(), strPtr("body"))
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("WildcardCharactersMatchLiterally", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products p.*WHERE p\.is_active AND LOWER\(p\.category\) = LOWER\(\$1\)`).
			WithArgs("%").
			WillReturnRows(sqlmock.NewRows(productRows))

		res, err := repo.ListByCategory(context.Background(), strPtr("%"))
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("NoCategory", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products p.*WHERE p\.is_active ORDER BY`).
			WillReturnRows(candleRow(sqlmock.NewRows(productRows)))

		res, err := repo.ListByCategory(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products p").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListByCategory(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestRepository_ListByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("EmptyInput", func(t *testing.T) {
		res, err := repo.ListByIDs(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products p.*WHERE p\.id = ANY`).
			WithArgs(pq.Array([]string{"prod-1", "prod-2"})).
			WillReturnRows(candleRow(sqlmock.NewRows(productRows)))

		res, err := repo.ListByIDs(context.Background(), []string{"prod-1", "prod-2"})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		title := "Renamed Candle"
		mock.ExpectExec(`UPDATE products SET title = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(title, "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery("SELECT .* FROM products p").
			WithArgs("prod-1").
			WillReturnRows(candleRow(sqlmock.NewRows(productRows)))

		p, err := repo.Update(context.Background(), UpdateInput{ID: "prod-1", Title: &title})
		assert.NoError(t, err)
		require.NotNil(t, p)
	})

	t.Run("NotFound", func(t *testing.T) {
		title := "Renamed Candle"
		mock.ExpectExec("UPDATE products SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), UpdateInput{ID: "ghost", Title: &title})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("NoFields", func(t *testing.T) {
		_, err := repo.Update(context.Background(), UpdateInput{ID: "prod-1"})
		assert.ErrorIs(t, err, ErrNoFields)
	})
}

func strPtr(s string) *string { return &s }
