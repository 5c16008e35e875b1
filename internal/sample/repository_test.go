package sample

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

var sampleRows = []string{
	"id", "seller_id", "product_id", "status", "pickup_windows",
	"claimed_by_user_id", "claimed_at", "expires_at",
	"s_id", "s_user_id", "s_name", "s_description", "s_latitude", "s_longitude",
	"s_pickup_days", "s_pickup_start_time", "s_pickup_end_time",
}

func availableRow(rows *sqlmock.Rows) *sqlmock.Rows {
	return rows.AddRow(
		"sample-1", "seller-2", "prod-2", "available", nil,
		nil, nil, time.Now().Add(48*time.Hour),
		"seller-2", "user-2", "Sarah's Kitchen", "Small-batch artisan jams.", 40.9401, -123.6305,
		"Sat-Sun", "10:00", "16:00",
	)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM samples sp").
			WithArgs("sample-1").
			WillReturnRows(availableRow(sqlmock.NewRows(sampleRows)))

		smp, err := repo.GetByID(context.Background(), "sample-1")
		require.NoError(t, err)
		require.NotNil(t, smp)
		assert.Equal(t, StatusAvailable, smp.Status)
		assert.Equal(t, "Sarah's Kitchen", smp.Seller.Name)
		assert.Empty(t, smp.Windows)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM samples sp").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(sampleRows))

		smp, err := repo.GetByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, smp)
	})
}

func TestRepository_ListAvailableExcluding(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM samples sp.*WHERE sp\.status = 'available' AND sp\.seller_id <> ALL`).
			WithArgs(pq.Array([]string{"seller-1"})).
			WillReturnRows(availableRow(sqlmock.NewRows(sampleRows)))

		samples, err := repo.ListAvailableExcluding(context.Background(), []string{"seller-1"})
		assert.NoError(t, err)
		require.Len(t, samples, 1)
		assert.Equal(t, "sample-1", samples[0].ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM samples sp").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListAvailableExcluding(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestRepository_Claim(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "seller_id", "product_id", "status", "pickup_windows",
			"claimed_by_user_id", "claimed_at", "expires_at",
		}).AddRow("sample-1", "seller-2", "prod-2", "claimed", nil, "user-1", now, nil)

		mock.ExpectQuery(`UPDATE samples.*WHERE id = \$1 AND status = 'available'`).
			WithArgs("sample-1", "user-1").
			WillReturnRows(rows)

		smp, err := repo.Claim(context.Background(), "sample-1", "user-1")
		require.NoError(t, err)
		require.NotNil(t, smp)
		assert.Equal(t, StatusClaimed, smp.Status)
		assert.Equal(t, "user-1", *smp.ClaimedByUserID)
		require.NotNil(t, smp.ClaimedAt)
	})

	t.Run("NoRowMatched", func(t *testing.T) {
		// Already claimed, or lost a concurrent race: the conditional
		// update matches nothing.
		mock.ExpectQuery(`UPDATE samples.*WHERE id = \$1 AND status = 'available'`).
			WithArgs("sample-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "seller_id", "product_id", "status", "pickup_windows",
				"claimed_by_user_id", "claimed_at", "expires_at",
			}))

		smp, err := repo.Claim(context.Background(), "sample-1", "user-1")
		assert.NoError(t, err)
		assert.Nil(t, smp)
	})
}
