package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "label", "icon", "is_active", "count", "created_at"}).
			AddRow("cat-1", "Bakery", "croissant", true, 0, time.Now())

		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(sqlmock.AnyArg(), "Bakery", "croissant", true, int32(0)).
			WillReturnRows(rows)

		c, err := repo.Create(context.Background(), "Bakery", "croissant", true, 0)
		assert.NoError(t, err)
		assert.Equal(t, "cat-1", c.ID)
		assert.Equal(t, "Bakery", c.Label)
		assert.True(t, c.IsActive)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").WillReturnError(errors.New("db error"))
		_, err := repo.Create(context.Background(), "Bakery", "croissant", true, 0)
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "label", "icon", "is_active", "count", "created_at"}).
		AddRow("cat-1", "All", "home", true, 0, time.Now()).
		AddRow("cat-2", "Bakery", "croissant", true, 14, time.Now())

	mock.ExpectQuery("SELECT id, label, icon, is_active, count, created_at").
		WillReturnRows(rows)

	categories, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "All", categories[0].Label)
	assert.Equal(t, int32(14), categories[1].Count)
}
