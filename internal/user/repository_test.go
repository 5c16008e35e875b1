package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
			AddRow("user-1", "jamie@loopa.app", "Jamie Rivera", now)

		mock.ExpectQuery("SELECT id, email, name, created_at FROM users WHERE id").
			WithArgs("user-1").
			WillReturnRows(rows)

		u, err := repo.GetByID(context.Background(), "user-1")
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "Jamie Rivera", u.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, created_at FROM users WHERE id").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}))

		u, err := repo.GetByID(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, created_at FROM users WHERE id").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetByID(context.Background(), "user-1")
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
		AddRow("user-1", "a@loopa.app", "A", time.Now()).
		AddRow("user-2", "b@loopa.app", "B", time.Now())

	mock.ExpectQuery("SELECT id, email, name, created_at FROM users ORDER BY created_at").
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
