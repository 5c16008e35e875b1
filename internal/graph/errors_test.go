package graph

import (
	"context"
	"errors"
	"testing"

	"loopa-be/internal/order"
	"loopa-be/internal/product"
	"loopa-be/internal/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestWrapError(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		err  error
		code string
	}{
		{"ProductNotFound", product.ErrProductNotFound, "NOT_FOUND"},
		{"CustomerNotFound", order.ErrCustomerNotFound, "NOT_FOUND"},
		{"SampleUnavailable", sample.ErrNotAvailable, "INVALID_STATE"},
		{"SellerMismatch", sample.ErrSellerMismatch, "OWNERSHIP_MISMATCH"},
		{"EmptyOrder", order.ErrEmptyOrder, "VALIDATION_FAILURE"},
		{"InvalidWindow", sample.ErrInvalidWindow, "VALIDATION_FAILURE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapError(ctx, tc.err)

			var gqlErr *gqlerror.Error
			require.True(t, errors.As(wrapped, &gqlErr))
			assert.Equal(t, tc.err.Error(), gqlErr.Message)
			assert.Equal(t, tc.code, gqlErr.Extensions["code"])
		})
	}

	t.Run("UnknownErrorPassesThrough", func(t *testing.T) {
		err := errors.New("db down")
		assert.Equal(t, err, wrapError(ctx, err))
	})
}
