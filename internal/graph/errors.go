package graph

import (
	"context"
	"errors"

	"loopa-be/internal/order"
	"loopa-be/internal/product"
	"loopa-be/internal/sample"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Error extension codes surfaced to clients.
const (
	codeNotFound          = "NOT_FOUND"
	codeInvalidState      = "INVALID_STATE"
	codeOwnershipMismatch = "OWNERSHIP_MISMATCH"
	codeValidationFailure = "VALIDATION_FAILURE"
)

// wrapError translates a well-known domain error into a gqlerror with
// a stable extension code. Unknown errors pass through unchanged so
// gqlgen reports them as internal.
func wrapError(ctx context.Context, err error) error {
	code := ""
	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrCustomerNotFound),
		errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, sample.ErrSampleNotFound),
		errors.Is(err, sample.ErrOrderNotFound):
		code = codeNotFound
	case errors.Is(err, sample.ErrNotAvailable):
		code = codeInvalidState
	case errors.Is(err, sample.ErrSellerMismatch):
		code = codeOwnershipMismatch
	case errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidQuantity),
		errors.Is(err, product.ErrNoFields),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, sample.ErrInvalidWindow):
		code = codeValidationFailure
	default:
		return err
	}

	return &gqlerror.Error{
		Message:    err.Error(),
		Path:       graphql.GetPath(ctx),
		Extensions: map[string]interface{}{"code": code},
	}
}
