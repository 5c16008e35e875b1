package graph

import (
	"context"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/order"
)

// Fixed copy attached to every successful checkout.
const (
	orderSuccessMessage    = "Order placed successfully"
	celebrationTitle       = "Success!"
	sampleOfferTitle       = "A gift for you..."
	sampleOfferDescription = "Because you supported a local maker today, someone else in the neighborhood wants to share a little goodness with you."
)

// Order is the resolver for the order field. Missing orders resolve to
// null rather than an error.
func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	o, err := r.OrderSvc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return MapOrderToGraphQL(o), nil
}

// CreateOrder is the resolver for the createOrder field.
func (r *mutationResolver) CreateOrder(ctx context.Context,
	input model.CreateOrderInput) (*model.OrderResponse, error) {

	items := make([]order.ItemInput, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, order.ItemInput{
			ProductID: it.ProductID,
			Quantity:  int(it.Quantity),
		})
	}

	o, err := r.OrderSvc.Create(ctx, input.CustomerID, items)
	if err != nil {
		return nil, wrapError(ctx, err)
	}

	return &model.OrderResponse{
		Status:  "success",
		Message: orderSuccessMessage,
		Order:   MapOrderToGraphQL(o),
		Celebration: &model.Celebration{
			Title: celebrationTitle,
		},
		FreeSampleOffer: &model.FreeSampleOffer{
			Enabled:     true,
			Title:       sampleOfferTitle,
			Description: sampleOfferDescription,
		},
	}, nil
}
