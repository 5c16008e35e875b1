package graph

import (
	"context"

	"loopa-be/internal/graph/model"
)

// NearbyProducts is the resolver for the nearbyProducts field.
func (r *queryResolver) NearbyProducts(ctx context.Context,
	location model.LocationInput, category *string) ([]*model.Product, error) {

	products, err := r.ProductSvc.ListNearby(ctx,
		location.Latitude, location.Longitude, location.RadiusMiles, category)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, MapProductToGraphQL(p, location.Latitude, location.Longitude))
	}
	return out, nil
}

// Product is the resolver for the product field. Missing products
// resolve to null rather than an error.
func (r *queryResolver) Product(ctx context.Context, id string) (*model.Product, error) {
	p, err := r.ProductSvc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	// Without a caller location the listing is presented from its own
	// seller's coordinate, so distance reads as zero.
	return MapProductToGraphQL(p, p.Seller.Latitude, p.Seller.Longitude), nil
}

// UpdateProduct is the resolver for the updateProduct field.
func (r *mutationResolver) UpdateProduct(ctx context.Context,
	id string, input model.UpdateProductInput) (*model.Product, error) {

	p, err := r.ProductSvc.Update(ctx, MapUpdateProductInput(id, input))
	if err != nil {
		return nil, wrapError(ctx, err)
	}

	return MapProductToGraphQL(p, p.Seller.Latitude, p.Seller.Longitude), nil
}
