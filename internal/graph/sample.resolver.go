package graph

import (
	"context"
	"errors"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/sample"
)

const sampleClaimedMessage = "Sample claimed successfully!"

// AvailableSampleSellers is the resolver for the availableSampleSellers field.
func (r *queryResolver) AvailableSampleSellers(ctx context.Context, orderID string) (*model.SampleOffer, error) {
	offer, err := r.SampleSvc.EligibleSellers(ctx, orderID)
	if err != nil {
		return nil, wrapError(ctx, err)
	}
	return MapSampleOfferToGraphQL(offer), nil
}

// ClaimSample is the resolver for the claimSample field. Expected
// rejections fold into a success:false payload so the client keeps a
// single response shape; only unexpected failures surface as errors.
func (r *mutationResolver) ClaimSample(ctx context.Context,
	input model.ClaimSampleInput) (*model.ClaimSampleResponse, error) {

	claimed, err := r.SampleSvc.Claim(ctx, sample.ClaimInput{
		OrderID:        input.OrderID,
		SampleID:       input.SampleID,
		SellerID:       input.SellerID,
		PickupWindowID: input.PickupWindowID,
	})
	if err != nil {
		if isExpectedClaimError(err) {
			return &model.ClaimSampleResponse{
				Success: false,
				Message: claimMessage(err),
			}, nil
		}
		return nil, err
	}

	return &model.ClaimSampleResponse{
		Success:       true,
		Message:       sampleClaimedMessage,
		ClaimedSample: MapSampleToGraphQL(claimed),
	}, nil
}

func isExpectedClaimError(err error) bool {
	return errors.Is(err, sample.ErrOrderNotFound) ||
		errors.Is(err, sample.ErrSampleNotFound) ||
		errors.Is(err, sample.ErrNotAvailable) ||
		errors.Is(err, sample.ErrSellerMismatch) ||
		errors.Is(err, sample.ErrInvalidWindow)
}

// claimMessage renders a rejection in client-facing sentence case.
func claimMessage(err error) string {
	switch {
	case errors.Is(err, sample.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, sample.ErrSampleNotFound):
		return "Sample not found"
	case errors.Is(err, sample.ErrNotAvailable):
		return "Sample is no longer available"
	case errors.Is(err, sample.ErrSellerMismatch):
		return "Sample does not belong to the specified seller"
	case errors.Is(err, sample.ErrInvalidWindow):
		return "Pickup window does not belong to the sample"
	default:
		return err.Error()
	}
}
