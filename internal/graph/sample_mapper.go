package graph

import (
	"loopa-be/internal/graph/model"
	"loopa-be/internal/sample"
	"loopa-be/internal/utils"
)

func MapSampleOfferToGraphQL(o *sample.Offer) *model.SampleOffer {
	sellers := make([]*model.SampleSeller, 0, len(o.Sellers))
	for _, s := range o.Sellers {
		s := s
		sellers = append(sellers, &model.SampleSeller{
			ID:            s.ID,
			Name:          s.Name,
			AvatarURL:     utils.StrPtr(s.AvatarURL),
			Rating:        &s.Rating,
			ReviewCount:   utils.Int32Ptr(int32(s.ReviewCount)),
			DistanceMiles: s.DistanceMiles,
			Disclaimer:    s.Disclaimer,
			PickupWindows: mapSampleWindows(s.Windows),
		})
	}

	return &model.SampleOffer{
		Status: o.Status,
		Eligibility: &model.SampleEligibility{
			OrderID:    o.Eligibility.OrderID,
			ClaimLimit: int32(o.Eligibility.ClaimLimit),
			ExpiresIn:  o.Eligibility.ExpiresIn,
		},
		Sellers: sellers,
	}
}

func mapSampleWindows(windows []sample.Window) []*model.SamplePickupWindow {
	out := make([]*model.SamplePickupWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, &model.SamplePickupWindow{
			ID:        w.ID,
			Day:       w.Day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Formatted: w.Formatted,
			Available: w.Available,
		})
	}
	return out
}

func MapSampleToGraphQL(s *sample.Sample) *model.Sample {
	var productID *string
	if s.ProductID != "" {
		productID = utils.StrPtr(s.ProductID)
	}
	return &model.Sample{
		ID:        s.ID,
		SellerID:  s.SellerID,
		ProductID: productID,
		Status:    string(s.Status),
		ClaimedAt: utils.FormatTimePtr(s.ClaimedAt),
	}
}
