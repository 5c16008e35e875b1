package graph

import (
	"loopa-be/internal/geo"
	"loopa-be/internal/graph/model"
	"loopa-be/internal/pickup"
	"loopa-be/internal/product"
	"loopa-be/internal/utils"

	"github.com/shopspring/decimal"
)

// MapProductToGraphQL shapes a catalog product for the wire. Distance
// is measured from the caller's reference point; pickup data falls
// back through the product, the seller schedule, then placeholders.
func MapProductToGraphQL(p *product.Product, refLat, refLng float64) *model.Product {
	dist := geo.Round1(geo.Distance(refLat, refLng, p.Seller.Latitude, p.Seller.Longitude))

	images := p.Images
	if len(images) == 0 && p.ImageURL != nil && *p.ImageURL != "" {
		// Legacy single-image listings still present as a list.
		images = []string{*p.ImageURL}
	}

	// The legacy single-image field is the only default for the primary
	// image; explicit gallery images never promote themselves.
	primary := p.PrimaryImage
	if primary == nil {
		primary = p.ImageURL
	}

	info := pickup.Resolve(
		p.PickupWindows,
		p.PickupLocation,
		p.Seller.Schedule(),
		p.Seller.Latitude, p.Seller.Longitude,
		refLat, refLng,
	)

	isFavorite := false
	createdAt := utils.FormatTime(p.CreatedAt)
	updatedAt := utils.FormatTime(p.UpdatedAt)

	return &model.Product{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Price:             p.Price.InexactFloat64(),
		Currency:          p.Currency,
		QuantityAvailable: int32(p.QuantityAvailable),
		QuantityLeft:      int32(p.QuantityLeft),
		Images:            images,
		PrimaryImage:      primary,
		ImageURL:          p.ImageURL,
		IsFavorite:        &isFavorite,
		Category:          p.Category,
		Tags:              p.Tags,
		Badges:            p.Badges,
		PickupWindows:     mapPickupWindows(info.Windows),
		PickupLocation:    mapPickupLocation(info.Location),
		Seller: &model.Seller{
			ID:            p.Seller.ID,
			Name:          p.Seller.Name,
			Description:   p.Seller.Description,
			Latitude:      p.Seller.Latitude,
			Longitude:     p.Seller.Longitude,
			DistanceMiles: &dist,
		},
		MakerID:   utils.StrPtr(p.SellerID),
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

func mapPickupWindows(windows []pickup.Window) []*model.PickupWindow {
	out := make([]*model.PickupWindow, 0, len(windows))
	for _, w := range windows {
		w := w
		out = append(out, &model.PickupWindow{
			Days:      &w.Days,
			StartTime: &w.StartTime,
			EndTime:   &w.EndTime,
			Formatted: &w.Formatted,
		})
	}
	return out
}

func mapPickupLocation(loc *pickup.Location) *model.PickupLocation {
	if loc == nil {
		return nil
	}
	return &model.PickupLocation{
		Address:       &loc.Address,
		Latitude:      &loc.Latitude,
		Longitude:     &loc.Longitude,
		DistanceMiles: &loc.DistanceMiles,
		IsExact:       &loc.IsExact,
	}
}

// MapUpdateProductInput converts the wire input into the domain update
// shape, keeping the nil-means-unchanged semantics.
func MapUpdateProductInput(id string, input model.UpdateProductInput) product.UpdateInput {
	out := product.UpdateInput{
		ID:                id,
		Title:             input.Title,
		Description:       input.Description,
		Currency:          input.Currency,
		QuantityAvailable: input.QuantityAvailable,
		Category:          input.Category,
		PrimaryImage:      input.PrimaryImage,
		Images:            input.Images,
		Tags:              input.Tags,
		IsActive:          input.IsActive,
	}
	if input.Price != nil {
		price := decimal.NewFromFloat(*input.Price)
		out.Price = &price
	}
	return out
}
