package graph

import (
	"fmt"

	"loopa-be/internal/graph/model"
	"loopa-be/internal/order"
	"loopa-be/internal/utils"
)

// MapOrderToGraphQL shapes an order for the wire. Unresolvable pickup
// snapshots render as the fixed placeholder pickup.
func MapOrderToGraphQL(o *order.Order) *model.Order {
	items := make([]*model.OrderItem, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, mapOrderItem(o.Items[i]))
	}

	firstName := utils.FirstName(o.CustomerName, "Customer")

	return &model.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		CreatedAt:   utils.FormatTime(o.CreatedAt),
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Currency:    o.Currency,
		Customer: &model.OrderCustomer{
			FirstName:    firstName,
			GreetingName: firstName,
		},
		Items:         items,
		PickupSummary: mapPickupSummary(o),
	}
}

func mapOrderItem(it order.Item) *model.OrderItem {
	location := &model.PickupLocationDetails{
		Address:       order.FallbackAddress,
		City:          order.FallbackCity,
		DistanceMiles: order.FallbackDistanceMiles,
		Coordinates:   &model.PickupCoordinates{Lat: it.SellerLat, Lng: it.SellerLng},
	}
	window := &model.PickupWindowDetails{
		Day:       order.FallbackWindowDay,
		StartTime: order.FallbackWindowStart,
		EndTime:   order.FallbackWindowEnd,
		Formatted: order.FallbackWindowFormatted,
	}
	if it.Pickup != nil {
		location = &model.PickupLocationDetails{
			Address:       it.Pickup.Location.Address,
			City:          it.Pickup.Location.City,
			DistanceMiles: it.Pickup.Location.DistanceMiles,
			Coordinates: &model.PickupCoordinates{
				Lat: it.Pickup.Location.Coordinates.Lat,
				Lng: it.Pickup.Location.Coordinates.Lng,
			},
		}
		window = &model.PickupWindowDetails{
			Day:       it.Pickup.Window.Day,
			StartTime: it.Pickup.Window.StartTime,
			EndTime:   it.Pickup.Window.EndTime,
			Formatted: it.Pickup.Window.Formatted,
		}
	}

	sellerFirst := utils.FirstName(it.SellerName, "Seller")
	var personalMessage *string
	if it.ProductTitle != "" {
		personalMessage = utils.StrPtr(fmt.Sprintf("%s is already preparing your %s.", sellerFirst, it.ProductTitle))
	}

	return &model.OrderItem{
		ProductID: it.ProductID,
		Title:     it.ProductTitle,
		Seller: &model.OrderSeller{
			ID:              it.SellerID,
			Name:            it.SellerName,
			FirstName:       sellerFirst,
			PersonalMessage: personalMessage,
		},
		Price:    it.Price.InexactFloat64(),
		Quantity: int32(it.Quantity),
		Pickup: &model.OrderPickupDetails{
			Location: location,
			Window:   window,
		},
	}
}

// mapPickupSummary condenses the order to a single location/time line,
// taken from the first line's snapshot.
func mapPickupSummary(o *order.Order) *model.PickupSummary {
	if len(o.Items) > 0 && o.Items[0].Pickup != nil {
		snap := o.Items[0].Pickup
		return &model.PickupSummary{
			Location: snap.Location.Address,
			Time:     snap.Window.Formatted,
		}
	}
	return &model.PickupSummary{
		Location: order.FallbackAddress,
		Time:     order.FallbackWindowFormatted,
	}
}
