package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"
)

// fromQueryResponse maps an order read model to its wire representation.
func fromQueryResponse(resp queries.OrderResponse) servers.Order {
	apiOrder := servers.Order{
		Id:               resp.ID.Bytes(),
		Status:           servers.OrderStatus(resp.Status.String()),
		BranchName:       resp.BranchName,
		TotalPrice:       resp.TotalPrice,
		Items:            make([]servers.OrderItem, 0, len(resp.Items)),
		DeliveryLocation: fromLocationResponse(resp.DeliveryLocation),
		PickupLocation:   fromLocationResponse(resp.PickupLocation),
		CreatedAt:        resp.CreatedAt,
	}

	for _, item := range resp.Items {
		apiOrder.Items = append(apiOrder.Items, servers.OrderItem{
			LineId: item.LineID,
			Id:     item.ItemID,
			Count:  item.Count,
		})
	}

	if resp.CourierLocation != nil {
		courierLocation := fromLocationResponse(*resp.CourierLocation)
		apiOrder.CourierLocation = &courierLocation
	}

	if resp.Customer != nil {
		apiOrder.Customer = &servers.Customer{
			Id:       resp.Customer.ID.Bytes(),
			Location: fromLocationResponse(resp.Customer.Location),
		}
	}

	if resp.Branch != nil {
		apiOrder.Branch = &servers.Branch{
			Id:       resp.Branch.ID.Bytes(),
			Name:     resp.Branch.Name,
			Location: fromLocationResponse(resp.Branch.Location),
		}
	}

	if resp.DeliveryPartner != nil {
		apiOrder.DeliveryPartner = &servers.DeliveryPartner{
			Id:   resp.DeliveryPartner.ID.Bytes(),
			Name: resp.DeliveryPartner.Name,
		}
	}

	return apiOrder
}

func fromLocationResponse(loc queries.LocationResponse) servers.Location {
	return servers.Location{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Address:   loc.Address,
	}
}

// fromDomainOrder maps a freshly created aggregate to its wire representation.
// Used by the create response, where no read model exists yet.
func fromDomainOrder(aggregate *order.Order) servers.Order {
	apiOrder := servers.Order{
		Id:               aggregate.ID().Bytes(),
		Status:           servers.OrderStatus(aggregate.Status().String()),
		BranchName:       aggregate.BranchName(),
		TotalPrice:       aggregate.TotalPrice(),
		Items:            make([]servers.OrderItem, 0, len(aggregate.Items())),
		DeliveryLocation: fromSnapshot(aggregate.DeliveryLocation()),
		PickupLocation:   fromSnapshot(aggregate.PickupLocation()),
		CreatedAt:        aggregate.CreatedAt(),
	}

	for _, item := range aggregate.Items() {
		apiOrder.Items = append(apiOrder.Items, servers.OrderItem{
			LineId: item.LineID(),
			Id:     item.ItemID(),
			Count:  item.Count(),
		})
	}

	return apiOrder
}

func fromSnapshot(snapshot order.LocationSnapshot) servers.Location {
	loc := servers.Location{Address: snapshot.Address()}
	if point := snapshot.Point(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		loc.Latitude = &latitude
		loc.Longitude = &longitude
	}

	return loc
}

// snapshotFromInput builds a courier location snapshot from an optional
// request payload. A nil input yields a nil snapshot; an input without an
// address gets the fallback address.
func snapshotFromInput(input *servers.LocationInput) (*order.LocationSnapshot, error) {
	if input == nil {
		return nil, nil
	}

	var point *kernel.GeoPoint
	if input.Latitude != nil && input.Longitude != nil {
		p, err := kernel.NewGeoPoint(*input.Latitude, *input.Longitude)
		if err != nil {
			return nil, err
		}

		point = &p
	}

	address := order.NoAddressFallback
	if input.Address != nil && *input.Address != "" {
		address = *input.Address
	}

	snapshot, err := order.NewLocationSnapshot(point, address)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
