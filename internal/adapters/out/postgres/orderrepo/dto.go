// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, customer, branch and delivery partner.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	BranchID   uuid.UUID `gorm:"type:uuid;index"`
	BranchName string
	TotalPrice float64
	Status     int `gorm:"index"`

	DeliveryLocation SnapshotDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PickupLocation   SnapshotDTO `gorm:"embedded;embeddedPrefix:pickup_"`

	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	CourierLatitude   *float64
	CourierLongitude  *float64
	CourierAddress    *string

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SnapshotDTO represents an embedded location snapshot within the order table.
// Coordinates are nullable because a snapshot may carry only an address.
type SnapshotDTO struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

// OrderItemDTO represents a single order line in the order_items table.
// Lines are identified by order ID plus line ID and share the order's lifecycle.
type OrderItemDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID  int       `gorm:"primaryKey;autoIncrement:false"`
	ItemID  string
	Count   int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional delivery partner assignment
// and courier location.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		BranchID:          aggregate.BranchID().Bytes(),
		BranchName:        aggregate.BranchName(),
		TotalPrice:        aggregate.TotalPrice(),
		Status:            int(aggregate.Status()),
		DeliveryLocation:  snapshotToDTO(aggregate.DeliveryLocation()),
		PickupLocation:    snapshotToDTO(aggregate.PickupLocation()),
		DeliveryPartnerID: partnerID,
		Items:             make([]OrderItemDTO, 0, len(aggregate.Items())),
		CreatedAt:         aggregate.CreatedAt(),
	}

	if courierLocation := aggregate.CourierLocation(); courierLocation != nil {
		snapshot := snapshotToDTO(*courierLocation)
		dto.CourierLatitude = snapshot.Latitude
		dto.CourierLongitude = snapshot.Longitude
		dto.CourierAddress = &snapshot.Address
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID: dto.ID,
			LineID:  item.LineID(),
			ItemID:  item.ItemID(),
			Count:   item.Count(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, partner assignment and
// courier location using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.LineID, itemDTO.ItemID, itemDTO.Count)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	deliveryLocation, err := snapshotFromDTO(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	pickupLocation, err := snapshotFromDTO(dto.PickupLocation)
	if err != nil {
		return nil, err
	}

	var courierLocation *order.LocationSnapshot
	if dto.CourierAddress != nil {
		snapshot, courierErr := snapshotFromDTO(SnapshotDTO{
			Latitude:  dto.CourierLatitude,
			Longitude: dto.CourierLongitude,
			Address:   *dto.CourierAddress,
		})
		if courierErr != nil {
			return nil, courierErr
		}

		courierLocation = &snapshot
	}

	return order.RestoreOrder(
		id,
		customerID,
		branchID,
		dto.BranchName,
		items,
		dto.TotalPrice,
		deliveryLocation,
		pickupLocation,
		order.Status(dto.Status),
		partnerID,
		courierLocation,
		dto.CreatedAt,
	)
}

func snapshotToDTO(snapshot order.LocationSnapshot) SnapshotDTO {
	dto := SnapshotDTO{Address: snapshot.Address()}
	if point := snapshot.Point(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

func snapshotFromDTO(dto SnapshotDTO) (order.LocationSnapshot, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return order.LocationSnapshot{}, err
		}

		point = &p
	}

	return order.NewLocationSnapshot(point, dto.Address)
}
