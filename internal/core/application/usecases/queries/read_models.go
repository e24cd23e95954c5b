package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Read models for the order query side. Rows map the storage schema directly;
// responses are what handlers return to the transport layer with customer,
// branch and delivery partner references expanded.

type orderRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	BranchID   uuid.UUID
	BranchName string
	TotalPrice float64
	Status     int

	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	DeliveryAddress   string

	PickupLatitude  *float64
	PickupLongitude *float64
	PickupAddress   string

	DeliveryPartnerID *uuid.UUID
	CourierLatitude   *float64
	CourierLongitude  *float64
	CourierAddress    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Items           []orderItemRow `gorm:"foreignKey:OrderID"`
	Customer        *customerRow   `gorm:"foreignKey:CustomerID"`
	Branch          *branchRow     `gorm:"foreignKey:BranchID"`
	DeliveryPartner *partnerRow    `gorm:"foreignKey:DeliveryPartnerID"`
}

func (orderRow) TableName() string {
	return "orders"
}

type orderItemRow struct {
	OrderID uuid.UUID
	LineID  int
	ItemID  string
	Count   int
}

func (orderItemRow) TableName() string {
	return "order_items"
}

type customerRow struct {
	ID            uuid.UUID
	LiveLatitude  *float64
	LiveLongitude *float64
	Address       string
}

func (customerRow) TableName() string {
	return "customers"
}

type branchRow struct {
	ID            uuid.UUID
	Name          string
	LiveLatitude  *float64
	LiveLongitude *float64
	Address       string
}

func (branchRow) TableName() string {
	return "branches"
}

type partnerRow struct {
	ID   uuid.UUID
	Name string
}

func (partnerRow) TableName() string {
	return "delivery_partners"
}

// LocationResponse is a point-in-time location with a human readable address.
type LocationResponse struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

// ItemResponse is a single order line.
type ItemResponse struct {
	LineID int
	ItemID string
	Count  int
}

// CustomerResponse is the expanded customer reference on an order.
type CustomerResponse struct {
	ID       kernel.UUID
	Location LocationResponse
}

// BranchResponse is the expanded branch reference on an order.
type BranchResponse struct {
	ID       kernel.UUID
	Name     string
	Location LocationResponse
}

// DeliveryPartnerResponse is the expanded delivery partner reference on an
// order. Present only once a partner has confirmed the order.
type DeliveryPartnerResponse struct {
	ID   kernel.UUID
	Name string
}

// OrderResponse is the full read model of an order: the order's own fields
// plus its expanded customer, branch and delivery partner references.
type OrderResponse struct {
	ID               kernel.UUID
	Status           order.Status
	BranchName       string
	TotalPrice       float64
	Items            []ItemResponse
	DeliveryLocation LocationResponse
	PickupLocation   LocationResponse
	CourierLocation  *LocationResponse
	Customer         *CustomerResponse
	Branch           *BranchResponse
	DeliveryPartner  *DeliveryPartnerResponse
	CreatedAt        time.Time
}

func toOrderResponse(row orderRow) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	status := order.Status(row.Status)
	if err = status.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:         orderID,
		Status:     status,
		BranchName: row.BranchName,
		TotalPrice: row.TotalPrice,
		Items:      make([]ItemResponse, 0, len(row.Items)),
		DeliveryLocation: LocationResponse{
			Latitude:  row.DeliveryLatitude,
			Longitude: row.DeliveryLongitude,
			Address:   row.DeliveryAddress,
		},
		PickupLocation: LocationResponse{
			Latitude:  row.PickupLatitude,
			Longitude: row.PickupLongitude,
			Address:   row.PickupAddress,
		},
		CreatedAt: row.CreatedAt,
	}

	for _, item := range row.Items {
		resp.Items = append(resp.Items, ItemResponse{
			LineID: item.LineID,
			ItemID: item.ItemID,
			Count:  item.Count,
		})
	}

	if row.CourierAddress != nil {
		resp.CourierLocation = &LocationResponse{
			Latitude:  row.CourierLatitude,
			Longitude: row.CourierLongitude,
			Address:   *row.CourierAddress,
		}
	}

	if row.Customer != nil {
		customerID, idErr := kernel.UUIDFromBytes(row.Customer.ID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}

		resp.Customer = &CustomerResponse{
			ID: customerID,
			Location: LocationResponse{
				Latitude:  row.Customer.LiveLatitude,
				Longitude: row.Customer.LiveLongitude,
				Address:   row.Customer.Address,
			},
		}
	}

	if row.Branch != nil {
		branchID, idErr := kernel.UUIDFromBytes(row.Branch.ID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}

		resp.Branch = &BranchResponse{
			ID:   branchID,
			Name: row.Branch.Name,
			Location: LocationResponse{
				Latitude:  row.Branch.LiveLatitude,
				Longitude: row.Branch.LiveLongitude,
				Address:   row.Branch.Address,
			},
		}
	}

	if row.DeliveryPartner != nil {
		partnerID, idErr := kernel.UUIDFromBytes(row.DeliveryPartner.ID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}

		resp.DeliveryPartner = &DeliveryPartnerResponse{
			ID:   partnerID,
			Name: row.DeliveryPartner.Name,
		}
	}

	return resp, nil
}
