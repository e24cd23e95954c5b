package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders from the database with customer,
// branch and delivery partner references expanded in a single round of
// preloads.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all matching orders, newest first.
// Filters combine with AND; an order matches when it satisfies every supplied
// filter. No filters means all orders.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_id") }).
		Preload("Customer").
		Preload("Branch").
		Preload("DeliveryPartner")

	if status := query.Status(); status != nil {
		tx = tx.Where("orders.status = ?", int(*status))
	}

	if customerID := query.CustomerID(); customerID != nil {
		tx = tx.Where("orders.customer_id = ?", customerID.String())
	}

	if partnerID := query.PartnerID(); partnerID != nil {
		tx = tx.Where("orders.delivery_partner_id = ?", partnerID.String())
	}

	if branchID := query.BranchID(); branchID != nil {
		tx = tx.Where("orders.branch_id = ?", branchID.String())
	}

	var rows []orderRow
	if err := tx.Order("orders.created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orderResp, err := toOrderResponse(row)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	return orders, nil
}
