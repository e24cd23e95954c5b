// Package http implements the inbound HTTP adapter: request binding, identity
// resolution and translation between the wire format and application commands
// and queries.
package http

import (
	"context"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrdersHandler serves the order listing read side.
type GetOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error)
}

// GetOrderByIDHandler serves single order lookups on the read side.
type GetOrderByIDHandler interface {
	Handle(ctx context.Context, query queries.GetOrderByIDQuery) (queries.OrderResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrdersHandler    GetOrdersHandler
	getOrderByIDHandler GetOrderByIDHandler

	metrics *metrics.OrderMetrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrdersHandler GetOrdersHandler,
	getOrderByIDHandler GetOrderByIDHandler,
	orderMetrics *metrics.OrderMetrics,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		metrics:                  orderMetrics,
	}
}

// GetOrders handles GET /api/v1/orders - lists orders matching the filters.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	customerID, err := optionalUUID(params.CustomerId)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := optionalUUID(params.DeliveryPartnerId)
	if err != nil {
		return respondError(ctx, err)
	}

	branchID, err := optionalUUID(params.BranchId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(statusFilter, customerID, partnerID, branchID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, orderResp := range orders {
		response = append(response, fromQueryResponse(orderResp))
	}

	return ctx.JSON(http.StatusOK, servers.OrderListResponse{
		Message: "Orders retrieved successfully",
		Orders:  response,
	})
}

// CreateOrder handles POST /api/v1/orders - creates an order for the
// authenticated customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, ok := userID(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	var request servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "request body is not valid JSON")
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, newItem := range request.Items {
		item, err := order.NewItem(newItem.Id, newItem.Item, newItem.Count)
		if err != nil {
			return respondError(ctx, err)
		}

		items = append(items, item)
	}

	branchID, err := kernel.UUIDFromBytes(request.BranchId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		branchID,
		items,
		request.TotalPrice,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.metrics.OrderCreated()
	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Message: "Order created successfully",
		Order:   fromDomainOrder(createdOrder),
	})
}

// GetOrderById handles GET /api/v1/orders/{orderId} - returns one order with
// its references expanded.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderResp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderResponse{
		Message: "Order retrieved successfully",
		Order:   fromQueryResponse(orderResp),
	})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - confirms an
// available order on behalf of the authenticated delivery partner.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	partnerID, ok := userID(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	var request servers.ConfirmOrderJSONRequestBody
	if ctx.Request().ContentLength > 0 {
		if bindErr := ctx.Bind(&request); bindErr != nil {
			return respondBadRequest(ctx, "request body is not valid JSON")
		}
	}

	courierLocation, err := snapshotFromInput(request.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, partnerID, courierLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.OrderConfirmed()
	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Message: "Order confirmed successfully",
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - applies a
// live tracking update from the assigned delivery partner.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	partnerID, ok := userID(ctx)
	if !ok {
		return respondUnauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return respondError(ctx, err)
	}

	var request servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "request body is not valid JSON")
	}

	status, err := order.StatusFromString(string(request.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	courierLocation, err := snapshotFromInput(request.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, partnerID, status, courierLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.OrderStatusUpdated()
	return ctx.JSON(http.StatusOK, servers.MessageResponse{
		Message: "Order status updated successfully",
	})
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func respondUnauthorized(ctx echo.Context) error {
	details := "caller identity is missing"
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
		Details:    &details,
	})
}
