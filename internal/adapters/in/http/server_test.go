package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/branch"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/partner"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	stored   *order.Order
	guardErr error
}

func (r *stubOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.stored = aggregate
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, _ *order.Order) error { return nil }

func (r *stubOrderRepo) UpdateWithStatusGuard(_ context.Context, _ *order.Order, _ order.Status) error {
	return r.guardErr
}

func (r *stubOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if r.stored == nil || !r.stored.ID().IsEqual(id) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.stored, nil
}

func (r *stubOrderRepo) GetAllAvailableOlderThan(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, nil
}

type stubCustomerRepo struct{ stored *customer.Customer }

func (r *stubCustomerRepo) Add(_ context.Context, _ *customer.Customer) error { return nil }

func (r *stubCustomerRepo) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if r.stored == nil || !r.stored.ID().IsEqual(id) {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return r.stored, nil
}

type stubBranchRepo struct{ stored *branch.Branch }

func (r *stubBranchRepo) Add(_ context.Context, _ *branch.Branch) error    { return nil }
func (r *stubBranchRepo) Update(_ context.Context, _ *branch.Branch) error { return nil }

func (r *stubBranchRepo) Get(_ context.Context, id kernel.UUID) (*branch.Branch, error) {
	if r.stored == nil || !r.stored.ID().IsEqual(id) {
		return nil, errs.NewObjectNotFoundError("branch", id.String())
	}
	return r.stored, nil
}

type stubPartnerRepo struct{ stored *partner.DeliveryPartner }

func (r *stubPartnerRepo) Add(_ context.Context, _ *partner.DeliveryPartner) error { return nil }

func (r *stubPartnerRepo) Get(_ context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if r.stored == nil || !r.stored.ID().IsEqual(id) {
		return nil, errs.NewObjectNotFoundError("delivery partner", id.String())
	}
	return r.stored, nil
}

type stubUoW struct {
	orders    *stubOrderRepo
	customers *stubCustomerRepo
	branches  *stubBranchRepo
	partners  *stubPartnerRepo
}

func (u *stubUoW) Begin(_ context.Context) error    { return nil }
func (u *stubUoW) Commit(_ context.Context) error   { return nil }
func (u *stubUoW) Rollback(_ context.Context) error { return nil }

func (u *stubUoW) OrderRepository() ports.OrderRepository       { return u.orders }
func (u *stubUoW) CustomerRepository() ports.CustomerRepository { return u.customers }
func (u *stubUoW) BranchRepository() ports.BranchRepository     { return u.branches }

func (u *stubUoW) DeliveryPartnerRepository() ports.DeliveryPartnerRepository { return u.partners }

type stubCreateOrderUoWFactory struct{ uow *stubUoW }

func (f stubCreateOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }

type stubPartnerOrderUoWFactory struct{ uow *stubUoW }

func (f stubPartnerOrderUoWFactory) Create() commands.PartnerOrderUoW { return f.uow }

type stubGetOrdersHandler struct {
	received queries.GetOrdersQuery
	orders   []queries.OrderResponse
}

func (h *stubGetOrdersHandler) Handle(_ context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error) {
	h.received = query
	return h.orders, nil
}

type stubGetOrderByIDHandler struct {
	order queries.OrderResponse
	err   error
}

func (h *stubGetOrderByIDHandler) Handle(_ context.Context, _ queries.GetOrderByIDQuery) (queries.OrderResponse, error) {
	if h.err != nil {
		return queries.OrderResponse{}, h.err
	}
	return h.order, nil
}

type stubNotifier struct {
	confirmed int
	tracked   int
}

func (n *stubNotifier) PublishOrderConfirmed(_ context.Context, _ *order.Order) error {
	n.confirmed++
	return nil
}

func (n *stubNotifier) PublishTrackingUpdate(_ context.Context, _ *order.Order) error {
	n.tracked++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serverFixture struct {
	server    *Server
	uow       *stubUoW
	notifier  *stubNotifier
	listQuery *stubGetOrdersHandler
	getQuery  *stubGetOrderByIDHandler
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	uow := &stubUoW{
		orders:    &stubOrderRepo{},
		customers: &stubCustomerRepo{},
		branches:  &stubBranchRepo{},
		partners:  &stubPartnerRepo{},
	}
	notifier := &stubNotifier{}
	listQuery := &stubGetOrdersHandler{}
	getQuery := &stubGetOrderByIDHandler{}

	orderMetrics := metrics.NewOrderMetricsWithRegisterer(prometheus.NewRegistry())
	server := NewServer(
		commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow: uow}),
		commands.NewConfirmOrderCommandHandler(stubPartnerOrderUoWFactory{uow: uow}, notifier, testLogger()),
		commands.NewUpdateOrderStatusCommandHandler(stubPartnerOrderUoWFactory{uow: uow}, notifier, testLogger()),
		listQuery,
		getQuery,
		orderMetrics,
	)

	return &serverFixture{
		server:    server,
		uow:       uow,
		notifier:  notifier,
		listQuery: listQuery,
		getQuery:  getQuery,
	}
}

func (f *serverFixture) seedCustomer(t *testing.T) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	point, err := kernel.NewGeoPoint(40.7484, -73.9857)
	require.NoError(t, err)

	seeded, err := customer.NewCustomer(id, &point, "350 5th Ave")
	require.NoError(t, err)

	f.uow.customers.stored = seeded
	return id
}

func (f *serverFixture) seedBranch(t *testing.T) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	point, err := kernel.NewGeoPoint(40.758, -73.9855)
	require.NoError(t, err)

	seeded, err := branch.NewBranch(id, "Downtown Branch", &point, "1500 Broadway", nil)
	require.NoError(t, err)

	f.uow.branches.stored = seeded
	return id
}

func (f *serverFixture) seedPartner(t *testing.T) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	seeded, err := partner.NewDeliveryPartner(id, "Speedy")
	require.NoError(t, err)

	f.uow.partners.stored = seeded
	return id
}

func (f *serverFixture) seedAvailableOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(0, "margherita", 2)
	require.NoError(t, err)

	deliveryLocation, err := order.NewLocationSnapshot(nil, "350 5th Ave")
	require.NoError(t, err)

	pickupLocation, err := order.NewLocationSnapshot(nil, "1500 Broadway")
	require.NoError(t, err)

	seeded, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Downtown Branch",
		[]order.Item{item},
		14.50,
		deliveryLocation,
		pickupLocation,
	)
	require.NoError(t, err)

	f.uow.orders.stored = seeded
	return seeded
}

func sampleReadModel(t *testing.T) queries.OrderResponse {
	t.Helper()

	return queries.OrderResponse{
		ID:               kernel.NewUUID(),
		Status:           order.Available,
		BranchName:       "Downtown Branch",
		TotalPrice:       14.50,
		Items:            []queries.ItemResponse{{LineID: 1, ItemID: "margherita", Count: 2}},
		DeliveryLocation: queries.LocationResponse{Address: "350 5th Ave"},
		PickupLocation:   queries.LocationResponse{Address: "1500 Broadway"},
		CreatedAt:        time.Now().UTC(),
	}
}

func newJSONContext(t *testing.T, method, target, body string, caller *kernel.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	if caller != nil {
		ctx.Set(userIDContextKey, *caller)
	}

	return ctx, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()

	var apiErr servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestServer_CreateOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)
	customerID := fixture.seedCustomer(t)
	branchID := fixture.seedBranch(t)

	body := `{"branchId":"` + branchID.String() + `","items":[{"id":7,"item":"margherita","count":2}],"totalPrice":14.5}`
	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders", body, &customerID)

	require.NoError(t, fixture.server.CreateOrder(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "Order created successfully", response.Message)
	assert.Equal(t, servers.Available, response.Order.Status)
	assert.Equal(t, "Downtown Branch", response.Order.BranchName)
	assert.Equal(t, "350 5th Ave", response.Order.DeliveryLocation.Address)
	assert.Equal(t, "1500 Broadway", response.Order.PickupLocation.Address)
	require.Len(t, response.Order.Items, 1)
	assert.Equal(t, 7, response.Order.Items[0].LineId)
	assert.Equal(t, "margherita", response.Order.Items[0].Id)

	require.NotNil(t, fixture.uow.orders.stored)
	assert.Equal(t, order.Available, fixture.uow.orders.stored.Status())
	assert.True(t, response.Order.CreatedAt.Equal(fixture.uow.orders.stored.CreatedAt()))
}

func TestServer_CreateOrder_MissingIdentity(t *testing.T) {
	fixture := newServerFixture(t)
	branchID := fixture.seedBranch(t)

	body := `{"branchId":"` + branchID.String() + `","items":[{"id":1,"item":"margherita","count":2}],"totalPrice":14.5}`
	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders", body, nil)

	require.NoError(t, fixture.server.CreateOrder(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec).Message)
}

func TestServer_CreateOrder_UnknownBranch(t *testing.T) {
	fixture := newServerFixture(t)
	customerID := fixture.seedCustomer(t)

	body := `{"branchId":"` + kernel.NewUUID().String() + `","items":[{"id":1,"item":"margherita","count":2}],"totalPrice":14.5}`
	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders", body, &customerID)

	require.NoError(t, fixture.server.CreateOrder(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decodeError(t, rec).Message)
}

func TestServer_CreateOrder_NegativeTotalPrice(t *testing.T) {
	fixture := newServerFixture(t)
	customerID := fixture.seedCustomer(t)
	branchID := fixture.seedBranch(t)

	body := `{"branchId":"` + branchID.String() + `","items":[{"id":1,"item":"margherita","count":2}],"totalPrice":-5}`
	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders", body, &customerID)

	require.NoError(t, fixture.server.CreateOrder(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request", decodeError(t, rec).Message)
}

func TestServer_GetOrders_AnonymousWithPartnerFilter(t *testing.T) {
	fixture := newServerFixture(t)
	fixture.listQuery.orders = []queries.OrderResponse{sampleReadModel(t)}
	partnerID := kernel.NewUUID()

	e := echo.New()
	group := e.Group("/api/v1", IdentityMiddleware())
	servers.RegisterHandlers(group, fixture.server)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?deliveryPartnerId="+partnerID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Orders retrieved successfully", response.Message)
	require.Len(t, response.Orders, 1)
	assert.Equal(t, "Downtown Branch", response.Orders[0].BranchName)

	require.NotNil(t, fixture.listQuery.received.PartnerID())
	assert.True(t, fixture.listQuery.received.PartnerID().IsEqual(partnerID))
}

func TestServer_GetOrders_EmptyResult(t *testing.T) {
	fixture := newServerFixture(t)

	ctx, rec := newJSONContext(t, http.MethodGet, "/api/v1/orders", "", nil)

	require.NoError(t, fixture.server.GetOrders(ctx, servers.GetOrdersParams{}))
	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Orders retrieved successfully", response.Message)
	assert.Empty(t, response.Orders)
}

func TestServer_GetOrderById_Success(t *testing.T) {
	fixture := newServerFixture(t)
	stored := sampleReadModel(t)
	fixture.getQuery.order = stored

	ctx, rec := newJSONContext(t, http.MethodGet, "/api/v1/orders/"+stored.ID.String(), "", nil)

	require.NoError(t, fixture.server.GetOrderById(ctx, stored.ID.Bytes()))
	require.Equal(t, http.StatusOK, rec.Code)

	var response servers.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Order retrieved successfully", response.Message)
	assert.Equal(t, "Downtown Branch", response.Order.BranchName)
	require.Len(t, response.Order.Items, 1)
	assert.Equal(t, 1, response.Order.Items[0].LineId)
}

func TestServer_GetOrderById_NotFound(t *testing.T) {
	fixture := newServerFixture(t)
	missingID := kernel.NewUUID()
	fixture.getQuery.err = errs.NewObjectNotFoundError("order", missingID.String())

	ctx, rec := newJSONContext(t, http.MethodGet, "/api/v1/orders/"+missingID.String(), "", nil)

	require.NoError(t, fixture.server.GetOrderById(ctx, missingID.Bytes()))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", decodeError(t, rec).Message)
}

func TestServer_ConfirmOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	availableOrder := fixture.seedAvailableOrder(t)

	body := `{"location":{"latitude":40.7527,"longitude":-73.9772,"address":"89 E 42nd St"}}`
	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders/"+availableOrder.ID().String()+"/confirm", body, &partnerID)

	require.NoError(t, fixture.server.ConfirmOrder(ctx, availableOrder.ID().Bytes()))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, order.Confirmed, availableOrder.Status())
	require.NotNil(t, availableOrder.CourierLocation())
	assert.Equal(t, "89 E 42nd St", availableOrder.CourierLocation().Address())
	assert.Equal(t, 1, fixture.notifier.confirmed)
}

func TestServer_ConfirmOrder_NoBody(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	availableOrder := fixture.seedAvailableOrder(t)

	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders/"+availableOrder.ID().String()+"/confirm", "", &partnerID)

	require.NoError(t, fixture.server.ConfirmOrder(ctx, availableOrder.ID().Bytes()))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, order.Confirmed, availableOrder.Status())
	assert.Nil(t, availableOrder.CourierLocation())
}

func TestServer_ConfirmOrder_AlreadyConfirmed(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	confirmedOrder := fixture.seedAvailableOrder(t)
	require.NoError(t, confirmedOrder.Confirm(kernel.NewUUID(), nil))

	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders/"+confirmedOrder.ID().String()+"/confirm", "", &partnerID)

	require.NoError(t, fixture.server.ConfirmOrder(ctx, confirmedOrder.ID().Bytes()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fixture.notifier.confirmed)
}

func TestServer_ConfirmOrder_LostRace(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	availableOrder := fixture.seedAvailableOrder(t)
	fixture.uow.orders.guardErr = errs.NewVersionIsInvalidError("order status",
		errs.ErrVersionIsInvalid)

	ctx, rec := newJSONContext(t, http.MethodPost, "/api/v1/orders/"+availableOrder.ID().String()+"/confirm", "", &partnerID)

	require.NoError(t, fixture.server.ConfirmOrder(ctx, availableOrder.ID().Bytes()))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Order was modified concurrently", decodeError(t, rec).Message)
	assert.Equal(t, 0, fixture.notifier.confirmed)
}

func TestServer_UpdateOrderStatus_Success(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	trackedOrder := fixture.seedAvailableOrder(t)
	require.NoError(t, trackedOrder.Confirm(partnerID, nil))

	body := `{"status":"arriving","location":{"latitude":40.7527,"longitude":-73.9772,"address":"89 E 42nd St"}}`
	ctx, rec := newJSONContext(t, http.MethodPatch, "/api/v1/orders/"+trackedOrder.ID().String()+"/status", body, &partnerID)

	require.NoError(t, fixture.server.UpdateOrderStatus(ctx, trackedOrder.ID().Bytes()))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, order.Arriving, trackedOrder.Status())
	assert.Equal(t, 1, fixture.notifier.tracked)
}

func TestServer_UpdateOrderStatus_WrongPartner(t *testing.T) {
	fixture := newServerFixture(t)
	callerID := fixture.seedPartner(t)
	trackedOrder := fixture.seedAvailableOrder(t)
	require.NoError(t, trackedOrder.Confirm(kernel.NewUUID(), nil))

	body := `{"status":"arriving"}`
	ctx, rec := newJSONContext(t, http.MethodPatch, "/api/v1/orders/"+trackedOrder.ID().String()+"/status", body, &callerID)

	require.NoError(t, fixture.server.UpdateOrderStatus(ctx, trackedOrder.ID().Bytes()))
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Order is assigned to another delivery partner", decodeError(t, rec).Message)
}

func TestServer_UpdateOrderStatus_UnknownStatusValue(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)
	trackedOrder := fixture.seedAvailableOrder(t)
	require.NoError(t, trackedOrder.Confirm(partnerID, nil))

	body := `{"status":"cooking"}`
	ctx, rec := newJSONContext(t, http.MethodPatch, "/api/v1/orders/"+trackedOrder.ID().String()+"/status", body, &partnerID)

	require.NoError(t, fixture.server.UpdateOrderStatus(ctx, trackedOrder.ID().Bytes()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateOrderStatus_OrderNotFound(t *testing.T) {
	fixture := newServerFixture(t)
	partnerID := fixture.seedPartner(t)

	missingID := kernel.NewUUID()
	body := `{"status":"arriving"}`
	ctx, rec := newJSONContext(t, http.MethodPatch, "/api/v1/orders/"+missingID.String()+"/status", body, &partnerID)

	require.NoError(t, fixture.server.UpdateOrderStatus(ctx, missingID.Bytes()))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
