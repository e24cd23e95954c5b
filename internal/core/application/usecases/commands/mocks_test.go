package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/branch"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/partner"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateWithStatusGuard(
	ctx context.Context, aggregate *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAvailableOlderThan(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(_ context.Context, _ *customer.Customer) error {
	return errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(_ context.Context, _ *branch.Branch) error {
	return errors.New("not implemented in mock")
}

func (m *MockBranchRepository) Update(_ context.Context, _ *branch.Branch) error {
	return errors.New("not implemented in mock")
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(_ context.Context, _ *partner.DeliveryPartner) error {
	return errors.New("not implemented in mock")
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockCreateOrderUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockPartnerOrderUoW struct{ mock.Mock }

func (m *MockPartnerOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPartnerOrderUoW) DeliveryPartnerRepository() ports.DeliveryPartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPartnerRepository)
}

type MockPartnerOrderUoWFactory struct{ mock.Mock }

func (m *MockPartnerOrderUoWFactory) Create() commands.PartnerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerOrderUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderNotifier) PublishTrackingUpdate(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem(0, "margherita", 2)
	require.NoError(t, err)

	return []order.Item{item}
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	deliveryLocation, err := order.NewLocationSnapshot(nil, "350 5th Ave")
	require.NoError(t, err)

	pickupLocation, err := order.NewLocationSnapshot(nil, order.NoAddressFallback)
	require.NoError(t, err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Downtown Branch",
		createTestItems(t),
		14.50,
		deliveryLocation,
		pickupLocation,
	)
	require.NoError(t, err)

	return testOrder
}

func createTestCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.7484, -73.9857)
	require.NoError(t, err)

	testCustomer, err := customer.NewCustomer(id, &point, "350 5th Ave")
	require.NoError(t, err)

	return testCustomer
}

func createTestBranch(t *testing.T, id kernel.UUID) *branch.Branch {
	t.Helper()

	point, err := kernel.NewGeoPoint(40.758, -73.9855)
	require.NoError(t, err)

	testBranch, err := branch.NewBranch(id, "Downtown Branch", &point, "1500 Broadway", nil)
	require.NoError(t, err)

	return testBranch
}

func createTestPartner(t *testing.T, id kernel.UUID) *partner.DeliveryPartner {
	t.Helper()

	testPartner, err := partner.NewDeliveryPartner(id, "Speedy")
	require.NoError(t, err)

	return testPartner
}
