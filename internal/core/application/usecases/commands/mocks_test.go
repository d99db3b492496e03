package commands_test

import (
	"context"
	"testing"
	"time"

	"linenflow/internal/core/application/usecases/commands"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"

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

func (m *MockOrderRepository) UpdateClaim(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateSettlement(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnsettledDelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDebtSet(ctx context.Context, propertyID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPickingByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// passthroughUoW wires a single repository mock behind a unit of work whose
// transaction calls always succeed. Handlers that scatter over several
// transactions reuse one of these per Create call.
func passthroughUoW(repo *MockOrderRepository) *MockOrderUoW {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	return uow
}

func passthroughFactory(repo *MockOrderRepository) *MockOrderUoWFactory {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(passthroughUoW(repo))
	return factory
}

func testItems(t *testing.T) []order.Item {
	t.Helper()

	sheets, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
	require.NoError(t, err)
	return []order.Item{sheets}
}

func testPendingOrder(t *testing.T, propertyID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), propertyID, testItems(t), true, order.UrgencyNormal, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testPickingOrder(t *testing.T, propertyID, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := testPendingOrder(t, propertyID)
	require.NoError(t, o.Claim(courierID, time.Now().UTC()))
	return o
}

func testInTransitOrder(t *testing.T, propertyID, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := testPickingOrder(t, propertyID, courierID)
	require.NoError(t, o.Depart(time.Now().UTC()))
	return o
}

func testPureDeliveryInTransitOrder(t *testing.T, propertyID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), propertyID, testItems(t), false, order.UrgencyNormal, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, o.Claim(kernel.NewUUID(), time.Now().UTC()))
	require.NoError(t, o.Depart(time.Now().UTC()))
	return o
}

func testDeliveredOrder(t *testing.T, propertyID kernel.UUID) *order.Order {
	t.Helper()

	o := testInTransitOrder(t, propertyID, kernel.NewUUID())
	require.NoError(t, o.Deliver(time.Now().UTC()))
	return o
}
