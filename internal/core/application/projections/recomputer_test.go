package projections_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"linenflow/internal/core/application/projections"
	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

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

func newOpenOrder(t *testing.T, propertyID kernel.UUID) *order.Order {
	t.Helper()
	towel, err := order.NewItem("towel-bath", "Bath Towel", 4, "bath-linen", "linen")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), propertyID, []order.Item{towel}, true, order.UrgencyNormal, time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func newDebtSource(t *testing.T, propertyID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := newOpenOrder(t, propertyID)
	now := time.Now().UTC()
	require.NoError(t, aggregate.Claim(kernel.NewUUID(), now))
	require.NoError(t, aggregate.Depart(now))
	require.NoError(t, aggregate.Deliver(now))
	return aggregate
}

func TestNewRecomputer(t *testing.T) {
	store := projections.NewStore(nil, slog.Default())
	reconciler := services.NewPickupReconciler()

	t.Run("should require an order repository", func(t *testing.T) {
		_, err := projections.NewRecomputer(nil, reconciler, store)
		assert.Error(t, err)
	})

	t.Run("should require a reconciler", func(t *testing.T) {
		_, err := projections.NewRecomputer(&MockOrderRepository{}, nil, store)
		assert.Error(t, err)
	})

	t.Run("should require a store", func(t *testing.T) {
		_, err := projections.NewRecomputer(&MockOrderRepository{}, reconciler, nil)
		assert.Error(t, err)
	})
}

func TestRecomputer_Recompute(t *testing.T) {
	t.Run("should project outstanding debt onto open orders", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		open := newOpenOrder(t, propertyID)
		debt := newDebtSource(t, propertyID)

		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetAllOpen", mock.Anything).Return([]*order.Order{open}, nil).Once()
		orderRepo.On("GetAllUnsettledDelivered", mock.Anything).Return([]*order.Order{debt}, nil).Once()

		store := projections.NewStore(nil, slog.Default())
		recomputer, err := projections.NewRecomputer(orderRepo, services.NewPickupReconciler(), store)
		require.NoError(t, err)

		require.NoError(t, recomputer.Recompute(context.Background()))

		projection, ok := store.Get(open.ID())
		require.True(t, ok)
		require.Len(t, projection.Items, 1)
		assert.Equal(t, services.PickupItem{ItemID: "towel-bath", Name: "Bath Towel", Quantity: 4}, projection.Items[0])
		assert.Equal(t, []kernel.UUID{debt.ID()}, projection.FromOrders)
		orderRepo.AssertExpectations(t)
	})

	t.Run("should replace projections for orders that left the open state", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		open := newOpenOrder(t, propertyID)
		debt := newDebtSource(t, propertyID)

		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetAllOpen", mock.Anything).Return([]*order.Order{open}, nil).Once()
		orderRepo.On("GetAllUnsettledDelivered", mock.Anything).Return([]*order.Order{debt}, nil).Once()
		orderRepo.On("GetAllOpen", mock.Anything).Return([]*order.Order{}, nil).Once()
		orderRepo.On("GetAllUnsettledDelivered", mock.Anything).Return([]*order.Order{debt}, nil).Once()

		store := projections.NewStore(nil, slog.Default())
		recomputer, err := projections.NewRecomputer(orderRepo, services.NewPickupReconciler(), store)
		require.NoError(t, err)

		require.NoError(t, recomputer.Recompute(context.Background()))
		require.Equal(t, 1, store.Len())

		require.NoError(t, recomputer.Recompute(context.Background()))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("should propagate repository read errors", func(t *testing.T) {
		readErr := errors.New("connection reset")

		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetAllOpen", mock.Anything).Return(nil, readErr).Once()

		store := projections.NewStore(nil, slog.Default())
		recomputer, err := projections.NewRecomputer(orderRepo, services.NewPickupReconciler(), store)
		require.NoError(t, err)

		err = recomputer.Recompute(context.Background())
		assert.ErrorIs(t, err, readErr)
		orderRepo.AssertNotCalled(t, "GetAllUnsettledDelivered", mock.Anything)
	})
}
