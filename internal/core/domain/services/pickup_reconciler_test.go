package services_test

import (
	"testing"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, propertyID kernel.UUID, deliveredAt time.Time, items ...order.Item) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), propertyID, items, true, order.UrgencyNormal, deliveredAt.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, o.Claim(kernel.NewUUID(), deliveredAt.Add(-30*time.Minute)))
	require.NoError(t, o.Depart(deliveredAt.Add(-15*time.Minute)))
	require.NoError(t, o.Deliver(deliveredAt))
	return o
}

func pendingOrder(t *testing.T, propertyID kernel.UUID, includePickup bool) *order.Order {
	t.Helper()

	item, err := order.NewItem("sheet-queen", "Queen Sheet Set", 1, "bed-linen", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), propertyID, []order.Item{item}, includePickup, order.UrgencyNormal, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestDebtSet(t *testing.T) {
	reconciler := services.NewPickupReconciler()
	propertyID := kernel.NewUUID()
	now := time.Now().UTC()

	sheets, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
	require.NoError(t, err)

	t.Run("selects only delivered unsettled orders at the property", func(t *testing.T) {
		settled := deliveredOrder(t, propertyID, now, sheets)
		require.NoError(t, settled.CompletePickup(kernel.NewUUID(), now))

		owing := deliveredOrder(t, propertyID, now, sheets)
		elsewhere := deliveredOrder(t, kernel.NewUUID(), now, sheets)
		open := pendingOrder(t, propertyID, true)

		debt := reconciler.DebtSet([]*order.Order{settled, owing, elsewhere, open}, propertyID)

		require.Len(t, debt, 1)
		assert.True(t, debt[0].IsEqual(owing))
	})

	t.Run("orders debt by delivery time then id", func(t *testing.T) {
		later := deliveredOrder(t, propertyID, now.Add(time.Hour), sheets)
		earlier := deliveredOrder(t, propertyID, now, sheets)

		debt := reconciler.DebtSet([]*order.Order{later, earlier}, propertyID)

		require.Len(t, debt, 2)
		assert.True(t, debt[0].IsEqual(earlier))
		assert.True(t, debt[1].IsEqual(later))
	})
}

func TestMerge(t *testing.T) {
	reconciler := services.NewPickupReconciler()
	propertyID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("sums quantities for the same item across orders", func(t *testing.T) {
		sheetsA, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
		require.NoError(t, err)
		sheetsB, err := order.NewItem("sheet-queen", "Queen Sheet Set", 3, "bed-linen", "")
		require.NoError(t, err)
		towels, err := order.NewItem("towel-bath", "Bath Towel", 4, "bath-linen", "")
		require.NoError(t, err)

		first := deliveredOrder(t, propertyID, now, sheetsA, towels)
		second := deliveredOrder(t, propertyID, now.Add(time.Hour), sheetsB)

		projection := reconciler.Merge([]*order.Order{first, second})

		require.Len(t, projection.Items, 2)
		assert.Equal(t, services.PickupItem{ItemID: "sheet-queen", Name: "Queen Sheet Set", Quantity: 5}, projection.Items[0])
		assert.Equal(t, services.PickupItem{ItemID: "towel-bath", Name: "Bath Towel", Quantity: 4}, projection.Items[1])
		assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, projection.FromOrders)
	})

	t.Run("filters consumables through the classifier", func(t *testing.T) {
		sheets, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
		require.NoError(t, err)
		soap, err := order.NewItem("soap-bar", "Hand Soap", 6, "", "")
		require.NoError(t, err)

		o := deliveredOrder(t, propertyID, now, sheets, soap)

		projection := reconciler.Merge([]*order.Order{o})

		require.Len(t, projection.Items, 1)
		assert.Equal(t, "sheet-queen", projection.Items[0].ItemID)
	})

	t.Run("pure consumable order owes nothing and is not a source", func(t *testing.T) {
		soap, err := order.NewItem("soap-bar", "Hand Soap", 6, "", "")
		require.NoError(t, err)
		kit, err := order.NewItem("kit-1", "Welcome Kit", 1, "courtesy-kit", "")
		require.NoError(t, err)

		o := deliveredOrder(t, propertyID, now, soap, kit)

		projection := reconciler.Merge([]*order.Order{o})

		assert.True(t, projection.IsEmpty())
		assert.Empty(t, projection.FromOrders)
	})

	t.Run("merge is deterministic over the same debt set", func(t *testing.T) {
		sheets, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
		require.NoError(t, err)
		towels, err := order.NewItem("towel-bath", "Bath Towel", 4, "bath-linen", "")
		require.NoError(t, err)

		first := deliveredOrder(t, propertyID, now, sheets)
		second := deliveredOrder(t, propertyID, now.Add(time.Hour), towels)
		debtSet := reconciler.DebtSet([]*order.Order{second, first}, propertyID)

		one := reconciler.Merge(debtSet)
		two := reconciler.Merge(debtSet)

		assert.Equal(t, one, two)
	})
}

func TestProjectionFor(t *testing.T) {
	reconciler := services.NewPickupReconciler()
	propertyID := kernel.NewUUID()

	t.Run("empty debt set yields empty projection", func(t *testing.T) {
		projection := reconciler.ProjectionFor(nil, propertyID)

		assert.True(t, projection.IsEmpty())
	})
}

func TestReconcile(t *testing.T) {
	reconciler := services.NewPickupReconciler()
	now := time.Now().UTC()

	sheets := func(t *testing.T) order.Item {
		item, err := order.NewItem("sheet-queen", "Queen Sheet Set", 2, "bed-linen", "")
		require.NoError(t, err)
		return item
	}

	t.Run("attaches property debt to every open pickup order there", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		source := deliveredOrder(t, propertyID, now, sheets(t))
		openA := pendingOrder(t, propertyID, true)
		openB := pendingOrder(t, propertyID, true)

		projections := reconciler.Reconcile([]*order.Order{source, openA, openB})

		require.Len(t, projections, 2)
		assert.Equal(t, projections[openA.ID()], projections[openB.ID()])
		assert.Equal(t, []kernel.UUID{source.ID()}, projections[openA.ID()].FromOrders)
	})

	t.Run("pure delivery orders never receive projected debt", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		source := deliveredOrder(t, propertyID, now, sheets(t))
		pureDelivery := pendingOrder(t, propertyID, false)

		projections := reconciler.Reconcile([]*order.Order{source, pureDelivery})

		_, ok := projections[pureDelivery.ID()]
		assert.False(t, ok)
	})

	t.Run("debt does not leak across properties", func(t *testing.T) {
		propertyA := kernel.NewUUID()
		propertyB := kernel.NewUUID()
		source := deliveredOrder(t, propertyA, now, sheets(t))
		openElsewhere := pendingOrder(t, propertyB, true)

		projections := reconciler.Reconcile([]*order.Order{source, openElsewhere})

		projection, ok := projections[openElsewhere.ID()]
		require.True(t, ok)
		assert.True(t, projection.IsEmpty())
	})

	t.Run("debt with no eligible upcoming order stays unprojected", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		source := deliveredOrder(t, propertyID, now, sheets(t))

		projections := reconciler.Reconcile([]*order.Order{source})

		assert.Empty(t, projections)
	})

	t.Run("reconcile is idempotent", func(t *testing.T) {
		propertyID := kernel.NewUUID()
		source := deliveredOrder(t, propertyID, now, sheets(t))
		open := pendingOrder(t, propertyID, true)
		orders := []*order.Order{source, open}

		one := reconciler.Reconcile(orders)
		two := reconciler.Reconcile(orders)

		assert.Equal(t, one, two)
	})
}
