package services

import (
	"sort"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
)

// PickupItem is one outstanding dirty-linen position at a property: an item
// identity plus the total quantity owed across all contributing orders.
type PickupItem struct {
	ItemID   string
	Name     string
	Quantity int
}

// PickupProjection is the derived, read-only view of what a courier is
// expected to retrieve when serving a property: the merged outstanding items
// and the source orders whose debt they represent.
//
// A projection carries no independent identity. It is a pure function of the
// current debt set and is valid only at the moment it was computed; before
// any settlement write it must be recomputed from fresh reads. It is never
// persisted alongside the authoritative order record.
type PickupProjection struct {
	Items      []PickupItem
	FromOrders []kernel.UUID
}

// IsEmpty reports whether there is nothing to retrieve.
func (p PickupProjection) IsEmpty() bool {
	return len(p.Items) == 0 && len(p.FromOrders) == 0
}

// PickupReconciler is the domain service that derives, from the full order
// set, which dirty-linen items are outstanding at each property and projects
// that debt onto the orders eligible to retrieve it.
//
// The reconciler is read-only and idempotent: running it any number of times
// over the same order set yields the same projections. It is cheap enough to
// re-run for every property on every change-feed tick, because the order set
// is bounded to daily/weekly volume.
type PickupReconciler struct {
	classifier *LinenClassifier
}

// NewPickupReconciler creates a reconciler with the standard linen classifier.
func NewPickupReconciler() *PickupReconciler {
	return &PickupReconciler{classifier: NewLinenClassifier()}
}

// DebtSet selects, from the given orders, those at the property that still
// owe dirty linen: status Delivered with pickupCompleted=false.
//
// The result is deterministically ordered by delivery time, then by order ID,
// so that repeated runs over the same order set produce identical merges.
func (r *PickupReconciler) DebtSet(orders []*order.Order, propertyID kernel.UUID) []*order.Order {
	debt := make([]*order.Order, 0)
	for _, o := range orders {
		if o.PropertyID().IsEqual(propertyID) && o.IsPickupDebtSource() {
			debt = append(debt, o)
		}
	}
	sortDebtSet(debt)
	return debt
}

// Merge filters every debt-set order's items through the linen classifier and
// sums quantities by item identity (same id and name) across all of them,
// yielding one outstanding list for the property plus the contributing order
// IDs.
//
// An order contributes to FromOrders only when at least one of its items is
// pickup-eligible; a delivered order consisting purely of consumables owes
// nothing.
func (r *PickupReconciler) Merge(debtSet []*order.Order) PickupProjection {
	type itemKey struct {
		id   string
		name string
	}

	items := make([]PickupItem, 0)
	index := make(map[itemKey]int)
	fromOrders := make([]kernel.UUID, 0)

	for _, o := range debtSet {
		contributed := false
		for _, item := range o.Items() {
			if !r.classifier.IsPickupEligible(item) {
				continue
			}
			contributed = true

			key := itemKey{id: item.ID(), name: item.Name()}
			if pos, ok := index[key]; ok {
				items[pos].Quantity += item.Quantity()
				continue
			}
			index[key] = len(items)
			items = append(items, PickupItem{
				ItemID:   item.ID(),
				Name:     item.Name(),
				Quantity: item.Quantity(),
			})
		}
		if contributed {
			fromOrders = append(fromOrders, o.ID())
		}
	}

	return PickupProjection{Items: items, FromOrders: fromOrders}
}

// ProjectionFor computes the current pickup projection for one property from
// the given order set: the debt-set selection followed by the merge. An empty
// debt set yields an empty projection, meaning "nothing to retrieve".
func (r *PickupReconciler) ProjectionFor(orders []*order.Order, propertyID kernel.UUID) PickupProjection {
	return r.Merge(r.DebtSet(orders, propertyID))
}

// Reconcile recomputes projections for every property represented in the
// order set and attaches each property's projection to every open
// (Pending/Assigned) order there that has includePickup enabled.
//
// Orders with includePickup=false never receive projected debt: their pickup
// is simply skipped and the debt persists for the next eligible order. A
// property with debt but no eligible upcoming order contributes nothing to
// the result; its debt stays outstanding until such an order appears.
//
// The returned map is keyed by order ID.
func (r *PickupReconciler) Reconcile(orders []*order.Order) map[kernel.UUID]PickupProjection {
	byProperty := make(map[kernel.UUID][]*order.Order)
	for _, o := range orders {
		byProperty[o.PropertyID()] = append(byProperty[o.PropertyID()], o)
	}

	projections := make(map[kernel.UUID]PickupProjection)
	for propertyID, propertyOrders := range byProperty {
		projection := r.ProjectionFor(propertyOrders, propertyID)
		for _, o := range propertyOrders {
			if !o.Status().IsOpen() || !o.IncludePickup() {
				continue
			}
			projections[o.ID()] = projection
		}
	}

	return projections
}

// sortDebtSet orders debt sources by delivery time, breaking ties by ID, so
// the merge result is stable across runs.
func sortDebtSet(debt []*order.Order) {
	sort.Slice(debt, func(i, j int) bool {
		di, dj := debt[i].DeliveredAt(), debt[j].DeliveredAt()
		switch {
		case di == nil && dj != nil:
			return true
		case di != nil && dj == nil:
			return false
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.Before(*dj)
		default:
			return debt[i].ID().String() < debt[j].ID().String()
		}
	})
}
