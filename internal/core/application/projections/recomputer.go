package projections

import (
	"context"

	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/metrics"
)

// Recomputer rebuilds every pickup projection from the current order
// collection. The whole computation is idempotent: running it twice against
// unchanged orders yields identical projections, which is what makes both
// the periodic sweep and the change-feed trigger safe to fire at will.
type Recomputer struct {
	orderRepository ports.OrderRepository
	reconciler      *services.PickupReconciler
	store           *Store
}

// NewRecomputer wires the recomputer to its repository, reconciliation
// engine and target store.
func NewRecomputer(
	orderRepository ports.OrderRepository,
	reconciler *services.PickupReconciler,
	store *Store,
) (*Recomputer, error) {
	if orderRepository == nil {
		return nil, errs.NewValueIsRequiredError("orderRepository")
	}
	if reconciler == nil {
		return nil, errs.NewValueIsRequiredError("reconciler")
	}
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	return &Recomputer{
		orderRepository: orderRepository,
		reconciler:      reconciler,
		store:           store,
	}, nil
}

// Recompute loads the reconciliation working set (open orders plus
// unsettled delivered ones), derives fresh projections and replaces the
// store contents.
func (r *Recomputer) Recompute(ctx context.Context) error {
	open, err := r.orderRepository.GetAllOpen(ctx)
	if err != nil {
		return err
	}

	unsettled, err := r.orderRepository.GetAllUnsettledDelivered(ctx)
	if err != nil {
		return err
	}

	workingSet := make([]*order.Order, 0, len(open)+len(unsettled))
	workingSet = append(workingSet, open...)
	workingSet = append(workingSet, unsettled...)

	r.store.Replace(ctx, r.reconciler.Reconcile(workingSet))
	metrics.ReconciliationRuns.Inc()
	return nil
}
