package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/domain/services"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/metrics"
)

// SettlePickupCommandHandler is the settlement coordinator: it confirms a
// delivery-with-pickup and retires the dirty-linen debt the pickup covered.
//
// Consistency model: eventual and convergent, not transactional. The
// coordinator never trusts the projection a client displayed. Before any
// write it re-runs the debt-set computation against a fresh read, so a
// delivery that happened between projection and settlement is either
// included or left outstanding for the next cycle, never silently lost.
//
// The debt retirement is a scatter of independent, idempotent writes: one
// per source order, each in its own transaction. A failed write leaves that
// order's debt outstanding; the next reconciliation cycle re-surfaces it and
// a later pickup retries it. Partial failure is therefore logged, counted,
// and deliberately NOT rolled back or returned to the courier, whose flow
// proceeds to the next delivery.
type SettlePickupCommandHandler struct {
	uowFactory OrderUoWFactory
	reconciler *services.PickupReconciler
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewSettlePickupCommandHandler creates the settlement coordinator.
func NewSettlePickupCommandHandler(
	uowFactory OrderUoWFactory,
	reconciler *services.PickupReconciler,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) SettlePickupCommandHandler {
	return SettlePickupCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the settle command.
//
// Step 1, transactional: load the delivering order, refresh the property's
// debt set, mark the order Delivered with the pickup report recorded in its
// audit fields, and commit. The delivering order itself now owes its own
// linen (pickupCompleted=false).
//
// Step 2, scatter: for every source order in the refreshed projection,
// independently write pickupCompleted=true with the settlement audit trail.
// Writes are unordered, idempotent, and isolated from one another's
// failures.
//
// An order created without pickup goes through step 1 as a plain delivery
// and produces no scatter: it retires no debt at its property.
//
// Returns ErrOrderNotFound when the delivering order does not exist and a
// status error when it is not InTransit. Partial scatter failures are not
// returned.
func (h SettlePickupCommandHandler) Handle(ctx context.Context, cmd SettlePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	settledAt := nowUTC()

	aggregate, sources, err := h.deliverAndRefresh(ctx, cmd, settledAt)
	if err != nil {
		return err
	}

	for _, sourceID := range sources {
		result := h.settleSource(ctx, sourceID, aggregate.ID(), settledAt)
		metrics.SettlementWrites.WithLabelValues(result).Inc()
	}

	publishOrderChanged(ctx, h.publisher, h.logger, aggregate)
	return nil
}

// deliverAndRefresh performs step 1: within one transaction it re-reads the
// property's debt set (the mandatory refresh before trusting any
// projection), applies the delivery-with-pickup transition, and persists the
// delivering order. It returns the delivering aggregate and the refreshed
// list of source-order IDs whose debt the pickup retires. For an order
// created without pickup the refresh is skipped and no sources are returned.
func (h SettlePickupCommandHandler) deliverAndRefresh(
	ctx context.Context,
	cmd SettlePickupCommand,
	settledAt time.Time,
) (*order.Order, []kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	// A pure-delivery order never participates in reconciliation: it carries
	// no pickup, retires no debt, and its report is not recorded. The property's
	// debt persists for the next pickup-eligible order.
	if !aggregate.IncludePickup() {
		if err = aggregate.Deliver(settledAt); err != nil {
			return nil, nil, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, nil, err
		}
		return aggregate, nil, uow.Commit(ctx)
	}

	debtSet, err := orderRepo.GetDebtSet(ctx, aggregate.PropertyID())
	if err != nil {
		return nil, nil, err
	}
	projection := h.reconciler.Merge(h.reconciler.DebtSet(debtSet, aggregate.PropertyID()))

	if err = aggregate.DeliverWithPickup(settledAt, cmd.Report()); err != nil {
		return nil, nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return aggregate, projection.FromOrders, nil
}

// settleSource retires one source order's debt in its own transaction and
// reports the outcome as a metrics label value. Failures are logged, never
// propagated: the unsettled debt re-surfaces in the next reconciliation
// cycle.
func (h SettlePickupCommandHandler) settleSource(
	ctx context.Context,
	sourceID kernel.UUID,
	deliveringID kernel.UUID,
	settledAt time.Time,
) string {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logSettleFailure(ctx, sourceID, deliveringID, err)
		return metrics.ResultFailed
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	source, err := orderRepo.Get(ctx, sourceID)
	if err != nil {
		h.logSettleFailure(ctx, sourceID, deliveringID, err)
		return metrics.ResultFailed
	}

	if err = source.CompletePickup(deliveringID, settledAt); err != nil {
		if errors.Is(err, order.ErrPickupAlreadyCompleted) {
			return metrics.ResultAlreadySettled
		}
		h.logSettleFailure(ctx, sourceID, deliveringID, err)
		return metrics.ResultFailed
	}

	if err = orderRepo.UpdateSettlement(ctx, source); err != nil {
		if errors.Is(err, ports.ErrPickupAlreadySettled) {
			return metrics.ResultAlreadySettled
		}
		h.logSettleFailure(ctx, sourceID, deliveringID, err)
		return metrics.ResultFailed
	}

	if err = uow.Commit(ctx); err != nil {
		h.logSettleFailure(ctx, sourceID, deliveringID, err)
		return metrics.ResultFailed
	}

	return metrics.ResultOK
}

func (h SettlePickupCommandHandler) logSettleFailure(
	ctx context.Context,
	sourceID kernel.UUID,
	deliveringID kernel.UUID,
	err error,
) {
	h.logger.WarnContext(ctx, "Settlement write failed, debt stays outstanding until next cycle",
		"source_order_id", sourceID.String(),
		"delivering_order_id", deliveringID.String(),
		"error", err,
	)
}
