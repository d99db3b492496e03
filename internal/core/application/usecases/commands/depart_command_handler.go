package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"
)

var (
	// ErrNoOrdersToDepart is returned when the courier owns no Picking orders.
	ErrNoOrdersToDepart = errors.New("no orders in picking for this courier")
)

// DepartCommandHandler executes the batched depart transition: every Picking
// order owned by the courier moves to InTransit.
//
// The batch is N independent writes, not one atomic operation: each order
// departs in its own transaction, and a failure on one order is logged and
// joined into the returned error without blocking the remaining orders. An
// order left behind by a failed write simply stays Picking until retried.
type DepartCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewDepartCommandHandler creates a handler for depart operations.
func NewDepartCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DepartCommandHandler {
	return DepartCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the depart command.
//
// Returns ErrNoOrdersToDepart when the courier owns nothing in Picking, and
// the joined per-order errors when some writes failed. Orders that departed
// successfully stay departed regardless of other orders' failures.
func (h DepartCommandHandler) Handle(ctx context.Context, cmd DepartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	listUoW := h.uowFactory.Create()
	if err := listUoW.Begin(ctx); err != nil {
		return err
	}

	picking, err := listUoW.OrderRepository().GetAllPickingByCourier(ctx, cmd.CourierID())
	_ = listUoW.Rollback(ctx)
	if err != nil {
		return err
	}
	if len(picking) == 0 {
		return ErrNoOrdersToDepart
	}

	departedAt := nowUTC()

	var errList []error
	for _, aggregate := range picking {
		if departErr := h.departOne(ctx, aggregate, departedAt); departErr != nil {
			h.logger.WarnContext(ctx, "Failed to depart order, it stays in picking",
				"order_id", aggregate.ID().String(),
				"courier_id", cmd.CourierID().String(),
				"error", departErr,
			)
			errList = append(errList, departErr)
			continue
		}
		publishOrderChanged(ctx, h.publisher, h.logger, aggregate)
	}

	return errors.Join(errList...)
}

// departOne applies and persists the depart transition for a single order in
// its own transaction.
func (h DepartCommandHandler) departOne(ctx context.Context, aggregate *order.Order, at time.Time) error {
	if err := aggregate.Depart(at); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
