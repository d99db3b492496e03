package commands

import (
	"context"
	"errors"
	"log/slog"

	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"
	"linenflow/internal/pkg/metrics"
)

var (
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("no order found")

	// ErrOrderClaimConflict is returned to the courier who lost a claim
	// race: by the time the write landed, another courier owned the order.
	// The losing courier should refresh their view and pick other work.
	ErrOrderClaimConflict = errors.New("order was already claimed by another courier")
)

// ClaimOrderCommandHandler executes the claim transition of the order state
// machine: an open order becomes Picking, owned by the claiming courier.
//
// The claim is persisted as a conditional update so two couriers racing for
// the same order cannot silently overwrite each other; exactly one wins and
// the other receives ErrOrderClaimConflict.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the claim command.
//
// Flow: load the order, apply the domain claim transition (guarding against
// an existing owner), then persist through the conditional claim write.
// Returns ErrOrderNotFound when the order does not exist and
// ErrOrderClaimConflict when another courier owns it, whether that was
// observed at read time or at write time.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.Claim(cmd.CourierID(), nowUTC()); err != nil {
		if errors.Is(err, order.ErrOrderAlreadyClaimed) {
			metrics.ClaimConflicts.Inc()
			return ErrOrderClaimConflict
		}
		return err
	}

	if err = orderRepo.UpdateClaim(ctx, aggregate); err != nil {
		if errors.Is(err, ports.ErrClaimConflict) {
			metrics.ClaimConflicts.Inc()
			return ErrOrderClaimConflict
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, h.logger, aggregate)
	return nil
}
