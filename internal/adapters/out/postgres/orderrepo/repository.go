package orderrepo

import (
	"context"
	"errors"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"
	"linenflow/internal/core/ports"
	"linenflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NoTracking is an aggregateTracker that records nothing. Use it when the
// repository serves reads outside a unit of work.
type NoTracking struct{}

// TrackAggregate implements aggregateTracker as a no-op.
func (NoTracking) TrackAggregate(kernel.UUID, any) {}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Select("*") forces a full-row write so fields returning to their zero
// value (a cleared courier on release, for instance) actually persist.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateClaim persists a claim transition conditionally. The WHERE clause
// re-checks the claim precondition against the stored row: the order must
// still be open and either unowned or already owned by the claiming courier.
// Of two couriers racing past the in-memory guard, exactly one write matches
// the precondition; the loser gets ErrClaimConflict and the winner's row is
// never overwritten.
func (r *GormOrderRepository) UpdateClaim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.CourierID == nil {
		return errs.NewValueIsRequiredError("courierID")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND (courier_id IS NULL OR courier_id = ?) AND status IN ?",
			dto.ID, *dto.CourierID, []int{int(order.Pending), int(order.Assigned)}).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, dto.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return ports.ErrClaimConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateSettlement persists a pickup settlement conditionally: the write
// matches only while the stored pickup_completed flag is still false, which
// keeps the flag monotonic under concurrent settlements. A row that was
// already settled yields ErrPickupAlreadySettled, which callers count as
// success.
func (r *GormOrderRepository) UpdateSettlement(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND pickup_completed = ?", dto.ID, false).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, dto.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return ports.ErrPickupAlreadySettled
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves every order in Pending or Assigned status.
func (r *GormOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ?", []int{int(order.Pending), int(order.Assigned)}).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllUnsettledDelivered retrieves every delivered order whose pickup has
// not been completed, across all properties.
func (r *GormOrderRepository) GetAllUnsettledDelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND pickup_completed = ?", order.Delivered, false).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetDebtSet retrieves the property's pickup-debt set: delivered orders at
// the property whose pickup has not been completed.
func (r *GormOrderRepository) GetDebtSet(ctx context.Context, propertyID kernel.UUID) ([]*order.Order, error) {
	if err := propertyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "property_id = ? AND status = ? AND pickup_completed = ?",
			propertyID.Bytes(), order.Delivered, false).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPickingByCourier retrieves every Picking order owned by the courier.
func (r *GormOrderRepository) GetAllPickingByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND courier_id = ?", order.Picking, courierID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) exists(ctx context.Context, id any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
