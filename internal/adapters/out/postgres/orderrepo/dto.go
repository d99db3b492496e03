// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"linenflow/internal/core/domain/model/kernel"
	"linenflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a jsonb column; the remaining columns are flat so the
// conditional claim and settlement writes can express their preconditions in
// plain WHERE clauses.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PropertyID    uuid.UUID  `gorm:"type:uuid;index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	Items         ItemsDTO   `gorm:"type:jsonb"`
	IncludePickup bool
	Urgency       int
	Status        int `gorm:"index"`

	PickupCompleted          bool `gorm:"index"`
	PickupCompletedAt        *time.Time
	PickupCompletedInOrderID *uuid.UUID `gorm:"type:uuid"`
	PickupOutcome            int
	PickupNote               string
	PickupHasIssues          bool

	CreatedAt   time.Time
	StartedAt   *time.Time
	DepartedAt  *time.Time
	DeliveredAt *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb representation of one line item.
type ItemDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	CategoryID string `json:"category_id,omitempty"`
	Type       string `json:"type,omitempty"`
}

// ItemsDTO is a jsonb-encoded slice of line items.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer, encoding the items as jsonb.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner, decoding the jsonb column.
func (items *ItemsDTO) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ItemsDTO", value)
	}

	return json.Unmarshal(raw, items)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var settledIn *uuid.UUID
	if id := aggregate.PickupCompletedInOrderID(); id != nil {
		raw := id.Bytes()
		settledIn = &raw
	}

	domainItems := aggregate.Items()
	items := make(ItemsDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			ID:         item.ID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			CategoryID: item.CategoryID(),
			Type:       item.ItemType(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		PropertyID:    aggregate.PropertyID().Bytes(),
		CourierID:     courierID,
		Items:         items,
		IncludePickup: aggregate.IncludePickup(),
		Urgency:       int(aggregate.Urgency()),
		Status:        int(aggregate.Status()),

		PickupCompleted:          aggregate.PickupCompleted(),
		PickupCompletedAt:        aggregate.PickupCompletedAt(),
		PickupCompletedInOrderID: settledIn,
		PickupOutcome:            int(aggregate.PickupOutcome()),
		PickupNote:               aggregate.PickupNote(),
		PickupHasIssues:          aggregate.PickupHasIssues(),

		CreatedAt:   aggregate.CreatedAt(),
		StartedAt:   aggregate.StartedAt(),
		DepartedAt:  aggregate.DepartedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder, which re-validates
// every invariant; errors here mean the stored row is corrupt.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	propertyID, err := kernel.UUIDFromBytes(dto.PropertyID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := optionalUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	settledIn, err := optionalUUID(dto.PickupCompletedInOrderID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ID, itemDTO.Name, itemDTO.Quantity, itemDTO.CategoryID, itemDTO.Type)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:            id,
		PropertyID:    propertyID,
		CourierID:     courierID,
		Items:         items,
		IncludePickup: dto.IncludePickup,
		Urgency:       order.Urgency(dto.Urgency),
		Status:        order.Status(dto.Status),

		PickupCompleted:          dto.PickupCompleted,
		PickupCompletedAt:        dto.PickupCompletedAt,
		PickupCompletedInOrderID: settledIn,
		PickupOutcome:            order.PickupOutcome(dto.PickupOutcome),
		PickupNote:               dto.PickupNote,
		PickupHasIssues:          dto.PickupHasIssues,

		CreatedAt:   dto.CreatedAt,
		StartedAt:   dto.StartedAt,
		DepartedAt:  dto.DepartedAt,
		DeliveredAt: dto.DeliveredAt,
	})
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
