package order

import (
	"errors"
	"fmt"

	"linenflow/internal/pkg/errs"
)

// Item is a value object describing one line item of an order: a piece of
// linen or a product being delivered to the property.
//
// ID and Name identify the catalog entry; two items with the same ID and
// name are the same kind of thing when the reconciliation engine merges
// quantities across orders. CategoryID and ItemType come from the external
// catalog and may be empty, in which case linen classification falls back
// to name keywords.
//
// Item is immutable; construct it via NewItem.
type Item struct {
	id         string
	name       string
	quantity   int
	categoryID string
	itemType   string
}

// NewItem creates a validated line item.
//
// Parameters:
//   - id: catalog identifier (required)
//   - name: display name (required)
//   - quantity: number of units (must be positive)
//   - categoryID: catalog category, may be empty
//   - itemType: catalog type tag, may be empty
//
// Returns an error if id or name is empty or quantity is not positive.
func NewItem(id, name string, quantity int, categoryID, itemType string) (Item, error) {
	if id == "" {
		return Item{}, errs.NewValueIsRequiredError("item id")
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:         id,
		name:       name,
		quantity:   quantity,
		categoryID: categoryID,
		itemType:   itemType,
	}, nil
}

// ID returns the catalog identifier of the item.
func (i Item) ID() string {
	return i.id
}

// Name returns the display name of the item.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// CategoryID returns the catalog category, or empty when unknown.
func (i Item) CategoryID() string {
	return i.categoryID
}

// ItemType returns the catalog type tag, or empty when unknown.
func (i Item) ItemType() string {
	return i.itemType
}

// validateItems checks a whole line-item sequence at once so aggregate
// constructors can report every invalid item in a single error.
func validateItems(items []Item) error {
	var errList []error
	for idx, item := range items {
		if item.id == "" || item.name == "" || item.quantity <= 0 {
			errList = append(errList, fmt.Errorf("item %d must be created via NewItem", idx))
		}
	}
	return errors.Join(errList...)
}
