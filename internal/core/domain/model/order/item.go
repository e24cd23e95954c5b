package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a reference to a catalog item plus a count.
// The line ID is assigned by the client and preserved verbatim; the item ID
// references the menu catalog, which lives outside this service.
type Item struct { //nolint:recvcheck //using for validation
	lineID int
	itemID string
	count  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// The item reference must be non-empty and the count positive.
func NewItem(lineID int, itemID string, count int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setLineID(lineID), item.setItemID(itemID), item.setCount(count)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// LineID returns the client-assigned line identifier.
func (i Item) LineID() int {
	return i.lineID
}

// ItemID returns the catalog item reference.
func (i Item) ItemID() string {
	return i.itemID
}

// Count returns how many units of the item were ordered.
func (i Item) Count() int {
	return i.count
}

func (i *Item) setLineID(lineID int) error {
	if lineID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("line id is invalid",
			fmt.Errorf("%d is negative", lineID))
	}
	i.lineID = lineID
	return nil
}

func (i *Item) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count is invalid",
			fmt.Errorf("%d is not greater than 0", count))
	}
	i.count = count
	return nil
}
