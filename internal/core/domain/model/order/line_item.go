package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory function.
var ErrLineItemIsNotConstructed = errors.New("line item must be created via NewLineItem constructor")

// LineItem is one position of an order: an immutable snapshot of the
// catalog product (name, price, image) taken at checkout, plus quantity and
// an optional preparation note. Snapshots decouple historical orders from
// later catalog edits - a price change must never alter an existing order.
type LineItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	imageURL  string
	quantity  int
	note      string

	guard guard.ConstructorGuard
}

// NewLineItem creates an order line item from a product snapshot.
// Quantity must be positive; name and price must be present.
func NewLineItem(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	imageURL string,
	quantity int,
	note string,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	item.imageURL = imageURL
	item.note = note
	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the catalog product this item
// snapshots. The catalog entry may have changed or vanished since.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name at the time of ordering.
func (i LineItem) Name() string {
	return i.name
}

// Price returns the unit price at the time of ordering.
func (i LineItem) Price() kernel.Money {
	return i.price
}

// ImageURL returns the product image at the time of ordering. May be empty.
func (i LineItem) ImageURL() string {
	return i.imageURL
}

// Quantity returns how many units were ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// Note returns the customer's preparation note. May be empty.
func (i LineItem) Note() string {
	return i.note
}

// Total returns price multiplied by quantity.
func (i LineItem) Total() kernel.Money {
	return i.price.MulQuantity(i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
