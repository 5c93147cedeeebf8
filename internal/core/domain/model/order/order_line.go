package order

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine or RestoreOrderLine constructor")

// OrderLine is one item of an order, bought at a fixed unit price.
//
// The unit price is captured when the line is created and does not follow later
// changes of the item's catalogue price. A line shares its *item.Item with the
// other lines and orders loaded in the same unit of work, so stock changes made
// through the line are visible on the item that is later persisted.
type OrderLine struct {
	id        kernel.UUID
	orderID   kernel.UUID
	item      *item.Item
	unitPrice kernel.Price
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a line for quantity units of it and takes those units out
// of the item's stock.
//
// All arguments are validated first. If the stock is too low the error of
// item.DecreaseStock (wrapping item.ErrInsufficientStock) is returned, no line is
// created and the stock is unchanged.
//
// Example:
//
//	line, err := order.NewOrderLine(kernel.NewUUID(), book, book.Price(), 2)
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // not enough books left
//	}
func NewOrderLine(id kernel.UUID, it *item.Item, unitPrice kernel.Price, quantity int) (*OrderLine, error) {
	line, err := RestoreOrderLine(id, it, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if err = it.DecreaseStock(quantity); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreOrderLine rebuilds a persisted line without touching the item's stock.
func RestoreOrderLine(id kernel.UUID, it *item.Item, unitPrice kernel.Price, quantity int) (*OrderLine, error) {
	line := &OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setItem(it),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// OrderID returns the id of the owning order, or the nil UUID while unattached.
func (l *OrderLine) OrderID() kernel.UUID {
	return l.orderID
}

func (l *OrderLine) Item() *item.Item {
	return l.item
}

func (l *OrderLine) UnitPrice() kernel.Price {
	return l.unitPrice
}

func (l *OrderLine) Quantity() int {
	return l.quantity
}

// TotalPrice is unit price times quantity.
func (l *OrderLine) TotalPrice() kernel.Price {
	return l.unitPrice.Mul(l.quantity)
}

// Cancel puts the line's quantity back into the item's stock. It is not
// idempotent; Order.Cancel makes sure it runs once per line.
func (l *OrderLine) Cancel() error {
	return l.item.IncreaseStock(l.quantity)
}

func (l *OrderLine) isAttached() bool {
	return l.orderID.Validate() == nil
}

func (l *OrderLine) attach(orderID kernel.UUID) {
	l.orderID = orderID
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	l.item = it
	return nil
}

func (l *OrderLine) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
