package order

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the shipment of an order. It belongs to exactly one order; the
// order id is bound when the delivery is attached through NewOrder or RestoreOrder.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	guard guard.ConstructorGuard
}

// NewDelivery creates a Ready delivery to the given address.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	return RestoreDelivery(id, address, DeliveryReady)
}

func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		address.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:      id,
		address: address,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the id of the owning order, or the nil UUID while unattached.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) Address() kernel.Address {
	return d.address
}

func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Complete marks the delivery as handed over.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = newStatus
	return nil
}

func (d *Delivery) isAttached() bool {
	return d.orderID.Validate() == nil
}

func (d *Delivery) attach(orderID kernel.UUID) {
	d.orderID = orderID
}
