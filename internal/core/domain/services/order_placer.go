package services

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/domain/model/order"
)

// LineRequest asks for quantity units of an item.
type LineRequest struct {
	Item     *item.Item
	Quantity int
}

// OrderPlacer is a domain service that turns line requests into a placed order.
//
// Business rules:
//   - Each line is priced at the item's current price
//   - The delivery goes to the member's address
//   - Either every line takes its stock or none does
//
// Example usage:
//
//	placer := NewOrderPlacer()
//	o, err := placer.Place(kernel.NewUUID(), m, []LineRequest{{Item: book, Quantity: 2}})
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // not enough books
//	}
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place builds the order. On failure the stock of every line created so far is
// restored before the error is returned.
func (p OrderPlacer) Place(orderID kernel.UUID, m *member.Member, requests []LineRequest) (*order.Order, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, order.ErrLinesAreRequired
	}

	lines := make([]*order.OrderLine, 0, len(requests))
	for _, req := range requests {
		if err := req.Item.Validate(); err != nil {
			return nil, p.rollback(lines, err)
		}

		line, err := order.NewOrderLine(kernel.NewUUID(), req.Item, req.Item.Price(), req.Quantity)
		if err != nil {
			return nil, p.rollback(lines, fmt.Errorf("item %s: %w", req.Item.ID(), err))
		}
		lines = append(lines, line)
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	if err != nil {
		return nil, p.rollback(lines, err)
	}

	o, err := order.NewOrder(orderID, m, delivery, lines...)
	if err != nil {
		return nil, p.rollback(lines, err)
	}

	return o, nil
}

func (p OrderPlacer) rollback(lines []*order.OrderLine, cause error) error {
	restoreErrs := make([]error, 0, len(lines)+1)
	restoreErrs = append(restoreErrs, cause)
	for _, line := range lines {
		restoreErrs = append(restoreErrs, line.Cancel())
	}
	return errors.Join(restoreErrs...)
}
