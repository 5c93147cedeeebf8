package commands

import (
	"context"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/services"
)

type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
	}
}

// Handle places an order for the member. Each line is priced at the item's
// current price and the delivery goes to the member's address. The order and
// the new stock of every ordered item are saved in one transaction; a
// concurrent stock change makes the item update, and so the whole command, fail.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	itemRepo := uow.ItemRepository()

	m, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	// Requests for the same item share one *item.Item so their stock adds up.
	loaded := make(map[kernel.UUID]*item.Item)
	requests := make([]services.LineRequest, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		it, ok := loaded[line.ItemID]
		if !ok {
			if it, err = itemRepo.Get(ctx, line.ItemID); err != nil {
				return err
			}
			loaded[line.ItemID] = it
		}
		requests = append(requests, services.LineRequest{Item: it, Quantity: line.Quantity})
	}

	o, err := h.placer.Place(cmd.OrderID(), m, requests)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	for _, it := range o.Items() {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
