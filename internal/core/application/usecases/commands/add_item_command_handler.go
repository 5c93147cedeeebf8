package commands

import (
	"context"

	"bookshop/internal/core/domain/model/item"
)

type AddItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewAddItemCommandHandler(uowFactory ItemUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	it, err := item.NewItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
