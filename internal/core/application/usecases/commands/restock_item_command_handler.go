package commands

import (
	"context"
)

type RestockItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewRestockItemCommandHandler(uowFactory ItemUoWFactory) RestockItemCommandHandler {
	return RestockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestockItemCommandHandler) Handle(ctx context.Context, cmd RestockItemCommand) error {
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

	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = it.IncreaseStock(cmd.Quantity()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
