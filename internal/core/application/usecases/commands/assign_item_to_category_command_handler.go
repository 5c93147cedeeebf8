package commands

import (
	"context"
)

type AssignItemToCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewAssignItemToCategoryCommandHandler(uowFactory CategoryUoWFactory) AssignItemToCategoryCommandHandler {
	return AssignItemToCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle links an existing item to an existing category. Linking an item that
// is already in the category saves nothing.
func (h AssignItemToCategoryCommandHandler) Handle(ctx context.Context, cmd AssignItemToCategoryCommand) error {
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

	categoryRepo := uow.CategoryRepository()

	c, err := categoryRepo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	it, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if c.HasItem(it.ID()) {
		return nil
	}

	if err = c.AddItem(it.ID()); err != nil {
		return err
	}

	if err = categoryRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
