package commands

import (
	"context"

	"bookshop/internal/core/domain/model/category"
)

type AddCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewAddCategoryCommandHandler(uowFactory CategoryUoWFactory) AddCategoryCommandHandler {
	return AddCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new category. A subcategory's parent must already exist.
func (h AddCategoryCommandHandler) Handle(ctx context.Context, cmd AddCategoryCommand) error {
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

	var (
		c   *category.Category
		err error
	)
	if parentID, ok := cmd.ParentID(); ok {
		parent, getErr := categoryRepo.Get(ctx, parentID)
		if getErr != nil {
			return getErr
		}
		c, err = category.NewSubcategory(cmd.CategoryID(), cmd.Name(), parent)
	} else {
		c, err = category.NewCategory(cmd.CategoryID(), cmd.Name())
	}
	if err != nil {
		return err
	}

	if err = categoryRepo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
