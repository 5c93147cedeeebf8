package commands

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrAssignItemToCategoryCommandIsNotConstructed = errors.New(
	"AssignItemToCategoryCommand must be created via NewAssignItemToCategoryCommand constructor",
)

type AssignItemToCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignItemToCategoryCommand(categoryID, itemID kernel.UUID) (AssignItemToCategoryCommand, error) {
	cmd := AssignItemToCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryID.Validate(),
		itemID.Validate(),
	); err != nil {
		return AssignItemToCategoryCommand{}, err
	}
	cmd.categoryID = categoryID
	cmd.itemID = itemID

	return cmd, nil
}

func (c AssignItemToCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemToCategoryCommandIsNotConstructed)
}

func (c AssignItemToCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c AssignItemToCategoryCommand) ItemID() kernel.UUID {
	return c.itemID
}
