package commands

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrRestockItemCommandIsNotConstructed = errors.New(
	"RestockItemCommand must be created via NewRestockItemCommand constructor",
)

type RestockItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewRestockItemCommand(itemID kernel.UUID, quantity int) (RestockItemCommand, error) {
	cmd := RestockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockItemCommand{}, err
	}

	return cmd, nil
}

func (c RestockItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockItemCommandIsNotConstructed)
}

func (c RestockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c RestockItemCommand) Quantity() int {
	return c.quantity
}

func (c *RestockItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *RestockItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
