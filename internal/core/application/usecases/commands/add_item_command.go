package commands

import (
	"errors"
	"fmt"
	"strings"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New("AddItemCommand must be created via NewAddItemCommand constructor")

type AddItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         kernel.Price
	stockQuantity int

	guard guard.ConstructorGuard
}

func NewAddItemCommand(itemID kernel.UUID, name string, price kernel.Price, stockQuantity int) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddItemCommand) Name() string {
	return c.name
}

func (c AddItemCommand) Price() kernel.Price {
	return c.price
}

func (c AddItemCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *AddItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity", fmt.Errorf("%d is less than 0", stockQuantity))
	}
	c.stockQuantity = stockQuantity
	return nil
}
