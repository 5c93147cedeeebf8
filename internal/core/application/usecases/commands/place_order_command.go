package commands

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLineRequest asks for Quantity units of the item ItemID.
type OrderLineRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	lines    []OrderLineRequest

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(orderID, memberID kernel.UUID, lines ...OrderLineRequest) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMemberID(memberID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Lines returns the requested lines in the order they will appear on the order.
func (c PlaceOrderCommand) Lines() []OrderLineRequest {
	return append([]OrderLineRequest(nil), c.lines...)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	lineErrs := make([]error, 0, len(lines))
	for i, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
		}
		if line.Quantity <= 0 {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d is not greater than 0", line.Quantity))))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = append([]OrderLineRequest(nil), lines...)
	return nil
}
