package commands

import (
	"errors"
	"time"

	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand completes the deliveries of placed orders ordered
// before PlacedBefore.
type CompleteDeliveriesCommand struct {
	placedBefore time.Time

	guard guard.ConstructorGuard
}

func NewCompleteDeliveriesCommand(placedBefore time.Time) (CompleteDeliveriesCommand, error) {
	if placedBefore.IsZero() {
		return CompleteDeliveriesCommand{}, errs.NewValueIsRequiredError("placed before")
	}

	return CompleteDeliveriesCommand{
		placedBefore: placedBefore,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}

func (c CompleteDeliveriesCommand) PlacedBefore() time.Time {
	return c.placedBefore
}
