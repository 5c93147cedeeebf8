package commands

import (
	"context"
	"errors"
)

// ErrNoDeliveriesToComplete is returned when no order is waiting for its delivery.
var ErrNoDeliveriesToComplete = errors.New("no deliveries to complete")

type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the delivery of every eligible order as completed, all in one
// transaction. Once completed, those orders can no longer be cancelled.
func (h CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
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

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllWithReadyDelivery(ctx, cmd.PlacedBefore())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoDeliveriesToComplete
	}

	for _, o := range orders {
		if err = o.CompleteDelivery(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
