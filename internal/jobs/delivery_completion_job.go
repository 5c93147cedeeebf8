package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type deliveryCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteDeliveriesCommand) error
}

// DeliveryCompletionJob completes the deliveries of orders that have waited
// longer than the shipping delay.
type DeliveryCompletionJob struct {
	handler       deliveryCompleter
	schedule      string
	shippingDelay time.Duration
	now           func() time.Time
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewDeliveryCompletionJob creates the job. Schedule is a six-field cron
// expression with seconds.
func NewDeliveryCompletionJob(
	handler deliveryCompleter,
	schedule string,
	shippingDelay time.Duration,
	logger *slog.Logger,
) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler:       handler,
		schedule:      schedule,
		shippingDelay: shippingDelay,
		now:           time.Now,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "delivery_completion_job"),
	}
}

// Start schedules the job.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started",
		"schedule", j.schedule, "shipping_delay", j.shippingDelay)
	return nil
}

// Run completes the deliveries once. Having nothing to complete is not an error.
func (j *DeliveryCompletionJob) Run(ctx context.Context) {
	cmd, err := commands.NewCompleteDeliveriesCommand(j.now().Add(-j.shippingDelay))
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, commands.ErrNoDeliveriesToComplete) {
			j.logger.DebugContext(ctx, "No deliveries to complete")
			return
		}
		j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Deliveries completed", "placed_before", cmd.PlacedBefore())
}

// Stop stops the scheduler and waits for a running completion to finish.
func (j *DeliveryCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
