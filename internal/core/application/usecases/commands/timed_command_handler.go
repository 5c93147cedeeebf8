package commands

import (
	"context"
	"log/slog"
	"time"
)

// CommandHandler handles one command type.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// TimedCommandHandler logs how long the wrapped handler took, at debug level,
// together with the error it returned if any.
type TimedCommandHandler[C any] struct {
	next    CommandHandler[C]
	command string
	logger  *slog.Logger
	now     func() time.Time
}

func NewTimedCommandHandler[C any](command string, next CommandHandler[C], logger *slog.Logger) TimedCommandHandler[C] {
	return TimedCommandHandler[C]{
		next:    next,
		command: command,
		logger:  logger,
		now:     time.Now,
	}
}

func (h TimedCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	start := h.now()
	err := h.next.Handle(ctx, cmd)
	elapsed := h.now().Sub(start)

	if err != nil {
		h.logger.DebugContext(ctx, "Command failed",
			"command", h.command, "duration", elapsed, "error", err)
		return err
	}

	h.logger.DebugContext(ctx, "Command handled", "command", h.command, "duration", elapsed)
	return nil
}
