package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/ports"
)

// publishEvent delivers a domain event after a successful commit.
// Publication is fire-and-forget: a failure is logged and never fails
// the operation that raised the event.
func publishEvent(ctx context.Context, logger *slog.Logger, publisher ports.EventPublisher, event ports.Event) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, ports.TopicDriverEvents, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish event",
			"topic", ports.TopicDriverEvents,
			"type", event.Type,
			"error", err,
		)
	}
}
