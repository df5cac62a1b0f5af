package events

import (
	"context"
	"log/slog"
)

// LogEventPublisher writes events to the log; used when no broker is configured
type LogEventPublisher struct {
	logger *slog.Logger
}

func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

func (p *LogEventPublisher) Publish(ctx context.Context, event *Event) error {
	p.logger.InfoContext(ctx, "Student event",
		"event_id", event.ID,
		"event_type", event.Type,
		"data", event.Data)
	return nil
}

func (p *LogEventPublisher) Close() error {
	return nil
}
