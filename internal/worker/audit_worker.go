package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/observability"
)

// Subscriber is the part of DataService the workers observe.
type Subscriber interface {
	Subscribe(handler events.EventHandler) func()
}

// StartAuditWorker logs and counts every roster change. The returned func detaches it.
func StartAuditWorker(data Subscriber, logger *zap.Logger, metrics *observability.Metrics) func() {
	if data == nil {
		return func() {}
	}
	return data.Subscribe(func(_ context.Context, event events.Event) error {
		metrics.RecordEvent(string(event.Type))
		fields := []zap.Field{
			zap.String("event_type", string(event.Type)),
			zap.Int("roster_size", len(event.Employees)),
			zap.Time("at", event.Timestamp),
		}
		if event.EmployeeID != "" {
			fields = append(fields, zap.String("employee_id", event.EmployeeID))
		}
		logger.Info("roster changed", fields...)
		return nil
	})
}
