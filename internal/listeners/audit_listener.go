package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"association-console/internal/events"
	"association-console/pkg/eventbus"
	"association-console/pkg/metrics"
)

// AuditListener writes one structured log line per domain event.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

// Register subscribes the listener to every console event.
func (l *AuditListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{
		events.DispatchCreatedName,
		events.DispatchReturnedName,
		events.DonChangedName,
		events.EquipmentBatchFinishedName,
		events.SessionCompletedName,
	} {
		bus.Subscribe(name, l.Handle)
	}
}

func (l *AuditListener) Handle(ctx context.Context, event eventbus.Event) error {
	metrics.DomainEventsTotal.WithLabelValues(event.Name()).Inc()

	fields := []zap.Field{zap.String("event", event.Name())}
	switch e := event.(type) {
	case events.DispatchCreatedEvent:
		fields = append(fields,
			zap.String("actor", e.Actor),
			zap.Int64("dispatch", e.Dispatch.ID),
			zap.Int64("equipment", e.Dispatch.MedicalEquipmentID),
			zap.String("beneficiary", e.Dispatch.Beneficiary),
		)
	case events.DispatchReturnedEvent:
		fields = append(fields,
			zap.String("actor", e.Actor),
			zap.Int64("dispatch", e.DispatchID),
			zap.String("returnDate", e.ReturnDate),
		)
	case events.DonChangedEvent:
		fields = append(fields,
			zap.String("actor", e.Actor),
			zap.Int64("don", e.DonID),
			zap.String("nature", e.Nature),
			zap.String("action", e.Action),
		)
	case events.EquipmentBatchFinishedEvent:
		fields = append(fields,
			zap.String("actor", e.Actor),
			zap.Int("requested", e.Requested),
			zap.Int("succeeded", e.Succeeded),
			zap.Int("failed", e.Failed),
		)
	case events.SessionCompletedEvent:
		fields = append(fields,
			zap.String("actor", e.Actor),
			zap.Int64("session", e.SessionID),
			zap.String("type", e.SessionType),
		)
	default:
		return fmt.Errorf("audit: unexpected event %T", event)
	}

	l.logger.Info("audit", fields...)
	return nil
}
