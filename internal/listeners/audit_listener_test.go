package listeners

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"association-console/internal/entities"
	"association-console/internal/events"
	"association-console/pkg/eventbus"
)

type unknownEvent struct{}

func (unknownEvent) Name() string { return "unknown" }

func TestAuditListener_LogsEveryEvent(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.InfoLevel)
	bus := eventbus.New(zap.NewNop())
	NewAuditListener(zap.New(core)).Register(bus)

	ctx := context.Background()
	bus.Publish(ctx, events.DispatchCreatedEvent{Dispatch: entities.Dispatch{ID: 3, MedicalEquipmentID: 9}, Actor: "amina"})
	bus.Publish(ctx, events.DispatchReturnedEvent{DispatchID: 3, ReturnDate: "2024-05-02"})
	bus.Publish(ctx, events.DonChangedEvent{DonID: 1, Nature: entities.NatureGift, Action: events.ActionCreated})
	bus.Publish(ctx, events.EquipmentBatchFinishedEvent{Requested: 5, Succeeded: 4, Failed: 1})
	bus.Publish(ctx, events.SessionCompletedEvent{SessionID: 2, SessionType: entities.SessionOrdinary})
	bus.Wait()

	require.Equal(t, 5, logs.Len())
	batch := logs.FilterField(zap.Int("failed", 1)).All()
	require.Len(t, batch, 1)
	assert.Equal(t, events.EquipmentBatchFinishedName, batch[0].ContextMap()["event"])
	assert.Len(t, logs.FilterField(zap.String("actor", "amina")).All(), 1)
}

func TestAuditListener_RejectsUnknownEvent(t *testing.T) {
	l := NewAuditListener(zap.NewNop())
	assert.Error(t, l.Handle(context.Background(), unknownEvent{}))
}
