package events

import "association-console/internal/entities"

const (
	DispatchCreatedName        = "dispatch.created"
	DispatchReturnedName       = "dispatch.returned"
	DonChangedName             = "don.changed"
	EquipmentBatchFinishedName = "equipment.batch_finished"
	SessionCompletedName       = "session.completed"
)

// Actions carried by DonChangedEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type DispatchCreatedEvent struct {
	Dispatch entities.Dispatch
	Actor    string
}

func (e DispatchCreatedEvent) Name() string { return DispatchCreatedName }

type DispatchReturnedEvent struct {
	DispatchID int64
	ReturnDate string
	Actor      string
}

func (e DispatchReturnedEvent) Name() string { return DispatchReturnedName }

type DonChangedEvent struct {
	DonID  int64
	Nature string
	Action string
	Actor  string
}

func (e DonChangedEvent) Name() string { return DonChangedName }

type EquipmentBatchFinishedEvent struct {
	Requested int
	Succeeded int
	Failed    int
	Actor     string
}

func (e EquipmentBatchFinishedEvent) Name() string { return EquipmentBatchFinishedName }

type SessionCompletedEvent struct {
	SessionID   int64
	SessionType string
	Actor       string
}

func (e SessionCompletedEvent) Name() string { return SessionCompletedName }
