package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/repositories/mocks"
)

type dashboardMocks struct {
	dons       *mocks.MockDonRepositoryInterface
	equipment  *mocks.MockEquipmentRepositoryInterface
	dispatches *mocks.MockDispatchRepositoryInterface
	sessions   *mocks.MockSessionRepositoryInterface
}

func newDashboardForTest(t *testing.T) (*DashboardService, dashboardMocks) {
	ctrl := gomock.NewController(t)
	m := dashboardMocks{
		dons:       mocks.NewMockDonRepositoryInterface(ctrl),
		equipment:  mocks.NewMockEquipmentRepositoryInterface(ctrl),
		dispatches: mocks.NewMockDispatchRepositoryInterface(ctrl),
		sessions:   mocks.NewMockSessionRepositoryInterface(ctrl),
	}
	return NewDashboardService(m.dons, m.equipment, m.dispatches, m.sessions, zap.NewNop()), m
}

func TestGetDashboard(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, m := newDashboardForTest(t)

	m.dons.EXPECT().GetDons(gomock.Any()).Return(sampleDons(), nil)
	m.equipment.EXPECT().GetEquipment(gomock.Any()).Return([]entities.MedicalEquipment{
		{ID: 1, Status: "available", MonetaryValue: 300},
		{ID: 2, Status: "", MonetaryValue: 20},
	}, nil)
	m.dispatches.EXPECT().GetDispatches(gomock.Any()).Return(sampleDispatches(), nil)
	m.sessions.EXPECT().GetPending(gomock.Any()).Return(&entities.Session{ID: 12}, nil)

	got, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &dto.DashboardDTO{
		DonsByNature:        map[string]int{entities.NatureGift: 2, entities.NatureTestament: 1, entities.NatureDonation: 0},
		OngoingDispatches:   2,
		CompletedDispatches: 1,
		EquipmentByStatus:   map[string]int{"available": 1, "unknown": 1},
		EquipmentCount:      2,
		TotalDonsValue:      1050,
		TotalEquipmentValue: 320,
		HasPendingSession:   true,
		PendingSessionID:    12,
	}, got)
}

func TestGetDashboard_FirstErrorWins(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, m := newDashboardForTest(t)
	boom := errors.New("backend down")

	m.dons.EXPECT().GetDons(gomock.Any()).Return(nil, boom)
	m.equipment.EXPECT().GetEquipment(gomock.Any()).Return(nil, nil).AnyTimes()
	m.dispatches.EXPECT().GetDispatches(gomock.Any()).Return(nil, nil).AnyTimes()
	m.sessions.EXPECT().GetPending(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, boom)
}
