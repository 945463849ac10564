package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/repositories"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	donRepository       repositories.DonRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	dispatchRepository  repositories.DispatchRepositoryInterface
	sessionRepository   repositories.SessionRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(
	donRepository repositories.DonRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	dispatchRepository repositories.DispatchRepositoryInterface,
	sessionRepository repositories.SessionRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		donRepository:       donRepository,
		equipmentRepository: equipmentRepository,
		dispatchRepository:  dispatchRepository,
		sessionRepository:   sessionRepository,
		logger:              logger.Named("dashboard_service"),
	}
}

// GetDashboard loads the four collections concurrently. The first failure
// cancels the other calls.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		dons       []entities.Don
		equipment  []entities.MedicalEquipment
		dispatches []entities.Dispatch
		pending    *entities.Session
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dons, err = s.donRepository.GetDons(gctx)
		return err
	})
	g.Go(func() (err error) {
		equipment, err = s.equipmentRepository.GetEquipment(gctx)
		return err
	})
	g.Go(func() (err error) {
		dispatches, err = s.dispatchRepository.GetDispatches(gctx)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.sessionRepository.GetPending(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fan-out failed", zap.Error(err))
		return nil, err
	}

	out := &dto.DashboardDTO{
		DonsByNature:      make(map[string]int, len(entities.Natures)),
		EquipmentByStatus: make(map[string]int),
		EquipmentCount:    len(equipment),
	}
	for _, n := range entities.Natures {
		out.DonsByNature[n] = 0
	}
	for _, d := range dons {
		out.DonsByNature[d.Nature]++
		out.TotalDonsValue += d.MonetaryValue
	}
	for _, e := range equipment {
		status := strings.TrimSpace(e.Status)
		if status == "" {
			status = "unknown"
		}
		out.EquipmentByStatus[status]++
		out.TotalEquipmentValue += e.MonetaryValue
	}
	for _, d := range dispatches {
		if d.Returned() {
			out.CompletedDispatches++
		} else {
			out.OngoingDispatches++
		}
	}
	if pending != nil {
		out.HasPendingSession = true
		out.PendingSessionID = pending.ID
	}
	return out, nil
}
