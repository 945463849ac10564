package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/events"
	"association-console/internal/repositories"
	"association-console/pkg/api"
	"association-console/pkg/config"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
	"association-console/pkg/metrics"
	"association-console/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, q listing.Query) (listing.Page[entities.MedicalEquipment], listing.Summary, error)
	FilteredEquipment(ctx context.Context, q listing.Query) ([]entities.MedicalEquipment, error)
	GetEquipmentDispatches(ctx context.Context, id int64) ([]entities.Dispatch, error)
	CreateBatch(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.BatchResultDTO, error)
	UpdateEquipment(ctx context.Context, id int64, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	batchCfg            config.BatchConfig
	bus                 EventPublisher
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	batchCfg config.BatchConfig,
	bus EventPublisher,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		batchCfg:            batchCfg,
		bus:                 publisherOrNop(bus),
		logger:              logger.Named("equipment_service"),
	}
}

func equipmentValue(e entities.MedicalEquipment) float64 { return e.MonetaryValue }

func (s *EquipmentService) GetEquipment(ctx context.Context, q listing.Query) (listing.Page[entities.MedicalEquipment], listing.Summary, error) {
	items, err := s.equipmentRepository.GetEquipment(ctx)
	if err != nil {
		return listing.Page[entities.MedicalEquipment]{}, listing.Summary{}, err
	}
	page, summary := listing.ApplyWithSummary(items, q, equipmentValue)
	return page, summary, nil
}

func (s *EquipmentService) FilteredEquipment(ctx context.Context, q listing.Query) ([]entities.MedicalEquipment, error) {
	items, err := s.equipmentRepository.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Sort(listing.Filter(items, q), q), nil
}

func (s *EquipmentService) GetEquipmentDispatches(ctx context.Context, id int64) ([]entities.Dispatch, error) {
	return s.equipmentRepository.GetEquipmentDispatches(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id int64, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, details)
	if err != nil {
		s.logger.Error("update equipment failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// CreateBatch creates payload.Quantity items one after the other, spaced by
// the configured delay: the backend assigns reference numbers and breaks on
// concurrent inserts. A failed item does not stop the batch. When ctx ends,
// the items not attempted yet are reported as failed.
func (s *EquipmentService) CreateBatch(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.BatchResultDTO, error) {
	if payload.Quantity < 1 {
		return nil, apperrors.FieldError("quantity", "يجب أن تكون الكمية 1 على الأقل")
	}
	if s.batchCfg.MaxQuantity > 0 && payload.Quantity > s.batchCfg.MaxQuantity {
		return nil, apperrors.FieldError("quantity", fmt.Sprintf("لا يمكن إضافة أكثر من %d وحدة في المرة الواحدة", s.batchCfg.MaxQuantity))
	}

	result := &dto.BatchResultDTO{
		Requested: payload.Quantity,
		Created:   make([]entities.MedicalEquipment, 0, payload.Quantity),
		Errors:    make([]dto.BatchItemErrorDTO, 0),
	}
	details := payload.Details()
	pacer := newBatchPacer(s.batchCfg.Delay)
	start := time.Now()

	for i := 0; i < payload.Quantity; i++ {
		if err := pacer.wait(ctx); err != nil {
			s.logger.Warn("batch interrupted", zap.Int("done", i), zap.Int("requested", payload.Quantity), zap.Error(err))
			for j := i; j < payload.Quantity; j++ {
				result.AddFailure(j, "تم إلغاء العملية قبل إنشاء هذه الوحدة")
			}
			break
		}

		created, err := s.equipmentRepository.CreateEquipment(ctx, details)
		pacer.finished()
		if err != nil {
			s.logger.Warn("batch item failed", zap.Int("index", i), zap.Error(err))
			_, msg, _ := api.Classify(err)
			result.AddFailure(i, msg)
			continue
		}
		result.Succeeded++
		result.Created = append(result.Created, *created)
		metrics.BatchItemsCreatedTotal.Inc()
	}

	metrics.BatchItemsFailedTotal.Add(float64(result.Failed))

	s.logger.Info("equipment batch finished",
		zap.Int("requested", result.Requested),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Duration("took", time.Since(start)),
	)
	s.bus.Publish(ctx, events.EquipmentBatchFinishedEvent{
		Requested: result.Requested,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Actor:     utils.GetUserNameFromCtx(ctx),
	})
	return result, nil
}

// batchPacer keeps a full delay between the end of one creation request and
// the start of the next, however long the backend took to answer.
type batchPacer struct {
	delay   time.Duration
	limiter *rate.Limiter
}

func newBatchPacer(delay time.Duration) *batchPacer {
	return &batchPacer{delay: delay, limiter: rate.NewLimiter(rate.Inf, 1)}
}

func (p *batchPacer) wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// finished starts the delay: the fresh limiter's only token is spent now, so
// the next wait lasts until the next token, one delay later.
func (p *batchPacer) finished() {
	if p.delay <= 0 {
		return
	}
	p.limiter = rate.NewLimiter(rate.Every(p.delay), 1)
	p.limiter.Allow()
}
