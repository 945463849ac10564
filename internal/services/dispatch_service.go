package services

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"association-console/config"
	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/events"
	"association-console/internal/repositories"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
	"association-console/pkg/types"
	"association-console/pkg/utils"
)

const pdfFileField = "pdfFile"

type DispatchServiceInterface interface {
	GetDispatches(ctx context.Context, view string, q listing.Query) (listing.Page[entities.Dispatch], listing.Summary, error)
	FilteredDispatches(ctx context.Context, view string, q listing.Query) ([]entities.Dispatch, error)
	CreateDispatch(ctx context.Context, payload dto.CreateDispatchDTO, pdf *multipart.FileHeader) (*entities.Dispatch, error)
	ReturnDispatch(ctx context.Context, id int64, returnDate types.Date) (*entities.Dispatch, error)
	DeleteDispatch(ctx context.Context, id int64) error
	DownloadPDF(ctx context.Context, id int64) (*backend.File, error)
}

type DispatchService struct {
	dispatchRepository repositories.DispatchRepositoryInterface
	bus                EventPublisher
	logger             *zap.Logger
	today              func() types.Date
}

func NewDispatchService(dispatchRepository repositories.DispatchRepositoryInterface, bus EventPublisher, logger *zap.Logger) *DispatchService {
	return &DispatchService{
		dispatchRepository: dispatchRepository,
		bus:                publisherOrNop(bus),
		logger:             logger.Named("dispatch_service"),
		today:              types.Today,
	}
}

// ByView splits dispatches into the ongoing (not returned) and completed
// views. Any other view keeps everything.
func ByView(dispatches []entities.Dispatch, view string) []entities.Dispatch {
	if view != dto.ViewOngoing && view != dto.ViewCompleted {
		return dispatches
	}
	wantReturned := view == dto.ViewCompleted
	out := make([]entities.Dispatch, 0, len(dispatches))
	for _, d := range dispatches {
		if d.Returned() == wantReturned {
			out = append(out, d)
		}
	}
	return out
}

func (s *DispatchService) GetDispatches(ctx context.Context, view string, q listing.Query) (listing.Page[entities.Dispatch], listing.Summary, error) {
	dispatches, err := s.dispatchRepository.GetDispatches(ctx)
	if err != nil {
		return listing.Page[entities.Dispatch]{}, listing.Summary{}, err
	}
	page, summary := listing.ApplyWithSummary(ByView(dispatches, view), q, nil)
	return page, summary, nil
}

func (s *DispatchService) FilteredDispatches(ctx context.Context, view string, q listing.Query) ([]entities.Dispatch, error) {
	dispatches, err := s.dispatchRepository.GetDispatches(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Sort(listing.Filter(ByView(dispatches, view), q), q), nil
}

func (s *DispatchService) CreateDispatch(ctx context.Context, payload dto.CreateDispatchDTO, pdf *multipart.FileHeader) (*entities.Dispatch, error) {
	part, closer, err := openUpload(pdfFileField, pdf, config.UploadDispatchPDF)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	created, err := s.dispatchRepository.CreateDispatch(ctx, payload, part)
	if err != nil {
		s.logger.Error("create dispatch failed", zap.Int64("equipmentId", payload.MedicalEquipmentID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("dispatch created", zap.Int64("id", created.ID), zap.Int64("equipmentId", created.MedicalEquipmentID))
	s.bus.Publish(ctx, events.DispatchCreatedEvent{Dispatch: *created, Actor: utils.GetUserNameFromCtx(ctx)})
	return created, nil
}

// ReturnDispatch sets the return date, today when returnDate is unset.
func (s *DispatchService) ReturnDispatch(ctx context.Context, id int64, returnDate types.Date) (*entities.Dispatch, error) {
	dispatches, err := s.dispatchRepository.GetDispatches(ctx)
	if err != nil {
		return nil, err
	}
	var current *entities.Dispatch
	for i := range dispatches {
		if dispatches[i].ID == id {
			current = &dispatches[i]
			break
		}
	}
	if current == nil {
		return nil, apperrors.ErrNotFound
	}
	if current.Returned() {
		return nil, apperrors.ErrDispatchAlreadyReturned
	}

	if !returnDate.Valid() {
		returnDate = s.today()
	}
	if current.DispatchDate.Valid() && returnDate.Midnight().Before(current.DispatchDate.Midnight()) {
		return nil, apperrors.FieldError("returnDate", "يجب أن يكون تاريخ الإرجاع مساويا أو لاحقا لتاريخ الإعارة")
	}

	updated, err := s.dispatchRepository.ReturnDispatch(ctx, id, returnDate)
	if err != nil {
		s.logger.Error("return dispatch failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		returned := *current
		returned.ReturnDate = returnDate
		updated = &returned
	}

	s.bus.Publish(ctx, events.DispatchReturnedEvent{
		DispatchID: id,
		ReturnDate: returnDate.String(),
		Actor:      utils.GetUserNameFromCtx(ctx),
	})
	return updated, nil
}

func (s *DispatchService) DeleteDispatch(ctx context.Context, id int64) error {
	if err := s.dispatchRepository.DeleteDispatch(ctx, id); err != nil {
		s.logger.Error("delete dispatch failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *DispatchService) DownloadPDF(ctx context.Context, id int64) (*backend.File, error) {
	return s.dispatchRepository.DownloadPDF(ctx, id)
}
