package services

import (
	"context"
	"io"
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
	"association-console/pkg/utils"
)

const legalFileField = "legalFile"

type DonServiceInterface interface {
	GetDons(ctx context.Context, nature string, q listing.Query) (listing.Page[entities.Don], listing.Summary, error)
	FilteredDons(ctx context.Context, nature string, q listing.Query) ([]entities.Don, error)
	FindDon(ctx context.Context, id int64) (*entities.Don, error)
	CreateDon(ctx context.Context, payload dto.DonDTO, legalFile *multipart.FileHeader) (*entities.Don, error)
	UpdateDon(ctx context.Context, id int64, payload dto.DonDTO, legalFile *multipart.FileHeader) (*entities.Don, error)
	DeleteDon(ctx context.Context, id int64) error
	DownloadLegalFile(ctx context.Context, id int64) (*backend.File, error)
}

type DonService struct {
	donRepository repositories.DonRepositoryInterface
	bus           EventPublisher
	logger        *zap.Logger
}

func NewDonService(donRepository repositories.DonRepositoryInterface, bus EventPublisher, logger *zap.Logger) *DonService {
	return &DonService{
		donRepository: donRepository,
		bus:           publisherOrNop(bus),
		logger:        logger.Named("don_service"),
	}
}

func donValue(d entities.Don) float64 { return d.MonetaryValue }

// byNature keeps the records of one view. An empty nature keeps everything.
func byNature(dons []entities.Don, nature string) []entities.Don {
	if nature == "" {
		return dons
	}
	out := make([]entities.Don, 0, len(dons))
	for _, d := range dons {
		if d.Nature == nature {
			out = append(out, d)
		}
	}
	return out
}

func (s *DonService) GetDons(ctx context.Context, nature string, q listing.Query) (listing.Page[entities.Don], listing.Summary, error) {
	dons, err := s.donRepository.GetDons(ctx)
	if err != nil {
		return listing.Page[entities.Don]{}, listing.Summary{}, err
	}
	page, summary := listing.ApplyWithSummary(byNature(dons, nature), q, donValue)
	return page, summary, nil
}

// FilteredDons is the whole filtered and sorted set, used for exports.
func (s *DonService) FilteredDons(ctx context.Context, nature string, q listing.Query) ([]entities.Don, error) {
	dons, err := s.donRepository.GetDons(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Sort(listing.Filter(byNature(dons, nature), q), q), nil
}

// FindDon looks the record up in the collection: the backend has no
// single-record endpoint for dons.
func (s *DonService) FindDon(ctx context.Context, id int64) (*entities.Don, error) {
	dons, err := s.donRepository.GetDons(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dons {
		if dons[i].ID == id {
			return &dons[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *DonService) CreateDon(ctx context.Context, payload dto.DonDTO, legalFile *multipart.FileHeader) (*entities.Don, error) {
	part, closer, err := s.legalFilePart(legalFile)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	created, err := s.donRepository.CreateDon(ctx, payload, part)
	if err != nil {
		s.logger.Error("create don failed", zap.String("nature", payload.Nature), zap.Error(err))
		return nil, err
	}

	s.logger.Info("don created", zap.Int64("id", created.ID), zap.String("nature", payload.Nature))
	s.bus.Publish(ctx, events.DonChangedEvent{
		DonID:  created.ID,
		Nature: payload.Nature,
		Action: events.ActionCreated,
		Actor:  utils.GetUserNameFromCtx(ctx),
	})
	return created, nil
}

func (s *DonService) UpdateDon(ctx context.Context, id int64, payload dto.DonDTO, legalFile *multipart.FileHeader) (*entities.Don, error) {
	part, closer, err := s.legalFilePart(legalFile)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	updated, err := s.donRepository.UpdateDon(ctx, id, payload, part)
	if err != nil {
		s.logger.Error("update don failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.DonChangedEvent{
		DonID:  id,
		Nature: payload.Nature,
		Action: events.ActionUpdated,
		Actor:  utils.GetUserNameFromCtx(ctx),
	})
	return updated, nil
}

func (s *DonService) DeleteDon(ctx context.Context, id int64) error {
	if err := s.donRepository.DeleteDon(ctx, id); err != nil {
		s.logger.Error("delete don failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	s.bus.Publish(ctx, events.DonChangedEvent{
		DonID:  id,
		Action: events.ActionDeleted,
		Actor:  utils.GetUserNameFromCtx(ctx),
	})
	return nil
}

func (s *DonService) DownloadLegalFile(ctx context.Context, id int64) (*backend.File, error) {
	return s.donRepository.DownloadLegalFile(ctx, id)
}

// legalFilePart returns a nil part when no file was sent.
func (s *DonService) legalFilePart(fh *multipart.FileHeader) (*backend.FilePart, io.Closer, error) {
	if fh == nil {
		return nil, nil, nil
	}
	part, closer, err := openUpload(legalFileField, fh, config.UploadLegalFile)
	if err != nil {
		return nil, nil, err
	}
	return &part, closer, nil
}
