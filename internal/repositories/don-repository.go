package repositories

import (
	"context"
	"fmt"

	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
)

//go:generate mockgen -source=don-repository.go -destination=mocks/don_repository.go -package=mocks

type DonRepositoryInterface interface {
	GetDons(ctx context.Context) ([]entities.Don, error)
	CreateDon(ctx context.Context, payload dto.DonDTO, legalFile *backend.FilePart) (*entities.Don, error)
	UpdateDon(ctx context.Context, id int64, payload dto.DonDTO, legalFile *backend.FilePart) (*entities.Don, error)
	DeleteDon(ctx context.Context, id int64) error
	DownloadLegalFile(ctx context.Context, id int64) (*backend.File, error)
}

type DonRepository struct {
	client *backend.Client
}

func NewDonRepository(client *backend.Client) DonRepositoryInterface {
	return &DonRepository{client: client}
}

func (r *DonRepository) GetDons(ctx context.Context) ([]entities.Don, error) {
	var dons []entities.Don
	if err := r.client.GetJSON(ctx, "/dons", &dons); err != nil {
		return nil, err
	}
	return dons, nil
}

func (r *DonRepository) CreateDon(ctx context.Context, payload dto.DonDTO, legalFile *backend.FilePart) (*entities.Don, error) {
	var created entities.Don
	if err := r.client.PostMultipart(ctx, "/dons", donForm(payload, legalFile), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DonRepository) UpdateDon(ctx context.Context, id int64, payload dto.DonDTO, legalFile *backend.FilePart) (*entities.Don, error) {
	var updated entities.Don
	if err := r.client.PutMultipart(ctx, fmt.Sprintf("/dons/%d", id), donForm(payload, legalFile), &updated); err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		updated.ID = id
	}
	return &updated, nil
}

func (r *DonRepository) DeleteDon(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/dons/%d", id))
}

func (r *DonRepository) DownloadLegalFile(ctx context.Context, id int64) (*backend.File, error) {
	return r.client.Download(ctx, fmt.Sprintf("/dons/download/%d", id))
}

func donForm(p dto.DonDTO, legalFile *backend.FilePart) *backend.Form {
	form := backend.NewForm().
		Set("reference", p.Reference).
		Set("category", p.Category).
		Set("brand", p.Brand).
		Set("source", p.Source).
		Set("usage", p.Usage).
		Set("dateOfEntry", formatDate(p.DateOfEntry)).
		Set("dateOfExit", formatDate(p.DateOfExit)).
		Set("status", p.Status).
		Set("monetaryValue", formatFloat(p.MonetaryValue)).
		Set("donsType", p.DonsType).
		Set("donsScope", p.DonsScope).
		Set("nature", p.Nature)
	if legalFile != nil {
		form.AddFile(*legalFile)
	}
	return form
}
