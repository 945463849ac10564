package repositories

import (
	"context"
	"fmt"

	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/pkg/types"
)

//go:generate mockgen -source=dispatch-repository.go -destination=mocks/dispatch_repository.go -package=mocks

type DispatchRepositoryInterface interface {
	GetDispatches(ctx context.Context) ([]entities.Dispatch, error)
	CreateDispatch(ctx context.Context, payload dto.CreateDispatchDTO, pdf backend.FilePart) (*entities.Dispatch, error)
	ReturnDispatch(ctx context.Context, id int64, returnDate types.Date) (*entities.Dispatch, error)
	DeleteDispatch(ctx context.Context, id int64) error
	DownloadPDF(ctx context.Context, id int64) (*backend.File, error)
}

type DispatchRepository struct {
	client *backend.Client
}

func NewDispatchRepository(client *backend.Client) DispatchRepositoryInterface {
	return &DispatchRepository{client: client}
}

func (r *DispatchRepository) GetDispatches(ctx context.Context) ([]entities.Dispatch, error) {
	var dispatches []entities.Dispatch
	if err := r.client.GetJSON(ctx, "/EquipmentDispatch", &dispatches); err != nil {
		return nil, err
	}
	return dispatches, nil
}

func (r *DispatchRepository) CreateDispatch(ctx context.Context, p dto.CreateDispatchDTO, pdf backend.FilePart) (*entities.Dispatch, error) {
	form := backend.NewForm().
		Set("medicalEquipmentId", formatID(p.MedicalEquipmentID)).
		Set("beneficiary", p.Beneficiary).
		Set("patientPhone", p.PatientPhone).
		Set("patientCIN", p.PatientCIN).
		Set("coordinator", p.Coordinator).
		Set("responsiblePerson", p.ResponsiblePerson).
		Set("dispatchDate", formatDate(p.DispatchDate)).
		Set("returnDate", formatDate(p.ReturnDate)).
		AddFile(pdf)

	var created entities.Dispatch
	if err := r.client.PostMultipart(ctx, "/EquipmentDispatch", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type returnPayload struct {
	ReturnDate string `json:"returnDate"`
}

// ReturnDispatch returns nil without error when the backend answers with an
// empty body.
func (r *DispatchRepository) ReturnDispatch(ctx context.Context, id int64, returnDate types.Date) (*entities.Dispatch, error) {
	var updated entities.Dispatch
	path := fmt.Sprintf("/EquipmentDispatch/%d/return", id)
	if err := r.client.PatchJSON(ctx, path, returnPayload{ReturnDate: formatDate(returnDate)}, &updated); err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		return nil, nil
	}
	return &updated, nil
}

func (r *DispatchRepository) DeleteDispatch(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, fmt.Sprintf("/EquipmentDispatch/%d", id))
}

func (r *DispatchRepository) DownloadPDF(ctx context.Context, id int64) (*backend.File, error) {
	return r.client.Download(ctx, fmt.Sprintf("/EquipmentDispatch/download/%d", id))
}
