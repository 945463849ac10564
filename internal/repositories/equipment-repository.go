package repositories

import (
	"context"
	"fmt"

	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
)

//go:generate mockgen -source=equipment-repository.go -destination=mocks/equipment_repository.go -package=mocks

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) ([]entities.MedicalEquipment, error)
	CreateEquipment(ctx context.Context, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error)
	UpdateEquipment(ctx context.Context, id int64, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error)
	GetEquipmentDispatches(ctx context.Context, id int64) ([]entities.Dispatch, error)
}

type EquipmentRepository struct {
	client *backend.Client
}

func NewEquipmentRepository(client *backend.Client) EquipmentRepositoryInterface {
	return &EquipmentRepository{client: client}
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context) ([]entities.MedicalEquipment, error) {
	var items []entities.MedicalEquipment
	if err := r.client.GetJSON(ctx, "/MedicalEquipment", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
	var created entities.MedicalEquipment
	if err := r.client.PostJSON(ctx, "/MedicalEquipment", details, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id int64, details dto.EquipmentDetailsDTO) (*entities.MedicalEquipment, error) {
	var updated entities.MedicalEquipment
	if err := r.client.PutJSON(ctx, fmt.Sprintf("/MedicalEquipment/%d/update-details", id), details, &updated); err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		updated.ID = id
	}
	return &updated, nil
}

func (r *EquipmentRepository) GetEquipmentDispatches(ctx context.Context, id int64) ([]entities.Dispatch, error) {
	var dispatches []entities.Dispatch
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/MedicalEquipment/%d/dispatches", id), &dispatches); err != nil {
		return nil, err
	}
	return dispatches, nil
}
