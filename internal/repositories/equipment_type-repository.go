package repositories

import (
	"context"

	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
)

//go:generate mockgen -source=equipment_type-repository.go -destination=mocks/category_repository.go -package=mocks

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.EquipmentCategory, error)
}

type CategoryRepository struct {
	client *backend.Client
}

func NewCategoryRepository(client *backend.Client) CategoryRepositoryInterface {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	var categories []entities.EquipmentCategory
	if err := r.client.GetJSON(ctx, "/EquipmentCategory", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.EquipmentCategory, error) {
	var created entities.EquipmentCategory
	if err := r.client.PostJSON(ctx, "/EquipmentCategory", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
