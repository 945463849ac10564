package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/repositories"
	apperrors "association-console/pkg/errors"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.EquipmentCategory, error)
}

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(categoryRepository repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository, logger: logger.Named("category_service")}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	return s.categoryRepository.GetCategories(ctx)
}

// CreateCategory refuses a name that already exists, ignoring case.
func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.EquipmentCategory, error) {
	payload.Name = strings.TrimSpace(payload.Name)

	existing, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if strings.EqualFold(strings.TrimSpace(c.Name), payload.Name) {
			return nil, apperrors.FieldError("name", "هذه الفئة موجودة بالفعل")
		}
	}

	created, err := s.categoryRepository.CreateCategory(ctx, payload)
	if err != nil {
		s.logger.Error("create category failed", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	return created, nil
}
