package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/services"
	"association-console/pkg/api"
	apperrors "association-console/pkg/errors"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
	logger          *zap.Logger
}

func NewCategoryController(categoryService services.CategoryServiceInterface, logger *zap.Logger) *CategoryController {
	return &CategoryController{categoryService: categoryService, logger: logger}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	categories, err := c.categoryService.GetCategories(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if categories == nil {
		categories = []entities.EquipmentCategory{}
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب الأصناف بنجاح", categories)
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	category, err := c.categoryService.CreateCategory(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "تمت إضافة الصنف بنجاح", category)
}
