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

type DonController struct {
	donService services.DonServiceInterface
	logger     *zap.Logger
}

func NewDonController(donService services.DonServiceInterface, logger *zap.Logger) *DonController {
	return &DonController{donService: donService, logger: logger}
}

func (c *DonController) nature(ctx echo.Context) (string, error) {
	var q dto.DonListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &q); err != nil {
		return "", apperrors.ErrBadRequest
	}
	if err := ctx.Validate(&q); err != nil {
		return "", err
	}
	return q.Nature, nil
}

func (c *DonController) GetDons(ctx echo.Context) error {
	nature, err := c.nature(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	q, err := listQuery(ctx, entities.DonSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	page, summary, err := c.donService.GetDons(ctx.Request().Context(), nature, q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "تم جلب الهبات بنجاح", page, &summary)
}

func (c *DonController) FindDon(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	don, err := c.donService.FindDon(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب الهبة بنجاح", don)
}

func (c *DonController) CreateDon(ctx echo.Context) error {
	var payload dto.DonDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	legalFile, err := optionalFile(ctx, "legalFile")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	don, err := c.donService.CreateDon(ctx.Request().Context(), payload, legalFile)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "تمت إضافة الهبة بنجاح", don)
}

func (c *DonController) UpdateDon(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.DonDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	legalFile, err := optionalFile(ctx, "legalFile")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	don, err := c.donService.UpdateDon(ctx.Request().Context(), id, payload, legalFile)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم تعديل الهبة بنجاح", don)
}

func (c *DonController) DeleteDon(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.donService.DeleteDon(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "تم حذف الهبة بنجاح", nil)
}

func (c *DonController) DownloadLegalFile(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	file, err := c.donService.DownloadLegalFile(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return streamFile(ctx, file)
}

// ExportDons writes every don matching the current filters, unpaginated.
func (c *DonController) ExportDons(ctx echo.Context) error {
	nature, err := c.nature(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	q, err := listQuery(ctx, entities.DonSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	dons, err := c.donService.FilteredDons(ctx.Request().Context(), nature, q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := writeReport(ctx, "dons", services.DonsReport(nature, dons)); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return nil
}
