package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/config"
	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/services"
	"association-console/pkg/api"
	apperrors "association-console/pkg/errors"
)

type DispatchController struct {
	dispatchService services.DispatchServiceInterface
	logger          *zap.Logger
}

func NewDispatchController(dispatchService services.DispatchServiceInterface, logger *zap.Logger) *DispatchController {
	return &DispatchController{dispatchService: dispatchService, logger: logger}
}

func (c *DispatchController) view(ctx echo.Context) (string, error) {
	var q dto.DispatchListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &q); err != nil {
		return "", apperrors.ErrBadRequest
	}
	if err := ctx.Validate(&q); err != nil {
		return "", err
	}
	return q.View, nil
}

func (c *DispatchController) GetDispatches(ctx echo.Context) error {
	view, err := c.view(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	q, err := listQuery(ctx, entities.DispatchSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	page, summary, err := c.dispatchService.GetDispatches(ctx.Request().Context(), view, q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "تم جلب الإعارات بنجاح", page, &summary)
}

func (c *DispatchController) CreateDispatch(ctx echo.Context) error {
	var payload dto.CreateDispatchDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	pdf, err := optionalFile(ctx, "pdfFile")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, withFileErrors(err, "pdfFile", pdf, config.UploadDispatchPDF), c.logger)
	}

	dispatch, err := c.dispatchService.CreateDispatch(ctx.Request().Context(), payload, pdf)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "تم تسجيل الإعارة بنجاح", dispatch)
}

func (c *DispatchController) ReturnDispatch(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.ReturnDispatchDTO
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&payload); err != nil {
			return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("تاريخ الإرجاع غير صالح"), c.logger)
		}
	}

	dispatch, err := c.dispatchService.ReturnDispatch(ctx.Request().Context(), id, payload.ReturnDate)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم تسجيل إرجاع المعدات بنجاح", dispatch)
}

func (c *DispatchController) DeleteDispatch(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.dispatchService.DeleteDispatch(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "تم حذف الإعارة بنجاح", nil)
}

func (c *DispatchController) DownloadPDF(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	file, err := c.dispatchService.DownloadPDF(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return streamFile(ctx, file)
}

func (c *DispatchController) ExportDispatches(ctx echo.Context) error {
	view, err := c.view(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	q, err := listQuery(ctx, entities.DispatchSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	dispatches, err := c.dispatchService.FilteredDispatches(ctx.Request().Context(), view, q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := writeReport(ctx, "dispatches", services.DispatchesReport(dispatches)); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return nil
}
