package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/services"
	"association-console/pkg/api"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/utils"
)

const batchAction = "equipment_batch"

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	inFlight         *RequestDeduplicator
	batchTTL         time.Duration
	logger           *zap.Logger
}

// NewEquipmentController takes batchTTL, the longest a batch may hold the
// per-user submission lock.
func NewEquipmentController(equipmentService services.EquipmentServiceInterface, batchTTL time.Duration, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		inFlight:         NewRequestDeduplicator(),
		batchTTL:         batchTTL,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	q, err := listQuery(ctx, entities.EquipmentSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	page, summary, err := c.equipmentService.GetEquipment(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "تم جلب المعدات بنجاح", page, &summary)
}

// GetEquipmentDispatches is the loan history of one item.
func (c *EquipmentController) GetEquipmentDispatches(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	dispatches, err := c.equipmentService.GetEquipmentDispatches(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if dispatches == nil {
		dispatches = []entities.Dispatch{}
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب سجل الإعارات بنجاح", dispatches)
}

// CreateEquipment creates quantity items. A partly failed batch still answers
// 201 with the per-item report; 400 only when nothing was created.
func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	user := submitter(ctx)
	token, ok := c.inFlight.TryAcquire(user, batchAction, c.batchTTL)
	if !ok {
		return api.ErrorResponse(ctx, apperrors.ErrBatchInProgress, c.logger)
	}
	defer c.inFlight.Release(user, batchAction, token)

	result, err := c.equipmentService.CreateBatch(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	switch {
	case result.Succeeded == 0:
		return ctx.JSON(http.StatusBadRequest, api.Response[*dto.BatchResultDTO]{
			Status:  false,
			Message: "تعذر إضافة أي قطعة من المعدات",
			Body:    result,
		})
	case result.Failed > 0:
		return api.SuccessOne(ctx, http.StatusCreated, "تمت إضافة جزء من المعدات فقط", result)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "تمت إضافة المعدات بنجاح", result)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.EquipmentDetailsDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	equipment, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم تعديل المعدات بنجاح", equipment)
}

func (c *EquipmentController) ExportEquipment(ctx echo.Context) error {
	q, err := listQuery(ctx, entities.EquipmentSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	items, err := c.equipmentService.FilteredEquipment(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := writeReport(ctx, "equipment", services.EquipmentReport(items)); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return nil
}

// submitter identifies the console user, by token when the token carries no
// readable name.
func submitter(ctx echo.Context) string {
	reqCtx := ctx.Request().Context()
	if name := utils.GetUserNameFromCtx(reqCtx); name != "" {
		return name
	}
	token, _ := utils.GetTokenFromCtx(reqCtx)
	return token
}
