package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/internal/services"
	"association-console/pkg/api"
	"association-console/pkg/utils"
)

const dashboardTimeout = 30 * time.Second

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, dashboardTimeout)
	defer cancel()

	data, err := c.dashboardService.GetDashboard(reqCtx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب لوحة القيادة بنجاح", data)
}
