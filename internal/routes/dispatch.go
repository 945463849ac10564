package routes

import (
	"github.com/labstack/echo/v4"

	"association-console/internal/controllers"
)

func runDispatchRouter(secureGroup *echo.Group, dispatchCtrl *controllers.DispatchController) {
	dispatches := secureGroup.Group("/dispatches")
	dispatches.GET("", dispatchCtrl.GetDispatches)
	dispatches.GET("/export", dispatchCtrl.ExportDispatches)
	dispatches.GET("/:id/download", dispatchCtrl.DownloadPDF)
	dispatches.POST("", dispatchCtrl.CreateDispatch)
	dispatches.PATCH("/:id/return", dispatchCtrl.ReturnDispatch)
	dispatches.DELETE("/:id", dispatchCtrl.DeleteDispatch)
}
