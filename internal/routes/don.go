package routes

import (
	"github.com/labstack/echo/v4"

	"association-console/internal/controllers"
)

func runDonRouter(secureGroup *echo.Group, donCtrl *controllers.DonController) {
	dons := secureGroup.Group("/dons")
	dons.GET("", donCtrl.GetDons)
	dons.GET("/export", donCtrl.ExportDons)
	dons.GET("/:id", donCtrl.FindDon)
	dons.GET("/:id/download", donCtrl.DownloadLegalFile)
	dons.POST("", donCtrl.CreateDon)
	dons.PUT("/:id", donCtrl.UpdateDon)
	dons.DELETE("/:id", donCtrl.DeleteDon)
}
