package routes

import (
	"github.com/labstack/echo/v4"

	"association-console/internal/controllers"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	equipment := secureGroup.Group("/equipment")
	equipment.GET("", equipmentCtrl.GetEquipment)
	equipment.GET("/export", equipmentCtrl.ExportEquipment)
	equipment.GET("/:id/dispatches", equipmentCtrl.GetEquipmentDispatches)
	equipment.POST("", equipmentCtrl.CreateEquipment)
	equipment.PUT("/:id", equipmentCtrl.UpdateEquipment)
}
