package routes

import (
	"github.com/labstack/echo/v4"

	"association-console/internal/controllers"
)

func runCategoryRouter(secureGroup *echo.Group, categoryCtrl *controllers.CategoryController) {
	secureGroup.GET("/categories", categoryCtrl.GetCategories)
	secureGroup.POST("/categories", categoryCtrl.CreateCategory)
}
