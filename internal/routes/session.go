package routes

import (
	"github.com/labstack/echo/v4"

	"association-console/internal/controllers"
)

func runSessionRouter(secureGroup *echo.Group, sessionCtrl *controllers.SessionController) {
	sessions := secureGroup.Group("/sessions")
	sessions.GET("/types/:type", sessionCtrl.SelectType)
	sessions.POST("", sessionCtrl.CreateSession)
	sessions.GET("/pending", sessionCtrl.GetPending)
	sessions.GET("/completed", sessionCtrl.GetCompleted)
	sessions.PUT("/:id/complete", sessionCtrl.CompleteSession)
	sessions.GET("/:id/documents", sessionCtrl.GetDocuments)
	sessions.GET("/:id/documents/:documentType", sessionCtrl.DownloadDocument)
	sessions.GET("/:id/draft", sessionCtrl.GetDraft)
	sessions.DELETE("/:id/draft", sessionCtrl.DiscardDraft)
}
