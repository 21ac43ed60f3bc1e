package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMediaRoutes(router *gin.Engine, mediaController *controllers.MediaController, auth gin.HandlerFunc) {
	mediaRoutes := router.Group("/media")
	mediaRoutes.Use(auth)
	{
		mediaRoutes.GET("/", mediaController.GetAllMedia)
		mediaRoutes.GET("/:id", mediaController.GetMediaByID)
		mediaRoutes.POST("/", mediaController.UploadMedia)
		mediaRoutes.PUT("/:id", mediaController.UpdateMedia)
		mediaRoutes.DELETE("/:id", mediaController.DeleteMedia)
	}
}
