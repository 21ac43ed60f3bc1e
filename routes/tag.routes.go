package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(router *gin.Engine, tagController *controllers.TagController, auth gin.HandlerFunc) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Use(auth)
	{
		tagRoutes.GET("/", tagController.GetAllTags)
		tagRoutes.GET("/:idOrSlug", tagController.GetTagByIDOrSlug)
		tagRoutes.POST("/", tagController.CreateTag)
		tagRoutes.POST("/bulk", tagController.BulkCreateTags)
		tagRoutes.PUT("/:idOrSlug", tagController.UpdateTag)
		tagRoutes.DELETE("/:idOrSlug", tagController.DeleteTag)
	}
}
