package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.Engine, categoryController *controllers.CategoryController, auth gin.HandlerFunc) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Use(auth)
	{
		categoryRoutes.GET("/", categoryController.GetAllCategories)
		categoryRoutes.GET("/:idOrSlug", categoryController.GetCategoryByIDOrSlug)
		categoryRoutes.POST("/", categoryController.CreateCategory)
		categoryRoutes.PUT("/:idOrSlug", categoryController.UpdateCategory)
		categoryRoutes.DELETE("/:idOrSlug", categoryController.DeleteCategory)
	}
}
