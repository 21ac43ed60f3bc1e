package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPostRoutes(router *gin.Engine, postController *controllers.PostController, auth gin.HandlerFunc) {
	postRoutes := router.Group("/posts")
	postRoutes.Use(auth)
	{
		postRoutes.GET("/", postController.GetAllPosts)
		postRoutes.GET("/:idOrSlug", postController.GetPostByIDOrSlug)
		postRoutes.POST("/", postController.CreatePost)
		postRoutes.PUT("/:idOrSlug", postController.UpdatePost)
		postRoutes.DELETE("/:idOrSlug", postController.DeletePost)
	}
}
