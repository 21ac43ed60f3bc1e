package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/verify", authController.VerifyCredentials)
		authRoutes.GET("/verify", authController.DevCredentials)
	}
}
