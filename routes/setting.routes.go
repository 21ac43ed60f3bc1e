package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSettingRoutes(router *gin.Engine, settingController *controllers.SettingController, auth gin.HandlerFunc) {
	settingRoutes := router.Group("/settings")
	settingRoutes.Use(auth)
	{
		settingRoutes.GET("/", settingController.GetAllSettings)
		settingRoutes.GET("/:key", settingController.GetSettingByKey)
		settingRoutes.PUT("/", settingController.UpsertSetting)
		settingRoutes.DELETE("/:key", settingController.DeleteSetting)
	}
}
