package routes

import (
	"weblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSitemapRoutes(router *gin.Engine, sitemapController *controllers.SitemapController, feedController *controllers.FeedController) {
	router.GET("/sitemap.xml", sitemapController.Sitemap)
	router.GET("/feed.xml", feedController.Feed)
}
