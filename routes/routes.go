package routes

import (
	"net/http"

	"soc-archive-api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register mounts the API surface on the router.
func Register(router *gin.Engine, workHandler *handlers.WorkHandler, categoryHandler *handlers.CategoryHandler, adminHandler *handlers.AdminHandler) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "SOC Archive API is running",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	works := router.Group("/works")
	{
		works.GET("", workHandler.GetWorks)
		works.POST("", workHandler.CreateWork)
		works.GET("/:id", workHandler.GetWork)
		works.GET("/:id/pdf", workHandler.DownloadPDF)
		works.DELETE("/:id/gdpr", workHandler.AnonymizeWork)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.POST("", categoryHandler.CreateCategory)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/works/:id/approve", adminHandler.ApproveWork)
		admin.POST("/works/:id/pdf", adminHandler.UploadPDF)
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/export", adminHandler.ExportWorks)
	}
}
