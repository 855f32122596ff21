package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/college/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, reportController *controllers.ReportController) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	v1 := router.Group("/api/v1")

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("/report", reportController.GetEnrollmentReport)
		enrollments.GET("/report/export", reportController.ExportEnrollmentReport)
	}
}
