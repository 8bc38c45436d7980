package router

import (
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/middlewares/auth"
	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/services/admin/interfaces"

	"github.com/gin-gonic/gin"
)

func SetupRouter(router *gin.Engine, service interfaces.AdminInterface) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	adminGroup := router.Group("/admin")
	adminGroup.Use(auth.AuthInjectionMiddleware(), auth.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/dashboard-stats", service.GetDashboardStats)
		adminGroup.GET("/fleet-stats", service.GetFleetStats)
		adminGroup.GET("/bookings", service.GetAllBookings)
		adminGroup.GET("/users", service.GetAllUsers)
	}
}
