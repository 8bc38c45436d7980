package router

import (
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/middlewares/auth"
	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/services/vehicle/interfaces"

	"github.com/gin-gonic/gin"
)

func SetupRouter(router *gin.Engine, service interfaces.VehicleService) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	vehicles := router.Group("/vehicles")
	vehicles.Use(auth.AuthInjectionMiddleware())
	{
		vehicles.GET("/available", service.HandleAvailableVehicles)
		vehicles.GET("/nearby", service.HandleNearbyVehicles)
	}

	owner := router.Group("/owner")
	owner.Use(auth.AuthInjectionMiddleware(), auth.RequireRole(models.RoleVehicleOwner))
	{
		owner.GET("/vehicles", service.HandleMyVehicles)
		owner.POST("/vehicles", service.HandleCreateVehicle)
		owner.PATCH("/vehicles/:id/availability", service.HandleToggleAvailability)
		owner.DELETE("/vehicles/:id", service.HandleDeleteVehicle)
	}
}
