package interfaces

import (
	"github.com/gin-gonic/gin"
)

type VehicleService interface {
	HandleAvailableVehicles(c *gin.Context)
	HandleNearbyVehicles(c *gin.Context)
	HandleMyVehicles(c *gin.Context)
	HandleCreateVehicle(c *gin.Context)
	HandleToggleAvailability(c *gin.Context)
	HandleDeleteVehicle(c *gin.Context)
}
