package interfaces

import (
	"github.com/gin-gonic/gin"
)

type AdminInterface interface {
	GetDashboardStats(c *gin.Context)
	GetFleetStats(c *gin.Context)
	GetAllBookings(c *gin.Context)
	GetAllUsers(c *gin.Context)
}
