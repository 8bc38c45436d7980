package router

import (
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/middlewares/auth"
	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/services/booking/interfaces"

	"github.com/gin-gonic/gin"
)

func SetupRouter(router *gin.Engine, service interfaces.BookingService) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	user := router.Group("/user")
	user.Use(auth.AuthInjectionMiddleware(), auth.RequireRole(models.RoleFarmer))
	{
		user.POST("/booking", service.HandleCreateBooking)
		user.GET("/bookings", service.HandleFarmerBookings)
	}

	owner := router.Group("/owner")
	owner.Use(auth.AuthInjectionMiddleware(), auth.RequireRole(models.RoleVehicleOwner))
	{
		owner.GET("/bookings/pending", service.HandleOwnerPendingBookings)
		owner.PATCH("/bookings/:id", service.HandleBookingAction)
	}
}
