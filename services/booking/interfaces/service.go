package interfaces

import (
	"github.com/gin-gonic/gin"
)

type BookingService interface {
	HandleCreateBooking(c *gin.Context)
	HandleFarmerBookings(c *gin.Context)
	HandleOwnerPendingBookings(c *gin.Context)
	HandleBookingAction(c *gin.Context)
}
