package interfaces

import (
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/models"

	"github.com/gin-gonic/gin"
)

type NotificationInterface interface {
	ConsumeBookingRequests()
	ConsumeBookingUpdates()
	DispatchBookingRequest(n models.BookingRequestNotification)
	DispatchBookingUpdate(n models.BookingStatusNotification)
	NotifyUser(userID string, payload interface{})
	HandleWebSocket(c *gin.Context)
	HandleNotificationHistory(c *gin.Context)
	GracefulShutdown(server *http.Server)
}
